package lint

import (
	"context"
	"sync"
)

// Status is the lifecycle state of a Linting.
type Status string

// Linting states. StatusLinting is the only non-terminal state; a
// Linting never leaves a terminal state once it has reached one.
const (
	StatusLinting Status = "linting"
	StatusPassing Status = "passing"
	StatusWarning Status = "warning"
	StatusError   Status = "error"
)

// Terminal reports whether s is a terminal state.
func (s Status) Terminal() bool { return s != StatusLinting }

// Linting represents one run of a set of rule instances against one
// document. It is created in StatusLinting and completed exactly once,
// after which its status and diagnostics are frozen. Completion is
// observable through Done, which works for observers that subscribe
// after the run has already settled.
type Linting struct {
	source string
	done   chan struct{}
	once   sync.Once

	mu     sync.Mutex
	status Status
	groups []RuleDiagnostics
}

// NewLinting returns a Linting in StatusLinting for the given source
// identifier (a file path, or a placeholder for in-memory sources).
func NewLinting(source string) *Linting {
	return &Linting{
		source: source,
		done:   make(chan struct{}),
		status: StatusLinting,
	}
}

// Source returns the source identifier this run lints.
func (l *Linting) Source() string { return l.source }

// Status returns the current state.
func (l *Linting) Status() Status {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.status
}

// Diagnostics returns the diagnostics grouped per rule instance, in the
// order the instances were configured. Before completion it returns nil.
func (l *Linting) Diagnostics() []RuleDiagnostics {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.groups
}

// Done returns a channel that is closed when the run settles. The
// channel is closed exactly once; observers subscribing after
// completion receive an already-closed channel.
func (l *Linting) Done() <-chan struct{} { return l.done }

// Wait blocks until the run settles or ctx is cancelled, returning the
// terminal status or the context error.
func (l *Linting) Wait(ctx context.Context) (Status, error) {
	select {
	case <-l.done:
		return l.Status(), nil
	case <-ctx.Done():
		return l.Status(), ctx.Err()
	}
}

// Complete settles the run with the given per-instance diagnostics,
// computing the terminal state from them. Only the first call has any
// effect; the run is immutable afterwards.
func (l *Linting) Complete(groups []RuleDiagnostics) {
	l.once.Do(func() {
		l.mu.Lock()
		l.groups = groups
		l.status = StatusOf(groups)
		l.mu.Unlock()
		close(l.done)
	})
}

// StatusOf computes the terminal state implied by a set of diagnostics:
// error if any error-severity diagnostic exists, else warning if any
// warning exists, else passing. The result depends only on the
// diagnostics themselves, never on their order.
func StatusOf(groups []RuleDiagnostics) Status {
	status := StatusPassing
	for _, g := range groups {
		for _, d := range g.Diagnostics {
			switch d.Severity {
			case Error:
				return StatusError
			case Warning:
				status = StatusWarning
			}
		}
	}
	return status
}
