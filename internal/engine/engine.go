package engine

import (
	"sync"
	"time"

	"github.com/luciansmith/svglint/internal/lint"
	"github.com/luciansmith/svglint/internal/svg"
)

// Options tunes a linting run.
type Options struct {
	// RuleTimeout bounds how long one rule instance may run before the
	// engine gives up on it, records an error diagnostic against it,
	// and lets the run settle without it. Zero means no bound.
	RuleTimeout time.Duration
}

// Lint starts one linting run of the normalized rule instances against
// doc and returns the Linting immediately, before completion. Each
// instance runs on its own goroutine with a Reporter scoped to it; a
// panicking instance yields one error diagnostic attributed to it and
// never aborts siblings. The run settles once every instance has
// completed (or timed out under Options.RuleTimeout): the terminal
// state is computed from the collected diagnostics, the diagnostics
// are frozen grouped per instance in declaration order, and Done is
// closed exactly once.
func Lint(doc *svg.Document, n *Normalized, opts Options) *lint.Linting {
	source := doc.Path
	if source == "" {
		source = "<stdin>"
	}
	l := lint.NewLinting(source)

	go func() {
		reporters := make([]*lint.Reporter, len(n.Instances))
		var wg sync.WaitGroup
		for i, inst := range n.Instances {
			rep := lint.NewReporter(inst.Label())
			reporters[i] = rep
			wg.Add(1)
			go func(inst ConfiguredRule, rep *lint.Reporter) {
				defer wg.Done()
				runInstance(inst, rep, doc, opts.RuleTimeout)
			}(inst, rep)
		}
		wg.Wait()

		groups := make([]lint.RuleDiagnostics, 0, len(reporters))
		for _, rep := range reporters {
			groups = append(groups, lint.RuleDiagnostics{
				Rule:        rep.Rule(),
				Diagnostics: rep.Diagnostics(),
			})
		}
		l.Complete(groups)
	}()

	return l
}

// runInstance invokes one rule instance and seals its reporter when it
// completes. With a timeout, a stalled instance is abandoned: its
// reporter is sealed after an error diagnostic is recorded, and any
// later calls from the stray goroutine are dropped by the seal.
func runInstance(inst ConfiguredRule, rep *lint.Reporter, doc *svg.Document, timeout time.Duration) {
	invoke := func() {
		defer func() {
			if p := recover(); p != nil {
				rep.Error("rule panicked: %v", p)
			}
		}()
		inst.Run(rep, doc)
	}

	if timeout <= 0 {
		invoke()
		rep.Seal()
		return
	}

	finished := make(chan struct{})
	go func() {
		invoke()
		close(finished)
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case <-finished:
	case <-timer.C:
		rep.Error("rule did not complete within %s", timeout)
	}
	rep.Seal()
}
