package lint

import (
	"fmt"
	"sync"
)

// Reporter is the channel through which one rule instance emits
// diagnostics during one linting run. A Reporter may be called any
// number of times before the instance completes; once sealed, further
// calls are dropped rather than corrupting the run.
type Reporter struct {
	rule string

	mu     sync.Mutex
	sealed bool
	diags  []Diagnostic
}

// NewReporter returns a Reporter attributing diagnostics to the given
// rule instance label.
func NewReporter(rule string) *Reporter {
	return &Reporter{rule: rule}
}

// Rule returns the instance label this Reporter attributes to.
func (r *Reporter) Rule() string { return r.rule }

// Info records an informational diagnostic.
func (r *Reporter) Info(format string, args ...any) {
	r.record(Info, 0, 0, format, args...)
}

// Warn records a warning diagnostic.
func (r *Reporter) Warn(format string, args ...any) {
	r.record(Warning, 0, 0, format, args...)
}

// Error records an error diagnostic.
func (r *Reporter) Error(format string, args ...any) {
	r.record(Error, 0, 0, format, args...)
}

// ErrorAt records an error diagnostic with a source position.
func (r *Reporter) ErrorAt(line, col int, format string, args ...any) {
	r.record(Error, line, col, format, args...)
}

// WarnAt records a warning diagnostic with a source position.
func (r *Reporter) WarnAt(line, col int, format string, args ...any) {
	r.record(Warning, line, col, format, args...)
}

func (r *Reporter) record(sev Severity, line, col int, format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.sealed {
		return
	}
	r.diags = append(r.diags, Diagnostic{
		Rule:     r.rule,
		Severity: sev,
		Message:  fmt.Sprintf(format, args...),
		Line:     line,
		Column:   col,
	})
}

// Seal marks the instance as finished reporting. Diagnostics recorded
// after Seal are dropped. Seal is called by the engine, never by rules.
func (r *Reporter) Seal() {
	r.mu.Lock()
	r.sealed = true
	r.mu.Unlock()
}

// Diagnostics returns the recorded diagnostics in emission order.
func (r *Reporter) Diagnostics() []Diagnostic {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Diagnostic, len(r.diags))
	copy(out, r.diags)
	return out
}
