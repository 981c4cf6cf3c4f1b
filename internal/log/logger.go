package log

import (
	"fmt"
	"io"
)

// Logger writes diagnostic messages to the configured writer
// (typically stderr). Debugf output is gated behind Verbose; Warnf
// always writes, prefixed so operators can spot recovered problems
// such as unknown rule names.
type Logger struct {
	Verbose bool
	W       io.Writer
}

// Debugf writes a formatted message to W when Verbose is true.
func (l *Logger) Debugf(format string, args ...any) {
	if !l.Verbose {
		return
	}
	_, _ = fmt.Fprintf(l.W, format+"\n", args...)
}

// Warnf writes a formatted warning to W regardless of Verbose.
func (l *Logger) Warnf(format string, args ...any) {
	_, _ = fmt.Fprintf(l.W, "warning: "+format+"\n", args...)
}
