package output

import (
	"fmt"
	"io"

	"github.com/luciansmith/svglint/internal/engine"
	"github.com/luciansmith/svglint/internal/lint"
)

// TextFormatter renders results in human-readable text. When Color is
// true, sources are printed in cyan and rule labels in yellow.
type TextFormatter struct {
	Color bool
}

// Format writes one line per diagnostic in the pattern
// "source rule [severity] message" (with "line:col" appended to the
// source when positional info exists), followed by one line per
// skipped source. Diagnostics appear grouped per rule instance in
// declaration order.
func (f *TextFormatter) Format(w io.Writer, res *engine.Result) error {
	for _, l := range res.Lintings {
		for _, g := range l.Diagnostics() {
			for _, d := range g.Diagnostics {
				if err := f.writeDiagnostic(w, l.Source(), d); err != nil {
					return err
				}
			}
		}
	}

	for _, s := range res.Skipped {
		if _, err := fmt.Fprintf(w, "%s skipped: %v\n", s.Path, s.Err); err != nil {
			return err
		}
	}
	return nil
}

func (f *TextFormatter) writeDiagnostic(w io.Writer, source string, d lint.Diagnostic) error {
	loc := source
	if d.Line > 0 {
		loc = fmt.Sprintf("%s:%d:%d", source, d.Line, d.Column)
	}

	var err error
	if f.Color {
		_, err = fmt.Fprintf(w, "\033[36m%s\033[0m \033[33m%s\033[0m [%s] %s\n",
			loc, d.Rule, d.Severity, d.Message)
	} else {
		_, err = fmt.Fprintf(w, "%s %s [%s] %s\n", loc, d.Rule, d.Severity, d.Message)
	}
	return err
}
