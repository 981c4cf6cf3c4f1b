package output

import (
	"encoding/json"
	"io"

	"github.com/luciansmith/svglint/internal/engine"
)

// JSONFormatter renders results as a JSON object.
type JSONFormatter struct{}

type jsonDiagnostic struct {
	Rule     string `json:"rule"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Line     int    `json:"line,omitempty"`
	Column   int    `json:"column,omitempty"`
}

type jsonLinting struct {
	Source      string           `json:"source"`
	Status      string           `json:"status"`
	Diagnostics []jsonDiagnostic `json:"diagnostics"`
}

type jsonSkipped struct {
	Source string `json:"source"`
	Reason string `json:"reason"`
}

type jsonResult struct {
	Lintings []jsonLinting `json:"lintings"`
	Skipped  []jsonSkipped `json:"skipped"`
	Failed   bool          `json:"failed"`
}

// Format writes a pretty-printed JSON object with one entry per
// linting and per skipped source. Empty collections produce [].
func (f *JSONFormatter) Format(w io.Writer, res *engine.Result) error {
	out := jsonResult{
		Lintings: make([]jsonLinting, 0, len(res.Lintings)),
		Skipped:  make([]jsonSkipped, 0, len(res.Skipped)),
		Failed:   res.Failed,
	}

	for _, l := range res.Lintings {
		jl := jsonLinting{
			Source:      l.Source(),
			Status:      string(l.Status()),
			Diagnostics: make([]jsonDiagnostic, 0),
		}
		for _, g := range l.Diagnostics() {
			for _, d := range g.Diagnostics {
				jl.Diagnostics = append(jl.Diagnostics, jsonDiagnostic{
					Rule:     d.Rule,
					Severity: string(d.Severity),
					Message:  d.Message,
					Line:     d.Line,
					Column:   d.Column,
				})
			}
		}
		out.Lintings = append(out.Lintings, jl)
	}

	for _, s := range res.Skipped {
		out.Skipped = append(out.Skipped, jsonSkipped{
			Source: s.Path,
			Reason: s.Err.Error(),
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
