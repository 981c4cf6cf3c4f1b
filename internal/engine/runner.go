package engine

import (
	"path/filepath"

	"github.com/gobwas/glob"
	"github.com/luciansmith/svglint/internal/lint"
	"github.com/luciansmith/svglint/internal/log"
	"github.com/luciansmith/svglint/internal/svg"
)

// Runner fans one normalized rule set out across multiple input
// sources, one Linting per source, and aggregates the terminal states
// into a single process outcome.
type Runner struct {
	Normalized *Normalized
	Options    Options
	Logger     *log.Logger
}

// SkippedSource records a source that could not be linted at all.
type SkippedSource struct {
	Path string
	Err  error
}

// Result holds the outcome of a multi-source run. Failed is true iff
// at least one Linting reached the error state; skipped sources never
// fail the aggregate by themselves.
type Result struct {
	Lintings []*lint.Linting
	Skipped  []SkippedSource
	Failed   bool
}

// Run lints the files at the given paths. Paths matching an ignore
// pattern are dropped. A file that cannot be read or parsed becomes a
// SkippedSource, reported distinctly, and does not contribute to the
// aggregate. Run waits for every started Linting to reach a terminal
// state before returning; no run is dropped.
func (r *Runner) Run(paths []string) *Result {
	res := &Result{}

	for _, path := range paths {
		if r.isIgnored(path) {
			r.Logger.Debugf("ignoring %s", path)
			continue
		}

		doc, err := svg.ParseFile(path)
		if err != nil {
			res.Skipped = append(res.Skipped, SkippedSource{Path: path, Err: err})
			continue
		}

		r.Logger.Debugf("linting %s", path)
		res.Lintings = append(res.Lintings, Lint(doc, r.Normalized, r.Options))
	}

	r.settle(res)
	return res
}

// RunSource lints a single in-memory source under the given name.
func (r *Runner) RunSource(name string, source []byte) *Result {
	res := &Result{}

	doc, err := svg.Parse(name, source)
	if err != nil {
		res.Skipped = append(res.Skipped, SkippedSource{Path: name, Err: err})
		return res
	}

	res.Lintings = append(res.Lintings, Lint(doc, r.Normalized, r.Options))
	r.settle(res)
	return res
}

// settle waits for all started lintings and tallies the aggregate.
// The tally is only read after every run has completed.
func (r *Runner) settle(res *Result) {
	for _, l := range res.Lintings {
		<-l.Done()
		r.Logger.Debugf("%s: %s", l.Source(), l.Status())
		if l.Status() == lint.StatusError {
			res.Failed = true
		}
	}
}

// isIgnored returns true if the file path matches any of the
// normalized ignore patterns.
func (r *Runner) isIgnored(path string) bool {
	cleanPath := filepath.Clean(path)

	for _, pattern := range r.Normalized.Ignore {
		g, err := glob.Compile(pattern)
		if err != nil {
			continue
		}
		if g.Match(path) || g.Match(cleanPath) || g.Match(filepath.Base(path)) {
			return true
		}
	}
	return false
}
