package output

import (
	"io"

	"github.com/luciansmith/svglint/internal/engine"
)

// Formatter defines the interface for rendering a settled run result.
type Formatter interface {
	Format(w io.Writer, res *engine.Result) error
}
