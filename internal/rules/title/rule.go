// Package title requires an accessible <title> as a direct child of
// the root element.
package title

import (
	"fmt"
	"strings"

	"github.com/luciansmith/svglint/internal/lint"
	"github.com/luciansmith/svglint/internal/rule"
	"github.com/luciansmith/svglint/internal/svg"
)

func init() {
	rule.Register(&Rule{})
}

// Rule implements the title rule.
type Rule struct{}

// Name implements rule.Rule.
func (r *Rule) Name() string { return "title" }

// Instantiate implements rule.Rule. The optional minLength setting
// (default 1) sets the minimum length of the title text after trimming
// whitespace.
func (r *Rule) Instantiate(settings map[string]any) (rule.Instance, error) {
	minLength := 1
	if v, ok := settings["minLength"]; ok {
		n, ok := v.(int)
		if !ok || n < 1 {
			return nil, fmt.Errorf("title: minLength must be a positive integer, got %v", v)
		}
		minLength = n
	}

	return func(r *lint.Reporter, doc *svg.Document) {
		el := doc.Root().SelectElement("title")
		if el == nil {
			r.Error("missing <title> child of the root element")
			return
		}
		text := strings.TrimSpace(el.Text())
		if len(text) < minLength {
			r.Error("<title> text is %d characters, expected at least %d", len(text), minLength)
		}
	}, nil
}
