// Package valid checks that a document is a well-formed SVG: the root
// element is svg and carries the SVG namespace.
package valid

import (
	"github.com/luciansmith/svglint/internal/lint"
	"github.com/luciansmith/svglint/internal/rule"
	"github.com/luciansmith/svglint/internal/svg"
)

func init() {
	rule.Register(&Rule{})
}

// Rule implements the valid rule. It takes no settings.
type Rule struct{}

// Name implements rule.Rule.
func (r *Rule) Name() string { return "valid" }

// Instantiate implements rule.Rule.
func (r *Rule) Instantiate(_ map[string]any) (rule.Instance, error) {
	return check, nil
}

func check(r *lint.Reporter, doc *svg.Document) {
	root := doc.Root()
	if root.Tag != "svg" {
		r.Error("root element is <%s>, expected <svg>", root.Tag)
		return
	}

	ns := root.SelectAttrValue("xmlns", "")
	switch ns {
	case svg.Namespace:
	case "":
		r.Warn("<svg> is missing the xmlns declaration")
	default:
		r.Error("<svg> has namespace %q, expected %q", ns, svg.Namespace)
	}
}
