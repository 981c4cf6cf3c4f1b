package rule

import (
	"fmt"

	"github.com/luciansmith/svglint/internal/lint"
	"github.com/luciansmith/svglint/internal/svg"
)

// Instance is one configured, runnable occurrence of a rule. It is
// invoked at most once per linting run with a Reporter scoped to it and
// the document under lint. Completion is the function returning; rules
// that need asynchronous checks block inside the call (each instance
// runs on its own goroutine). The Reporter must not be retained after
// returning.
type Instance func(r *lint.Reporter, doc *svg.Document)

// Rule is a named validation template. Instantiate binds it to one
// configuration value, producing a runnable Instance. Settings is nil
// when the rule was enabled without configuration.
type Rule interface {
	Name() string
	Instantiate(settings map[string]any) (Instance, error)
}

// UnknownRuleError is returned when a configured rule name does not
// resolve to a registered rule.
type UnknownRuleError struct {
	Name string
}

func (e *UnknownRuleError) Error() string {
	return fmt.Sprintf("unknown rule %q", e.Name)
}
