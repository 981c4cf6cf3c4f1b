// Package elm checks element presence and counts. Settings map etree
// path expressions to an expectation.
package elm

import (
	"fmt"
	"sort"

	"github.com/luciansmith/svglint/internal/lint"
	"github.com/luciansmith/svglint/internal/rule"
	"github.com/luciansmith/svglint/internal/svg"
)

func init() {
	rule.Register(&Rule{})
}

// Rule implements the elm rule.
type Rule struct{}

// Name implements rule.Rule.
func (r *Rule) Name() string { return "elm" }

type expectation struct {
	min   int
	max   int // -1 means unbounded
	exact bool
}

// Instantiate implements rule.Rule. Each settings key is an etree path;
// its value is one of:
//
//	true        at least one matching element is required
//	false       matching elements are banned
//	n           exactly n matching elements
//	[min, max]  an inclusive count range
func (r *Rule) Instantiate(settings map[string]any) (rule.Instance, error) {
	expect := make(map[string]expectation, len(settings))
	for path, val := range settings {
		exp, err := parseExpectation(path, val)
		if err != nil {
			return nil, err
		}
		expect[path] = exp
	}

	order := make([]string, 0, len(expect))
	for path := range expect {
		order = append(order, path)
	}
	sort.Strings(order)

	return func(r *lint.Reporter, doc *svg.Document) {
		for _, path := range order {
			exp := expect[path]
			count := len(doc.Find(path))
			switch {
			case exp.exact && count != exp.min:
				r.Error("expected exactly %d of %q, found %d", exp.min, path, count)
			case !exp.exact && count < exp.min:
				r.Error("expected at least %d of %q, found %d", exp.min, path, count)
			case !exp.exact && exp.max >= 0 && count > exp.max:
				r.Error("expected at most %d of %q, found %d", exp.max, path, count)
			}
		}
	}, nil
}

func parseExpectation(path string, val any) (expectation, error) {
	switch v := val.(type) {
	case bool:
		if v {
			return expectation{min: 1, max: -1}, nil
		}
		return expectation{min: 0, max: 0, exact: true}, nil
	case int:
		if v < 0 {
			return expectation{}, fmt.Errorf("elm: %q count must not be negative", path)
		}
		return expectation{min: v, exact: true}, nil
	case []any:
		if len(v) != 2 {
			return expectation{}, fmt.Errorf("elm: %q range must have two elements", path)
		}
		min, okMin := asInt(v[0])
		max, okMax := asInt(v[1])
		if !okMin || !okMax {
			return expectation{}, fmt.Errorf("elm: %q range must contain integers", path)
		}
		if min > max {
			return expectation{}, fmt.Errorf("elm: %q range min exceeds max", path)
		}
		return expectation{min: min, max: max}, nil
	default:
		return expectation{}, fmt.Errorf("elm: %q must be a bool, integer, or [min, max], got %T", path, val)
	}
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n == float64(int(n)) {
			return int(n), true
		}
	}
	return 0, false
}
