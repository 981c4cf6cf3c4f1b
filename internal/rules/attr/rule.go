// Package attr checks attributes on selected elements: required
// attributes, banned attributes, permitted values, and optional
// whitelist mode where unlisted attributes are reported.
package attr

import (
	"fmt"
	"sort"

	"github.com/beevik/etree"
	"github.com/luciansmith/svglint/internal/lint"
	"github.com/luciansmith/svglint/internal/rule"
	"github.com/luciansmith/svglint/internal/svg"
)

func init() {
	rule.Register(&Rule{})
}

// Rule implements the attr rule.
type Rule struct{}

// Name implements rule.Rule.
func (r *Rule) Name() string { return "attr" }

// expectation describes what is allowed for one attribute.
type expectation struct {
	required bool
	banned   bool
	values   []string // permitted values; empty means any
}

type checker struct {
	selector  string
	whitelist bool
	expect    map[string]expectation
	order     []string
}

// Instantiate implements rule.Rule. Settings keys other than
// "selector" and "whitelist" name attributes:
//
//	true       the attribute is required
//	false      the attribute is banned
//	"value"    required, must equal the value
//	[a, b]     required, must be one of the values
func (r *Rule) Instantiate(settings map[string]any) (rule.Instance, error) {
	c := &checker{expect: make(map[string]expectation)}

	for key, val := range settings {
		switch key {
		case "selector":
			s, ok := val.(string)
			if !ok {
				return nil, fmt.Errorf("attr: selector must be a string, got %T", val)
			}
			c.selector = s
		case "whitelist":
			b, ok := val.(bool)
			if !ok {
				return nil, fmt.Errorf("attr: whitelist must be a bool, got %T", val)
			}
			c.whitelist = b
		default:
			exp, err := parseExpectation(key, val)
			if err != nil {
				return nil, err
			}
			c.expect[key] = exp
		}
	}
	// Deterministic report order for map-backed settings.
	for key := range c.expect {
		c.order = append(c.order, key)
	}
	sort.Strings(c.order)

	return c.run, nil
}

func parseExpectation(attr string, val any) (expectation, error) {
	switch v := val.(type) {
	case bool:
		if v {
			return expectation{required: true}, nil
		}
		return expectation{banned: true}, nil
	case string:
		return expectation{required: true, values: []string{v}}, nil
	case []any:
		values := make([]string, 0, len(v))
		for _, item := range v {
			values = append(values, fmt.Sprint(item))
		}
		return expectation{required: true, values: values}, nil
	default:
		return expectation{}, fmt.Errorf("attr: %q must be a bool, string, or list, got %T", attr, val)
	}
}

func (c *checker) run(r *lint.Reporter, doc *svg.Document) {
	var elements []*etree.Element
	if c.selector == "" {
		elements = []*etree.Element{doc.Root()}
	} else {
		elements = doc.Find(c.selector)
	}

	for _, el := range elements {
		c.checkElement(r, el)
	}
}

func (c *checker) checkElement(r *lint.Reporter, el *etree.Element) {
	for _, name := range c.order {
		exp := c.expect[name]
		attr := el.SelectAttr(name)

		if exp.banned {
			if attr != nil {
				r.Error("<%s> must not have attribute %q", el.Tag, name)
			}
			continue
		}
		if attr == nil {
			if exp.required {
				r.Error("<%s> is missing required attribute %q", el.Tag, name)
			}
			continue
		}
		if len(exp.values) > 0 && !contains(exp.values, attr.Value) {
			r.Error("<%s> attribute %q has value %q, expected one of %v",
				el.Tag, name, attr.Value, exp.values)
		}
	}

	if c.whitelist {
		for _, attr := range el.Attr {
			if attr.Space == "xmlns" || (attr.Space == "" && attr.Key == "xmlns") {
				continue
			}
			if _, ok := c.expect[attr.Key]; !ok {
				r.Error("<%s> has attribute %q not on the whitelist", el.Tag, attr.Key)
			}
		}
	}
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
