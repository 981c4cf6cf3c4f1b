package engine

import (
	"fmt"

	"github.com/luciansmith/svglint/internal/config"
	"github.com/luciansmith/svglint/internal/lint"
	"github.com/luciansmith/svglint/internal/log"
	"github.com/luciansmith/svglint/internal/rule"
	"github.com/luciansmith/svglint/internal/svg"
)

// ConfiguredRule is one normalized rule instance, ready to run. Index
// is -1 for a rule configured with a single value; rules configured
// with an array of values get one ConfiguredRule per element, indexed
// in array order.
type ConfiguredRule struct {
	Name  string
	Index int
	Run   rule.Instance
}

// Label returns the attribution label for this instance: the rule
// name, suffixed with the config index for array-derived instances.
func (c ConfiguredRule) Label() string {
	if c.Index < 0 {
		return c.Name
	}
	return fmt.Sprintf("%s[%d]", c.Name, c.Index)
}

// Normalized is the output of config normalization: the rule instances
// to run, in deterministic declaration order, plus the ignore patterns.
type Normalized struct {
	Instances []ConfiguredRule
	Ignore    []string
}

// Normalize turns a merged configuration into runnable rule instances.
// A rule entry with value false produces no instance. An unknown rule
// name is recovered locally: a warning is logged and the entry is
// skipped, never failing normalization. An instantiation failure
// degrades to an instance that reports a single error diagnostic, so
// misconfiguration surfaces in the lint result without aborting
// sibling rules.
func Normalize(cfg *config.Config, logger *log.Logger) *Normalized {
	n := &Normalized{Ignore: cfg.Ignore}

	for _, name := range cfg.Rules.Order {
		rc := cfg.Rules.ByName[name]
		if !rc.Enabled {
			continue
		}

		def, err := rule.Resolve(name)
		if err != nil {
			logger.Warnf("%v, skipping", err)
			continue
		}

		settings := rc.Settings
		if settings == nil {
			settings = []map[string]any{nil}
		}
		for i, s := range settings {
			idx := -1
			if rc.Many {
				idx = i
			}
			n.Instances = append(n.Instances, ConfiguredRule{
				Name:  name,
				Index: idx,
				Run:   instantiate(def, s),
			})
		}
	}

	return n
}

func instantiate(def rule.Rule, settings map[string]any) rule.Instance {
	inst, err := def.Instantiate(settings)
	if err != nil {
		return func(r *lint.Reporter, _ *svg.Document) {
			r.Error("invalid configuration: %v", err)
		}
	}
	return inst
}
