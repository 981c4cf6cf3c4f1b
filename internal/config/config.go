package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration.
type Config struct {
	Rules  RuleSet  `yaml:"rules"`
	Ignore []string `yaml:"ignore"`
}

// RuleSet maps rule names to their configuration, preserving the order
// the names were declared in. Declaration order determines the order
// rule instances run and report; it never affects the lint outcome.
type RuleSet struct {
	Order  []string
	ByName map[string]RuleCfg
}

// Set adds or replaces a rule entry. New names are appended to the
// declaration order; existing names keep their position.
func (s *RuleSet) Set(name string, cfg RuleCfg) {
	if s.ByName == nil {
		s.ByName = make(map[string]RuleCfg)
	}
	if _, ok := s.ByName[name]; !ok {
		s.Order = append(s.Order, name)
	}
	s.ByName[name] = cfg
}

// Len returns the number of rule entries.
func (s *RuleSet) Len() int { return len(s.Order) }

// UnmarshalYAML implements custom YAML unmarshalling for RuleSet,
// walking the mapping node directly to keep declaration order.
func (s *RuleSet) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("rules must be a mapping, got %v", value.Kind)
	}
	for i := 0; i+1 < len(value.Content); i += 2 {
		var name string
		if err := value.Content[i].Decode(&name); err != nil {
			return fmt.Errorf("invalid rule name: %w", err)
		}
		var cfg RuleCfg
		if err := value.Content[i+1].Decode(&cfg); err != nil {
			return fmt.Errorf("rule %q: %w", name, err)
		}
		s.Set(name, cfg)
	}
	return nil
}

// RuleCfg is a YAML union for one rule entry. It handles four forms:
//   - false            -> Enabled=false (rule excluded entirely)
//   - true             -> Enabled=true, no settings
//   - {key: val, ...}  -> Enabled=true, one settings map
//   - [{...}, {...}]   -> Enabled=true, one settings map per element
//
// Many distinguishes the sequence form so that even a one-element array
// yields indexed instance attribution.
type RuleCfg struct {
	Enabled  bool
	Many     bool
	Settings []map[string]any
}

// UnmarshalYAML implements custom YAML unmarshalling for RuleCfg.
func (r *RuleCfg) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var b bool
		if err := value.Decode(&b); err != nil {
			return fmt.Errorf("rule config must be a bool, mapping, or sequence of mappings")
		}
		r.Enabled = b
		r.Many = false
		r.Settings = nil
		return nil

	case yaml.MappingNode:
		var m map[string]any
		if err := value.Decode(&m); err != nil {
			return fmt.Errorf("invalid rule config: %w", err)
		}
		r.Enabled = true
		r.Many = false
		r.Settings = []map[string]any{m}
		return nil

	case yaml.SequenceNode:
		var ms []map[string]any
		if err := value.Decode(&ms); err != nil {
			return fmt.Errorf("rule config sequence must contain mappings: %w", err)
		}
		r.Enabled = true
		r.Many = true
		r.Settings = ms
		return nil
	}

	return fmt.Errorf("rule config must be a bool, mapping, or sequence, got %v", value.Kind)
}
