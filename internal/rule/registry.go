package rule

var registry []Rule

// Register adds a rule to the global registry.
func Register(r Rule) {
	registry = append(registry, r)
}

// All returns a copy of all registered rules.
func All() []Rule {
	result := make([]Rule, len(registry))
	copy(result, registry)
	return result
}

// Resolve returns the registered rule with the given name, or an
// UnknownRuleError if no such rule exists.
func Resolve(name string) (Rule, error) {
	for _, r := range registry {
		if r.Name() == name {
			return r, nil
		}
	}
	return nil, &UnknownRuleError{Name: name}
}

// Reset clears the registry. Used for testing.
func Reset() {
	registry = nil
}
