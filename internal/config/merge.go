package config

// Merge merges a loaded config on top of defaults. The merge is
// shallow: a rule named in loaded replaces the default entry wholesale,
// and the ignore list comes from loaded when present. An absent rules
// key behaves as an empty mapping, an absent ignore key as an empty
// list.
func Merge(defaults, loaded *Config) *Config {
	out := &Config{}

	for _, name := range defaults.Rules.Order {
		out.Rules.Set(name, defaults.Rules.ByName[name])
	}
	out.Ignore = append(out.Ignore, defaults.Ignore...)

	if loaded == nil {
		return out
	}

	for _, name := range loaded.Rules.Order {
		out.Rules.Set(name, loaded.Rules.ByName[name])
	}
	if loaded.Ignore != nil {
		out.Ignore = append([]string(nil), loaded.Ignore...)
	}

	return out
}
