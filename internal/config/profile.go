package config

// Profile holds a named set of wordlist generation knobs.
// Profiles let users keep recurring engagement settings (year windows,
// separator sets, size caps) in the configuration file instead of
// repeating CLI flags on every run.
type Profile struct {
	// Years is the year specification for candidate decoration.
	// Comma-separated years and FROM-TO ranges ("1990-1995,2024").
	Years string `yaml:"years,omitempty"`

	// Separators are the joiner strings for token pair combination.
	// An explicit empty list disables pair joining.
	Separators []string `yaml:"separators,omitempty"`

	// Leet toggles leetspeak substitution. A pointer distinguishes an
	// explicit "leet: false" from an absent key.
	Leet *bool `yaml:"leet,omitempty"`

	// LeetMax overrides the per-token leetspeak variant budget.
	// If zero, the global budget is used.
	LeetMax int `yaml:"leetMax,omitempty"`

	// MaxSize overrides the candidate cap for generated wordlists.
	// If zero, the global cap is used.
	MaxSize int `yaml:"maxSize,omitempty"`

	// Output overrides the wordlist output file path.
	Output string `yaml:"output,omitempty"`
}

// File represents the structure of the .passaudit configuration file.
type File struct {
	// Profiles maps profile names to their generation knobs.
	// Names are chosen by the user (e.g., "corporate", "ctf").
	Profiles map[string]Profile `yaml:"profiles,omitempty"`

	// Defaults contains default generation knobs applied to every run
	// unless overridden in the selected profile.
	Defaults Profile `yaml:"defaults,omitempty"`
}

// GetProfile returns the generation knobs for a named profile merged over
// the file defaults. The boolean reports whether the named profile exists;
// when it does not, the returned profile carries the defaults only.
func (cf *File) GetProfile(name string) (Profile, bool) {
	// Start with defaults
	result := cf.Defaults

	p, ok := cf.Profiles[name]
	if !ok {
		return result, false
	}

	// Override with profile-specific knobs if present
	if p.Years != "" {
		result.Years = p.Years
	}
	if p.Separators != nil {
		result.Separators = p.Separators
	}
	if p.Leet != nil {
		result.Leet = p.Leet
	}
	if p.LeetMax != 0 {
		result.LeetMax = p.LeetMax
	}
	if p.MaxSize != 0 {
		result.MaxSize = p.MaxSize
	}
	if p.Output != "" {
		result.Output = p.Output
	}

	return result, true
}
