package config

// DetectorConfig controls which rule categories fire and which paths are
// suppressed after detection. Disabled categories and suppression globs are
// applied to the raw finding stream, not to the traversal.
type DetectorConfig struct {
	DisabledCategories []string `json:"disabled_categories,omitempty" yaml:"disabled_categories,omitempty"`
	SuppressPathGlobs  []string `json:"suppress_path_globs,omitempty" yaml:"suppress_path_globs,omitempty"`
}

// NewDefaultDetectorConfig creates a new DetectorConfig with default values.
func NewDefaultDetectorConfig() DetectorConfig {
	return DetectorConfig{}
}

// CategoryDisabled reports whether findings for the given rule category
// should be dropped.
func (c *DetectorConfig) CategoryDisabled(category string) bool {
	for _, disabled := range c.DisabledCategories {
		if disabled == category {
			return true
		}
	}
	return false
}
