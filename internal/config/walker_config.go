package config

// WalkerConfig holds the configuration for project tree traversal.
type WalkerConfig struct {
	ExcludedDirs     []string `json:"excluded_dirs,omitempty" yaml:"excluded_dirs,omitempty"`
	ExcludedKeywords []string `json:"excluded_keywords,omitempty" yaml:"excluded_keywords,omitempty"`
	SourceExtensions []string `json:"source_extensions,omitempty" yaml:"source_extensions,omitempty"`
	MaxFiles         int      `json:"max_files,omitempty" yaml:"max_files,omitempty" validate:"omitempty,min=1"`
}

// NewDefaultWalkerConfig creates a new WalkerConfig with default values.
func NewDefaultWalkerConfig() WalkerConfig {
	return WalkerConfig{
		ExcludedDirs:     append([]string(nil), DefaultExcludedDirs...),
		ExcludedKeywords: append([]string(nil), DefaultExcludedKeywords...),
		SourceExtensions: append([]string(nil), DefaultSourceExtensions...),
		MaxFiles:         DefaultWalkerMaxFiles,
	}
}
