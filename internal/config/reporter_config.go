package config

// ReporterConfig holds configuration for report serialization.
type ReporterConfig struct {
	OutputDir    string `json:"output_dir,omitempty" yaml:"output_dir,omitempty"`
	SarifEnabled bool   `json:"sarif_enabled" yaml:"sarif_enabled"`
}

// NewDefaultReporterConfig creates a new ReporterConfig with default values.
func NewDefaultReporterConfig() ReporterConfig {
	return ReporterConfig{
		OutputDir:    DefaultReporterOutputDir,
		SarifEnabled: false,
	}
}
