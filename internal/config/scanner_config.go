package config

// ScannerConfig holds configuration for the scan orchestrator.
type ScannerConfig struct {
	// MaxWorkers bounds the number of files analyzed concurrently. Detector
	// output order does not depend on this value.
	MaxWorkers int `json:"max_workers,omitempty" yaml:"max_workers,omitempty" validate:"omitempty,min=1"`
}

// NewDefaultScannerConfig creates a new ScannerConfig with default values.
func NewDefaultScannerConfig() ScannerConfig {
	return ScannerConfig{
		MaxWorkers: DefaultScannerMaxWorkers,
	}
}
