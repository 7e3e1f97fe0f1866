package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/aleister1102/bugsentry/internal/common"
	"gopkg.in/yaml.v3"
)

// GlobalConfig contains all configuration sections for the application.
// The compiled-in defaults are the configuration; a file only overrides them.
type GlobalConfig struct {
	WalkerConfig          WalkerConfig          `json:"walker_config,omitempty" yaml:"walker_config,omitempty"`
	DetectorConfig        DetectorConfig        `json:"detector_config,omitempty" yaml:"detector_config,omitempty"`
	ScannerConfig         ScannerConfig         `json:"scanner_config,omitempty" yaml:"scanner_config,omitempty"`
	StorageConfig         StorageConfig         `json:"storage_config,omitempty" yaml:"storage_config,omitempty"`
	ReporterConfig        ReporterConfig        `json:"reporter_config,omitempty" yaml:"reporter_config,omitempty"`
	ResourceLimiterConfig ResourceLimiterConfig `json:"resource_limiter_config,omitempty" yaml:"resource_limiter_config,omitempty"`
	LogConfig             LogConfig             `json:"log_config,omitempty" yaml:"log_config,omitempty"`
}

// NewDefaultGlobalConfig creates a new GlobalConfig with default values
func NewDefaultGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		WalkerConfig:          NewDefaultWalkerConfig(),
		DetectorConfig:        NewDefaultDetectorConfig(),
		ScannerConfig:         NewDefaultScannerConfig(),
		StorageConfig:         NewDefaultStorageConfig(),
		ReporterConfig:        NewDefaultReporterConfig(),
		ResourceLimiterConfig: NewDefaultResourceLimiterConfig(),
		LogConfig:             NewDefaultLogConfig(),
	}
}

// LoadGlobalConfig loads the configuration from a file or default locations.
// It determines the config file path using GetConfigPath and supports both
// JSON and YAML formats. A missing file yields the defaults, not an error.
func LoadGlobalConfig(providedPath string) (*GlobalConfig, error) {
	cfg := NewDefaultGlobalConfig()

	filePath := GetConfigPath(providedPath)
	if filePath == "" {
		if providedPath != "" {
			return nil, NewValidationError("config_file", providedPath, "config file does not exist")
		}
		return cfg, nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, common.WrapError(err, "failed to read config file: "+filePath)
	}

	switch filepath.Ext(filePath) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, common.WrapError(err, "failed to parse YAML config: "+filePath)
		}
	case ".json":
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, common.WrapError(err, "failed to parse JSON config: "+filePath)
		}
	default:
		return nil, NewValidationError("config_file", filePath, "unsupported config file extension")
	}

	cfg.applyDefaultsForZeroValues()

	if err := ValidateConfig(cfg); err != nil {
		return nil, common.WrapError(err, "config validation failed")
	}

	return cfg, nil
}

// applyDefaultsForZeroValues backfills fields a partial config file left unset.
func (cfg *GlobalConfig) applyDefaultsForZeroValues() {
	if len(cfg.WalkerConfig.ExcludedDirs) == 0 {
		cfg.WalkerConfig.ExcludedDirs = append([]string(nil), DefaultExcludedDirs...)
	}
	if len(cfg.WalkerConfig.ExcludedKeywords) == 0 {
		cfg.WalkerConfig.ExcludedKeywords = append([]string(nil), DefaultExcludedKeywords...)
	}
	if len(cfg.WalkerConfig.SourceExtensions) == 0 {
		cfg.WalkerConfig.SourceExtensions = append([]string(nil), DefaultSourceExtensions...)
	}
	if cfg.WalkerConfig.MaxFiles == 0 {
		cfg.WalkerConfig.MaxFiles = DefaultWalkerMaxFiles
	}
	if cfg.ScannerConfig.MaxWorkers == 0 {
		cfg.ScannerConfig.MaxWorkers = DefaultScannerMaxWorkers
	}
	if cfg.StorageConfig.ParquetBasePath == "" {
		cfg.StorageConfig.ParquetBasePath = DefaultStorageParquetBasePath
	}
	if cfg.StorageConfig.CompressionCodec == "" {
		cfg.StorageConfig.CompressionCodec = DefaultStorageCompressionCodec
	}
	if cfg.ReporterConfig.OutputDir == "" {
		cfg.ReporterConfig.OutputDir = DefaultReporterOutputDir
	}
	if cfg.ResourceLimiterConfig.MaxMemoryMB == 0 {
		cfg.ResourceLimiterConfig.MaxMemoryMB = DefaultLimiterMaxMemoryMB
	}
	if cfg.ResourceLimiterConfig.MaxGoroutines == 0 {
		cfg.ResourceLimiterConfig.MaxGoroutines = DefaultLimiterMaxGoroutines
	}
	if cfg.ResourceLimiterConfig.SystemMemThreshold == 0 {
		cfg.ResourceLimiterConfig.SystemMemThreshold = DefaultLimiterSystemMemThreshold
	}
	if cfg.ResourceLimiterConfig.CheckInterval == 0 {
		cfg.ResourceLimiterConfig.CheckInterval = DefaultLimiterCheckIntervalSecs * time.Second
	}
	if cfg.LogConfig.LogLevel == "" {
		cfg.LogConfig.LogLevel = DefaultLogLevel
	}
	if cfg.LogConfig.LogFormat == "" {
		cfg.LogConfig.LogFormat = DefaultLogFormat
	}
	if cfg.LogConfig.MaxLogSizeMB == 0 {
		cfg.LogConfig.MaxLogSizeMB = DefaultMaxLogSizeMB
	}
	if cfg.LogConfig.MaxLogBackups == 0 {
		cfg.LogConfig.MaxLogBackups = DefaultMaxLogBackups
	}
}
