package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfigFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadGlobalConfigDefaults(t *testing.T) {
	cfg, err := LoadGlobalConfig("")
	if err != nil {
		t.Fatalf("LoadGlobalConfig: %v", err)
	}

	if cfg.WalkerConfig.MaxFiles != DefaultWalkerMaxFiles {
		t.Errorf("MaxFiles = %d, want %d", cfg.WalkerConfig.MaxFiles, DefaultWalkerMaxFiles)
	}
	if cfg.ScannerConfig.MaxWorkers != DefaultScannerMaxWorkers {
		t.Errorf("MaxWorkers = %d, want %d", cfg.ScannerConfig.MaxWorkers, DefaultScannerMaxWorkers)
	}
	if cfg.LogConfig.LogLevel != DefaultLogLevel {
		t.Errorf("LogLevel = %s, want %s", cfg.LogConfig.LogLevel, DefaultLogLevel)
	}
	if len(cfg.WalkerConfig.SourceExtensions) == 0 || cfg.WalkerConfig.SourceExtensions[0] != ".py" {
		t.Errorf("SourceExtensions = %v, want [.py]", cfg.WalkerConfig.SourceExtensions)
	}
	if cfg.StorageConfig.Enabled {
		t.Error("storage enabled by default, want disabled")
	}
}

func TestLoadGlobalConfigYAMLOverride(t *testing.T) {
	path := writeConfigFile(t, "config.yaml", `
scanner_config:
  max_workers: 8
log_config:
  log_level: debug
detector_config:
  disabled_categories:
    - eval
`)

	cfg, err := LoadGlobalConfig(path)
	if err != nil {
		t.Fatalf("LoadGlobalConfig: %v", err)
	}

	if cfg.ScannerConfig.MaxWorkers != 8 {
		t.Errorf("MaxWorkers = %d, want 8", cfg.ScannerConfig.MaxWorkers)
	}
	if cfg.LogConfig.LogLevel != "debug" {
		t.Errorf("LogLevel = %s, want debug", cfg.LogConfig.LogLevel)
	}
	if !cfg.DetectorConfig.CategoryDisabled("eval") {
		t.Error("eval not disabled")
	}

	// Sections the file does not mention keep their defaults.
	if cfg.WalkerConfig.MaxFiles != DefaultWalkerMaxFiles {
		t.Errorf("MaxFiles = %d, want backfilled default %d", cfg.WalkerConfig.MaxFiles, DefaultWalkerMaxFiles)
	}
	if len(cfg.WalkerConfig.ExcludedDirs) == 0 {
		t.Error("ExcludedDirs not backfilled")
	}
}

func TestLoadGlobalConfigJSON(t *testing.T) {
	path := writeConfigFile(t, "config.json", `{"walker_config": {"max_files": 50}}`)

	cfg, err := LoadGlobalConfig(path)
	if err != nil {
		t.Fatalf("LoadGlobalConfig: %v", err)
	}
	if cfg.WalkerConfig.MaxFiles != 50 {
		t.Errorf("MaxFiles = %d, want 50", cfg.WalkerConfig.MaxFiles)
	}
}

func TestLoadGlobalConfigInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "bad log level",
			file: "config.yaml",
			content: `log_config:
  log_level: verbose
`,
		},
		{
			name: "bad compression codec",
			file: "config.yaml",
			content: `storage_config:
  compression_codec: lzma
`,
		},
		{
			name:    "malformed yaml",
			file:    "config.yaml",
			content: "scanner_config: [not a mapping\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfigFile(t, tt.file, tt.content)
			if _, err := LoadGlobalConfig(path); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestLoadGlobalConfigMissingProvidedPath(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.yaml")
	_, err := LoadGlobalConfig(missing)
	if err == nil {
		t.Fatal("expected error for missing provided path")
	}
	if !strings.Contains(err.Error(), "does not exist") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestGetConfigPath(t *testing.T) {
	existing := writeConfigFile(t, "config.yaml", "log_config:\n  log_level: info\n")

	if got := GetConfigPath(existing); got != existing {
		t.Errorf("GetConfigPath(existing) = %q, want %q", got, existing)
	}
	if got := GetConfigPath(filepath.Join(t.TempDir(), "absent.yaml")); got != "" {
		t.Errorf("GetConfigPath(absent) = %q, want empty", got)
	}

	t.Setenv("BUGSENTRY_CONFIG_PATH", existing)
	if got := GetConfigPath(""); got != existing {
		t.Errorf("GetConfigPath with env = %q, want %q", got, existing)
	}
}
