package config

// StorageConfig holds the configuration for persisting scan findings.
type StorageConfig struct {
	Enabled          bool   `json:"enabled" yaml:"enabled"`
	ParquetBasePath  string `json:"parquet_base_path,omitempty" yaml:"parquet_base_path,omitempty"`
	CompressionCodec string `json:"compression_codec,omitempty" yaml:"compression_codec,omitempty" validate:"omitempty,oneof=zstd snappy gzip none"`
}

// NewDefaultStorageConfig creates a new StorageConfig with default values.
func NewDefaultStorageConfig() StorageConfig {
	return StorageConfig{
		Enabled:          false,
		ParquetBasePath:  DefaultStorageParquetBasePath,
		CompressionCodec: DefaultStorageCompressionCodec,
	}
}
