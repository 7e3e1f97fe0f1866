package config

const (
	// Log Defaults
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "console"
	DefaultLogFile       = ""
	DefaultMaxLogSizeMB  = 100
	DefaultMaxLogBackups = 3

	// Walker Defaults
	DefaultWalkerMaxFiles = 200

	// Scanner Defaults
	DefaultScannerMaxWorkers = 4

	// Storage Defaults
	DefaultStorageParquetBasePath  = "database"
	DefaultStorageCompressionCodec = "zstd"

	// Reporter Defaults
	DefaultReporterOutputDir = "reports/scan"

	// Limiter Defaults
	DefaultLimiterMaxMemoryMB        = 1024
	DefaultLimiterMaxGoroutines      = 64
	DefaultLimiterSystemMemThreshold = 0.9
	DefaultLimiterCheckIntervalSecs  = 30
)

// DefaultExcludedDirs are directory names pruned before descending. Scanning
// vendored or generated trees produces overwhelming noise and misattributed
// findings, so exclusion is a correctness requirement rather than an optimization.
var DefaultExcludedDirs = []string{
	"venv",
	"__pycache__",
	".git",
	"node_modules",
	".pytest_cache",
	".mypy_cache",
	"env",
	".env",
	"site-packages",
	"dist-packages",
	".eggs",
}

// DefaultExcludedKeywords are lowercase path fragments that mark a file as
// test fixture or vendored framework code.
var DefaultExcludedKeywords = []string{
	"tests/",
	"/tests",
	"examples/",
	"/examples",
	"sample/",
	"/sample",
	"demo/",
	"/demo",
	"flask-",
	"django-",
	"werkzeug",
	"sqlalchemy",
}

// DefaultSourceExtensions are the file extensions opened for analysis.
var DefaultSourceExtensions = []string{".py"}
