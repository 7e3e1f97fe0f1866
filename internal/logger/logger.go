package logger

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aleister1102/bugsentry/internal/common"
	"github.com/aleister1102/bugsentry/internal/config"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New creates a zerolog logger from the log configuration. Console output goes
// to stderr so report JSON on stdout stays machine-readable; file output is
// rotated with lumberjack.
func New(cfg config.LogConfig) (zerolog.Logger, error) {
	level, err := parseLevel(cfg.LogLevel)
	if err != nil {
		return zerolog.Nop(), err
	}

	writers := []io.Writer{consoleWriter(cfg.LogFormat)}
	if cfg.LogFile != "" {
		fileWriter, err := newFileWriter(cfg)
		if err != nil {
			return zerolog.Nop(), err
		}
		writers = append(writers, fileWriter)
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(level).
		With().
		Timestamp().
		Logger()

	return logger, nil
}

func parseLevel(level string) (zerolog.Level, error) {
	if level == "" {
		level = config.DefaultLogLevel
	}
	parsed, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.NoLevel, common.WrapErrorf(err, "unknown log level '%s'", level)
	}
	return parsed, nil
}

func consoleWriter(format string) io.Writer {
	switch strings.ToLower(format) {
	case "json":
		return os.Stderr
	default:
		return zerolog.ConsoleWriter{Out: os.Stderr}
	}
}

func newFileWriter(cfg config.LogConfig) (io.Writer, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0755); err != nil {
		return nil, common.WrapError(err, "failed to create log directory")
	}
	return &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    cfg.MaxLogSizeMB,
		MaxBackups: cfg.MaxLogBackups,
		LocalTime:  true,
	}, nil
}
