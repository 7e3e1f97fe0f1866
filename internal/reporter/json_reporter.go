// Package reporter serializes scan reports for downstream consumers: indented
// JSON for the workflow that merges reports, SARIF 2.1.0 for code-scanning UIs.
package reporter

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/aleister1102/bugsentry/internal/common"
	"github.com/aleister1102/bugsentry/internal/config"
	"github.com/aleister1102/bugsentry/internal/models"
	"github.com/rs/zerolog"
)

// Reporter writes scan reports to files or streams.
type Reporter struct {
	config config.ReporterConfig
	logger zerolog.Logger
}

// NewReporter creates a new Reporter instance.
func NewReporter(cfg config.ReporterConfig, logger zerolog.Logger) *Reporter {
	return &Reporter{
		config: cfg,
		logger: logger.With().Str("component", "Reporter").Logger(),
	}
}

// WriteJSON streams the report as indented JSON.
func (r *Reporter) WriteJSON(report *models.Report, w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return common.WrapError(err, "failed to encode report")
	}
	return nil
}

// WriteJSONFile writes the report to <output_dir>/<fileBase>.json and returns
// the written path.
func (r *Reporter) WriteJSONFile(report *models.Report, fileBase string) (string, error) {
	if err := os.MkdirAll(r.config.OutputDir, 0755); err != nil {
		return "", common.WrapError(err, "failed to create report output directory")
	}

	outPath := filepath.Join(r.config.OutputDir, fileBase+".json")
	file, err := os.Create(outPath)
	if err != nil {
		return "", common.WrapError(err, "failed to create report file: "+outPath)
	}
	defer file.Close()

	if err := r.WriteJSON(report, file); err != nil {
		return "", err
	}

	r.logger.Info().Str("path", outPath).Msg("Wrote JSON report")
	return outPath, nil
}
