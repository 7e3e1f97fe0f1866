package reporter

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/aleister1102/bugsentry/internal/common"
	"github.com/aleister1102/bugsentry/internal/models"
)

// SARIF 2.1.0 output, the subset GitHub code scanning and editors consume.

type sarifLog struct {
	Version string     `json:"version"`
	Schema  string     `json:"$schema"`
	Runs    []sarifRun `json:"runs"`
}

type sarifRun struct {
	Tool    sarifTool     `json:"tool"`
	Results []sarifResult `json:"results"`
}

type sarifTool struct {
	Driver sarifDriver `json:"driver"`
}

type sarifDriver struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type sarifResult struct {
	RuleID    string          `json:"ruleId"`
	Level     string          `json:"level"`
	Message   sarifMessage    `json:"message"`
	Locations []sarifLocation `json:"locations"`
}

type sarifMessage struct {
	Text string `json:"text"`
}

type sarifLocation struct {
	PhysicalLocation sarifPhysicalLocation `json:"physicalLocation"`
}

type sarifPhysicalLocation struct {
	ArtifactLocation sarifArtifactLocation `json:"artifactLocation"`
	Region           sarifRegion           `json:"region"`
}

type sarifArtifactLocation struct {
	URI string `json:"uri"`
}

type sarifRegion struct {
	StartLine int `json:"startLine"`
}

// WriteSARIF exports the report findings as <output_dir>/<fileBase>.sarif and
// returns the written path.
func (r *Reporter) WriteSARIF(report *models.Report, fileBase, toolName, toolVersion string) (string, error) {
	results := make([]sarifResult, 0, len(report.Issues))
	for _, finding := range report.Issues {
		line := finding.Line
		if line <= 0 {
			line = 1
		}
		results = append(results, sarifResult{
			RuleID: finding.Category,
			Level:  severityToLevel(finding.Severity),
			Message: sarifMessage{
				Text: strings.TrimSpace(finding.Description + ". " + finding.Recommendation),
			},
			Locations: []sarifLocation{
				{
					PhysicalLocation: sarifPhysicalLocation{
						ArtifactLocation: sarifArtifactLocation{
							URI: filepath.ToSlash(finding.File),
						},
						Region: sarifRegion{StartLine: line},
					},
				},
			},
		})
	}

	log := sarifLog{
		Version: "2.1.0",
		Schema:  "https://schemastore.azurewebsites.net/schemas/json/sarif-2.1.0-rtm.5.json",
		Runs: []sarifRun{
			{
				Tool: sarifTool{
					Driver: sarifDriver{Name: toolName, Version: toolVersion},
				},
				Results: results,
			},
		},
	}

	if err := os.MkdirAll(r.config.OutputDir, 0755); err != nil {
		return "", common.WrapError(err, "failed to create report output directory")
	}
	outPath := filepath.Join(r.config.OutputDir, fileBase+".sarif")

	data, err := json.MarshalIndent(log, "", "  ")
	if err != nil {
		return "", common.WrapError(err, "failed to marshal SARIF log")
	}
	if err := os.WriteFile(outPath, data, 0644); err != nil {
		return "", common.WrapError(err, "failed to write SARIF file: "+outPath)
	}

	r.logger.Info().Str("path", outPath).Msg("Wrote SARIF report")
	return outPath, nil
}

func severityToLevel(severity models.Severity) string {
	switch severity {
	case models.SeverityCritical, models.SeverityHigh:
		return "error"
	case models.SeverityMedium:
		return "warning"
	default:
		return "note"
	}
}
