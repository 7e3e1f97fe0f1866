package detector

import (
	"strings"

	"github.com/aleister1102/bugsentry/internal/models"
)

// DetectInputInteraction flags externally-influenced data (request parameters,
// headers, cookies, uploads, third-party API responses) used without a
// validation marker in the surrounding lines.
func DetectInputInteraction(file string, lines []string) []models.Finding {
	var findings []models.Finding

	for _, rule := range inputRules {
		for i, line := range lines {
			for _, pattern := range rule.Patterns {
				if !pattern.MatchString(line) {
					continue
				}
				if hasValidationNearby(lines, i) {
					continue
				}
				findings = append(findings, models.Finding{
					Type:           models.IssueTypeInputInteraction,
					Category:       rule.Category,
					Severity:       rule.Severity,
					File:           file,
					Line:           i + 1,
					Code:           strings.TrimSpace(line),
					Description:    rule.Description,
					Recommendation: rule.Recommendation,
				})
			}
		}
	}

	return findings
}
