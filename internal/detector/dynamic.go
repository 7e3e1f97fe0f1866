package detector

import (
	"strings"

	"github.com/aleister1102/bugsentry/internal/models"
)

// DetectDynamicCodeExecution flags direct evaluation or execution of
// dynamically constructed code, permissive deserialization formats, XXE-prone
// XML parsing, and reflective attribute resolution. A validation marker
// within five lines suppresses the finding.
func DetectDynamicCodeExecution(file string, lines []string) []models.Finding {
	var findings []models.Finding

	for _, rule := range dynamicRules {
		for i, line := range lines {
			for _, pattern := range rule.Patterns {
				if !pattern.MatchString(line) {
					continue
				}
				if hasInputValidationNearby(lines, i) {
					continue
				}
				findings = append(findings, models.Finding{
					Type:           models.IssueTypeDynamicCodeExecution,
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
