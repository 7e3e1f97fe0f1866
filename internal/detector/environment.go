package detector

import (
	"regexp"
	"strings"

	"github.com/aleister1102/bugsentry/internal/models"
)

var (
	envReadRe    = regexp.MustCompile(`os\.environ\[|os\.getenv\(`)
	configReadRe = regexp.MustCompile(`config\[|config\.get\(|\.ini|\.yaml|\.yml|\.json`)
	datetimeRe   = regexp.MustCompile(`datetime\.(now|utcnow)\(`)
)

// DetectEnvironmentDependencies flags environment-variable reads without a
// fallback, configuration reads without validation evidence, and naive
// date/time construction that omits timezone information.
func DetectEnvironmentDependencies(file string, lines []string) []models.Finding {
	var findings []models.Finding

	for i, line := range lines {
		if envReadRe.MatchString(line) && !hasDefaultValue(line) {
			findings = append(findings, models.Finding{
				Type:           models.IssueTypeEnvironmentDependency,
				Category:       "missing_env_default",
				Severity:       models.SeverityMedium,
				File:           file,
				Line:           i + 1,
				Code:           strings.TrimSpace(line),
				Description:    "Environment variable may be unset, no default provided",
				Recommendation: "Provide a default value for the environment variable",
			})
		}

		if configReadRe.MatchString(line) && !hasConfigValidation(lines, i) {
			findings = append(findings, models.Finding{
				Type:           models.IssueTypeEnvironmentDependency,
				Category:       "config_validation",
				Severity:       models.SeverityLow,
				File:           file,
				Line:           i + 1,
				Code:           strings.TrimSpace(line),
				Description:    "Configuration read without validation",
				Recommendation: "Validate configuration completeness and integrity",
			})
		}

		if datetimeRe.MatchString(line) && !strings.Contains(line, "tz") {
			findings = append(findings, models.Finding{
				Type:           models.IssueTypeEnvironmentDependency,
				Category:       "timezone_handling",
				Severity:       models.SeverityLow,
				File:           file,
				Line:           i + 1,
				Code:           strings.TrimSpace(line),
				Description:    "Time construction may ignore timezones",
				Recommendation: "Specify an explicit timezone or use timezone-aware datetimes",
			})
		}
	}

	return findings
}
