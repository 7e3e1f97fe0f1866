package detector

import (
	"regexp"
	"strings"

	"github.com/aleister1102/bugsentry/internal/models"
)

var (
	threadSpawnRe   = regexp.MustCompile(`threading\.Thread\(`)
	processSpawnRe  = regexp.MustCompile(`multiprocessing\.(Process|Pool)\(`)
	asyncDefRe      = regexp.MustCompile(`async\s+def\s+`)
	awaitKeywordRe  = regexp.MustCompile(`\bawait\s+`)
	asyncBodyCallRe = regexp.MustCompile(`\w+\s*\(`)
)

// DetectConcurrency flags thread spawns without synchronization evidence,
// process spawns needing IPC bookkeeping, and async function bodies that call
// without awaiting. The await check is textual proximity, not reachability.
func DetectConcurrency(file string, lines []string) []models.Finding {
	var findings []models.Finding

	for i, line := range lines {
		if threadSpawnRe.MatchString(line) && !hasLockProtection(lines, i) {
			findings = append(findings, models.Finding{
				Type:           models.IssueTypeConcurrency,
				Category:       "threading_race_condition",
				Severity:       models.SeverityHigh,
				File:           file,
				Line:           i + 1,
				Code:           strings.TrimSpace(line),
				Description:    "Threaded access to shared state may race",
				Recommendation: "Protect shared state with a lock or another synchronization mechanism",
			})
		}

		if processSpawnRe.MatchString(line) {
			findings = append(findings, models.Finding{
				Type:           models.IssueTypeConcurrency,
				Category:       "multiprocessing",
				Severity:       models.SeverityMedium,
				File:           file,
				Line:           i + 1,
				Code:           strings.TrimSpace(line),
				Description:    "Multiprocessing requires explicit IPC and resource management",
				Recommendation: "Ensure inter-process data synchronization and resource cleanup",
			})
		}

		if asyncDefRe.MatchString(line) {
			body := functionBody(lines, i)
			if body != "" && asyncBodyCallRe.MatchString(body) && !awaitKeywordRe.MatchString(body) {
				findings = append(findings, models.Finding{
					Type:           models.IssueTypeConcurrency,
					Category:       "async_missing_await",
					Severity:       models.SeverityMedium,
					File:           file,
					Line:           i + 1,
					Code:           strings.TrimSpace(line),
					Description:    "Async function body may be missing an await",
					Recommendation: "Await asynchronous operations inside async functions",
				})
			}
		}
	}

	return findings
}
