package detector

import (
	"regexp"
	"strings"

	"github.com/aleister1102/bugsentry/internal/models"
)

var (
	openCallRe    = regexp.MustCompile(`\bopen\s*\(`)
	lockAcquireRe = regexp.MustCompile(`\.acquire\(`)
)

// DetectResourceManagement flags resource acquisitions (file handles, database
// connections, sockets, locks) with no release or scoped-acquisition evidence
// in the same lexical neighborhood.
func DetectResourceManagement(file string, lines []string) []models.Finding {
	var findings []models.Finding
	findings = append(findings, detectUnclosedFiles(file, lines)...)
	findings = append(findings, detectUnmanagedConnections(file, lines)...)
	findings = append(findings, detectUnclosedSockets(file, lines)...)
	findings = append(findings, detectUnreleasedLocks(file, lines)...)
	return findings
}

func detectUnclosedFiles(file string, lines []string) []models.Finding {
	var findings []models.Finding
	for i, line := range lines {
		if !openCallRe.MatchString(line) {
			continue
		}
		if hasMatchingClose(lines, i) {
			continue
		}
		findings = append(findings, models.Finding{
			Type:           models.IssueTypeResourceManagement,
			Category:       "file_not_closed",
			Severity:       models.SeverityHigh,
			File:           file,
			Line:           i + 1,
			Code:           strings.TrimSpace(line),
			Description:    "File opened but possibly never closed",
			Recommendation: "Use a with statement or close the file in a finally block",
		})
	}
	return findings
}

func detectUnmanagedConnections(file string, lines []string) []models.Finding {
	var findings []models.Finding
	for i, line := range lines {
		for _, pattern := range databaseConnectPatterns {
			if !pattern.MatchString(line) {
				continue
			}
			if hasConnectionManagement(lines, i) {
				continue
			}
			findings = append(findings, models.Finding{
				Type:           models.IssueTypeResourceManagement,
				Category:       "database_connection",
				Severity:       models.SeverityHigh,
				File:           file,
				Line:           i + 1,
				Code:           strings.TrimSpace(line),
				Description:    "Database connection possibly not managed",
				Recommendation: "Use a connection pool or close the connection after use",
			})
		}
	}
	return findings
}

func detectUnclosedSockets(file string, lines []string) []models.Finding {
	var findings []models.Finding
	for i, line := range lines {
		for _, pattern := range socketPatterns {
			if !pattern.MatchString(line) {
				continue
			}
			if hasSocketManagement(lines, i) {
				continue
			}
			findings = append(findings, models.Finding{
				Type:           models.IssueTypeResourceManagement,
				Category:       "socket_not_closed",
				Severity:       models.SeverityMedium,
				File:           file,
				Line:           i + 1,
				Code:           strings.TrimSpace(line),
				Description:    "Socket possibly never closed",
				Recommendation: "Use a with statement or close the socket in a finally block",
			})
		}
	}
	return findings
}

func detectUnreleasedLocks(file string, lines []string) []models.Finding {
	var findings []models.Finding
	for i, line := range lines {
		if !lockAcquireRe.MatchString(line) {
			continue
		}
		if hasMatchingRelease(lines, i) {
			continue
		}
		findings = append(findings, models.Finding{
			Type:           models.IssueTypeResourceManagement,
			Category:       "lock_not_released",
			Severity:       models.SeverityHigh,
			File:           file,
			Line:           i + 1,
			Code:           strings.TrimSpace(line),
			Description:    "Lock acquired but possibly never released",
			Recommendation: "Use a with statement or release the lock in a finally block",
		})
	}
	return findings
}
