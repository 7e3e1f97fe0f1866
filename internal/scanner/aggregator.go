package scanner

import (
	"sort"
	"sync"

	"github.com/aleister1102/bugsentry/internal/models"
)

// aggregator is the synchronized merge point for findings produced by
// concurrent file workers. Append order is irrelevant: buildReport sorts the
// multiset deterministically before counting.
type aggregator struct {
	mu           sync.Mutex
	findings     []models.Finding
	filesScanned int
}

func newAggregator() *aggregator {
	return &aggregator{}
}

// add records the findings of one successfully scanned file.
func (a *aggregator) add(findings []models.Finding) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.filesScanned++
	a.findings = append(a.findings, findings...)
}

// buildReport assembles the final report: findings sorted by file, line,
// category, then type; per-group counts with all six keys present; total
// equal to the sheer number of findings. Distinct categories firing on the
// same line are never collapsed.
func (a *aggregator) buildReport() *models.Report {
	a.mu.Lock()
	defer a.mu.Unlock()

	sort.SliceStable(a.findings, func(i, j int) bool {
		fi, fj := a.findings[i], a.findings[j]
		if fi.File != fj.File {
			return fi.File < fj.File
		}
		if fi.Line != fj.Line {
			return fi.Line < fj.Line
		}
		if fi.Category != fj.Category {
			return fi.Category < fj.Category
		}
		return fi.Type < fj.Type
	})

	report := models.NewEmptyReport(models.ScanStatusCompleted)
	report.Issues = append(report.Issues, a.findings...)
	report.TotalIssues = len(a.findings)
	report.FilesScanned = a.filesScanned
	for _, finding := range a.findings {
		report.IssuesByCategory[finding.Type]++
	}
	return report
}
