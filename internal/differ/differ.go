// Package differ compares the findings of two scans of the same project, so
// operators can review what a change introduced or fixed instead of re-reading
// the full report.
package differ

import (
	"sort"
	"strings"

	"github.com/aleister1102/bugsentry/internal/models"
	"github.com/rs/zerolog"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// ChangedFinding pairs a persisting finding whose matched line moved or was
// edited between scans.
type ChangedFinding struct {
	Previous models.Finding `json:"previous"`
	Current  models.Finding `json:"current"`
	CodeDiff string         `json:"code_diff"`
}

// ReportDiff is the result of comparing a previous scan against the current one.
type ReportDiff struct {
	New       []models.Finding `json:"new"`
	Fixed     []models.Finding `json:"fixed"`
	Changed   []ChangedFinding `json:"changed"`
	Unchanged int              `json:"unchanged"`
}

// ReportDiffer matches findings across two scans.
type ReportDiffer struct {
	logger zerolog.Logger
	dmp    *diffmatchpatch.DiffMatchPatch
}

// NewReportDiffer creates a new ReportDiffer.
func NewReportDiffer(logger zerolog.Logger) *ReportDiffer {
	return &ReportDiffer{
		logger: logger.With().Str("component", "ReportDiffer").Logger(),
		dmp:    diffmatchpatch.New(),
	}
}

// Diff buckets current findings against previous ones. Findings are matched
// within (file, category) groups: an exact line-and-code match is unchanged, a
// remaining pairing in the same group is a changed finding with a character
// diff of the matched code, and everything left over is new or fixed.
func (rd *ReportDiffer) Diff(previous, current []models.Finding) *ReportDiff {
	diff := &ReportDiff{
		New:     []models.Finding{},
		Fixed:   []models.Finding{},
		Changed: []ChangedFinding{},
	}

	remaining := make(map[string][]models.Finding)
	for _, finding := range previous {
		key := groupKey(finding)
		remaining[key] = append(remaining[key], finding)
	}

	var unmatched []models.Finding
	for _, finding := range current {
		key := groupKey(finding)
		if idx := exactMatch(remaining[key], finding); idx >= 0 {
			remaining[key] = append(remaining[key][:idx], remaining[key][idx+1:]...)
			diff.Unchanged++
			continue
		}
		unmatched = append(unmatched, finding)
	}

	for _, finding := range unmatched {
		key := groupKey(finding)
		group := remaining[key]
		if len(group) == 0 {
			diff.New = append(diff.New, finding)
			continue
		}
		prev := group[0]
		remaining[key] = group[1:]
		diff.Changed = append(diff.Changed, ChangedFinding{
			Previous: prev,
			Current:  finding,
			CodeDiff: rd.renderCodeDiff(prev.Code, finding.Code),
		})
	}

	for _, group := range remaining {
		diff.Fixed = append(diff.Fixed, group...)
	}
	sort.SliceStable(diff.Fixed, func(i, j int) bool {
		fi, fj := diff.Fixed[i], diff.Fixed[j]
		if fi.File != fj.File {
			return fi.File < fj.File
		}
		if fi.Line != fj.Line {
			return fi.Line < fj.Line
		}
		return fi.Category < fj.Category
	})

	rd.logger.Debug().
		Int("new", len(diff.New)).
		Int("fixed", len(diff.Fixed)).
		Int("changed", len(diff.Changed)).
		Int("unchanged", diff.Unchanged).
		Msg("Report diff computed")
	return diff
}

func groupKey(finding models.Finding) string {
	return finding.File + "|" + finding.Category
}

func exactMatch(group []models.Finding, finding models.Finding) int {
	for i, candidate := range group {
		if candidate.Line == finding.Line && candidate.Code == finding.Code {
			return i
		}
	}
	return -1
}

// renderCodeDiff produces an inline [-removed-][+added+] rendering of the
// change between two matched lines.
func (rd *ReportDiffer) renderCodeDiff(oldCode, newCode string) string {
	diffs := rd.dmp.DiffMain(oldCode, newCode, false)
	diffs = rd.dmp.DiffCleanupSemantic(diffs)

	var b strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			b.WriteString("[-")
			b.WriteString(d.Text)
			b.WriteString("-]")
		case diffmatchpatch.DiffInsert:
			b.WriteString("[+")
			b.WriteString(d.Text)
			b.WriteString("+]")
		default:
			b.WriteString(d.Text)
		}
	}
	return b.String()
}
