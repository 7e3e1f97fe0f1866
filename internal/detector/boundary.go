package detector

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/aleister1102/bugsentry/internal/models"
)

var (
	rangeLoopRe     = regexp.MustCompile(`for\s+\w+\s+in\s+range\(`)
	divisionRe      = regexp.MustCompile(`/\s*0\b|/\s*\w+\s*$`)
	overflowRe      = regexp.MustCompile(`\*\s*\d{6,}`)
	defRe           = regexp.MustCompile(`def\s+\w+.*\(.*\):`)
	defNameRe       = regexp.MustCompile(`def\s+(\w+)`)
	broadExceptRe   = regexp.MustCompile(`except\s*:|except\s+Exception\s*:`)
	exceptHandlerRe = regexp.MustCompile(`\bexcept\b.*:`)
)

// DetectBoundaryConditions flags off-by-one-prone loops, unguarded divisions,
// large multiplications, recursion without a discernible base case, and broad
// or empty exception handlers. A broad handler with an empty body yields two
// independent findings, never one collapsed finding.
func DetectBoundaryConditions(file string, lines []string) []models.Finding {
	var findings []models.Finding
	findings = append(findings, detectLoopBoundaries(file, lines)...)
	findings = append(findings, detectNumericIssues(file, lines)...)
	findings = append(findings, detectRecursionIssues(file, lines)...)
	findings = append(findings, detectExceptionHandling(file, lines)...)
	return findings
}

func detectLoopBoundaries(file string, lines []string) []models.Finding {
	var findings []models.Finding
	for i, line := range lines {
		if !rangeLoopRe.MatchString(line) {
			continue
		}
		if hasBoundaryGuard(lines, i) {
			continue
		}
		findings = append(findings, models.Finding{
			Type:           models.IssueTypeBoundaryCondition,
			Category:       "loop_boundary",
			Severity:       models.SeverityMedium,
			File:           file,
			Line:           i + 1,
			Code:           strings.TrimSpace(line),
			Description:    "Loop may index past container bounds",
			Recommendation: "Verify the loop bound against the container length",
		})
	}
	return findings
}

func detectNumericIssues(file string, lines []string) []models.Finding {
	var findings []models.Finding
	for i, line := range lines {
		if divisionRe.MatchString(line) && !hasZeroGuard(lines, i) {
			findings = append(findings, models.Finding{
				Type:           models.IssueTypeBoundaryCondition,
				Category:       "division_by_zero",
				Severity:       models.SeverityHigh,
				File:           file,
				Line:           i + 1,
				Code:           strings.TrimSpace(line),
				Description:    "Possible division by zero",
				Recommendation: "Add a zero check before dividing",
			})
		}

		if overflowRe.MatchString(line) {
			findings = append(findings, models.Finding{
				Type:           models.IssueTypeBoundaryCondition,
				Category:       "integer_overflow",
				Severity:       models.SeverityMedium,
				File:           file,
				Line:           i + 1,
				Code:           strings.TrimSpace(line),
				Description:    "Possible integer overflow",
				Recommendation: "Check the numeric value range",
			})
		}
	}
	return findings
}

// detectRecursionIssues emits at most one finding per recursive function,
// anchored at the def line.
func detectRecursionIssues(file string, lines []string) []models.Finding {
	type definedFunc struct {
		line int
		name string
	}
	var defs []definedFunc
	for i, line := range lines {
		if defRe.MatchString(line) {
			if m := defNameRe.FindStringSubmatch(line); m != nil {
				defs = append(defs, definedFunc{line: i, name: m[1]})
			}
		}
	}

	var findings []models.Finding
	flagged := make(map[int]bool)
	for i, line := range lines {
		for _, def := range defs {
			if i == def.line || flagged[def.line] {
				continue
			}
			callRe := regexp.MustCompile(fmt.Sprintf(`\b%s\s*\(`, regexp.QuoteMeta(def.name)))
			if !callRe.MatchString(line) {
				continue
			}
			if hasRecursionBaseCase(lines, def.line) {
				continue
			}
			flagged[def.line] = true
			findings = append(findings, models.Finding{
				Type:           models.IssueTypeBoundaryCondition,
				Category:       "recursion_no_base_case",
				Severity:       models.SeverityHigh,
				File:           file,
				Line:           def.line + 1,
				Code:           strings.TrimSpace(lines[def.line]),
				Description:    "Recursive function may be missing a base case",
				Recommendation: "Ensure the recursion has an explicit termination condition",
			})
		}
	}
	return findings
}

func detectExceptionHandling(file string, lines []string) []models.Finding {
	var findings []models.Finding
	for i, line := range lines {
		if broadExceptRe.MatchString(line) {
			findings = append(findings, models.Finding{
				Type:           models.IssueTypeBoundaryCondition,
				Category:       "broad_exception",
				Severity:       models.SeverityMedium,
				File:           file,
				Line:           i + 1,
				Code:           strings.TrimSpace(line),
				Description:    "Exception handler is too broad and may hide errors",
				Recommendation: "Catch specific exception types",
			})
		}

		if exceptHandlerRe.MatchString(line) && handlerBodyIsEmpty(lines, i) {
			findings = append(findings, models.Finding{
				Type:           models.IssueTypeBoundaryCondition,
				Category:       "empty_except",
				Severity:       models.SeverityMedium,
				File:           file,
				Line:           i + 1,
				Code:           strings.TrimSpace(line),
				Description:    "Empty exception handler silently swallows errors",
				Recommendation: "Log the exception at minimum",
			})
		}
	}
	return findings
}

// handlerBodyIsEmpty reports whether the first statement after an except line
// is a bare pass or ellipsis.
func handlerBodyIsEmpty(lines []string, exceptIdx int) bool {
	for _, line := range lines[exceptIdx+1:] {
		body := strings.TrimSpace(line)
		if body == "" {
			continue
		}
		return body == "pass" || body == "..."
	}
	return false
}
