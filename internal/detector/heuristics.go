package detector

import (
	"regexp"
	"strings"
)

// The helpers below implement the textual-proximity heuristics the detectors
// share. They trade precision for simplicity on purpose: a keyword near the
// flagged line counts as evidence, true control-flow reachability is never
// computed. Callers accept both false positives and false negatives.

// contextWindow joins the lines around idx (0-based) into one string.
// before/after bound how far the window extends in each direction.
func contextWindow(lines []string, idx, before, after int) string {
	start := idx - before
	if start < 0 {
		start = 0
	}
	end := idx + after
	if end > len(lines) {
		end = len(lines)
	}
	return strings.Join(lines[start:end], " ")
}

var validationKeywords = []string{"validate", "sanitize", "escape", "clean", "check", "verify"}

// hasValidationNearby reports whether a validation or sanitization marker
// appears within three lines of idx.
func hasValidationNearby(lines []string, idx int) bool {
	context := strings.ToLower(contextWindow(lines, idx, 3, 3))
	for _, keyword := range validationKeywords {
		if strings.Contains(context, keyword) {
			return true
		}
	}
	return false
}

var inputValidationKeywords = []string{"validate", "check", "verify", "sanitize", "whitelist"}

// hasInputValidationNearby is the wider window variant used by the
// dynamic-code detector.
func hasInputValidationNearby(lines []string, idx int) bool {
	context := strings.ToLower(contextWindow(lines, idx, 5, 5))
	for _, keyword := range inputValidationKeywords {
		if strings.Contains(context, keyword) {
			return true
		}
	}
	return false
}

// hasMatchingClose reports whether an open() call near idx is covered by a
// scoped with-statement.
func hasMatchingClose(lines []string, idx int) bool {
	start := idx - 5
	if start < 0 {
		start = 0
	}
	end := idx + 20
	if end > len(lines) {
		end = len(lines)
	}
	for _, line := range lines[start:end] {
		if strings.Contains(line, "with ") && strings.Contains(line, "open(") {
			return true
		}
	}
	return false
}

// hasConnectionManagement checks for pooling or scoped handling around a
// database connect call.
func hasConnectionManagement(lines []string, idx int) bool {
	context := contextWindow(lines, idx, 5, 10)
	return strings.Contains(context, "with ") ||
		strings.Contains(strings.ToLower(context), "pool") ||
		strings.Contains(context, "close()")
}

// hasSocketManagement checks for scoped handling or an explicit close around
// a socket construction.
func hasSocketManagement(lines []string, idx int) bool {
	context := contextWindow(lines, idx, 5, 10)
	return strings.Contains(context, "with ") || strings.Contains(context, "close()")
}

// hasMatchingRelease looks ahead up to fifty lines for a release() call
// matching an acquire().
func hasMatchingRelease(lines []string, idx int) bool {
	end := idx + 50
	if end > len(lines) {
		end = len(lines)
	}
	for _, line := range lines[idx:end] {
		if strings.Contains(line, ".release()") {
			return true
		}
	}
	return false
}

// hasLockProtection checks for synchronization evidence around a thread spawn.
func hasLockProtection(lines []string, idx int) bool {
	context := contextWindow(lines, idx, 10, 10)
	return strings.Contains(context, "Lock") ||
		strings.Contains(context, "RLock") ||
		strings.Contains(context, "with ")
}

// functionBody returns the indented block following a def line (up to fifty
// lines), joined into one string. Indentation is the only block marker used.
func functionBody(lines []string, defIdx int) string {
	if defIdx < 0 || defIdx >= len(lines) {
		return ""
	}
	defLine := lines[defIdx]
	indent := len(defLine) - len(strings.TrimLeft(defLine, " \t"))

	var body []string
	end := defIdx + 50
	if end > len(lines) {
		end = len(lines)
	}
	for _, line := range lines[defIdx+1 : end] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lineIndent := len(line) - len(strings.TrimLeft(line, " \t"))
		if lineIndent <= indent {
			break
		}
		body = append(body, line)
	}
	return strings.Join(body, " ")
}

// hasRecursionBaseCase checks a function body for a conditional that can stop
// the recursion before it recurses.
func hasRecursionBaseCase(lines []string, defIdx int) bool {
	body := functionBody(lines, defIdx)
	return strings.Contains(body, "if ") &&
		(strings.Contains(body, "return") || strings.Contains(body, "break"))
}

// getenvDefaultRe matches os.getenv calls that pass a fallback as second argument.
var getenvDefaultRe = regexp.MustCompile(`os\.getenv\(\s*[^,)]+,`)

// hasDefaultValue checks an environment-variable read for a fallback.
func hasDefaultValue(line string) bool {
	return strings.Contains(strings.ToLower(line), "default") ||
		strings.Contains(line, "or ") ||
		strings.Contains(line, "if ") ||
		getenvDefaultRe.MatchString(line)
}

// hasConfigValidation checks for validation evidence around a config read.
func hasConfigValidation(lines []string, idx int) bool {
	context := strings.ToLower(contextWindow(lines, idx, 5, 5))
	return strings.Contains(context, "validate") || strings.Contains(context, "check")
}

// hasBoundaryGuard checks the lines around a loop header, excluding the header
// itself, for an index guard.
func hasBoundaryGuard(lines []string, idx int) bool {
	var window []string
	start := idx - 3
	if start < 0 {
		start = 0
	}
	end := idx + 10
	if end > len(lines) {
		end = len(lines)
	}
	for i := start; i < end; i++ {
		if i == idx {
			continue
		}
		window = append(window, lines[i])
	}
	context := strings.Join(window, " ")
	return strings.Contains(context, "len(") || strings.Contains(context, "if ")
}

var zeroGuardRe = regexp.MustCompile(`!=\s*0|==\s*0|>\s*0|ZeroDivisionError`)

// hasZeroGuard looks back three lines for a zero check preceding a division.
func hasZeroGuard(lines []string, idx int) bool {
	start := idx - 3
	if start < 0 {
		start = 0
	}
	for _, line := range lines[start : idx+1] {
		if zeroGuardRe.MatchString(line) {
			return true
		}
	}
	return false
}
