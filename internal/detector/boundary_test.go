package detector

import (
	"strings"
	"testing"

	"github.com/aleister1102/bugsentry/internal/models"
)

func TestDetectBoundaryConditions_Division(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantCount int
	}{
		{
			name:      "division without zero guard",
			content:   "result = total / count\n",
			wantCount: 1,
		},
		{
			name:      "division with preceding zero guard",
			content:   "assert count != 0\nresult = total / count\n",
			wantCount: 0,
		},
		{
			name:      "literal division by zero",
			content:   "broken = value / 0\n",
			wantCount: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings := DetectBoundaryConditions("math_utils.py", strings.Split(tt.content, "\n"))

			got := findingCategories(findings)["division_by_zero"]
			if got != tt.wantCount {
				t.Fatalf("division_by_zero count = %d, want %d: %+v", got, tt.wantCount, findings)
			}
			for _, f := range findings {
				if f.Category == "division_by_zero" && f.Severity != models.SeverityHigh {
					t.Errorf("severity = %s, want high", f.Severity)
				}
			}
		})
	}
}

func TestDetectBoundaryConditions_Recursion(t *testing.T) {
	noBaseCase := strings.Split(
		"def countdown(n):\n    countdown(n - 1)\n",
		"\n",
	)
	findings := DetectBoundaryConditions("recurse.py", noBaseCase)
	if got := findingCategories(findings)["recursion_no_base_case"]; got != 1 {
		t.Fatalf("recursion_no_base_case count = %d, want 1: %+v", got, findings)
	}
	for _, f := range findings {
		if f.Category == "recursion_no_base_case" {
			if f.Line != 1 {
				t.Errorf("finding anchored at line %d, want the def line 1", f.Line)
			}
			if f.Severity != models.SeverityHigh {
				t.Errorf("severity = %s, want high", f.Severity)
			}
		}
	}

	withBaseCase := strings.Split(
		"def countdown(n):\n    if n <= 0:\n        return\n    countdown(n - 1)\n",
		"\n",
	)
	findings = DetectBoundaryConditions("recurse.py", withBaseCase)
	if got := findingCategories(findings)["recursion_no_base_case"]; got != 0 {
		t.Fatalf("recursion_no_base_case count = %d, want 0: %+v", got, findings)
	}
}

func TestDetectBoundaryConditions_ExceptionHandling(t *testing.T) {
	content := strings.Split(
		"try:\n    risky()\nexcept:\n    pass\n",
		"\n",
	)
	findings := DetectBoundaryConditions("handlers.py", content)

	categories := findingCategories(findings)
	if categories["broad_exception"] != 1 {
		t.Errorf("broad_exception count = %d, want 1", categories["broad_exception"])
	}
	if categories["empty_except"] != 1 {
		t.Errorf("empty_except count = %d, want 1", categories["empty_except"])
	}

	// Both rules fire independently on the same line; the aggregate never
	// collapses them into one finding.
	var broadLine, emptyLine int
	for _, f := range findings {
		switch f.Category {
		case "broad_exception":
			broadLine = f.Line
		case "empty_except":
			emptyLine = f.Line
		}
	}
	if broadLine != emptyLine || broadLine != 3 {
		t.Errorf("broad/empty lines = %d/%d, want both on line 3", broadLine, emptyLine)
	}
}

func TestDetectBoundaryConditions_SpecificExceptStaysQuiet(t *testing.T) {
	content := strings.Split(
		"try:\n    risky()\nexcept ValueError as err:\n    log.warning(err)\n",
		"\n",
	)
	findings := DetectBoundaryConditions("handlers.py", content)

	categories := findingCategories(findings)
	if categories["broad_exception"] != 0 {
		t.Errorf("broad_exception count = %d, want 0", categories["broad_exception"])
	}
	if categories["empty_except"] != 0 {
		t.Errorf("empty_except count = %d, want 0", categories["empty_except"])
	}
}

func TestDetectBoundaryConditions_LoopAndOverflow(t *testing.T) {
	content := strings.Split(
		"for i in range(10):\n    total += values[i]\nbig = factor * 1000000\n",
		"\n",
	)
	findings := DetectBoundaryConditions("loops.py", content)

	categories := findingCategories(findings)
	if categories["loop_boundary"] != 1 {
		t.Errorf("loop_boundary count = %d, want 1: %+v", categories["loop_boundary"], findings)
	}
	if categories["integer_overflow"] != 1 {
		t.Errorf("integer_overflow count = %d, want 1: %+v", categories["integer_overflow"], findings)
	}

	guarded := strings.Split(
		"if len(values) >= 10:\n    for i in range(10):\n        total += values[i]\n",
		"\n",
	)
	findings = DetectBoundaryConditions("loops.py", guarded)
	if got := findingCategories(findings)["loop_boundary"]; got != 0 {
		t.Errorf("guarded loop_boundary count = %d, want 0: %+v", got, findings)
	}
}
