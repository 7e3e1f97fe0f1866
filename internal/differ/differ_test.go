package differ

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aleister1102/bugsentry/internal/models"
)

func finding(file, category, code string, line int) models.Finding {
	return models.Finding{
		Type:     models.IssueTypeDynamicCodeExecution,
		Category: category,
		Severity: models.SeverityCritical,
		File:     file,
		Line:     line,
		Code:     code,
	}
}

func TestDiffBuckets(t *testing.T) {
	previous := []models.Finding{
		finding("app.py", "eval", "result = eval(expr)", 10),
		finding("app.py", "exec", "exec(payload)", 20),
		finding("old.py", "eval", "eval(cmd)", 5),
	}
	current := []models.Finding{
		// identical line and code: unchanged
		finding("app.py", "eval", "result = eval(expr)", 10),
		// same file and category, moved and edited: changed
		finding("app.py", "exec", "exec(new_payload)", 23),
		// no counterpart in previous: new
		finding("util.py", "pickle", "pickle.loads(blob)", 3),
	}

	diff := NewReportDiffer(zerolog.Nop()).Diff(previous, current)

	assert.Equal(t, 1, diff.Unchanged)

	require.Len(t, diff.New, 1)
	assert.Equal(t, "util.py", diff.New[0].File)

	require.Len(t, diff.Fixed, 1)
	assert.Equal(t, "old.py", diff.Fixed[0].File)

	require.Len(t, diff.Changed, 1)
	changed := diff.Changed[0]
	assert.Equal(t, 20, changed.Previous.Line)
	assert.Equal(t, 23, changed.Current.Line)
	assert.Contains(t, changed.CodeDiff, "[+")
	assert.Contains(t, changed.CodeDiff, "new")
}

func TestDiffEmptyPrevious(t *testing.T) {
	current := []models.Finding{
		finding("app.py", "eval", "eval(expr)", 1),
	}

	diff := NewReportDiffer(zerolog.Nop()).Diff(nil, current)

	assert.Len(t, diff.New, 1)
	assert.Empty(t, diff.Fixed)
	assert.Empty(t, diff.Changed)
	assert.Zero(t, diff.Unchanged)
}

func TestDiffEverythingFixedSorted(t *testing.T) {
	previous := []models.Finding{
		finding("b.py", "eval", "eval(two)", 2),
		finding("a.py", "eval", "eval(one)", 9),
		finding("a.py", "eval", "eval(zero)", 1),
	}

	diff := NewReportDiffer(zerolog.Nop()).Diff(previous, nil)

	require.Len(t, diff.Fixed, 3)
	assert.Equal(t, "a.py", diff.Fixed[0].File)
	assert.Equal(t, 1, diff.Fixed[0].Line)
	assert.Equal(t, "a.py", diff.Fixed[1].File)
	assert.Equal(t, "b.py", diff.Fixed[2].File)
}

func TestRenderCodeDiff(t *testing.T) {
	rd := NewReportDiffer(zerolog.Nop())

	rendered := rd.renderCodeDiff("timeout = 30", "timeout = 60")
	assert.True(t, strings.Contains(rendered, "[-") && strings.Contains(rendered, "[+"),
		"rendered diff missing markers: %q", rendered)
	assert.Contains(t, rendered, "timeout = ")
}
