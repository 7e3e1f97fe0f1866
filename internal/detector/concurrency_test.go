package detector

import (
	"strings"
	"testing"

	"github.com/aleister1102/bugsentry/internal/models"
)

func TestDetectConcurrency(t *testing.T) {
	tests := []struct {
		name         string
		content      string
		wantCategory string
		wantSeverity models.Severity
		wantCount    int
	}{
		{
			name:         "thread spawn without lock",
			content:      "t = threading.Thread(target=worker)\nt.start()\n",
			wantCategory: "threading_race_condition",
			wantSeverity: models.SeverityHigh,
			wantCount:    1,
		},
		{
			name:      "thread spawn protected by lock",
			content:   "lock = threading.Lock()\nt = threading.Thread(target=worker)\nt.start()\n",
			wantCount: 0,
		},
		{
			name:         "process pool",
			content:      "pool = multiprocessing.Pool(4)\n",
			wantCategory: "multiprocessing",
			wantSeverity: models.SeverityMedium,
			wantCount:    1,
		},
		{
			name:         "async function without await",
			content:      "async def handler():\n    data = load_remote()\n    return data\n",
			wantCategory: "async_missing_await",
			wantSeverity: models.SeverityMedium,
			wantCount:    1,
		},
		{
			name:      "async function with await",
			content:   "async def handler():\n    data = await load_remote()\n    return data\n",
			wantCount: 0,
		},
		{
			name:      "async function with empty body",
			content:   "async def handler():\n",
			wantCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings := DetectConcurrency("workers.py", strings.Split(tt.content, "\n"))

			if len(findings) != tt.wantCount {
				t.Fatalf("got %d findings, want %d: %+v", len(findings), tt.wantCount, findings)
			}
			if tt.wantCount == 0 {
				return
			}

			f := findings[0]
			if f.Category != tt.wantCategory {
				t.Errorf("category = %s, want %s", f.Category, tt.wantCategory)
			}
			if f.Severity != tt.wantSeverity {
				t.Errorf("severity = %s, want %s", f.Severity, tt.wantSeverity)
			}
			if f.Type != models.IssueTypeConcurrency {
				t.Errorf("type = %s, want %s", f.Type, models.IssueTypeConcurrency)
			}
		})
	}
}
