package detector

import (
	"strings"
	"testing"

	"github.com/aleister1102/bugsentry/internal/models"
)

func TestDetectDynamicCodeExecution(t *testing.T) {
	tests := []struct {
		name         string
		content      string
		wantCategory string
		wantCount    int
		wantSeverity models.Severity
	}{
		{
			name:         "eval on expression",
			content:      "result = eval(expr)\n",
			wantCategory: "eval",
			wantCount:    1,
			wantSeverity: models.SeverityCritical,
		},
		{
			name:         "exec on payload",
			content:      "exec(payload)\n",
			wantCategory: "exec",
			wantCount:    1,
			wantSeverity: models.SeverityCritical,
		},
		{
			name:         "pickle loads",
			content:      "data = pickle.loads(blob)\n",
			wantCategory: "pickle",
			wantCount:    1,
			wantSeverity: models.SeverityHigh,
		},
		{
			name:         "yaml load",
			content:      "cfg = yaml.load(stream)\n",
			wantCategory: "yaml_load",
			wantCount:    1,
			wantSeverity: models.SeverityHigh,
		},
		{
			name:         "json loads",
			content:      "obj = json.loads(body)\n",
			wantCategory: "json_loads",
			wantCount:    1,
			wantSeverity: models.SeverityMedium,
		},
		{
			name:         "getattr reflection",
			content:      "value = getattr(obj, attr_name)\n",
			wantCategory: "reflection",
			wantCount:    1,
			wantSeverity: models.SeverityLow,
		},
		{
			name:         "eval suppressed by nearby sanitization",
			content:      "expr = sanitize(raw_expr)\nresult = eval(expr)\n",
			wantCategory: "eval",
			wantCount:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings := DetectDynamicCodeExecution("plugin_loader.py", strings.Split(tt.content, "\n"))

			got := findingCategories(findings)[tt.wantCategory]
			if got != tt.wantCount {
				t.Fatalf("%s count = %d, want %d: %+v", tt.wantCategory, got, tt.wantCount, findings)
			}
			for _, f := range findings {
				if f.Type != models.IssueTypeDynamicCodeExecution {
					t.Errorf("type = %s, want %s", f.Type, models.IssueTypeDynamicCodeExecution)
				}
				if f.Category == tt.wantCategory && f.Severity != tt.wantSeverity {
					t.Errorf("severity = %s, want %s", f.Severity, tt.wantSeverity)
				}
			}
		})
	}
}
