package detector

import (
	"regexp"

	"github.com/aleister1102/bugsentry/internal/models"
)

// Rule defines a single detection pattern within a category group. A rule
// carries one or more regexes; each matching pattern on a line yields its own
// finding. The catalog below is process-wide static data, built once at
// package init and never mutated, so concurrent scans share it without locks.
type Rule struct {
	Category       string
	Severity       models.Severity
	Patterns       []*regexp.Regexp
	Description    string
	Recommendation string
}

func patterns(exprs ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, 0, len(exprs))
	for _, expr := range exprs {
		compiled = append(compiled, regexp.MustCompile(expr))
	}
	return compiled
}

// inputRules flag externally-influenced data used without nearby validation.
var inputRules = []Rule{
	{
		Category: "unsafe_request_params",
		Severity: models.SeverityHigh,
		Patterns: patterns(
			`(?i)request\.(args|form|json|data|values)\[`,
			`(?i)request\.(args|form|json|data|values)\.get\(`,
			`(?i)flask\.request\.(args|form|json|data|values)`,
		),
		Description:    "HTTP request parameter used without validation",
		Recommendation: "Validate and sanitize all user input, prefer whitelist validation",
	},
	{
		Category: "unsafe_headers",
		Severity: models.SeverityMedium,
		Patterns: patterns(
			`(?i)request\.headers\[`,
			`(?i)request\.headers\.get\(`,
		),
		Description:    "HTTP header used without validation",
		Recommendation: "Validate HTTP headers to prevent header injection",
	},
	{
		Category: "unsafe_cookies",
		Severity: models.SeverityMedium,
		Patterns: patterns(
			`(?i)request\.cookies\[`,
			`(?i)request\.cookies\.get\(`,
			`(?i)cookies\[`,
		),
		Description:    "Cookie value used without validation",
		Recommendation: "Validate cookie values to detect tampering",
	},
	{
		Category: "unsafe_file_upload",
		Severity: models.SeverityHigh,
		Patterns: patterns(
			`(?i)request\.files\[`,
			`(?i)request\.files\.get\(`,
			`(?i)\.save\(`,
		),
		Description:    "File upload handled without type or size validation",
		Recommendation: "Validate uploaded file type, size and content",
	},
	{
		Category: "unsafe_file_read",
		Severity: models.SeverityHigh,
		Patterns: patterns(
			`(?i)open\(.*request`,
			`(?i)open\(.*input`,
			`(?i)open\(.*user`,
		),
		Description:    "File read uses user-controlled input, possible path traversal",
		Recommendation: "Validate file paths to prevent path traversal attacks",
	},
	{
		Category: "unsafe_api_response",
		Severity: models.SeverityMedium,
		Patterns: patterns(
			`(?i)requests\.(get|post|put|delete)\(.*\)\.(text|content|json)`,
			`(?i)urllib\.request\.urlopen\(.*\)\.read`,
			`(?i)httpx\.(get|post)\(.*\)\.(text|content|json)`,
		),
		Description:    "API response used without validation",
		Recommendation: "Validate API response format and content",
	},
	{
		Category: "unsafe_third_party_data",
		Severity: models.SeverityMedium,
		Patterns: patterns(
			`(?i)\.json\(\)`,
		),
		Description:    "Third-party service data used without validation",
		Recommendation: "Validate third-party data format and content",
	},
}

// databaseConnectPatterns match direct driver connections that need pooling
// or explicit close handling.
var databaseConnectPatterns = patterns(
	`sqlite3\.connect\(`,
	`psycopg2\.connect\(`,
	`mysql\.connector\.connect\(`,
	`pymongo\.MongoClient\(`,
	`sqlalchemy\.create_engine\(`,
)

// socketPatterns match raw socket construction.
var socketPatterns = patterns(
	`socket\.socket\(`,
	`socket\.create_connection\(`,
)

// dynamicRules flag execution of dynamically constructed code and unsafe
// deserialization. Single pattern per category; severity reflects how directly
// the construct can execute attacker-supplied code.
var dynamicRules = []Rule{
	{
		Category:       "eval",
		Severity:       models.SeverityCritical,
		Patterns:       patterns(`(?i)\beval\s*\(`),
		Description:    "eval() on user input can lead to code injection",
		Recommendation: "Avoid eval(), use a safe alternative",
	},
	{
		Category:       "exec",
		Severity:       models.SeverityCritical,
		Patterns:       patterns(`(?i)\bexec\s*\(`),
		Description:    "exec() on user input can lead to code injection",
		Recommendation: "Avoid exec(), use a safe alternative",
	},
	{
		Category:       "compile",
		Severity:       models.SeverityHigh,
		Patterns:       patterns(`(?i)\bcompile\s*\(`),
		Description:    "Dynamically compiled code is a security risk",
		Recommendation: "Verify the origin of compiled code",
	},
	{
		Category:       "pickle",
		Severity:       models.SeverityHigh,
		Patterns:       patterns(`(?i)pickle\.(load|loads)\(`),
		Description:    "pickle deserialization can execute malicious code",
		Recommendation: "Verify the data source before unpickling, or use a safer serialization format",
	},
	{
		Category:       "yaml_load",
		Severity:       models.SeverityHigh,
		Patterns:       patterns(`(?i)yaml\.(load|safe_load)\(`),
		Description:    "YAML loading may execute arbitrary code",
		Recommendation: "Use yaml.safe_load() instead of yaml.load()",
	},
	{
		Category:       "json_loads",
		Severity:       models.SeverityMedium,
		Patterns:       patterns(`(?i)json\.loads\(`),
		Description:    "JSON deserialization needs input validation",
		Recommendation: "Validate JSON input format and content",
	},
	{
		Category:       "xml_parse",
		Severity:       models.SeverityMedium,
		Patterns:       patterns(`(?i)xml\.(etree\.ElementTree\.parse|sax\.parse)`),
		Description:    "XML parsing may be vulnerable to XXE attacks",
		Recommendation: "Disable external entity resolution, use a hardened XML parser",
	},
	{
		Category:       "reflection",
		Severity:       models.SeverityLow,
		Patterns:       patterns(`(?i)getattr\(|setattr\(|__getattribute__`),
		Description:    "Reflective attribute access needs input validation",
		Recommendation: "Validate the arguments of reflective operations",
	},
}
