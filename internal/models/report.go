package models

// ScanStatus indicates whether a scan ran to completion.
type ScanStatus string

const (
	ScanStatusCompleted ScanStatus = "completed"
	ScanStatusFailed    ScanStatus = "failed"
)

// Report is the aggregate result of one scan. Issues are ordered by file,
// then line, then category so repeated scans of an unchanged tree produce
// byte-identical reports.
type Report struct {
	Status           ScanStatus        `json:"status"`
	TotalIssues      int               `json:"total_issues"`
	IssuesByCategory map[IssueType]int `json:"issues_by_category"`
	Issues           []Finding         `json:"issues"`
	FilesScanned     int               `json:"files_scanned"`
	Error            string            `json:"error,omitempty"`
}

// NewEmptyReport returns a zero-valued report with the given status and all
// six category keys present.
func NewEmptyReport(status ScanStatus) *Report {
	byCategory := make(map[IssueType]int, len(AllIssueTypes))
	for _, t := range AllIssueTypes {
		byCategory[t] = 0
	}
	return &Report{
		Status:           status,
		IssuesByCategory: byCategory,
		Issues:           []Finding{},
	}
}
