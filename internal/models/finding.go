package models

// IssueType is one of the six top-level detection groups.
type IssueType string

const (
	IssueTypeInputInteraction      IssueType = "input_interaction"
	IssueTypeResourceManagement    IssueType = "resource_management"
	IssueTypeConcurrency           IssueType = "concurrency"
	IssueTypeBoundaryCondition     IssueType = "boundary_condition"
	IssueTypeEnvironmentDependency IssueType = "environment_dependency"
	IssueTypeDynamicCodeExecution  IssueType = "dynamic_code_execution"
)

// AllIssueTypes lists every detection group in report order. Aggregation uses
// this to guarantee all six keys appear in a report even when their count is zero.
var AllIssueTypes = []IssueType{
	IssueTypeInputInteraction,
	IssueTypeResourceManagement,
	IssueTypeConcurrency,
	IssueTypeBoundaryCondition,
	IssueTypeEnvironmentDependency,
	IssueTypeDynamicCodeExecution,
}

// Severity is the fixed per-category severity of a finding.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// Finding represents one detected issue instance. Findings are immutable values;
// (File, Line, Category) is not unique since multiple rules may fire on the same line.
type Finding struct {
	Type           IssueType `json:"type"`
	Category       string    `json:"category"`
	Severity       Severity  `json:"severity"`
	File           string    `json:"file"`
	Line           int       `json:"line"`
	Code           string    `json:"code"`
	Description    string    `json:"description"`
	Recommendation string    `json:"recommendation"`
}
