package lint

// Severity indicates the severity level of a diagnostic.
type Severity string

// Severity levels.
const (
	Info    Severity = "info"
	Warning Severity = "warning"
	Error   Severity = "error"
)

// Diagnostic represents a single lint finding. Line and Column are
// 1-based and zero when the reporting rule has no positional info.
type Diagnostic struct {
	Rule     string
	Severity Severity
	Message  string
	Line     int
	Column   int
}

// RuleDiagnostics groups the diagnostics emitted by one rule instance.
// Rule carries the instance label: the rule name, suffixed with the
// config index when the rule was configured with an array of configs.
type RuleDiagnostics struct {
	Rule        string
	Diagnostics []Diagnostic
}
