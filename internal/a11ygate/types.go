package a11ygate

import "errors"

// Input-side failures degrade to a zero score instead of crashing the run;
// the pipeline's job is to report status, and "no data" is itself status.
var (
	ErrMissingInput = errors.New("result file missing")
	ErrParse        = errors.New("result file malformed")
)

// Config carries explicit paths so the pipeline never depends on the
// process working directory. CWD defaults are applied at the CLI boundary.
type Config struct {
	Standard   string
	ResultsDir string
	ReportsDir string
	RunLogPath string
}

// ComplianceReport is the persisted artifact for one standard. Passed is
// always derived from Score and Threshold when the report is built, never
// set independently.
type ComplianceReport struct {
	Standard  string        `json:"standard"`
	Score     int           `json:"score"`
	Threshold int           `json:"threshold"`
	Passed    bool          `json:"passed"`
	Timestamp string        `json:"timestamp"`
	Details   ReportDetails `json:"details"`
}

type ReportDetails struct {
	TotalTests  int       `json:"totalTests"`
	PassedTests int       `json:"passedTests"`
	FailedTests int       `json:"failedTests"`
	Failures    []Failure `json:"failures"`
}

type Failure struct {
	Requirement string `json:"requirement"`
	Title       string `json:"title"`
	Message     string `json:"message"`
}

// AggregateReport summarizes one all-standards run. OverallCompliance is
// the minimum per-standard score of that run, so a single failing regime
// gates the whole result.
type AggregateReport struct {
	Timestamp         string         `json:"timestamp"`
	OverallCompliance int            `json:"overallCompliance"`
	Standards         map[string]int `json:"standards"`
	Passed            bool           `json:"passed"`
}
