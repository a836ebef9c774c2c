package report

import (
	"path/filepath"
	"strings"
)

// AggregateCode is the pseudo-code used in file names for the cross-standard
// summary artifacts.
const AggregateCode = "aggregate"

func canonicalCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ResultPath is the well-known input location for a standard's test results.
func ResultPath(dir, code string) string {
	return filepath.Join(defaultDir(dir), "compliance-"+canonicalCode(code)+".json")
}

// ReportPath is the canonical location of a standard's persisted report.
func ReportPath(dir, code string) string {
	return filepath.Join(defaultDir(dir), "compliance-report-"+canonicalCode(code)+".json")
}

// AggregateReportPath is the canonical location of the cross-standard report.
func AggregateReportPath(dir string) string {
	return filepath.Join(defaultDir(dir), "compliance-report-"+AggregateCode+".json")
}

// HTMLPath is the default output location for a standard's rendered report.
func HTMLPath(dir, code string) string {
	return filepath.Join(defaultDir(dir), "report-"+canonicalCode(code)+".html")
}

// AggregateHTMLPath is the default output location for the aggregate page.
func AggregateHTMLPath(dir string) string {
	return filepath.Join(defaultDir(dir), "report-"+AggregateCode+".html")
}

// DefaultRunLogPath places the run log next to the reports.
func DefaultRunLogPath(dir string) string {
	return filepath.Join(defaultDir(dir), "a11y-gate.run.log")
}

func defaultDir(dir string) string {
	if strings.TrimSpace(dir) == "" {
		return "."
	}
	return dir
}
