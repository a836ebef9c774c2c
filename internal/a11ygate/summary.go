package a11ygate

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/opencivica/a11y-gate/internal/standards"
)

var (
	summaryTitleStyle = lipgloss.NewStyle().Bold(true)
	summaryCodeStyle  = lipgloss.NewStyle().Bold(true).Width(10)
	summaryMutedStyle = lipgloss.NewStyle().Faint(true)
	passStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	failStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

func badge(passed bool) string {
	if passed {
		return passStyle.Render("PASS")
	}
	return failStyle.Render("FAIL")
}

// SummarizeStandard renders the one-line human summary for a single run.
// Summaries go to stderr; stdout carries only the bare score.
func SummarizeStandard(rep ComplianceReport) string {
	name := rep.Standard
	if std, ok := standards.Lookup(rep.Standard); ok {
		name = fmt.Sprintf("%s %s", std.Flag, std.Name)
	}
	return fmt.Sprintf("%s %s %3d%% %s",
		badge(rep.Passed),
		summaryCodeStyle.Render(rep.Standard),
		rep.Score,
		summaryMutedStyle.Render(name))
}

// SummarizeAggregate renders the per-standard table plus the overall line
// for an all-standards run.
func SummarizeAggregate(agg AggregateReport) string {
	var b strings.Builder
	b.WriteString(summaryTitleStyle.Render("Accessibility compliance") + "\n")
	for _, std := range standards.All() {
		score, ok := agg.Standards[std.Code]
		if !ok {
			continue
		}
		b.WriteString(fmt.Sprintf("%s %s %3d%% %s\n",
			badge(score >= std.Threshold),
			summaryCodeStyle.Render(std.Code),
			score,
			summaryMutedStyle.Render(std.Flag+" "+std.Name)))
	}
	for _, code := range unregisteredCodes(agg.Standards) {
		score := agg.Standards[code]
		b.WriteString(fmt.Sprintf("%s %s %3d%%\n",
			badge(score >= standards.DefaultThreshold),
			summaryCodeStyle.Render(code),
			score))
	}
	b.WriteString(fmt.Sprintf("%s overall %d%%", badge(agg.Passed), agg.OverallCompliance))
	return b.String()
}
