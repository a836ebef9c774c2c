package a11ygate

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"

	"github.com/opencivica/a11y-gate/internal/standards"
)

// Display tiers for the large score figure. These breakpoints are a
// presentation policy only; compliance itself is score vs threshold.
const (
	tierSuccessFloor = 100
	tierWarningFloor = 80
)

func scoreTier(score int) string {
	switch {
	case score >= tierSuccessFloor:
		return "ok"
	case score >= tierWarningFloor:
		return "warn"
	default:
		return "fail"
	}
}

func esc(s string) string {
	return html.EscapeString(s)
}

func writeHTML(path, content string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil && dir != "." {
		return fmt.Errorf("create html dir %s: %w", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write html %s: %w", path, err)
	}
	return nil
}

const pageCSS = `
:root {
  --bg: #f4f6f9;
  --panel: #ffffff;
  --ink: #1c2733;
  --muted: #5b6b7c;
  --line: #dde5ee;
  --ok: #1e8e3e;
  --ok-bg: #e6f4ea;
  --warn: #b26a00;
  --warn-bg: #fdf0d5;
  --fail: #c5221f;
  --fail-bg: #fce8e6;
  --radius: 10px;
}
* { box-sizing: border-box; }
body {
  margin: 0;
  padding: 32px 16px;
  background: var(--bg);
  color: var(--ink);
  font: 15px/1.5 -apple-system, "Segoe UI", Roboto, Helvetica, Arial, sans-serif;
}
.wrap { max-width: 880px; margin: 0 auto; }
.panel {
  background: var(--panel);
  border: 1px solid var(--line);
  border-radius: var(--radius);
  padding: 20px 24px;
  margin-bottom: 16px;
}
.head { display: flex; align-items: center; gap: 14px; }
.head .flag { font-size: 40px; line-height: 1; }
.head h1 { margin: 0; font-size: 22px; }
.head .sub { color: var(--muted); font-size: 14px; }
.badge {
  display: inline-block;
  padding: 2px 10px;
  border-radius: 999px;
  font-size: 12px;
  font-weight: 600;
  letter-spacing: 0.04em;
}
.badge.ok { color: var(--ok); background: var(--ok-bg); }
.badge.warn { color: var(--warn); background: var(--warn-bg); }
.badge.fail { color: var(--fail); background: var(--fail-bg); }
.score {
  font-size: 64px;
  font-weight: 700;
  text-align: center;
  margin: 8px 0;
}
.score.ok { color: var(--ok); }
.score.warn { color: var(--warn); }
.score.fail { color: var(--fail); }
.score-caption { text-align: center; color: var(--muted); margin-bottom: 4px; }
h2 { font-size: 16px; margin: 0 0 12px; }
ul.reqs { margin: 0; padding-left: 22px; }
ul.reqs li { margin: 4px 0; }
table { width: 100%; border-collapse: collapse; }
th, td { text-align: left; padding: 8px 10px; border-bottom: 1px solid var(--line); }
th { color: var(--muted); font-weight: 600; font-size: 13px; }
details.failure {
  border: 1px solid var(--line);
  border-radius: 6px;
  padding: 8px 12px;
  margin: 8px 0;
  background: var(--fail-bg);
}
details.failure summary { cursor: pointer; font-weight: 600; }
details.failure .req { color: var(--muted); font-size: 13px; margin: 6px 0 2px; }
details.failure pre {
  margin: 6px 0 2px;
  padding: 8px;
  background: var(--panel);
  border-radius: 4px;
  white-space: pre-wrap;
  word-break: break-word;
  font-size: 13px;
}
.cards { display: grid; grid-template-columns: repeat(2, minmax(0, 1fr)); gap: 14px; }
.card {
  border: 1px solid var(--line);
  border-radius: var(--radius);
  padding: 16px;
  text-align: center;
}
.card .flag { font-size: 32px; }
.card .code { font-weight: 700; letter-spacing: 0.05em; margin: 4px 0; }
.card .card-score { font-size: 30px; font-weight: 700; margin: 2px 0 8px; }
.banner { text-align: center; }
.banner .overall { font-size: 56px; font-weight: 700; margin: 4px 0; }
.overall.ok, .card-score.ok { color: var(--ok); }
.overall.warn, .card-score.warn { color: var(--warn); }
.overall.fail, .card-score.fail { color: var(--fail); }
.footer { color: var(--muted); font-size: 12px; text-align: center; }
@media (max-width: 640px) { .cards { grid-template-columns: 1fr; } }
`

func pageStart(b *strings.Builder, title string) {
	b.WriteString("<!DOCTYPE html><html lang=\"en\"><head><meta charset=\"utf-8\">")
	b.WriteString("<meta name=\"viewport\" content=\"width=device-width,initial-scale=1\">")
	b.WriteString("<title>" + esc(title) + "</title>")
	b.WriteString("<style>" + pageCSS + "</style>")
	b.WriteString("</head><body><div class=\"wrap\">")
}

func pageEnd(b *strings.Builder, generatedAt string) {
	b.WriteString("<p class=\"footer\">Generated " + esc(generatedAt) + " by a11y-gate</p>")
	b.WriteString("</div></body></html>")
}

func statusBadge(passed bool) string {
	if passed {
		return "<span class=\"badge ok\">PASSED</span>"
	}
	return "<span class=\"badge fail\">FAILED</span>"
}

// renderStandardHTML produces the self-contained page for one standard's
// report. All report-derived text, including failure messages, is escaped
// before interpolation.
func renderStandardHTML(rep ComplianceReport, std standards.Standard) string {
	tier := scoreTier(rep.Score)

	var b strings.Builder
	pageStart(&b, std.Name+" compliance report")

	b.WriteString("<div class=\"panel\"><div class=\"head\">")
	b.WriteString("<span class=\"flag\">" + esc(std.Flag) + "</span>")
	b.WriteString("<div><h1 style=\"color:" + esc(std.Color) + "\">" + esc(std.Name) + "</h1>")
	b.WriteString("<div class=\"sub\">" + esc(std.Jurisdiction) + " &middot; " + esc(rep.Standard) + "</div></div>")
	b.WriteString("<div style=\"margin-left:auto\">" + statusBadge(rep.Passed) + "</div>")
	b.WriteString("</div></div>")

	b.WriteString("<div class=\"panel\">")
	b.WriteString("<div class=\"score " + tier + "\">" + fmt.Sprintf("%d%%", rep.Score) + "</div>")
	b.WriteString("<div class=\"score-caption\">required: " + fmt.Sprintf("%d%%", rep.Threshold) + "</div>")
	b.WriteString("</div>")

	if len(std.Requirements) > 0 {
		b.WriteString("<div class=\"panel\"><h2>Requirements</h2><ul class=\"reqs\">")
		for _, r := range std.Requirements {
			b.WriteString("<li>" + esc(r) + "</li>")
		}
		b.WriteString("</ul></div>")
	}

	b.WriteString("<div class=\"panel\"><h2>Results</h2><table>")
	b.WriteString("<tr><th>Total tests</th><th>Passed</th><th>Failed</th><th>Status</th></tr>")
	b.WriteString(fmt.Sprintf("<tr><td>%d</td><td>%d</td><td>%d</td><td>%s</td></tr>",
		rep.Details.TotalTests, rep.Details.PassedTests, rep.Details.FailedTests, statusBadge(rep.Passed)))
	b.WriteString("</table></div>")

	if len(rep.Details.Failures) > 0 {
		b.WriteString("<div class=\"panel\"><h2>Failure details</h2>")
		for _, f := range rep.Details.Failures {
			b.WriteString("<details class=\"failure\"><summary>" + esc(f.Title) + "</summary>")
			if f.Requirement != "" {
				b.WriteString("<div class=\"req\">" + esc(f.Requirement) + "</div>")
			}
			b.WriteString("<pre>" + esc(f.Message) + "</pre>")
			b.WriteString("</details>")
		}
		b.WriteString("</div>")
	}

	pageEnd(&b, rep.Timestamp)
	return b.String()
}

// renderAggregateHTML produces the cross-standard page: an overall banner
// and one card per standard. Codes present in the persisted report but not
// in the registry render with a neutral placeholder card.
func renderAggregateHTML(agg AggregateReport) string {
	tier := scoreTier(agg.OverallCompliance)

	var b strings.Builder
	pageStart(&b, "Accessibility compliance overview")

	b.WriteString("<div class=\"panel banner\">")
	b.WriteString("<h1>Accessibility Compliance</h1>")
	b.WriteString("<div class=\"overall " + tier + "\">" + fmt.Sprintf("%d%%", agg.OverallCompliance) + "</div>")
	b.WriteString(statusBadge(agg.Passed))
	b.WriteString("</div>")

	b.WriteString("<div class=\"panel\"><h2>Standards</h2><div class=\"cards\">")
	for _, std := range standards.All() {
		score, ok := agg.Standards[std.Code]
		if !ok {
			continue
		}
		writeAggregateCard(&b, std.Flag, std.Code, score, std.Threshold)
	}
	for _, code := range unregisteredCodes(agg.Standards) {
		writeAggregateCard(&b, "\U0001F3F3", code, agg.Standards[code], standards.DefaultThreshold)
	}
	b.WriteString("</div></div>")

	pageEnd(&b, agg.Timestamp)
	return b.String()
}

func writeAggregateCard(b *strings.Builder, flag, code string, score, threshold int) {
	b.WriteString("<div class=\"card\">")
	b.WriteString("<div class=\"flag\">" + esc(flag) + "</div>")
	b.WriteString("<div class=\"code\">" + esc(code) + "</div>")
	b.WriteString("<div class=\"card-score " + scoreTier(score) + "\">" + fmt.Sprintf("%d%%", score) + "</div>")
	b.WriteString(statusBadge(score >= threshold))
	b.WriteString("</div>")
}
