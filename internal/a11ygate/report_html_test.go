package a11ygate

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/opencivica/a11y-gate/internal/report"
	"github.com/opencivica/a11y-gate/internal/standards"
)

func TestScoreTierBreakpoints(t *testing.T) {
	cases := map[int]string{100: "ok", 99: "warn", 80: "warn", 79: "fail", 0: "fail"}
	for score, want := range cases {
		if got := scoreTier(score); got != want {
			t.Fatalf("scoreTier(%d)=%s want=%s", score, got, want)
		}
	}
}

func TestRenderStandardHTMLEscapesFailureText(t *testing.T) {
	rep := ComplianceReport{
		Standard:  "BITV",
		Score:     50,
		Threshold: 100,
		Timestamp: "2026-03-01T12:00:00Z",
		Details: ReportDetails{
			TotalTests:  2,
			PassedTests: 1,
			FailedTests: 1,
			Failures: []Failure{{
				Requirement: "Forms > Labels",
				Title:       `missing <label> element`,
				Message:     `expected <label for="name">, got <script>alert(1)</script>`,
			}},
		},
	}
	std, _ := standards.Lookup("BITV")
	html := renderStandardHTML(rep, std)

	if strings.Contains(html, "<script>alert(1)</script>") {
		t.Fatal("failure message interpolated without escaping")
	}
	if !strings.Contains(html, "&lt;script&gt;alert(1)&lt;/script&gt;") {
		t.Fatal("escaped failure message not present")
	}
	if !strings.Contains(html, "missing &lt;label&gt; element") {
		t.Fatal("failure title not escaped")
	}
	if !strings.Contains(html, "Forms &gt; Labels") {
		t.Fatal("requirement chain not escaped")
	}
}

func TestRenderStandardHTMLShowsMetadataAndCounts(t *testing.T) {
	rep := ComplianceReport{
		Standard:  "RGAA",
		Score:     100,
		Threshold: 100,
		Passed:    true,
		Timestamp: "2026-03-01T12:00:00Z",
		Details:   ReportDetails{TotalTests: 5, PassedTests: 5, Failures: []Failure{}},
	}
	std, _ := standards.Lookup("RGAA")
	html := renderStandardHTML(rep, std)

	for _, want := range []string{"RGAA 4.1", "France", std.Flag, "100%", "PASSED"} {
		if !strings.Contains(html, want) {
			t.Fatalf("html missing %q", want)
		}
	}
	for _, req := range std.Requirements {
		if !strings.Contains(html, req) {
			t.Fatalf("requirements checklist missing %q", req)
		}
	}
	if strings.Contains(html, "Failure details") {
		t.Fatal("failure section rendered with zero failures")
	}
}

func TestRenderAggregateHTMLCardsAndBanner(t *testing.T) {
	agg := AggregateReport{
		Timestamp:         "2026-03-01T12:00:00Z",
		OverallCompliance: 90,
		Standards:         map[string]int{"BITV": 100, "RGAA": 100, "EN301549": 90, "DOS": 100},
		Passed:            false,
	}
	html := renderAggregateHTML(agg)

	for _, code := range []string{"BITV", "RGAA", "EN301549", "DOS"} {
		if !strings.Contains(html, ">"+code+"<") {
			t.Fatalf("aggregate html missing card for %s", code)
		}
	}
	if !strings.Contains(html, "90%") {
		t.Fatal("overall banner missing")
	}
	if !strings.Contains(html, "FAILED") {
		t.Fatal("overall fail badge missing")
	}
}

func TestRenderRoundTripPreservesReportContent(t *testing.T) {
	dir := t.TempDir()
	rep := ComplianceReport{
		Standard:  "EN301549",
		Score:     67,
		Threshold: 100,
		Passed:    false,
		Timestamp: "2026-03-01T12:00:00Z",
		Details: ReportDetails{
			TotalTests:  3,
			PassedTests: 2,
			FailedTests: 1,
			Failures: []Failure{{
				Requirement: "Media > Captions",
				Title:       "video lacks captions",
				Message:     "no track element found\nsecond line kept",
			}},
		},
	}
	if err := report.WriteJSON(report.ReportPath(dir, "EN301549"), rep); err != nil {
		t.Fatal(err)
	}

	out, err := Render(RenderConfig{Standard: "EN301549", Dir: dir}, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	raw, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	html := string(raw)
	for _, want := range []string{"67%", "video lacks captions", "Media &gt; Captions", "second line kept"} {
		if !strings.Contains(html, want) {
			t.Fatalf("rendered html lost report detail %q", want)
		}
	}

	var back ComplianceReport
	if err := report.ReadJSON(report.ReportPath(dir, "EN301549"), &back); err != nil {
		t.Fatal(err)
	}
	if back.Score != rep.Score || back.Threshold != rep.Threshold || back.Passed != rep.Passed {
		t.Fatalf("round-trip changed report: %+v", back)
	}
	if len(back.Details.Failures) != 1 || back.Details.Failures[0].Message != rep.Details.Failures[0].Message {
		t.Fatalf("round-trip lost failure detail: %+v", back.Details.Failures)
	}
}

func TestRenderMissingReportIsFatal(t *testing.T) {
	if _, err := Render(RenderConfig{Standard: "BITV", Dir: t.TempDir()}, zap.NewNop()); err == nil {
		t.Fatal("renderer must fail without its input report")
	}
}

func TestRenderAggregateDefaultPaths(t *testing.T) {
	dir := t.TempDir()
	agg := AggregateReport{
		Timestamp:         "2026-03-01T12:00:00Z",
		OverallCompliance: 100,
		Standards:         map[string]int{"BITV": 100, "RGAA": 100, "EN301549": 100, "DOS": 100},
		Passed:            true,
	}
	if err := report.WriteJSON(report.AggregateReportPath(dir), agg); err != nil {
		t.Fatal(err)
	}

	out, err := Render(RenderConfig{Standard: "ALL", Dir: dir}, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	if out != filepath.Join(dir, "report-aggregate.html") {
		t.Fatalf("unexpected default output path: %s", out)
	}
	if _, err := os.Stat(out); err != nil {
		t.Fatal(err)
	}
}

func TestRenderUnregisteredStandardUsesPlaceholder(t *testing.T) {
	dir := t.TempDir()
	rep := ComplianceReport{Standard: "WCAG22", Score: 100, Threshold: 100, Passed: true, Timestamp: "2026-03-01T12:00:00Z"}
	if err := report.WriteJSON(report.ReportPath(dir, "WCAG22"), rep); err != nil {
		t.Fatal(err)
	}

	out, err := Render(RenderConfig{Standard: "WCAG22", Dir: dir}, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	raw, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(raw), "Unregistered standard") {
		t.Fatal("placeholder metadata not rendered")
	}
}

func TestRenderHTMLWriteFailureIsFatal(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks are bypassed for root")
	}
	dir := t.TempDir()
	rep := ComplianceReport{Standard: "BITV", Score: 100, Threshold: 100, Passed: true, Timestamp: "2026-03-01T12:00:00Z"}
	if err := report.WriteJSON(report.ReportPath(dir, "BITV"), rep); err != nil {
		t.Fatal(err)
	}
	outDir := filepath.Join(dir, "html")
	if err := os.MkdirAll(outDir, 0o555); err != nil {
		t.Fatal(err)
	}
	defer os.Chmod(outDir, 0o755)

	_, err := Render(RenderConfig{Standard: "BITV", Dir: dir, OutputPath: filepath.Join(outDir, "out.html")}, zap.NewNop())
	if err == nil {
		t.Fatal("expected write failure to be fatal")
	}
}
