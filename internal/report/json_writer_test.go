package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type sample struct {
	Standard string `json:"standard"`
	Score    int    `json:"score"`
}

func TestWriteJSONOverwritesInPlace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "compliance-report-BITV.json")

	if err := WriteJSON(path, sample{Standard: "BITV", Score: 70}); err != nil {
		t.Fatal(err)
	}
	if err := WriteJSON(path, sample{Standard: "BITV", Score: 100}); err != nil {
		t.Fatal(err)
	}

	var got sample
	if err := ReadJSON(path, &got); err != nil {
		t.Fatal(err)
	}
	if got.Score != 100 {
		t.Fatalf("score=%d want=100 (old report not overwritten)", got.Score)
	}
}

func TestWriteJSONIsIndented(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	if err := WriteJSON(path, sample{Standard: "RGAA", Score: 90}); err != nil {
		t.Fatal(err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(raw), "\n  \"standard\"") {
		t.Fatalf("report not indented:\n%s", raw)
	}
}

func TestWriteJSONFailsOnUnwritablePath(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks are bypassed for root")
	}
	dir := t.TempDir()
	if err := os.Chmod(dir, 0o555); err != nil {
		t.Fatal(err)
	}
	defer os.Chmod(dir, 0o755)

	err := WriteJSON(filepath.Join(dir, "report.json"), sample{})
	if err == nil {
		t.Fatal("expected write error on read-only directory")
	}
}

func TestReadJSONMissingFileFails(t *testing.T) {
	var got sample
	if err := ReadJSON(filepath.Join(t.TempDir(), "absent.json"), &got); err == nil {
		t.Fatal("expected error for missing report")
	}
}

func TestPathDerivation(t *testing.T) {
	if got := ResultPath("", "bitv"); got != "compliance-BITV.json" {
		t.Fatalf("result path=%q", got)
	}
	if got := ReportPath("out", "RGAA"); got != filepath.Join("out", "compliance-report-RGAA.json") {
		t.Fatalf("report path=%q", got)
	}
	if got := AggregateReportPath(""); got != "compliance-report-aggregate.json" {
		t.Fatalf("aggregate path=%q", got)
	}
	if got := HTMLPath("", "dos"); got != "report-DOS.html" {
		t.Fatalf("html path=%q", got)
	}
	if got := DefaultRunLogPath("out"); got != filepath.Join("out", "a11y-gate.run.log") {
		t.Fatalf("run log path=%q", got)
	}
}
