// Package a11ygate implements the accessibility compliance pipeline: load
// per-standard test results, score them against the registry thresholds,
// persist JSON reports, aggregate across standards, and render HTML.
package a11ygate

import (
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/opencivica/a11y-gate/internal/ingest/jest"
	"github.com/opencivica/a11y-gate/internal/report"
	"github.com/opencivica/a11y-gate/internal/scoring"
	"github.com/opencivica/a11y-gate/internal/standards"
)

// FullCompliance is the overall value required for a zero exit code.
const FullCompliance = 100

// RunStandard executes the single-standard pipeline: load, score, build,
// persist. Input-side failures degrade to a zero score; a report is always
// produced. Only a persist failure returns an error.
func RunStandard(cfg Config, log *zap.Logger) (ComplianceReport, error) {
	cfg = withDefaults(cfg)
	log = ensureLogger(log)

	runLog, closeRunLog, logErr := report.NewRunLogger(cfg.RunLogPath)
	if logErr == nil {
		defer closeRunLog()
		runLog.Info("run.start",
			zap.String("mode", "single"),
			zap.String("standard", cfg.Standard),
			zap.String("results_dir", cfg.ResultsDir),
			zap.String("reports_dir", cfg.ReportsDir))
	} else {
		runLog = zap.NewNop()
		log.Warn("run log unavailable", zap.Error(logErr))
	}

	rep := scoreStandard(cfg, log, cfg.Standard)
	outPath := report.ReportPath(cfg.ReportsDir, cfg.Standard)
	if err := report.WriteJSON(outPath, rep); err != nil {
		log.Error("report persist failed", zap.String("standard", rep.Standard), zap.Error(err))
		runLog.Error("run.persist.error", zap.String("standard", rep.Standard), zap.Error(err))
		return ComplianceReport{}, err
	}

	runLog.Info("run.complete",
		zap.String("mode", "single"),
		zap.String("standard", rep.Standard),
		zap.Int("score", rep.Score),
		zap.Bool("passed", rep.Passed),
		zap.String("report", outPath))
	return rep, nil
}

// RunAll executes the pipeline for every registered standard in declared
// order, persists each report, then builds and persists the aggregate.
// The overall value is the minimum per-standard score of this run.
func RunAll(cfg Config, log *zap.Logger) (AggregateReport, error) {
	cfg = withDefaults(cfg)
	log = ensureLogger(log)

	runLog, closeRunLog, logErr := report.NewRunLogger(cfg.RunLogPath)
	if logErr == nil {
		defer closeRunLog()
		runLog.Info("run.start",
			zap.String("mode", "all"),
			zap.Strings("standards", standards.Codes()),
			zap.String("results_dir", cfg.ResultsDir),
			zap.String("reports_dir", cfg.ReportsDir))
	} else {
		runLog = zap.NewNop()
		log.Warn("run log unavailable", zap.Error(logErr))
	}

	scores := make(map[string]int, len(standards.Codes()))
	for _, std := range standards.All() {
		rep := scoreStandard(cfg, log, std.Code)
		outPath := report.ReportPath(cfg.ReportsDir, std.Code)
		if err := report.WriteJSON(outPath, rep); err != nil {
			log.Error("report persist failed", zap.String("standard", std.Code), zap.Error(err))
			runLog.Error("run.persist.error", zap.String("standard", std.Code), zap.Error(err))
			return AggregateReport{}, err
		}
		scores[std.Code] = rep.Score
		runLog.Info("standard.scored",
			zap.String("standard", std.Code),
			zap.Int("score", rep.Score),
			zap.Bool("passed", rep.Passed),
			zap.Int("failed_tests", rep.Details.FailedTests))
	}

	overall := scoring.Overall(scores)
	agg := AggregateReport{
		Timestamp:         time.Now().UTC().Format(time.RFC3339),
		OverallCompliance: overall,
		Standards:         scores,
		Passed:            overall == FullCompliance,
	}
	aggPath := report.AggregateReportPath(cfg.ReportsDir)
	if err := report.WriteJSON(aggPath, agg); err != nil {
		log.Error("aggregate persist failed", zap.Error(err))
		runLog.Error("run.persist.error", zap.String("standard", report.AggregateCode), zap.Error(err))
		return AggregateReport{}, err
	}

	runLog.Info("run.complete",
		zap.String("mode", "all"),
		zap.Int("overall_compliance", agg.OverallCompliance),
		zap.Bool("passed", agg.Passed),
		zap.String("report", aggPath))
	return agg, nil
}

// scoreStandard loads one standard's results and builds its report,
// degrading missing or malformed input to an empty result set.
func scoreStandard(cfg Config, log *zap.Logger, code string) ComplianceReport {
	rs, err := loadResults(cfg.ResultsDir, code)
	if err != nil {
		log.Warn("no usable result data, scoring as zero",
			zap.String("standard", canonicalCode(code)),
			zap.Error(err))
		rs = jest.ResultSet{}
	}
	return buildReport(code, rs, time.Now().UTC())
}

// buildReport is the pure report construction step. The threshold lookup
// falls back to 100 for unrecognized codes, and Passed is derived from the
// score and threshold here and nowhere else.
func buildReport(code string, rs jest.ResultSet, now time.Time) ComplianceReport {
	passed, total := countAssertions(rs)
	score := scoring.Percentage(passed, total)
	threshold := standards.Threshold(code)

	failures := make([]Failure, 0)
	for _, a := range rs.Failed() {
		failures = append(failures, Failure{
			Requirement: a.Requirement(),
			Title:       a.Title,
			Message:     a.Message(),
		})
	}

	return ComplianceReport{
		Standard:  canonicalCode(code),
		Score:     score,
		Threshold: threshold,
		Passed:    scoring.Passed(score, threshold),
		Timestamp: now.Format(time.RFC3339),
		Details: ReportDetails{
			TotalTests:  total,
			PassedTests: passed,
			FailedTests: total - passed,
			Failures:    failures,
		},
	}
}

func withDefaults(cfg Config) Config {
	if strings.TrimSpace(cfg.ResultsDir) == "" {
		cfg.ResultsDir = "."
	}
	if strings.TrimSpace(cfg.ReportsDir) == "" {
		cfg.ReportsDir = "."
	}
	if strings.TrimSpace(cfg.RunLogPath) == "" {
		cfg.RunLogPath = report.DefaultRunLogPath(cfg.ReportsDir)
	}
	return cfg
}

func ensureLogger(log *zap.Logger) *zap.Logger {
	if log == nil {
		return zap.NewNop()
	}
	return log
}

func canonicalCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
