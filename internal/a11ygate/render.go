package a11ygate

import (
	"go.uber.org/zap"

	"github.com/opencivica/a11y-gate/internal/report"
	"github.com/opencivica/a11y-gate/internal/standards"
)

// RenderConfig selects what to render and where. Empty input and output
// paths are derived from the standard code and Dir.
type RenderConfig struct {
	Standard   string
	InputPath  string
	OutputPath string
	Dir        string
}

// Render reads a persisted report and writes its HTML document. Unlike the
// scorer, the renderer has nothing meaningful to produce without its input,
// so a missing or malformed report is an error, as is any write failure.
func Render(cfg RenderConfig, log *zap.Logger) (string, error) {
	log = ensureLogger(log)
	code := canonicalCode(cfg.Standard)

	if code == "" || code == "ALL" || code == "AGGREGATE" {
		in := firstNonEmpty(cfg.InputPath, report.AggregateReportPath(cfg.Dir))
		out := firstNonEmpty(cfg.OutputPath, report.AggregateHTMLPath(cfg.Dir))

		var agg AggregateReport
		if err := report.ReadJSON(in, &agg); err != nil {
			log.Error("aggregate report unreadable", zap.String("input", in), zap.Error(err))
			return "", err
		}
		if err := writeHTML(out, renderAggregateHTML(agg)); err != nil {
			log.Error("aggregate html write failed", zap.String("output", out), zap.Error(err))
			return "", err
		}
		return out, nil
	}

	in := firstNonEmpty(cfg.InputPath, report.ReportPath(cfg.Dir, code))
	out := firstNonEmpty(cfg.OutputPath, report.HTMLPath(cfg.Dir, code))

	var rep ComplianceReport
	if err := report.ReadJSON(in, &rep); err != nil {
		log.Error("compliance report unreadable", zap.String("input", in), zap.Error(err))
		return "", err
	}
	std, ok := standards.Lookup(code)
	if !ok {
		log.Warn("rendering unregistered standard with placeholder metadata", zap.String("standard", code))
		std = placeholderStandard(code)
	}
	if err := writeHTML(out, renderStandardHTML(rep, std)); err != nil {
		log.Error("html write failed", zap.String("output", out), zap.Error(err))
		return "", err
	}
	return out, nil
}

// placeholderStandard gives unregistered codes neutral display metadata so
// their persisted reports still render.
func placeholderStandard(code string) standards.Standard {
	return standards.Standard{
		Code:         code,
		Name:         code,
		Jurisdiction: "Unregistered standard",
		Flag:         "\U0001F3F3",
		Color:        "#5b6b7c",
		Threshold:    standards.DefaultThreshold,
	}
}
