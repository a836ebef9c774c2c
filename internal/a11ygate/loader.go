package a11ygate

import (
	"errors"
	"fmt"
	"os"

	"github.com/opencivica/a11y-gate/internal/ingest/jest"
	"github.com/opencivica/a11y-gate/internal/report"
)

// loadResults reads and parses the well-known result file for a standard.
// Missing files and malformed content come back as ErrMissingInput and
// ErrParse respectively so the engine can degrade them to a zero score.
func loadResults(resultsDir, code string) (jest.ResultSet, error) {
	path := report.ResultPath(resultsDir, code)
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return jest.ResultSet{}, fmt.Errorf("%w: %s", ErrMissingInput, path)
		}
		return jest.ResultSet{}, fmt.Errorf("%w: %s: %v", ErrMissingInput, path, err)
	}
	rs, err := jest.Parse(path, b)
	if err != nil {
		return jest.ResultSet{}, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return rs, nil
}
