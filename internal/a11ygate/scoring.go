package a11ygate

import (
	"github.com/opencivica/a11y-gate/internal/ingest/jest"
	"github.com/opencivica/a11y-gate/internal/scoring"
)

// countAssertions tallies the primary suite's outcomes. The first top-level
// suite is the scoring contract with the upstream runner; additional suites
// are ignored.
func countAssertions(rs jest.ResultSet) (passed, total int) {
	for _, a := range rs.PrimaryAssertions() {
		total++
		if a.Status == jest.StatusPassed {
			passed++
		}
	}
	return passed, total
}

// computeScore reduces a result set to its integer percentage score.
func computeScore(rs jest.ResultSet) int {
	passed, total := countAssertions(rs)
	return scoring.Percentage(passed, total)
}
