package scoring

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPercentage(t *testing.T) {
	cases := []struct {
		name   string
		passed int
		total  int
		want   int
	}{
		{"all_passed", 10, 10, 100},
		{"seven_of_ten", 7, 10, 70},
		{"zero_total", 0, 0, 0},
		{"zero_total_with_passed", 3, 0, 0},
		{"none_passed", 0, 8, 0},
		{"half_up_at_boundary", 1, 8, 13},  // 12.5 rounds up
		{"two_thirds", 2, 3, 67},           // 66.67 rounds up
		{"one_third", 1, 3, 33},            // 33.33 rounds down
		{"negative_passed_clamped", -2, 5, 0},
		{"passed_over_total_clamped", 7, 5, 100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Percentage(tc.passed, tc.total)
			require.Equal(t, tc.want, got)
			require.GreaterOrEqual(t, got, 0)
			require.LessOrEqual(t, got, 100)
		})
	}
}

func TestPassedIsDerivedFromScoreAndThreshold(t *testing.T) {
	require.True(t, Passed(100, 100))
	require.False(t, Passed(99, 100))
	require.True(t, Passed(80, 80))
	require.False(t, Passed(0, 100))
}

func TestOverallIsMinimum(t *testing.T) {
	scores := map[string]int{"BITV": 100, "RGAA": 100, "EN301549": 90, "DOS": 100}
	require.Equal(t, 90, Overall(scores))
}

func TestOverallEmptySetScoresZero(t *testing.T) {
	require.Equal(t, 0, Overall(nil))
	require.Equal(t, 0, Overall(map[string]int{}))
}
