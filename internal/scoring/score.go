// Package scoring holds the pure compliance score math, kept free of I/O so
// the percentage rules can be tested in isolation from the pipeline.
package scoring

// Percentage converts pass/total counts to an integer score in [0, 100].
// Rounding is half-up: 0.5 fractions round toward 100. A zero total scores
// 0, since absent data is non-compliant rather than unknown.
func Percentage(passed, total int) int {
	if total <= 0 {
		return 0
	}
	if passed < 0 {
		passed = 0
	}
	if passed > total {
		passed = total
	}
	return int(float64(passed)/float64(total)*100 + 0.5)
}

// Passed reports whether a score meets its threshold. Compliance is always
// recomputed from these two values, never stored independently.
func Passed(score, threshold int) bool {
	return score >= threshold
}

// Overall reduces per-standard scores to the aggregate value: the minimum,
// so the weakest standard gates the whole run. An empty set scores 0.
func Overall(scores map[string]int) int {
	if len(scores) == 0 {
		return 0
	}
	min := 101
	for _, s := range scores {
		if s < min {
			min = s
		}
	}
	return min
}
