package a11ygate

import (
	"sort"

	"github.com/opencivica/a11y-gate/internal/standards"
)

func firstNonEmpty(v ...string) string {
	for _, s := range v {
		if s != "" {
			return s
		}
	}
	return ""
}

// unregisteredCodes lists score-map codes absent from the registry, sorted
// so placeholder cards render deterministically.
func unregisteredCodes(scores map[string]int) []string {
	var out []string
	for code := range scores {
		if _, ok := standards.Lookup(code); !ok {
			out = append(out, code)
		}
	}
	sort.Strings(out)
	return out
}
