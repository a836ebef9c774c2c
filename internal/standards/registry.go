package standards

import "strings"

// DefaultThreshold is applied when a standard code is not in the registry.
// Unknown codes still produce a usable, maximally strict report.
const DefaultThreshold = 100

type Standard struct {
	Code         string
	Name         string
	Jurisdiction string
	Flag         string
	Color        string
	Threshold    int
	Requirements []string
}

// registry holds the four government regimes in their declared order.
// The aggregate run iterates this order, so it must stay stable.
var registry = []Standard{
	{
		Code:         "BITV",
		Name:         "BITV 2.0",
		Jurisdiction: "Germany",
		Flag:         "\U0001F1E9\U0001F1EA",
		Color:        "#dd0000",
		Threshold:    100,
		Requirements: []string{
			"All functionality operable via keyboard alone",
			"Text alternatives for all non-text content",
			"Contrast ratio of at least 4.5:1 for normal text",
			"Form fields carry programmatically determinable labels",
			"Content remains usable at 200% zoom",
		},
	},
	{
		Code:         "RGAA",
		Name:         "RGAA 4.1",
		Jurisdiction: "France",
		Flag:         "\U0001F1EB\U0001F1F7",
		Color:        "#0055a4",
		Threshold:    100,
		Requirements: []string{
			"Every page declares a default human language",
			"Focus order follows a meaningful reading sequence",
			"Status messages announced without receiving focus",
			"Interactive components expose accessible names and roles",
			"No content flashes more than three times per second",
		},
	},
	{
		Code:         "EN301549",
		Name:         "EN 301 549 V3.2.1",
		Jurisdiction: "European Union",
		Flag:         "\U0001F1EA\U0001F1FA",
		Color:        "#003399",
		Threshold:    100,
		Requirements: []string{
			"Conformance with WCAG 2.1 level AA success criteria",
			"Captions provided for prerecorded audio content",
			"User preferences for color and contrast respected",
			"Pointer gestures have single-pointer alternatives",
			"Session timeouts can be extended by the user",
		},
	},
	{
		Code:         "DOS",
		Name:         "DOS-lagen (2018:1937)",
		Jurisdiction: "Sweden",
		Flag:         "\U0001F1F8\U0001F1EA",
		Color:        "#005293",
		Threshold:    100,
		Requirements: []string{
			"Navigation possible without a pointing device",
			"Error suggestions provided for invalid form input",
			"Heading structure reflects document outline",
			"Accessibility statement reachable from every page",
			"Media controls reachable by assistive technology",
		},
	},
}

// All returns the configured standards in declared order. The slice is a
// copy; callers cannot mutate the registry.
func All() []Standard {
	out := make([]Standard, len(registry))
	copy(out, registry)
	return out
}

// Codes returns the standard codes in declared order.
func Codes() []string {
	out := make([]string, 0, len(registry))
	for _, s := range registry {
		out = append(out, s.Code)
	}
	return out
}

// Lookup finds a standard by code, case-insensitively.
func Lookup(code string) (Standard, bool) {
	for _, s := range registry {
		if strings.EqualFold(s.Code, code) {
			return s, true
		}
	}
	return Standard{}, false
}

// Threshold returns the required compliance percentage for a code,
// falling back to DefaultThreshold for unrecognized codes.
func Threshold(code string) int {
	if s, ok := Lookup(code); ok {
		return s.Threshold
	}
	return DefaultThreshold
}
