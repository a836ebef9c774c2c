// Package jest parses the test-runner result JSON produced upstream of the
// compliance pipeline: a top-level testResults array of suites, each holding
// an assertionResults array of individual pass/fail outcomes.
package jest

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

const (
	StatusPassed = "passed"
	StatusFailed = "failed"
)

type Assertion struct {
	Status          string
	Title           string
	AncestorTitles  []string
	FailureMessages []string
}

type Suite struct {
	Name       string
	Assertions []Assertion
}

// ResultSet is the normalized form of one result file. Suites keep the
// file's order; the first suite is the scoring contract with the runner.
type ResultSet struct {
	Suites []Suite
}

type envelope struct {
	TestResults []suiteEnvelope `json:"testResults"`
}

type suiteEnvelope struct {
	Name             string              `json:"name"`
	AssertionResults []assertionEnvelope `json:"assertionResults"`
}

type assertionEnvelope struct {
	Status          string   `json:"status"`
	Title           string   `json:"title"`
	AncestorTitles  []string `json:"ancestorTitles"`
	FailureMessages []string `json:"failureMessages"`
}

// Parse decodes a result payload, validating the shape at this boundary so
// the scoring layer never sees a partially-formed structure.
func Parse(path string, payload []byte) (ResultSet, error) {
	var env envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return ResultSet{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if env.TestResults == nil {
		return ResultSet{}, fmt.Errorf("parse %s: %w", path, errors.New("missing testResults array"))
	}

	rs := ResultSet{Suites: make([]Suite, 0, len(env.TestResults))}
	for _, s := range env.TestResults {
		suite := Suite{Name: s.Name, Assertions: make([]Assertion, 0, len(s.AssertionResults))}
		for _, a := range s.AssertionResults {
			suite.Assertions = append(suite.Assertions, Assertion{
				Status:          strings.ToLower(strings.TrimSpace(a.Status)),
				Title:           a.Title,
				AncestorTitles:  append([]string{}, a.AncestorTitles...),
				FailureMessages: append([]string{}, a.FailureMessages...),
			})
		}
		rs.Suites = append(rs.Suites, suite)
	}
	return rs, nil
}

// PrimaryAssertions returns the outcomes of the first top-level suite,
// which is the set the score is computed over. An empty result set yields
// an empty slice, not an error.
func (rs ResultSet) PrimaryAssertions() []Assertion {
	if len(rs.Suites) == 0 {
		return nil
	}
	return rs.Suites[0].Assertions
}

// Failed returns the failed outcomes across the primary suite.
func (rs ResultSet) Failed() []Assertion {
	var out []Assertion
	for _, a := range rs.PrimaryAssertions() {
		if a.Status == StatusFailed {
			out = append(out, a)
		}
	}
	return out
}

// Requirement reconstructs the human-readable requirement the assertion
// maps to from its ancestor group titles.
func (a Assertion) Requirement() string {
	return strings.Join(a.AncestorTitles, " > ")
}

// Message joins all failure messages for a failed assertion.
func (a Assertion) Message() string {
	return strings.Join(a.FailureMessages, "\n")
}
