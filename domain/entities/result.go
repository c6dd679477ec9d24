package entities

import "fmt"

// CheckResult summarizes one evaluated rule category.
// Categories whose handler was inactive produce no CheckResult at all.
type CheckResult struct {
	// Category is the evaluated rule group.
	Category Category `json:"category"`

	// Summary describes the outcome in a human-readable form.
	Summary string `json:"summary"`

	// Violations is the number of violations the category produced.
	Violations int `json:"violations"`

	// Passed is true iff the category produced zero violations.
	Passed bool `json:"passed"`
}

// CheckPassed creates a passing CheckResult with the given summary.
func CheckPassed(c Category, summary string) CheckResult {
	return CheckResult{
		Category: c,
		Summary:  summary,
		Passed:   true,
	}
}

// CheckFailed creates a failing CheckResult for n violations.
func CheckFailed(c Category, n int) CheckResult {
	noun := "violations"
	if n == 1 {
		noun = "violation"
	}
	return CheckResult{
		Category:   c,
		Summary:    fmt.Sprintf("%d %s found", n, noun),
		Violations: n,
	}
}

// String renders the result as "<category>: <summary>".
func (r CheckResult) String() string {
	return fmt.Sprintf("%s: %s", r.Category, r.Summary)
}
