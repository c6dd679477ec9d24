package entities

// Process exit codes for a compliance run. The command-line layer maps a run
// to one of these; the engine itself never exits.
const (
	ExitCompliant       = 0
	ExitViolations      = 1
	ExitProcessingError = 2
)

// ReportMetadata carries run statistics. It holds no timing so that reports
// for identical inputs compare equal.
type ReportMetadata struct {
	// TotalPackages is the number of packages evaluated.
	TotalPackages int `json:"total_packages"`

	// CategoriesEvaluated lists the active categories in evaluation order.
	CategoriesEvaluated []Category `json:"categories_evaluated,omitempty"`
}

// ComplianceReport is the output of one evaluation run.
type ComplianceReport struct {
	// Violations are ordered by handler invocation, then by package input order.
	Violations []Violation `json:"violations"`

	// Checks holds one entry per evaluated category, in evaluation order.
	Checks []CheckResult `json:"checks"`

	// Metadata describes the run.
	Metadata ReportMetadata `json:"metadata"`

	// Compliant is true iff Violations is empty.
	Compliant bool `json:"compliant"`
}

// NewComplianceReport assembles a report and derives the verdict.
func NewComplianceReport(violations []Violation, checks []CheckResult, meta ReportMetadata) *ComplianceReport {
	if violations == nil {
		violations = []Violation{}
	}
	if checks == nil {
		checks = []CheckResult{}
	}
	return &ComplianceReport{
		Violations: violations,
		Checks:     checks,
		Metadata:   meta,
		Compliant:  len(violations) == 0,
	}
}

// Passed returns the checks that passed, in evaluation order.
func (r *ComplianceReport) Passed() []CheckResult {
	passed := make([]CheckResult, 0, len(r.Checks))
	for _, c := range r.Checks {
		if c.Passed {
			passed = append(passed, c)
		}
	}
	return passed
}

// ViolationsFor returns the violations produced by one category.
func (r *ComplianceReport) ViolationsFor(c Category) []Violation {
	var out []Violation
	for _, v := range r.Violations {
		if v.Category == c {
			out = append(out, v)
		}
	}
	return out
}

// ExitCode maps the verdict to ExitCompliant or ExitViolations.
func (r *ComplianceReport) ExitCode() int {
	if r.Compliant {
		return ExitCompliant
	}
	return ExitViolations
}

// ExitCodeFor maps a run outcome to a process exit code. Any error wins over
// the report, since an aborted run produces no report.
func ExitCodeFor(r *ComplianceReport, err error) int {
	if err != nil || r == nil {
		return ExitProcessingError
	}
	return r.ExitCode()
}
