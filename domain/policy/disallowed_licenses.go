package policy

import (
	"github.com/SayeemRaza50/compliance-checker/domain/entities"
	"github.com/SayeemRaza50/compliance-checker/domain/license"
	"github.com/SayeemRaza50/compliance-checker/domain/ports"
)

var _ ports.Handler = (*DisallowedLicensesHandler)(nil)

// DisallowedLicensesHandler flags license fields whose value is on the deny list.
type DisallowedLicensesHandler struct {
	expressions bool
}

func (h *DisallowedLicensesHandler) Category() entities.Category {
	return entities.CategoryDisallowedLicenses
}

func (h *DisallowedLicensesHandler) Active(p *entities.Policy) bool {
	return p != nil && len(p.DisallowedLicenses) > 0
}

func (h *DisallowedLicensesHandler) Summary() string {
	return "All packages use approved licenses"
}

// Check emits at most one violation per (package, license field).
func (h *DisallowedLicensesHandler) Check(packages []entities.Package, p *entities.Policy) ([]entities.Violation, error) {
	if !h.Active(p) {
		return nil, nil
	}

	denied := entities.NewStringSet(p.DisallowedLicenses...)
	var matcher *license.Matcher
	if h.expressions {
		matcher = license.NewMatcher(denied)
	}

	var violations []entities.Violation
	for i := range packages {
		pkg := &packages[i]
		for _, f := range pkg.LicenseFields() {
			if f.Value == "" {
				continue
			}
			if denied.Contains(f.Value) || (matcher != nil && matcher.Disallowed(f.Value)) {
				violations = append(violations,
					entities.DisallowedLicenseViolation(pkg.Name, f.Field, f.Value))
			}
		}
	}
	return violations, nil
}
