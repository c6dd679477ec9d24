package policy

import (
	"strings"

	"github.com/SayeemRaza50/compliance-checker/domain/entities"
	"github.com/SayeemRaza50/compliance-checker/domain/ports"
)

// organizationPrefix is the SPDX actor prefix for organization suppliers.
const organizationPrefix = "Organization: "

var _ ports.Handler = (*ApprovedSuppliersHandler)(nil)

// ApprovedSuppliersHandler flags packages whose supplier is not approved.
// A supplier is approved when either its raw value or its name without the
// SPDX actor prefix is listed. Names are compared exactly, with no case
// folding and no fuzzy matching.
type ApprovedSuppliersHandler struct{}

func (h *ApprovedSuppliersHandler) Category() entities.Category {
	return entities.CategoryApprovedSuppliers
}

func (h *ApprovedSuppliersHandler) Active(p *entities.Policy) bool {
	return p != nil && len(p.ApprovedSuppliers) > 0
}

func (h *ApprovedSuppliersHandler) Summary() string {
	return "All suppliers are approved"
}

func (h *ApprovedSuppliersHandler) Check(packages []entities.Package, p *entities.Policy) ([]entities.Violation, error) {
	if !h.Active(p) {
		return nil, nil
	}

	approved := entities.NewStringSet(p.ApprovedSuppliers...)
	var violations []entities.Violation
	for i := range packages {
		raw := packages[i].Supplier
		name := SupplierName(raw)
		if !approved.Contains(raw) && !approved.Contains(name) {
			violations = append(violations, entities.UnapprovedSupplierViolation(packages[i].Name, name))
		}
	}
	return violations, nil
}

// SupplierName strips the SPDX "Organization: " actor prefix, if present.
func SupplierName(supplier string) string {
	return strings.TrimPrefix(supplier, organizationPrefix)
}
