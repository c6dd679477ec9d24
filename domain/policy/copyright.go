package policy

import (
	"strings"

	"github.com/SayeemRaza50/compliance-checker/domain/entities"
	"github.com/SayeemRaza50/compliance-checker/domain/ports"
)

var _ ports.Handler = (*RequiredCopyrightHandler)(nil)

// RequiredCopyrightHandler flags packages without usable copyright text.
type RequiredCopyrightHandler struct{}

func (h *RequiredCopyrightHandler) Category() entities.Category {
	return entities.CategoryRequiredCopyright
}

func (h *RequiredCopyrightHandler) Active(p *entities.Policy) bool {
	return p != nil && p.RequiredCopyright
}

func (h *RequiredCopyrightHandler) Summary() string {
	return "All packages have copyright text"
}

func (h *RequiredCopyrightHandler) Check(packages []entities.Package, p *entities.Policy) ([]entities.Violation, error) {
	if !h.Active(p) {
		return nil, nil
	}

	var violations []entities.Violation
	for i := range packages {
		text := packages[i].CopyrightText
		if strings.TrimSpace(text) == "" || entities.IsNoAssertion(text) {
			violations = append(violations, entities.MissingCopyrightViolation(packages[i].Name, text))
		}
	}
	return violations, nil
}
