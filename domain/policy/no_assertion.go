package policy

import (
	"fmt"

	"github.com/SayeemRaza50/compliance-checker/domain/entities"
	domainerrors "github.com/SayeemRaza50/compliance-checker/domain/errors"
	"github.com/SayeemRaza50/compliance-checker/domain/ports"
)

var _ ports.Handler = (*NoAssertionHandler)(nil)

// NoAssertionHandler flags configured fields that hold the NOASSERTION sentinel.
type NoAssertionHandler struct{}

func (h *NoAssertionHandler) Category() entities.Category {
	return entities.CategoryNoAssertionValues
}

func (h *NoAssertionHandler) Active(p *entities.Policy) bool {
	return p != nil && len(p.NoAssertionFields) > 0
}

func (h *NoAssertionHandler) Summary() string {
	return "All critical fields have proper values"
}

// Check resolves every field name before looking at any package, so an
// unknown name fails the whole check rather than part of it.
func (h *NoAssertionHandler) Check(packages []entities.Package, p *entities.Policy) ([]entities.Violation, error) {
	if !h.Active(p) {
		return nil, nil
	}

	accessors, err := ResolveFields(p.NoAssertionFields)
	if err != nil {
		return nil, err
	}

	var violations []entities.Violation
	for i := range packages {
		pkg := &packages[i]
		for j, get := range accessors {
			if entities.IsNoAssertion(get(pkg)) {
				violations = append(violations, entities.NoAssertionViolation(pkg.Name, p.NoAssertionFields[j]))
			}
		}
	}
	return violations, nil
}

// ResolveFields maps field names to accessors, in order.
func ResolveFields(names []string) ([]entities.FieldAccessor, error) {
	accessors := make([]entities.FieldAccessor, len(names))
	for i, name := range names {
		fn, ok := entities.LookupField(name)
		if !ok {
			return nil, &domainerrors.ConfigError{
				Field: string(entities.CategoryNoAssertionValues),
				Err:   fmt.Errorf("%w %q (known fields: %v)", domainerrors.ErrUnknownField, name, entities.KnownFields()),
			}
		}
		accessors[i] = fn
	}
	return accessors, nil
}
