package ports

import "github.com/SayeemRaza50/compliance-checker/domain/entities"

// Handler checks packages against one policy rule category.
// Implementations must not mutate packages or policy and must keep no state
// between calls.
type Handler interface {
	// Category returns the rule category this handler enforces.
	Category() entities.Category

	// Active reports whether the policy constrains this category.
	// Inactive handlers are skipped and contribute no CheckResult.
	Active(policy *entities.Policy) bool

	// Check returns the violations in package input order.
	// An error means the policy could not be applied, not that packages failed it.
	Check(packages []entities.Package, policy *entities.Policy) ([]entities.Violation, error)

	// Summary describes a passing check, e.g. "All suppliers are approved".
	Summary() string
}
