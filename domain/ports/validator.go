package ports

import "github.com/SayeemRaza50/compliance-checker/domain/entities"

// InputValidator rejects malformed input before any handler runs.
type InputValidator interface {
	// ValidatePolicy returns a ConfigError or InputError for an unusable policy.
	ValidatePolicy(policy *entities.Policy) error

	// ValidatePackages returns an InputError for the first malformed package.
	ValidatePackages(packages []entities.Package) error
}
