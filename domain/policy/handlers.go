// Package policy implements the compliance rule handlers, one per policy
// category. Handlers are pure functions of (packages, policy).
package policy

import (
	"github.com/SayeemRaza50/compliance-checker/domain/ports"
)

// handlerConfig holds construction options shared by the handlers.
type handlerConfig struct {
	licenseExpressions bool // Evaluate license fields as SPDX expressions
}

func defaultHandlerConfig() handlerConfig {
	return handlerConfig{
		licenseExpressions: false, // Exact match only
	}
}

// HandlerOption configures the default handlers.
type HandlerOption func(*handlerConfig)

// WithLicenseExpressions enables SPDX expression evaluation for license
// fields that are not an exact deny-list match.
func WithLicenseExpressions(enabled bool) HandlerOption {
	return func(c *handlerConfig) {
		c.licenseExpressions = enabled
	}
}

// DefaultHandlers returns the four handlers in evaluation order:
// disallowed-licenses, no-assertion-values, required-copyright,
// approved-suppliers.
func DefaultHandlers(opts ...HandlerOption) []ports.Handler {
	cfg := defaultHandlerConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return []ports.Handler{
		&DisallowedLicensesHandler{expressions: cfg.licenseExpressions},
		&NoAssertionHandler{},
		&RequiredCopyrightHandler{},
		&ApprovedSuppliersHandler{},
	}
}
