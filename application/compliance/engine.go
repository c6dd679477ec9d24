// Package compliance runs the policy handlers over a package list and turns
// their results into a compliance verdict.
//
// Evaluation is synchronous and side-effect free apart from logging and the
// optional violation observer. An Engine holds no per-run state, so one
// Engine may serve concurrent Evaluate calls.
package compliance

import (
	"context"
	"log/slog"

	"github.com/SayeemRaza50/compliance-checker/application/validation"
	"github.com/SayeemRaza50/compliance-checker/domain/entities"
	domainerrors "github.com/SayeemRaza50/compliance-checker/domain/errors"
	"github.com/SayeemRaza50/compliance-checker/domain/policy"
	"github.com/SayeemRaza50/compliance-checker/domain/ports"
)

// engineConfig holds configuration for the Engine.
type engineConfig struct {
	logger             *slog.Logger            // nil means slog.Default() at call time
	observer           ports.ViolationObserver // Receives each collected violation
	validator          ports.InputValidator    // Rejects malformed input up front
	handlers           []ports.Handler         // nil means policy.DefaultHandlers
	licenseExpressions bool                    // Passed to the default handlers
}

func defaultEngineConfig() engineConfig {
	return engineConfig{
		observer:  &policy.NopViolationObserver{},
		validator: validation.NewValidator(),
	}
}

// Option configures the Engine.
type Option func(*engineConfig)

// WithLogger sets the logger for run diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(c *engineConfig) {
		c.logger = l
	}
}

// WithObserver sets the observer notified of every violation.
// A nil observer keeps the default.
func WithObserver(o ports.ViolationObserver) Option {
	return func(c *engineConfig) {
		if o != nil {
			c.observer = o
		}
	}
}

// WithValidator replaces the input validator. A nil validator keeps the default.
func WithValidator(v ports.InputValidator) Option {
	return func(c *engineConfig) {
		if v != nil {
			c.validator = v
		}
	}
}

// WithHandlers replaces the handler chain. Handlers run in the given order.
func WithHandlers(handlers ...ports.Handler) Option {
	return func(c *engineConfig) {
		c.handlers = handlers
	}
}

// WithLicenseExpressions evaluates license fields as SPDX expressions when
// they are not an exact deny-list match. Ignored when WithHandlers is used.
func WithLicenseExpressions(enabled bool) Option {
	return func(c *engineConfig) {
		c.licenseExpressions = enabled
	}
}

// Engine evaluates packages against a policy.
type Engine struct {
	config engineConfig
}

// NewEngine creates a new Engine.
func NewEngine(opts ...Option) *Engine {
	cfg := defaultEngineConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.handlers == nil {
		cfg.handlers = policy.DefaultHandlers(policy.WithLicenseExpressions(cfg.licenseExpressions))
	}
	return &Engine{config: cfg}
}

// Evaluate checks packages against p with the default engine.
func Evaluate(ctx context.Context, packages []entities.Package, p *entities.Policy) (*entities.ComplianceReport, error) {
	return NewEngine().Evaluate(ctx, packages, p)
}

// Evaluate validates the input, runs every active handler once in order and
// derives the verdict. Configuration and input errors abort the run before
// any handler runs; no partial report is returned.
func (e *Engine) Evaluate(ctx context.Context, packages []entities.Package, p *entities.Policy) (*entities.ComplianceReport, error) {
	logger := e.logger()

	if err := e.config.validator.ValidatePolicy(p); err != nil {
		logger.DebugContext(ctx, "policy rejected", "error", err)
		return nil, err
	}
	if err := e.config.validator.ValidatePackages(packages); err != nil {
		logger.DebugContext(ctx, "package list rejected", "error", err)
		return nil, err
	}

	var (
		violations []entities.Violation
		checks     []entities.CheckResult
		evaluated  []entities.Category
	)
	for _, h := range e.config.handlers {
		category := h.Category()
		if !h.Active(p) {
			if p.Configured(category) {
				logger.DebugContext(ctx, "rule present but empty, nothing to check", "category", string(category))
			}
			continue
		}

		vs, err := h.Check(packages, p)
		if err != nil {
			return nil, &domainerrors.HandlerError{Category: category, Err: err}
		}

		for _, v := range vs {
			e.config.observer.OnViolation(ctx, v)
		}
		violations = append(violations, vs...)
		evaluated = append(evaluated, category)

		if len(vs) == 0 {
			checks = append(checks, entities.CheckPassed(category, h.Summary()))
		} else {
			checks = append(checks, entities.CheckFailed(category, len(vs)))
		}
		logger.DebugContext(ctx, "check finished", "category", string(category), "violations", len(vs))
	}

	report := entities.NewComplianceReport(violations, checks, entities.ReportMetadata{
		TotalPackages:       len(packages),
		CategoriesEvaluated: evaluated,
	})
	logger.DebugContext(ctx, "compliance evaluation complete",
		"packages", len(packages),
		"violations", len(report.Violations),
		"compliant", report.Compliant,
	)
	return report, nil
}

func (e *Engine) logger() *slog.Logger {
	if e.config.logger != nil {
		return e.config.logger
	}
	return slog.Default()
}
