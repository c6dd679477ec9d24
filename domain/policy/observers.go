package policy

import (
	"context"
	"log/slog"

	"github.com/SayeemRaza50/compliance-checker/domain/entities"
	"github.com/SayeemRaza50/compliance-checker/domain/ports"
)

// Ensure implementations satisfy the interface.
var _ ports.ViolationObserver = (*SlogViolationObserver)(nil)
var _ ports.ViolationObserver = (*NopViolationObserver)(nil)

// SlogViolationObserver logs each violation at warn level.
type SlogViolationObserver struct {
	Logger *slog.Logger // nil means slog.Default()
}

func (o *SlogViolationObserver) OnViolation(ctx context.Context, v entities.Violation) {
	logger := o.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.WarnContext(ctx, "policy violation",
		"category", string(v.Category),
		"package", v.Package,
		"field", v.Field,
		"value", v.Value,
	)
}

// NopViolationObserver does nothing.
type NopViolationObserver struct{}

func (o *NopViolationObserver) OnViolation(context.Context, entities.Violation) {}
