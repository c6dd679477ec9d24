package ports

import (
	"context"

	"github.com/SayeemRaza50/compliance-checker/domain/entities"
)

// ViolationObserver is called for each violation as the engine collects it.
// Implementations can log, collect metrics, or take other actions.
type ViolationObserver interface {
	OnViolation(ctx context.Context, v entities.Violation)
}
