package queries

import (
	"context"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/ports"
)

// GetMovementLogQueryHandler resolves a unit's retained movement history.
type GetMovementLogQueryHandler struct {
	registry ports.UnitRegistry
}

// NewGetMovementLogQueryHandler creates a handler over the given registry.
func NewGetMovementLogQueryHandler(registry ports.UnitRegistry) GetMovementLogQueryHandler {
	return GetMovementLogQueryHandler{
		registry: registry,
	}
}

// Handle returns the unit's retained movement records, oldest first.
func (h GetMovementLogQueryHandler) Handle(_ context.Context, query GetMovementLogQuery) ([]kernel.MovementRecord, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	report, err := h.registry.Report(query.Serial())
	if err != nil {
		return nil, err
	}

	return report.RecentMovements(), nil
}
