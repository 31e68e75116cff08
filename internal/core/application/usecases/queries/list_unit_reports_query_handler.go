package queries

import (
	"context"

	"tracking/internal/core/domain/model/fleet"
	"tracking/internal/core/ports"
)

// ListUnitReportsQueryHandler resolves fleet-wide report listings.
type ListUnitReportsQueryHandler struct {
	registry ports.UnitRegistry
}

// NewListUnitReportsQueryHandler creates a handler over the given registry.
func NewListUnitReportsQueryHandler(registry ports.UnitRegistry) ListUnitReportsQueryHandler {
	return ListUnitReportsQueryHandler{
		registry: registry,
	}
}

// Handle returns reports for every unit in the fleet ordered by serial, or
// only the collided ones when the query asks for them.
func (h ListUnitReportsQueryHandler) Handle(_ context.Context, query ListUnitReportsQuery) ([]fleet.Report, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if query.CollidedOnly() {
		return h.registry.CollidedUnits(), nil
	}

	return h.registry.Reports(), nil
}
