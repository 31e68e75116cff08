package queries

import (
	"context"

	"tracking/internal/core/domain/model/fleet"
	"tracking/internal/core/ports"
)

// GetUnitReportQueryHandler resolves a single unit's report snapshot.
type GetUnitReportQueryHandler struct {
	registry ports.UnitRegistry
}

// NewGetUnitReportQueryHandler creates a handler over the given registry.
func NewGetUnitReportQueryHandler(registry ports.UnitRegistry) GetUnitReportQueryHandler {
	return GetUnitReportQueryHandler{
		registry: registry,
	}
}

// Handle returns the report for the queried unit.
func (h GetUnitReportQueryHandler) Handle(_ context.Context, query GetUnitReportQuery) (fleet.Report, error) {
	if err := query.Validate(); err != nil {
		return fleet.Report{}, err
	}

	return h.registry.Report(query.Serial())
}
