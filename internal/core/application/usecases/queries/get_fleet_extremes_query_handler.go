package queries

import (
	"context"

	"tracking/internal/core/domain/model/fleet"
	"tracking/internal/core/domain/services"
	"tracking/internal/core/ports"
)

// FleetExtremes is the read model of a fleet extremes query: one snapshot
// per ranking. A unit may appear under more than one ranking.
type FleetExtremes struct {
	NearestToBase    fleet.Report
	FarthestFromBase fleet.Report
	Deepest          fleet.Report
	Shallowest       fleet.Report
}

// GetFleetExtremesQueryHandler ranks the fleet through the domain ranking
// service.
type GetFleetExtremesQueryHandler struct {
	registry ports.UnitRegistry
	ranking  services.FleetRanking
}

// NewGetFleetExtremesQueryHandler creates a handler over the given registry
// and ranking service.
func NewGetFleetExtremesQueryHandler(
	registry ports.UnitRegistry,
	ranking services.FleetRanking,
) GetFleetExtremesQueryHandler {
	return GetFleetExtremesQueryHandler{
		registry: registry,
		ranking:  ranking,
	}
}

// Handle returns the fleet's extreme units. Fails when the fleet is empty.
func (h GetFleetExtremesQueryHandler) Handle(_ context.Context, query GetFleetExtremesQuery) (FleetExtremes, error) {
	if err := query.Validate(); err != nil {
		return FleetExtremes{}, err
	}

	reports := h.registry.Reports()

	nearest, err := h.ranking.NearestToBase(reports)
	if err != nil {
		return FleetExtremes{}, err
	}
	farthest, err := h.ranking.FarthestFromBase(reports)
	if err != nil {
		return FleetExtremes{}, err
	}
	deepest, err := h.ranking.Deepest(reports)
	if err != nil {
		return FleetExtremes{}, err
	}
	shallowest, err := h.ranking.Shallowest(reports)
	if err != nil {
		return FleetExtremes{}, err
	}

	return FleetExtremes{
		NearestToBase:    nearest,
		FarthestFromBase: farthest,
		Deepest:          deepest,
		Shallowest:       shallowest,
	}, nil
}
