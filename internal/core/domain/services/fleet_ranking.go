package services

import (
	"tracking/internal/core/domain/model/fleet"
	"tracking/internal/pkg/errs"
)

// FleetRanking is a domain service that ranks unit snapshots by their
// position relative to the base at the origin. All operations fail with a
// required-value error when the fleet is empty.
type FleetRanking struct{}

// NewFleetRanking creates a FleetRanking instance.
func NewFleetRanking() FleetRanking {
	return FleetRanking{}
}

// NearestToBase returns the unit closest to the base.
func (FleetRanking) NearestToBase(reports []fleet.Report) (fleet.Report, error) {
	return pick(reports, func(candidate, best fleet.Report) bool {
		return candidate.Position().DistanceFromBase() < best.Position().DistanceFromBase()
	})
}

// FarthestFromBase returns the unit farthest from the base.
func (FleetRanking) FarthestFromBase(reports []fleet.Report) (fleet.Report, error) {
	return pick(reports, func(candidate, best fleet.Report) bool {
		return candidate.Position().DistanceFromBase() > best.Position().DistanceFromBase()
	})
}

// Deepest returns the unit with the lowest vertical coordinate.
func (FleetRanking) Deepest(reports []fleet.Report) (fleet.Report, error) {
	return pick(reports, func(candidate, best fleet.Report) bool {
		return candidate.Position().Y() < best.Position().Y()
	})
}

// Shallowest returns the unit with the highest vertical coordinate.
func (FleetRanking) Shallowest(reports []fleet.Report) (fleet.Report, error) {
	return pick(reports, func(candidate, best fleet.Report) bool {
		return candidate.Position().Y() > best.Position().Y()
	})
}

// pick scans reports and keeps the snapshot for which better holds against
// the current best. Ties keep the earlier entry, so the sorted input from
// Registry.Reports makes the result deterministic.
func pick(reports []fleet.Report, better func(candidate, best fleet.Report) bool) (fleet.Report, error) {
	if len(reports) == 0 {
		return fleet.Report{}, errs.NewValueIsRequiredError("reports")
	}

	best := reports[0]
	for _, candidate := range reports[1:] {
		if better(candidate, best) {
			best = candidate
		}
	}
	return best, nil
}
