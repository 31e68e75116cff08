package services

import (
	"tracking/internal/core/domain/model/fleet"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/errs"

	"gonum.org/v1/gonum/mat"
)

// defaultCorridorHalfWidth is half the width of the corridor a torpedo
// sweeps along its heading. A friendly unit whose perpendicular distance to
// the firing line is below this value counts as being in the line of fire.
const defaultCorridorHalfWidth = 0.5

// FireControl is a domain service that screens torpedo orders for friendly
// fire. A shot is blocked when any sibling unit lies ahead of the shooter
// inside the torpedo corridor.
//
// Example:
//
//	fc := services.NewFireControl()
//	blocker, err := fc.FindObstruction(shooter, heading, registry.Reports())
//	if err != nil {
//	    return err
//	}
//	if blocker != nil {
//	    // holding fire: *blocker would be hit
//	}
type FireControl struct {
	corridorHalfWidth float64
}

// NewFireControl creates a FireControl with the default torpedo corridor.
func NewFireControl() FireControl {
	return FireControl{corridorHalfWidth: defaultCorridorHalfWidth}
}

// NewFireControlWithCorridor creates a FireControl with a custom corridor
// half-width. The width must be positive.
func NewFireControlWithCorridor(halfWidth float64) (FireControl, error) {
	if halfWidth <= 0 {
		return FireControl{}, errs.NewValueIsInvalidError("corridor half width")
	}
	return FireControl{corridorHalfWidth: halfWidth}, nil
}

// FindObstruction returns the nearest friendly unit standing in the line of
// fire, or nil when the shot is clear. The shooter itself (matched by
// serial) never blocks its own shot.
func (fc FireControl) FindObstruction(
	shooter fleet.Report,
	heading kernel.Heading,
	others []fleet.Report,
) (*fleet.Report, error) {
	if err := heading.Validate(); err != nil {
		return nil, err
	}

	origin := shooter.Position()
	dir := mat.NewVecDense(2, []float64{heading.DX(), heading.DY()})

	var blocker *fleet.Report
	blockerRange := 0.0

	for i := range others {
		other := others[i]
		if other.Serial().IsEqual(shooter.Serial()) {
			continue
		}

		rel := mat.NewVecDense(2, []float64{
			other.Position().X() - origin.X(),
			other.Position().Y() - origin.Y(),
		})

		// Distance along the firing line; targets behind the shooter are safe.
		along := mat.Dot(rel, dir)
		if along <= 0 {
			continue
		}

		// Perpendicular offset from the firing line.
		perp := mat.NewVecDense(2, nil)
		perp.AddScaledVec(rel, -along, dir)
		if mat.Norm(perp, 2) >= fc.corridorHalfWidth {
			continue
		}

		if blocker == nil || along < blockerRange {
			blocker = &other
			blockerRange = along
		}
	}

	return blocker, nil
}
