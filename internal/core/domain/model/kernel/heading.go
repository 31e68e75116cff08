package kernel

import (
	"fmt"
	"math"
	"strings"

	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

// ErrHeadingIsNotConstructed is returned when using an improperly
// initialized Heading. Headings must be created via NewHeading, ParseHeading,
// or one of the compass constructors.
var ErrHeadingIsNotConstructed = errs.NewValueIsRequiredError(
	"heading must be created via NewHeading, ParseHeading, or a compass constructor")

// Heading is a normalized direction of travel on the tracking plane.
// The stored vector always has unit length, so a displacement is simply
// distance multiplied by the heading's components. The zero value is invalid
// and fails validation.
//
// Example:
//
//	h, err := kernel.NewHeading(3, 4)
//	if err != nil {
//	    // the direction vector was malformed
//	}
//	fmt.Println(h) // Output: Heading(0.600,0.800)
type Heading struct {
	dx    float64
	dy    float64
	guard guard.ConstructorGuard
}

// NewHeading creates a Heading from a direction vector of any magnitude.
// The vector is normalized to unit length. Returns an invalid-value error
// for the zero vector and for non-finite components.
func NewHeading(dx float64, dy float64) (Heading, error) {
	if math.IsNaN(dx) || math.IsInf(dx, 0) || math.IsNaN(dy) || math.IsInf(dy, 0) {
		return Heading{}, errs.NewValueIsInvalidError("heading")
	}

	norm := math.Hypot(dx, dy)
	if norm == 0 {
		return Heading{}, errs.NewValueIsInvalidError("heading")
	}

	return Heading{
		dx:    dx / norm,
		dy:    dy / norm,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Compass constructors. North is the positive y direction, east the
// positive x direction.

// HeadingNorth returns the heading pointing along positive y.
func HeadingNorth() Heading {
	return Heading{dx: 0, dy: 1, guard: guard.NewConstructorGuard()}
}

// HeadingSouth returns the heading pointing along negative y.
func HeadingSouth() Heading {
	return Heading{dx: 0, dy: -1, guard: guard.NewConstructorGuard()}
}

// HeadingEast returns the heading pointing along positive x.
func HeadingEast() Heading {
	return Heading{dx: 1, dy: 0, guard: guard.NewConstructorGuard()}
}

// HeadingWest returns the heading pointing along negative x.
func HeadingWest() Heading {
	return Heading{dx: -1, dy: 0, guard: guard.NewConstructorGuard()}
}

// ParseHeading resolves a compass direction name ("north", "south", "east",
// "west", case-insensitive) to its Heading. Movement report files use these
// names. Returns an invalid-value error for unknown names.
func ParseHeading(name string) (Heading, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "north":
		return HeadingNorth(), nil
	case "south":
		return HeadingSouth(), nil
	case "east":
		return HeadingEast(), nil
	case "west":
		return HeadingWest(), nil
	default:
		return Heading{}, errs.NewValueIsInvalidError("direction")
	}
}

// Validate checks that the Heading was built through a constructor.
func (h Heading) Validate() error {
	return h.guard.Validate(ErrHeadingIsNotConstructed)
}

// DX returns the x component of the unit direction vector.
func (h Heading) DX() float64 {
	return h.dx
}

// DY returns the y component of the unit direction vector.
func (h Heading) DY() float64 {
	return h.dy
}

// IsEqual compares two headings component by component.
func (h Heading) IsEqual(other Heading) bool {
	return h.dx == other.dx && h.dy == other.dy
}

// String implements fmt.Stringer, e.g. "Heading(0.600,0.800)".
func (h Heading) String() string {
	return fmt.Sprintf("Heading(%.3f,%.3f)", h.dx, h.dy)
}
