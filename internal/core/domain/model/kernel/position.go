package kernel

import (
	"errors"
	"fmt"
	"math"

	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

// ErrPositionIsNotConstructed is returned when using an improperly
// initialized Position. Positions must be created via the NewPosition
// constructor.
var ErrPositionIsNotConstructed = errs.NewValueIsRequiredError(
	"position must be created via NewPosition constructor")

// Position is a point on the 2D tracking plane, measured from the base at the
// origin. The x axis runs along the surface, the y axis is vertical.
// Position is an immutable value object; mutation happens only by deriving a
// new Position through Shift. The zero value is invalid and fails validation.
//
// Example:
//
//	pos, err := kernel.NewPosition(3, -4)
//	if err != nil {
//	    // a coordinate was not a finite number
//	}
//	fmt.Println(pos.DistanceFromBase()) // Output: 5
type Position struct { //nolint:recvcheck //using for validation
	x     float64
	y     float64
	guard guard.ConstructorGuard
}

// NewPosition creates a Position from a pair of coordinates.
// Both coordinates must be finite numbers; NaN and infinities are rejected.
func NewPosition(x float64, y float64) (Position, error) {
	pos := Position{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(pos.setX(x), pos.setY(y)); err != nil {
		return Position{}, err
	}

	return pos, nil
}

// Validate checks that the Position was built through NewPosition.
func (p Position) Validate() error {
	return p.guard.Validate(ErrPositionIsNotConstructed)
}

// X returns the horizontal coordinate.
func (p Position) X() float64 {
	return p.x
}

// Y returns the vertical coordinate. Negative values are below the surface.
func (p Position) Y() float64 {
	return p.y
}

// Shift derives the position reached by travelling the given distance along
// the given heading. The receiver is not modified.
// Returns an invalid-value error when the heading is malformed or the
// distance is negative or not finite.
func (p Position) Shift(heading Heading, distance float64) (Position, error) {
	if err := errors.Join(p.Validate(), heading.Validate()); err != nil {
		return Position{}, err
	}
	if distance < 0 || math.IsNaN(distance) || math.IsInf(distance, 0) {
		return Position{}, errs.NewValueIsInvalidError("distance")
	}

	return NewPosition(p.x+distance*heading.DX(), p.y+distance*heading.DY())
}

// DistanceFromBase returns the Euclidean distance from the base at the
// origin.
func (p Position) DistanceFromBase() float64 {
	return math.Hypot(p.x, p.y)
}

// IsEqual compares two positions coordinate by coordinate.
// Both positions must be properly constructed.
func (p Position) IsEqual(other Position) (bool, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return p.x == other.x && p.y == other.y, nil
}

// String implements fmt.Stringer, e.g. "Position(4.00,0.00)".
func (p Position) String() string {
	return fmt.Sprintf("Position(%.2f,%.2f)", p.x, p.y)
}

// setX sets the x coordinate with validation.
// Pointer receiver is intentional: private setters keep validation
// self-encapsulated during construction.
func (p *Position) setX(x float64) error {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return errs.NewValueIsInvalidError("x")
	}

	p.x = x
	return nil
}

// setY sets the y coordinate with validation.
func (p *Position) setY(y float64) error {
	if math.IsNaN(y) || math.IsInf(y, 0) {
		return errs.NewValueIsInvalidError("y")
	}

	p.y = y
	return nil
}
