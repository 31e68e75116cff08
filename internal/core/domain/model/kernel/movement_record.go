package kernel

import (
	"errors"
	"fmt"
	"math"

	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

// ErrMovementRecordIsNotConstructed is returned when using an improperly
// initialized MovementRecord.
var ErrMovementRecordIsNotConstructed = errs.NewValueIsRequiredError(
	"movement record must be created via NewMovementRecord constructor")

// MovementRecord is an immutable description of one displacement: the
// position before, the position after, the heading travelled, and the
// non-negative distance covered. The destination is computed by the
// constructor, so To always equals From shifted by distance along the
// heading.
type MovementRecord struct {
	from     Position
	to       Position
	heading  Heading
	distance float64
	guard    guard.ConstructorGuard
}

// NewMovementRecord creates a MovementRecord for a displacement starting at
// from. Returns an invalid-value error when the heading is malformed or the
// distance is negative or not finite.
func NewMovementRecord(from Position, heading Heading, distance float64) (MovementRecord, error) {
	if err := errors.Join(from.Validate(), heading.Validate()); err != nil {
		return MovementRecord{}, err
	}
	if distance < 0 || math.IsNaN(distance) || math.IsInf(distance, 0) {
		return MovementRecord{}, errs.NewValueIsInvalidError("distance")
	}

	to, err := from.Shift(heading, distance)
	if err != nil {
		return MovementRecord{}, err
	}

	return MovementRecord{
		from:     from,
		to:       to,
		heading:  heading,
		distance: distance,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the MovementRecord was built through its constructor.
func (r MovementRecord) Validate() error {
	return r.guard.Validate(ErrMovementRecordIsNotConstructed)
}

// From returns the position before the displacement.
func (r MovementRecord) From() Position {
	return r.from
}

// To returns the position after the displacement.
func (r MovementRecord) To() Position {
	return r.to
}

// Heading returns the direction travelled.
func (r MovementRecord) Heading() Heading {
	return r.heading
}

// Distance returns the distance covered.
func (r MovementRecord) Distance() float64 {
	return r.distance
}

// String implements fmt.Stringer.
func (r MovementRecord) String() string {
	return fmt.Sprintf("Movement(%s -> %s, %s, %.2f)", r.from, r.to, r.heading, r.distance)
}
