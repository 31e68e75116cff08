package fleet

import (
	"tracking/internal/core/domain/model/kernel"
)

// unit is one tracked mobile entity. It is deliberately package-private:
// the Registry is the only code that can construct or mutate a unit, and
// external callers only ever see Report snapshots.
//
// Invariant: position always equals the destination of the most recent
// movement record, or the registration position when no moves happened yet.
type unit struct {
	serial   kernel.Serial
	position kernel.Position
	log      *movementLog
	collided bool
}

// newUnit assumes serial and position were validated by the Registry.
func newUnit(serial kernel.Serial, position kernel.Position, logCapacity int) *unit {
	return &unit{
		serial:   serial,
		position: position,
		log:      newMovementLog(logCapacity),
	}
}

// applyMove computes the displacement, updates the position, and appends the
// record to the log. Pure arithmetic; with already-validated inputs the only
// failure mode is a non-finite destination, in which case nothing changes.
func (u *unit) applyMove(heading kernel.Heading, distance float64) (kernel.MovementRecord, error) {
	record, err := kernel.NewMovementRecord(u.position, heading, distance)
	if err != nil {
		return kernel.MovementRecord{}, err
	}

	u.position = record.To()
	u.log.append(record)
	return record, nil
}

// setSerial re-validates through the same rule as registration. Uniqueness
// is the Registry's concern; a unit cannot see its siblings.
func (u *unit) setSerial(serial kernel.Serial) error {
	if err := serial.Validate(); err != nil {
		return err
	}

	u.serial = serial
	return nil
}

func (u *unit) markCollided() {
	u.collided = true
}

// toReport produces an immutable snapshot of the unit's public state.
func (u *unit) toReport() Report {
	return Report{
		serial:    u.serial,
		position:  u.position,
		collided:  u.collided,
		movements: u.log.snapshot(),
	}
}
