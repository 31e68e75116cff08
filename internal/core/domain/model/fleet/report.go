package fleet

import (
	"fmt"

	"tracking/internal/core/domain/model/kernel"
)

// Report is an immutable snapshot of a unit's public state at the instant a
// registry operation produced it. Later mutation of the unit never affects a
// previously issued report; it is safe to hand to any caller.
type Report struct {
	serial    kernel.Serial
	position  kernel.Position
	collided  bool
	movements []kernel.MovementRecord
}

// Serial returns the unit's serial number at snapshot time.
func (r Report) Serial() kernel.Serial {
	return r.serial
}

// Position returns the unit's position at snapshot time.
func (r Report) Position() kernel.Position {
	return r.position
}

// Collided reports whether the unit had been flagged as collided by the time
// of the snapshot.
func (r Report) Collided() bool {
	return r.collided
}

// RecentMovements returns the unit's logged movements in insertion order,
// most recent last. The returned slice is a fresh copy on every call, so
// callers may not corrupt the snapshot through it.
func (r Report) RecentMovements() []kernel.MovementRecord {
	out := make([]kernel.MovementRecord, len(r.movements))
	copy(out, r.movements)
	return out
}

// String implements fmt.Stringer, e.g. "|Unit 78532608-69 at Position(4.00,0.00)|".
func (r Report) String() string {
	return fmt.Sprintf("|Unit %s at %s|", r.serial, r.position)
}
