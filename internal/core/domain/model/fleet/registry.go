package fleet

import (
	"errors"
	"math"
	"sort"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/errs"
)

// DefaultLogCapacity is the movement log size used when no explicit capacity
// is configured.
const DefaultLogCapacity = 50

// serialParam is the parameter name used in lookup and uniqueness errors.
const serialParam = "serial number"

// ErrRegistryIsNotConstructed is returned when using an improperly
// initialized Registry.
var ErrRegistryIsNotConstructed = errors.New("Registry must be created via NewRegistry constructor")

// Registry is the sole owner of all tracked units. It maps serial numbers to
// units, enforces serial uniqueness and the serial format rule, and is the
// only entry point external callers use: units never leave the registry,
// only Report snapshots do.
//
// The registry is single-threaded by design; every operation runs to
// completion before the next begins and no operation blocks.
//
// Example:
//
//	registry, _ := fleet.NewRegistry(fleet.DefaultLogCapacity)
//	serial, _ := kernel.NewSerial("78532608-69")
//	position, _ := kernel.NewPosition(0, 0)
//
//	report, err := registry.Register(serial, position)
//	if err != nil {
//	    // duplicate or invalid serial
//	}
//	fmt.Println(report.Position()) // Output: Position(0.00,0.00)
type Registry struct {
	units       map[kernel.Serial]*unit
	logCapacity int

	// visited holds every position a move has landed a unit on, so a later
	// move onto the same spot flags a collision.
	visited  map[kernel.Position]bool
	collided []*unit
}

// NewRegistry creates an empty registry. Every unit it registers gets a
// movement log of the given capacity; capacity zero keeps no history.
// Returns an error for a negative capacity.
func NewRegistry(logCapacity int) (*Registry, error) {
	if logCapacity < 0 {
		return nil, errs.NewValueIsOutOfRangeError("movement log capacity", logCapacity, 0, math.MaxInt)
	}

	return &Registry{
		units:       make(map[kernel.Serial]*unit),
		logCapacity: logCapacity,
		visited:     make(map[kernel.Position]bool),
	}, nil
}

// Validate checks that the Registry was built through NewRegistry.
func (r *Registry) Validate() error {
	if r == nil || r.units == nil {
		return ErrRegistryIsNotConstructed
	}
	return nil
}

// Register creates a unit under the given serial at the given position and
// returns its report. Fails with an already-exists error when the serial is
// taken and with a validation error when serial or position is malformed.
// The existing unit is untouched on failure.
func (r *Registry) Register(serial kernel.Serial, position kernel.Position) (Report, error) {
	if err := errors.Join(r.Validate(), serial.Validate(), position.Validate()); err != nil {
		return Report{}, err
	}

	if _, exists := r.units[serial]; exists {
		return Report{}, errs.NewObjectAlreadyExistsError(serialParam, serial.String())
	}

	u := newUnit(serial, position, r.logCapacity)
	r.units[serial] = u
	return u.toReport(), nil
}

// Move displaces the unit with the given serial by distance along heading
// and returns the updated report. Fails with a not-found error when the
// serial is absent and with an invalid-value error when the heading is
// malformed or the distance negative; position and log stay unchanged on
// failure.
//
// Moving onto a position any earlier move already landed on flags the unit
// as collided; the flag is sticky and shows on all later reports. Landings
// are remembered for the registry's lifetime and per position, not per
// unit, so a unit returning to one of its own previous landing spots
// collides with its own trail.
func (r *Registry) Move(serial kernel.Serial, heading kernel.Heading, distance float64) (Report, error) {
	if err := errors.Join(r.Validate(), serial.Validate()); err != nil {
		return Report{}, err
	}

	u, exists := r.units[serial]
	if !exists {
		return Report{}, errs.NewObjectNotFoundError(serialParam, serial.String())
	}

	if err := heading.Validate(); err != nil {
		return Report{}, err
	}
	if distance < 0 {
		return Report{}, errs.NewValueIsInvalidError("distance")
	}

	record, err := u.applyMove(heading, distance)
	if err != nil {
		return Report{}, err
	}

	if r.visited[record.To()] {
		if !u.collided {
			u.markCollided()
			r.collided = append(r.collided, u)
		}
	} else {
		r.visited[record.To()] = true
	}

	return u.toReport(), nil
}

// Rename changes a unit's serial number and re-keys the registry entry in
// one step. The new serial passes the same rule as registration and must not
// collide with a different unit; renaming a unit to its current serial is a
// no-op. Both the map key and the unit's serial are untouched on failure.
func (r *Registry) Rename(serial kernel.Serial, newSerial kernel.Serial) (Report, error) {
	if err := errors.Join(r.Validate(), serial.Validate(), newSerial.Validate()); err != nil {
		return Report{}, err
	}

	u, exists := r.units[serial]
	if !exists {
		return Report{}, errs.NewObjectNotFoundError(serialParam, serial.String())
	}

	if newSerial.IsEqual(serial) {
		return u.toReport(), nil
	}

	if _, taken := r.units[newSerial]; taken {
		return Report{}, errs.NewObjectAlreadyExistsError(serialParam, newSerial.String())
	}

	if err := u.setSerial(newSerial); err != nil {
		return Report{}, err
	}

	delete(r.units, serial)
	r.units[newSerial] = u
	return u.toReport(), nil
}

// Decommission removes the unit with the given serial. The serial becomes
// available for reuse. Fails with a not-found error when the serial is
// absent.
func (r *Registry) Decommission(serial kernel.Serial) error {
	if err := errors.Join(r.Validate(), serial.Validate()); err != nil {
		return err
	}

	if _, exists := r.units[serial]; !exists {
		return errs.NewObjectNotFoundError(serialParam, serial.String())
	}

	delete(r.units, serial)
	return nil
}

// Report returns a snapshot of the unit with the given serial.
func (r *Registry) Report(serial kernel.Serial) (Report, error) {
	if err := errors.Join(r.Validate(), serial.Validate()); err != nil {
		return Report{}, err
	}

	u, exists := r.units[serial]
	if !exists {
		return Report{}, errs.NewObjectNotFoundError(serialParam, serial.String())
	}

	return u.toReport(), nil
}

// Reports returns snapshots of all units, sorted by serial number for a
// deterministic order.
func (r *Registry) Reports() []Report {
	out := make([]Report, 0, len(r.units))
	for _, u := range r.units {
		out = append(out, u.toReport())
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Serial().String() < out[j].Serial().String()
	})
	return out
}

// CollidedUnits returns snapshots of the units flagged as collided, in the
// order the collisions happened. Decommissioned units drop out of the list.
func (r *Registry) CollidedUnits() []Report {
	out := make([]Report, 0, len(r.collided))
	for _, u := range r.collided {
		if current, exists := r.units[u.serial]; exists && current == u {
			out = append(out, u.toReport())
		}
	}
	return out
}

// Len returns the number of registered units.
func (r *Registry) Len() int {
	return len(r.units)
}
