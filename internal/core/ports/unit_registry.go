// Package ports defines the contracts between the application layer and its
// collaborators: the unit registry on one side and the outbound data stores
// on the other. Handlers depend on these interfaces, never on concrete
// adapters, enabling dependency inversion and testability.
package ports

import (
	"tracking/internal/core/domain/model/fleet"
	"tracking/internal/core/domain/model/kernel"
)

// UnitRegistry is the contract command and query handlers use to reach the
// fleet registry. It mirrors the registry's public operations; fleet.Registry
// is the production implementation.
type UnitRegistry interface {
	// Register creates a unit under a validated, unique serial.
	Register(serial kernel.Serial, position kernel.Position) (fleet.Report, error)

	// Move displaces a unit along a heading and logs the movement.
	Move(serial kernel.Serial, heading kernel.Heading, distance float64) (fleet.Report, error)

	// Rename re-keys a unit under a new validated serial.
	Rename(serial kernel.Serial, newSerial kernel.Serial) (fleet.Report, error)

	// Decommission removes a unit, freeing its serial for reuse.
	Decommission(serial kernel.Serial) error

	// Report returns a snapshot of one unit.
	Report(serial kernel.Serial) (fleet.Report, error)

	// Reports returns snapshots of all units, sorted by serial.
	Reports() []fleet.Report

	// CollidedUnits returns snapshots of units flagged by collision
	// tracking.
	CollidedUnits() []fleet.Report
}
