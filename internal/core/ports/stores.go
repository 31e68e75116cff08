package ports

import "tracking/internal/core/domain/model/kernel"

// QueuedMovement is one well-formed line of a movement report: a compass
// direction name and a non-negative distance. Parsing and the skipping of
// malformed lines happen in the adapter; direction names are resolved to
// headings by the consumer.
type QueuedMovement struct {
	Direction string
	Distance  float64
}

// MovementReportStore supplies queued movement reports for units.
// The production implementation reads a directory of per-serial report
// files.
type MovementReportStore interface {
	// ListSerials returns the raw serial numbers that have a movement
	// report queued. Values are unvalidated strings; the caller applies
	// the serial format rule.
	ListSerials() ([]string, error)

	// Movements returns the queued movements for one unit in file order,
	// malformed lines already skipped. Fails with a not-found error when
	// the unit has no report.
	Movements(serial kernel.Serial) ([]QueuedMovement, error)
}

// SensorDataStore supplies raw sensor readout lines for units.
type SensorDataStore interface {
	// Readings returns the recorded sensor lines for one unit, in order.
	// Fails with a not-found error when the unit has no sensor data.
	Readings(serial kernel.Serial) ([]string, error)
}

// SecretStore supplies the per-unit secrets that back warhead arming
// authentication. The production implementation reads colon-separated
// lookup files from a secrets directory.
type SecretStore interface {
	// SecretKey returns the unit's secret key. Fails with a not-found
	// error when the unit has no key on record.
	SecretKey(serial kernel.Serial) (string, error)

	// ActivationCode returns the unit's activation code. Fails with a
	// not-found error when the unit has no code on record.
	ActivationCode(serial kernel.Serial) (string, error)
}
