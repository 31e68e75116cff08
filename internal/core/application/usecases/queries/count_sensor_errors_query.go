package queries

import (
	"errors"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/guard"
)

var ErrCountSensorErrorsQueryIsNotConstructed = errors.New(
	"CountSensorErrorsQuery must be created via NewCountSensorErrorsQuery constructor",
)

// CountSensorErrorsQuery analyses the recorded sensor readouts of one unit
// and summarises the readings that contain failed sensors.
type CountSensorErrorsQuery struct { //nolint:recvcheck //using for validation
	serial kernel.Serial

	guard guard.ConstructorGuard
}

// NewCountSensorErrorsQuery creates a sensor error analysis query.
func NewCountSensorErrorsQuery(serial kernel.Serial) (CountSensorErrorsQuery, error) {
	query := CountSensorErrorsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setSerial(serial); err != nil {
		return CountSensorErrorsQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q CountSensorErrorsQuery) Validate() error {
	return q.guard.Validate(ErrCountSensorErrorsQueryIsNotConstructed)
}

// Serial returns the serial number from the query.
func (q CountSensorErrorsQuery) Serial() kernel.Serial {
	return q.serial
}

func (q *CountSensorErrorsQuery) setSerial(serial kernel.Serial) error {
	if err := serial.Validate(); err != nil {
		return err
	}

	q.serial = serial
	return nil
}
