package queries

import (
	"errors"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/guard"
)

var ErrGetMovementLogQueryIsNotConstructed = errors.New(
	"GetMovementLogQuery must be created via NewGetMovementLogQuery constructor",
)

// GetMovementLogQuery retrieves the retained movement records of one unit,
// oldest first.
type GetMovementLogQuery struct { //nolint:recvcheck //using for validation
	serial kernel.Serial

	guard guard.ConstructorGuard
}

// NewGetMovementLogQuery creates a query for one unit's movement log.
func NewGetMovementLogQuery(serial kernel.Serial) (GetMovementLogQuery, error) {
	query := GetMovementLogQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setSerial(serial); err != nil {
		return GetMovementLogQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMovementLogQuery) Validate() error {
	return q.guard.Validate(ErrGetMovementLogQueryIsNotConstructed)
}

// Serial returns the serial number from the query.
func (q GetMovementLogQuery) Serial() kernel.Serial {
	return q.serial
}

func (q *GetMovementLogQuery) setSerial(serial kernel.Serial) error {
	if err := serial.Validate(); err != nil {
		return err
	}

	q.serial = serial
	return nil
}
