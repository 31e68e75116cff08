package queries

import (
	"errors"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/guard"
)

var ErrGetUnitReportQueryIsNotConstructed = errors.New(
	"GetUnitReportQuery must be created via NewGetUnitReportQuery constructor",
)

// GetUnitReportQuery retrieves the current snapshot of one unit.
//
// Example:
//
//	serial, _ := kernel.NewSerial("78532608-69")
//	query, _ := NewGetUnitReportQuery(serial)
//	report, err := handler.Handle(ctx, query)
type GetUnitReportQuery struct { //nolint:recvcheck //using for validation
	serial kernel.Serial

	guard guard.ConstructorGuard
}

// NewGetUnitReportQuery creates a query for one unit's report.
func NewGetUnitReportQuery(serial kernel.Serial) (GetUnitReportQuery, error) {
	query := GetUnitReportQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setSerial(serial); err != nil {
		return GetUnitReportQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUnitReportQuery) Validate() error {
	return q.guard.Validate(ErrGetUnitReportQueryIsNotConstructed)
}

// Serial returns the serial number from the query.
func (q GetUnitReportQuery) Serial() kernel.Serial {
	return q.serial
}

func (q *GetUnitReportQuery) setSerial(serial kernel.Serial) error {
	if err := serial.Validate(); err != nil {
		return err
	}

	q.serial = serial
	return nil
}
