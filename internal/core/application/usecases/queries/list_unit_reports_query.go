package queries

import (
	"errors"

	"tracking/internal/pkg/guard"
)

var ErrListUnitReportsQueryIsNotConstructed = errors.New(
	"ListUnitReportsQuery must be created via NewListUnitReportsQuery constructor",
)

// ListUnitReportsQuery retrieves snapshots of the whole fleet, ordered by
// serial number. With collidedOnly set, only units flagged as collided are
// returned.
type ListUnitReportsQuery struct {
	collidedOnly bool

	guard guard.ConstructorGuard
}

// NewListUnitReportsQuery creates a fleet listing query.
func NewListUnitReportsQuery(collidedOnly bool) ListUnitReportsQuery {
	return ListUnitReportsQuery{
		collidedOnly: collidedOnly,
		guard:        guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q ListUnitReportsQuery) Validate() error {
	return q.guard.Validate(ErrListUnitReportsQueryIsNotConstructed)
}

// CollidedOnly reports whether the listing is restricted to collided units.
func (q ListUnitReportsQuery) CollidedOnly() bool {
	return q.collidedOnly
}
