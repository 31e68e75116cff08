package queries

import (
	"errors"

	"tracking/internal/pkg/guard"
)

var ErrGetFleetExtremesQueryIsNotConstructed = errors.New(
	"GetFleetExtremesQuery must be created via NewGetFleetExtremesQuery constructor",
)

// GetFleetExtremesQuery retrieves the fleet's extreme units: nearest to and
// farthest from base, deepest and shallowest.
type GetFleetExtremesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetFleetExtremesQuery creates a parameterless fleet extremes query.
func NewGetFleetExtremesQuery() GetFleetExtremesQuery {
	return GetFleetExtremesQuery{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetFleetExtremesQuery) Validate() error {
	return q.guard.Validate(ErrGetFleetExtremesQueryIsNotConstructed)
}
