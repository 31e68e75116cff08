package commands

import (
	"context"

	"tracking/internal/core/domain/model/fleet"
	"tracking/internal/core/ports"
)

// MoveUnitCommandHandler handles single-unit movement orders.
type MoveUnitCommandHandler struct {
	registry ports.UnitRegistry
}

// NewMoveUnitCommandHandler creates a handler for movement orders.
func NewMoveUnitCommandHandler(registry ports.UnitRegistry) MoveUnitCommandHandler {
	return MoveUnitCommandHandler{
		registry: registry,
	}
}

// Handle processes the movement command and returns the unit's updated
// report. Position and movement log stay unchanged when the move fails.
func (h MoveUnitCommandHandler) Handle(_ context.Context, cmd MoveUnitCommand) (fleet.Report, error) {
	if err := cmd.Validate(); err != nil {
		return fleet.Report{}, err
	}

	return h.registry.Move(cmd.Serial(), cmd.Heading(), cmd.Distance())
}
