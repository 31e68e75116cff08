package commands

import (
	"context"

	"tracking/internal/core/domain/model/fleet"
	"tracking/internal/core/ports"
)

// RegisterUnitCommandHandler handles the registration of new units.
type RegisterUnitCommandHandler struct {
	registry ports.UnitRegistry
}

// NewRegisterUnitCommandHandler creates a handler for unit registration.
func NewRegisterUnitCommandHandler(registry ports.UnitRegistry) RegisterUnitCommandHandler {
	return RegisterUnitCommandHandler{
		registry: registry,
	}
}

// Handle processes the registration command and returns the new unit's
// report. A duplicate or invalid serial fails without touching the fleet.
func (h RegisterUnitCommandHandler) Handle(_ context.Context, cmd RegisterUnitCommand) (fleet.Report, error) {
	if err := cmd.Validate(); err != nil {
		return fleet.Report{}, err
	}

	return h.registry.Register(cmd.Serial(), cmd.Position())
}
