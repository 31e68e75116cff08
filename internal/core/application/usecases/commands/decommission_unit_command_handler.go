package commands

import (
	"context"

	"tracking/internal/core/ports"
)

// DecommissionUnitCommandHandler handles unit removal.
type DecommissionUnitCommandHandler struct {
	registry ports.UnitRegistry
}

// NewDecommissionUnitCommandHandler creates a handler for decommissioning.
func NewDecommissionUnitCommandHandler(registry ports.UnitRegistry) DecommissionUnitCommandHandler {
	return DecommissionUnitCommandHandler{
		registry: registry,
	}
}

// Handle processes the decommission command. After success no further
// ownership of the unit exists anywhere.
func (h DecommissionUnitCommandHandler) Handle(_ context.Context, cmd DecommissionUnitCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.registry.Decommission(cmd.Serial())
}
