package commands

import (
	"context"

	"tracking/internal/core/domain/model/fleet"
	"tracking/internal/core/ports"
)

// RenameUnitCommandHandler handles serial number changes.
type RenameUnitCommandHandler struct {
	registry ports.UnitRegistry
}

// NewRenameUnitCommandHandler creates a handler for rename requests.
func NewRenameUnitCommandHandler(registry ports.UnitRegistry) RenameUnitCommandHandler {
	return RenameUnitCommandHandler{
		registry: registry,
	}
}

// Handle processes the rename command and returns the re-keyed unit's
// report. Both the registry key and the unit serial are untouched on
// failure.
func (h RenameUnitCommandHandler) Handle(_ context.Context, cmd RenameUnitCommand) (fleet.Report, error) {
	if err := cmd.Validate(); err != nil {
		return fleet.Report{}, err
	}

	return h.registry.Rename(cmd.Serial(), cmd.NewSerial())
}
