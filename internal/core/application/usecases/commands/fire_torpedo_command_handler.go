package commands

import (
	"context"

	"tracking/internal/core/domain/model/fleet"
	"tracking/internal/core/domain/services"
	"tracking/internal/core/ports"

	"github.com/google/uuid"
)

// FireTorpedoResult is the outcome of a torpedo order. When the shot was
// held because a friendly unit stood in the line of fire, Fired is false and
// Obstruction carries that unit's report.
type FireTorpedoResult struct {
	TorpedoID   uuid.UUID
	Fired       bool
	Obstruction *fleet.Report
}

// FireTorpedoCommandHandler handles torpedo orders, screening each shot
// through the fire-control service before it is released.
type FireTorpedoCommandHandler struct {
	registry    ports.UnitRegistry
	fireControl services.FireControl
}

// NewFireTorpedoCommandHandler creates a handler for torpedo orders.
func NewFireTorpedoCommandHandler(
	registry ports.UnitRegistry,
	fireControl services.FireControl,
) FireTorpedoCommandHandler {
	return FireTorpedoCommandHandler{
		registry:    registry,
		fireControl: fireControl,
	}
}

// Handle processes the torpedo order. A blocked shot is not an error: the
// result reports the unit that would have been hit instead.
func (h FireTorpedoCommandHandler) Handle(_ context.Context, cmd FireTorpedoCommand) (FireTorpedoResult, error) {
	if err := cmd.Validate(); err != nil {
		return FireTorpedoResult{}, err
	}

	shooter, err := h.registry.Report(cmd.Serial())
	if err != nil {
		return FireTorpedoResult{}, err
	}

	blocker, err := h.fireControl.FindObstruction(shooter, cmd.Heading(), h.registry.Reports())
	if err != nil {
		return FireTorpedoResult{}, err
	}

	if blocker != nil {
		return FireTorpedoResult{
			TorpedoID:   cmd.TorpedoID(),
			Fired:       false,
			Obstruction: blocker,
		}, nil
	}

	return FireTorpedoResult{
		TorpedoID: cmd.TorpedoID(),
		Fired:     true,
	}, nil
}
