package commands

import (
	"context"
	"crypto/sha256"
	"time"

	"tracking/internal/core/ports"
)

// ArmUnitResult is the outcome of an arming request. Armed is false when the
// auth string did not match; a mismatch is a refusal, not an error.
type ArmUnitResult struct {
	Armed bool
}

// ArmUnitCommandHandler authenticates warhead arming requests. The expected
// digest is SHA-256 over today's date, the unit's secret key, and its
// activation code, so an auth string is only good for one day.
type ArmUnitCommandHandler struct {
	registry ports.UnitRegistry
	secrets  ports.SecretStore
	now      func() time.Time
}

// NewArmUnitCommandHandler creates a handler for arming requests.
func NewArmUnitCommandHandler(registry ports.UnitRegistry, secrets ports.SecretStore) ArmUnitCommandHandler {
	return NewArmUnitCommandHandlerWithClock(registry, secrets, time.Now)
}

// NewArmUnitCommandHandlerWithClock creates a handler with a custom time
// source for the date component of the digest.
func NewArmUnitCommandHandlerWithClock(
	registry ports.UnitRegistry,
	secrets ports.SecretStore,
	now func() time.Time,
) ArmUnitCommandHandler {
	return ArmUnitCommandHandler{
		registry: registry,
		secrets:  secrets,
		now:      now,
	}
}

// Handle authenticates the request against the unit's secrets. The unit
// must be registered and have both secrets on record; a wrong auth string
// yields Armed=false without an error.
func (h ArmUnitCommandHandler) Handle(_ context.Context, cmd ArmUnitCommand) (ArmUnitResult, error) {
	if err := cmd.Validate(); err != nil {
		return ArmUnitResult{}, err
	}

	if _, err := h.registry.Report(cmd.Serial()); err != nil {
		return ArmUnitResult{}, err
	}

	key, err := h.secrets.SecretKey(cmd.Serial())
	if err != nil {
		return ArmUnitResult{}, err
	}
	code, err := h.secrets.ActivationCode(cmd.Serial())
	if err != nil {
		return ArmUnitResult{}, err
	}

	expected := sha256.Sum256([]byte(h.now().Format(time.DateOnly) + key + code))
	supplied := sha256.Sum256([]byte(cmd.AuthString()))

	return ArmUnitResult{Armed: expected == supplied}, nil
}
