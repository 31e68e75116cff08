package commands

import (
	"errors"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/guard"
)

var ErrDecommissionUnitCommandIsNotConstructed = errors.New(
	"DecommissionUnitCommand must be created via NewDecommissionUnitCommand constructor",
)

// DecommissionUnitCommand represents a request to remove a unit from the
// fleet. The serial becomes available for reuse afterwards.
type DecommissionUnitCommand struct { //nolint:recvcheck //using for validation
	serial kernel.Serial

	guard guard.ConstructorGuard
}

// NewDecommissionUnitCommand creates a command to decommission a unit.
func NewDecommissionUnitCommand(serial kernel.Serial) (DecommissionUnitCommand, error) {
	command := DecommissionUnitCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setSerial(serial); err != nil {
		return DecommissionUnitCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c DecommissionUnitCommand) Validate() error {
	return c.guard.Validate(ErrDecommissionUnitCommandIsNotConstructed)
}

// Serial returns the serial number from the command.
func (c DecommissionUnitCommand) Serial() kernel.Serial {
	return c.serial
}

func (c *DecommissionUnitCommand) setSerial(serial kernel.Serial) error {
	if err := serial.Validate(); err != nil {
		return err
	}

	c.serial = serial
	return nil
}
