package commands

import (
	"errors"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/guard"
)

var ErrRenameUnitCommandIsNotConstructed = errors.New(
	"RenameUnitCommand must be created via NewRenameUnitCommand constructor",
)

// RenameUnitCommand represents a request to change a unit's serial number.
// The registry re-keys its entry atomically with the unit's own serial.
type RenameUnitCommand struct { //nolint:recvcheck //using for validation
	serial    kernel.Serial
	newSerial kernel.Serial

	guard guard.ConstructorGuard
}

// NewRenameUnitCommand creates a command to rename a unit.
func NewRenameUnitCommand(serial kernel.Serial, newSerial kernel.Serial) (RenameUnitCommand, error) {
	command := RenameUnitCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setSerial(serial),
		command.setNewSerial(newSerial),
	); err != nil {
		return RenameUnitCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RenameUnitCommand) Validate() error {
	return c.guard.Validate(ErrRenameUnitCommandIsNotConstructed)
}

// Serial returns the current serial number from the command.
func (c RenameUnitCommand) Serial() kernel.Serial {
	return c.serial
}

// NewSerial returns the requested serial number from the command.
func (c RenameUnitCommand) NewSerial() kernel.Serial {
	return c.newSerial
}

func (c *RenameUnitCommand) setSerial(serial kernel.Serial) error {
	if err := serial.Validate(); err != nil {
		return err
	}

	c.serial = serial
	return nil
}

func (c *RenameUnitCommand) setNewSerial(serial kernel.Serial) error {
	if err := serial.Validate(); err != nil {
		return err
	}

	c.newSerial = serial
	return nil
}
