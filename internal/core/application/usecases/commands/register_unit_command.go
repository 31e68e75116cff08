package commands

import (
	"errors"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/guard"
)

var ErrRegisterUnitCommandIsNotConstructed = errors.New(
	"RegisterUnitCommand must be created via NewRegisterUnitCommand constructor",
)

// RegisterUnitCommand represents a request to register a new unit in the
// fleet under a validated serial number at an initial position.
//
// Example:
//
//	serial, _ := kernel.NewSerial("78532608-69")
//	position, _ := kernel.NewPosition(0, 0)
//	cmd, err := NewRegisterUnitCommand(serial, position)
//	if err != nil {
//	    return err
//	}
//
//	report, err := handler.Handle(ctx, cmd)
type RegisterUnitCommand struct { //nolint:recvcheck //using for validation
	serial   kernel.Serial
	position kernel.Position

	guard guard.ConstructorGuard
}

// NewRegisterUnitCommand creates a command to register a new unit.
// The serial and position must be properly constructed kernel values.
func NewRegisterUnitCommand(serial kernel.Serial, position kernel.Position) (RegisterUnitCommand, error) {
	command := RegisterUnitCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setSerial(serial),
		command.setPosition(position),
	); err != nil {
		return RegisterUnitCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterUnitCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUnitCommandIsNotConstructed)
}

// Serial returns the serial number from the command.
func (c RegisterUnitCommand) Serial() kernel.Serial {
	return c.serial
}

// Position returns the initial position from the command.
func (c RegisterUnitCommand) Position() kernel.Position {
	return c.position
}

func (c *RegisterUnitCommand) setSerial(serial kernel.Serial) error {
	if err := serial.Validate(); err != nil {
		return err
	}

	c.serial = serial
	return nil
}

func (c *RegisterUnitCommand) setPosition(position kernel.Position) error {
	if err := position.Validate(); err != nil {
		return err
	}

	c.position = position
	return nil
}
