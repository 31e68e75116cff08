package commands

import (
	"errors"
	"math"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

var ErrMoveUnitCommandIsNotConstructed = errors.New(
	"MoveUnitCommand must be created via NewMoveUnitCommand constructor",
)

// MoveUnitCommand represents a request to displace one unit by a
// non-negative distance along a heading.
//
// Example:
//
//	serial, _ := kernel.NewSerial("78532608-69")
//	cmd, err := NewMoveUnitCommand(serial, kernel.HeadingEast(), 2.5)
//	if err != nil {
//	    return err
//	}
//
//	report, err := handler.Handle(ctx, cmd)
type MoveUnitCommand struct { //nolint:recvcheck //using for validation
	serial   kernel.Serial
	heading  kernel.Heading
	distance float64

	guard guard.ConstructorGuard
}

// NewMoveUnitCommand creates a command to move a unit. The distance must be
// a finite, non-negative number.
func NewMoveUnitCommand(serial kernel.Serial, heading kernel.Heading, distance float64) (MoveUnitCommand, error) {
	command := MoveUnitCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setSerial(serial),
		command.setHeading(heading),
		command.setDistance(distance),
	); err != nil {
		return MoveUnitCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c MoveUnitCommand) Validate() error {
	return c.guard.Validate(ErrMoveUnitCommandIsNotConstructed)
}

// Serial returns the serial number from the command.
func (c MoveUnitCommand) Serial() kernel.Serial {
	return c.serial
}

// Heading returns the direction of travel from the command.
func (c MoveUnitCommand) Heading() kernel.Heading {
	return c.heading
}

// Distance returns the distance from the command.
func (c MoveUnitCommand) Distance() float64 {
	return c.distance
}

func (c *MoveUnitCommand) setSerial(serial kernel.Serial) error {
	if err := serial.Validate(); err != nil {
		return err
	}

	c.serial = serial
	return nil
}

func (c *MoveUnitCommand) setHeading(heading kernel.Heading) error {
	if err := heading.Validate(); err != nil {
		return err
	}

	c.heading = heading
	return nil
}

func (c *MoveUnitCommand) setDistance(distance float64) error {
	if distance < 0 || math.IsNaN(distance) || math.IsInf(distance, 0) {
		return errs.NewValueIsInvalidError("distance")
	}

	c.distance = distance
	return nil
}
