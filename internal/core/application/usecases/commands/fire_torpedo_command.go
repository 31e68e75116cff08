package commands

import (
	"errors"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/guard"

	"github.com/google/uuid"
)

var ErrFireTorpedoCommandIsNotConstructed = errors.New(
	"FireTorpedoCommand must be created via NewFireTorpedoCommand constructor",
)

// FireTorpedoCommand represents an order for one unit to fire a torpedo
// along a heading. Every order carries a generated torpedo ID so the outcome
// can be traced in logs.
//
// Example:
//
//	serial, _ := kernel.NewSerial("78532608-69")
//	cmd, err := NewFireTorpedoCommand(serial, kernel.HeadingNorth())
//	if err != nil {
//	    return err
//	}
//
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	if !result.Fired {
//	    fmt.Printf("holding fire, %s is in the line of fire\n", result.Obstruction)
//	}
type FireTorpedoCommand struct { //nolint:recvcheck //using for validation
	torpedoID uuid.UUID
	serial    kernel.Serial
	heading   kernel.Heading

	guard guard.ConstructorGuard
}

// NewFireTorpedoCommand creates a torpedo order for the given unit and
// heading. A unique torpedo ID is generated automatically.
func NewFireTorpedoCommand(serial kernel.Serial, heading kernel.Heading) (FireTorpedoCommand, error) {
	command := FireTorpedoCommand{
		torpedoID: uuid.New(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setSerial(serial),
		command.setHeading(heading),
	); err != nil {
		return FireTorpedoCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c FireTorpedoCommand) Validate() error {
	return c.guard.Validate(ErrFireTorpedoCommandIsNotConstructed)
}

// TorpedoID returns the generated identity of this torpedo order.
func (c FireTorpedoCommand) TorpedoID() uuid.UUID {
	return c.torpedoID
}

// Serial returns the firing unit's serial number.
func (c FireTorpedoCommand) Serial() kernel.Serial {
	return c.serial
}

// Heading returns the firing direction.
func (c FireTorpedoCommand) Heading() kernel.Heading {
	return c.heading
}

func (c *FireTorpedoCommand) setSerial(serial kernel.Serial) error {
	if err := serial.Validate(); err != nil {
		return err
	}

	c.serial = serial
	return nil
}

func (c *FireTorpedoCommand) setHeading(heading kernel.Heading) error {
	if err := heading.Validate(); err != nil {
		return err
	}

	c.heading = heading
	return nil
}
