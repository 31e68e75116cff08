package commands

import (
	"errors"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

var ErrArmUnitCommandIsNotConstructed = errors.New(
	"ArmUnitCommand must be created via NewArmUnitCommand constructor",
)

// ArmUnitCommand represents a request to arm one unit's warhead. The caller
// proves authorization with an auth string; arming succeeds only when its
// digest matches the one derived from the unit's secrets and today's date.
//
// Example:
//
//	serial, _ := kernel.NewSerial("78532608-69")
//	cmd, err := NewArmUnitCommand(serial, authString)
//	if err != nil {
//	    return err
//	}
//
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	if !result.Armed {
//	    fmt.Println("wrong auth string")
//	}
type ArmUnitCommand struct { //nolint:recvcheck //using for validation
	serial     kernel.Serial
	authString string

	guard guard.ConstructorGuard
}

// NewArmUnitCommand creates an arming request. The auth string must be
// non-empty; its correctness is the handler's concern.
func NewArmUnitCommand(serial kernel.Serial, authString string) (ArmUnitCommand, error) {
	command := ArmUnitCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setSerial(serial),
		command.setAuthString(authString),
	); err != nil {
		return ArmUnitCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ArmUnitCommand) Validate() error {
	return c.guard.Validate(ErrArmUnitCommandIsNotConstructed)
}

// Serial returns the serial number from the command.
func (c ArmUnitCommand) Serial() kernel.Serial {
	return c.serial
}

// AuthString returns the caller's authorization string.
func (c ArmUnitCommand) AuthString() string {
	return c.authString
}

func (c *ArmUnitCommand) setSerial(serial kernel.Serial) error {
	if err := serial.Validate(); err != nil {
		return err
	}

	c.serial = serial
	return nil
}

func (c *ArmUnitCommand) setAuthString(authString string) error {
	if authString == "" {
		return errs.NewValueIsRequiredError("auth string")
	}

	c.authString = authString
	return nil
}
