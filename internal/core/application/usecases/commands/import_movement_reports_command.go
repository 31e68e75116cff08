package commands

import (
	"errors"

	"tracking/internal/pkg/guard"
)

var ErrImportMovementReportsCommandIsNotConstructed = errors.New(
	"ImportMovementReportsCommand must be created via NewImportMovementReportsCommand constructor",
)

// ImportMovementReportsCommand triggers a batch import of queued movement
// reports: every serial listed by the report store is registered (if not
// already known) and its queued movements are applied in order.
//
// Example:
//
//	cmd := NewImportMovementReportsCommand()
//	summary, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	log.Printf("registered %d, applied %d, skipped %d",
//	    summary.Registered, summary.Applied, summary.Skipped)
type ImportMovementReportsCommand struct {
	guard guard.ConstructorGuard
}

// NewImportMovementReportsCommand creates a parameterless batch import
// command.
func NewImportMovementReportsCommand() ImportMovementReportsCommand {
	return ImportMovementReportsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c ImportMovementReportsCommand) Validate() error {
	return c.guard.Validate(ErrImportMovementReportsCommandIsNotConstructed)
}
