package commands_test

import (
	"context"
	"testing"

	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveUnitCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := context.Background()
	registry := newRegistry(t)
	serial := mustSerial(t, "78532608-69")
	_, err := registry.Register(serial, mustPosition(t, 1, 1))
	require.NoError(t, err)

	handler := commands.NewMoveUnitCommandHandler(registry)
	cmd, err := commands.NewMoveUnitCommand(serial, kernel.HeadingNorth(), 4)
	require.NoError(t, err)

	// Act
	report, err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.InDelta(t, 1, report.Position().X(), 1e-9)
	assert.InDelta(t, 5, report.Position().Y(), 1e-9)

	movements := report.RecentMovements()
	require.Len(t, movements, 1)
	assert.InDelta(t, 4, movements[0].Distance(), 1e-9)
	assert.True(t, movements[0].Heading().IsEqual(kernel.HeadingNorth()))
}

func TestMoveUnitCommandHandler_Handle_UnknownUnit(t *testing.T) {
	// Arrange
	ctx := context.Background()
	handler := commands.NewMoveUnitCommandHandler(newRegistry(t))
	cmd, err := commands.NewMoveUnitCommand(mustSerial(t, "78532608-69"), kernel.HeadingEast(), 1)
	require.NoError(t, err)

	// Act
	_, err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestMoveUnitCommandHandler_Handle_InvalidCommand(t *testing.T) {
	// Arrange
	ctx := context.Background()
	handler := commands.NewMoveUnitCommandHandler(newRegistry(t))
	var invalidCmd commands.MoveUnitCommand

	// Act
	_, err := handler.Handle(ctx, invalidCmd)

	// Assert
	require.ErrorIs(t, err, commands.ErrMoveUnitCommandIsNotConstructed)
}
