package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock implementation for testing.
type MockSecretStore struct {
	mock.Mock
}

func (m *MockSecretStore) SecretKey(serial kernel.Serial) (string, error) {
	args := m.Called(serial)
	return args.String(0), args.Error(1)
}

func (m *MockSecretStore) ActivationCode(serial kernel.Serial) (string, error) {
	args := m.Called(serial)
	return args.String(0), args.Error(1)
}

func fixedClock(t *testing.T, value string) func() time.Time {
	t.Helper()
	parsed, err := time.Parse(time.DateOnly, value)
	require.NoError(t, err)
	return func() time.Time { return parsed }
}

func TestNewArmUnitCommand(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		// Arrange
		serial := mustSerial(t, "78532608-69")

		// Act
		cmd, err := commands.NewArmUnitCommand(serial, "2026-08-28keycode")

		// Assert
		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.Serial().IsEqual(serial))
		assert.Equal(t, "2026-08-28keycode", cmd.AuthString())
	})

	t.Run("empty auth string is rejected", func(t *testing.T) {
		_, err := commands.NewArmUnitCommand(mustSerial(t, "78532608-69"), "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestArmUnitCommandHandler_Handle_CorrectAuthString(t *testing.T) {
	// Arrange
	ctx := context.Background()
	registry := newRegistry(t)
	serial := mustSerial(t, "78532608-69")
	_, err := registry.Register(serial, mustPosition(t, 0, 0))
	require.NoError(t, err)

	mockSecrets := new(MockSecretStore)
	mockSecrets.On("SecretKey", serial).Return("VerySecretKey123", nil).Once()
	mockSecrets.On("ActivationCode", serial).Return("90312", nil).Once()

	handler := commands.NewArmUnitCommandHandlerWithClock(registry, mockSecrets, fixedClock(t, "2026-08-28"))

	// The auth string is date + secret key + activation code.
	cmd, err := commands.NewArmUnitCommand(serial, "2026-08-28VerySecretKey12390312")
	require.NoError(t, err)

	// Act
	result, err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.True(t, result.Armed)
	mockSecrets.AssertExpectations(t)
}

func TestArmUnitCommandHandler_Handle_WrongAuthString(t *testing.T) {
	// Arrange
	ctx := context.Background()
	registry := newRegistry(t)
	serial := mustSerial(t, "78532608-69")
	_, err := registry.Register(serial, mustPosition(t, 0, 0))
	require.NoError(t, err)

	mockSecrets := new(MockSecretStore)
	mockSecrets.On("SecretKey", serial).Return("VerySecretKey123", nil).Once()
	mockSecrets.On("ActivationCode", serial).Return("90312", nil).Once()

	handler := commands.NewArmUnitCommandHandlerWithClock(registry, mockSecrets, fixedClock(t, "2026-08-28"))
	cmd, err := commands.NewArmUnitCommand(serial, "guesswork")
	require.NoError(t, err)

	// Act
	result, err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err) // refusal, not failure
	assert.False(t, result.Armed)
	mockSecrets.AssertExpectations(t)
}

func TestArmUnitCommandHandler_Handle_StaleAuthString(t *testing.T) {
	// Arrange
	ctx := context.Background()
	registry := newRegistry(t)
	serial := mustSerial(t, "78532608-69")
	_, err := registry.Register(serial, mustPosition(t, 0, 0))
	require.NoError(t, err)

	mockSecrets := new(MockSecretStore)
	mockSecrets.On("SecretKey", serial).Return("VerySecretKey123", nil).Once()
	mockSecrets.On("ActivationCode", serial).Return("90312", nil).Once()

	// Yesterday's auth string against today's clock.
	handler := commands.NewArmUnitCommandHandlerWithClock(registry, mockSecrets, fixedClock(t, "2026-08-29"))
	cmd, err := commands.NewArmUnitCommand(serial, "2026-08-28VerySecretKey12390312")
	require.NoError(t, err)

	// Act
	result, err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.False(t, result.Armed)
	mockSecrets.AssertExpectations(t)
}

func TestArmUnitCommandHandler_Handle_UnknownUnit(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockSecrets := new(MockSecretStore)
	handler := commands.NewArmUnitCommandHandler(newRegistry(t), mockSecrets)
	cmd, err := commands.NewArmUnitCommand(mustSerial(t, "78532608-69"), "anything")
	require.NoError(t, err)

	// Act
	_, err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	mockSecrets.AssertExpectations(t) // secrets are never consulted
}

func TestArmUnitCommandHandler_Handle_MissingSecrets(t *testing.T) {
	// Arrange
	ctx := context.Background()
	registry := newRegistry(t)
	serial := mustSerial(t, "78532608-69")
	_, err := registry.Register(serial, mustPosition(t, 0, 0))
	require.NoError(t, err)

	expectedError := errors.New("secret key file unreadable")
	mockSecrets := new(MockSecretStore)
	mockSecrets.On("SecretKey", serial).Return("", expectedError).Once()

	handler := commands.NewArmUnitCommandHandler(registry, mockSecrets)
	cmd, err := commands.NewArmUnitCommand(serial, "anything")
	require.NoError(t, err)

	// Act
	_, err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.Equal(t, expectedError, err)
	mockSecrets.AssertExpectations(t)
}

func TestArmUnitCommandHandler_Handle_InvalidCommand(t *testing.T) {
	// Arrange
	ctx := context.Background()
	handler := commands.NewArmUnitCommandHandler(newRegistry(t), new(MockSecretStore))
	var invalidCmd commands.ArmUnitCommand

	// Act
	_, err := handler.Handle(ctx, invalidCmd)

	// Assert
	require.ErrorIs(t, err, commands.ErrArmUnitCommandIsNotConstructed)
}
