package queries_test

import (
	"testing"

	"tracking/internal/core/domain/model/fleet"
	"tracking/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/require"
)

func mustSerial(t *testing.T, value string) kernel.Serial {
	t.Helper()
	serial, err := kernel.NewSerial(value)
	require.NoError(t, err)
	return serial
}

func mustPosition(t *testing.T, x, y float64) kernel.Position {
	t.Helper()
	position, err := kernel.NewPosition(x, y)
	require.NoError(t, err)
	return position
}

func newRegistry(t *testing.T) *fleet.Registry {
	t.Helper()
	registry, err := fleet.NewRegistry(fleet.DefaultLogCapacity)
	require.NoError(t, err)
	return registry
}
