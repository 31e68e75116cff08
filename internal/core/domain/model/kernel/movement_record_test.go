package kernel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/errs"
)

func TestNewMovementRecord(t *testing.T) {
	from, err := kernel.NewPosition(1, 1)
	require.NoError(t, err)

	t.Run("destination equals origin shifted along heading", func(t *testing.T) {
		record, err := kernel.NewMovementRecord(from, kernel.HeadingEast(), 3)

		require.NoError(t, err)
		require.NoError(t, record.Validate())
		assert.InDelta(t, 4, record.To().X(), 1e-12)
		assert.InDelta(t, 1, record.To().Y(), 1e-12)
		assert.InDelta(t, 3, record.Distance(), 1e-12)
		assert.True(t, record.Heading().IsEqual(kernel.HeadingEast()))

		equal, err := record.From().IsEqual(from)
		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("zero distance keeps the position", func(t *testing.T) {
		record, err := kernel.NewMovementRecord(from, kernel.HeadingNorth(), 0)

		require.NoError(t, err)
		equal, err := record.To().IsEqual(from)
		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("negative distance is rejected", func(t *testing.T) {
		_, err := kernel.NewMovementRecord(from, kernel.HeadingNorth(), -1)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value heading is rejected", func(t *testing.T) {
		var heading kernel.Heading
		_, err := kernel.NewMovementRecord(from, heading, 1)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value origin is rejected", func(t *testing.T) {
		var origin kernel.Position
		_, err := kernel.NewMovementRecord(origin, kernel.HeadingNorth(), 1)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value record fails validation", func(t *testing.T) {
		var record kernel.MovementRecord
		require.ErrorIs(t, record.Validate(), errs.ErrValueIsRequired)
	})
}
