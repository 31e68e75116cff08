package fleet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tracking/internal/core/domain/model/kernel"
)

func record(t *testing.T, x float64) kernel.MovementRecord {
	t.Helper()
	from, err := kernel.NewPosition(x, 0)
	require.NoError(t, err)
	r, err := kernel.NewMovementRecord(from, kernel.HeadingEast(), 1)
	require.NoError(t, err)
	return r
}

func TestMovementLogAppend(t *testing.T) {
	t.Run("fills up to capacity", func(t *testing.T) {
		log := newMovementLog(3)

		for i := 0; i < 3; i++ {
			log.append(record(t, float64(i)))
		}

		assert.Equal(t, 3, log.size())
		snapshot := log.snapshot()
		require.Len(t, snapshot, 3)
		assert.InDelta(t, 0, snapshot[0].From().X(), 1e-12)
		assert.InDelta(t, 2, snapshot[2].From().X(), 1e-12)
	})

	t.Run("evicts oldest first when full", func(t *testing.T) {
		log := newMovementLog(3)

		for i := 0; i < 5; i++ {
			log.append(record(t, float64(i)))
		}

		snapshot := log.snapshot()
		require.Len(t, snapshot, 3)
		assert.InDelta(t, 2, snapshot[0].From().X(), 1e-12)
		assert.InDelta(t, 3, snapshot[1].From().X(), 1e-12)
		assert.InDelta(t, 4, snapshot[2].From().X(), 1e-12)
	})

	t.Run("zero capacity discards everything", func(t *testing.T) {
		log := newMovementLog(0)

		log.append(record(t, 1))

		assert.Equal(t, 0, log.size())
		assert.Empty(t, log.snapshot())
	})

	t.Run("capacity one keeps only the latest", func(t *testing.T) {
		log := newMovementLog(1)

		log.append(record(t, 1))
		log.append(record(t, 2))

		snapshot := log.snapshot()
		require.Len(t, snapshot, 1)
		assert.InDelta(t, 2, snapshot[0].From().X(), 1e-12)
	})
}

func TestMovementLogSnapshot(t *testing.T) {
	t.Run("snapshot does not expose the internal buffer", func(t *testing.T) {
		log := newMovementLog(2)
		log.append(record(t, 1))
		log.append(record(t, 2))

		first := log.snapshot()
		first[0] = record(t, 99)

		second := log.snapshot()
		assert.InDelta(t, 1, second[0].From().X(), 1e-12)
	})

	t.Run("snapshot of empty log is empty", func(t *testing.T) {
		log := newMovementLog(2)
		assert.Empty(t, log.snapshot())
	})
}
