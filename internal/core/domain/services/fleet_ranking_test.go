package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tracking/internal/core/domain/model/fleet"
	"tracking/internal/core/domain/services"
	"tracking/internal/pkg/errs"
)

func TestFleetRanking(t *testing.T) {
	ranking := services.NewFleetRanking()

	reports := fleetWithUnits(t, map[string][2]float64{
		"00000001-01": {1, -1},    // nearest to base
		"00000002-02": {300, -40}, // farthest from base
		"00000003-03": {2, -90},   // deepest
		"00000004-04": {2, 5},     // shallowest
	})

	t.Run("nearest to base", func(t *testing.T) {
		report, err := ranking.NearestToBase(reports)
		require.NoError(t, err)
		assert.Equal(t, "00000001-01", report.Serial().String())
	})

	t.Run("farthest from base", func(t *testing.T) {
		report, err := ranking.FarthestFromBase(reports)
		require.NoError(t, err)
		assert.Equal(t, "00000002-02", report.Serial().String())
	})

	t.Run("deepest", func(t *testing.T) {
		report, err := ranking.Deepest(reports)
		require.NoError(t, err)
		assert.Equal(t, "00000003-03", report.Serial().String())
	})

	t.Run("shallowest", func(t *testing.T) {
		report, err := ranking.Shallowest(reports)
		require.NoError(t, err)
		assert.Equal(t, "00000004-04", report.Serial().String())
	})

	t.Run("single unit wins every ranking", func(t *testing.T) {
		solo := fleetWithUnits(t, map[string][2]float64{"00000009-09": {7, 7}})

		for _, op := range []func([]fleet.Report) (fleet.Report, error){
			ranking.NearestToBase,
			ranking.FarthestFromBase,
			ranking.Deepest,
			ranking.Shallowest,
		} {
			report, err := op(solo)
			require.NoError(t, err)
			assert.Equal(t, "00000009-09", report.Serial().String())
		}
	})

	t.Run("empty fleet fails", func(t *testing.T) {
		for _, op := range []func([]fleet.Report) (fleet.Report, error){
			ranking.NearestToBase,
			ranking.FarthestFromBase,
			ranking.Deepest,
			ranking.Shallowest,
		} {
			_, err := op(nil)
			require.ErrorIs(t, err, errs.ErrValueIsRequired)
		}
	})
}
