package queries

import (
	"context"
	"strings"

	"tracking/internal/core/ports"
)

// SensorErrorSummary aggregates one distinct failing sensor reading: the
// raw reading, how many sensors within it report failure ('0' bits), and
// how many times that exact reading occurred.
type SensorErrorSummary struct {
	Reading       string
	FailedSensors int
	Occurrences   int
}

// CountSensorErrorsQueryHandler analyses a unit's sensor readouts.
type CountSensorErrorsQueryHandler struct {
	registry ports.UnitRegistry
	sensors  ports.SensorDataStore
}

// NewCountSensorErrorsQueryHandler creates a handler over the given registry
// and sensor data store.
func NewCountSensorErrorsQueryHandler(
	registry ports.UnitRegistry,
	sensors ports.SensorDataStore,
) CountSensorErrorsQueryHandler {
	return CountSensorErrorsQueryHandler{
		registry: registry,
		sensors:  sensors,
	}
}

// Handle returns one summary per distinct failing reading, in order of first
// occurrence. Readings with no failed sensors are not reported. The unit
// must be registered before its sensor data can be analysed.
func (h CountSensorErrorsQueryHandler) Handle(_ context.Context, query CountSensorErrorsQuery) ([]SensorErrorSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if _, err := h.registry.Report(query.Serial()); err != nil {
		return nil, err
	}

	readings, err := h.sensors.Readings(query.Serial())
	if err != nil {
		return nil, err
	}

	index := make(map[string]int)
	summaries := make([]SensorErrorSummary, 0)
	for _, reading := range readings {
		failed := strings.Count(reading, "0")
		if failed == 0 {
			continue
		}

		if at, seen := index[reading]; seen {
			summaries[at].Occurrences++
			continue
		}

		index[reading] = len(summaries)
		summaries = append(summaries, SensorErrorSummary{
			Reading:       reading,
			FailedSensors: failed,
			Occurrences:   1,
		})
	}

	return summaries, nil
}
