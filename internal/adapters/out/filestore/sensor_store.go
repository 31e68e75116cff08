package filestore

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/errs"
)

// SensorStore reads raw sensor readout lines from a directory of per-unit
// files. Lines are returned verbatim apart from surrounding whitespace;
// interpretation is left to the caller.
type SensorStore struct {
	dir string
}

// NewSensorStore creates a store over the given sensor data directory.
func NewSensorStore(dir string) (*SensorStore, error) {
	if dir == "" {
		return nil, errs.NewValueIsRequiredError("dir")
	}

	return &SensorStore{dir: dir}, nil
}

// Readings returns the recorded sensor lines of one unit, in file order.
// Empty lines are dropped. Fails with a not-found error when the unit has
// no sensor data file.
func (s *SensorStore) Readings(serial kernel.Serial) ([]string, error) {
	if err := serial.Validate(); err != nil {
		return nil, err
	}

	file, err := os.Open(filepath.Join(s.dir, serial.String()+reportFileExt))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errs.NewObjectNotFoundErrorWithCause("sensor data", serial.String(), err)
		}
		return nil, err
	}
	defer file.Close()

	readings := make([]string, 0)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		readings = append(readings, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return readings, nil
}
