package filestore

import (
	"bufio"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/ports"
	"tracking/internal/pkg/errs"
)

const reportFileExt = ".txt"

// ReportStore reads queued movement reports from a directory of per-unit
// files. Each line holds a direction name and a distance separated by
// whitespace; anything else is skipped.
type ReportStore struct {
	dir string
}

// NewReportStore creates a store over the given reports directory.
func NewReportStore(dir string) (*ReportStore, error) {
	if dir == "" {
		return nil, errs.NewValueIsRequiredError("dir")
	}

	return &ReportStore{dir: dir}, nil
}

// ListSerials returns the file stems of every report file in the directory.
// Fails with a not-found error when the directory does not exist.
func (s *ReportStore) ListSerials() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errs.NewObjectNotFoundErrorWithCause("movement reports directory", s.dir, err)
		}
		return nil, err
	}

	serials := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), reportFileExt) {
			continue
		}
		serials = append(serials, strings.TrimSuffix(entry.Name(), reportFileExt))
	}

	return serials, nil
}

// Movements returns the well-formed movement lines of one unit's report
// file, in file order. Fails with a not-found error when the unit has no
// report file.
func (s *ReportStore) Movements(serial kernel.Serial) ([]ports.QueuedMovement, error) {
	if err := serial.Validate(); err != nil {
		return nil, err
	}

	file, err := os.Open(filepath.Join(s.dir, serial.String()+reportFileExt))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errs.NewObjectNotFoundErrorWithCause("movement report", serial.String(), err)
		}
		return nil, err
	}
	defer file.Close()

	movements := make([]ports.QueuedMovement, 0)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		movement, ok := parseMovementLine(scanner.Text())
		if !ok {
			continue
		}
		movements = append(movements, movement)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return movements, nil
}

func parseMovementLine(line string) (ports.QueuedMovement, bool) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return ports.QueuedMovement{}, false
	}

	distance, err := strconv.ParseFloat(fields[1], 64)
	if err != nil || distance < 0 || math.IsNaN(distance) || math.IsInf(distance, 0) {
		return ports.QueuedMovement{}, false
	}

	return ports.QueuedMovement{
		Direction: strings.ToLower(fields[0]),
		Distance:  distance,
	}, true
}
