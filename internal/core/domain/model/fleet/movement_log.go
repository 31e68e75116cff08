package fleet

import "tracking/internal/core/domain/model/kernel"

// movementLog is a fixed-capacity FIFO buffer of movement records.
// When full, appending evicts the oldest record, keeping exactly the
// capacity most recent entries. Capacity zero discards everything.
//
// Implemented as a slice ring: once len(records) reaches capacity, start
// marks the oldest entry and appends overwrite in place.
type movementLog struct {
	records  []kernel.MovementRecord
	capacity int
	start    int
}

func newMovementLog(capacity int) *movementLog {
	return &movementLog{
		records:  make([]kernel.MovementRecord, 0, max(capacity, 0)),
		capacity: capacity,
	}
}

// append adds a record, evicting the oldest when the log is full. O(1).
func (l *movementLog) append(record kernel.MovementRecord) {
	if l.capacity <= 0 {
		return
	}

	if len(l.records) < l.capacity {
		l.records = append(l.records, record)
		return
	}

	l.records[l.start] = record
	l.start = (l.start + 1) % l.capacity
}

// snapshot returns a copy of the log contents in insertion order, oldest
// first. The internal buffer is never exposed.
func (l *movementLog) snapshot() []kernel.MovementRecord {
	out := make([]kernel.MovementRecord, 0, len(l.records))
	for i := range l.records {
		out = append(out, l.records[(l.start+i)%len(l.records)])
	}
	return out
}

func (l *movementLog) size() int {
	return len(l.records)
}
