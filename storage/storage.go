// Package storage archives parsed timetables so successive scrapes
// of the same page can be compared over time.
package storage

import (
	"time"
)

// Snapshot is one archived conversion of one timetable page. Trips
// are stored in the order they were serialized.
type Snapshot struct {
	ID         int64
	RecordedAt time.Time
	Profile    string
	Station    string
	Direction  string
	DayType    string
	Trips      []SnapshotTrip
}

type SnapshotTrip struct {
	Hour        string
	Minute      string
	TrainType   string
	Destination string
}

type Archive interface {
	// Record stores a snapshot and assigns its ID.
	Record(snapshot *Snapshot) error

	// List returns snapshots matching station and direction, oldest
	// first. Blank values match everything.
	List(station, direction string) ([]*Snapshot, error)

	Close() error
}
