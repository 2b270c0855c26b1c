package storage

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteArchive persists snapshots in a single database file.
type SQLiteArchive struct {
	db *sql.DB
}

func NewSQLiteArchive(path string) (*SQLiteArchive, error) {
	if path == "" {
		path = ":memory:"
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// A second pool connection would see a separate empty database
	// when backed by :memory:.
	db.SetMaxOpenConns(1)

	_, err = db.Exec(`
CREATE TABLE IF NOT EXISTS snapshot (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    recorded_at TIMESTAMP NOT NULL,
    profile TEXT NOT NULL,
    station TEXT NOT NULL,
    direction TEXT NOT NULL,
    day_type TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS snapshot_trip (
    snapshot_id INTEGER NOT NULL,
    position INTEGER NOT NULL,
    hour TEXT NOT NULL,
    minute TEXT NOT NULL,
    train_type TEXT NOT NULL,
    destination TEXT NOT NULL,
PRIMARY KEY (snapshot_id, position)
);`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating tables: %w", err)
	}

	return &SQLiteArchive{db: db}, nil
}

func (s *SQLiteArchive) Record(snapshot *Snapshot) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.Exec(`
INSERT INTO snapshot (recorded_at, profile, station, direction, day_type)
VALUES (?, ?, ?, ?, ?)`,
		snapshot.RecordedAt, snapshot.Profile, snapshot.Station,
		snapshot.Direction, snapshot.DayType)
	if err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading snapshot id: %w", err)
	}

	stmt, err := tx.Prepare(`
INSERT INTO snapshot_trip (snapshot_id, position, hour, minute, train_type, destination)
VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing trip insert: %w", err)
	}
	defer stmt.Close()

	for i, trip := range snapshot.Trips {
		_, err = stmt.Exec(id, i, trip.Hour, trip.Minute, trip.TrainType, trip.Destination)
		if err != nil {
			return fmt.Errorf("writing trip %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing snapshot: %w", err)
	}

	snapshot.ID = id
	return nil
}

func (s *SQLiteArchive) List(station, direction string) ([]*Snapshot, error) {
	rows, err := s.db.Query(`
SELECT id, recorded_at, profile, station, direction, day_type
FROM snapshot
WHERE (? = '' OR station = ?) AND (? = '' OR direction = ?)
ORDER BY id`,
		station, station, direction, direction)
	if err != nil {
		return nil, fmt.Errorf("querying snapshots: %w", err)
	}
	defer rows.Close()

	var snapshots []*Snapshot
	byID := map[int64]*Snapshot{}
	for rows.Next() {
		snapshot := &Snapshot{}
		err = rows.Scan(
			&snapshot.ID, &snapshot.RecordedAt, &snapshot.Profile,
			&snapshot.Station, &snapshot.Direction, &snapshot.DayType)
		if err != nil {
			return nil, fmt.Errorf("scanning snapshot: %w", err)
		}
		snapshots = append(snapshots, snapshot)
		byID[snapshot.ID] = snapshot
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading snapshots: %w", err)
	}

	tripRows, err := s.db.Query(`
SELECT snapshot_id, hour, minute, train_type, destination
FROM snapshot_trip
ORDER BY snapshot_id, position`)
	if err != nil {
		return nil, fmt.Errorf("querying trips: %w", err)
	}
	defer tripRows.Close()

	for tripRows.Next() {
		var id int64
		var trip SnapshotTrip
		err = tripRows.Scan(&id, &trip.Hour, &trip.Minute, &trip.TrainType, &trip.Destination)
		if err != nil {
			return nil, fmt.Errorf("scanning trip: %w", err)
		}
		if snapshot, found := byID[id]; found {
			snapshot.Trips = append(snapshot.Trips, trip)
		}
	}
	if err := tripRows.Err(); err != nil {
		return nil, fmt.Errorf("reading trips: %w", err)
	}

	return snapshots, nil
}

func (s *SQLiteArchive) Close() error {
	return s.db.Close()
}
