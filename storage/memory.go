package storage

// MemoryArchive keeps snapshots in memory. Used in tests and as the
// default when no archive file is configured.
type MemoryArchive struct {
	snapshots []*Snapshot
	nextID    int64
}

func NewMemoryArchive() *MemoryArchive {
	return &MemoryArchive{nextID: 1}
}

func (m *MemoryArchive) Record(snapshot *Snapshot) error {
	snapshot.ID = m.nextID
	m.nextID++

	// Copy so later caller mutations can't reach the archive.
	stored := *snapshot
	stored.Trips = append([]SnapshotTrip(nil), snapshot.Trips...)
	m.snapshots = append(m.snapshots, &stored)
	return nil
}

func (m *MemoryArchive) List(station, direction string) ([]*Snapshot, error) {
	var matches []*Snapshot
	for _, s := range m.snapshots {
		if station != "" && s.Station != station {
			continue
		}
		if direction != "" && s.Direction != direction {
			continue
		}
		matches = append(matches, s)
	}
	return matches, nil
}

func (m *MemoryArchive) Close() error {
	return nil
}
