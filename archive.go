package nexttrain

import (
	"time"

	"nexttrain.dev/nexttrain/model"
	"nexttrain.dev/nexttrain/profile"
	"nexttrain.dev/nexttrain/storage"
)

// BuildSnapshot flattens a parsed timetable for archiving, trips in
// the profile's serialization order.
func BuildSnapshot(p *profile.LineProfile, table *model.ParsedTimetable, at time.Time) *storage.Snapshot {
	snapshot := &storage.Snapshot{
		RecordedAt: at,
		Profile:    p.Name,
		Station:    table.Station.Name,
		Direction:  table.Station.Direction,
		DayType:    table.Station.DayType.String(),
	}

	for _, hour := range SortHours(hourLabels(table.Timetable), p.RemapsMidnightHours) {
		for _, trip := range table.Timetable[hour] {
			snapshot.Trips = append(snapshot.Trips, storage.SnapshotTrip{
				Hour:        hour,
				Minute:      trip.Minute,
				TrainType:   trip.TrainType,
				Destination: trip.Destination,
			})
		}
	}

	return snapshot
}
