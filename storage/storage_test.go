package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testArchive(t *testing.T, name string) Archive {
	if name == "sqlite" {
		archive, err := NewSQLiteArchive("")
		require.NoError(t, err)
		return archive
	}
	return NewMemoryArchive()
}

func TestArchiveRecordAndList(t *testing.T) {
	for _, backend := range []string{"memory", "sqlite"} {
		t.Run(backend, func(t *testing.T) {
			archive := testArchive(t, backend)
			defer archive.Close()

			at := time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC)
			first := &Snapshot{
				RecordedAt: at,
				Profile:    "oshiage",
				Station:    "大門",
				Direction:  "押上・京成線・北総線方面",
				DayType:    "weekday",
				Trips: []SnapshotTrip{
					{Hour: "5", Minute: "02", TrainType: "o", Destination: "j"},
					{Hour: "5", Minute: "28", TrainType: "m", Destination: "i"},
				},
			}
			second := &Snapshot{
				RecordedAt: at.Add(24 * time.Hour),
				Profile:    "nishimagome",
				Station:    "泉岳寺",
				Direction:  "西馬込方面",
				DayType:    "holiday",
			}

			require.NoError(t, archive.Record(first))
			require.NoError(t, archive.Record(second))
			assert.Equal(t, int64(1), first.ID)
			assert.Equal(t, int64(2), second.ID)

			all, err := archive.List("", "")
			require.NoError(t, err)
			require.Len(t, all, 2)

			// Oldest first, trips in stored order.
			assert.Equal(t, "大門", all[0].Station)
			require.Len(t, all[0].Trips, 2)
			assert.Equal(t, SnapshotTrip{Hour: "5", Minute: "02", TrainType: "o", Destination: "j"}, all[0].Trips[0])
			assert.Equal(t, "泉岳寺", all[1].Station)
			assert.Empty(t, all[1].Trips)

			// Filters.
			matched, err := archive.List("大門", "")
			require.NoError(t, err)
			require.Len(t, matched, 1)
			assert.Equal(t, "oshiage", matched[0].Profile)

			matched, err = archive.List("大門", "西馬込方面")
			require.NoError(t, err)
			assert.Empty(t, matched)
		})
	}
}

func TestMemoryArchiveCopiesTrips(t *testing.T) {
	archive := NewMemoryArchive()

	snapshot := &Snapshot{
		Station: "大門",
		Trips:   []SnapshotTrip{{Hour: "5", Minute: "02"}},
	}
	require.NoError(t, archive.Record(snapshot))

	// Caller-side mutation must not reach the archived copy.
	snapshot.Trips[0].Minute = "59"

	stored, err := archive.List("大門", "")
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "02", stored[0].Trips[0].Minute)
}
