package nexttrain

import (
	"io"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"

	"nexttrain.dev/nexttrain/model"
	"nexttrain.dev/nexttrain/profile"
)

// TripRecord is the flattened CSV projection of one departure, for
// spreadsheet inspection of parsed timetables.
type TripRecord struct {
	Station     string `csv:"station"`
	Direction   string `csv:"direction"`
	DayType     string `csv:"day_type"`
	Hour        string `csv:"hour"`
	Minute      string `csv:"minute"`
	TrainType   string `csv:"train_type"`
	Destination string `csv:"destination"`
	Legends     string `csv:"legends"`
}

// ExportCSV writes every trip of every timetable as CSV, tables in
// input order, hours in the profile's serialization order.
func ExportCSV(w io.Writer, p *profile.LineProfile, tables []*model.ParsedTimetable) error {
	var records []*TripRecord
	for _, table := range tables {
		for _, hour := range SortHours(hourLabels(table.Timetable), p.RemapsMidnightHours) {
			for _, trip := range table.Timetable[hour] {
				records = append(records, &TripRecord{
					Station:     table.Station.Name,
					Direction:   table.Station.Direction,
					DayType:     table.Station.DayType.String(),
					Hour:        hour,
					Minute:      trip.Minute,
					TrainType:   trip.TrainType,
					Destination: trip.Destination,
					Legends:     strings.Join(trip.Legends, " "),
				})
			}
		}
	}
	return errors.Wrap(gocsv.Marshal(&records, w), "writing csv")
}
