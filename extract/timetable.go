package extract

import (
	"strings"

	"nexttrain.dev/nexttrain/htmlq"
	"nexttrain.dev/nexttrain/model"
	"nexttrain.dev/nexttrain/profile"
)

const (
	tableClass     = "tt-table"
	tripBlockClass = "wrapTime"
	legendClass    = "wrapLegend"
	timeClass      = "time"
)

// extractTimetable walks the timetable body rows. Each row has a
// leading header cell with the hour label and a data cell with zero
// or more trip blocks. Malformed rows are skipped silently; an hour
// is registered only if at least one trip survives classification.
func extractTimetable(root htmlq.Node, p *profile.LineProfile) model.Timetable {
	timetable := model.Timetable{}

	table := root.Find("table", tableClass)
	if table == nil {
		return timetable
	}
	body := table.Find("tbody")
	if body == nil {
		return timetable
	}

	for _, row := range body.FindAll("tr") {
		hourCell := row.Find("th")
		if hourCell == nil {
			continue
		}
		hour := strings.TrimSpace(hourCell.Text())

		dataCell := row.Find("td")
		if dataCell == nil {
			continue
		}

		var trips []model.Trip
		for _, block := range dataCell.FindAll("div", tripBlockClass) {
			trip, kept := Classify(readTripBlock(block), p)
			if !kept {
				continue
			}
			trips = append(trips, trip)
		}

		if len(trips) > 0 {
			timetable[hour] = trips
		}
	}

	return timetable
}

// readTripBlock pulls the raw pieces of one departure cell: the class
// tokens on the block, the legend glyphs in document order, and the
// minute text.
func readTripBlock(block htmlq.Node) TripBlock {
	tb := TripBlock{Classes: block.Classes()}

	if legend := block.Find("div", legendClass); legend != nil {
		for _, span := range legend.FindAll("span") {
			if text := strings.TrimSpace(span.Text()); text != "" {
				tb.Legends = append(tb.Legends, text)
			}
		}
	}

	if t := block.Find("span", timeClass); t != nil {
		tb.Time = strings.TrimSpace(t.Text())
	}

	return tb
}
