// Package nexttrain converts station timetable pages into the
// NextTrain text format consumed by departure board displays.
package nexttrain

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"nexttrain.dev/nexttrain/model"
	"nexttrain.dev/nexttrain/profile"
)

const (
	weekdayHeader = "[MON][TUE][WED][THU][FRI]"
	holidayHeader = "[SAT][SUN][HOL]"
	weekdayLabel  = "平日"
	holidayLabel  = "土休日"

	directionSeparator = "・"
	directionSuffix    = "方面"
)

// Serialize renders the profile's code tables followed by each parsed
// timetable, in input order, as NextTrain text. The output is
// byte-stable: identical inputs serialize to identical text.
func Serialize(p *profile.LineProfile, tables []*model.ParsedTimetable) string {
	var lines []string

	destinations := append([]model.Destination(nil), p.Destinations...)
	sort.Slice(destinations, func(i, j int) bool { return destinations[i].Code < destinations[j].Code })
	for _, d := range destinations {
		lines = append(lines, fmt.Sprintf("%s:%s;%s", d.Code, d.Name, d.Abbr))
	}

	trainTypes := append([]model.TrainType(nil), p.TrainTypes...)
	sort.Slice(trainTypes, func(i, j int) bool { return trainTypes[i].Code < trainTypes[j].Code })
	for _, t := range trainTypes {
		lines = append(lines, fmt.Sprintf("%s:%s;%s;%s", t.Code, t.Name, t.Abbr, t.Color))
	}

	for _, table := range tables {
		lines = append(lines, "")

		if table.Station.DayType == model.DayTypeWeekday {
			lines = append(lines, weekdayHeader)
		} else {
			lines = append(lines, holidayHeader)
		}
		lines = append(lines, titleLine(table.Station))

		for _, hour := range SortHours(hourLabels(table.Timetable), p.RemapsMidnightHours) {
			trips := table.Timetable[hour]
			if len(trips) == 0 {
				continue
			}
			entries := make([]string, len(trips))
			for i, trip := range trips {
				entries[i] = trip.TrainType + trip.Destination + trip.Minute
			}
			lines = append(lines, hour+": "+strings.Join(entries, " "))
		}
	}

	return strings.Join(lines, "\n")
}

// titleLine builds the schedule title. A multi-segment direction like
// 押上・京成線・北総線方面 is reduced to its leading destination plus
// the 方面 suffix.
func titleLine(station model.StationInfo) string {
	direction := station.Direction
	if i := strings.Index(direction, directionSeparator); i >= 0 {
		direction = direction[:i] + directionSuffix
	}

	label := holidayLabel
	if station.DayType == model.DayTypeWeekday {
		label = weekdayLabel
	}

	return fmt.Sprintf("# %s駅 %s(%s)", station.Name, direction, label)
}

// SortHours orders hour labels for output. Labels that are not plain
// numbers sort first. With remapMidnight, hours 0 and 1 sort as 24
// and 25 so the post-midnight continuation follows hour 23. Equal
// keys fall back to the label text to keep the order deterministic.
func SortHours(hours []string, remapMidnight bool) []string {
	sorted := append([]string(nil), hours...)
	sort.Slice(sorted, func(i, j int) bool {
		ki, kj := hourKey(sorted[i], remapMidnight), hourKey(sorted[j], remapMidnight)
		if ki != kj {
			return ki < kj
		}
		return sorted[i] < sorted[j]
	})
	return sorted
}

func hourKey(label string, remapMidnight bool) int {
	hour, err := strconv.Atoi(label)
	if err != nil || hour < 0 {
		return 0
	}
	if remapMidnight && hour <= 1 {
		return hour + 24
	}
	return hour
}

func hourLabels(timetable model.Timetable) []string {
	labels := make([]string, 0, len(timetable))
	for hour := range timetable {
		labels = append(labels, hour)
	}
	return labels
}
