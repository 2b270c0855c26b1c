package model

// Holds all external facing types for parsed timetables.

type DayType int

const (
	DayTypeUnknown DayType = iota
	DayTypeWeekday
	DayTypeHoliday
)

func (d DayType) String() string {
	switch d {
	case DayTypeWeekday:
		return "weekday"
	case DayTypeHoliday:
		return "holiday"
	}
	return "unknown"
}

// TrainType describes one service category as it appears in the
// NextTrain definition lines.
type TrainType struct {
	Code  string
	Name  string
	Abbr  string
	Color string // hex, e.g. "#EE7A00"
}

type Destination struct {
	Code string
	Name string
	Abbr string
}

// StationInfo is derived once per input document. Direction is the
// raw tab text, possibly several segments joined by "・".
type StationInfo struct {
	Name      string
	Direction string
	DayType   DayType
}

// Trip is one scheduled departure within an hour bucket. Minute
// preserves the original cell text, including non-numeric
// placeholders. Legends keeps the raw glyphs for diagnostics.
type Trip struct {
	Minute      string
	TrainType   string
	Destination string
	Legends     []string
}

// Timetable maps an hour label (typically "0".."25") to the trips
// departing within that hour, in document order. An hour is present
// only if it has at least one trip.
type Timetable map[string][]Trip

// LegendBundle holds the informational legend lists from a timetable
// page, in document order.
type LegendBundle struct {
	TrainTypes   []string
	Destinations []string
	Connections  []string
}

// ParsedTimetable is everything extracted from one input document.
// It is immutable once produced.
type ParsedTimetable struct {
	Station   StationInfo
	Timetable Timetable
	Legends   LegendBundle
}
