package extract

import (
	"strings"

	"nexttrain.dev/nexttrain/htmlq"
	"nexttrain.dev/nexttrain/model"
)

// Marker classes of the timetable pages.
const (
	stationNameClass  = "station-name"
	directionTabClass = "directionNavi__item"
	dayTabClass       = "dayNavi__item"
	activeTabClass    = "is-active"
)

// Day tab tokens. Saturday and holiday tabs both map to the holiday
// service calendar.
const (
	weekdayToken  = "平日"
	saturdayToken = "土曜"
	holidayToken  = "休日"
)

func extractStation(root htmlq.Node) model.StationInfo {
	var info model.StationInfo

	if h := root.Find("h1", stationNameClass); h != nil {
		info.Name = strings.TrimSpace(h.Text())
	}
	if text, found := activeTabText(root, directionTabClass); found {
		info.Direction = text
	}
	if text, found := activeTabText(root, dayTabClass); found {
		info.DayType = classifyDayType(text)
	}

	return info
}

// activeTabText returns the link text of the active item in a tab
// list. A tab without a link degrades to "no data".
func activeTabText(root htmlq.Node, tabClass string) (string, bool) {
	item := root.Find("li", tabClass, activeTabClass)
	if item == nil {
		return "", false
	}
	link := item.Find("a")
	if link == nil {
		return "", false
	}
	return strings.TrimSpace(link.Text()), true
}

func classifyDayType(text string) model.DayType {
	switch {
	case strings.Contains(text, weekdayToken):
		return model.DayTypeWeekday
	case strings.Contains(text, saturdayToken), strings.Contains(text, holidayToken):
		return model.DayTypeHoliday
	}
	return model.DayTypeUnknown
}
