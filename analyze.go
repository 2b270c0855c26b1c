package nexttrain

import (
	"fmt"
	"io"
	"strings"

	"nexttrain.dev/nexttrain/model"
)

// How much of the timetable the analysis sample shows.
const (
	analysisHours = 3
	analysisTrips = 5
)

// WriteAnalysis prints a human readable projection of one parsed
// timetable: station info, the legend bundle, and a sample of the
// first hours' departures. It is purely informational; the serializer
// never depends on it.
func WriteAnalysis(w io.Writer, table *model.ParsedTimetable) {
	fmt.Fprintln(w, "\n=== 時刻表解析結果 ===")
	fmt.Fprintf(w, "駅名: %s\n", table.Station.Name)
	fmt.Fprintf(w, "方面: %s\n", table.Station.Direction)
	dayLabel := holidayLabel
	if table.Station.DayType == model.DayTypeWeekday {
		dayLabel = weekdayLabel
	}
	fmt.Fprintf(w, "曜日: %s\n", dayLabel)

	fmt.Fprintln(w, "\n【凡例情報】")
	writeLegendSection(w, "種別", table.Legends.TrainTypes)
	writeLegendSection(w, "行先", table.Legends.Destinations)
	writeLegendSection(w, "接続等", table.Legends.Connections)

	fmt.Fprintf(w, "\n【時刻データサンプル（最初の%d時間）】\n", analysisHours)
	shown := 0
	// The sample sorts hours plain numerically, without the midnight
	// remapping used for serialization.
	for _, hour := range SortHours(hourLabels(table.Timetable), false) {
		if shown >= analysisHours {
			break
		}
		trips := table.Timetable[hour]
		if len(trips) == 0 {
			continue
		}

		fmt.Fprintf(w, "\n%s時台:\n", hour)
		for i, trip := range trips {
			if i >= analysisTrips {
				break
			}
			legends := "なし"
			if len(trip.Legends) > 0 {
				legends = strings.Join(trip.Legends, ",")
			}
			fmt.Fprintf(w, "  %s分 - 種別:%s, 行先:%s, 凡例:[%s]\n",
				trip.Minute, trip.TrainType, trip.Destination, legends)
		}
		shown++
	}
}

func writeLegendSection(w io.Writer, name string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(w, "\n%s:\n", name)
	for _, item := range items {
		fmt.Fprintf(w, "  %s\n", item)
	}
}
