package nexttrain

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexttrain.dev/nexttrain/extract"
	"nexttrain.dev/nexttrain/model"
	"nexttrain.dev/nexttrain/profile"
	"nexttrain.dev/nexttrain/testutil"
)

func weekdayPage() testutil.Page {
	return testutil.Page{
		Station:   "大門",
		Direction: "押上・京成線・北総線方面",
		Day:       "平日",
		Rows: []testutil.Row{
			{Hour: "5", Blocks: []testutil.Block{
				{Time: "02"},
				{Colors: []string{"color-orange"}, Legends: []string{"エ", "空"}, Time: "28"},
			}},
			{Hour: "0", Blocks: []testutil.Block{
				{Time: "13"},
			}},
		},
		Legends: []testutil.LegendSection{
			{Head: "列車種別", Items: []string{"エ：エアポート快特"}},
		},
	}
}

func holidayPage() testutil.Page {
	page := weekdayPage()
	page.Day = "土曜・休日"
	return page
}

func TestConverterConvert(t *testing.T) {
	converter := NewConverter(profile.Oshiage())

	got, err := converter.Convert([]string{weekdayPage().HTML(), holidayPage().HTML()})
	require.NoError(t, err)

	// Documents serialize in input order, hours in service order.
	weekdayAt := strings.Index(got, "# 大門駅 押上方面(平日)")
	holidayAt := strings.Index(got, "# 大門駅 押上方面(土休日)")
	require.GreaterOrEqual(t, weekdayAt, 0)
	require.GreaterOrEqual(t, holidayAt, 0)
	assert.Less(t, weekdayAt, holidayAt)

	assert.Contains(t, got, "5: oj02 mi28")
	// Hour 0 follows hour 5 under midnight remapping.
	assert.Less(t, strings.Index(got, "5: "), strings.Index(got, "0: oj13"))
}

func TestConverterBackendsProduceIdenticalOutput(t *testing.T) {
	docs := []string{weekdayPage().HTML(), holidayPage().HTML()}

	dom := NewConverter(profile.Oshiage())
	scanner := &Converter{Profile: profile.Oshiage(), Backend: extract.BackendScanner}

	domOut, err := dom.Convert(docs)
	require.NoError(t, err)
	scanOut, err := scanner.Convert(docs)
	require.NoError(t, err)

	assert.Equal(t, domOut, scanOut)
}

func TestBuildSnapshot(t *testing.T) {
	converter := NewConverter(profile.Oshiage())
	table, err := converter.Parse(weekdayPage().HTML())
	require.NoError(t, err)

	at := time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC)
	snapshot := BuildSnapshot(converter.Profile, table, at)

	assert.Equal(t, "oshiage", snapshot.Profile)
	assert.Equal(t, "大門", snapshot.Station)
	assert.Equal(t, "weekday", snapshot.DayType)
	assert.Equal(t, at, snapshot.RecordedAt)

	// Trips flatten in serialization order: hour 5 before the
	// remapped hour 0.
	require.Len(t, snapshot.Trips, 3)
	assert.Equal(t, "5", snapshot.Trips[0].Hour)
	assert.Equal(t, "02", snapshot.Trips[0].Minute)
	assert.Equal(t, "m", snapshot.Trips[1].TrainType)
	assert.Equal(t, "0", snapshot.Trips[2].Hour)
}

func TestExportCSV(t *testing.T) {
	converter := NewConverter(profile.Oshiage())
	table, err := converter.Parse(weekdayPage().HTML())
	require.NoError(t, err)

	var buf bytes.Buffer
	err = ExportCSV(&buf, converter.Profile, []*model.ParsedTimetable{table})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "station,direction,day_type,hour,minute,train_type,destination,legends", lines[0])
	assert.Equal(t, "大門,押上・京成線・北総線方面,weekday,5,02,o,j,", lines[1])
	assert.Equal(t, "大門,押上・京成線・北総線方面,weekday,5,28,m,i,エ 空", lines[2])
	assert.Equal(t, "大門,押上・京成線・北総線方面,weekday,0,13,o,j,", lines[3])
}

func TestWriteAnalysis(t *testing.T) {
	converter := NewConverter(profile.Oshiage())
	table, err := converter.Parse(weekdayPage().HTML())
	require.NoError(t, err)

	var buf bytes.Buffer
	WriteAnalysis(&buf, table)
	out := buf.String()

	assert.Contains(t, out, "駅名: 大門")
	assert.Contains(t, out, "方面: 押上・京成線・北総線方面")
	assert.Contains(t, out, "曜日: 平日")
	assert.Contains(t, out, "エ：エアポート快特")
	// The sample sorts hours numerically, so hour 0 comes first.
	assert.Less(t, strings.Index(out, "0時台:"), strings.Index(out, "5時台:"))
	assert.Contains(t, out, "28分 - 種別:m, 行先:i, 凡例:[エ,空]")
}
