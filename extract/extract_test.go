package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexttrain.dev/nexttrain/model"
	"nexttrain.dev/nexttrain/profile"
	"nexttrain.dev/nexttrain/testutil"
)

var allBackends = map[string]Backend{
	"dom":     BackendDOM,
	"scanner": BackendScanner,
}

func TestExtract(t *testing.T) {
	page := testutil.Page{
		Station:   "大門",
		Direction: "押上・京成線・北総線方面",
		Day:       "平日",
		Rows: []testutil.Row{
			{Hour: "5", Blocks: []testutil.Block{
				{Time: "02"},
				{Colors: []string{"color-orange"}, Legends: []string{"ア", "空"}, Time: "18"},
			}},
			{Hour: "6", Blocks: []testutil.Block{
				{Colors: []string{"color-red"}, Legends: []string{"特", "佐"}, Time: "11"},
			}},
			// Malformed rows are skipped silently.
			{NoHour: true, Blocks: []testutil.Block{{Time: "59"}}},
			{Hour: "7", NoData: true},
			// An hour whose trips are all filtered is absent.
			{Hour: "8", Blocks: []testutil.Block{{Time: "－"}}},
		},
	}

	for name, backend := range allBackends {
		t.Run(name, func(t *testing.T) {
			parsed, err := ExtractWithBackend(page.HTML(), profile.Oshiage(), backend)
			require.NoError(t, err)

			assert.Equal(t, model.StationInfo{
				Name:      "大門",
				Direction: "押上・京成線・北総線方面",
				DayType:   model.DayTypeWeekday,
			}, parsed.Station)

			assert.Equal(t, model.Timetable{
				"5": {
					{Minute: "02", TrainType: "o", Destination: "j"},
					{Minute: "18", TrainType: "k", Destination: "j", Legends: []string{"ア", "空"}},
				},
				"6": {
					{Minute: "11", TrainType: "q", Destination: "f", Legends: []string{"特", "佐"}},
				},
			}, parsed.Timetable)
		})
	}
}

func TestExtractBackendsAgree(t *testing.T) {
	page := testutil.Page{
		Station:   "泉岳寺",
		Direction: "西馬込・京急線方面",
		Day:       "土曜・休日",
		Rows: []testutil.Row{
			{Hour: "23", Blocks: []testutil.Block{
				{Colors: []string{"color-green"}, Legends: []string{"快", "品"}, Time: "04"},
				{Legends: []string{"①"}, Time: "16"},
			}},
			{Hour: "0", Blocks: []testutil.Block{
				{Legends: []string{"②"}, Time: "07"},
			}},
		},
		Legends: []testutil.LegendSection{
			{Head: "列車種別", Items: []string{"快：快特", "エ：エアポート快特"}},
			{Head: "行先", Items: []string{"品：品川", "①：西馬込1番線"}},
		},
	}

	dom, err := ExtractWithBackend(page.HTML(), profile.Nishimagome(), BackendDOM)
	require.NoError(t, err)
	scanned, err := ExtractWithBackend(page.HTML(), profile.Nishimagome(), BackendScanner)
	require.NoError(t, err)

	assert.Equal(t, dom, scanned)
}

func TestExtractDayTypes(t *testing.T) {
	for _, tc := range []struct {
		day  string
		want model.DayType
	}{
		{"平日", model.DayTypeWeekday},
		{"平日ダイヤ", model.DayTypeWeekday},
		{"土曜", model.DayTypeHoliday},
		{"土曜・休日", model.DayTypeHoliday},
		{"休日", model.DayTypeHoliday},
		{"特別ダイヤ", model.DayTypeUnknown},
	} {
		t.Run(tc.day, func(t *testing.T) {
			page := testutil.Page{Station: "大門", Direction: "押上方面", Day: tc.day}
			for name, backend := range allBackends {
				parsed, err := ExtractWithBackend(page.HTML(), profile.Oshiage(), backend)
				require.NoError(t, err, name)
				assert.Equal(t, tc.want, parsed.Station.DayType, name)
			}
		})
	}
}

func TestExtractMissingPieces(t *testing.T) {
	for name, backend := range allBackends {
		t.Run(name, func(t *testing.T) {
			// No table at all: empty timetable, no error.
			page := testutil.Page{Station: "大門", Direction: "押上方面", Day: "平日", NoTable: true}
			parsed, err := ExtractWithBackend(page.HTML(), profile.Oshiage(), backend)
			require.NoError(t, err)
			assert.Empty(t, parsed.Timetable)
			assert.Equal(t, "大門", parsed.Station.Name)

			// A document with none of the markers degrades to zero
			// values everywhere.
			parsed, err = ExtractWithBackend("<html><body><p>工事中</p></body></html>", profile.Oshiage(), backend)
			require.NoError(t, err)
			assert.Equal(t, model.StationInfo{}, parsed.Station)
			assert.Empty(t, parsed.Timetable)
			assert.Empty(t, parsed.Legends.TrainTypes)
		})
	}
}
