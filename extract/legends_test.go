package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexttrain.dev/nexttrain/htmlq"
	"nexttrain.dev/nexttrain/profile"
	"nexttrain.dev/nexttrain/testutil"
)

func TestLegendBundle(t *testing.T) {
	page := testutil.Page{
		Station:   "大門",
		Direction: "押上方面",
		Day:       "平日",
		Legends: []testutil.LegendSection{
			{Head: "列車種別", Items: []string{"ア：アクセス特急", "エ：エアポート快特"}},
			{Head: "行先について", Items: []string{"空：成田空港", "青：青砥"}},
			{Head: "接続・乗換", Items: []string{"●：泉岳寺で京急線に接続"}},
			{Head: "ご案内", Items: []string{"無視される項目"}},
		},
	}

	for name, backend := range allBackends {
		t.Run(name, func(t *testing.T) {
			parsed, err := ExtractWithBackend(page.HTML(), profile.Oshiage(), backend)
			require.NoError(t, err)

			assert.Equal(t, []string{"ア：アクセス特急", "エ：エアポート快特"}, parsed.Legends.TrainTypes)
			assert.Equal(t, []string{"空：成田空港", "青：青砥"}, parsed.Legends.Destinations)
			assert.Equal(t, []string{"●：泉岳寺で京急線に接続"}, parsed.Legends.Connections)
		})
	}
}

// A heading matching several tokens lands in the first bucket, 種別
// before 行先 before 接続.
func TestLegendHeadPriority(t *testing.T) {
	page := testutil.Page{
		Station:   "大門",
		Direction: "押上方面",
		Day:       "平日",
		Legends: []testutil.LegendSection{
			{Head: "種別・行先", Items: []string{"両方に見える見出し"}},
		},
	}

	bundle, err := Legends(page.HTML())
	require.NoError(t, err)
	assert.Equal(t, []string{"両方に見える見出し"}, bundle.TrainTypes)
	assert.Empty(t, bundle.Destinations)
}

func TestLegendBlockWithoutHead(t *testing.T) {
	html := `
<html><body>
<dl class="time-legend">
<dd><ul><li>見出しなし</li></ul></dd>
</dl>
</body></html>`

	for name := range allBackends {
		t.Run(name, func(t *testing.T) {
			var root htmlq.Node
			if name == "scanner" {
				root = htmlq.ParseScan(html)
			} else {
				var err error
				root, err = htmlq.ParseDOM(html)
				require.NoError(t, err)
			}

			bundle := legendBundle(root)
			assert.Empty(t, bundle.TrainTypes)
			assert.Empty(t, bundle.Destinations)
			assert.Empty(t, bundle.Connections)
		})
	}
}
