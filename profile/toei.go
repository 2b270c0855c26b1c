package profile

import "nexttrain.dev/nexttrain/model"

// The three Toei Asakusa line variants. The code tables and glyph
// maps mirror the published timetable pages; the differences between
// the variants (type symbol sets, color priorities, airport handling,
// placeholder filtering, hour ordering) are deliberate and must not
// be unified.

func init() {
	register(Oshiage())
	register(Nishimagome())
	register(OshiageBranch())
}

// Oshiage is the Asakusa line toward Oshiage, with Keisei and
// Sky Access through services.
func Oshiage() *LineProfile {
	return &LineProfile{
		Name:        "oshiage",
		Description: "浅草線 押上方面（京成線・北総線直通）",

		TrainTypes: []model.TrainType{
			{Code: "k", Name: "アクセス特急", Abbr: "ア", Color: "#EE7A00"},
			{Code: "l", Name: "エアポート快特", Abbr: "エ", Color: "#EE7A00"},
			{Code: "m", Name: "エアポート快特−成田スカイアクセス線経由", Abbr: "快", Color: "#EE7A00"},
			{Code: "n", Name: "通勤特急", Abbr: "通", Color: "#0033FF"},
			{Code: "o", Name: "普通", Abbr: "普", Color: "#000000"},
			{Code: "p", Name: "快速", Abbr: "快", Color: "#FC82FC"},
			{Code: "q", Name: "特急", Abbr: "特", Color: "#FF0033"},
			{Code: "r", Name: "快特", Abbr: "快", Color: "#009966"},
		},
		Destinations: []model.Destination{
			{Code: "a", Name: "印旛日本医大", Abbr: "印"},
			{Code: "b", Name: "芝山千代田", Abbr: "芝"},
			{Code: "c", Name: "印西牧の原", Abbr: "牧"},
			{Code: "d", Name: "押上", Abbr: "押"},
			{Code: "e", Name: "京成高砂", Abbr: "高"},
			{Code: "f", Name: "京成佐倉", Abbr: "佐"},
			{Code: "g", Name: "京成成田", Abbr: "成"},
			{Code: "h", Name: "宗吾参道", Abbr: "宗"},
			{Code: "i", Name: "成田空港", Abbr: "空"},
			{Code: "j", Name: "青砥", Abbr: "青"},
		},
		DestinationSymbols: map[string]string{
			"印旛日本医大": "a",
			"医":      "a",
			"芝山千代田":  "b",
			"芝":      "b",
			"印西牧の原":  "c",
			"印":      "c",
			"押上":     "d",
			"押":      "d",
			"京成高砂":   "e",
			"高":      "e",
			"京成佐倉":   "f",
			"佐":      "f",
			"京成成田":   "g",
			"成":      "g",
			"宗吾参道":   "h",
			"宗":      "h",
			"成田空港":   "i",
			"空":      "i",
			"青砥":     "j",
			"青":      "j",
			"泉岳寺":    "j", // 泉岳寺止まりは青砥行きと同じ扱い
			"●":      "j", // 無印は青砥行
		},
		TypeSymbols: symbolSet("ア", "速", "通", "特", "快", "エ"),
		ColorRules: []ColorRule{
			{Class: "color-pink", Type: "p"},
			{Class: "color-red", Type: "q"},
			{Class: "color-orange", Type: "k"},
			{Class: "color-green", Type: "r"},
			{Class: "color-blue", Type: "n"},
		},
		Airport: &AirportRule{
			Glyph:       "エ",
			PlainType:   "l",
			BypassType:  "m",
			BypassClass: "color-orange",
			BypassDest:  "i",
		},
		DefaultType:        "o",
		DefaultDestination: "j",

		FiltersPlaceholder:  true,
		RemapsMidnightHours: true,
	}
}

// Nishimagome is the Asakusa line toward Nishimagome, with Keikyu
// through services. The circled digit glyphs denote the arrival
// track at Nishimagome and double as destination codes.
func Nishimagome() *LineProfile {
	return &LineProfile{
		Name:        "nishimagome",
		Description: "浅草線 西馬込方面（京急線直通）",

		TrainTypes: []model.TrainType{
			{Code: "m", Name: "快特", Abbr: "快", Color: "#009966"},
			{Code: "n", Name: "急行", Abbr: "急", Color: "#0033FF"},
			{Code: "o", Name: "普通", Abbr: "普", Color: "#000000"},
			{Code: "p", Name: "特急", Abbr: "特", Color: "#FF0033"},
			{Code: "q", Name: "エアポート快特", Abbr: "エ", Color: "#EE7A00"},
		},
		Destinations: []model.Destination{
			{Code: "a", Name: "羽田空港", Abbr: "羽"},
			{Code: "b", Name: "京急久里浜", Abbr: "ク"},
			{Code: "c", Name: "三浦海岸", Abbr: "海"},
			{Code: "d", Name: "三崎口", Abbr: "三"},
			{Code: "e", Name: "神奈川新町", Abbr: "神"},
			{Code: "f", Name: "西馬込'", Abbr: "馬'"},   // 西馬込1番線着
			{Code: "g", Name: "西馬込''", Abbr: "馬''"}, // 西馬込2番線着
			{Code: "h", Name: "泉岳寺", Abbr: "泉"},
			{Code: "i", Name: "浅草橋", Abbr: "草"},
			{Code: "j", Name: "品川", Abbr: "品"},
			{Code: "k", Name: "金沢文庫", Abbr: "文"},
			{Code: "l", Name: "逗子・葉山", Abbr: "逗"},
		},
		DestinationSymbols: map[string]string{
			"羽田空港":  "a",
			"羽":     "a",
			"京急久里浜": "b",
			"久":     "b",
			"ク":     "b",
			"三浦海岸":  "c",
			"海":     "c",
			"三崎口":   "d",
			"三":     "d",
			"神奈川新町": "e",
			"神":     "e",
			"新":     "e",
			"泉岳寺":   "h",
			"泉":     "h",
			"浅草橋":   "i",
			"草":     "i",
			"浅":     "i",
			"品川":    "j",
			"品":     "j",
			"金沢文庫":  "k",
			"文":     "k",
			"逗子・葉山": "l",
			"逗":     "l",
		},
		PlatformSymbols: map[string]string{
			"①": "f",
			"②": "g",
		},
		TypeSymbols: symbolSet("快", "急", "特", "エ"),
		ColorRules: []ColorRule{
			{Class: "color-green", Type: "m"},
			{Class: "color-blue", Type: "n"},
			{Class: "color-red", Type: "p"},
			{Class: "color-orange", Type: "q"},
		},
		// エアポート快特 here keeps one code regardless of color; the
		// color only describes the service beyond Sengakuji.
		Airport: &AirportRule{
			Glyph:     "エ",
			PlainType: "q",
		},
		DefaultType:        "o",
		DefaultDestination: "f",

		FiltersPlaceholder:  true,
		RemapsMidnightHours: true,
	}
}

// OshiageBranch is the Nishimagome branch toward Oshiage. This
// variant has no late night service, so hours sort purely
// numerically, and it keeps placeholder cells as literal trips.
func OshiageBranch() *LineProfile {
	return &LineProfile{
		Name:        "oshiage-branch",
		Description: "西馬込支線 押上方面",

		TrainTypes: []model.TrainType{
			{Code: "k", Name: "アクセス特急", Abbr: "ア", Color: "#EE7A00"},
			{Code: "l", Name: "普通", Abbr: "普", Color: "#000000"},
			{Code: "m", Name: "快速", Abbr: "快", Color: "#FC82FC"},
			{Code: "n", Name: "特急", Abbr: "特", Color: "#FF0033"},
			{Code: "o", Name: "快特", Abbr: "快", Color: "#009966"},
		},
		Destinations: []model.Destination{
			{Code: "a", Name: "印旛日本医大", Abbr: "印"},
			{Code: "b", Name: "芝山千代田", Abbr: "芝"},
			{Code: "c", Name: "印西牧の原", Abbr: "牧"},
			{Code: "d", Name: "押上", Abbr: "押"},
			{Code: "e", Name: "京成高砂", Abbr: "高"},
			{Code: "f", Name: "京成佐倉", Abbr: "佐"},
			{Code: "g", Name: "京成成田", Abbr: "成"},
			{Code: "h", Name: "成田空港", Abbr: "空"},
			{Code: "i", Name: "青砥", Abbr: "青"},
			{Code: "j", Name: "泉岳寺", Abbr: "泉"},
		},
		DestinationSymbols: map[string]string{
			"印旛日本医大": "a",
			"医":      "a",
			"芝山千代田":  "b",
			"芝":      "b",
			"印西牧の原":  "c",
			"印":      "c",
			"押上":     "d",
			"押":      "d",
			"京成高砂":   "e",
			"高":      "e",
			"京成佐倉":   "f",
			"佐":      "f",
			"京成成田":   "g",
			"成":      "g",
			"成田空港":   "h",
			"空":      "h",
			"青砥":     "i",
			"青":      "i",
			"泉岳寺":    "j",
			"●":      "j", // 無印は泉岳寺行
		},
		TypeSymbols: symbolSet("ア", "速", "特", "快"),
		ColorRules: []ColorRule{
			{Class: "color-pink", Type: "m"},
			{Class: "color-red", Type: "n"},
			{Class: "color-orange", Type: "k"},
			{Class: "color-green", Type: "o"},
		},
		DefaultType:        "l",
		DefaultDestination: "j",

		FiltersPlaceholder:  false,
		RemapsMidnightHours: false,
	}
}

func symbolSet(glyphs ...string) map[string]bool {
	set := make(map[string]bool, len(glyphs))
	for _, g := range glyphs {
		set[g] = true
	}
	return set
}
