package extract

import (
	"strings"

	"github.com/pkg/errors"

	"nexttrain.dev/nexttrain/htmlq"
	"nexttrain.dev/nexttrain/model"
)

const (
	legendBlockClass = "time-legend"
	legendHeadClass  = "time-legend__head"
)

// Legend block heading tokens, matched as substrings in priority
// order.
const (
	trainTypeHeadToken   = "種別"
	destinationHeadToken = "行先"
	connectionHeadToken  = "接続"
)

// Legends extracts only the legend bundle from a page, for callers
// that do not need the timetable itself.
func Legends(htmlText string) (model.LegendBundle, error) {
	root, err := htmlq.ParseDOM(htmlText)
	if err != nil {
		return model.LegendBundle{}, errors.Wrap(err, "parsing document")
	}
	return legendBundle(root), nil
}

// legendBundle collects the legend definition lists. Blocks without a
// heading, and headings matching none of the known tokens, are
// ignored.
func legendBundle(root htmlq.Node) model.LegendBundle {
	var bundle model.LegendBundle

	for _, block := range root.FindAll("dl", legendBlockClass) {
		head := block.Find("dt", legendHeadClass)
		if head == nil {
			continue
		}

		var bucket *[]string
		headText := head.Text()
		switch {
		case strings.Contains(headText, trainTypeHeadToken):
			bucket = &bundle.TrainTypes
		case strings.Contains(headText, destinationHeadToken):
			bucket = &bundle.Destinations
		case strings.Contains(headText, connectionHeadToken):
			bucket = &bundle.Connections
		default:
			continue
		}

		for _, item := range block.FindAll("li") {
			*bucket = append(*bucket, strings.TrimSpace(item.Text()))
		}
	}

	return bundle
}
