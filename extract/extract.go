// Package extract turns a station timetable page into a
// ParsedTimetable. Extraction is permissive by contract: a missing
// table, row cell or legend block means "no data here", never an
// error. Only failing to read the document at all is fatal.
package extract

import (
	"github.com/pkg/errors"

	"nexttrain.dev/nexttrain/htmlq"
	"nexttrain.dev/nexttrain/model"
	"nexttrain.dev/nexttrain/profile"
)

// Backend selects how the HTML text is turned into a queryable
// element tree.
type Backend int

const (
	// BackendDOM parses the document into a full tree.
	BackendDOM Backend = iota
	// BackendScanner pattern-matches over the raw markup.
	BackendScanner
)

// Extract parses one timetable page with the DOM backend.
func Extract(htmlText string, p *profile.LineProfile) (*model.ParsedTimetable, error) {
	return ExtractWithBackend(htmlText, p, BackendDOM)
}

// ExtractWithBackend parses one timetable page. Both backends produce
// identical results for well-formed pages.
func ExtractWithBackend(htmlText string, p *profile.LineProfile, backend Backend) (*model.ParsedTimetable, error) {
	var root htmlq.Node
	if backend == BackendScanner {
		root = htmlq.ParseScan(htmlText)
	} else {
		var err error
		root, err = htmlq.ParseDOM(htmlText)
		if err != nil {
			return nil, errors.Wrap(err, "parsing document")
		}
	}

	return &model.ParsedTimetable{
		Station:   extractStation(root),
		Timetable: extractTimetable(root, p),
		Legends:   legendBundle(root),
	}, nil
}
