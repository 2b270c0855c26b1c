package nexttrain

import (
	"github.com/pkg/errors"

	"nexttrain.dev/nexttrain/extract"
	"nexttrain.dev/nexttrain/model"
	"nexttrain.dev/nexttrain/profile"
)

// Converter ties extraction and serialization together for one line
// profile. The zero Backend is the DOM parser.
type Converter struct {
	Profile *profile.LineProfile
	Backend extract.Backend
}

func NewConverter(p *profile.LineProfile) *Converter {
	return &Converter{Profile: p}
}

// Parse extracts one timetable page.
func (c *Converter) Parse(htmlText string) (*model.ParsedTimetable, error) {
	return extract.ExtractWithBackend(htmlText, c.Profile, c.Backend)
}

// ParseAll extracts every page, preserving input order. Order is a
// contract: the serialized output follows it.
func (c *Converter) ParseAll(htmlDocs []string) ([]*model.ParsedTimetable, error) {
	tables := make([]*model.ParsedTimetable, 0, len(htmlDocs))
	for i, doc := range htmlDocs {
		table, err := c.Parse(doc)
		if err != nil {
			return nil, errors.Wrapf(err, "document %d", i+1)
		}
		tables = append(tables, table)
	}
	return tables, nil
}

// Convert parses every page and renders the NextTrain schedule.
func (c *Converter) Convert(htmlDocs []string) (string, error) {
	tables, err := c.ParseAll(htmlDocs)
	if err != nil {
		return "", err
	}
	return Serialize(c.Profile, tables), nil
}
