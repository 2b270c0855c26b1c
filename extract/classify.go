package extract

import (
	"nexttrain.dev/nexttrain/model"
	"nexttrain.dev/nexttrain/profile"
)

// TripBlock is the raw content of one departure cell before
// classification.
type TripBlock struct {
	Classes []string
	Legends []string
	Time    string
}

// Classify resolves a trip block into a Trip. The second return is
// false when the block holds no departure: a missing minute text, or
// the pass-through placeholder on profiles that drop it.
//
// Destination resolves before train type; the airport rule needs the
// resolved destination.
func Classify(block TripBlock, p *profile.LineProfile) (model.Trip, bool) {
	if block.Time == "" {
		return model.Trip{}, false
	}
	if p.FiltersPlaceholder && block.Time == profile.Placeholder {
		return model.Trip{}, false
	}

	destination := resolveDestination(block.Legends, p)

	return model.Trip{
		Minute:      block.Time,
		TrainType:   resolveTrainType(block, destination, p),
		Destination: destination,
		Legends:     block.Legends,
	}, true
}

// resolveDestination scans the legend glyphs. A track number glyph is
// a more specific signal than a destination name and pins the
// destination outright. Otherwise the first glyph found in the
// destination map wins and scanning stops; glyphs reserved for train
// types are skipped.
func resolveDestination(legends []string, p *profile.LineProfile) string {
	for _, glyph := range legends {
		if code, found := p.PlatformSymbols[glyph]; found {
			return code
		}
	}
	for _, glyph := range legends {
		if p.TypeSymbols[glyph] {
			continue
		}
		if code, found := p.DestinationSymbols[glyph]; found {
			return code
		}
	}
	return p.DefaultDestination
}

// resolveTrainType applies the airport rule when its glyph is
// present; the color token then describes the service beyond the
// branch point, so the color rules are bypassed. Otherwise the first
// matching color rule wins, falling back to the profile default.
func resolveTrainType(block TripBlock, destination string, p *profile.LineProfile) string {
	if a := p.Airport; a != nil && hasGlyph(block.Legends, a.Glyph) {
		if a.BypassType != "" && hasToken(block.Classes, a.BypassClass) && destination == a.BypassDest {
			return a.BypassType
		}
		return a.PlainType
	}

	for _, rule := range p.ColorRules {
		if hasToken(block.Classes, rule.Class) {
			return rule.Type
		}
	}
	return p.DefaultType
}

func hasGlyph(legends []string, glyph string) bool {
	for _, l := range legends {
		if l == glyph {
			return true
		}
	}
	return false
}

func hasToken(tokens []string, want string) bool {
	for _, t := range tokens {
		if t == want {
			return true
		}
	}
	return false
}
