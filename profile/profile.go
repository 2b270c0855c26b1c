// Package profile holds the per-line configuration driving
// extraction and serialization. A LineProfile is built once at
// startup and never mutated; the three Toei Asakusa line variants
// ship as built-ins (see toei.go), and supporting a new line means
// supplying a new profile value.
package profile

import (
	"fmt"
	"sort"

	"nexttrain.dev/nexttrain/model"
)

// Placeholder marks a cell with no departure (a pass-through slot).
// Profiles with FiltersPlaceholder drop such cells.
const Placeholder = "－"

// ColorRule maps one CSS color class token to a train type code.
// Rules are checked in slice order; first match wins.
type ColorRule struct {
	Class string
	Type  string
}

// AirportRule describes the airport limited express special case.
// When Glyph appears among a trip's legends, the color token encodes
// the service beyond the branch point rather than the base type, so
// type resolution bypasses the color rules: the trip gets BypassType
// if BypassClass is among the cell's class tokens and the resolved
// destination equals BypassDest, and PlainType otherwise. A rule with
// an empty BypassType always yields PlainType.
type AirportRule struct {
	Glyph       string
	PlainType   string
	BypassType  string
	BypassClass string
	BypassDest  string
}

// LineProfile is the immutable configuration for one physical
// line/branch/direction variant.
type LineProfile struct {
	Name        string
	Description string

	// Definition tables, in ascending code order.
	TrainTypes   []model.TrainType
	Destinations []model.Destination

	// DestinationSymbols maps a legend glyph (full name, single
	// character abbreviation, or marker) to a destination code.
	DestinationSymbols map[string]string

	// PlatformSymbols maps track number glyphs (circled digits) to
	// destination codes. A platform glyph outranks any destination
	// glyph in the same cell.
	PlatformSymbols map[string]string

	// TypeSymbols holds glyphs that denote a train type rather than
	// a destination; they are skipped when scanning for one.
	TypeSymbols map[string]bool

	ColorRules []ColorRule
	Airport    *AirportRule

	DefaultType        string
	DefaultDestination string

	// FiltersPlaceholder drops cells whose minute text is the
	// Placeholder glyph. RemapsMidnightHours sorts hours 0 and 1
	// after hour 23 in the serialized output.
	FiltersPlaceholder  bool
	RemapsMidnightHours bool
}

// Validate checks that every code the classifier can produce is
// covered by the definition tables.
func (p *LineProfile) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("profile has no name")
	}

	types := map[string]bool{}
	for _, t := range p.TrainTypes {
		if t.Code == "" {
			return fmt.Errorf("profile %s: train type %q has no code", p.Name, t.Name)
		}
		if types[t.Code] {
			return fmt.Errorf("profile %s: repeated train type code %q", p.Name, t.Code)
		}
		types[t.Code] = true
	}

	dests := map[string]bool{}
	for _, d := range p.Destinations {
		if d.Code == "" {
			return fmt.Errorf("profile %s: destination %q has no code", p.Name, d.Name)
		}
		if dests[d.Code] {
			return fmt.Errorf("profile %s: repeated destination code %q", p.Name, d.Code)
		}
		dests[d.Code] = true
	}

	for glyph, code := range p.DestinationSymbols {
		if !dests[code] {
			return fmt.Errorf("profile %s: glyph %q maps to undefined destination %q", p.Name, glyph, code)
		}
	}
	for glyph, code := range p.PlatformSymbols {
		if !dests[code] {
			return fmt.Errorf("profile %s: platform glyph %q maps to undefined destination %q", p.Name, glyph, code)
		}
	}
	if !dests[p.DefaultDestination] {
		return fmt.Errorf("profile %s: undefined default destination %q", p.Name, p.DefaultDestination)
	}

	for _, rule := range p.ColorRules {
		if !types[rule.Type] {
			return fmt.Errorf("profile %s: color %q maps to undefined train type %q", p.Name, rule.Class, rule.Type)
		}
	}
	if !types[p.DefaultType] {
		return fmt.Errorf("profile %s: undefined default train type %q", p.Name, p.DefaultType)
	}
	if a := p.Airport; a != nil {
		if !types[a.PlainType] {
			return fmt.Errorf("profile %s: airport rule has undefined plain type %q", p.Name, a.PlainType)
		}
		if a.BypassType != "" && !types[a.BypassType] {
			return fmt.Errorf("profile %s: airport rule has undefined bypass type %q", p.Name, a.BypassType)
		}
		if a.BypassType != "" && !dests[a.BypassDest] {
			return fmt.Errorf("profile %s: airport rule has undefined bypass destination %q", p.Name, a.BypassDest)
		}
	}

	return nil
}

var registry = map[string]*LineProfile{}

func register(p *LineProfile) {
	if err := p.Validate(); err != nil {
		panic(err)
	}
	if _, dup := registry[p.Name]; dup {
		panic(fmt.Sprintf("duplicate profile %q", p.Name))
	}
	registry[p.Name] = p
}

// Lookup returns the built-in profile with the given name.
func Lookup(name string) (*LineProfile, error) {
	p, found := registry[name]
	if !found {
		return nil, fmt.Errorf("unknown profile %q (have: %v)", name, Names())
	}
	return p, nil
}

// Names lists the built-in profile names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
