package testutil

// Builders for fixture timetable pages shaped like the Toei web
// timetable, used by tests across the module.

import (
	"fmt"
	"strings"
)

type Block struct {
	// Extra class tokens on the wrapTime div, e.g. "color-orange".
	Colors  []string
	Legends []string
	Time    string
	// NoTime omits the minute span entirely.
	NoTime bool
}

type Row struct {
	Hour   string
	Blocks []Block
	// NoHour/NoData omit the th/td cell to build malformed rows.
	NoHour bool
	NoData bool
}

type LegendSection struct {
	Head  string
	Items []string
}

type Page struct {
	Station   string
	Direction string
	Day       string
	Rows      []Row
	Legends   []LegendSection
	// NoTable omits the timetable table entirely.
	NoTable bool
}

// HTML renders the page as a full document.
func (p Page) HTML() string {
	var b strings.Builder

	b.WriteString("<!DOCTYPE html>\n<html>\n<head><title>時刻表</title></head>\n<body>\n")
	fmt.Fprintf(&b, "<h1 class=\"station-name\">%s</h1>\n", p.Station)

	b.WriteString("<ul class=\"directionNavi\">\n")
	b.WriteString("<li class=\"directionNavi__item\"><a href=\"#\">その他方面</a></li>\n")
	fmt.Fprintf(&b, "<li class=\"directionNavi__item is-active\"><a href=\"#\">%s</a></li>\n", p.Direction)
	b.WriteString("</ul>\n")

	b.WriteString("<ul class=\"dayNavi\">\n")
	fmt.Fprintf(&b, "<li class=\"dayNavi__item is-active\"><a href=\"#\">%s</a></li>\n", p.Day)
	b.WriteString("<li class=\"dayNavi__item\"><a href=\"#\">土曜・休日</a></li>\n")
	b.WriteString("</ul>\n")

	if !p.NoTable {
		b.WriteString("<table class=\"tt-table\">\n<tbody>\n")
		for _, row := range p.Rows {
			b.WriteString("<tr>\n")
			if !row.NoHour {
				fmt.Fprintf(&b, "<th>%s</th>\n", row.Hour)
			}
			if !row.NoData {
				b.WriteString("<td>\n")
				for _, block := range row.Blocks {
					b.WriteString(block.html())
				}
				b.WriteString("</td>\n")
			}
			b.WriteString("</tr>\n")
		}
		b.WriteString("</tbody>\n</table>\n")
	}

	for _, section := range p.Legends {
		b.WriteString("<dl class=\"time-legend\">\n")
		fmt.Fprintf(&b, "<dt class=\"time-legend__head\">%s</dt>\n", section.Head)
		b.WriteString("<dd><ul>\n")
		for _, item := range section.Items {
			fmt.Fprintf(&b, "<li>%s</li>\n", item)
		}
		b.WriteString("</ul></dd>\n</dl>\n")
	}

	b.WriteString("</body>\n</html>\n")
	return b.String()
}

func (bl Block) html() string {
	var b strings.Builder

	classes := append([]string{"wrapTime"}, bl.Colors...)
	fmt.Fprintf(&b, "<div class=\"%s\">\n", strings.Join(classes, " "))

	if len(bl.Legends) > 0 {
		b.WriteString("<div class=\"wrapLegend\">")
		for _, legend := range bl.Legends {
			fmt.Fprintf(&b, "<span>%s</span>", legend)
		}
		b.WriteString("</div>\n")
	}

	if !bl.NoTime {
		fmt.Fprintf(&b, "<span class=\"time\">%s</span>\n", bl.Time)
	}

	b.WriteString("</div>\n")
	return b.String()
}
