package htmlq

import (
	"html"
	"regexp"
	"strings"
	"sync"
)

// scanNode backs Node with regular expression scans over raw markup.
// It never builds a tree: each lookup re-scans the element's inner
// HTML. Unbalanced or truncated markup degrades to empty results
// instead of failing, which is the contract extraction relies on.
type scanNode struct {
	tag   string
	attrs string
	inner string
}

// ParseScan wraps a document for the scanner backend. It cannot fail;
// garbage input just yields empty results from later lookups.
func ParseScan(htmlText string) Node {
	return scanNode{inner: htmlText}
}

var (
	reMu     sync.Mutex
	openRes  = map[string]*regexp.Regexp{}
	closeRes = map[string]*regexp.Regexp{}

	tagRe       = regexp.MustCompile(`(?s)<[^>]*>`)
	classAttrRe = regexp.MustCompile(`class\s*=\s*(?:"([^"]*)"|'([^']*)'|([^\s>]+))`)
)

func openRe(tag string) *regexp.Regexp {
	reMu.Lock()
	defer reMu.Unlock()
	re, found := openRes[tag]
	if !found {
		re = regexp.MustCompile(`(?s)<` + tag + `(\s[^>]*?)?/?>`)
		openRes[tag] = re
	}
	return re
}

func closeRe(tag string) *regexp.Regexp {
	reMu.Lock()
	defer reMu.Unlock()
	re, found := closeRes[tag]
	if !found {
		re = regexp.MustCompile(`</` + tag + `\s*>`)
		closeRes[tag] = re
	}
	return re
}

func (n scanNode) Find(tag string, classes ...string) Node {
	if matches := n.scan(tag, classes, true); len(matches) > 0 {
		return matches[0]
	}
	return nil
}

func (n scanNode) FindAll(tag string, classes ...string) []Node {
	var nodes []Node
	for _, m := range n.scan(tag, classes, false) {
		nodes = append(nodes, m)
	}
	return nodes
}

func (n scanNode) Classes() []string {
	m := classAttrRe.FindStringSubmatch(n.attrs)
	if m == nil {
		return nil
	}
	for _, group := range m[1:] {
		if group != "" {
			return strings.Fields(group)
		}
	}
	return nil
}

func (n scanNode) Text() string {
	return html.UnescapeString(tagRe.ReplaceAllString(n.inner, ""))
}

// scan walks the element's inner HTML for opening tags. Matches are
// reported in document order, nested ones included, mirroring the
// descendant semantics of the tree backend.
func (n scanNode) scan(tag string, classes []string, firstOnly bool) []scanNode {
	var out []scanNode
	src := n.inner
	open := openRe(tag)

	offset := 0
	for offset < len(src) {
		loc := open.FindStringSubmatchIndex(src[offset:])
		if loc == nil {
			break
		}
		start, end := offset+loc[0], offset+loc[1]

		attrs := ""
		if loc[2] >= 0 {
			attrs = src[offset+loc[2] : offset+loc[3]]
		}

		inner := ""
		if !strings.HasSuffix(src[start:end], "/>") {
			inner = innerHTML(src, end, tag)
		}

		node := scanNode{tag: tag, attrs: attrs, inner: inner}
		if hasTokens(node.Classes(), classes) {
			out = append(out, node)
			if firstOnly {
				return out
			}
		}

		// Continue right after the opening tag so nested elements
		// are seen too.
		offset = end
	}
	return out
}

// innerHTML returns the body of the element whose opening tag ends at
// from, balancing nested elements of the same tag. An element with no
// closing tag runs to the end of the document.
func innerHTML(src string, from int, tag string) string {
	open := openRe(tag)
	closing := closeRe(tag)

	depth := 1
	pos := from
	for {
		rel := src[pos:]
		closeLoc := closing.FindStringIndex(rel)
		if closeLoc == nil {
			return src[from:]
		}
		openLoc := open.FindStringIndex(rel)
		if openLoc != nil && openLoc[0] < closeLoc[0] {
			if !strings.HasSuffix(rel[openLoc[0]:openLoc[1]], "/>") {
				depth++
			}
			pos += openLoc[1]
			continue
		}
		depth--
		if depth == 0 {
			return src[from : pos+closeLoc[0]]
		}
		pos += closeLoc[1]
	}
}
