// Package htmlq is a minimal element-tree query layer over an HTML
// document: find by tag and class tokens, read text and class lists.
// Two backends implement the same contract: a parse-tree backend on
// goquery (dom.go) and a permissive pattern-matching scanner
// (scan.go). Extraction code is written against Node only, so the
// backends are interchangeable.
package htmlq

// Node is one element (or the document root). Lookups are permissive:
// a missing element yields nil from Find and an empty slice from
// FindAll, never an error.
type Node interface {
	// Find returns the first descendant with the given tag carrying
	// every listed class token, or nil.
	Find(tag string, classes ...string) Node

	// FindAll returns all such descendants in document order.
	FindAll(tag string, classes ...string) []Node

	// Classes returns the element's class tokens. Empty for the
	// document root.
	Classes() []string

	// Text returns the element's text content, entities decoded,
	// tags stripped. Leading and trailing whitespace is kept; callers
	// trim as needed.
	Text() string
}

func hasTokens(tokens []string, want []string) bool {
	for _, w := range want {
		found := false
		for _, t := range tokens {
			if t == w {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
