package htmlq

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pkg/errors"
)

// domNode backs Node with a goquery selection over a parsed tree.
type domNode struct {
	sel *goquery.Selection
}

// ParseDOM parses the document into a tree-backed root Node.
func ParseDOM(htmlText string) (Node, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlText))
	if err != nil {
		return nil, errors.Wrap(err, "parsing html")
	}
	return domNode{sel: doc.Selection}, nil
}

func cssSelector(tag string, classes []string) string {
	var b strings.Builder
	b.WriteString(tag)
	for _, class := range classes {
		b.WriteByte('.')
		b.WriteString(class)
	}
	return b.String()
}

func (n domNode) Find(tag string, classes ...string) Node {
	sel := n.sel.Find(cssSelector(tag, classes)).First()
	if sel.Length() == 0 {
		return nil
	}
	return domNode{sel: sel}
}

func (n domNode) FindAll(tag string, classes ...string) []Node {
	var nodes []Node
	n.sel.Find(cssSelector(tag, classes)).Each(func(i int, sel *goquery.Selection) {
		nodes = append(nodes, domNode{sel: sel})
	})
	return nodes
}

func (n domNode) Classes() []string {
	return strings.Fields(n.sel.AttrOr("class", ""))
}

func (n domNode) Text() string {
	return n.sel.Text()
}
