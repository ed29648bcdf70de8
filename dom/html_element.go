package dom

import "golang.org/x/net/html/atom"

func NewHTMLElement(name string) *HTMLElement {
	elem := &HTMLElement{}
	switch atom.Lookup([]byte(name)) {
	case atom.Table:
		elem.HTMLTable = &HTMLTable{}
	}

	return elem
}

// https://html.spec.whatwg.org/#htmlelement
type HTMLElement struct {
	Title, Lang, Dir, AccessKey string
	Translate, Hidden           bool

	*HTMLTable
}

// HTMLTable holds the collections a table element materializes on first use.
type HTMLTable struct {
	rows, tBodies *HTMLCollection
}

// DefaultRole returns the implicit ARIA role of an HTML element, or "" when
// it has none.
// https://www.w3.org/TR/html-aria/#docconformance
func DefaultRole(n *Node) string {
	if !n.IsHTMLElement() {
		return ""
	}
	switch atom.Lookup([]byte(n.LocalName)) {
	case atom.Table:
		return "table"
	case atom.Caption:
		return "caption"
	case atom.Thead, atom.Tbody, atom.Tfoot:
		return "rowgroup"
	case atom.Tr:
		return "row"
	case atom.Time:
		return "time"
	}
	return ""
}
