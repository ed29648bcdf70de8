package dom

import "golang.org/x/net/html/atom"

var (
	captionTag  = atom.Caption.String()
	colgroupTag = atom.Colgroup.String()
	theadTag    = atom.Thead.String()
	tbodyTag    = atom.Tbody.String()
	tfootTag    = atom.Tfoot.String()
	trTag       = atom.Tr.String()
)

// HTMLTableElement exposes the structured-child API of a table node. It is a
// thin view: all state lives on the node, so two views over the same node
// share their collections.
// https://html.spec.whatwg.org/multipage/tables.html#htmltableelement
type HTMLTableElement struct {
	*Node
}

// AsTable returns the table view of n, or false when n is not an HTML table.
func AsTable(n *Node) (*HTMLTableElement, bool) {
	if !n.IsHTML(atom.Table.String()) || n.HTMLTable == nil {
		return nil, false
	}
	return &HTMLTableElement{Node: n}, true
}

func (t *HTMLTableElement) firstChildOfType(localName string) *Node {
	for child := t.FirstChild; child != nil; child = child.NextSibling {
		if child.IsHTML(localName) {
			return child
		}
	}
	return nil
}

// https://html.spec.whatwg.org/multipage/tables.html#dom-table-caption
func (t *HTMLTableElement) Caption() *Node {
	return t.firstChildOfType(captionTag)
}

// SetCaption removes the current caption and inserts caption, if not nil, as
// the first child of the table. Only errors from the tree itself (such as
// inserting an ancestor of the table) are returned.
// https://html.spec.whatwg.org/multipage/tables.html#dom-table-caption
func (t *HTMLTableElement) SetCaption(caption *Node) error {
	t.DeleteCaption()

	if caption == nil {
		return nil
	}
	_, err := t.PreInsert(caption, t.FirstChild)
	return err
}

// https://html.spec.whatwg.org/multipage/tables.html#dom-table-createcaption
func (t *HTMLTableElement) CreateCaption() *Node {
	if caption := t.Caption(); caption != nil {
		return caption
	}

	caption := createElement(t.OwnerDocument, captionTag)
	return must(t.PreInsert(caption, t.FirstChild))
}

// https://html.spec.whatwg.org/multipage/tables.html#dom-table-deletecaption
func (t *HTMLTableElement) DeleteCaption() {
	if caption := t.Caption(); caption != nil {
		caption.Remove()
	}
}

// https://html.spec.whatwg.org/multipage/tables.html#dom-table-thead
func (t *HTMLTableElement) THead() *Node {
	return t.firstChildOfType(theadTag)
}

// SetTHead replaces the first thead child with thead. The new header goes
// before the first element that is neither a caption nor a colgroup, or at
// the end of the table.
// https://html.spec.whatwg.org/multipage/tables.html#dom-table-thead
func (t *HTMLTableElement) SetTHead(thead *Node) error {
	if thead != nil && !thead.IsHTML(theadTag) {
		return HierarchyRequestError("element is not thead")
	}

	t.DeleteTHead()

	if thead == nil {
		return nil
	}
	_, err := t.PreInsert(thead, t.theadInsertionPoint())
	return err
}

// https://html.spec.whatwg.org/multipage/tables.html#dom-table-createthead
func (t *HTMLTableElement) CreateTHead() *Node {
	if thead := t.THead(); thead != nil {
		return thead
	}

	thead := createElement(t.OwnerDocument, theadTag)
	return must(t.PreInsert(thead, t.theadInsertionPoint()))
}

// https://html.spec.whatwg.org/multipage/tables.html#dom-table-deletethead
func (t *HTMLTableElement) DeleteTHead() {
	if thead := t.THead(); thead != nil {
		thead.Remove()
	}
}

// theadInsertionPoint returns the first HTML element child that is neither a
// caption nor a colgroup. Non-element children and foreign elements are
// skipped.
func (t *HTMLTableElement) theadInsertionPoint() *Node {
	for child := t.FirstChild; child != nil; child = child.NextSibling {
		if !child.IsHTMLElement() {
			continue
		}
		if child.LocalName == captionTag || child.LocalName == colgroupTag {
			continue
		}
		return child
	}
	return nil
}

// https://html.spec.whatwg.org/multipage/tables.html#dom-table-tfoot
func (t *HTMLTableElement) TFoot() *Node {
	return t.firstChildOfType(tfootTag)
}

// SetTFoot replaces the first tfoot child with tfoot, appended at the end of
// the table.
// https://html.spec.whatwg.org/multipage/tables.html#dom-table-tfoot
func (t *HTMLTableElement) SetTFoot(tfoot *Node) error {
	if tfoot != nil && !tfoot.IsHTML(tfootTag) {
		return HierarchyRequestError("element is not tfoot")
	}

	t.DeleteTFoot()

	if tfoot == nil {
		return nil
	}
	_, err := t.AppendChild(tfoot)
	return err
}

// https://html.spec.whatwg.org/multipage/tables.html#dom-table-createtfoot
func (t *HTMLTableElement) CreateTFoot() *Node {
	if tfoot := t.TFoot(); tfoot != nil {
		return tfoot
	}

	tfoot := createElement(t.OwnerDocument, tfootTag)
	return must(t.AppendChild(tfoot))
}

// https://html.spec.whatwg.org/multipage/tables.html#dom-table-deletetfoot
func (t *HTMLTableElement) DeleteTFoot() {
	if tfoot := t.TFoot(); tfoot != nil {
		tfoot.Remove()
	}
}

// TBodies returns the live collection of tbody children.
// https://html.spec.whatwg.org/multipage/tables.html#dom-table-tbodies
func (t *HTMLTableElement) TBodies() *HTMLCollection {
	if t.tBodies == nil {
		t.tBodies = NewHTMLCollection(t.Node, Children, func(_, e *Node) bool {
			return e.IsHTML(tbodyTag)
		})
	}
	return t.tBodies
}

// CreateTBody inserts a new tbody right after the last tbody child, or at the
// end of the table when there is none. A tfoot following the last tbody does
// not move the insertion point.
// https://html.spec.whatwg.org/multipage/tables.html#dom-table-createtbody
func (t *HTMLTableElement) CreateTBody() *Node {
	tbody := createElement(t.OwnerDocument, tbodyTag)

	var ref *Node
	for child := t.LastChild; child != nil; child = child.PreviousSibling {
		if child.IsHTML(tbodyTag) {
			ref = child.NextSibling
			break
		}
	}

	return must(t.PreInsert(tbody, ref))
}

// Rows returns the live collection of rows that belong to the table: tr
// children of the table and tr children of its thead, tbody and tfoot
// children. Members are in tree order.
// https://html.spec.whatwg.org/multipage/tables.html#dom-table-rows
func (t *HTMLTableElement) Rows() *HTMLCollection {
	if t.rows == nil {
		t.rows = NewHTMLCollection(t.Node, Descendants, isTableRow)
	}
	return t.rows
}

func isTableRow(table, e *Node) bool {
	if !e.IsHTML(trTag) {
		return false
	}

	parent := e.ParentElement()
	if parent == table {
		return true
	}
	if parent == nil || parent.ParentNode != table {
		return false
	}
	switch parent.LocalName {
	case theadTag, tbodyTag, tfootTag:
		return true
	}
	return false
}

// lastRowDescendant returns the last tr element under the table in tree
// order, whether or not it belongs to the rows collection.
func (t *HTMLTableElement) lastRowDescendant() *Node {
	var last *Node
	Walk(t.Node, func(n *Node) bool {
		if n.IsHTML(trTag) {
			last = n
		}
		return true
	})
	return last
}

// InsertRow creates a tr and inserts it at index of the rows collection.
// -1 or the row count append after the last row. A table without any row
// gets a new tbody holding the row.
// https://html.spec.whatwg.org/multipage/tables.html#dom-table-insertrow
func (t *HTMLTableElement) InsertRow(index int) (*Node, error) {
	rows := t.Rows()
	length := rows.Length()

	if index < -1 || index > length {
		return nil, IndexSizeError("index is negative or greater than the number of rows")
	}

	tr := createElement(t.OwnerDocument, trTag)
	switch {
	case length == 0:
		last := t.lastRowDescendant()
		if last == nil {
			tbody := createElement(t.OwnerDocument, tbodyTag)
			must(tbody.AppendChild(tr))
			must(t.AppendChild(tbody))
			break
		}
		// Rows exist below the table but none of them belong to it, e.g.
		// under a div child. The new row joins the last of them.
		must(last.ParentNode.AppendChild(tr))
	case index == -1 || index == length:
		must(rows.Item(length - 1).ParentNode.AppendChild(tr))
	default:
		ref := rows.Item(index)
		must(ref.ParentNode.InsertBefore(tr, ref))
	}

	return tr, nil
}

// https://html.spec.whatwg.org/multipage/tables.html#dom-table-deleterow
func (t *HTMLTableElement) DeleteRow(index int) error {
	rows := t.Rows()
	length := rows.Length()

	if index < -1 || index >= length {
		return IndexSizeError("index is negative or greater than or equal to the number of rows")
	}

	if index == -1 {
		if length == 0 {
			return nil
		}
		index = length - 1
	}

	rows.Item(index).Remove()
	return nil
}
