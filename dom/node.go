package dom

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/sirupsen/logrus"
)

type NodeType uint16

const (
	ElementNode NodeType = iota + 1
	AttrNode
	TextNode
	CDATASectionNode
	ProcessingInstructionNode
	CommentNode
	DocumentNode
	DocumentTypeNode
	DocumentFragmentNode
)

// NewComment returns a comment node with its Data section filled.
func NewComment(data string, od *Node) *Node {
	return &Node{
		NodeType:      CommentNode,
		NodeName:      "#comment",
		OwnerDocument: od,
		Comment: &Comment{
			CharacterData: &CharacterData{
				Data:   data,
				Length: len(data),
			},
		}}
}

func NewHTMLDocumentNode() *Node {
	return &Node{
		NodeType: DocumentNode,
		NodeName: "#document",
		Document: &Document{Type: "html", ContentType: "text/html", Mode: "no-quirks"},
	}
}

func NewTextNode(od *Node, text string) *Node {
	return &Node{
		NodeType:      TextNode,
		NodeName:      "#text",
		OwnerDocument: od,
		Text: &Text{
			CharacterData: &CharacterData{
				Data:   text,
				Length: len(text),
			},
		},
	}
}

func NewDocTypeNode(name, pub, sys string) *Node {
	return &Node{
		NodeType: DocumentTypeNode,
		NodeName: name,
		DocumentType: &DocumentType{
			Name:     name,
			PublicID: pub,
			SystemID: sys,
		},
	}
}

func NewDocumentFragment(od *Node) *Node {
	return &Node{
		NodeType:      DocumentFragmentNode,
		NodeName:      "#document-fragment",
		OwnerDocument: od,
	}
}

// NewDOMElement creates an element owned by od. Elements in the HTML namespace
// get an HTMLElement carrying their per-tag state.
func NewDOMElement(od *Node, name string, namespace Namespace, optionals ...string) *Node {
	var prefix string
	if len(optionals) >= 1 {
		prefix = optionals[0]
	}
	n := &Node{
		NodeType:      ElementNode,
		NodeName:      name,
		OwnerDocument: od,
		Element: &Element{
			NamespaceURI: namespace,
			Prefix:       prefix,
			LocalName:    name,
		},
	}
	if namespace == Htmlns {
		n.HTMLElement = NewHTMLElement(name)
	}

	n.Attributes = NewNamedNodeMap(nil, n)
	return n
}

// https://dom.spec.whatwg.org/#node
type Node struct {
	NodeType                                                        NodeType
	NodeName                                                        string
	OwnerDocument                                                   *Node
	ParentNode, FirstChild, LastChild, PreviousSibling, NextSibling *Node
	ChildNodes                                                      NodeList

	// Node types
	*Element
	*Text
	*Comment
	*Document
	*DocumentType
}

func (n *Node) IsElement() bool {
	return n != nil && n.NodeType == ElementNode && n.Element != nil
}

func (n *Node) IsHTMLElement() bool {
	return n.IsElement() && n.NamespaceURI == Htmlns
}

// IsHTML reports whether n is an HTML element with the given local name.
func (n *Node) IsHTML(localName string) bool {
	return n.IsHTMLElement() && n.LocalName == localName
}

// https://dom.spec.whatwg.org/#dom-node-parentelement
func (n *Node) ParentElement() *Node {
	if n.ParentNode.IsElement() {
		return n.ParentNode
	}
	return nil
}

func (n *Node) HasChildNodes() bool {
	return n.FirstChild != nil
}

// https://dom.spec.whatwg.org/#dom-node-contains
func (n *Node) Contains(on *Node) bool {
	for i := on; i != nil; i = i.ParentNode {
		if i == n {
			return true
		}
	}
	return false
}

func (n *Node) CloneNodeDef() *Node {
	return n.CloneNode(false)
}

// https://dom.spec.whatwg.org/#concept-node-clone
func (n *Node) CloneNode(deep bool) *Node {
	var copy *Node
	switch n.NodeType {
	case ElementNode:
		copy = NewDOMElement(n.OwnerDocument, n.LocalName, n.NamespaceURI, n.Prefix)
		for _, name := range n.Attributes.Names() {
			attr := n.Attributes.Attrs[name]
			copy.Attributes.SetNamedItem(NewAttr(attr.Name, string(attr.Value), attr.Namespace, copy))
		}
	case TextNode:
		copy = NewTextNode(n.OwnerDocument, n.Text.Data)
	case CommentNode:
		copy = NewComment(n.Comment.Data, n.OwnerDocument)
	case DocumentTypeNode:
		copy = NewDocTypeNode(n.DocumentType.Name, n.PublicID, n.SystemID)
	case DocumentFragmentNode:
		copy = NewDocumentFragment(n.OwnerDocument)
	case DocumentNode:
		copy = NewHTMLDocumentNode()
		*copy.Document = *n.Document
	default:
		copy = &Node{NodeType: n.NodeType, NodeName: n.NodeName, OwnerDocument: n.OwnerDocument}
	}

	if deep {
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			copy.insert(child.CloneNode(true), nil)
		}
	}
	return copy
}

// https://dom.spec.whatwg.org/#concept-tree-root
func (n *Node) getRoot() *Node {
	var prev *Node
	for i := n; i != nil; i = i.ParentNode {
		prev = i
	}

	return prev
}

// https://dom.spec.whatwg.org/#concept-node-ensure-pre-insertion-validity
func (n *Node) ensurePreInsertionValidity(node, child *Node) error {
	switch n.NodeType {
	case DocumentNode, DocumentFragmentNode, ElementNode:
	default:
		return HierarchyRequestError("parent cannot have children")
	}

	if node == nil {
		return HierarchyRequestError("node is null")
	}

	if node.Contains(n) {
		return HierarchyRequestError("node is an inclusive ancestor of the parent")
	}

	if child != nil && child.ParentNode != n {
		return NotFoundError("reference child is not a child of the parent")
	}

	switch node.NodeType {
	case DocumentNode, AttrNode:
		return HierarchyRequestError("node cannot be inserted")
	case TextNode:
		if n.NodeType == DocumentNode {
			return HierarchyRequestError("text cannot be a child of a document")
		}
	case DocumentTypeNode:
		if n.NodeType != DocumentNode {
			return HierarchyRequestError("doctype must be a child of a document")
		}
	}

	return nil
}

// PreInsert inserts node into n before child, appending when child is nil.
// https://dom.spec.whatwg.org/#concept-node-pre-insert
func (n *Node) PreInsert(node, child *Node) (*Node, error) {
	if err := n.ensurePreInsertionValidity(node, child); err != nil {
		return nil, err
	}

	ref := child
	if ref == node {
		ref = node.NextSibling
	}

	n.insert(node, ref)
	return node, nil
}

// https://dom.spec.whatwg.org/#dom-node-insertbefore
func (n *Node) InsertBefore(on, child *Node) (*Node, error) {
	return n.PreInsert(on, child)
}

// https://dom.spec.whatwg.org/#dom-node-appendchild
func (n *Node) AppendChild(on *Node) (*Node, error) {
	return n.PreInsert(on, nil)
}

// https://dom.spec.whatwg.org/#dom-node-removechild
func (n *Node) RemoveChild(child *Node) (*Node, error) {
	if child == nil || child.ParentNode != n {
		return nil, NotFoundError("node to remove is not a child of the parent")
	}

	n.remove(child)
	return child, nil
}

// Remove detaches n from its parent. It is a no-op for a node without one.
// https://dom.spec.whatwg.org/#dom-childnode-remove
func (n *Node) Remove() {
	if n.ParentNode == nil {
		return
	}
	n.ParentNode.remove(n)
}

// https://dom.spec.whatwg.org/#concept-node-insert
func (n *Node) insert(node, child *Node) {
	var old string
	tracing := logrus.IsLevelEnabled(logrus.TraceLevel)
	if tracing {
		old = n.getRoot().String()
	}

	if node.ParentNode != nil {
		node.ParentNode.unlink(node)
	}

	node.ParentNode = n
	node.NextSibling = child
	if child == nil {
		node.PreviousSibling = n.LastChild
		if n.LastChild != nil {
			n.LastChild.NextSibling = node
		} else {
			n.FirstChild = node
		}
		n.LastChild = node
		n.ChildNodes = append(n.ChildNodes, node)
	} else {
		node.PreviousSibling = child.PreviousSibling
		if child.PreviousSibling != nil {
			child.PreviousSibling.NextSibling = node
		} else {
			n.FirstChild = node
		}
		child.PreviousSibling = node
		n.ChildNodes.WedgeIn(n.ChildNodes.Contains(child), node)
	}
	if n.NodeType == DocumentNode {
		node.adopt(n)
	} else if n.OwnerDocument != nil {
		node.adopt(n.OwnerDocument)
	}

	logrus.WithFields(logrus.Fields{
		"method": "insert",
		"parent": n.NodeName,
		"node":   node.NodeName,
	}).Debug("[TREE] inserted node")
	if tracing {
		PrintDiff(old, n.getRoot().String(), "insert")
	}
}

// https://dom.spec.whatwg.org/#concept-node-remove
func (n *Node) remove(child *Node) {
	var old string
	tracing := logrus.IsLevelEnabled(logrus.TraceLevel)
	if tracing {
		old = n.getRoot().String()
	}

	n.unlink(child)

	logrus.WithFields(logrus.Fields{
		"method": "remove",
		"parent": n.NodeName,
		"node":   child.NodeName,
	}).Debug("[TREE] removed node")
	if tracing {
		PrintDiff(old, n.getRoot().String(), "remove")
	}
}

func (n *Node) unlink(child *Node) {
	if child.PreviousSibling != nil {
		child.PreviousSibling.NextSibling = child.NextSibling
	} else {
		n.FirstChild = child.NextSibling
	}
	if child.NextSibling != nil {
		child.NextSibling.PreviousSibling = child.PreviousSibling
	} else {
		n.LastChild = child.PreviousSibling
	}
	n.ChildNodes.Remove(n.ChildNodes.Contains(child))
	child.ParentNode, child.PreviousSibling, child.NextSibling = nil, nil, nil
}

// https://dom.spec.whatwg.org/#concept-node-adopt
func (n *Node) adopt(doc *Node) {
	if n.OwnerDocument == doc {
		return
	}
	n.OwnerDocument = doc
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		child.adopt(doc)
	}
}

// Walk calls f for every descendant of root in tree order. Returning false
// from f stops the walk.
func Walk(root *Node, f func(*Node) bool) {
	for n := root.FirstChild; n != nil; {
		if !f(n) {
			return
		}
		if n.FirstChild != nil {
			n = n.FirstChild
			continue
		}
		for n != root && n.NextSibling == nil {
			n = n.ParentNode
		}
		if n == root {
			return
		}
		n = n.NextSibling
	}
}

func serializeNodeType(node *Node, ident int) string {
	switch node.NodeType {
	case ElementNode:
		e := "<"
		switch node.Element.NamespaceURI {
		case Svgns:
			e += "svg "
		case Mathmlns:
			e += "math "
		}
		e += node.LocalName + ">"
		spaces := "| "
		for i := 1; i < ident; i++ {
			spaces += "  "
		}
		for _, name := range node.Attributes.Names() {
			attr := node.Attributes.Attrs[name]
			var ns string
			switch attr.Namespace {
			case Xmlnsns:
				ns = "xmlns "
			case Xmlns:
				ns = "xml "
			case Xlinkns:
				ns = "xlink "
			}
			e += "\n" + spaces + ns + attr.LocalName + "=\"" + string(attr.Value) + "\""
		}
		return e
	case TextNode:
		return "\"" + node.Text.Data + "\""
	case CommentNode:
		return "<!-- " + node.Comment.Data + " -->"
	case DocumentTypeNode:
		d := "<!DOCTYPE " + node.DocumentType.Name
		if len(node.PublicID) != 0 || len(node.SystemID) != 0 {
			d += " \"" + node.PublicID + "\" \"" + node.SystemID + "\""
		}
		return d + ">"
	case DocumentNode:
		return "#document"
	case DocumentFragmentNode:
		return "#document-fragment"
	default:
		logrus.WithField("type", node.NodeType).Warn("cannot serialize node")
		return ""
	}
}

func (node *Node) serialize(ident int) string {
	ser := serializeNodeType(node, ident+1) + "\n"
	if ident > 0 {
		spaces := "| "
		for i := 1; i < ident; i++ {
			spaces += "  "
		}
		ser = spaces + ser
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		ser += child.serialize(ident + 1)
	}

	return ser
}

// String dumps the subtree rooted at node in the html5lib tree-construction
// test format. Documents and fragments print their marker line unprefixed.
func (node *Node) String() string {
	ident := 1
	if node.NodeType == DocumentNode || node.NodeType == DocumentFragmentNode {
		ident = 0
	}
	return strings.TrimRight(node.serialize(ident), "\n")
}

func PrintDiff(a, b, method string) {
	if a == b {
		return
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(a, b, true)
	logrus.WithField("method", method).Tracef("[TREE]: %s\n\n", dmp.DiffPrettyText(diffs))
}
