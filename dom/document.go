package dom

import (
	"strings"

	"github.com/heathj/domtable/webidl"
)

// Document is https://dom.spec.whatwg.org/#interface-document
type Document struct {
	URL         webidl.USVString
	ContentType string
	Mode        string
	Type        string
}

// CreateElement creates an HTML element owned by the document n belongs to.
// https://dom.spec.whatwg.org/#dom-document-createelement
func (n *Node) CreateElement(localName string) *Node {
	doc := n
	if n.NodeType != DocumentNode {
		doc = n.OwnerDocument
	}
	if doc != nil && doc.Type == "html" {
		localName = strings.ToLower(localName)
	}
	return NewDOMElement(doc, localName, Htmlns)
}

// https://dom.spec.whatwg.org/#dom-document-documentelement
func (n *Node) DocumentElement() *Node {
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if child.IsElement() {
			return child
		}
	}
	return nil
}

func createElement(doc *Node, localName string) *Node {
	if doc == nil {
		return NewDOMElement(nil, localName, Htmlns)
	}
	return doc.CreateElement(localName)
}
