package dom

import "github.com/heathj/domtable/webidl"

type Namespace uint

const (
	Htmlns Namespace = iota
	Mathmlns
	Svgns
	Xlinkns
	Xmlns
	Xmlnsns
)

// Element is an individual element in the tree.
// https://dom.spec.whatwg.org/#interface-element
type Element struct {
	NamespaceURI      Namespace
	Prefix, LocalName string
	Attributes        *NamedNodeMap

	*HTMLElement
}

func (e *Element) HasAttributes() bool {
	return e.Attributes.Length() > 0
}

func (e *Element) GetAttributeNames() []string {
	return e.Attributes.Names()
}

// GetAttribute returns the attribute value, or "" when it is absent.
func (e *Element) GetAttribute(qualifiedName string) string {
	if attr := e.Attributes.GetNamedItem(qualifiedName); attr != nil {
		return string(attr.Value)
	}
	return ""
}

// https://dom.spec.whatwg.org/#dom-element-setattribute
func (e *Element) SetAttribute(qualifiedName, value string) {
	qualifiedName = e.Attributes.normalize(qualifiedName)
	if attr := e.Attributes.Attrs[qualifiedName]; attr != nil {
		attr.Value = webidl.DOMString(value)
		return
	}
	e.Attributes.SetNamedItem(NewAttr(qualifiedName, value, Htmlns, e.Attributes.AssociatedElement))
}

func (e *Element) RemoveAttribute(qualifiedName string) {
	e.Attributes.RemoveNamedItem(qualifiedName)
}

func (e *Element) HasAttribute(qualifiedName string) bool {
	return e.Attributes.GetNamedItem(qualifiedName) != nil
}

func (e *Element) GetAttributeNode(qualifiedName string) *Attr {
	return e.Attributes.GetNamedItem(qualifiedName)
}
