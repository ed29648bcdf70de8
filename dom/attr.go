package dom

import "github.com/heathj/domtable/webidl"

// Attr is https://dom.spec.whatwg.org/#attr
type Attr struct {
	Namespace    Namespace
	Prefix       string
	LocalName    string
	Name         string
	Value        webidl.DOMString
	OwnerElement *Node
}

func NewAttr(name, value string, namespace Namespace, oe *Node) *Attr {
	return &Attr{
		Namespace:    namespace,
		LocalName:    name,
		Name:         name,
		Value:        webidl.DOMString(value),
		OwnerElement: oe,
	}
}
