package dom

import (
	"sort"
	"strings"
)

// NewNamedNodeMap builds the attribute list of oe from plain name/value pairs.
func NewNamedNodeMap(attrs map[string]string, oe *Node) *NamedNodeMap {
	a := make(map[string]*Attr, len(attrs))
	for k, v := range attrs {
		a[k] = NewAttr(k, v, Htmlns, oe)
	}
	return &NamedNodeMap{
		Attrs:             a,
		AssociatedElement: oe,
	}
}

// https://dom.spec.whatwg.org/#interface-namednodemap
type NamedNodeMap struct {
	Attrs             map[string]*Attr
	AssociatedElement *Node
}

func (n *NamedNodeMap) Length() int {
	return len(n.Attrs)
}

// Names returns the attribute names in sorted order.
func (n *NamedNodeMap) Names() []string {
	keys := make([]string, 0, len(n.Attrs))
	for k := range n.Attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// https://dom.spec.whatwg.org/#concept-element-attributes-get-by-name
func (n *NamedNodeMap) normalize(qn string) string {
	oe := n.AssociatedElement
	if oe != nil && oe.IsHTMLElement() &&
		oe.OwnerDocument != nil &&
		oe.OwnerDocument.NodeType == DocumentNode &&
		oe.OwnerDocument.Type == "html" {
		return strings.ToLower(qn)
	}
	return qn
}

func (n *NamedNodeMap) GetNamedItem(qn string) *Attr {
	if v, ok := n.Attrs[n.normalize(qn)]; ok {
		return v
	}

	return nil
}

// SetNamedItem stores s and returns the attribute it replaced, if any.
func (n *NamedNodeMap) SetNamedItem(s *Attr) *Attr {
	if s == nil {
		return nil
	}
	s.OwnerElement = n.AssociatedElement

	old := n.Attrs[s.Name]
	n.Attrs[s.Name] = s
	return old
}

func (n *NamedNodeMap) RemoveNamedItem(qn string) *Attr {
	qn = n.normalize(qn)
	old, ok := n.Attrs[qn]
	if !ok {
		return nil
	}
	delete(n.Attrs, qn)
	old.OwnerElement = nil
	return old
}
