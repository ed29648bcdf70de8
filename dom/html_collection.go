package dom

import "weak"

type CollectionScope uint8

const (
	// Descendants matches every element below the root in tree order.
	Descendants CollectionScope = iota
	// Children matches only the root's element children.
	Children
)

// CollectionFilter decides membership of element e in a collection rooted at root.
type CollectionFilter func(root, e *Node) bool

// HTMLCollection is a live view over the elements under a root. Every read
// walks the tree again; membership is never cached.
// https://dom.spec.whatwg.org/#interface-htmlcollection
type HTMLCollection struct {
	root   weak.Pointer[Node]
	scope  CollectionScope
	filter CollectionFilter
}

func NewHTMLCollection(root *Node, scope CollectionScope, filter CollectionFilter) *HTMLCollection {
	return &HTMLCollection{
		root:   weak.Make(root),
		scope:  scope,
		filter: filter,
	}
}

// Root returns the collection root, or nil once it has been collected.
func (c *HTMLCollection) Root() *Node {
	return c.root.Value()
}

// Each calls f with every member in order until f returns false.
func (c *HTMLCollection) Each(f func(i int, e *Node) bool) {
	root := c.root.Value()
	if root == nil {
		return
	}

	i := 0
	visit := func(n *Node) bool {
		if !n.IsElement() || !c.filter(root, n) {
			return true
		}
		cont := f(i, n)
		i++
		return cont
	}

	switch c.scope {
	case Children:
		for child := root.FirstChild; child != nil; child = child.NextSibling {
			if !visit(child) {
				return
			}
		}
	default:
		Walk(root, visit)
	}
}

// https://dom.spec.whatwg.org/#dom-htmlcollection-length
func (c *HTMLCollection) Length() int {
	length := 0
	c.Each(func(int, *Node) bool {
		length++
		return true
	})
	return length
}

// https://dom.spec.whatwg.org/#dom-htmlcollection-item
func (c *HTMLCollection) Item(index int) *Node {
	var item *Node
	if index < 0 {
		return nil
	}
	c.Each(func(i int, e *Node) bool {
		if i == index {
			item = e
			return false
		}
		return true
	})
	return item
}

// https://dom.spec.whatwg.org/#dom-htmlcollection-nameditem
func (c *HTMLCollection) NamedItem(key string) *Node {
	var item *Node
	if key == "" {
		return nil
	}
	c.Each(func(_ int, e *Node) bool {
		if e.GetAttribute("id") == key || (e.IsHTMLElement() && e.GetAttribute("name") == key) {
			item = e
			return false
		}
		return true
	})
	return item
}

// All returns a snapshot of the current members.
func (c *HTMLCollection) All() NodeList {
	var all NodeList
	c.Each(func(_ int, e *Node) bool {
		all = append(all, e)
		return true
	})
	return all
}
