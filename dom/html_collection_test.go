package dom

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTMLCollectionLive(t *testing.T) {
	doc := NewHTMLDocumentNode()
	root := must(doc.AppendChild(doc.CreateElement("div")))
	byName := func(name string) CollectionFilter {
		return func(_, e *Node) bool { return e.LocalName == name }
	}

	spans := NewHTMLCollection(root, Descendants, byName("span"))
	childSpans := NewHTMLCollection(root, Children, byName("span"))
	assert.Equal(t, 0, spans.Length())
	assert.Nil(t, spans.Item(0))

	s1 := add(root, "span", "s1")
	p := add(root, "p")
	s2 := add(p, "span", "s2")
	s3 := add(root, "span")
	s3.SetAttribute("name", "third")
	must(root.AppendChild(NewTextNode(doc, "span")))

	assert.Equal(t, 3, spans.Length())
	assert.Equal(t, NodeList{s1, s2, s3}, spans.All())
	assert.Equal(t, NodeList{s1, s3}, childSpans.All())
	assert.Same(t, s2, spans.Item(1))
	assert.Nil(t, spans.Item(3))
	assert.Nil(t, spans.Item(-1))

	assert.Same(t, s2, spans.NamedItem("s2"))
	assert.Same(t, s3, spans.NamedItem("third"))
	assert.Nil(t, spans.NamedItem(""))
	assert.Nil(t, spans.NamedItem("missing"))

	must(root.InsertBefore(s3, s1))
	assert.Equal(t, NodeList{s3, s1, s2}, spans.All(), "order follows the tree")

	p.Remove()
	assert.Equal(t, NodeList{s3, s1}, spans.All(), "removed subtrees drop out")
	assert.Same(t, root, spans.Root())
}

func TestHTMLCollectionEachStops(t *testing.T) {
	doc := NewHTMLDocumentNode()
	root := doc.CreateElement("tbody")
	for i := 0; i < 5; i++ {
		add(root, "tr")
	}
	rows := NewHTMLCollection(root, Children, func(_, e *Node) bool { return true })

	visited := 0
	rows.Each(func(i int, _ *Node) bool {
		visited++
		return i < 1
	})
	assert.Equal(t, 2, visited)
}

func TestHTMLCollectionWeakRoot(t *testing.T) {
	rows := func() *HTMLCollection {
		doc := NewHTMLDocumentNode()
		tbl, _ := AsTable(doc.CreateElement("table"))
		_, err := tbl.InsertRow(0)
		if err != nil {
			panic(err)
		}
		return tbl.Rows()
	}()

	for i := 0; i < 5 && rows.Root() != nil; i++ {
		runtime.GC()
	}
	assert.Nil(t, rows.Root(), "collection does not keep its root alive")
	assert.Equal(t, 0, rows.Length())
	assert.Nil(t, rows.Item(0))
}
