package parser

import (
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/heathj/domtable/dom"
)

// ParseHTMLFragment parses input as the contents of context and returns the
// resulting top-level nodes, owned by the context's document and not yet
// attached anywhere.
// https://html.spec.whatwg.org/#html-fragment-parsing-algorithm
func ParseHTMLFragment(context *dom.Node, input string) ([]*dom.Node, error) {
	if !context.IsElement() {
		return nil, errors.New("fragment context must be an element")
	}

	ctx := &html.Node{
		Type:     html.ElementNode,
		Data:     context.LocalName,
		DataAtom: atom.Lookup([]byte(context.LocalName)),
	}
	switch context.NamespaceURI {
	case dom.Svgns:
		ctx.Namespace = "svg"
	case dom.Mathmlns:
		ctx.Namespace = "math"
	}

	nodes, err := html.ParseFragment(strings.NewReader(input), ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing fragment in <%s>", context.LocalName)
	}

	doc := context.OwnerDocument
	var out []*dom.Node
	for _, src := range nodes {
		n := convert(doc, src)
		if n == nil {
			continue
		}
		if err := appendChildren(doc, n, src); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

// SetInnerHTML replaces the children of context with the parsed input.
func SetInnerHTML(context *dom.Node, input string) error {
	nodes, err := ParseHTMLFragment(context, input)
	if err != nil {
		return err
	}
	for context.FirstChild != nil {
		context.FirstChild.Remove()
	}
	for _, n := range nodes {
		if _, err := context.AppendChild(n); err != nil {
			return errors.Wrap(err, "appending parsed fragment")
		}
	}
	return nil
}
