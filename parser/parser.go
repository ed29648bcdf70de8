package parser

import (
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/html"

	"github.com/heathj/domtable/dom"
)

// Parser builds a dom tree from HTML source. Tokenization and tree
// construction are delegated to golang.org/x/net/html.
type Parser struct {
	input        io.Reader
	HTMLDocument *dom.Node
}

func NewParser(htmlIn io.Reader) *Parser {
	return &Parser{
		input:        htmlIn,
		HTMLDocument: dom.NewHTMLDocumentNode(),
	}
}

// Start parses the whole input and returns the document node.
func (p *Parser) Start() (*dom.Node, error) {
	root, err := html.Parse(p.input)
	if err != nil {
		return nil, errors.Wrap(err, "parsing html document")
	}

	if err := appendChildren(p.HTMLDocument, p.HTMLDocument, root); err != nil {
		return nil, err
	}
	logrus.WithField("method", "Start").Debugf("[PARSER] built document with %d children", len(p.HTMLDocument.ChildNodes))
	return p.HTMLDocument, nil
}

func appendChildren(doc, parent *dom.Node, src *html.Node) error {
	for c := src.FirstChild; c != nil; c = c.NextSibling {
		n := convert(doc, c)
		if n == nil {
			continue
		}
		if _, err := parent.AppendChild(n); err != nil {
			return errors.Wrapf(err, "appending %s to %s", n.NodeName, parent.NodeName)
		}
		if err := appendChildren(doc, n, c); err != nil {
			return err
		}
	}
	return nil
}

func convert(doc *dom.Node, src *html.Node) *dom.Node {
	switch src.Type {
	case html.ElementNode:
		e := dom.NewDOMElement(doc, src.Data, namespace(src.Namespace))
		for _, attr := range src.Attr {
			e.Attributes.SetNamedItem(dom.NewAttr(attr.Key, attr.Val, namespace(attr.Namespace), e))
		}
		return e
	case html.TextNode:
		return dom.NewTextNode(doc, src.Data)
	case html.CommentNode:
		return dom.NewComment(src.Data, doc)
	case html.DoctypeNode:
		var pub, sys string
		for _, attr := range src.Attr {
			switch attr.Key {
			case "public":
				pub = attr.Val
			case "system":
				sys = attr.Val
			}
		}
		return dom.NewDocTypeNode(src.Data, pub, sys)
	default:
		logrus.WithField("type", src.Type).Warn("[PARSER] skipping node")
		return nil
	}
}

func namespace(ns string) dom.Namespace {
	switch ns {
	case "svg":
		return dom.Svgns
	case "math":
		return dom.Mathmlns
	case "xlink":
		return dom.Xlinkns
	case "xml":
		return dom.Xmlns
	case "xmlns":
		return dom.Xmlnsns
	default:
		return dom.Htmlns
	}
}
