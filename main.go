package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/heathj/domtable/dom"
	"github.com/heathj/domtable/parser"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/html/atom"
)

type cmdopts struct {
	File    string `short:"f" long:"file" description:"HTML input, defaults to stdin"`
	Verbose bool   `short:"v" long:"verbose" description:"log tree mutations"`
	Trace   bool   `long:"trace" description:"log a diff of the tree after each mutation"`
}

func main() {
	os.Exit(_main())
}

func showUsage() {
	fmt.Printf(`Usage : domtable [options] operations ...
	Parse an HTML document, apply the operations to its first table and dump the table
	-f, --file : read the document from a file instead of stdin
	-v, --verbose : log tree mutations
	--trace : log a diff of the tree after each mutation
Operations:
	caption rows tbodies hints
	createCaption deleteCaption createTHead deleteTHead
	createTFoot deleteTFoot createTBody
	insertRow:<index> deleteRow:<index>
`)
}

func _main() int {
	opts := cmdopts{}
	args, err := flags.ParseArgs(&opts, os.Args[1:])
	if err != nil {
		showUsage()
		return 1
	}

	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	switch {
	case opts.Trace:
		logrus.SetLevel(logrus.TraceLevel)
	case opts.Verbose:
		logrus.SetLevel(logrus.DebugLevel)
	default:
		logrus.SetLevel(logrus.WarnLevel)
	}

	var in io.Reader = os.Stdin
	if opts.File != "" {
		fh, err := os.Open(opts.File)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", err)
			return 1
		}
		defer fh.Close()
		in = fh
	}

	if err := run(in, os.Stdout, args); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		return 1
	}
	return 0
}

// run parses the document read from in, applies ops to its first table and
// writes the results followed by the table dump to out.
func run(in io.Reader, out io.Writer, ops []string) error {
	doc, err := parser.NewParser(in).Start()
	if err != nil {
		return err
	}

	table := firstTable(doc)
	if table == nil {
		return errors.New("document has no table")
	}

	for _, op := range ops {
		if err := apply(table, op, out); err != nil {
			return errors.Wrapf(err, "%s", op)
		}
	}

	fmt.Fprintln(out, table.String())
	return nil
}

func firstTable(doc *dom.Node) *dom.HTMLTableElement {
	var table *dom.HTMLTableElement
	dom.Walk(doc, func(n *dom.Node) bool {
		if t, ok := dom.AsTable(n); ok {
			table = t
			return false
		}
		return true
	})
	return table
}

func parseIndex(op, arg string) (int, error) {
	if arg == "" {
		return 0, errors.Errorf("%s needs an index", op)
	}
	i, err := strconv.Atoi(arg)
	if err != nil {
		return 0, errors.Wrap(err, "invalid index")
	}
	return i, nil
}

func apply(t *dom.HTMLTableElement, op string, out io.Writer) error {
	name, arg, _ := strings.Cut(op, ":")
	switch name {
	case "caption":
		if c := t.Caption(); c != nil {
			fmt.Fprintf(out, "caption: %q\n", textContent(c))
		} else {
			fmt.Fprintln(out, "caption: none")
		}
	case "createCaption":
		t.CreateCaption()
	case "deleteCaption":
		t.DeleteCaption()
	case "createTHead":
		t.CreateTHead()
	case "deleteTHead":
		t.DeleteTHead()
	case "createTFoot":
		t.CreateTFoot()
	case "deleteTFoot":
		t.DeleteTFoot()
	case "createTBody":
		t.CreateTBody()
	case "insertRow":
		i, err := parseIndex(name, arg)
		if err != nil {
			return err
		}
		if _, err := t.InsertRow(i); err != nil {
			return err
		}
	case "deleteRow":
		i, err := parseIndex(name, arg)
		if err != nil {
			return err
		}
		if err := t.DeleteRow(i); err != nil {
			return err
		}
	case "rows":
		fmt.Fprintf(out, "rows: %d\n", t.Rows().Length())
		t.Rows().Each(func(i int, e *dom.Node) bool {
			fmt.Fprintf(out, "  %d %s\n", i, describe(e))
			return true
		})
	case "tbodies":
		fmt.Fprintf(out, "tbodies: %d\n", t.TBodies().Length())
		t.TBodies().Each(func(i int, e *dom.Node) bool {
			fmt.Fprintf(out, "  %d %s\n", i, describe(e))
			return true
		})
	case "hints":
		hints := t.PresentationalHints()
		for _, prop := range []string{"width", "height", "background-color"} {
			if v, ok := hints[prop]; ok {
				fmt.Fprintf(out, "%s: %s\n", prop, v)
			}
		}
	default:
		return errors.New("unknown operation")
	}
	return nil
}

// describe names an element by its parent and its id, if any.
func describe(e *dom.Node) string {
	s := e.LocalName
	if id := e.GetAttribute(atom.Id.String()); id != "" {
		s += "#" + id
	}
	if p := e.ParentElement(); p != nil {
		s = p.LocalName + " > " + s
	}
	return s
}

func textContent(n *dom.Node) string {
	var sb strings.Builder
	dom.Walk(n, func(c *dom.Node) bool {
		if c.NodeType == dom.TextNode {
			sb.WriteString(c.Text.Data)
		}
		return true
	})
	return sb.String()
}
