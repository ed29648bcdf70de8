package dom

import "github.com/pkg/errors"

// DOMException is https://webidl.spec.whatwg.org/#idl-DOMException
type DOMException struct {
	Name    string
	Message string
}

// Sentinels for errors.Is. They match any exception with the same name.
var (
	ErrIndexSize        = &DOMException{Name: "IndexSizeError"}
	ErrHierarchyRequest = &DOMException{Name: "HierarchyRequestError"}
	ErrNotFound         = &DOMException{Name: "NotFoundError"}
)

// https://webidl.spec.whatwg.org/#dfn-error-names-table
var legacyCodes = map[string]int{
	"IndexSizeError":        1,
	"HierarchyRequestError": 3,
	"NotFoundError":         8,
}

func (e *DOMException) Error() string {
	if e.Message == "" {
		return e.Name
	}
	return e.Name + ": " + e.Message
}

// Code returns the legacy exception code, or 0 for names that have none.
func (e *DOMException) Code() int {
	return legacyCodes[e.Name]
}

func (e *DOMException) Is(target error) bool {
	t, ok := target.(*DOMException)
	return ok && t.Name == e.Name
}

func IndexSizeError(msg string) error {
	return errors.WithStack(&DOMException{Name: "IndexSizeError", Message: msg})
}

func HierarchyRequestError(msg string) error {
	return errors.WithStack(&DOMException{Name: "HierarchyRequestError", Message: msg})
}

func NotFoundError(msg string) error {
	return errors.WithStack(&DOMException{Name: "NotFoundError", Message: msg})
}

// must panics when a tree mutation that cannot fail did fail.
func must(n *Node, err error) *Node {
	if err != nil {
		panic(errors.Wrap(err, "tree invariant violated"))
	}
	return n
}
