package airp

import (
	"io"

	"github.com/pkg/errors"
)

// Node is one node of a tree building a JSON document.
// Only *Scalar, *Array and *Object implement it:
//
//	Kind            Node
//	KindNull        *Scalar
//	KindBool        *Scalar
//	KindInt         *Scalar
//	KindUint        *Scalar
//	KindFloat32     *Scalar
//	KindFloat64     *Scalar
//	KindNumber      *Scalar
//	KindString      *Scalar
//	KindTime        *Scalar
//	KindArray       *Array[T]
//	KindObject      *Object
//
// A nil Node, or a nil pointer of any of the types above, renders as null.
type Node interface {
	// Kind returns the shape of the node.
	Kind() Kind
	// String formats the node as JSON with no whitespace and the default
	// options.
	String() string
	// MarshalJSON implements the json.Marshaler interface.
	MarshalJSON() ([]byte, error)
	// WriteJSON writes the same representation as String to w.
	WriteJSON(w io.Writer) (int, error)

	appendJSON(dst []byte, e *encodeState) []byte
	clone() Node
}

var (
	_ Node = (*Scalar)(nil)
	_ Node = (*Array[int])(nil)
	_ Node = (*Object)(nil)
)

func nodeString(n Node) string {
	var e encodeState
	return string(e.appendNode(nil, n))
}

func marshalNode(n Node) ([]byte, error) {
	var e encodeState
	return e.appendNode(nil, n), nil
}

func writeNode(w io.Writer, n Node) (int, error) {
	var e encodeState
	m, err := w.Write(e.appendNode(nil, n))
	if err != nil {
		return m, errors.Wrap(err, "write json")
	}
	return m, nil
}

// cloneNode returns an independently owned copy of n.
// nil nodes become an explicit null.
func cloneNode(n Node) Node {
	if n == nil {
		return Null()
	}
	return n.clone()
}
