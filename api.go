package airp

import (
	"io"

	"github.com/pkg/errors"
)

// Render formats the tree rooted at n as JSON text with no whitespace.
// It never fails; a nil n renders as null.
func Render(n Node, opts ...Option) string {
	return string(Append(nil, n, opts...))
}

// Append appends the JSON text of the tree rooted at n to dst.
func Append(dst []byte, n Node, opts ...Option) []byte {
	e := encodeState{opts: newOptions(opts)}
	return e.appendNode(dst, n)
}

// Encoder writes JSON documents to an output stream.
// An Encoder is not safe for concurrent use.
type Encoder struct {
	w   io.Writer
	e   encodeState
	buf []byte
}

// NewEncoder returns an encoder writing to w with the given options.
func NewEncoder(w io.Writer, opts ...Option) *Encoder {
	return &Encoder{w: w, e: encodeState{opts: newOptions(opts)}}
}

// Encode writes the tree rooted at n to the stream as one document.
// Only errors of the underlying writer are returned.
func (enc *Encoder) Encode(n Node) error {
	enc.buf = enc.e.appendNode(enc.buf[:0], n)
	if enc.e.opts.newline {
		enc.buf = append(enc.buf, '\n')
	}
	if _, err := enc.w.Write(enc.buf); err != nil {
		return errors.Wrap(err, "encode json document")
	}
	return nil
}
