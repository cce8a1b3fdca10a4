package airp

import (
	"io"
	"time"
)

// Object is a JSON object mapping unique keys to nodes.
//
// Setting an existing key replaces its node. Keys render in the order they
// were first set; replacing a key keeps its position. Consumers of the
// rendered text should still not rely on key order, as JSON gives it no
// meaning.
//
// Every node passed to an Object is copied, so a tree never shares nodes
// with the caller or with itself. The zero value is an empty object ready
// to use.
type Object struct {
	keys   []string
	fields map[string]Node
}

// NewObject creates an empty object.
func NewObject() *Object {
	return &Object{fields: make(map[string]Node)}
}

// Set stores a copy of n under key, replacing any previous node, and
// returns o. A nil n is stored as null.
func (o *Object) Set(key string, n Node) *Object {
	o.put(key, cloneNode(n))
	return o
}

// put stores n without copying it. n must not be referenced elsewhere.
func (o *Object) put(key string, n Node) {
	if o.fields == nil {
		o.fields = make(map[string]Node)
	}
	if _, ok := o.fields[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.fields[key] = n
}

// Field stores the scalar v under key in o and returns o.
func Field[T Leaf](o *Object, key string, v T) *Object {
	o.put(key, Value(v))
	return o
}

// Str stores the string v under key.
func (o *Object) Str(key, v string) *Object {
	o.put(key, Value(v))
	return o
}

// Bool stores the boolean v under key.
func (o *Object) Bool(key string, v bool) *Object {
	o.put(key, Value(v))
	return o
}

// Int stores the signed integer v under key.
func (o *Object) Int(key string, v int64) *Object {
	o.put(key, Value(v))
	return o
}

// Uint stores the unsigned integer v under key.
func (o *Object) Uint(key string, v uint64) *Object {
	o.put(key, Value(v))
	return o
}

// Float stores v under key. NaN and ±Inf follow the render call's NonFinitePolicy.
func (o *Object) Float(key string, v float64) *Object {
	o.put(key, Value(v))
	return o
}

// Float32 stores v under key, formatted with 32-bit precision.
func (o *Object) Float32(key string, v float32) *Object {
	o.put(key, Value(v))
	return o
}

// Time stores v under key. It renders as "YYYY-MM-DDTHH:MM:SS" using the
// wall clock of v's location.
func (o *Object) Time(key string, v time.Time) *Object {
	o.put(key, Value(v))
	return o
}

// Null stores null under key.
func (o *Object) Null(key string) *Object {
	o.put(key, Null())
	return o
}

// Object stores a copy of v under key.
func (o *Object) Object(key string, v *Object) *Object {
	return o.Set(key, v)
}

// Get returns the node stored under key. The node is owned by o.
func (o *Object) Get(key string) (Node, bool) {
	if o == nil {
		return nil, false
	}
	n, ok := o.fields[key]
	return n, ok
}

// Keys returns the keys of o in render order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	return append([]string(nil), o.keys...)
}

// Len gives the number of keys in o.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Clone returns a deep copy of o.
func (o *Object) Clone() *Object {
	if o == nil {
		return nil
	}
	c := &Object{
		keys:   append([]string(nil), o.keys...),
		fields: make(map[string]Node, len(o.fields)),
	}
	for k, n := range o.fields {
		c.fields[k] = n.clone()
	}
	return c
}

// Kind returns KindObject, or KindNull for a nil object.
func (o *Object) Kind() Kind {
	if o == nil {
		return KindNull
	}
	return KindObject
}

func (o *Object) appendJSON(dst []byte, e *encodeState) []byte {
	if o == nil {
		return append(dst, "null"...)
	}
	dst = append(dst, '{')
	for i, k := range o.keys {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = e.appendString(dst, k)
		dst = append(dst, ':')
		dst = o.fields[k].appendJSON(dst, e)
	}
	return append(dst, '}')
}

func (o *Object) clone() Node {
	if o == nil {
		return Null()
	}
	return o.Clone()
}

func (o *Object) String() string { return nodeString(o) }

// MarshalJSON implements the json.Marshaler interface for Object.
func (o *Object) MarshalJSON() ([]byte, error) { return marshalNode(o) }

// WriteJSON writes the object to w.
func (o *Object) WriteJSON(w io.Writer) (int, error) { return writeNode(w, o) }
