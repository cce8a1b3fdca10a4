package airp

import "io"

// Element lists the types an Array can hold: any Leaf type or objects.
type Element interface {
	Leaf | *Object
}

// Array is an ordered, append-only sequence of values of one type.
// Objects appended to an array are copied; later changes to the caller's
// object do not show up in the array. A nil *Object element renders null.
type Array[T Element] struct {
	elems []T
}

// NewArray creates an array holding a copy of elems in the given order.
func NewArray[T Element](elems ...T) *Array[T] {
	a := &Array[T]{elems: make([]T, 0, len(elems))}
	for _, v := range elems {
		a.Append(v)
	}
	return a
}

// Append adds v to the end of a and returns a.
func (a *Array[T]) Append(v T) *Array[T] {
	if o, ok := interface{}(v).(*Object); ok {
		v = interface{}(o.Clone()).(T)
	}
	a.elems = append(a.elems, v)
	return a
}

// Len returns the number of elements.
func (a *Array[T]) Len() int {
	if a == nil {
		return 0
	}
	return len(a.elems)
}

// At returns the i-th element. It panics if i is out of range.
// An *Object returned by At is owned by the array.
func (a *Array[T]) At(i int) T {
	return a.elems[i]
}

// Kind returns KindArray, or KindNull for a nil array.
func (a *Array[T]) Kind() Kind {
	if a == nil {
		return KindNull
	}
	return KindArray
}

// element returns the i-th element as a node.
func (a *Array[T]) element(i int) Node {
	if o, ok := interface{}(a.elems[i]).(*Object); ok {
		if o == nil {
			return Null()
		}
		return o
	}
	s := leafOf(a.elems[i])
	return &s
}

func (a *Array[T]) appendJSON(dst []byte, e *encodeState) []byte {
	if a == nil {
		return append(dst, "null"...)
	}
	dst = append(dst, '[')
	for i, v := range a.elems {
		if i > 0 {
			dst = append(dst, ',')
		}
		if o, ok := interface{}(v).(*Object); ok {
			dst = o.appendJSON(dst, e)
			continue
		}
		s := leafOf(v)
		dst = s.appendJSON(dst, e)
	}
	return append(dst, ']')
}

func (a *Array[T]) clone() Node {
	if a == nil {
		return Null()
	}
	return NewArray(a.elems...)
}

func (a *Array[T]) String() string { return nodeString(a) }

// MarshalJSON implements the json.Marshaler interface for Array.
func (a *Array[T]) MarshalJSON() ([]byte, error) { return marshalNode(a) }

// WriteJSON writes the array to w.
func (a *Array[T]) WriteJSON(w io.Writer) (int, error) { return writeNode(w, a) }

// list is the element access Equal, Lookup and Total need without knowing T.
type list interface {
	Node
	Len() int
	element(i int) Node
}
