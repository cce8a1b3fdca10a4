package airp

import (
	"encoding"
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"
)

// Leaf lists the Go types a Scalar can be built from.
type Leaf interface {
	string | bool |
		int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 | uintptr |
		float32 | float64 |
		time.Time
}

// Scalar is a leaf node holding exactly one value.
// Depending on its kind it holds a different value:
//
//	Kind         ValueType
//	KindNull     nil
//	KindBool     bool
//	KindInt      int64
//	KindUint     uint64
//	KindFloat32  float32
//	KindFloat64  float64
//	KindNumber   string (a validated JSON number literal)
//	KindString   string
//	KindTime     time.Time
//
// A Scalar is immutable once created.
type Scalar struct {
	kind  Kind
	value interface{}
}

// Value creates a scalar node from v.
func Value[T Leaf](v T) *Scalar {
	s := leafOf(v)
	return &s
}

// Null creates a scalar node rendering as null.
func Null() *Scalar {
	return &Scalar{kind: KindNull}
}

// Number creates a scalar node rendering lit verbatim and unquoted.
// lit has to be a JSON number, like "12", "-0.5" or "1e400".
func Number(lit string) (*Scalar, error) {
	if !validNumber(lit) {
		return nil, &ValueError{Value: lit, Err: ErrInvalidNumber}
	}
	return &Scalar{kind: KindNumber, value: lit}, nil
}

// Text creates a string node from the text form of v.
// It is meant for values without a dedicated Leaf type, such as
// net.IP or big.Int, which are rendered quoted.
func Text(v encoding.TextMarshaler) (*Scalar, error) {
	b, err := v.MarshalText()
	if err != nil {
		return nil, &ValueError{
			Value: fmt.Sprintf("%T", v),
			Err:   errors.Wrap(err, "marshal text"),
		}
	}
	return &Scalar{kind: KindString, value: string(b)}, nil
}

// leafOf normalizes v to one of the scalar value types.
func leafOf(v interface{}) Scalar {
	switch v := v.(type) {
	case string:
		return Scalar{KindString, v}
	case bool:
		return Scalar{KindBool, v}
	case int:
		return Scalar{KindInt, int64(v)}
	case int8:
		return Scalar{KindInt, int64(v)}
	case int16:
		return Scalar{KindInt, int64(v)}
	case int32:
		return Scalar{KindInt, int64(v)}
	case int64:
		return Scalar{KindInt, v}
	case uint:
		return Scalar{KindUint, uint64(v)}
	case uint8:
		return Scalar{KindUint, uint64(v)}
	case uint16:
		return Scalar{KindUint, uint64(v)}
	case uint32:
		return Scalar{KindUint, uint64(v)}
	case uint64:
		return Scalar{KindUint, v}
	case uintptr:
		return Scalar{KindUint, uint64(v)}
	case float32:
		return Scalar{KindFloat32, v}
	case float64:
		return Scalar{KindFloat64, v}
	case time.Time:
		return Scalar{KindTime, v}
	case nil:
		return Scalar{kind: KindNull}
	default:
		panic(fmt.Sprintf("airp: %T is not a leaf type", v))
	}
}

// Kind returns the kind of the scalar. A nil scalar is KindNull.
func (s *Scalar) Kind() Kind {
	if s == nil {
		return KindNull
	}
	return s.kind
}

// Interface returns the Go representation of the scalar, see the table
// on Scalar.
func (s *Scalar) Interface() interface{} {
	if s == nil {
		return nil
	}
	return s.value
}

func (s *Scalar) appendJSON(dst []byte, e *encodeState) []byte {
	if s == nil {
		return append(dst, "null"...)
	}
	switch s.kind {
	case KindBool:
		return e.appendBool(dst, s.value.(bool))
	case KindInt:
		return e.appendInt(dst, s.value.(int64))
	case KindUint:
		return e.appendUint(dst, s.value.(uint64))
	case KindFloat32:
		return e.appendFloat(dst, float64(s.value.(float32)), 32)
	case KindFloat64:
		return e.appendFloat(dst, s.value.(float64), 64)
	case KindNumber:
		return append(dst, s.value.(string)...)
	case KindString:
		return e.appendString(dst, s.value.(string))
	case KindTime:
		return e.appendTime(dst, s.value.(time.Time))
	default:
		return append(dst, "null"...)
	}
}

func (s *Scalar) clone() Node {
	if s == nil {
		return Null()
	}
	c := *s
	return &c
}

func (s *Scalar) String() string { return nodeString(s) }

// MarshalJSON implements the json.Marshaler interface for Scalar.
func (s *Scalar) MarshalJSON() ([]byte, error) { return marshalNode(s) }

// WriteJSON writes the scalar to w.
func (s *Scalar) WriteJSON(w io.Writer) (int, error) { return writeNode(w, s) }
