package airp

import (
	"encoding"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"
)

var (
	timeType          = reflect.TypeOf(time.Time{})
	textMarshalerType = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()
)

// FromGo reads in a Go value and generates a tree that renders like it.
//
// Booleans, integers, floats, strings and time.Time become scalars,
// encoding.TextMarshaler values and []byte become strings, nil pointers,
// slices, maps and interfaces become null. Maps with string keys and
// structs become objects; map keys are sorted, struct fields keep their
// declaration order and honour the name, "-" and omitempty options of the
// json tag. Slices and arrays become arrays, so their elements must share
// one kind; objects and nulls may be mixed. Fields of embedded structs
// without a tag name are promoted into the outer object, where fields of
// the outer struct win.
//
// A value that refers back to itself through a pointer, map or slice
// returns a *ValueError wrapping ErrCycle.
func FromGo(v interface{}) (Node, error) {
	c := converter{seen: make(map[visit]struct{})}
	return c.fromGo(reflect.ValueOf(v), "")
}

// visit identifies a pointer, map or slice on the current conversion path.
type visit struct {
	ptr uintptr
	typ reflect.Type
	len int
}

type converter struct {
	seen map[visit]struct{}
}

// enter marks v as being converted. It fails if v is already on the path.
func (c *converter) enter(v reflect.Value, path string) (visit, error) {
	k := visit{ptr: v.Pointer(), typ: v.Type()}
	if v.Kind() == reflect.Slice {
		k.len = v.Len()
	}
	if _, ok := c.seen[k]; ok {
		return k, &ValueError{Path: path, Value: v.Type().String(), Err: ErrCycle}
	}
	c.seen[k] = struct{}{}
	return k, nil
}

func (c *converter) fromGo(v reflect.Value, path string) (Node, error) {
	if !v.IsValid() {
		return Null(), nil
	}
	t := v.Type()
	if t == timeType {
		return Value(v.Interface().(time.Time)), nil
	}
	if t.Kind() != reflect.Interface && t.Implements(textMarshalerType) &&
		!(t.Kind() == reflect.Ptr && t.Elem() == timeType) {
		if t.Kind() == reflect.Ptr && v.IsNil() {
			return Null(), nil
		}
		s, err := Text(v.Interface().(encoding.TextMarshaler))
		if err != nil {
			err.(*ValueError).Path = path
			return nil, err
		}
		return s, nil
	}
	switch v.Kind() {
	case reflect.Bool:
		return Value(v.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Value(v.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Value(v.Uint()), nil
	case reflect.Float32:
		return Value(float32(v.Float())), nil
	case reflect.Float64:
		return Value(v.Float()), nil
	case reflect.String:
		return Value(v.String()), nil
	case reflect.Slice:
		if v.IsNil() {
			return Null(), nil
		}
		if t.Elem().Kind() == reflect.Uint8 {
			return Value(string(v.Bytes())), nil
		}
		k, err := c.enter(v, path)
		if err != nil {
			return nil, err
		}
		defer delete(c.seen, k)
		return c.list(v, path)
	case reflect.Array:
		return c.list(v, path)
	case reflect.Map:
		if t.Key().Kind() != reflect.String {
			return nil, &ValueError{Path: path, Value: t.String(), Err: ErrUnsupportedType}
		}
		if v.IsNil() {
			return Null(), nil
		}
		k, err := c.enter(v, path)
		if err != nil {
			return nil, err
		}
		defer delete(c.seen, k)
		keys := v.MapKeys()
		sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
		o := NewObject()
		for _, key := range keys {
			n, err := c.fromGo(v.MapIndex(key), joinPath(path, key.String()))
			if err != nil {
				return nil, err
			}
			o.put(key.String(), n)
		}
		return o, nil
	case reflect.Struct:
		o := NewObject()
		if err := c.fields(o, v, path, nil); err != nil {
			return nil, err
		}
		return o, nil
	case reflect.Interface:
		if v.IsNil() {
			return Null(), nil
		}
		return c.fromGo(v.Elem(), path)
	case reflect.Ptr:
		if v.IsNil() {
			return Null(), nil
		}
		k, err := c.enter(v, path)
		if err != nil {
			return nil, err
		}
		defer delete(c.seen, k)
		return c.fromGo(v.Elem(), path)
	default:
		return nil, &ValueError{Path: path, Value: t.String(), Err: ErrUnsupportedType}
	}
}

func (c *converter) list(v reflect.Value, path string) (Node, error) {
	nn := make([]Node, 0, v.Len())
	for i := 0; i < v.Len(); i++ {
		n, err := c.fromGo(v.Index(i), joinPath(path, strconv.Itoa(i)))
		if err != nil {
			return nil, err
		}
		nn = append(nn, n)
	}
	return collect(nn, path)
}

// fields puts the fields of the struct v into o. Fields of embedded structs
// without a tag name are promoted; shadow holds the keys set by enclosing
// structs, which promoted fields must not replace.
func (c *converter) fields(o *Object, v reflect.Value, path string, shadow map[string]bool) error {
	t := v.Type()
	own := make(map[string]bool, len(shadow)+t.NumField())
	for k := range shadow {
		own[k] = true
	}
	for i := 0; i < t.NumField(); i++ {
		if key, ok := fieldKey(t.Field(i)); ok {
			own[key] = true
		}
	}
	for i := 0; i < t.NumField(); i++ {
		elemT := t.Field(i)
		if embedded(elemT) {
			fv := v.Field(i)
			if fv.Kind() == reflect.Ptr {
				if fv.IsNil() {
					continue
				}
				k, err := c.enter(fv, path)
				if err != nil {
					return err
				}
				err = c.fields(o, fv.Elem(), path, own)
				delete(c.seen, k)
				if err != nil {
					return err
				}
				continue
			}
			if err := c.fields(o, fv, path, own); err != nil {
				return err
			}
			continue
		}
		key, ok := fieldKey(elemT)
		if !ok || shadow[key] {
			continue
		}
		tags := strings.Split(elemT.Tag.Get("json"), ",")
		if hasTag(tags[1:], "omitempty") && isEmptyValue(v.Field(i)) {
			continue
		}
		n, err := c.fromGo(v.Field(i), joinPath(path, key))
		if err != nil {
			return err
		}
		o.put(key, n)
	}
	return nil
}

// embedded reports whether the fields of f are promoted instead of f
// becoming a key itself.
func embedded(f reflect.StructField) bool {
	if !f.Anonymous || strings.Split(f.Tag.Get("json"), ",")[0] != "" {
		return false
	}
	t := f.Type
	if t.Implements(textMarshalerType) {
		return false
	}
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Kind() == reflect.Struct && t != timeType
}

// fieldKey returns the object key of a struct field that is not embedded.
func fieldKey(f reflect.StructField) (string, bool) {
	if embedded(f) || !f.IsExported() {
		return "", false
	}
	tags := strings.Split(f.Tag.Get("json"), ",")
	if len(tags) == 1 && tags[0] == "-" {
		return "", false
	}
	if tags[0] == "" {
		return f.Name, true
	}
	return tags[0], true
}

// collect packs converted slice elements into the typed Array matching
// their common kind.
func collect(nn []Node, path string) (Node, error) {
	kind := KindNull
	for _, n := range nn {
		k := n.Kind()
		if k == KindNull {
			continue
		}
		if kind == KindNull {
			kind = k
		} else if k != kind {
			return nil, &ValueError{Path: path, Value: kind.String() + " and " + k.String(), Err: ErrMixedArray}
		}
	}
	if kind != KindNull && kind != KindObject && len(nn) > 0 {
		for _, n := range nn {
			if n.Kind() == KindNull {
				return nil, &ValueError{Path: path, Value: kind.String() + " and null", Err: ErrMixedArray}
			}
		}
	}
	switch kind {
	case KindNull, KindObject:
		a := &Array[*Object]{elems: make([]*Object, len(nn))}
		for i, n := range nn {
			a.elems[i], _ = n.(*Object)
		}
		return a, nil
	case KindBool:
		return collectScalars[bool](nn), nil
	case KindInt:
		return collectScalars[int64](nn), nil
	case KindUint:
		return collectScalars[uint64](nn), nil
	case KindFloat32:
		return collectScalars[float32](nn), nil
	case KindFloat64:
		return collectScalars[float64](nn), nil
	case KindString:
		return collectScalars[string](nn), nil
	case KindTime:
		return collectScalars[time.Time](nn), nil
	default:
		return nil, &ValueError{Path: path, Value: "array of " + kind.String(), Err: ErrUnsupportedType}
	}
}

func collectScalars[T Leaf](nn []Node) *Array[T] {
	a := &Array[T]{elems: make([]T, len(nn))}
	for i, n := range nn {
		a.elems[i] = n.(*Scalar).value.(T)
	}
	return a
}

func joinPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

func hasTag(tags []string, name string) bool {
	for _, tag := range tags {
		if tag == name {
			return true
		}
	}
	return false
}

func isEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Interface, reflect.Ptr:
		return v.IsNil()
	}
	return false
}
