package airp

import (
	"strconv"
	"strings"
)

// Equal compares the nodes and all their children. Object key order is
// arbitrary, array order is not. Scalars are equal when they have the same
// kind and render the same, so NaN equals NaN and times compare by wall
// clock.
func Equal(a, b Node) bool {
	ka, kb := kindOf(a), kindOf(b)
	if ka != kb {
		return false
	}
	switch ka {
	case KindNull:
		return true
	case KindArray:
		la, lb := a.(list), b.(list)
		if la.Len() != lb.Len() {
			return false
		}
		for i := 0; i < la.Len(); i++ {
			if !Equal(la.element(i), lb.element(i)) {
				return false
			}
		}
		return true
	case KindObject:
		oa, ob := a.(*Object), b.(*Object)
		if oa.Len() != ob.Len() {
			return false
		}
		for _, k := range oa.keys {
			m, ok := ob.fields[k]
			if !ok || !Equal(oa.fields[k], m) {
				return false
			}
		}
		return true
	default:
		var e encodeState
		return string(a.appendJSON(nil, &e)) == string(b.appendJSON(nil, &e))
	}
}

func kindOf(n Node) Kind {
	if n == nil {
		return KindNull
	}
	return n.Kind()
}

// Lookup returns the node specified by path, a dot separated list of
// object keys and array indices like "servlet.1.init-param". The empty
// path returns n itself.
func Lookup(n Node, path string) (Node, bool) {
	if path == "" {
		return n, true
	}
	key, rest, _ := strings.Cut(path, ".")
	switch c := n.(type) {
	case *Object:
		m, ok := c.Get(key)
		if !ok {
			return nil, false
		}
		return Lookup(m, rest)
	case list:
		i, err := strconv.Atoi(key)
		if err != nil || i < 0 || i >= c.Len() {
			return nil, false
		}
		return Lookup(c.element(i), rest)
	default:
		return nil, false
	}
}

// Total returns the number of nodes in the tree rooted at n, n included.
// Array elements count as one node each.
func Total(n Node) int {
	switch c := n.(type) {
	case nil:
		return 0
	case *Object:
		if c == nil {
			return 1
		}
		i := 1
		for _, m := range c.fields {
			i += Total(m)
		}
		return i
	case list:
		i := 1
		for j := 0; j < c.Len(); j++ {
			i += Total(c.element(j))
		}
		return i
	default:
		return 1
	}
}
