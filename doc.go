/*
Package airp builds JSON documents.
In contrast to encoding/json airp is centered around a tree of nodes that
is assembled by hand and rendered to text; it does not parse JSON.

A tree consists of three kinds of node:

	Scalar     one string, bool, integer, float, time.Time, number literal or null
	Array[T]   an ordered list of values of the single type T
	Object     string keys mapped to nodes of any kind

Objects and arrays are filled with chained calls:

	root := airp.NewObject().
		Str("name", "marek").
		Int("count", 258).
		Set("tags", airp.NewArray("a", "b")).
		Object("inner", airp.NewObject().Float("ratio", 20.5))
	fmt.Println(airp.Render(root))

Rendering rules:

  - Strings escape '"', '\\' and '/' with a backslash, control characters
    as \n, \t, ... or \u00XX; invalid UTF-8 becomes U+FFFD.
    WithLegacyEscaping limits escaping to the first three characters.
  - Floats use '.' as decimal separator whatever the host locale.
    NaN and ±Inf follow the NonFinitePolicy, null by default.
  - Times render as "YYYY-MM-DDTHH:MM:SS" without zone.
  - Object keys render in first-insertion order. JSON itself gives key
    order no meaning, so consumers should only rely on the set of keys.

Every node inserted into an object or array is copied, so a tree owns all
of its nodes and never contains cycles. A built tree may be rendered from
several goroutines at once.
*/
package airp // import "github.com/d1ced/airp"
