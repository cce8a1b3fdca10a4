package airp_test

import (
	"bytes"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/andreyvit/diff"
	"github.com/d1ced/airp"
)

func TestDocument(t *testing.T) {
	root := airp.NewObject().
		Str("stringProp", "marek").
		Int("intProp", 258).
		Set("stringArray", airp.NewArray("ahoj", "marek", "je", "v poli")).
		Set("intArr", airp.NewArray(1, 2, 3, 4)).
		Object("obj", airp.NewObject().
			Int("objIntProp", 2).
			Float("objDoubleProp", 20.5).
			Set("arrInObj", airp.NewArray(20, 10))).
		Set("objArray", airp.NewArray(
			airp.NewObject().
				Str("objStrProp", "sevas").
				Float("objDoubleProp", 20.5).
				Set("arrInObjInArr", airp.NewArray(20, 10)),
			airp.NewObject().
				Str("objStrProp", "sevas2").
				Float("objDoubleProp", 22.5).
				Set("arrInObjInArr", airp.NewArray(22, 12)),
		))
	want := `{"stringProp":"marek","intProp":258,` +
		`"stringArray":["ahoj","marek","je","v poli"],"intArr":[1,2,3,4],` +
		`"obj":{"objIntProp":2,"objDoubleProp":20.5,"arrInObj":[20,10]},` +
		`"objArray":[{"objStrProp":"sevas","objDoubleProp":20.5,"arrInObjInArr":[20,10]},` +
		`{"objStrProp":"sevas2","objDoubleProp":22.5,"arrInObjInArr":[22,12]}]}`
	b := &bytes.Buffer{}
	if _, err := root.WriteJSON(b); err != nil {
		t.Fatal(err)
	}
	if b.String() != want {
		t.Errorf("string representation mismatch: \n%s", diff.CharacterDiff(b.String(), want))
	}
	if root.String() != want {
		t.Errorf("String and WriteJSON differ: \n%s", diff.CharacterDiff(root.String(), want))
	}
}

func TestRenderExamples(t *testing.T) {
	tests := []struct {
		name string
		have airp.Node
		want string
	}{{
		"empty object", airp.NewObject(), "{}",
	}, {
		"zero object", &airp.Object{}, "{}",
	}, {
		"zero object insert", (&airp.Object{}).Int("a", 1), `{"a":1}`,
	}, {
		"empty array", airp.NewArray[int](), "[]",
	}, {
		"empty object array", airp.NewArray[*airp.Object](), "[]",
	}, {
		"int array", airp.NewArray(1, 2, 3), "[1,2,3]",
	}, {
		"insert", airp.NewObject().Int("a", 1).Str("b", `x"y`), `{"a":1,"b":"x\"y"}`,
	}, {
		"nested", airp.NewObject().Object("obj", airp.NewObject().Int("n", 5)), `{"obj":{"n":5}}`,
	}, {
		"timestamp", airp.Value(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)), `"2024-01-02T03:04:05"`,
	}, {
		"bools", airp.NewArray(true, false), "[true,false]",
	}, {
		"unsigned", airp.NewObject().Uint("max", math.MaxUint64), `{"max":18446744073709551615}`,
	}, {
		"signed", airp.NewArray[int64](math.MinInt64), `[-9223372036854775808]`,
	}, {
		"float32", airp.NewObject().Float32("f", 0.1), `{"f":0.1}`,
	}, {
		"null", airp.NewObject().Null("n").Set("m", nil), `{"n":null,"m":null}`,
	}, {
		"nil object element", airp.NewArray(airp.NewObject(), (*airp.Object)(nil)), `[{},null]`,
	}, {
		"escaped key", airp.NewObject().Bool(`a/"b"`, true), `{"a\/\"b\"":true}`,
	}, {
		"field", airp.Field(airp.NewObject(), "u8", uint8(255)), `{"u8":255}`,
	}, {
		"times", airp.NewArray(time.Date(2000, 2, 29, 12, 0, 0, 0, time.UTC)), `["2000-02-29T12:00:00"]`,
	}, {
		"nil root", nil, "null",
	}}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := airp.Render(test.have); got != test.want {
				t.Errorf("got %s, want %s", got, test.want)
			}
		})
	}
}

func TestOverwrite(t *testing.T) {
	o := airp.NewObject().Int("a", 1).Int("b", 2).Str("a", "second")
	if o.Len() != 2 {
		t.Errorf("want 2 keys, got %d", o.Len())
	}
	if got := o.String(); got != `{"a":"second","b":2}` {
		t.Errorf("overwrite must keep position: %s", got)
	}
	n, ok := o.Get("a")
	if !ok || n.Kind() != airp.KindString {
		t.Errorf("want string under a, got %v", n)
	}
	o.Set("a", airp.NewArray(1))
	if n, _ := o.Get("a"); n.Kind() != airp.KindArray {
		t.Errorf("want array under a, got %s", n.Kind())
	}
}

func TestValueSemantics(t *testing.T) {
	inner := airp.NewObject().Int("n", 5)
	outer := airp.NewObject().Object("obj", inner)
	arr := airp.NewArray(inner)
	inner.Int("n", 6).Str("extra", "x")
	if got := outer.String(); got != `{"obj":{"n":5}}` {
		t.Errorf("object aliases caller node: %s", got)
	}
	if got := arr.String(); got != `[{"n":5}]` {
		t.Errorf("array aliases caller node: %s", got)
	}

	self := airp.NewObject().Int("a", 1)
	self.Set("self", self)
	if got := self.String(); got != `{"a":1,"self":{"a":1}}` {
		t.Errorf("self insertion: %s", got)
	}

	ints := []int{1, 2}
	a := airp.NewArray(ints...)
	ints[0] = 9
	if got := a.String(); got != "[1,2]" {
		t.Errorf("array aliases caller slice: %s", got)
	}

	clone := outer.Clone()
	clone.Str("new", "y")
	if outer.Len() != 1 || clone.Len() != 2 {
		t.Errorf("clone shares state: %s %s", outer, clone)
	}
}

func TestArray(t *testing.T) {
	a := airp.NewArray[string]()
	if a.Append("a").Append("b/c").Len() != 2 {
		t.Fatalf("want 2 elements, got %d", a.Len())
	}
	if a.At(1) != "b/c" {
		t.Errorf("want b/c, got %s", a.At(1))
	}
	if got := a.String(); got != `["a","b\/c"]` {
		t.Errorf("got %s", got)
	}
}

func TestNumber(t *testing.T) {
	n, err := airp.Number("1e400")
	if err != nil {
		t.Fatal(err)
	}
	if got := airp.NewObject().Set("big", n).String(); got != `{"big":1e400}` {
		t.Errorf("got %s", got)
	}
	for _, lit := range []string{"", "NaN", "1,5", "0x1"} {
		if _, err := airp.Number(lit); err == nil {
			t.Errorf("want error for %q", lit)
		}
	}
}

func TestLegacyEscaping(t *testing.T) {
	o := airp.NewObject().Str("s", "a\"b\\c/d\ne")
	want := "{\"s\":\"a\\\"b\\\\c\\/d\ne\"}"
	if got := airp.Render(o, airp.WithLegacyEscaping()); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got := airp.Render(o); got != `{"s":"a\"b\\c\/d\ne"}` {
		t.Errorf("default escaping: %s", got)
	}
}

func TestNonFinite(t *testing.T) {
	o := airp.NewObject().Float("nan", math.NaN()).Float32("inf", float32(math.Inf(1)))
	tests := []struct {
		opts []airp.Option
		want string
	}{
		{nil, `{"nan":null,"inf":null}`},
		{[]airp.Option{airp.WithNonFinite(airp.NonFiniteString)}, `{"nan":"NaN","inf":"+Inf"}`},
		{[]airp.Option{airp.WithNonFinite(airp.NonFiniteLiteral)}, `{"nan":nan,"inf":inf}`},
	}
	for _, test := range tests {
		if got := airp.Render(o, test.opts...); got != test.want {
			t.Errorf("got %s, want %s", got, test.want)
		}
	}
}

func TestAppend(t *testing.T) {
	dst := []byte("payload=")
	dst = airp.Append(dst, airp.NewArray(1.5, -2.25))
	if string(dst) != "payload=[1.5,-2.25]" {
		t.Errorf("got %s", dst)
	}
}

func TestEncoder(t *testing.T) {
	b := &strings.Builder{}
	enc := airp.NewEncoder(b, airp.WithNewline())
	for i := 0; i < 3; i++ {
		if err := enc.Encode(airp.NewObject().Int("i", int64(i))); err != nil {
			t.Fatal(err)
		}
	}
	want := "{\"i\":0}\n{\"i\":1}\n{\"i\":2}\n"
	if b.String() != want {
		t.Errorf("string representation mismatch: \n%s", diff.LineDiff(b.String(), want))
	}
}
