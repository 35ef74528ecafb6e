package encode

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/jdoc-format/go-jdoc/ir"
)

func TestEncodeCompact(t *testing.T) {
	obj := ir.NewObject()
	obj.Set("x", ir.FromString("hi"))
	if got := MustString(obj); got != `{"x":"hi"}` {
		t.Fatalf("got %q", got)
	}
}

func TestEncodeNilIsNull(t *testing.T) {
	if got := MustString(nil); got != "null" {
		t.Fatalf("got %q", got)
	}
}

func TestEncodeScalars(t *testing.T) {
	for _, tc := range []struct {
		node *ir.Node
		want string
	}{
		{ir.Null(), "null"},
		{ir.FromBool(true), "true"},
		{ir.FromBool(false), "false"},
		{ir.FromInt(0), "0"},
		{ir.FromInt(-42), "-42"},
		{ir.FromInt(math.MaxInt64), "9223372036854775807"},
		{ir.FromFloat(2.5), "2.5"},
		{ir.FromFloat(0.1), "0.1"},
		{ir.FromFloat(1e21), "1e+21"},
		{ir.FromString(""), `""`},
		{ir.FromString("a\"b"), `"a\"b"`},
		{ir.FromString("tab\t"), `"tab\t"`},
		{ir.NewObject(), "{}"},
		{ir.NewArray(), "[]"},
	} {
		if got := MustString(tc.node); got != tc.want {
			t.Errorf("got %q, want %q", got, tc.want)
		}
	}
}

func TestEncodeNestedCompact(t *testing.T) {
	arr := ir.NewArray()
	arr.Append(ir.FromInt(1))
	arr.Append(ir.Null())
	obj := ir.NewObject()
	obj.Set("a", arr)
	obj.Set("b", ir.FromBool(false))
	if got := MustString(obj); got != `{"a":[1,null],"b":false}` {
		t.Fatalf("got %q", got)
	}
}

func TestEncodeNaN(t *testing.T) {
	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		var buf bytes.Buffer
		err := Encode(ir.FromFloat(f), &buf)
		if !errors.Is(err, ErrEncoding) {
			t.Errorf("Encode(%v) = %v, want ErrEncoding", f, err)
		}
	}
}

func TestEncodeIndent(t *testing.T) {
	arr := ir.NewArray()
	arr.Append(ir.FromInt(1))
	arr.Append(ir.FromInt(2))
	obj := ir.NewObject()
	obj.Set("a", arr)
	want := `{
  "a": [
    1,
    2
  ]
}`
	if got := MustString(obj, Indent(2)); got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestEncodeTrailing(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(ir.FromInt(7), &buf, Trailing(true)); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "7\n" {
		t.Fatalf("got %q", got)
	}
}

func TestAppendBytes(t *testing.T) {
	out, err := AppendBytes([]byte("x: "), ir.FromBool(true))
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "x: true" {
		t.Fatalf("got %q", out)
	}
}

func TestEncodeColorsPlumbing(t *testing.T) {
	es := ir.FromString("v")
	var buf bytes.Buffer
	err := Encode(es, &buf, func(s *EncState) {
		s.Color = func(_ ir.Type, _ ColorAttr, txt string) string {
			return "<" + txt + ">"
		}
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != `<"v">` {
		t.Fatalf("got %q", got)
	}
}
