package parse

import (
	"errors"
	"strings"
	"testing"

	"github.com/jdoc-format/go-jdoc/ir"
	"github.com/jdoc-format/go-jdoc/token"
)

func TestParseNull(t *testing.T) {
	node, err := Parse([]byte("null"))
	if err != nil {
		t.Fatal(err)
	}
	if node.Type != ir.NullType {
		t.Fatalf("got %s", node.Type)
	}
}

func TestParseMixed(t *testing.T) {
	node, err := Parse([]byte(`  {"a": 1, "b": [true, false, null]}`))
	if err != nil {
		t.Fatal(err)
	}
	a := node.Get("a")
	if a == nil || a.Int64 == nil || *a.Int64 != 1 {
		t.Fatalf("a = %v", a)
	}
	b := node.Get("b")
	if b == nil || b.Type != ir.ArrayType || b.Len() != 3 {
		t.Fatalf("b = %v", b)
	}
	wantTypes := []ir.Type{ir.BoolType, ir.BoolType, ir.NullType}
	for i, wt := range wantTypes {
		if got := b.At(i).Type; got != wt {
			t.Errorf("b[%d] = %s, want %s", i, got, wt)
		}
	}
	if !b.At(0).Bool || b.At(1).Bool {
		t.Error("bool values swapped")
	}
}

func TestParseScalars(t *testing.T) {
	for _, tc := range []struct {
		in   string
		typ  ir.Type
		want any
	}{
		{`"hi"`, ir.StringType, "hi"},
		{`""`, ir.StringType, ""},
		{"0", ir.NumberType, int64(0)},
		{"-42", ir.NumberType, int64(-42)},
		{"2.5", ir.NumberType, 2.5},
		{"1e2", ir.NumberType, 100.0},
		{"-0.5", ir.NumberType, -0.5},
		{"true", ir.BoolType, true},
		{"false", ir.BoolType, false},
	} {
		node, err := Parse([]byte(tc.in))
		if err != nil {
			t.Errorf("Parse(%q): %v", tc.in, err)
			continue
		}
		if node.Type != tc.typ {
			t.Errorf("Parse(%q) type = %s, want %s", tc.in, node.Type, tc.typ)
			continue
		}
		switch want := tc.want.(type) {
		case string:
			if node.String != want {
				t.Errorf("Parse(%q) = %q", tc.in, node.String)
			}
		case int64:
			if node.Int64 == nil || *node.Int64 != want {
				t.Errorf("Parse(%q): want integer %d", tc.in, want)
			}
		case float64:
			if node.Float64 == nil || *node.Float64 != want {
				t.Errorf("Parse(%q): want float %v", tc.in, want)
			}
		case bool:
			if node.Bool != want {
				t.Errorf("Parse(%q) = %v", tc.in, node.Bool)
			}
		}
	}
}

func TestParseIntOverflowToFloat(t *testing.T) {
	node, err := Parse([]byte("9223372036854775808")) // MaxInt64 + 1
	if err != nil {
		t.Fatal(err)
	}
	if node.Type != ir.NumberType || node.Float64 == nil {
		t.Fatalf("got %v, want float fallback", node)
	}
	if *node.Float64 != 9223372036854775808.0 {
		t.Fatalf("got %v", *node.Float64)
	}
}

func TestParseEmptyContainers(t *testing.T) {
	obj, err := Parse([]byte(" {} "))
	if err != nil {
		t.Fatal(err)
	}
	if obj.Type != ir.ObjectType || obj.Len() != 0 {
		t.Fatalf("got %v", obj)
	}
	arr, err := Parse([]byte("[]"))
	if err != nil {
		t.Fatal(err)
	}
	if arr.Type != ir.ArrayType || arr.Len() != 0 {
		t.Fatalf("got %v", arr)
	}
}

func TestParseDuplicateKeyLastWins(t *testing.T) {
	node, err := Parse([]byte(`{"k": 1, "k": 2}`))
	if err != nil {
		t.Fatal(err)
	}
	if node.Len() != 1 {
		t.Fatalf("want single entry, got %d", node.Len())
	}
	if got := node.Get("k"); *got.Int64 != 2 {
		t.Fatalf("k = %d, want last binding", *got.Int64)
	}
}

func TestParseErrs(t *testing.T) {
	for _, tc := range []struct {
		in string
		e  error
	}{
		{"", ErrEmpty},
		{"   ", ErrEmpty},
		{`{"a":}`, ErrParse},
		{`{"a" 1}`, ErrParse},
		{`{1: 2}`, ErrParse},
		{`{"a": 1,}`, ErrParse},
		{`[1, 2,`, ErrParse},
		{`[1 2]`, ErrParse},
		{`{"a": 1`, ErrParse},
		{`}`, ErrParse},
		{`,`, ErrParse},
		{"nul", ErrParse},
		{`{"a": 1} extra`, ErrTrailing},
		{`[1] $`, ErrTrailing},
		{`{"a": e}`, ErrParse},
		{`null null`, ErrTrailing},
		{`1 2`, ErrTrailing},
	} {
		node, err := Parse([]byte(tc.in))
		if err == nil {
			t.Errorf("Parse(%q) should fail", tc.in)
			continue
		}
		if !errors.Is(err, tc.e) {
			t.Errorf("Parse(%q) = %v, want %v", tc.in, err, tc.e)
		}
		if node != nil {
			t.Errorf("Parse(%q) returned a partial tree", tc.in)
		}
	}
}

func TestParseErrsWrapParse(t *testing.T) {
	for _, in := range []string{"", "[", `x`, "1 2"} {
		_, err := Parse([]byte(in))
		if !errors.Is(err, ErrParse) {
			t.Errorf("Parse(%q) = %v, want an ErrParse", in, err)
		}
	}
}

func TestParseTrailingGarbageClassification(t *testing.T) {
	// unlexable bytes after a complete root are trailing data
	for _, in := range []string{`{"a": 1} extra`, `[1] $`, `null @`} {
		_, err := Parse([]byte(in))
		if !errors.Is(err, ErrTrailing) {
			t.Errorf("Parse(%q) = %v, want ErrTrailing", in, err)
		}
	}
	// the same bytes inside an unfinished document are not
	for _, in := range []string{`{"a": e}`, `[extra`, `@`} {
		_, err := Parse([]byte(in))
		if err == nil || errors.Is(err, ErrTrailing) {
			t.Errorf("Parse(%q) = %v, want a non-trailing parse error", in, err)
		}
	}
}

func nested(n int) []byte {
	return []byte(strings.Repeat("[", n) + "null" + strings.Repeat("]", n))
}

func TestParseDepth(t *testing.T) {
	for _, n := range []int{1, 64, MaxDepth - 1, MaxDepth} {
		if _, err := Parse(nested(n)); err != nil {
			t.Errorf("depth %d: %v", n, err)
		}
	}
	_, err := Parse(nested(MaxDepth + 1))
	if !errors.Is(err, ErrDepth) {
		t.Errorf("depth %d: %v, want ErrDepth", MaxDepth+1, err)
	}
	// mixed object/array nesting counts both kinds
	deep := strings.Repeat(`{"a":[`, 65) + "null" + strings.Repeat("]}", 65)
	if _, err := Parse([]byte(deep)); !errors.Is(err, ErrDepth) {
		t.Errorf("mixed nesting: %v, want ErrDepth", err)
	}
}

func TestParseWithMaxDepth(t *testing.T) {
	if _, err := Parse(nested(3), WithMaxDepth(3)); err != nil {
		t.Errorf("depth 3 under bound 3: %v", err)
	}
	if _, err := Parse(nested(4), WithMaxDepth(3)); !errors.Is(err, ErrDepth) {
		t.Errorf("depth 4 under bound 3: %v, want ErrDepth", err)
	}
}

func TestParsePositions(t *testing.T) {
	m := map[*ir.Node]*token.Pos{}
	node, err := Parse([]byte(`{"a": [1]}`), Positions(m))
	if err != nil {
		t.Fatal(err)
	}
	one := node.Get("a").At(0)
	pos, ok := m[one]
	if !ok {
		t.Fatal("no position recorded for array element")
	}
	if pos.I != 7 {
		t.Errorf("offset = %d, want 7", pos.I)
	}
	if rootPos := m[node]; rootPos == nil || rootPos.I != 0 {
		t.Errorf("root position = %v, want offset 0", rootPos)
	}
}

func TestParseBacklinks(t *testing.T) {
	node, err := Parse([]byte(`{"a": {"b": [10, 20]}}`))
	if err != nil {
		t.Fatal(err)
	}
	inner := node.Get("a").Get("b").At(1)
	if inner.Parent == nil || inner.ParentIndex != 1 {
		t.Fatal("array element backlink wrong")
	}
	if p := node.Get("a"); p.Parent != node || p.ParentField != "a" {
		t.Fatal("object member backlink wrong")
	}
	if inner.Root() != node {
		t.Fatal("Root should climb to the document")
	}
}
