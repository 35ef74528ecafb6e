package query

import (
	"testing"

	jdoc "github.com/jdoc-format/go-jdoc"
	"github.com/jdoc-format/go-jdoc/ir"
)

func queryDoc(t *testing.T) *ir.Node {
	t.Helper()
	doc, err := jdoc.ParseString(`{
		"user": {"name": "alice", "age": 34},
		"tags": ["a", "b", "c"],
		"limit": 2.5
	}`)
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestEval(t *testing.T) {
	doc := queryDoc(t)
	for _, tc := range []struct {
		src  string
		want string
	}{
		{`user.name`, `"alice"`},
		{`user.age + 1`, `35`},
		{`len(tags)`, `3`},
		{`tags[1]`, `"b"`},
		{`map(tags, upper(#))`, `["A","B","C"]`},
		{`{"n": user.name, "ok": user.age > 30}`, `{"n":"alice","ok":true}`},
		{`missing`, `null`},
		{`missing == nil ? "absent" : "present"`, `"absent"`},
	} {
		res, err := Eval(doc, tc.src)
		if err != nil {
			t.Errorf("Eval(%q): %v", tc.src, err)
			continue
		}
		got, err := jdoc.EncodeToString(res)
		if err != nil {
			t.Errorf("encoding result of %q: %v", tc.src, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Eval(%q) = %s, want %s", tc.src, got, tc.want)
		}
	}
}

func TestEvalBool(t *testing.T) {
	doc := queryDoc(t)
	ok, err := EvalBool(doc, `user.age > 21 && "b" in tags`)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("want true")
	}
	if _, err := EvalBool(doc, `user.name`); err == nil {
		t.Fatal("non-bool result should error")
	}
}

func TestEvalErrs(t *testing.T) {
	doc := queryDoc(t)
	if _, err := Eval(doc, `user.age +`); err == nil {
		t.Error("syntax error should fail compile")
	}
	if _, err := Eval(doc, `tags[99]`); err == nil {
		t.Error("out of range index should fail at runtime")
	}
}

func TestEvalNonObjectDoc(t *testing.T) {
	arr, err := jdoc.ParseString(`[10, 20]`)
	if err != nil {
		t.Fatal(err)
	}
	// with no fields there is no environment, only literals work
	res, err := Eval(arr, `1 + 1`)
	if err != nil {
		t.Fatal(err)
	}
	if *res.Int64 != 2 {
		t.Fatalf("got %v", res)
	}
}
