package ir

import "testing"

func buildPathDoc() *Node {
	// {"users": [{"name": "alice"}, {"name": "bob"}], "n": 2, "odd.key": true}
	alice := NewObject()
	alice.Set("name", FromString("alice"))
	bob := NewObject()
	bob.Set("name", FromString("bob"))
	users := NewArray()
	users.Append(alice)
	users.Append(bob)
	doc := NewObject()
	doc.Set("users", users)
	doc.Set("n", FromInt(2))
	doc.Set("odd.key", FromBool(true))
	return doc
}

func TestGetPath(t *testing.T) {
	doc := buildPathDoc()
	for _, tc := range []struct {
		path string
		want string
	}{
		{"$", ""},
		{"$.users[0].name", "alice"},
		{"users[1].name", "bob"},
		{"$.'odd.key'", ""},
	} {
		got, err := doc.GetPath(tc.path)
		if err != nil {
			t.Errorf("GetPath(%q): %v", tc.path, err)
			continue
		}
		if got == nil {
			t.Errorf("GetPath(%q): absent", tc.path)
			continue
		}
		if tc.want != "" && got.String != tc.want {
			t.Errorf("GetPath(%q) = %q, want %q", tc.path, got.String, tc.want)
		}
	}
}

func TestGetPathAbsent(t *testing.T) {
	doc := buildPathDoc()
	for _, path := range []string{"$.nope", "$.users[5]", "$.n.x"} {
		got, err := doc.GetPath(path)
		if err != nil {
			t.Errorf("GetPath(%q): %v", path, err)
		}
		if got != nil {
			t.Errorf("GetPath(%q) should be absent", path)
		}
	}
}

func TestParsePathErrs(t *testing.T) {
	for _, path := range []string{"$.", "$[x]", "$[1", "$.'unterminated", "$x..y"} {
		if _, err := ParsePath(path); err == nil {
			t.Errorf("ParsePath(%q) should fail", path)
		}
	}
}

func TestNodePath(t *testing.T) {
	doc := buildPathDoc()
	bobName := doc.Get("users").At(1).Get("name")
	if got := bobName.Path(); got != "$.users[1].name" {
		t.Errorf("Path() = %q", got)
	}
	if got := doc.Path(); got != "$" {
		t.Errorf("root Path() = %q", got)
	}
}
