package ir

import (
	"fmt"
	"strconv"
	"strings"
)

// Path reports where y sits in its tree, in the $.field[index] form
// accepted by ParsePath.
func (y *Node) Path() string {
	if y == nil || y.Parent == nil {
		return "$"
	}
	switch y.Parent.Type {
	case ObjectType:
		f := y.ParentField
		prefix := y.Parent.Path() + "."
		if f != "" && strings.IndexAny(f, "'.$[]") == -1 {
			return prefix + f
		}
		return prefix + "'" + strings.Replace(f, "'", "\\'", -1) + "'"
	case ArrayType:
		return y.Parent.Path() + "[" + strconv.Itoa(y.ParentIndex) + "]"
	default:
		panic("parent but not in container")
	}
}

// A Path addresses one node in a tree: a chain of object fields and
// array indices.
type Path struct {
	Index *int
	Field *string
	Next  *Path
}

func (p *Path) String() string {
	var b strings.Builder
	b.WriteByte('$')
	for x := p; x != nil; x = x.Next {
		switch {
		case x.Field != nil:
			b.WriteString("." + *x.Field)
		case x.Index != nil:
			fmt.Fprintf(&b, "[%d]", *x.Index)
		}
	}
	return b.String()
}

// ParsePath parses "$", "$.a.b[3].c", "$['odd key']" and the same
// forms with the leading '$' omitted.
func ParsePath(p string) (*Path, error) {
	p = strings.TrimPrefix(p, "$")
	if p != "" && p[0] != '.' && p[0] != '[' {
		p = "." + p
	}
	root := &Path{}
	if err := parseFrag(p, root); err != nil {
		return nil, err
	}
	return root, nil
}

func parseFrag(p string, at *Path) error {
	if p == "" {
		return nil
	}
	switch p[0] {
	case '.':
		rest := p[1:]
		if rest == "" {
			return fmt.Errorf("path ends in '.'")
		}
		if rest[0] == '\'' {
			field, n, err := quotedField(rest)
			if err != nil {
				return err
			}
			at.Next = &Path{Field: &field}
			return parseFrag(rest[n:], at.Next)
		}
		n := strings.IndexAny(rest, ".[")
		if n == -1 {
			n = len(rest)
		}
		if n == 0 {
			return fmt.Errorf("empty field in path %q", p)
		}
		field := rest[:n]
		at.Next = &Path{Field: &field}
		return parseFrag(rest[n:], at.Next)
	case '[':
		n := strings.IndexByte(p, ']')
		if n == -1 {
			return fmt.Errorf("unclosed '[' in path %q", p)
		}
		i, err := strconv.Atoi(p[1:n])
		if err != nil {
			return fmt.Errorf("bad index in path %q: %w", p, err)
		}
		at.Next = &Path{Index: &i}
		return parseFrag(p[n+1:], at.Next)
	default:
		return fmt.Errorf("unexpected %q in path", p[0])
	}
}

func quotedField(p string) (string, int, error) {
	var b strings.Builder
	i := 1
	for i < len(p) {
		c := p[i]
		switch c {
		case '\\':
			if i+1 < len(p) && p[i+1] == '\'' {
				b.WriteByte('\'')
				i += 2
				continue
			}
			b.WriteByte(c)
			i++
		case '\'':
			return b.String(), i + 1, nil
		default:
			b.WriteByte(c)
			i++
		}
	}
	return "", 0, fmt.Errorf("unterminated quoted field in path %q", p)
}

// GetPath resolves a path string against y. A nil result with nil
// error means the addressed node is absent.
func (y *Node) GetPath(p string) (*Node, error) {
	path, err := ParsePath(p)
	if err != nil {
		return nil, err
	}
	at := y
	for x := path.Next; x != nil; x = x.Next {
		if at == nil {
			return nil, nil
		}
		switch {
		case x.Field != nil:
			at = at.Get(*x.Field)
		case x.Index != nil:
			at = at.At(*x.Index)
		}
	}
	return at, nil
}
