// Package jdoc is a JSON document engine: an in-memory value model
// (ir), a parser with byte-offset errors (parse), a serializer
// (encode), typed field accessors (field), and document tooling built
// on them: file I/O, RFC 6902 patches, RFC 7386 merge patches, diffs
// and expression queries.
package jdoc

import (
	"bytes"

	"github.com/jdoc-format/go-jdoc/debug"
	"github.com/jdoc-format/go-jdoc/encode"
	"github.com/jdoc-format/go-jdoc/ir"
	"github.com/jdoc-format/go-jdoc/parse"
)

// ParseBytes parses one JSON document.
func ParseBytes(d []byte, opts ...parse.Option) (*ir.Node, error) {
	if debug.Parse() {
		debug.Logf("parse %d bytes\n", len(d))
	}
	return parse.Parse(d, opts...)
}

func ParseString(s string, opts ...parse.Option) (*ir.Node, error) {
	return parse.Parse([]byte(s), opts...)
}

// EncodeToString renders node, compactly unless options say otherwise.
func EncodeToString(node *ir.Node, opts ...encode.EncodeOption) (string, error) {
	buf := &bytes.Buffer{}
	if err := encode.Encode(node, buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func AppendBytes(dst []byte, node *ir.Node) ([]byte, error) {
	return encode.AppendBytes(dst, node)
}

// Lookup resolves a $.field[index] path against doc. A nil result
// with nil error means the addressed node is absent.
func Lookup(doc *ir.Node, path string) (*ir.Node, error) {
	return doc.GetPath(path)
}
