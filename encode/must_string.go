package encode

import (
	"bytes"
	"strings"

	"github.com/jdoc-format/go-jdoc/ir"
)

func MustString(node *ir.Node, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, opts...); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}

// AppendBytes appends the compact encoding of node to dst.
func AppendBytes(dst []byte, node *ir.Node) ([]byte, error) {
	buf := bytes.NewBuffer(dst)
	if err := Encode(node, buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
