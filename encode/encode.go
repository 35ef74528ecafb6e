package encode

import (
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/jdoc-format/go-jdoc/ir"
	"github.com/jdoc-format/go-jdoc/token"
)

type EncState struct {
	depth, indent int
	trailing      bool

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node to w. The default output is compact, with no
// whitespace and no trailing newline, and reparses to an equal tree. A
// nil node encodes as the literal null.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	if err := encode(node, w, es); err != nil {
		return err
	}
	if es.trailing {
		return writeString(w, "\n")
	}
	return nil
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	if node == nil {
		return writeScalar(w, es, ir.NullType, "null")
	}
	switch node.Type {
	case ir.NullType:
		return writeScalar(w, es, ir.NullType, "null")
	case ir.BoolType:
		if node.Bool {
			return writeScalar(w, es, ir.BoolType, "true")
		}
		return writeScalar(w, es, ir.BoolType, "false")
	case ir.StringType:
		return writeScalar(w, es, ir.StringType, token.Quote(node.String))
	case ir.NumberType:
		s, err := numberString(node)
		if err != nil {
			return err
		}
		return writeScalar(w, es, ir.NumberType, s)
	case ir.ObjectType:
		return encodeObj(node, w, es)
	case ir.ArrayType:
		return encodeArr(node, w, es)
	default:
		return ErrEncoding
	}
}

func numberString(node *ir.Node) (string, error) {
	if node.Int64 != nil {
		return strconv.FormatInt(*node.Int64, 10), nil
	}
	f := 0.0
	if node.Float64 != nil {
		f = *node.Float64
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", ErrEncoding
	}
	// shortest representation that round-trips the double
	return string(strconv.AppendFloat(nil, f, 'g', -1, 64)), nil
}

func encodeObj(node *ir.Node, w io.Writer, es *EncState) error {
	if err := writeSep(w, es, ir.ObjectType, "{"); err != nil {
		return err
	}
	es.depth++
	n := len(node.Fields)
	for i := range n {
		if i > 0 {
			if err := writeSep(w, es, ir.ObjectType, ","); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		key := token.Quote(node.Fields[i].String)
		if es.Color != nil {
			key = es.Color(ir.ObjectType, FieldColor, key)
		}
		if err := writeString(w, key); err != nil {
			return err
		}
		colon := ":"
		if es.indent > 0 {
			colon = ": "
		}
		if err := writeSep(w, es, ir.ObjectType, colon); err != nil {
			return err
		}
		if err := encode(node.Values[i], w, es); err != nil {
			return err
		}
	}
	es.depth--
	if n > 0 {
		if err := writeNL(w, es); err != nil {
			return err
		}
	}
	return writeSep(w, es, ir.ObjectType, "}")
}

func encodeArr(node *ir.Node, w io.Writer, es *EncState) error {
	if err := writeSep(w, es, ir.ArrayType, "["); err != nil {
		return err
	}
	es.depth++
	n := len(node.Values)
	for i := range n {
		if i > 0 {
			if err := writeSep(w, es, ir.ArrayType, ","); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := encode(node.Values[i], w, es); err != nil {
			return err
		}
	}
	es.depth--
	if n > 0 {
		if err := writeNL(w, es); err != nil {
			return err
		}
	}
	return writeSep(w, es, ir.ArrayType, "]")
}

func writeNL(w io.Writer, es *EncState) error {
	if es.indent == 0 {
		return nil
	}
	indentString := strings.Repeat(strings.Repeat(" ", es.indent), es.depth)
	return writeString(w, "\n"+indentString)
}

func writeScalar(w io.Writer, es *EncState, t ir.Type, s string) error {
	if es.Color != nil {
		s = es.Color(t, ValueColor, s)
	}
	return writeString(w, s)
}

func writeSep(w io.Writer, es *EncState, t ir.Type, s string) error {
	if es.Color != nil {
		s = es.Color(t, SepColor, s)
	}
	return writeString(w, s)
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}
