package jdoc

import (
	"encoding/json"
	"fmt"
	"math"
	"slices"

	"github.com/jdoc-format/go-jdoc/ir"
	"github.com/jdoc-format/go-jdoc/parse"
)

// ToAny converts a tree into plain Go values: map[string]any, []any,
// string, float64/int64, bool, nil.
func ToAny(node *ir.Node) any {
	if node == nil {
		return nil
	}
	switch node.Type {
	case ir.ObjectType:
		n := len(node.Fields)
		res := make(map[string]any, n)
		for i := range n {
			res[node.Fields[i].String] = ToAny(node.Values[i])
		}
		return res
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			res[i] = ToAny(elt)
		}
		return res
	case ir.StringType:
		return node.String
	case ir.NumberType:
		if node.Int64 != nil {
			return *node.Int64
		}
		return node.Float()
	case ir.BoolType:
		return node.Bool
	case ir.NullType:
		return nil
	default:
		panic("impossible production")
	}
}

// FromAny converts plain Go values into a tree. Maps, slices and
// scalars convert natively; anything else goes through encoding/json
// as a bridge, so struct values work too.
func FromAny(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case nil:
		return ir.Null(), nil
	case *ir.Node:
		return x.Clone(), nil
	case bool:
		return ir.FromBool(x), nil
	case string:
		return ir.FromString(x), nil
	case int:
		return ir.FromInt(int64(x)), nil
	case int32:
		return ir.FromInt(int64(x)), nil
	case int64:
		return ir.FromInt(x), nil
	case uint:
		return ir.FromInt(int64(x)), nil
	case uint64:
		if x > math.MaxInt64 {
			return ir.FromFloat(float64(x)), nil
		}
		return ir.FromInt(int64(x)), nil
	case float32:
		return ir.FromFloat(float64(x)), nil
	case float64:
		return ir.FromFloat(x), nil
	case map[string]any:
		res := ir.NewObject()
		for _, key := range sortedKeys(x) {
			child, err := FromAny(x[key])
			if err != nil {
				return nil, err
			}
			res.Set(key, child)
		}
		return res, nil
	case []any:
		res := ir.NewArray()
		for _, e := range x {
			child, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			res.Append(child)
		}
		return res, nil
	default:
		d, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("cannot convert %T: %w", v, err)
		}
		return parse.Parse(d)
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
