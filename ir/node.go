package ir

import (
	"maps"
	"slices"
)

// Node is one value in a JSON tree. Exactly one variant, named by Type,
// is active at a time. Fields and Values are parallel slices for
// objects (Fields holds the StringType key nodes); arrays use Values
// alone. Numbers keep either an exact Int64 or a Float64, never both.
type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string
	Fields      []*Node
	Values      []*Node

	String  string
	Bool    bool
	Float64 *float64
	Int64   *int64
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  NumberType,
		Int64: &v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Float64: &f,
	}
}

func FromString(v string) *Node {
	return &Node{
		Type:   StringType,
		String: v,
	}
}

func NewObject() *Node {
	return &Node{Type: ObjectType}
}

func NewArray() *Node {
	return &Node{Type: ArrayType}
}

// Float returns the numeric value of a Number node as a float64,
// whichever side of the Int64/Float64 pair is set.
func (y *Node) Float() float64 {
	if y == nil || y.Type != NumberType {
		return 0
	}
	if y.Int64 != nil {
		return float64(*y.Int64)
	}
	if y.Float64 != nil {
		return *y.Float64
	}
	return 0
}

func FromMap(yMap map[string]*Node) *Node {
	res := NewObject()
	keys := slices.Sorted(maps.Keys(yMap))
	for _, key := range keys {
		res.Set(key, yMap[key])
	}
	return res
}

func FromSlice(ySlice []*Node) *Node {
	res := NewArray()
	for _, y := range ySlice {
		res.Append(y)
	}
	return res
}

func (y *Node) Clone() *Node {
	if y == nil {
		return nil
	}
	res := &Node{}
	return y.CloneTo(res)
}

// CloneTo deep copies y into dst and returns dst. The copy shares no
// storage with y; mutating one never affects the other. dst keeps y's
// parent linkage so a clone can stand in for the original in place.
func (y *Node) CloneTo(dst *Node) *Node {
	dst.Parent = y.Parent
	dst.ParentIndex = y.ParentIndex
	dst.ParentField = y.ParentField
	dst.Type = y.Type
	dst.Fields = make([]*Node, len(y.Fields))
	dst.Values = make([]*Node, len(y.Values))
	for i, yf := range y.Fields {
		dstI := &Node{}
		yf.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dst.Fields[i] = dstI
	}
	for i, yv := range y.Values {
		dstI := &Node{}
		yv.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dst.Values[i] = dstI
	}
	dst.String = y.String
	dst.Bool = y.Bool
	if y.Float64 != nil {
		f := *y.Float64
		dst.Float64 = &f
	}
	if y.Int64 != nil {
		i := *y.Int64
		dst.Int64 = &i
	}
	return dst
}

// Visit walks the tree rooted at y, calling f twice per node, once
// before descending (isPost false) and once after (isPost true). f
// returning false on the pre call prunes the subtree.
func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}

func (y *Node) Root() *Node {
	res := y
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}
