package field

import "github.com/jdoc-format/go-jdoc/ir"

// Array-index forms of the object-key accessors in field.go.

func BoolAt(arr *ir.Node, i int) (bool, bool) {
	return boolOf(elt(arr, i))
}

func IsNullAt(arr *ir.Node, i int) bool {
	v := elt(arr, i)
	return v != nil && v.Type == ir.NullType
}

func Float64At(arr *ir.Node, i int) (float64, bool) {
	return floatOf(elt(arr, i))
}

func Float32At(arr *ir.Node, i int) (float32, bool) {
	f, ok := floatOf(elt(arr, i))
	return float32(f), ok
}

func Int8At(arr *ir.Node, i int) (int8, bool) {
	v, ok := intOf(elt(arr, i))
	return int8(v), ok
}

func Int16At(arr *ir.Node, i int) (int16, bool) {
	v, ok := intOf(elt(arr, i))
	return int16(v), ok
}

func Int32At(arr *ir.Node, i int) (int32, bool) {
	v, ok := intOf(elt(arr, i))
	return int32(v), ok
}

func Int64At(arr *ir.Node, i int) (int64, bool) {
	return intOf(elt(arr, i))
}

func Uint8At(arr *ir.Node, i int) (uint8, bool) {
	v, ok := intOf(elt(arr, i))
	return uint8(v), ok
}

func Uint16At(arr *ir.Node, i int) (uint16, bool) {
	v, ok := intOf(elt(arr, i))
	return uint16(v), ok
}

func Uint32At(arr *ir.Node, i int) (uint32, bool) {
	v, ok := intOf(elt(arr, i))
	return uint32(v), ok
}

func StringAt(arr *ir.Node, i int) (string, bool) {
	return stringOf(elt(arr, i))
}

func StringIntoAt(arr *ir.Node, i int, buf []byte) (int, bool) {
	s, ok := stringOf(elt(arr, i))
	if !ok {
		return 0, false
	}
	return copy(buf, s), true
}

func SetBoolAt(arr *ir.Node, i int, v bool) bool {
	return arr.SetAt(i, ir.FromBool(v))
}

func SetNullAt(arr *ir.Node, i int) bool {
	return arr.SetAt(i, ir.Null())
}

func SetFloat64At(arr *ir.Node, i int, v float64) bool {
	return arr.SetAt(i, ir.FromFloat(v))
}

func SetFloat32At(arr *ir.Node, i int, v float32) bool {
	return arr.SetAt(i, ir.FromFloat(float64(v)))
}

func SetIntAt(arr *ir.Node, i int, v int64) bool {
	return arr.SetAt(i, ir.FromInt(v))
}

func SetUintAt(arr *ir.Node, i int, v uint64) bool {
	return arr.SetAt(i, uintNode(v))
}

func SetStringAt(arr *ir.Node, i int, v string) bool {
	return arr.SetAt(i, ir.FromString(v))
}

// elt restricts lookup to arrays so object values are not addressable
// by position here.
func elt(arr *ir.Node, i int) *ir.Node {
	if arr == nil || arr.Type != ir.ArrayType {
		return nil
	}
	return arr.At(i)
}
