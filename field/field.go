// Package field provides type-checked get and set helpers for scalar
// fields of objects and elements of arrays. Every getter returns an
// ok flag instead of an error: a missing key or index, a mismatched
// variant, or a non-container node are all the same, non-exceptional
// false. There is no coercion; numeric getters require a Number node
// and string getters a String node.
package field

import (
	"math"

	"github.com/jdoc-format/go-jdoc/ir"
)

// Bool reads an object field holding a boolean.
func Bool(obj *ir.Node, key string) (bool, bool) {
	return boolOf(obj.Get(key))
}

// IsNull reports whether key is present and bound to null. An absent
// key is false: present-null and missing are distinct conditions.
func IsNull(obj *ir.Node, key string) bool {
	v := obj.Get(key)
	return v != nil && v.Type == ir.NullType
}

func Float64(obj *ir.Node, key string) (float64, bool) {
	return floatOf(obj.Get(key))
}

func Float32(obj *ir.Node, key string) (float32, bool) {
	f, ok := floatOf(obj.Get(key))
	return float32(f), ok
}

// Int8 and the other integer getters round half away from zero, then
// narrow with wrap-around, matching integer conversion semantics.
func Int8(obj *ir.Node, key string) (int8, bool) {
	v, ok := intOf(obj.Get(key))
	return int8(v), ok
}

func Int16(obj *ir.Node, key string) (int16, bool) {
	v, ok := intOf(obj.Get(key))
	return int16(v), ok
}

func Int32(obj *ir.Node, key string) (int32, bool) {
	v, ok := intOf(obj.Get(key))
	return int32(v), ok
}

func Int64(obj *ir.Node, key string) (int64, bool) {
	return intOf(obj.Get(key))
}

func Uint8(obj *ir.Node, key string) (uint8, bool) {
	v, ok := intOf(obj.Get(key))
	return uint8(v), ok
}

func Uint16(obj *ir.Node, key string) (uint16, bool) {
	v, ok := intOf(obj.Get(key))
	return uint16(v), ok
}

func Uint32(obj *ir.Node, key string) (uint32, bool) {
	v, ok := intOf(obj.Get(key))
	return uint32(v), ok
}

func String(obj *ir.Node, key string) (string, bool) {
	return stringOf(obj.Get(key))
}

// StringInto copies the string under key into buf, truncating to
// len(buf) when it does not fit. It returns the number of bytes
// copied; truncation is not distinguishable from success by design.
func StringInto(obj *ir.Node, key string, buf []byte) (int, bool) {
	s, ok := stringOf(obj.Get(key))
	if !ok {
		return 0, false
	}
	return copy(buf, s), true
}

// Setters construct the value node and hand it to the container; they
// report false when the container variant does not match.

func SetBool(obj *ir.Node, key string, v bool) bool {
	return obj.Set(key, ir.FromBool(v))
}

func SetNull(obj *ir.Node, key string) bool {
	return obj.Set(key, ir.Null())
}

func SetFloat64(obj *ir.Node, key string, v float64) bool {
	return obj.Set(key, ir.FromFloat(v))
}

func SetFloat32(obj *ir.Node, key string, v float32) bool {
	return obj.Set(key, ir.FromFloat(float64(v)))
}

func SetInt(obj *ir.Node, key string, v int64) bool {
	return obj.Set(key, ir.FromInt(v))
}

func SetUint(obj *ir.Node, key string, v uint64) bool {
	return obj.Set(key, uintNode(v))
}

func SetString(obj *ir.Node, key string, v string) bool {
	return obj.Set(key, ir.FromString(v))
}

func boolOf(v *ir.Node) (bool, bool) {
	if v == nil || v.Type != ir.BoolType {
		return false, false
	}
	return v.Bool, true
}

func floatOf(v *ir.Node) (float64, bool) {
	if v == nil || v.Type != ir.NumberType {
		return 0, false
	}
	return v.Float(), true
}

func intOf(v *ir.Node) (int64, bool) {
	if v == nil || v.Type != ir.NumberType {
		return 0, false
	}
	if v.Int64 != nil {
		return *v.Int64, true
	}
	f := v.Float()
	// int64 of a non-finite float is platform-defined, so both lanes
	// pin to zero
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, true
	}
	return int64(math.Round(f)), true
}

func stringOf(v *ir.Node) (string, bool) {
	if v == nil || v.Type != ir.StringType {
		return "", false
	}
	return v.String, true
}

func uintNode(v uint64) *ir.Node {
	if v <= math.MaxInt64 {
		return ir.FromInt(int64(v))
	}
	return ir.FromFloat(float64(v))
}
