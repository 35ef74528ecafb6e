package ir

// Equal reports deep equality of two trees. Numbers compare by value,
// so an exact 1 equals 1.0. Object comparison is key-based and ignores
// entry order; arrays compare element-wise in order. Two nil nodes are
// equal.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case NullType:
		return true
	case BoolType:
		return a.Bool == b.Bool
	case StringType:
		return a.String == b.String
	case NumberType:
		if a.Int64 != nil && b.Int64 != nil {
			return *a.Int64 == *b.Int64
		}
		return a.Float() == b.Float()
	case ArrayType:
		if len(a.Values) != len(b.Values) {
			return false
		}
		for i := range a.Values {
			if !Equal(a.Values[i], b.Values[i]) {
				return false
			}
		}
		return true
	case ObjectType:
		if len(a.Fields) != len(b.Fields) {
			return false
		}
		for i, field := range a.Fields {
			bv := b.Get(field.String)
			if bv == nil || !Equal(a.Values[i], bv) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
