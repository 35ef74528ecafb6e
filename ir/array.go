package ir

// Append adds child at the end of the array, taking ownership of it.
// It reports false, with no ownership transfer, when y is not an array
// or child is nil.
func (y *Node) Append(child *Node) bool {
	if y == nil || y.Type != ArrayType || child == nil {
		return false
	}
	child.Parent = y
	child.ParentIndex = len(y.Values)
	child.ParentField = ""
	y.Values = append(y.Values, child)
	return true
}

// At returns a borrowed reference to the i-th element (object value
// for objects), or nil when i is out of range or y holds a leaf
// variant. The reference is valid until the next mutation of y.
func (y *Node) At(i int) *Node {
	if y == nil || i < 0 || i >= len(y.Values) {
		return nil
	}
	switch y.Type {
	case ArrayType, ObjectType:
		return y.Values[i]
	default:
		return nil
	}
}

// SetAt replaces the i-th element, unlinking the prior occupant and
// taking ownership of child. It reports false when y is not an array,
// i is out of range, or child is nil.
func (y *Node) SetAt(i int, child *Node) bool {
	if y == nil || y.Type != ArrayType || child == nil || i < 0 || i >= len(y.Values) {
		return false
	}
	old := y.Values[i]
	old.Parent = nil
	old.ParentIndex = 0
	child.Parent = y
	child.ParentIndex = i
	child.ParentField = ""
	y.Values[i] = child
	return true
}

func (y *Node) InBounds(i int) bool {
	return y != nil && y.Type == ArrayType && i >= 0 && i < len(y.Values)
}
