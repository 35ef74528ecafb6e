package ir

// Set binds child under key, taking ownership of child. An existing
// value under key is unlinked and replaced, so keys stay unique. Set
// reports false, with no ownership transfer, when y is not an object
// or child is nil.
func (y *Node) Set(key string, child *Node) bool {
	if y == nil || y.Type != ObjectType || child == nil {
		return false
	}
	child.ParentField = key
	child.Parent = y
	for i, field := range y.Fields {
		if field.String != key {
			continue
		}
		old := y.Values[i]
		old.Parent = nil
		old.ParentIndex = 0
		old.ParentField = ""
		child.ParentIndex = i
		y.Values[i] = child
		return true
	}
	i := len(y.Fields)
	child.ParentIndex = i
	y.Fields = append(y.Fields, &Node{
		Parent:      y,
		ParentIndex: i,
		ParentField: key,
		Type:        StringType,
		String:      key,
	})
	y.Values = append(y.Values, child)
	return true
}

// Get returns a borrowed reference to the value under key, or nil when
// key is absent or y is not an object. A present key bound to null
// yields the NullType node, not nil. The reference is valid until the
// next mutation of y.
func (y *Node) Get(key string) *Node {
	if y == nil || y.Type != ObjectType {
		return nil
	}
	n := len(y.Fields)
	for i := range n {
		if y.Fields[i].String == key {
			return y.Values[i]
		}
	}
	return nil
}

func (y *Node) Has(key string) bool {
	return y.Get(key) != nil
}

// Delete unlinks and removes the entry under key, reporting whether it
// was present.
func (y *Node) Delete(key string) bool {
	if y == nil || y.Type != ObjectType {
		return false
	}
	for i, field := range y.Fields {
		if field.String != key {
			continue
		}
		old := y.Values[i]
		old.Parent = nil
		old.ParentIndex = 0
		old.ParentField = ""
		y.Fields = append(y.Fields[:i], y.Fields[i+1:]...)
		y.Values = append(y.Values[:i], y.Values[i+1:]...)
		for j := i; j < len(y.Fields); j++ {
			y.Fields[j].ParentIndex = j
			y.Values[j].ParentIndex = j
		}
		return true
	}
	return false
}

// Key returns the i-th key in backing order, for external iteration.
// The order is whatever the object currently holds and is not stable
// across mutation.
func (y *Node) Key(i int) (string, bool) {
	if y == nil || y.Type != ObjectType || i < 0 || i >= len(y.Fields) {
		return "", false
	}
	return y.Fields[i].String, true
}

// Len is the number of entries of an object, the number of elements of
// an array, and 0 for any other variant.
func (y *Node) Len() int {
	if y == nil {
		return 0
	}
	switch y.Type {
	case ObjectType:
		return len(y.Fields)
	case ArrayType:
		return len(y.Values)
	default:
		return 0
	}
}
