package wire

// Node is the in-memory representation of one parsed (or hand-built) field
// and, for container kinds, its children. Rather than resolving a tag to a
// named, typed field against a schema, a Node just records what the wire
// told us — tag, kind, and raw values.
//
// Scalar kinds keep Bytes/Children empty, BINARY keeps Values empty,
// GROUP/PACKED/REPEAT/UNDEFINED keep Values and Bytes empty and use
// Children, and PACKED additionally retains the original LEN payload as
// its single Bytes entry for round-trip fidelity. One struct with a Kind
// discriminator stands in for what would otherwise be a type hierarchy.
type Node struct {
	Kind     Kind
	Tag      int64
	Values   []uint64
	Bytes    [][]byte
	Children []*Node
}

// Undefined is the sentinel returned by Get when no child has the
// requested tag, and is also the kind used for the implicit root.
func Undefined() *Node {
	return &Node{Kind: KindUndefined}
}

// NewRoot creates the implicit root of a decoded tree: an UNDEFINED node
// with tag 0 whose children are the top-level fields in insertion order.
func NewRoot() *Node {
	return &Node{Kind: KindUndefined}
}

// NewVarint builds a VARINT node carrying a single value.
func NewVarint(tag int64, value uint64) *Node {
	return &Node{Kind: KindVarint, Tag: tag, Values: []uint64{value}}
}

// NewVarintRepeated builds a VARINT node carrying multiple values (as
// produced by merging repeated occurrences of the same tag).
func NewVarintRepeated(tag int64, values []uint64) *Node {
	return &Node{Kind: KindVarint, Tag: tag, Values: values}
}

// NewI32 builds an I32 node. Only the low 32 bits of value are meaningful;
// higher bits are ignored on encode.
func NewI32(tag int64, value uint32) *Node {
	return &Node{Kind: KindI32, Tag: tag, Values: []uint64{uint64(value)}}
}

// NewI64 builds an I64 node carrying a single 64-bit value.
func NewI64(tag int64, value uint64) *Node {
	return &Node{Kind: KindI64, Tag: tag, Values: []uint64{value}}
}

// NewBinary builds a BINARY node carrying a single raw byte string.
func NewBinary(tag int64, value []byte) *Node {
	return &Node{Kind: KindBinary, Tag: tag, Bytes: [][]byte{value}}
}

// NewGroup builds a GROUP node from an ordered list of children.
func NewGroup(tag int64, children ...*Node) *Node {
	return &Node{Kind: KindGroup, Tag: tag, Children: children}
}

// NewPacked builds a PACKED node: the original LEN payload plus the
// children produced by successfully re-parsing it as a message.
func NewPacked(tag int64, payload []byte, children []*Node) *Node {
	return &Node{Kind: KindPacked, Tag: tag, Bytes: [][]byte{payload}, Children: children}
}

// Get returns the unique child with the given tag, or the Undefined
// sentinel if no such child exists. Mirrors the C++ original's
// message::id()/operator[] lookup.
func (n *Node) Get(tag int64) *Node {
	if n == nil {
		return Undefined()
	}
	for _, c := range n.Children {
		if c.Tag == tag {
			return c
		}
	}
	return Undefined()
}

// IsUndefined reports whether n is the "no such child" sentinel.
func (n *Node) IsUndefined() bool {
	return n == nil || n.Kind == KindUndefined
}

// AppendChild inserts f into n's children, applying the merger rules
// (merge.go) when a child with the same tag already exists. The only
// error it can return is KindConflict, and only in StrictMode.
func (n *Node) AppendChild(f *Node) error {
	return mergeChild(n, f)
}
