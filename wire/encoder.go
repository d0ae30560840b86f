package wire

import "fmt"

// Encoder accumulates encoded bytes, shared by the varint/fixed/bytes
// sub-codecs and the recursive writer below.
type Encoder struct {
	buf []byte
}

// NewEncoder creates a new wire format encoder with no pre-sized buffer.
func NewEncoder() *Encoder {
	return &Encoder{buf: make([]byte, 0)}
}

// NewEncoderSize creates an encoder whose buffer is pre-allocated to size
// bytes, avoiding the repeated growth/copy a append-only encoder would
// otherwise pay for a large tree.
func NewEncoderSize(size int) *Encoder {
	return &Encoder{buf: make([]byte, 0, size)}
}

// Bytes returns the encoded bytes.
func (e *Encoder) Bytes() []byte {
	return e.buf
}

// Reset clears the encoder buffer, keeping its backing array.
func (e *Encoder) Reset() {
	e.buf = e.buf[:0]
}

// Encode serializes root's children back to wire bytes in two passes:
// first compute the exact output size, then write once into a buffer
// sized for it. PACKED nodes always re-derive their LEN payload from
// Children — the raw bytes retained at decode time (Node.Bytes) are read
// by the renderers but never trusted by the encoder, so an edited child
// is reflected on re-encode.
func Encode(root *Node) ([]byte, error) {
	size := sizeOfChildren(root.Children)
	e := NewEncoderSize(size)

	if err := encodeChildren(e, root.Children); err != nil {
		return nil, err
	}
	return e.Bytes(), nil
}

func encodeChildren(e *Encoder, children []*Node) error {
	for _, c := range children {
		if err := encodeNode(e, c); err != nil {
			return err
		}
	}
	return nil
}

func encodeNode(e *Encoder, n *Node) error {
	switch n.Kind {
	case KindVarint:
		for _, v := range n.Values {
			e.EncodeVarint(uint64(MakeTag(n.Tag, WireVarint)))
			e.EncodeVarint(v)
		}

	case KindI64:
		for _, v := range n.Values {
			e.EncodeVarint(uint64(MakeTag(n.Tag, WireI64)))
			e.EncodeI64(v)
		}

	case KindI32:
		for _, v := range n.Values {
			e.EncodeVarint(uint64(MakeTag(n.Tag, WireI32)))
			e.EncodeI32(uint32(v))
		}

	case KindBinary:
		for _, b := range n.Bytes {
			e.EncodeVarint(uint64(MakeTag(n.Tag, WireLen)))
			e.EncodeBytes(b)
		}

	case KindGroup:
		e.EncodeVarint(uint64(MakeTag(n.Tag, WireSGroup)))
		if err := encodeChildren(e, n.Children); err != nil {
			return err
		}
		e.EncodeVarint(uint64(MakeTag(n.Tag, WireEGroup)))

	case KindPacked:
		sub := NewEncoderSize(sizeOfChildren(n.Children))
		if err := encodeChildren(sub, n.Children); err != nil {
			return err
		}
		e.EncodeVarint(uint64(MakeTag(n.Tag, WireLen)))
		e.EncodeBytes(sub.Bytes())

	case KindRepeat:
		for _, c := range n.Children {
			if err := encodeNode(e, c); err != nil {
				return err
			}
		}

	case KindUndefined:
		// The sentinel/root kind carries nothing of its own to emit.

	default:
		return fmt.Errorf("wire: cannot encode node kind %s", n.Kind)
	}
	return nil
}

// sizeOfChildren returns the exact number of bytes encodeChildren would
// write for children.
func sizeOfChildren(children []*Node) int {
	sum := 0
	for _, c := range children {
		sum += sizeOfNode(c)
	}
	return sum
}

func sizeOfNode(n *Node) int {
	switch n.Kind {
	case KindVarint:
		sum := 0
		for _, v := range n.Values {
			sum += VarintSize(uint64(MakeTag(n.Tag, WireVarint))) + VarintSize(v)
		}
		return sum

	case KindI64:
		keySize := VarintSize(uint64(MakeTag(n.Tag, WireI64)))
		return len(n.Values) * (keySize + 8)

	case KindI32:
		keySize := VarintSize(uint64(MakeTag(n.Tag, WireI32)))
		return len(n.Values) * (keySize + 4)

	case KindBinary:
		keySize := VarintSize(uint64(MakeTag(n.Tag, WireLen)))
		sum := 0
		for _, b := range n.Bytes {
			sum += keySize + BytesSize(b)
		}
		return sum

	case KindGroup:
		startSize := VarintSize(uint64(MakeTag(n.Tag, WireSGroup)))
		endSize := VarintSize(uint64(MakeTag(n.Tag, WireEGroup)))
		return startSize + sizeOfChildren(n.Children) + endSize

	case KindPacked:
		payloadSize := sizeOfChildren(n.Children)
		keySize := VarintSize(uint64(MakeTag(n.Tag, WireLen)))
		return keySize + VarintSize(uint64(payloadSize)) + payloadSize

	case KindRepeat:
		sum := 0
		for _, c := range n.Children {
			sum += sizeOfNode(c)
		}
		return sum

	default:
		return 0
	}
}
