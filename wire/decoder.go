package wire

// Decoder is a cursor over a byte slice, shared by the varint/fixed/bytes
// sub-codecs (varint.go, fixed.go, bytes.go) and the recursive field-tree
// builder below.
type Decoder struct {
	buf []byte
	pos int
}

// NewDecoder creates a new wire format decoder positioned at the start of
// data.
func NewDecoder(data []byte) *Decoder {
	return &Decoder{buf: data, pos: 0}
}

// Decode parses buf into a field tree, the schema-less entry point.
// packedDepth controls how many levels of LEN speculative reinterpretation
// are attempted: -1 means unbounded, 0 means never, and k > 0 means only
// at depth <= k, with the top-level call counted as depth 1.
//
// The returned root is always non-nil, even on error, so a caller can
// inspect whatever was decoded before the failure. consumed and left
// describe how much of buf was read; left is non-zero only when err is
// non-nil or decoding stopped at a stray top-level EGROUP under
// StrictMode.
func Decode(buf []byte, packedDepth int) (root *Node, consumed, left int, err error) {
	d := NewDecoder(buf)
	root = NewRoot()

	_, err = decodeInto(d, root, 1, packedDepth, false)
	return root, d.pos, len(buf) - d.pos, err
}

// DecodeDefault decodes buf using the package's configured default packed
// depth.
func DecodeDefault(buf []byte) (*Node, int, int, error) {
	return Decode(buf, config.DefaultPackedDepth)
}

// decodeInto reads fields from d into parent until the buffer is
// exhausted or, when inGroup is true, a matching EGROUP is found.
// terminated reports the latter case. depth is the recursion depth of
// parent itself (the top-level message is depth 1); it gates both
// config.MaxDepth and the packed-depth speculation window.
func decodeInto(d *Decoder, parent *Node, depth, packedDepth int, inGroup bool) (terminated bool, err error) {
	for d.pos < len(d.buf) {
		rawKey, _, kerr := d.DecodeVarint()
		if kerr != nil {
			return false, &DecodeError{Kind: ErrTruncatedKey}
		}

		tag, kind := ParseTag(Tag(rawKey))
		if !kind.valid() {
			return false, &DecodeError{Kind: ErrUnknownWireKind, Tag: tag}
		}

		if d.pos == len(d.buf) && !(inGroup && kind == WireEGroup) {
			// The window ran out on a key that isn't an EGROUP closing an
			// enclosing group: a real error regardless of StrictMode.
			return false, &DecodeError{Kind: ErrTruncatedPayload, Tag: tag}
		}

		switch kind {
		case WireEGroup:
			if inGroup {
				return true, nil
			}
			if config.StrictMode {
				return false, &DecodeError{Kind: ErrUnterminatedGroup, Tag: tag}
			}
			// Q1: a stray EGROUP with no enclosing SGROUP, not at the end
			// of the buffer, is ignored.
			continue

		case WireSGroup:
			if depth+1 > config.MaxDepth {
				return false, &DecodeError{Kind: ErrDepthExceeded, Tag: tag}
			}

			child := NewGroup(tag)
			closed, cerr := decodeInto(d, child, depth+1, packedDepth, true)
			if cerr != nil {
				return false, wrapWithTag(cerr, tag)
			}
			if !closed {
				return false, &DecodeError{Kind: ErrUnterminatedGroup, Tag: tag}
			}
			if aerr := parent.AppendChild(child); aerr != nil {
				return false, aerr
			}

		case WireVarint:
			v, _, verr := d.DecodeVarint()
			if verr != nil {
				return false, &DecodeError{Kind: ErrTruncatedVarint, Tag: tag}
			}
			if aerr := parent.AppendChild(NewVarint(tag, v)); aerr != nil {
				return false, aerr
			}

		case WireI64:
			v, ferr := d.DecodeI64()
			if ferr != nil {
				return false, &DecodeError{Kind: ErrTruncatedFixed, Tag: tag}
			}
			if aerr := parent.AppendChild(NewI64(tag, v)); aerr != nil {
				return false, aerr
			}

		case WireI32:
			v, ferr := d.DecodeI32()
			if ferr != nil {
				return false, &DecodeError{Kind: ErrTruncatedFixed, Tag: tag}
			}
			if aerr := parent.AppendChild(NewI32(tag, v)); aerr != nil {
				return false, aerr
			}

		case WireLen:
			payload, berr := d.DecodeBytes()
			if berr != nil {
				return false, &DecodeError{Kind: ErrTruncatedLen, Tag: tag}
			}
			node := decodeLenField(tag, payload, depth, packedDepth)
			if aerr := parent.AppendChild(node); aerr != nil {
				return false, aerr
			}
		}
	}

	return false, nil
}

// decodeLenField implements speculative packed reinterpretation: a LEN
// payload is promoted to PACKED only if, within the packed_depth window,
// re-parsing it as a standalone message both succeeds and consumes it
// exactly. Otherwise it is kept as an opaque BINARY payload, exactly as
// the wire presented it.
func decodeLenField(tag int64, payload []byte, depth, packedDepth int) *Node {
	eligible := packedDepth == -1 || depth <= packedDepth
	if eligible && depth+1 <= config.MaxDepth {
		sub := NewDecoder(payload)
		candidate := &Node{Kind: KindUndefined}

		_, err := decodeInto(sub, candidate, depth+1, packedDepth, false)
		if err == nil && sub.pos == len(payload) {
			return NewPacked(tag, payload, candidate.Children)
		}
	}

	return NewBinary(tag, payload)
}
