package wire

// ===== PROTOBUF WIRE FORMAT TYPES =====

// WireKind is the 3-bit discriminator carried in the low bits of a key
// varint. Values 6 and 7 are reserved and are always rejected by the
// decoder, regardless of strict mode.
type WireKind int32

const (
	WireVarint WireKind = 0 // one or more base-128 varints
	WireI64    WireKind = 1 // 64-bit little-endian fixed width
	WireLen    WireKind = 2 // length-delimited bytes
	WireSGroup WireKind = 3 // deprecated group start
	WireEGroup WireKind = 4 // deprecated group end
	WireI32    WireKind = 5 // 32-bit little-endian fixed width
)

func (k WireKind) valid() bool {
	return k >= WireVarint && k <= WireI32
}

// Tag is a packed (field number << 3 | wire kind) varint value.
type Tag uint64

// MakeTag packs a tag number and wire kind into a single varint value.
func MakeTag(tagNumber int64, kind WireKind) Tag {
	return Tag(uint64(tagNumber)<<3 | uint64(kind))
}

// ParseTag unpacks a tag into its tag number and wire kind.
func ParseTag(tag Tag) (int64, WireKind) {
	return int64(tag >> 3), WireKind(tag & 0x7)
}

// Kind is the superset of node kinds the field tree uses in memory. It
// extends WireKind with derived kinds (PACKED, REPEAT, UNDEFINED) that
// never appear on the wire themselves.
type Kind int32

const (
	KindVarint    Kind = iota // wire: one or more unsigned 64-bit magnitudes
	KindI64                   // wire: one or more 64-bit little-endian values
	KindI32                   // wire: one or more 32-bit little-endian values
	KindBinary                // wire (LEN): one or more raw byte strings
	KindGroup                 // wire (SGROUP...EGROUP): ordered children
	KindPacked                // derived: a LEN payload that re-parsed as a message
	KindRepeat                // derived: multiple group/packed occurrences of one tag
	KindUndefined             // derived: implicit root, and the "no such child" sentinel
)

func (k Kind) String() string {
	switch k {
	case KindVarint:
		return "varint"
	case KindI64:
		return "int64"
	case KindI32:
		return "int32"
	case KindBinary:
		return "binary"
	case KindGroup:
		return "group"
	case KindPacked:
		return "packed"
	case KindRepeat:
		return "repeat"
	case KindUndefined:
		return "undefined"
	default:
		return "unknown"
	}
}
