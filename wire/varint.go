package wire

import "errors"

// Varint encoding/decoding errors
var (
	ErrVarintTooLong = errors.New("varint too long")
	ErrUnexpectedEOF = errors.New("unexpected EOF while reading varint")
)

// VarintDecoder handles varint decoding operations
type VarintDecoder struct {
	decoder *Decoder
}

// VarintEncoder handles varint encoding operations
type VarintEncoder struct {
	encoder *Encoder
}

// NewVarintDecoder creates a new varint decoder
func NewVarintDecoder(d *Decoder) *VarintDecoder {
	return &VarintDecoder{decoder: d}
}

// NewVarintEncoder creates a new varint encoder
func NewVarintEncoder(e *Encoder) *VarintEncoder {
	return &VarintEncoder{encoder: e}
}

// DecodeVarint decodes a base-128 little-endian varint from the current
// position. At most 10 bytes are read; a window that runs out before the
// continuation bit clears fails with ErrUnexpectedEOF (the decoder reports
// this as the key/value truncation kinds in errors.go).
func (vd *VarintDecoder) DecodeVarint() (uint64, int, error) {
	d := vd.decoder
	start := d.pos

	var result uint64
	var shift uint

	for i := 0; i < 10; i++ {
		if d.pos >= len(d.buf) {
			d.pos = start
			return 0, 0, ErrUnexpectedEOF
		}

		b := d.buf[d.pos]
		d.pos++

		result |= uint64(b&0x7F) << shift

		if b&0x80 == 0 {
			return result, d.pos - start, nil
		}

		shift += 7
	}

	d.pos = start
	return 0, 0, ErrVarintTooLong
}

// SkipVarint skips over a varint without decoding it.
func (vd *VarintDecoder) SkipVarint() error {
	_, _, err := vd.DecodeVarint()
	return err
}

// EncodeVarint appends v to the encoder buffer in base-128 little-endian
// continuation form. Zero encodes as a single 0x00 byte.
func (ve *VarintEncoder) EncodeVarint(v uint64) {
	for v >= 0x80 {
		ve.encoder.buf = append(ve.encoder.buf, byte(v)|0x80)
		v >>= 7
	}
	ve.encoder.buf = append(ve.encoder.buf, byte(v))
}

// VarintSize returns the exact number of bytes EncodeVarint would write for
// v, computed without actually encoding: one byte for each 7-bit stripe up
// to and including the highest non-zero one (zero still takes one byte).
func VarintSize(v uint64) int {
	switch {
	case v < 1<<7:
		return 1
	case v < 1<<14:
		return 2
	case v < 1<<21:
		return 3
	case v < 1<<28:
		return 4
	case v < 1<<35:
		return 5
	case v < 1<<42:
		return 6
	case v < 1<<49:
		return 7
	case v < 1<<56:
		return 8
	case v < 1<<63:
		return 9
	default:
		return 10
	}
}

// Convenience methods for direct access, exposing the sub-codec methods
// straight on Decoder/Encoder.

// DecodeVarint - convenience method for the main decoder cursor.
func (d *Decoder) DecodeVarint() (uint64, int, error) {
	vd := NewVarintDecoder(d)
	return vd.DecodeVarint()
}

// EncodeVarint - convenience method for the main encoder buffer.
func (e *Encoder) EncodeVarint(v uint64) {
	ve := NewVarintEncoder(e)
	ve.EncodeVarint(v)
}
