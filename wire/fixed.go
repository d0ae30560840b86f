package wire

import (
	"encoding/binary"
	"fmt"
)

// FixedDecoder handles fixed-width (I32/I64) decoding operations.
type FixedDecoder struct {
	decoder *Decoder
}

// FixedEncoder handles fixed-width (I32/I64) encoding operations.
type FixedEncoder struct {
	encoder *Encoder
}

// NewFixedDecoder creates a new fixed decoder
func NewFixedDecoder(d *Decoder) *FixedDecoder {
	return &FixedDecoder{decoder: d}
}

// NewFixedEncoder creates a new fixed encoder
func NewFixedEncoder(e *Encoder) *FixedEncoder {
	return &FixedEncoder{encoder: e}
}

// DecodeI32 decodes a 32-bit little-endian value.
func (fd *FixedDecoder) DecodeI32() (uint32, error) {
	d := fd.decoder
	if d.pos+4 > len(d.buf) {
		return 0, fmt.Errorf("not enough data for i32")
	}

	value := binary.LittleEndian.Uint32(d.buf[d.pos:])
	d.pos += 4
	return value, nil
}

// DecodeI64 decodes a 64-bit little-endian value.
func (fd *FixedDecoder) DecodeI64() (uint64, error) {
	d := fd.decoder
	if d.pos+8 > len(d.buf) {
		return 0, fmt.Errorf("not enough data for i64")
	}

	value := binary.LittleEndian.Uint64(d.buf[d.pos:])
	d.pos += 8
	return value, nil
}

// EncodeI32 appends v as 4 little-endian bytes.
func (fe *FixedEncoder) EncodeI32(v uint32) {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	fe.encoder.buf = append(fe.encoder.buf, buf[:]...)
}

// EncodeI64 appends v as 8 little-endian bytes.
func (fe *FixedEncoder) EncodeI64(v uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	fe.encoder.buf = append(fe.encoder.buf, buf[:]...)
}

// Convenience methods for direct access.

// DecodeI32 - convenience method for the main decoder cursor.
func (d *Decoder) DecodeI32() (uint32, error) {
	fd := NewFixedDecoder(d)
	return fd.DecodeI32()
}

// DecodeI64 - convenience method for the main decoder cursor.
func (d *Decoder) DecodeI64() (uint64, error) {
	fd := NewFixedDecoder(d)
	return fd.DecodeI64()
}

// EncodeI32 - convenience method for the main encoder buffer.
func (e *Encoder) EncodeI32(v uint32) {
	fe := NewFixedEncoder(e)
	fe.EncodeI32(v)
}

// EncodeI64 - convenience method for the main encoder buffer.
func (e *Encoder) EncodeI64(v uint64) {
	fe := NewFixedEncoder(e)
	fe.EncodeI64(v)
}
