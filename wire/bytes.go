package wire

import "fmt"

// BytesDecoder handles length-delimited (LEN) decoding operations.
type BytesDecoder struct {
	decoder *Decoder
}

// BytesEncoder handles length-delimited (LEN) encoding operations.
type BytesEncoder struct {
	encoder *Encoder
}

// NewBytesDecoder creates a new bytes decoder
func NewBytesDecoder(d *Decoder) *BytesDecoder {
	return &BytesDecoder{decoder: d}
}

// NewBytesEncoder creates a new bytes encoder
func NewBytesEncoder(e *Encoder) *BytesEncoder {
	return &BytesEncoder{encoder: e}
}

// DecodeBytes decodes a length-prefixed byte string: a varint length
// followed by that many opaque bytes. The returned slice is a copy so the
// tree never aliases the input buffer.
func (bd *BytesDecoder) DecodeBytes() ([]byte, error) {
	vd := NewVarintDecoder(bd.decoder)
	length, _, err := vd.DecodeVarint()
	if err != nil {
		return nil, err
	}

	d := bd.decoder
	if d.pos+int(length) > len(d.buf) {
		return nil, fmt.Errorf("bytes truncated: need %d bytes, have %d", length, len(d.buf)-d.pos)
	}

	data := make([]byte, length)
	copy(data, d.buf[d.pos:d.pos+int(length)])
	d.pos += int(length)

	return data, nil
}

// EncodeBytes appends data as a length-prefixed byte string.
func (be *BytesEncoder) EncodeBytes(data []byte) {
	ve := NewVarintEncoder(be.encoder)
	ve.EncodeVarint(uint64(len(data)))
	be.encoder.buf = append(be.encoder.buf, data...)
}

// BytesSize returns the number of bytes EncodeBytes would write for data.
func BytesSize(data []byte) int {
	return VarintSize(uint64(len(data))) + len(data)
}

// Convenience methods for direct access.

// DecodeBytes - convenience method for the main decoder cursor.
func (d *Decoder) DecodeBytes() ([]byte, error) {
	bd := NewBytesDecoder(d)
	return bd.DecodeBytes()
}

// EncodeBytes - convenience method for the main encoder buffer.
func (e *Encoder) EncodeBytes(data []byte) {
	be := NewBytesEncoder(e)
	be.EncodeBytes(data)
}
