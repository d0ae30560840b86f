package wire

import "testing"

func key(tag int64, kind WireKind) byte {
	return byte(uint64(tag)<<3 | uint64(kind))
}

func TestDecodeSingleVarintField(t *testing.T) {
	// tag 1, wire varint, value 150 (0x96 0x01)
	buf := []byte{key(1, WireVarint), 0x96, 0x01}

	root, consumed, left, err := Decode(buf, -1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if consumed != len(buf) || left != 0 {
		t.Errorf("consumed=%d left=%d, want %d/0", consumed, left, len(buf))
	}

	got := root.Get(1)
	if got.Kind != KindVarint || got.Values[0] != 150 {
		t.Errorf("unexpected field: %+v", got)
	}
}

func TestDecodeBinaryField(t *testing.T) {
	buf := []byte{key(2, WireLen), 3, 'a', 'b', 'c'}
	root, _, _, err := Decode(buf, 0) // packed_depth=0: never speculate
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := root.Get(2)
	if got.Kind != KindBinary || string(got.Bytes[0]) != "abc" {
		t.Errorf("unexpected field: %+v", got)
	}
}

func TestDecodeGroupRoundTrip(t *testing.T) {
	var buf []byte
	buf = append(buf, key(5, WireSGroup))
	buf = append(buf, key(1, WireVarint), 1)
	buf = append(buf, key(5, WireEGroup))

	root, consumed, left, err := Decode(buf, -1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if consumed != len(buf) || left != 0 {
		t.Fatalf("consumed=%d left=%d", consumed, left)
	}

	got := root.Get(5)
	if got.Kind != KindGroup {
		t.Fatalf("expected KindGroup, got %v", got.Kind)
	}
	if child := got.Get(1); child.Kind != KindVarint || child.Values[0] != 1 {
		t.Errorf("unexpected nested field: %+v", child)
	}
}

func TestDecodeStrayEGroupIgnoredByDefault(t *testing.T) {
	buf := []byte{key(9, WireEGroup), key(1, WireVarint), 7}

	root, _, _, err := Decode(buf, -1)
	if err != nil {
		t.Fatalf("unexpected error outside StrictMode: %v", err)
	}
	if got := root.Get(1); got.Kind != KindVarint || got.Values[0] != 7 {
		t.Errorf("decoding should have continued past the stray EGROUP, got %+v", got)
	}
}

func TestDecodeStrayEGroupErrorsInStrictMode(t *testing.T) {
	withConfig(t, Config{StrictMode: true, MaxDepth: 100, DefaultPackedDepth: 2}, func() {
		buf := []byte{key(9, WireEGroup), key(1, WireVarint), 7}
		_, _, _, err := Decode(buf, -1)
		de, ok := err.(*DecodeError)
		if !ok || de.Kind != ErrUnterminatedGroup {
			t.Fatalf("expected ErrUnterminatedGroup, got %v", err)
		}
	})
}

func TestDecodeStrayEGroupAtEndOfBufferFails(t *testing.T) {
	buf := []byte{key(9, WireEGroup)}
	_, _, _, err := Decode(buf, -1)
	de, ok := err.(*DecodeError)
	if !ok || de.Kind != ErrTruncatedPayload {
		t.Fatalf("expected ErrTruncatedPayload even outside StrictMode, got %v", err)
	}
}

func TestDecodeUnterminatedGroupErrors(t *testing.T) {
	buf := []byte{key(5, WireSGroup), key(1, WireVarint), 1}
	_, _, _, err := Decode(buf, -1)
	de, ok := err.(*DecodeError)
	if !ok || de.Kind != ErrUnterminatedGroup {
		t.Fatalf("expected ErrUnterminatedGroup, got %v", err)
	}
}

func TestDecodePromotesLenToPacked(t *testing.T) {
	// inner payload: tag 1 varint value 1, tag 1 varint value 2 (packable repeated varints)
	inner := []byte{key(1, WireVarint), 1, key(1, WireVarint), 2}
	buf := append([]byte{key(4, WireLen), byte(len(inner))}, inner...)

	root, _, _, err := Decode(buf, -1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := root.Get(4)
	if got.Kind != KindPacked {
		t.Fatalf("expected speculative promotion to KindPacked, got %v", got.Kind)
	}
	if child := got.Get(1); len(child.Values) != 2 {
		t.Errorf("expected merged packed children, got %+v", child)
	}
}

func TestDecodePackedDepthZeroNeverPromotes(t *testing.T) {
	inner := []byte{key(1, WireVarint), 1}
	buf := append([]byte{key(4, WireLen), byte(len(inner))}, inner...)

	root, _, _, err := Decode(buf, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := root.Get(4); got.Kind != KindBinary {
		t.Errorf("packed_depth=0 should never promote, got %v", got.Kind)
	}
}

func TestDecodeTruncatedKeyFails(t *testing.T) {
	buf := []byte{0x80}
	_, _, _, err := Decode(buf, -1)
	de, ok := err.(*DecodeError)
	if !ok || de.Kind != ErrTruncatedKey {
		t.Fatalf("expected ErrTruncatedKey, got %v", err)
	}
}

func TestDecodeReservedWireKindFails(t *testing.T) {
	buf := []byte{key(1, WireKind(6))}
	_, _, _, err := Decode(buf, -1)
	de, ok := err.(*DecodeError)
	if !ok || de.Kind != ErrUnknownWireKind {
		t.Fatalf("expected ErrUnknownWireKind, got %v", err)
	}
}

func TestDecodeDepthExceededOnDeeplyNestedGroups(t *testing.T) {
	withConfig(t, Config{StrictMode: false, MaxDepth: 3, DefaultPackedDepth: -1}, func() {
		var buf []byte
		for i := 0; i < 5; i++ {
			buf = append(buf, key(1, WireSGroup))
		}
		for i := 0; i < 5; i++ {
			buf = append(buf, key(1, WireEGroup))
		}

		_, _, _, err := Decode(buf, -1)
		de, ok := err.(*DecodeError)
		if !ok || de.Kind != ErrDepthExceeded {
			t.Fatalf("expected ErrDepthExceeded, got %v", err)
		}
	})
}
