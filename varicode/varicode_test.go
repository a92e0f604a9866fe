package varicode

import "testing"

func TestRoundTripAllBytes(t *testing.T) {
	for b := 0; b < 128; b++ {
		bits := EncodeASCIIByte(byte(b))
		dec := NewDecoder()
		var gotByte byte
		gotOK := false
		for _, bit := range bits {
			if out, ok := dec.Feed(bit); ok {
				gotByte, gotOK = out, true
			}
		}
		if !gotOK {
			t.Fatalf("byte %d: never decoded", b)
		}
		if gotByte != byte(b) {
			t.Errorf("byte %d: decoded as %d", b, gotByte)
		}
	}
}

func TestDecodeIgnoresLeadingZeroPreamble(t *testing.T) {
	dec := NewDecoder()
	for i := 0; i < 80; i++ {
		if _, ok := dec.Feed(false); ok {
			t.Fatalf("preamble bit %d unexpectedly decoded a byte", i)
		}
	}
	bits := EncodeASCIIByte('K')
	var got byte
	var ok bool
	for _, bit := range bits {
		if b, hit := dec.Feed(bit); hit {
			got, ok = b, true
		}
	}
	if !ok || got != 'K' {
		t.Errorf("got byte=%d ok=%v, want 'K'", got, ok)
	}
}

func TestEncodeEndsWithDelimiter(t *testing.T) {
	bits := EncodeASCIIByte('e')
	n := len(bits)
	if bits[n-1] || bits[n-2] {
		t.Errorf("expected trailing 00 delimiter, got %v", bits[n-2:])
	}
}

func TestDifferentialRoundTrip(t *testing.T) {
	bs := []bool{true, false, false, true, true, true, false, true, false, false}
	enc := NewDiffEncoder()
	diffed := make([]bool, len(bs))
	for i, b := range bs {
		diffed[i] = enc.Encode(b)
	}
	dec := NewDiffDecoder()
	for i, d := range diffed {
		got := dec.Decode(d)
		if got != bs[i] {
			t.Errorf("bit %d: got %v, want %v", i, got, bs[i])
		}
	}
}
