package varicode

// EncodeASCIIByte returns the bits of Table[b] (MSB-first, dropping no
// bits — the table entries have no leading zeros by construction),
// followed by the two-bit `00` inter-character delimiter.
func EncodeASCIIByte(b byte) []bool {
	code := Table[b&0x7f]
	bits := make([]bool, 0, len(code)+2)
	for _, c := range code {
		bits = append(bits, c == '1')
	}
	bits = append(bits, false, false)
	return bits
}

// reverse maps a codeword's value, shifted left by 2 (i.e. as if
// followed by its two trailing `00` delimiter bits), to the ASCII byte
// it decodes to.
var reverse = buildReverse()

func buildReverse() map[uint32]byte {
	m := make(map[uint32]byte, 128)
	for b, code := range Table {
		var v uint32
		for _, c := range code {
			v <<= 1
			if c == '1' {
				v |= 1
			}
		}
		m[v<<2] = byte(b)
	}
	return m
}

// Decoder performs the streaming Varicode decode: an accumulator reset
// whenever its two low bits are `00` (the inter-character delimiter).
type Decoder struct {
	acc uint32
}

// NewDecoder builds a Decoder with a zero accumulator.
func NewDecoder() *Decoder { return &Decoder{} }

// Feed processes one incoming bit. It returns the decoded byte and true
// the instant the accumulator matches a complete codeword followed by
// its `00` delimiter; otherwise ok is false. A decoded byte is emitted
// at the first `00` suffix that completes a known pattern.
func (d *Decoder) Feed(bit bool) (b byte, ok bool) {
	d.acc <<= 1
	if bit {
		d.acc |= 1
	}
	b, ok = reverse[d.acc]
	if d.acc&3 == 0 {
		d.acc = 0
	}
	return b, ok
}
