package bitpack

// U4x2 packs two 4-bit fields into one byte: first is the low nibble,
// second the high nibble. A pure value type; with only two fields a direct
// constructor replaces a builder.
type U4x2 struct {
	b uint8
}

// NewU4x2 packs first and second, truncating both to their low 4 bits.
func NewU4x2(first, second uint8) U4x2 {
	return U4x2{b: second<<4 | first&itemMask}
}

// U4x2FromUint8 wraps a raw packed byte. Every uint8 is valid.
func U4x2FromUint8(v uint8) U4x2 {
	return U4x2{b: v}
}

// Inner returns the packed byte, second<<4 | first.
func (u U4x2) Inner() uint8 {
	return u.b
}

// First returns the low nibble.
func (u U4x2) First() uint8 {
	return u.b & itemMask
}

// Second returns the high nibble.
func (u U4x2) Second() uint8 {
	return u.b >> 4
}
