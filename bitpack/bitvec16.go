package bitpack

import (
	"fmt"
	"iter"
	"math/bits"
)

// BitVec16Capacity is the number of flags in a BitVec16.
const BitVec16Capacity = 16

// BitVec16 is a fixed set of 16 boolean flags packed into a uint16.
// Bit 0 is the least significant bit. The zero value is the empty set.
//
// BitVec16 is immutable: construct one via FromUint16, FromBools or a
// BitVec16Builder.
type BitVec16 struct {
	word uint16
}

// FromUint16 wraps a raw bit pattern. Every uint16 is valid.
func FromUint16(v uint16) BitVec16 {
	return BitVec16{word: v}
}

// FromBools packs the booleans into bit positions 0..15 in index order.
func FromBools(bs [16]bool) BitVec16 {
	var w uint16
	for i, b := range bs {
		if b {
			w |= 1 << i
		}
	}
	return BitVec16{word: w}
}

// Inner returns the raw bit pattern. FromUint16(v).Inner() == v for all v.
func (bv BitVec16) Inner() uint16 {
	return bv.word
}

// Capacity returns the number of flags, always 16.
func (bv BitVec16) Capacity() int {
	return BitVec16Capacity
}

// Bit reports whether the flag at index i is set.
// It panics if i is outside [0,16).
func (bv BitVec16) Bit(i int) bool {
	checkIndex(i)
	return bv.word&(1<<i) != 0
}

// Count returns the number of set flags.
func (bv BitVec16) Count() int {
	return bits.OnesCount16(bv.word)
}

// Bits returns a sequence of exactly 16 booleans in index order.
// The sequence is recomputed on every range; iterate again by ranging again.
func (bv BitVec16) Bits() iter.Seq[bool] {
	return func(yield func(bool) bool) {
		for i := 0; i < BitVec16Capacity; i++ {
			if !yield(bv.word&(1<<i) != 0) {
				return
			}
		}
	}
}

// OnIndices returns the indices of set flags in ascending order.
func (bv BitVec16) OnIndices() iter.Seq[int] {
	return func(yield func(int) bool) {
		for w := bv.word; w != 0; w &= w - 1 {
			if !yield(bits.TrailingZeros16(w)) {
				return
			}
		}
	}
}

// OffIndices returns the indices of unset flags in ascending order.
// Together with OnIndices it partitions {0..15}.
func (bv BitVec16) OffIndices() iter.Seq[int] {
	return func(yield func(int) bool) {
		for w := ^bv.word; w != 0; w &= w - 1 {
			if !yield(bits.TrailingZeros16(w)) {
				return
			}
		}
	}
}

// String renders the bit pattern most significant bit first.
func (bv BitVec16) String() string {
	return fmt.Sprintf("%016b", bv.word)
}

// BitVec16Builder accumulates set flags for a BitVec16.
//
// The builder is a fluent value type: each SetIndex returns an updated
// copy, so intermediate builders never alias the built result. The zero
// value builds the empty set.
type BitVec16Builder struct {
	word uint16
}

// NewBitVec16Builder returns an all-zero builder.
func NewBitVec16Builder() BitVec16Builder {
	return BitVec16Builder{}
}

// SetIndex sets the flag at index i. Setting the same index twice is
// idempotent. It panics if i is outside [0,16).
func (b BitVec16Builder) SetIndex(i int) BitVec16Builder {
	checkIndex(i)
	b.word |= 1 << i
	return b
}

// Build produces the immutable BitVec16.
func (b BitVec16Builder) Build() BitVec16 {
	return BitVec16{word: b.word}
}

// checkIndex enforces the [0,16) index contract shared by all
// 16-slot containers. Violations are caller bugs, not data errors.
func checkIndex(i int) {
	if i < 0 || i >= BitVec16Capacity {
		panic(fmt.Sprintf("bitpack: index %d out of range [0,16)", i))
	}
}
