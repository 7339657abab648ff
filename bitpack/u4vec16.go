package bitpack

import (
	"fmt"
	"iter"
)

const (
	// U4Vec16Capacity is the number of 4-bit fields in a U4Vec16.
	U4Vec16Capacity = 16

	itemBits = 4
	itemMask = 0xF
)

// U4Vec16 is a vector of sixteen 4-bit fields packed into a uint64.
// Field i occupies bits [4i, 4i+4); field values range over 0..15.
//
// Unlike the other containers, U4Vec16 has mutable identity: SetItem and
// ResetItem update the receiver in place. Copies are independent after
// assignment, as with any value type.
type U4Vec16 struct {
	word uint64
}

// FromUint64 wraps a raw packed word. Every uint64 is valid.
func FromUint64(v uint64) U4Vec16 {
	return U4Vec16{word: v}
}

// FromItems packs the values into fields 0..15 in index order.
// Values wider than 4 bits are truncated to their low 4 bits, the same
// lossy normalization every write path applies.
func FromItems(items [16]uint8) U4Vec16 {
	var v U4Vec16
	for i, it := range items {
		v.word |= uint64(it&itemMask) << (itemBits * i)
	}
	return v
}

// Inner returns the raw packed word. FromUint64(v).Inner() == v for all v.
func (v U4Vec16) Inner() uint64 {
	return v.word
}

// Capacity returns the number of fields, always 16.
func (v U4Vec16) Capacity() int {
	return U4Vec16Capacity
}

// Item returns the 4-bit field at index i as a uint8 in 0..15.
// It panics if i is outside [0,16).
func (v U4Vec16) Item(i int) uint8 {
	checkIndex(i)
	return uint8(v.word>>(itemBits*i)) & itemMask
}

// SetItem stores value at field i, truncating value to its low 4 bits.
// It panics if i is outside [0,16).
func (v *U4Vec16) SetItem(i int, value uint8) {
	checkIndex(i)
	shift := itemBits * i
	v.word = v.word&^(uint64(itemMask)<<shift) | uint64(value&itemMask)<<shift
}

// ResetItem clears field i back to zero.
// It panics if i is outside [0,16).
func (v *U4Vec16) ResetItem(i int) {
	checkIndex(i)
	v.word &^= uint64(itemMask) << (itemBits * i)
}

// Items returns a sequence of exactly 16 field values in index order.
// The sequence is recomputed on every range.
func (v U4Vec16) Items() iter.Seq[uint8] {
	return func(yield func(uint8) bool) {
		for i := 0; i < U4Vec16Capacity; i++ {
			if !yield(uint8(v.word>>(itemBits*i)) & itemMask) {
				return
			}
		}
	}
}

// String renders the fields in index order.
func (v U4Vec16) String() string {
	out := make([]uint8, 0, U4Vec16Capacity)
	for it := range v.Items() {
		out = append(out, it)
	}
	return fmt.Sprint(out)
}

// U4Vec16Builder accumulates field writes for a U4Vec16.
//
// SetItem overwrites: the last write to a field wins, in contrast to
// BitVec16Builder's OR accumulation. The zero value builds the all-zero
// vector.
type U4Vec16Builder struct {
	word uint64
}

// NewU4Vec16Builder returns an all-zero builder.
func NewU4Vec16Builder() U4Vec16Builder {
	return U4Vec16Builder{}
}

// SetItem stores value at field i, truncating value to its low 4 bits.
// It panics if i is outside [0,16).
func (b U4Vec16Builder) SetItem(i int, value uint8) U4Vec16Builder {
	checkIndex(i)
	shift := itemBits * i
	b.word = b.word&^(uint64(itemMask)<<shift) | uint64(value&itemMask)<<shift
	return b
}

// Build produces the packed U4Vec16.
func (b U4Vec16Builder) Build() U4Vec16 {
	return U4Vec16{word: b.word}
}
