package bitpack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitVec16_RoundTrip(t *testing.T) {
	for v := 0; v <= 0xFFFF; v++ {
		bv := FromUint16(uint16(v))
		if bv.Inner() != uint16(v) {
			t.Fatalf("round trip failed for %#04x: got %#04x", v, bv.Inner())
		}
	}
}

func TestBitVec16_BitAgreement(t *testing.T) {
	patterns := []uint16{0, 1, 0xFFFF, 0b1000_0000_0000_1101, 0b1010_1010_1010_1010}

	for _, v := range patterns {
		bv := FromUint16(v)
		for i := 0; i < 16; i++ {
			assert.Equal(t, (v>>i)&1 == 1, bv.Bit(i), "pattern %#04x bit %d", v, i)
		}
	}
}

func TestBitVec16_FromBools(t *testing.T) {
	var bs [16]bool
	bs[0] = true
	bs[2] = true
	bs[3] = true
	bs[15] = true

	bv := FromBools(bs)
	assert.Equal(t, uint16(0b1000_0000_0000_1101), bv.Inner())
	assert.Equal(t, 4, bv.Count())
}

func TestBitVec16_OnOffIndices(t *testing.T) {
	bv := FromUint16(0b1000_0000_0000_1101)

	var on []int
	for i := range bv.OnIndices() {
		on = append(on, i)
	}
	assert.Equal(t, []int{0, 2, 3, 15}, on)

	var off []int
	for i := range bv.OffIndices() {
		off = append(off, i)
	}
	assert.Equal(t, []int{1, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14}, off)
}

func TestBitVec16_Partition(t *testing.T) {
	// On and off indices are disjoint, ascending, and cover {0..15}.
	patterns := []uint16{0, 0xFFFF, 0x00FF, 0xAAAA, 0x8001, 42}

	for _, v := range patterns {
		bv := FromUint16(v)

		seen := make(map[int]int)
		last := -1
		for i := range bv.OnIndices() {
			require.Greater(t, i, last, "pattern %#04x: on indices not ascending", v)
			last = i
			seen[i]++
		}
		last = -1
		for i := range bv.OffIndices() {
			require.Greater(t, i, last, "pattern %#04x: off indices not ascending", v)
			last = i
			seen[i]++
		}

		require.Len(t, seen, 16, "pattern %#04x: indices do not cover {0..15}", v)
		for i, n := range seen {
			require.Equal(t, 1, n, "pattern %#04x: index %d visited %d times", v, i, n)
		}
	}
}

func TestBitVec16_Bits(t *testing.T) {
	bv := FromUint16(0b0000_0000_0000_0101)

	var bits []bool
	for b := range bv.Bits() {
		bits = append(bits, b)
	}

	require.Len(t, bits, 16)
	assert.True(t, bits[0])
	assert.False(t, bits[1])
	assert.True(t, bits[2])
	for i := 3; i < 16; i++ {
		assert.False(t, bits[i])
	}
}

func TestBitVec16_IteratorsRestart(t *testing.T) {
	bv := FromUint16(0xF0F0)
	seq := bv.OnIndices()

	var first, second []int
	for i := range seq {
		first = append(first, i)
	}
	for i := range seq {
		second = append(second, i)
	}
	assert.Equal(t, first, second)
}

func TestBitVec16Builder(t *testing.T) {
	bv := NewBitVec16Builder().
		SetIndex(1).
		SetIndex(4).
		SetIndex(15).
		Build()

	assert.Equal(t, uint16(1<<1|1<<4|1<<15), bv.Inner())
}

func TestBitVec16Builder_Idempotent(t *testing.T) {
	once := NewBitVec16Builder().SetIndex(3).Build()
	twice := NewBitVec16Builder().SetIndex(3).SetIndex(3).Build()

	assert.Equal(t, once, twice)
}

func TestBitVec16_BoundsPanics(t *testing.T) {
	bv := FromUint16(0)

	assert.Panics(t, func() { bv.Bit(16) })
	assert.Panics(t, func() { bv.Bit(-1) })
	assert.Panics(t, func() { NewBitVec16Builder().SetIndex(16) })
}

func TestBitVec16_Capacity(t *testing.T) {
	assert.Equal(t, 16, FromUint16(0).Capacity())
}
