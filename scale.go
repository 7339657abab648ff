package muzze

import (
	"iter"

	"github.com/veminovici/muzze/bitpack"
)

// Scale is a set of semitone intervals from an implicit root note, stored
// as a bitpack.BitVec16: bit i (1-15) is set when the interval of i
// semitones belongs to the scale. Bit 0 is reserved for the root, which is
// always present and never iterated as an interval.
//
// The bit pattern is the single source of truth; Intervals, Steps and
// Apply are all derived views over it.
type Scale struct {
	pattern bitpack.BitVec16
}

// ScaleFromUint16 wraps a raw bit pattern as a Scale.
func ScaleFromUint16(pattern uint16) Scale {
	return Scale{pattern: bitpack.FromUint16(pattern)}
}

// Inner returns the raw bit pattern. ScaleFromUint16(v).Inner() == v.
func (s Scale) Inner() uint16 {
	return s.pattern.Inner()
}

// Intervals returns the scale's semitone intervals in ascending order.
// The root (bit 0) is implicit and not emitted.
func (s Scale) Intervals() iter.Seq[Interval] {
	return func(yield func(Interval) bool) {
		for i := range s.pattern.OnIndices() {
			if i == 0 {
				continue
			}
			if !yield(Interval(i)) {
				return
			}
		}
	}
}

// Steps returns the semitone distances between consecutive scale notes,
// starting from the root. The sum of all steps equals the scale's last
// interval.
func (s Scale) Steps() iter.Seq[Step] {
	return func(yield func(Step) bool) {
		last := Interval(0)
		for iv := range s.Intervals() {
			if !yield(Step(iv - last)) {
				return
			}
			last = iv
		}
	}
}

// Apply transposes the scale onto a root note, yielding the root itself
// followed by root+interval for every interval, in ascending order.
func (s Scale) Apply(root uint8) iter.Seq[uint8] {
	return func(yield func(uint8) bool) {
		if !yield(root) {
			return
		}
		for iv := range s.Intervals() {
			if !yield(root + uint8(iv)) {
				return
			}
		}
	}
}

// String renders the scale's step pattern, e.g. "W-W-H-W-W-W-H".
func (s Scale) String() string {
	return joinSeq(s.Steps(), "-")
}

// ScaleBuilder accumulates absolute intervals for a Scale. Interval order
// does not matter; the builder ORs each interval's bit into the pattern.
// The zero value builds the empty scale (root only).
type ScaleBuilder struct {
	inner bitpack.BitVec16Builder
}

// NewScaleBuilder returns an empty builder.
func NewScaleBuilder() ScaleBuilder {
	return ScaleBuilder{}
}

// SetInterval marks the interval of n semitones as part of the scale.
// It panics if n is outside [0,16).
func (b ScaleBuilder) SetInterval(n int) ScaleBuilder {
	b.inner = b.inner.SetIndex(n)
	return b
}

// Build produces the immutable Scale.
func (b ScaleBuilder) Build() Scale {
	return Scale{pattern: b.inner.Build()}
}

// ScaleStepBuilder accumulates a scale from successive steps. Each AddStep
// advances a running semitone offset from the root and marks the resulting
// interval, so call order matters, unlike ScaleBuilder. A step sequence
// and an interval set with the same cumulative offsets build bit-identical
// scales.
type ScaleStepBuilder struct {
	inner  bitpack.BitVec16Builder
	offset int
}

// NewScaleStepBuilder returns a builder positioned at the root.
func NewScaleStepBuilder() ScaleStepBuilder {
	return ScaleStepBuilder{}
}

// AddStep advances by s semitones and marks the reached interval.
// It panics if the cumulative offset leaves [0,16).
func (b ScaleStepBuilder) AddStep(s Step) ScaleStepBuilder {
	b.offset += int(s)
	b.inner = b.inner.SetIndex(b.offset)
	return b
}

// Build produces the immutable Scale.
func (b ScaleStepBuilder) Build() Scale {
	return Scale{pattern: b.inner.Build()}
}

// Named scale patterns. Bit i marks the interval of i semitones; bit 0 is
// the reserved root.
var (
	// Major follows the step pattern W-W-H-W-W-W-H
	// (intervals 2,4,5,7,9,11,12).
	Major = ScaleFromUint16(0b0001_1010_1011_0100)

	// NaturalMinor follows W-H-W-W-H-W-W (intervals 2,3,5,7,8,10,12).
	NaturalMinor = ScaleFromUint16(0b0001_0101_1010_1100)

	// HarmonicMinor raises the natural minor's 7th: W-H-W-W-H-WH-H
	// (intervals 2,3,5,7,8,11,12).
	HarmonicMinor = ScaleFromUint16(0b0001_1001_1010_1100)

	// MelodicMinor is the ascending form, raising the 6th and 7th:
	// W-H-W-W-W-W-H (intervals 2,3,5,7,9,11,12).
	MelodicMinor = ScaleFromUint16(0b0001_1010_1010_1100)

	// Dorian mode: W-H-W-W-W-H-W (intervals 2,3,5,7,9,10,12).
	Dorian = ScaleFromUint16(0b0001_0110_1010_1100)

	// Phrygian mode: H-W-W-W-H-W-W (intervals 1,3,5,7,8,10,12).
	Phrygian = ScaleFromUint16(0b0001_0101_1010_1010)

	// Lydian mode: W-W-W-H-W-W-H (intervals 2,4,6,7,9,11,12).
	Lydian = ScaleFromUint16(0b0001_1010_1101_0100)

	// Mixolydian mode: W-W-H-W-W-H-W (intervals 2,4,5,7,9,10,12).
	Mixolydian = ScaleFromUint16(0b0001_0110_1011_0100)

	// Locrian mode: H-W-W-H-W-W-W (intervals 1,3,5,6,8,10,12).
	Locrian = ScaleFromUint16(0b0001_0101_0110_1010)

	// MajorPentatonic: intervals 2,4,7,9,12.
	MajorPentatonic = ScaleFromUint16(0b0001_0010_1001_0100)

	// MinorPentatonic: intervals 3,5,7,10,12.
	MinorPentatonic = ScaleFromUint16(0b0001_0100_1010_1000)

	// Blues is the minor pentatonic with an added flat fifth:
	// intervals 3,5,6,7,10,12.
	Blues = ScaleFromUint16(0b0001_0100_1110_1000)

	// WholeTone: six whole steps (intervals 2,4,6,8,10,12).
	WholeTone = ScaleFromUint16(0b0001_0101_0101_0100)

	// Chromatic: all twelve semitones.
	Chromatic = ScaleFromUint16(0b0001_1111_1111_1110)
)
