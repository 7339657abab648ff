package muzze

import (
	"fmt"
	"iter"
	"strings"

	"github.com/veminovici/muzze/bitpack"
)

// Chord is a set of chord degrees with accidentals, stored as a
// bitpack.U4Vec16: slot d holds the DegreeAccidental code of degree d+1,
// zero meaning the degree is absent. Slot 0 is the root; chords built via
// ChordBuilder.WithRoot carry a natural root there.
type Chord struct {
	slots bitpack.U4Vec16
}

// ChordFromUint64 wraps a raw packed word as a Chord.
func ChordFromUint64(v uint64) Chord {
	return Chord{slots: bitpack.FromUint64(v)}
}

// Inner returns the raw packed word. ChordFromUint64(v).Inner() == v.
func (c Chord) Inner() uint64 {
	return c.slots.Inner()
}

// Degrees returns the chord's degrees in ascending degree order, skipping
// absent slots. For root-constructed chords the root is emitted first.
func (c Chord) Degrees() iter.Seq[Degree] {
	return func(yield func(Degree) bool) {
		idx := 0
		for acc := range c.slots.Items() {
			idx++
			if acc == 0 {
				continue
			}
			if !yield(NewDegree(uint8(idx), DegreeAccidental(acc))) {
				return
			}
		}
	}
}

// String renders the chord as hyphen-separated degrees, the root as "R",
// e.g. "R-♭3-5".
func (c Chord) String() string {
	return joinSeq(c.Degrees(), "-")
}

// ChordBuilder accumulates degrees for a Chord. Setting the same degree
// number twice overwrites: re-setting a natural third as flat leaves only
// the flat third.
type ChordBuilder struct {
	inner bitpack.U4Vec16Builder
}

// NewChordBuilder returns an empty builder with no degrees set.
func NewChordBuilder() ChordBuilder {
	return ChordBuilder{}
}

// WithRoot seeds degree 1 as a natural root.
func (b ChordBuilder) WithRoot() ChordBuilder {
	return b.SetDegree(Root)
}

// SetDegree stores the degree's accidental in its slot, replacing any
// previous value for that degree number. It panics if the degree number is
// outside [1,16].
func (b ChordBuilder) SetDegree(d Degree) ChordBuilder {
	b.inner = b.inner.SetItem(int(d.Number)-1, uint8(d.Accidental))
	return b
}

// Build produces the immutable Chord.
func (b ChordBuilder) Build() Chord {
	return Chord{slots: b.inner.Build()}
}

// joinSeq renders a sequence with fmt and joins it on sep.
func joinSeq[T any](seq iter.Seq[T], sep string) string {
	var parts []string
	for v := range seq {
		parts = append(parts, fmt.Sprint(v))
	}
	return strings.Join(parts, sep)
}

// Named chords, built the way consumers build their own.
var (
	// MajorTriad is root, major third, perfect fifth ("R-3-5").
	MajorTriad = NewChordBuilder().WithRoot().
			SetDegree(Third).
			SetDegree(Fifth).
			Build()

	// MinorTriad is root, minor third, perfect fifth ("R-♭3-5").
	MinorTriad = NewChordBuilder().WithRoot().
			SetDegree(FlatThird).
			SetDegree(Fifth).
			Build()

	// DiminishedTriad is root, minor third, diminished fifth.
	DiminishedTriad = NewChordBuilder().WithRoot().
			SetDegree(FlatThird).
			SetDegree(FlatFifth).
			Build()

	// AugmentedTriad is root, major third, augmented fifth.
	AugmentedTriad = NewChordBuilder().WithRoot().
			SetDegree(Third).
			SetDegree(SharpFifth).
			Build()

	// MajorSeventhChord adds the major seventh to the major triad.
	MajorSeventhChord = NewChordBuilder().WithRoot().
				SetDegree(Third).
				SetDegree(Fifth).
				SetDegree(Seventh).
				Build()

	// MinorSeventhChord adds the minor seventh to the minor triad.
	MinorSeventhChord = NewChordBuilder().WithRoot().
				SetDegree(FlatThird).
				SetDegree(Fifth).
				SetDegree(FlatSeventh).
				Build()

	// DominantSeventh adds the minor seventh to the major triad
	// ("R-3-5-♭7").
	DominantSeventh = NewChordBuilder().WithRoot().
			SetDegree(Third).
			SetDegree(Fifth).
			SetDegree(FlatSeventh).
			Build()

	// HalfDiminishedSeventh is the diminished triad with a minor seventh.
	HalfDiminishedSeventh = NewChordBuilder().WithRoot().
				SetDegree(FlatThird).
				SetDegree(FlatFifth).
				SetDegree(FlatSeventh).
				Build()

	// DiminishedSeventh is the diminished triad with a diminished seventh.
	DiminishedSeventh = NewChordBuilder().WithRoot().
				SetDegree(FlatThird).
				SetDegree(FlatFifth).
				SetDegree(DoubleFlatSeventh).
				Build()

	// AugmentedSeventh is the augmented triad with a minor seventh.
	AugmentedSeventh = NewChordBuilder().WithRoot().
				SetDegree(Third).
				SetDegree(SharpFifth).
				SetDegree(FlatSeventh).
				Build()

	// MinorMajorSeventh is the minor triad with a major seventh.
	MinorMajorSeventh = NewChordBuilder().WithRoot().
				SetDegree(FlatThird).
				SetDegree(Fifth).
				SetDegree(Seventh).
				Build()

	// SixthChord is the major triad with an added sixth.
	SixthChord = NewChordBuilder().WithRoot().
			SetDegree(Third).
			SetDegree(Fifth).
			SetDegree(Sixth).
			Build()

	// MinorSixthChord is the minor triad with an added sixth.
	MinorSixthChord = NewChordBuilder().WithRoot().
			SetDegree(FlatThird).
			SetDegree(Fifth).
			SetDegree(Sixth).
			Build()

	// SixthNinthChord is the sixth chord with an added ninth.
	SixthNinthChord = NewChordBuilder().WithRoot().
			SetDegree(Third).
			SetDegree(Fifth).
			SetDegree(Sixth).
			SetDegree(Ninth).
			Build()

	// FifthChord is the bare power chord: root and fifth.
	FifthChord = NewChordBuilder().WithRoot().
			SetDegree(Fifth).
			Build()

	// DominantNinth extends the dominant seventh with a ninth.
	DominantNinth = NewChordBuilder().WithRoot().
			SetDegree(Third).
			SetDegree(Fifth).
			SetDegree(FlatSeventh).
			SetDegree(Ninth).
			Build()

	// MinorNinth extends the minor seventh chord with a ninth.
	MinorNinth = NewChordBuilder().WithRoot().
			SetDegree(FlatThird).
			SetDegree(Fifth).
			SetDegree(FlatSeventh).
			SetDegree(Ninth).
			Build()

	// MajorNinth extends the major seventh chord with a ninth.
	MajorNinth = NewChordBuilder().WithRoot().
			SetDegree(Third).
			SetDegree(Fifth).
			SetDegree(Seventh).
			SetDegree(Ninth).
			Build()

	// EleventhChord extends the major ninth with an eleventh.
	EleventhChord = NewChordBuilder().WithRoot().
			SetDegree(Third).
			SetDegree(Fifth).
			SetDegree(Seventh).
			SetDegree(Ninth).
			SetDegree(Eleventh).
			Build()

	// MinorEleventh extends the minor ninth with an eleventh.
	MinorEleventh = NewChordBuilder().WithRoot().
			SetDegree(FlatThird).
			SetDegree(Fifth).
			SetDegree(FlatSeventh).
			SetDegree(Ninth).
			SetDegree(Eleventh).
			Build()

	// MajorEleventh extends the major ninth with an eleventh.
	MajorEleventh = NewChordBuilder().WithRoot().
			SetDegree(Third).
			SetDegree(Fifth).
			SetDegree(Seventh).
			SetDegree(Ninth).
			SetDegree(Eleventh).
			Build()

	// ThirteenthChord extends the dominant ninth with an eleventh and
	// thirteenth.
	ThirteenthChord = NewChordBuilder().WithRoot().
			SetDegree(Third).
			SetDegree(Fifth).
			SetDegree(FlatSeventh).
			SetDegree(Ninth).
			SetDegree(Eleventh).
			SetDegree(Thirteenth).
			Build()

	// MinorThirteenth extends the minor ninth with an eleventh and
	// thirteenth.
	MinorThirteenth = NewChordBuilder().WithRoot().
			SetDegree(FlatThird).
			SetDegree(Fifth).
			SetDegree(FlatSeventh).
			SetDegree(Ninth).
			SetDegree(Eleventh).
			SetDegree(Thirteenth).
			Build()

	// MajorThirteenth extends the major ninth with an eleventh and
	// thirteenth.
	MajorThirteenth = NewChordBuilder().WithRoot().
			SetDegree(Third).
			SetDegree(Fifth).
			SetDegree(Seventh).
			SetDegree(Ninth).
			SetDegree(Eleventh).
			SetDegree(Thirteenth).
			Build()

	// SuspendedSecond replaces the third with the second.
	SuspendedSecond = NewChordBuilder().WithRoot().
			SetDegree(Second).
			SetDegree(Fifth).
			Build()

	// SuspendedFourth replaces the third with the fourth.
	SuspendedFourth = NewChordBuilder().WithRoot().
			SetDegree(Fourth).
			SetDegree(Fifth).
			Build()

	// AddedSecond is the major triad with an added second.
	AddedSecond = NewChordBuilder().WithRoot().
			SetDegree(Second).
			SetDegree(Third).
			SetDegree(Fifth).
			Build()

	// AddedNinth is the major triad with an added ninth.
	AddedNinth = NewChordBuilder().WithRoot().
			SetDegree(Third).
			SetDegree(Fifth).
			SetDegree(Ninth).
			Build()

	// AddedEleventh is the major triad with an added eleventh.
	AddedEleventh = NewChordBuilder().WithRoot().
			SetDegree(Third).
			SetDegree(Fifth).
			SetDegree(Eleventh).
			Build()

	// DominantSeventhFlatFive lowers the dominant seventh's fifth.
	DominantSeventhFlatFive = NewChordBuilder().WithRoot().
				SetDegree(Third).
				SetDegree(FlatFifth).
				SetDegree(FlatSeventh).
				Build()

	// DominantSeventhSharpFive raises the dominant seventh's fifth.
	DominantSeventhSharpFive = NewChordBuilder().WithRoot().
					SetDegree(Third).
					SetDegree(SharpFifth).
					SetDegree(FlatSeventh).
					Build()
)
