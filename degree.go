package muzze

import (
	"fmt"

	"github.com/veminovici/muzze/bitpack"
)

// DegreeAccidental is the 4-bit accidental code stored in a chord slot.
// Zero marks an absent degree; the codes leave room for double sharp.
type DegreeAccidental uint8

// Chord-slot accidental codes.
const (
	DegreeAbsent     DegreeAccidental = 0
	DegreeNatural    DegreeAccidental = 1
	DegreeFlat       DegreeAccidental = 2
	DegreeDoubleFlat DegreeAccidental = 3
	DegreeSharp      DegreeAccidental = 4
)

// Symbol returns the notation symbol for the accidental. Natural and
// absent degrees carry no symbol.
func (a DegreeAccidental) Symbol() string {
	switch a {
	case DegreeFlat:
		return "♭"
	case DegreeDoubleFlat:
		return "♭♭"
	case DegreeSharp:
		return "♯"
	default:
		return ""
	}
}

// String returns the same symbol as Symbol.
func (a DegreeAccidental) String() string {
	return a.Symbol()
}

// Degree pairs a 1-based chord-degree number with its accidental.
// Degrees are transient values produced by chord iteration and consumed
// by the chord builder; they are not stored independently.
type Degree struct {
	// Number is the 1-based degree position (1 = root).
	Number uint8
	// Accidental is the pitch modification for the degree.
	Accidental DegreeAccidental
}

// NewDegree returns a Degree with the given number and accidental.
func NewDegree(number uint8, accidental DegreeAccidental) Degree {
	return Degree{Number: number, Accidental: accidental}
}

// Pack packs the degree into a single byte: number in the low nibble,
// accidental code in the high nibble.
//
// The packing domain for Number is [1,15]. Degree 16 is addressable as a
// chord slot but does not fit a nibble and truncates to 0, so it does not
// round-trip through DegreeFromPacked.
func (d Degree) Pack() bitpack.U4x2 {
	return bitpack.NewU4x2(d.Number, uint8(d.Accidental))
}

// DegreeFromPacked unpacks a Degree from its single-byte form.
func DegreeFromPacked(p bitpack.U4x2) Degree {
	return Degree{Number: p.First(), Accidental: DegreeAccidental(p.Second())}
}

// String renders the root as "R" and any other degree as its accidental
// symbol followed by the degree number, e.g. "♭3".
func (d Degree) String() string {
	if d.Number == 1 && d.Accidental == DegreeNatural {
		return "R"
	}
	return fmt.Sprintf("%s%d", d.Accidental.Symbol(), d.Number)
}

// Common chord degrees.
var (
	Root              = NewDegree(1, DegreeNatural)
	Second            = NewDegree(2, DegreeNatural)
	Third             = NewDegree(3, DegreeNatural)
	FlatThird         = NewDegree(3, DegreeFlat)
	Fourth            = NewDegree(4, DegreeNatural)
	Fifth             = NewDegree(5, DegreeNatural)
	FlatFifth         = NewDegree(5, DegreeFlat)
	SharpFifth        = NewDegree(5, DegreeSharp)
	Sixth             = NewDegree(6, DegreeNatural)
	Seventh           = NewDegree(7, DegreeNatural)
	FlatSeventh       = NewDegree(7, DegreeFlat)
	DoubleFlatSeventh = NewDegree(7, DegreeDoubleFlat)
	Ninth             = NewDegree(9, DegreeNatural)
	Eleventh          = NewDegree(11, DegreeNatural)
	Thirteenth        = NewDegree(13, DegreeNatural)
)
