package muzze

// Accidental is a modifier altering a note's pitch.
//
// The numeric values are internal ordering only: accidentals are never
// stored in a packed container (chord slots use DegreeAccidental codes),
// so the values carry no serialization contract.
type Accidental uint8

// The closed set of accidentals.
const (
	// Natural carries no symbol; an unmarked note is natural.
	Natural Accidental = iota
	// Reset cancels a previous accidental explicitly (♮).
	Reset
	Flat
	DoubleFlat
	Sharp
	DoubleSharp
)

// Symbol returns the Unicode notation symbol. Natural is the unmarked
// default and returns the empty string; Reset returns the explicit ♮.
func (a Accidental) Symbol() string {
	switch a {
	case Reset:
		return "♮"
	case Flat:
		return "♭"
	case DoubleFlat:
		return "♭♭"
	case Sharp:
		return "♯"
	case DoubleSharp:
		return "♯♯"
	default:
		return ""
	}
}

// String returns the same symbol as Symbol.
func (a Accidental) String() string {
	return a.Symbol()
}
