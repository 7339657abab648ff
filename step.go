package muzze

import "fmt"

// Step is the semitone distance between two consecutive scale notes.
type Step uint8

// Common step sizes.
const (
	// Half is a half step (semitone).
	Half Step = 1
	// Whole is a whole step (two semitones).
	Whole Step = 2
	// WholeHalf is an augmented second (three semitones), the
	// characteristic 6th-to-7th step of the harmonic minor scale.
	WholeHalf Step = 3
)

// Inner returns the step size in semitones.
func (s Step) Inner() uint8 {
	return uint8(s)
}

// String returns the conventional short name: "H", "W", "WH", or "S<n>"
// for non-standard sizes.
func (s Step) String() string {
	switch s {
	case Half:
		return "H"
	case Whole:
		return "W"
	case WholeHalf:
		return "WH"
	default:
		return fmt.Sprintf("S%d", uint8(s))
	}
}
