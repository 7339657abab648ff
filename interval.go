package muzze

import "fmt"

// Interval is an absolute distance in semitones from a scale's root note.
type Interval uint8

// Standard intervals within one octave.
const (
	Unison          Interval = 0
	MinorSecond     Interval = 1
	MajorSecond     Interval = 2
	MinorThird      Interval = 3
	MajorThird      Interval = 4
	PerfectFourth   Interval = 5
	AugmentedFourth Interval = 6
	DiminishedFifth Interval = 6
	PerfectFifth    Interval = 7
	MinorSixth      Interval = 8
	MajorSixth      Interval = 9
	MinorSeventh    Interval = 10
	MajorSeventh    Interval = 11
	Octave          Interval = 12
)

// Inner returns the interval size in semitones.
func (iv Interval) Inner() uint8 {
	return uint8(iv)
}

// AddStep returns the interval widened by a step.
func (iv Interval) AddStep(s Step) Interval {
	return iv + Interval(s)
}

// String returns the conventional interval name ("P1", "m3", "P5", ...).
// Semitone 6 renders as "d5". Intervals beyond the octave render "I<n>".
func (iv Interval) String() string {
	switch iv {
	case Unison:
		return "P1"
	case MinorSecond:
		return "m2"
	case MajorSecond:
		return "M2"
	case MinorThird:
		return "m3"
	case MajorThird:
		return "M3"
	case PerfectFourth:
		return "P4"
	case DiminishedFifth:
		return "d5"
	case PerfectFifth:
		return "P5"
	case MinorSixth:
		return "m6"
	case MajorSixth:
		return "M6"
	case MinorSeventh:
		return "m7"
	case MajorSeventh:
		return "M7"
	case Octave:
		return "P8"
	default:
		return fmt.Sprintf("I%d", uint8(iv))
	}
}
