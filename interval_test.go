package muzze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInterval_String(t *testing.T) {
	tests := []struct {
		interval Interval
		want     string
	}{
		{Unison, "P1"},
		{MinorSecond, "m2"},
		{MajorSecond, "M2"},
		{MinorThird, "m3"},
		{MajorThird, "M3"},
		{PerfectFourth, "P4"},
		{AugmentedFourth, "d5"},
		{DiminishedFifth, "d5"},
		{PerfectFifth, "P5"},
		{MinorSixth, "m6"},
		{MajorSixth, "M6"},
		{MinorSeventh, "m7"},
		{MajorSeventh, "M7"},
		{Octave, "P8"},
		{Interval(14), "I14"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.interval.String())
	}
}

func TestInterval_AddStep(t *testing.T) {
	assert.Equal(t, MajorSecond, Unison.AddStep(Whole))
	assert.Equal(t, PerfectFifth, PerfectFourth.AddStep(Whole))
	assert.Equal(t, Octave, MajorSeventh.AddStep(Half))
	assert.Equal(t, MinorSixth, PerfectFifth.AddStep(Half))
}

func TestInterval_Inner(t *testing.T) {
	assert.Equal(t, uint8(7), PerfectFifth.Inner())
}
