package muzze_test

import (
	"fmt"

	"github.com/veminovici/muzze"
)

func ExampleScale_Apply() {
	for n := range muzze.Major.Apply(60) {
		fmt.Print(n, " ")
	}
	// Output: 60 62 64 65 67 69 71 72
}

func ExampleScale_Steps() {
	fmt.Println(muzze.HarmonicMinor)
	// Output: W-H-W-W-H-WH-H
}

func ExampleScaleStepBuilder() {
	s := muzze.NewScaleStepBuilder().
		AddStep(muzze.Whole).
		AddStep(muzze.Whole).
		AddStep(muzze.Half).
		AddStep(muzze.Whole).
		AddStep(muzze.Whole).
		AddStep(muzze.Whole).
		AddStep(muzze.Half).
		Build()

	fmt.Println(s.Inner() == muzze.Major.Inner())
	// Output: true
}

func ExampleChordBuilder() {
	c := muzze.NewChordBuilder().
		WithRoot().
		SetDegree(muzze.FlatThird).
		SetDegree(muzze.Fifth).
		SetDegree(muzze.FlatSeventh).
		Build()

	fmt.Println(c)
	// Output: R-♭3-5-♭7
}
