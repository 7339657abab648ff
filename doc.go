// Package muzze provides compact Western music-theory primitives built on
// fixed-width bit-packed containers.
//
// A Scale is a 16-bit pattern (bitpack.BitVec16) in which bit i marks the
// semitone interval i from the root; bit 0 is reserved for the root itself.
// A Chord is a vector of sixteen 4-bit slots (bitpack.U4Vec16) in which slot
// d holds the accidental code of degree d+1, zero meaning the degree is
// absent.
//
// # Quick Start
//
//	for n := range muzze.Major.Apply(60) {
//	    fmt.Println(n) // 60 62 64 65 67 69 71 72
//	}
//
//	chord := muzze.NewChordBuilder().
//	    WithRoot().
//	    SetDegree(muzze.FlatThird).
//	    SetDegree(muzze.Fifth).
//	    Build()
//	fmt.Println(chord) // R-♭3-5
//
// All types are small immutable values; share them by copy and query them
// from any goroutine without coordination. Iteration methods return
// iter.Seq sequences that are recomputed on every range.
//
// The raw words exposed by Inner and accepted by ScaleFromUint16 /
// ChordFromUint64 are the serialization boundary: store the integer,
// reconstruct with the matching constructor, and the value round-trips
// exactly.
package muzze
