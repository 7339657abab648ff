// Package bitpack provides fixed-width bit-packed containers.
//
// Layouts:
//   - BitVec16: 16 independent boolean flags in a uint16
//   - U4Vec16:  16 independent 4-bit fields in a uint64
//   - U4x2:     2 independent 4-bit fields in a byte
//
// The containers assign no meaning to their bits; consumers (scales,
// chords) interpret positions and field values. All types are plain
// values: sharing is by copy, reads are pure, and the raw word returned
// by Inner round-trips through the matching From* constructor.
//
// Indexing outside [0,16) is a caller bug and panics. Writing a value
// wider than 4 bits into a 4-bit field truncates to the low 4 bits; the
// truncation is the container's packing contract, not an error.
package bitpack
