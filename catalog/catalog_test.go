package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veminovici/muzze"
)

func TestCatalog_AddGet(t *testing.T) {
	c := New()

	require.NoError(t, c.Add("major", muzze.Major))
	require.Equal(t, 1, c.Len())

	s, err := c.Get("major")
	require.NoError(t, err)
	assert.Equal(t, muzze.Major, s)
}

func TestCatalog_GetNotFound(t *testing.T) {
	c := New()

	_, err := c.Get("ionian")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCatalog_AddDuplicate(t *testing.T) {
	c := New()

	require.NoError(t, c.Add("major", muzze.Major))
	err := c.Add("major", muzze.Lydian)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateName)
	assert.Equal(t, 1, c.Len())
}

func TestCatalog_Builtin(t *testing.T) {
	c := Builtin()

	assert.Equal(t, 14, c.Len())

	s, err := c.Get("harmonic-minor")
	require.NoError(t, err)
	assert.Equal(t, muzze.HarmonicMinor, s)
}

func TestCatalog_Containing(t *testing.T) {
	c := Builtin()

	// Major third and major seventh together single out the major-family
	// scales (plus chromatic, which contains everything).
	assert.Equal(t,
		[]string{"major", "lydian", "chromatic"},
		c.Containing(4, 11),
	)

	// Minor third plus tritone.
	assert.Equal(t,
		[]string{"locrian", "blues", "chromatic"},
		c.Containing(3, 6),
	)
}

func TestCatalog_ContainingNoMatch(t *testing.T) {
	c := New()
	require.NoError(t, c.Add("whole-tone", muzze.WholeTone))

	assert.Empty(t, c.Containing(1))
}

func TestCatalog_ContainingNoArgsReturnsAll(t *testing.T) {
	c := Builtin()

	assert.Equal(t, c.Names(), c.Containing())
}

func TestCatalog_ContainingOutOfRange(t *testing.T) {
	c := Builtin()

	assert.Empty(t, c.Containing(16))
}

func TestCatalog_Supersets(t *testing.T) {
	c := Builtin()

	assert.Equal(t,
		[]string{"major", "lydian", "mixolydian", "major-pentatonic", "chromatic"},
		c.Supersets(muzze.MajorPentatonic),
	)
}

func TestCatalog_Names(t *testing.T) {
	c := New()
	require.NoError(t, c.Add("a", muzze.Major))
	require.NoError(t, c.Add("b", muzze.Dorian))

	assert.Equal(t, []string{"a", "b"}, c.Names())
}

func TestCatalog_WithLogger(t *testing.T) {
	c := New(WithLogger(NoopLogger()))

	require.NoError(t, c.Add("major", muzze.Major))
	assert.Equal(t, []string{"major"}, c.Containing(4))
}
