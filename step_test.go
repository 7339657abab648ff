package muzze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStep_String(t *testing.T) {
	assert.Equal(t, "H", Half.String())
	assert.Equal(t, "W", Whole.String())
	assert.Equal(t, "WH", WholeHalf.String())
	assert.Equal(t, "S4", Step(4).String())
}

func TestStep_Inner(t *testing.T) {
	assert.Equal(t, uint8(2), Whole.Inner())
}
