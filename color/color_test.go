package color_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Jadiker/kami/color"
)

func TestString_NamedPrefix(t *testing.T) {
	assert.Equal(t, "ORANGE", color.Orange.String())
	assert.Equal(t, "DARK_BLUE", color.DarkBlue.String())
	assert.Equal(t, "CREAM", color.Cream.String())
	assert.Equal(t, "TURQUOISE", color.Turquoise.String())
}

func TestString_MintedBeyondPrefix(t *testing.T) {
	// Indices past the named prefix synthesize a stable name.
	assert.Equal(t, "Color_4", color.Color(4).String())
	assert.Equal(t, "Color_99", color.Color(99).String())
	// Minting is a pure function: asking twice gives the same answer.
	assert.Equal(t, color.Color(7).String(), color.Color(7).String())
}

func TestPalette(t *testing.T) {
	assert.Nil(t, color.Palette(0))
	assert.Nil(t, color.Palette(-3))

	p := color.Palette(6)
	assert.Len(t, p, 6)
	for i := 1; i < len(p); i++ {
		assert.True(t, p[i-1].Less(p[i]), "palette must be strictly ordered")
	}
	assert.Equal(t, color.Turquoise, p[3])
	assert.Equal(t, 5, p[5].Index())
}
