package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHexToRGB(t *testing.T) {
	out, err := HexToRGB("#336699")
	require.NoError(t, err)
	assert.Equal(t, "rgb(51, 102, 153)", out)

	// Short form expands.
	out, err = HexToRGB("#369")
	require.NoError(t, err)
	assert.Equal(t, "rgb(51, 102, 153)", out)

	_, err = HexToRGB("#33669")
	assert.Error(t, err)
	_, err = HexToRGB("nonsense")
	assert.Error(t, err)
}

func TestRGBToHex(t *testing.T) {
	out, err := RGBToHex("rgb(51, 102, 153)")
	require.NoError(t, err)
	assert.Equal(t, "#336699", out)

	_, err = RGBToHex("rgb(300, 0, 0)")
	assert.Error(t, err)
	_, err = RGBToHex("51, 102, 153")
	assert.Error(t, err)
}

func TestHexToHSL(t *testing.T) {
	out, err := HexToHSL("#336699")
	require.NoError(t, err)
	assert.Equal(t, "hsl(210, 50%, 40%)", out)

	// Greys have no hue or saturation.
	out, err = HexToHSL("#808080")
	require.NoError(t, err)
	assert.Equal(t, "hsl(0, 0%, 50%)", out)
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("rgb(51, 102, 153)")
	require.NoError(t, err)
	assert.Equal(t, "#336699", c.Hex)
	assert.Equal(t, 51, c.R)
	assert.Equal(t, float64(210), c.H)

	c, err = ParseColor("  #336699  ")
	require.NoError(t, err)
	assert.Equal(t, 153, c.B)

	_, err = ParseColor("cornflower")
	assert.Error(t, err)
}
