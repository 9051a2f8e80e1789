package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#ff0000")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, c.R, 1e-9)
	assert.InDelta(t, 0.0, c.G, 1e-9)
	assert.InDelta(t, 1.0, c.A, 1e-9)
	assert.Equal(t, "#ff0000", c.Hex())

	_, err = ParseHex("not-a-color")
	require.Error(t, err)
}

func TestColor_Shade(t *testing.T) {
	base := MustHex("#808080").WithAlpha(0.5)

	darker := base.Shade(0.7)
	lighter := base.Shade(1.1)

	assert.Less(t, darker.R, base.R)
	assert.Greater(t, lighter.R, base.R)
	assert.InDelta(t, 0.5, darker.A, 1e-9, "alpha survives shading")

	black := base.Shade(0)
	assert.Equal(t, "#000000", black.Hex())
}

func TestColor_BlendAndOver(t *testing.T) {
	black := RGB(0, 0, 0)
	white := RGB(255, 255, 255)

	mid := black.Blend(white, 0.5)
	assert.InDelta(t, 0.5, mid.R, 1e-9)

	over := white.WithAlpha(0.25).Over(black)
	assert.InDelta(t, 0.25, over.G, 1e-9)
	assert.InDelta(t, 1.0, over.A, 1e-9)

	assert.Equal(t, white, white.Over(black), "opaque colors replace the backdrop")
}
