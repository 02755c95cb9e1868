package sprite

import (
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscSVG(t *testing.T) {
	svg := DiscSVG(color.RGBA{0xfd, 0xb8, 0x13, 0xff}, 4, 10)
	assert.Contains(t, svg, `fill="#fdb813"`)
	assert.Contains(t, svg, `points="10.000,5.000 5.000,10.000 0.000,5.000 5.000,0.000"`)
}

func TestDisc(t *testing.T) {
	sun := color.RGBA{0xfd, 0xb8, 0x13, 0xff}
	img, err := Disc(sun, 64, 64)
	require.NoError(t, err)

	assert.Equal(t, 64, img.Bounds().Dx())
	centre := img.RGBAAt(32, 32)
	assert.InDelta(t, sun.R, centre.R, 1)
	assert.InDelta(t, sun.G, centre.G, 1)
	assert.InDelta(t, sun.B, centre.B, 1)
	assert.InDelta(t, sun.A, centre.A, 1)
	assert.Equal(t, uint8(0), img.RGBAAt(0, 0).A)
	assert.Equal(t, uint8(0), img.RGBAAt(63, 63).A)
}

func TestDiscRejectsBadInput(t *testing.T) {
	_, err := Disc(color.RGBA{}, 2, 64)
	assert.True(t, err != nil && strings.Contains(err.Error(), "segments"))

	_, err = Disc(color.RGBA{}, 64, 0)
	assert.Error(t, err)
}
