package classify

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filled(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestPrepare_Scales(t *testing.T) {
	g := Prepare(filled(280, 140, color.White), 28, false)
	require.Equal(t, image.Rect(0, 0, 28, 28), g.Bounds())
	for _, v := range g.Pix {
		assert.GreaterOrEqual(t, v, uint8(250))
	}
}

func TestPrepare_Invert(t *testing.T) {
	g := Prepare(filled(10, 10, color.White), 5, true)
	for _, v := range g.Pix {
		assert.LessOrEqual(t, v, uint8(5))
	}
}

func TestPrepare_NativeSize(t *testing.T) {
	src := filled(7, 3, color.Black)
	g := Prepare(src, 0, false)
	assert.Equal(t, image.Rect(0, 0, 7, 3), g.Bounds())
	assert.Equal(t, uint8(0), g.GrayAt(3, 1).Y)
}

func TestPrepare_KeepsInkPosition(t *testing.T) {
	src := filled(100, 100, color.White)
	for y := 0; y < 50; y++ {
		for x := 0; x < 50; x++ {
			src.Set(x, y, color.Black)
		}
	}
	g := Prepare(src, 10, false)
	assert.Less(t, g.GrayAt(1, 1).Y, uint8(64), "top-left should stay dark")
	assert.Greater(t, g.GrayAt(8, 8).Y, uint8(192), "bottom-right should stay light")
}

func TestInkCoverage(t *testing.T) {
	assert.Zero(t, inkCoverage(Prepare(filled(4, 4, color.White), 0, false)))
	assert.Equal(t, 1.0, inkCoverage(Prepare(filled(4, 4, color.Black), 0, false)))
	assert.Zero(t, inkCoverage(image.NewGray(image.Rect(0, 0, 0, 0))))
}
