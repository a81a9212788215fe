package effects

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScaleToSize(t *testing.T) {
	src := checkerboard(image.Rect(5, 5, 105, 55), 10)
	for _, scale := range []float32{1, 2, 3} {
		size := NewSize(40, 30)
		out := ScaleToSize(src, size, scale)
		assert.Equal(t, image.Rect(0, 0, int(40*scale), int(30*scale)), out.Bounds())
		assert.Equal(t, size, PointSize(out, scale))
	}
}

func TestScaleToSizeRoundsToWholePixels(t *testing.T) {
	src := checkerboard(image.Rect(0, 0, 50, 50), 5)
	size := NewSize(10.3, 7.7)
	const scale = 2
	out := ScaleToSize(src, size, scale)
	assert.Equal(t, image.Rect(0, 0, 21, 15), out.Bounds())

	got := PointSize(out, scale)
	assert.Equal(t, NewSize(10.5, 7.5), got)
	assert.InDelta(t, size.Width, got.Width, 0.5/scale)
	assert.InDelta(t, size.Height, got.Height, 0.5/scale)
}

func TestScaleToSizeKeepsSolidColor(t *testing.T) {
	c := color.RGBA{R: 10, G: 100, B: 200, A: 0xFF}
	out := ScaleToSize(solid(image.Rect(0, 0, 7, 3), c), NewSize(20, 20), 1.5)
	assert.Equal(t, c, out.RGBAAt(0, 0))
	assert.Equal(t, c, out.RGBAAt(29, 29))
}

func TestScaleToSizeDegenerate(t *testing.T) {
	src := solid(image.Rect(0, 0, 4, 4), color.RGBA{A: 0xFF})
	assert.True(t, ScaleToSize(src, NewSize(0, 10), 1).Bounds().Empty())
	assert.True(t, ScaleToSize(src, NewSize(-3, 10), 1).Bounds().Empty())
	assert.Equal(t, image.Rect(0, 0, 10, 10), ScaleToSize(src, NewSize(10, 10), 0).Bounds())
	assert.True(t, ScaleToSize(image.NewRGBA(image.Rectangle{}), NewSize(2, 2), 1).Bounds().Dx() == 2)
}
