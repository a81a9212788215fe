// Package effects implements the image effects behind the frosted glass view:
// blur, saturation, tint and mask compositing (see Frost), and point-size
// image scaling at a given device resolution (see ScaleToSize).
//
// All functions return new images and never modify their inputs.
package effects

import (
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/clone"
)

// Size in points (device independent units).
type Size struct {
	Width, Height float32
}

// NewSize returns a Size with the given dimensions.
func NewSize(w, h float32) Size {
	return Size{Width: w, Height: h}
}

// filterImage is a lazy per-pixel view over source.
type filterImage struct {
	source image.Image
	model  color.Model
	atFn   func(x, y int, under color.Color) color.Color
}

// ColorModel returns the Image's color model.
func (f *filterImage) ColorModel() color.Model {
	if f.model != nil {
		return f.model
	}
	return f.source.ColorModel()
}

// Bounds returns the domain for which At can return non-zero color.
func (f *filterImage) Bounds() image.Rectangle { return f.source.Bounds() }

// At returns the color of the pixel at (x, y).
func (f *filterImage) At(x, y int) color.Color {
	return f.atFn(x, y, f.source.At(x, y))
}

// Clone returns a copy of img as *image.RGBA, shifted so that its bounds
// start at (0, 0).
func Clone(img image.Image) *image.RGBA {
	dst := clone.AsRGBA(img)
	// Pix offsets are relative to Rect.Min, so moving Rect shifts the image.
	dst.Rect = image.Rect(0, 0, dst.Rect.Dx(), dst.Rect.Dy())
	return dst
}

func toRGBA(img image.Image) *image.RGBA {
	return Clone(img)
}

// wh extracts the width and height of an image.
func wh(img image.Image) (int, int) {
	rect := img.Bounds()
	return rect.Dx(), rect.Dy()
}
