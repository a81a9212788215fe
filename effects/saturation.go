package effects

import (
	"image"
	"image/color"
	"math"

	"github.com/anthonynsimon/bild/adjust"
	"github.com/go-gl/mathgl/mgl64"
)

// Rec. 709 luminance weights.
var luminance = mgl64.Vec3{0.2126, 0.7152, 0.0722}

// saturationMatrix interpolates between the luminance projection (s=0) and
// the identity (s=1), extrapolating beyond.
func saturationMatrix(s float64) mgl64.Mat3 {
	gray := mgl64.Mat3FromRows(luminance, luminance, luminance)
	return mgl64.Ident3().Mul(s).Add(gray.Mul(1 - s))
}

// saturate applies saturationMatrix(s) to img. Pixels are premultiplied, and
// since the matrix is linear the result only needs clamping to [0, alpha].
func saturate(img *image.RGBA, s float64) *image.RGBA {
	m := saturationMatrix(s)
	return adjust.Apply(img, func(c color.RGBA) color.RGBA {
		if c.A == 0 {
			return c
		}
		v := m.Mul3x1(mgl64.Vec3{float64(c.R), float64(c.G), float64(c.B)})
		limit := float64(c.A)
		return color.RGBA{
			R: clampChannel(v.X(), limit),
			G: clampChannel(v.Y(), limit),
			B: clampChannel(v.Z(), limit),
			A: c.A,
		}
	})
}

func clampChannel(v, limit float64) uint8 {
	v = math.Round(v)
	if v < 0 {
		return 0
	}
	if v > limit {
		return uint8(limit)
	}
	return uint8(v)
}
