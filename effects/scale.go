package effects

import (
	"image"
	"math"

	"golang.org/x/image/draw"
)

// ScaleToSize resamples src to size (in points) at the given scale (pixels
// per point), using Catmull-Rom interpolation. Scale <= 0 is taken as 1.
//
// Each dimension is rounded to the nearest whole pixel, so PointSize of the
// result equals size only when size*scale is integral; otherwise it is off
// by at most half a pixel (0.5/scale points).
func ScaleToSize(src image.Image, size Size, scale float32) *image.RGBA {
	if scale <= 0 {
		scale = 1
	}
	w := pixels(size.Width, scale)
	h := pixels(size.Height, scale)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if w == 0 || h == 0 || src == nil || src.Bounds().Empty() {
		return dst
	}
	draw.CatmullRom.Scale(dst, dst.Rect, src, src.Bounds(), draw.Src, nil)
	return dst
}

// PointSize returns the size in points of img, when displayed at the given
// scale (pixels per point). Scale <= 0 is taken as 1.
func PointSize(img image.Image, scale float32) Size {
	if scale <= 0 {
		scale = 1
	}
	w, h := wh(img)
	return Size{Width: float32(w) / scale, Height: float32(h) / scale}
}

func pixels(points, scale float32) int {
	if points <= 0 {
		return 0
	}
	return int(math.Round(float64(points * scale)))
}
