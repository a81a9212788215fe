package effects

import (
	"image"
	"math"

	"github.com/anthonynsimon/bild/parallel"
)

// boxKernelSize returns the width of the box kernel that, applied three
// times, approximates a Gaussian of the given standard deviation (in pixels).
// The result is always odd so the kernel is centered.
func boxKernelSize(radius float64) int {
	if radius <= epsilon {
		return 0
	}
	d := int(math.Floor(radius*3*math.Sqrt(2*math.Pi)/4 + 0.5))
	if d%2 != 1 {
		d++
	}
	return d
}

// boxBlur runs three separable box passes of width d over img, extending
// the edge pixels beyond the bounds. img must start at (0, 0) and is not
// modified.
func boxBlur(img *image.RGBA, d int) *image.RGBA {
	a := image.NewRGBA(img.Rect)
	b := image.NewRGBA(img.Rect)
	src := img
	for pass := 0; pass < 3; pass++ {
		boxPass(src, a, d, true)
		boxPass(a, b, d, false)
		src = b
		if pass < 2 {
			// Ping-pong so the next pass never reads from its own output.
			b = image.NewRGBA(img.Rect)
		}
	}
	return src
}

// boxPass averages each pixel of src with its neighbours within d/2 pixels
// along rows (horizontal) or columns, writing to dst. The window sum slides
// one pixel at a time.
func boxPass(src, dst *image.RGBA, d int, horizontal bool) {
	w, h := src.Rect.Dx(), src.Rect.Dy()
	// Lines are rows when horizontal, columns otherwise; step is the
	// distance in Pix between consecutive pixels of a line.
	lines, length := h, w
	lineStride, step := src.Stride, 4
	if !horizontal {
		lines, length = w, h
		lineStride, step = 4, src.Stride
	}
	r := d / 2
	half := uint32(d / 2)
	n := uint32(d)

	parallel.Line(lines, func(start, end int) {
		for line := start; line < end; line++ {
			base := line * lineStride
			at := func(i int) int {
				if i < 0 {
					i = 0
				} else if i >= length {
					i = length - 1
				}
				return base + i*step
			}

			var sum [4]uint32
			for i := -r; i <= r; i++ {
				p := at(i)
				for c := 0; c < 4; c++ {
					sum[c] += uint32(src.Pix[p+c])
				}
			}
			for i := 0; i < length; i++ {
				p := base + i*step
				for c := 0; c < 4; c++ {
					dst.Pix[p+c] = uint8((sum[c] + half) / n)
				}
				out, in := at(i-r), at(i+r+1)
				for c := 0; c < 4; c++ {
					sum[c] += uint32(src.Pix[in+c])
					sum[c] -= uint32(src.Pix[out+c])
				}
			}
		}
	})
}
