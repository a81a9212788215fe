package effects

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// maskCoverage stretches mask over rect and converts it to the alpha
// coverage used to composite the effect: white opaque pixels let the
// effect through, black or transparent ones keep the original.
func maskCoverage(mask image.Image, rect image.Rectangle) *image.Alpha {
	stretched := image.NewRGBA(rect)
	draw.ApproxBiLinear.Scale(stretched, rect, mask, mask.Bounds(), draw.Src, nil)

	coverage := image.NewAlpha(rect)
	draw.Draw(coverage, rect, luminanceAlpha(stretched), rect.Min, draw.Src)
	return coverage
}

// luminanceAlpha views img as an alpha image whose alpha is the
// (premultiplied) luminance of each pixel.
func luminanceAlpha(img image.Image) image.Image {
	return &filterImage{
		source: img,
		model:  color.AlphaModel,
		atFn: func(_, _ int, under color.Color) color.Color {
			g := color.GrayModel.Convert(under).(color.Gray)
			return color.Alpha{A: g.Y}
		},
	}
}

// blendMasked interpolates dst towards effect by coverage, in place. All
// three must share the same bounds. draw.DrawMask can't be used: with Src
// it replaces dst outside the mask, and with Over translucent pixels of the
// effect would be composited twice.
func blendMasked(dst, effect *image.RGBA, coverage *image.Alpha) {
	b := dst.Rect
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			m := uint32(coverage.AlphaAt(x, y).A)
			if m == 0 {
				continue
			}
			i := dst.PixOffset(x, y)
			j := effect.PixOffset(x, y)
			if m == 0xFF {
				copy(dst.Pix[i:i+4], effect.Pix[j:j+4])
				continue
			}
			for c := 0; c < 4; c++ {
				d, e := uint32(dst.Pix[i+c]), uint32(effect.Pix[j+c])
				dst.Pix[i+c] = uint8((d*(0xFF-m) + e*m + 0x7F) / 0xFF)
			}
		}
	}
}
