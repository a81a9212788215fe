package effects

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/golang/glog"
	"golang.org/x/image/draw"
)

// epsilon below which blur radius and saturation changes are ignored.
const epsilon = 1e-6

var (
	ErrNilImage           = errors.New("nil image")
	ErrEmptyImage         = errors.New("image has no pixels")
	ErrNegativeRadius     = errors.New("blur radius must be >= 0")
	ErrNegativeSaturation = errors.New("saturation delta factor must be >= 0")
)

// Frost holds the parameters of the frosted glass effect: the source image
// is blurred, its saturation changed, a tint is laid over it and finally
// the result is composited back over the source through the mask.
//
// Saturation only changes blurred images: with no blur (and no tint) Apply
// returns an unmodified copy. Use NewFrost for the defaults.
type Frost struct {
	// Radius of the blur in points. 0 is no blur, 30 is quite blurred.
	Radius float64

	// Tint laid over the blurred image. It may be nil, and its alpha
	// controls the strength of the tint.
	Tint color.Color

	// Saturation multiplier: 1 leaves colors unchanged, 0 is grayscale and
	// values like 1.8 boost colors.
	Saturation float64

	// Mask restricts where the effect is visible: it is stretched over the
	// source, and its luminance (times its alpha) gives how much of the
	// effect shows at each pixel. Nil applies the effect everywhere.
	Mask image.Image

	// Scale is the number of pixels per point of the device the image is
	// rendered for. Values <= 0 are taken as 1.
	Scale float64
}

// NewFrost creates a Frost with the given blur radius and no other change.
func NewFrost(radius float64) *Frost {
	return &Frost{Radius: radius, Saturation: 1, Scale: 1}
}

// Validate checks the parameters.
func (f *Frost) Validate() error {
	if f.Radius < 0 || math.IsNaN(f.Radius) {
		return fmt.Errorf("%w: got %g", ErrNegativeRadius, f.Radius)
	}
	if f.Saturation < 0 || math.IsNaN(f.Saturation) {
		return fmt.Errorf("%w: got %g", ErrNegativeSaturation, f.Saturation)
	}
	return nil
}

func (f *Frost) scale() float64 {
	if f.Scale <= 0 {
		return 1
	}
	return f.Scale
}

// hasTint returns whether the tint would change anything.
func (f *Frost) hasTint() bool {
	if f.Tint == nil {
		return false
	}
	_, _, _, a := f.Tint.RGBA()
	return a > 0
}

func (f *Frost) hasSaturationChange() bool {
	return math.Abs(f.Saturation-1) > epsilon
}

// Apply renders the effect over src, and returns a new image with bounds
// starting at (0, 0).
func (f *Frost) Apply(src image.Image) (*image.RGBA, error) {
	if src == nil {
		return nil, ErrNilImage
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	if w, h := wh(src); w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: bounds %s", ErrEmptyImage, src.Bounds())
	}

	original := toRGBA(src)
	kernel := boxKernelSize(f.Radius * f.scale())
	hasBlur := kernel > 1
	hasSaturation := f.hasSaturationChange()
	hasTint := f.hasTint()
	glog.V(2).Infof("Frost.Apply(%s): kernel=%d, saturation=%g, tint=%v, mask=%v",
		original.Rect, kernel, f.Saturation, hasTint, f.Mask != nil)
	if !hasBlur && !hasTint {
		return original, nil
	}

	// Saturation is part of the blur pass: without blur only the tint applies.
	var effect *image.RGBA
	if hasBlur {
		effect = boxBlur(original, kernel)
		if hasSaturation {
			effect = saturate(effect, f.Saturation)
		}
	} else {
		// Tint is drawn in place, keep the original intact.
		effect = toRGBA(original)
	}
	if hasTint {
		draw.Draw(effect, effect.Rect, image.NewUniform(f.Tint), image.Point{}, draw.Over)
	}
	if f.Mask == nil {
		return effect, nil
	}

	blendMasked(original, effect, maskCoverage(f.Mask, original.Rect))
	return original, nil
}
