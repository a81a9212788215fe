// Package blurview implements BlurView, a Fyne widget that displays a
// blurred, tinted and optionally masked version of a target image.
//
// Changes to the properties are only rendered when Update (or
// UpdateBlurRadiusFromPercent) is called. Rendering happens in a separate
// goroutine, and the new output is swapped in when ready.
package blurview

import (
	"image"
	"image/color"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"github.com/golang/glog"
	"github.com/janpfeifer/frost/effects"
)

// BlurView is the frosted glass widget.
type BlurView struct {
	widget.BaseWidget

	// TargetImage is the base image to apply effects to.
	TargetImage image.Image

	// BlurRadius in points: 0 is no blur, while 30 is quite blurred.
	BlurRadius float64

	// TintColor laid over the blurred image. Its alpha lessens the tint, and
	// it can be nil.
	TintColor color.Color

	// SaturationDeltaFactor changes the saturation of the image. 1.0 (default)
	// is no change, 1.8 is a good reference to add saturation.
	SaturationDeltaFactor float64

	// MaskImage restricts where the effects are visible. Nil (default) applies
	// them everywhere.
	MaskImage image.Image

	// OnRendered, if set, is called from the rendering goroutine whenever a new
	// output is displayed. It is not called for invalid properties nor for
	// outputs superseded by a later Update.
	OnRendered func(rendered image.Image)

	minSize fyne.Size

	// mu protects the fields below, shared with the rendering goroutines.
	mu                     sync.Mutex
	rendered               *image.RGBA
	generation, renderedAt int // Generation of the latest Update and of the one displayed.
	pending                int // Number of renders in flight.
	passes                 int // Number of render passes dispatched.
	lastPercent            float64
	hasPercent             bool
}

// Ensure BlurView is a widget.
var _ fyne.Widget = (*BlurView)(nil)

// NewBlurView creates a BlurView with no target image.
func NewBlurView() *BlurView {
	v := &BlurView{SaturationDeltaFactor: 1}
	v.ExtendBaseWidget(v)
	v.SetMinSize(fyne.NewSize(100, 100))
	return v
}

// SetMinSize sets the minimum size of the view.
func (v *BlurView) SetMinSize(size fyne.Size) {
	v.minSize = size
}

// Update renders and applies the effects asynchronously.
//
// The properties are read at the time of the call, so they can be changed
// while the rendering is in progress. If Update is called again before a
// previous rendering finishes, only the output of the latest call is shown.
func (v *BlurView) Update() {
	target := v.TargetImage
	frost := &effects.Frost{
		Radius:     v.BlurRadius,
		Tint:       v.TintColor,
		Saturation: v.SaturationDeltaFactor,
		Mask:       v.MaskImage,
		Scale:      float64(v.scale()),
	}

	v.mu.Lock()
	v.generation++
	generation := v.generation
	v.pending++
	v.passes++
	v.mu.Unlock()

	glog.V(2).Infof("BlurView.Update(): generation=%d, radius=%g", generation, frost.Radius)
	go v.render(generation, target, frost)
}

// UpdateBlurRadiusFromPercent sets BlurRadius to percent (in [0, 1]) of
// maxBlurRadius, and then calls Update. If percent is the same as in the
// last call, nothing happens, even if other properties have changed.
func (v *BlurView) UpdateBlurRadiusFromPercent(percent, maxBlurRadius float64) {
	if percent < 0 {
		percent = 0
	} else if percent > 1 {
		percent = 1
	}
	v.mu.Lock()
	if v.hasPercent && v.lastPercent == percent {
		v.mu.Unlock()
		return
	}
	v.hasPercent, v.lastPercent = true, percent
	v.mu.Unlock()

	v.BlurRadius = percent * maxBlurRadius
	v.Update()
}

// render is run in its own goroutine by Update.
func (v *BlurView) render(generation int, target image.Image, frost *effects.Frost) {
	var (
		out *image.RGBA
		err error
	)
	if target != nil {
		out, err = frost.Apply(target)
	}

	v.mu.Lock()
	v.pending--
	stale := generation != v.generation
	if err == nil && !stale {
		v.rendered = out
		v.renderedAt = generation
	}
	v.mu.Unlock()

	if err != nil {
		glog.Errorf("BlurView failed to render generation %d: %s", generation, err)
		return
	}
	if stale {
		glog.V(2).Infof("BlurView: discarding generation %d, superseded by %d", generation, v.currentGeneration())
		return
	}
	v.Refresh()
	if v.OnRendered != nil {
		v.OnRendered(v.Rendered())
	}
}

func (v *BlurView) currentGeneration() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.generation
}

// Updating returns whether there are renderings in progress.
func (v *BlurView) Updating() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.pending > 0
}

// Rendered returns the image currently displayed, in pixels, or nil if
// nothing was rendered yet.
func (v *BlurView) Rendered() image.Image {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.rendered == nil {
		return nil
	}
	return v.rendered
}

// scale returns the pixels per point of the canvas the view is in, or 1
// if it's not in any canvas yet.
func (v *BlurView) scale() float32 {
	app := fyne.CurrentApp()
	if app == nil {
		return 1
	}
	if c := app.Driver().CanvasForObject(v); c != nil && c.Scale() > 0 {
		return c.Scale()
	}
	return 1
}

// CreateRenderer implements fyne.Widget.
func (v *BlurView) CreateRenderer() fyne.WidgetRenderer {
	glog.V(2).Info("BlurView.CreateRenderer()")
	r := &blurViewRenderer{view: v}
	r.raster = canvas.NewRaster(r.draw)
	return r
}

// blurViewRenderer displays the rendered output stretched to the size of
// the view.
type blurViewRenderer struct {
	view   *BlurView
	raster *canvas.Raster

	// Cache of the output scaled to the raster size. Only accessed by draw.
	cache           *image.RGBA
	cacheGeneration int
}

// draw implements the canvas.Raster generator: w and h are in pixels.
func (r *blurViewRenderer) draw(w, h int) image.Image {
	v := r.view
	v.mu.Lock()
	rendered, generation := v.rendered, v.renderedAt
	v.mu.Unlock()

	if rendered == nil {
		return image.NewRGBA(image.Rect(0, 0, w, h))
	}
	if r.cache != nil && r.cacheGeneration == generation &&
		r.cache.Rect.Dx() == w && r.cache.Rect.Dy() == h {
		// Cache is good, reuse it.
		return r.cache
	}

	glog.V(2).Infof("BlurView: regenerating cache %d x %d", w, h)
	scale := v.scale()
	size := effects.NewSize(float32(w)/scale, float32(h)/scale)
	r.cache = effects.ScaleToSize(rendered, size, scale)
	r.cacheGeneration = generation
	return r.cache
}

func (r *blurViewRenderer) Layout(size fyne.Size) {
	r.raster.Resize(size)
}

func (r *blurViewRenderer) MinSize() fyne.Size {
	return r.view.minSize
}

func (r *blurViewRenderer) Refresh() {
	canvas.Refresh(r.raster)
}

func (r *blurViewRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.raster}
}

func (r *blurViewRenderer) Destroy() {}
