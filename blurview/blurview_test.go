package blurview

import (
	"image"
	"image/color"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"
	"github.com/janpfeifer/frost/effects"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const renderTimeout = 5 * time.Second

func stripes(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.RGBA{A: 0xFF}
			if x%2 == 0 {
				c = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// newTestView returns a view on a stripes image, and a channel that
// receives its rendered outputs.
func newTestView(t *testing.T) (*BlurView, chan image.Image) {
	t.Helper()
	test.NewApp()
	v := NewBlurView()
	w := test.NewWindow(v)
	t.Cleanup(w.Close)
	v.TargetImage = stripes(32, 16)
	rendered := make(chan image.Image, 16)
	v.OnRendered = func(img image.Image) { rendered <- img }
	return v, rendered
}

func waitRendered(t *testing.T, rendered chan image.Image) image.Image {
	t.Helper()
	select {
	case img := <-rendered:
		return img
	case <-time.After(renderTimeout):
		t.Fatal("timed out waiting for BlurView to render")
	}
	return nil
}

func TestUpdate(t *testing.T) {
	v, rendered := newTestView(t)
	assert.Nil(t, v.Rendered())
	assert.Equal(t, 1.0, v.SaturationDeltaFactor)

	v.BlurRadius = 3
	v.Update()
	img := waitRendered(t, rendered)
	require.NotNil(t, img)
	assert.Equal(t, image.Rect(0, 0, 32, 16), img.Bounds())
	assert.Equal(t, img, v.Rendered())
	assert.False(t, v.Updating())

	// Stripes are blurred into gray.
	c := color.RGBAModel.Convert(img.At(16, 8)).(color.RGBA)
	assert.InDelta(t, 128, int(c.R), 40)
}

func TestUpdateWithoutChangesIsIdentity(t *testing.T) {
	v, rendered := newTestView(t)
	v.TintColor = color.Transparent
	v.Update()
	img := waitRendered(t, rendered)
	target := v.TargetImage.(*image.RGBA)
	for y := 0; y < 16; y++ {
		for x := 0; x < 32; x++ {
			require.Equal(t, target.RGBAAt(x, y), img.(*image.RGBA).RGBAAt(x, y))
		}
	}
}

func TestUpdateBlurRadiusFromPercent(t *testing.T) {
	v, rendered := newTestView(t)

	v.UpdateBlurRadiusFromPercent(0.5, 20)
	assert.Equal(t, 10.0, v.BlurRadius)
	waitRendered(t, rendered)
	assert.Equal(t, 1, v.passes)

	// Same percent: no new render pass, even with a different maximum.
	v.UpdateBlurRadiusFromPercent(0.5, 40)
	assert.Equal(t, 10.0, v.BlurRadius)
	assert.Equal(t, 1, v.passes)
	assert.False(t, v.Updating())

	v.UpdateBlurRadiusFromPercent(0.25, 40)
	assert.Equal(t, 10.0, v.BlurRadius)
	assert.Equal(t, 2, v.passes)
	waitRendered(t, rendered)

	// Percent is clamped to [0, 1].
	v.UpdateBlurRadiusFromPercent(3, 40)
	assert.Equal(t, 40.0, v.BlurRadius)
	waitRendered(t, rendered)
	v.UpdateBlurRadiusFromPercent(1, 40)
	assert.Equal(t, 3, v.passes)
}

func TestInvalidPropertiesKeepPreviousOutput(t *testing.T) {
	v, rendered := newTestView(t)
	v.BlurRadius = 2
	v.Update()
	first := waitRendered(t, rendered)

	v.BlurRadius = -1
	v.Update()
	assert.Eventually(t, func() bool { return !v.Updating() }, renderTimeout, 10*time.Millisecond)
	assert.Equal(t, first, v.Rendered())
	assert.Empty(t, rendered)
}

func TestNilTargetClearsOutput(t *testing.T) {
	v, rendered := newTestView(t)
	v.Update()
	require.NotNil(t, waitRendered(t, rendered))

	v.TargetImage = nil
	v.Update()
	assert.Nil(t, waitRendered(t, rendered))
	assert.Nil(t, v.Rendered())
}

func TestStaleRenderIsDiscarded(t *testing.T) {
	v, rendered := newTestView(t)

	// Simulates a first Update finishing after a second one was issued.
	v.generation, v.pending = 2, 1
	v.render(1, v.TargetImage, effects.NewFrost(1))
	assert.Nil(t, v.Rendered())
	assert.False(t, v.Updating())
	assert.Empty(t, rendered)

	v.pending = 1
	v.render(2, v.TargetImage, effects.NewFrost(1))
	assert.NotNil(t, v.Rendered())
	assert.Equal(t, 2, v.renderedAt)
}

func TestRendererScalesOutput(t *testing.T) {
	v, rendered := newTestView(t)
	r := test.WidgetRenderer(v)
	assert.Equal(t, fyne.NewSize(100, 100), r.MinSize())
	v.Resize(fyne.NewSize(60, 30))

	raster := r.Objects()[0].(*canvas.Raster)
	empty := raster.Generator(10, 10)
	assert.Equal(t, color.RGBA{}, empty.(*image.RGBA).RGBAAt(5, 5))

	v.Update()
	waitRendered(t, rendered)
	img := raster.Generator(64, 48)
	assert.Equal(t, image.Rect(0, 0, 64, 48), img.Bounds())
	assert.Same(t, img, raster.Generator(64, 48), "same size must reuse the cache")
}

func TestSetTargetFromObject(t *testing.T) {
	test.NewApp()
	rect := canvas.NewRectangle(color.RGBA{R: 0xFF, A: 0xFF})
	w := test.NewWindow(rect)
	defer w.Close()
	w.Resize(fyne.NewSize(40, 30))

	v := NewBlurView()
	v.SetTargetFromObject(rect)
	require.NotNil(t, v.TargetImage)
	bounds := v.TargetImage.Bounds()
	require.False(t, bounds.Empty())
	center := bounds.Min.Add(bounds.Max).Div(2)
	c := color.RGBAModel.Convert(v.TargetImage.At(center.X, center.Y)).(color.RGBA)
	assert.Greater(t, int(c.R), 200)
	assert.Less(t, int(c.G), 50)
}
