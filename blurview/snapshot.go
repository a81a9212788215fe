package blurview

import (
	"fmt"
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/software"
	"github.com/golang/glog"
	"github.com/janpfeifer/frost/effects"
	"github.com/kbinani/screenshot"
)

// SetTargetFromObject snapshots obj and uses it as TargetImage. Update
// still needs to be called to render it.
func (v *BlurView) SetTargetFromObject(obj fyne.CanvasObject) {
	v.TargetImage = SnapshotObject(obj)
}

// SetTargetFromScreen captures the given rectangle of the screen (in screen
// pixels) and uses it as TargetImage. Update still needs to be called to
// render it.
func (v *BlurView) SetTargetFromScreen(rect image.Rectangle) error {
	img, err := screenshot.CaptureRect(rect)
	if err != nil {
		return fmt.Errorf("failed to capture screen rectangle %s: %w", rect, err)
	}
	glog.V(2).Infof("BlurView: captured screen %s", rect)
	v.TargetImage = img
	return nil
}

// SnapshotObject renders obj into an image.
//
// If obj is being displayed, its area is cropped from a capture of its
// canvas, so it looks exactly as on screen. Otherwise it is rendered on its
// own, at its minimum size, with the software renderer.
func SnapshotObject(obj fyne.CanvasObject) image.Image {
	app := fyne.CurrentApp()
	d := app.Driver()
	c := d.CanvasForObject(obj)
	if c == nil || obj.Size().Width <= 0 || obj.Size().Height <= 0 {
		glog.V(2).Infof("SnapshotObject: %T not in a canvas, using software renderer", obj)
		return software.Render(obj, app.Settings().Theme())
	}

	full := c.Capture()
	canvasSize := c.Size()
	if full == nil || canvasSize.Width <= 0 || canvasSize.Height <= 0 {
		return software.Render(obj, app.Settings().Theme())
	}
	// Pixels per point of the capture.
	sx := float32(full.Bounds().Dx()) / canvasSize.Width
	sy := float32(full.Bounds().Dy()) / canvasSize.Height
	pos := d.AbsolutePositionForObject(obj)
	size := obj.Size()
	rect := image.Rect(
		int(pos.X*sx+0.5), int(pos.Y*sy+0.5),
		int((pos.X+size.Width)*sx+0.5), int((pos.Y+size.Height)*sy+0.5),
	).Add(full.Bounds().Min).Intersect(full.Bounds())

	sub, ok := full.(interface {
		SubImage(r image.Rectangle) image.Image
	})
	if !ok {
		return full
	}
	return effects.Clone(sub.SubImage(rect))
}
