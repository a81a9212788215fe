package main

import (
	"fmt"
	"image"
	"math"
	"path"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"github.com/golang/glog"
	"github.com/janpfeifer/frost/blurview"
	"github.com/janpfeifer/frost/clipboard"
	"github.com/janpfeifer/frost/resources"
	"github.com/kbinani/screenshot"
)

const (
	DefaultPathPreference = "DefaultPath"
	MaxRadiusPreference   = "MaxRadius"

	defaultMaxRadius = 60.0
)

// FrostApp is the windowed application: a BlurView over the target image
// with controls for the effect.
type FrostApp struct {
	// Fyne: Application and Window
	App fyne.App
	Win fyne.Window // Main window.

	Cfg *Config

	// Target image and when it was loaded or captured.
	Target     image.Image
	TargetTime time.Time
	MaxRadius  float64

	// UI elements
	view   *blurview.BlurView
	status *widget.Label
}

// LoadTarget loads the input image, or captures the screen if none was given.
func (fa *FrostApp) LoadTarget() error {
	var err error
	if fa.Cfg.Input != "" {
		fa.Target, err = loadImage(fa.Cfg.Input)
	} else {
		fa.Target, err = captureScreen()
	}
	if err != nil {
		return err
	}
	fa.TargetTime = time.Now()
	return nil
}

// maxRadius returns the maximum radius of the blur slider: from the flags if
// given, otherwise the last one used.
func (fa *FrostApp) maxRadius() float64 {
	if fa.Cfg.MaxRadius > 0 {
		fa.App.Preferences().SetFloat(MaxRadiusPreference, fa.Cfg.MaxRadius)
		return fa.Cfg.MaxRadius
	}
	return fa.App.Preferences().FloatWithFallback(MaxRadiusPreference, defaultMaxRadius)
}

// BuildWindow creates the main window, and starts rendering the effect.
func (fa *FrostApp) BuildWindow() {
	fa.Win = fa.App.NewWindow(fmt.Sprintf("Frost: %s", fa.DefaultName()))
	fa.Win.SetIcon(resources.FrostIcon)
	fa.MaxRadius = fa.maxRadius()

	mask, err := fa.Cfg.loadMask()
	if err != nil {
		glog.Errorf("Ignoring mask: %s", err)
	}

	fa.status = widget.NewLabel(fmt.Sprintf("Image size: %s", fa.Target.Bounds()))
	fa.view = blurview.NewBlurView()
	fa.view.TargetImage = fa.Target
	fa.view.BlurRadius = fa.Cfg.Radius
	fa.view.TintColor = fa.Cfg.Tint
	fa.view.SaturationDeltaFactor = fa.Cfg.Saturation
	fa.view.MaskImage = mask
	fa.view.OnRendered = func(img image.Image) {
		if img == nil {
			fa.status.SetText("Nothing to render")
			return
		}
		fa.status.SetText(fmt.Sprintf("Rendered %s, blur radius %.3g", img.Bounds().Size(), fa.view.BlurRadius))
	}

	blurSlider := widget.NewSlider(0, 1)
	blurSlider.Step = 0.01
	blurSlider.Value = math.Min(fa.Cfg.Radius/fa.MaxRadius, 1)
	blurSlider.OnChanged = func(percent float64) {
		glog.V(2).Infof("Blur changed to %g%% of %g", 100*percent, fa.MaxRadius)
		fa.view.UpdateBlurRadiusFromPercent(percent, fa.MaxRadius)
	}

	saturationSlider := widget.NewSlider(0, 3)
	saturationSlider.Step = 0.05
	saturationSlider.Value = fa.Cfg.Saturation
	saturationSlider.OnChanged = func(value float64) {
		glog.V(2).Infof("Saturation changed to %g", value)
		fa.view.SaturationDeltaFactor = value
		fa.view.Update()
	}

	toolBar := container.NewVBox(
		widget.NewLabel("Blur:"), blurSlider,
		widget.NewLabel("Saturation:"), saturationSlider,
		widget.NewButton("Copy", func() { fa.CopyImageToClipboard() }),
		widget.NewButton("Save", func() { fa.SaveImage() }),
		widget.NewButtonWithIcon("Snapshot", resources.Snapshot, func() { fa.Snapshot() }),
	)

	split := container.NewHSplit(fa.view, toolBar)
	split.Offset = 0.8
	fa.Win.SetContent(container.NewBorder(nil, fa.status, nil, nil, container.NewMax(split)))
	fa.Win.Resize(fyne.NewSize(800.0, 600.0))
	fa.view.Update()
}

// DefaultName returns a default name for the frosted image, based on when
// the target was loaded.
func (fa *FrostApp) DefaultName() string {
	return fmt.Sprintf("Frost %s", fa.TargetTime.Format("2006-01-02 15-04-05"))
}

// Snapshot re-captures the primary display as the target.
func (fa *FrostApp) Snapshot() {
	bounds := screenshot.GetDisplayBounds(0)
	if err := fa.view.SetTargetFromScreen(bounds); err != nil {
		fa.reportError("Snapshot failed", err)
		return
	}
	fa.Target = fa.view.TargetImage
	fa.TargetTime = time.Now()
	fa.status.SetText("Rendering snapshot ...")
	fa.view.Update()
}

// CopyImageToClipboard copies the rendered image.
func (fa *FrostApp) CopyImageToClipboard() {
	glog.V(2).Info("FrostApp.CopyImageToClipboard")
	if err := clipboard.CopyImage(fa.view.Rendered()); err != nil {
		fa.reportError("Failed to copy to clipboard", err)
		return
	}
	fa.status.SetText("Frosted image copied to clipboard")
}

// reportError logs err and shows it in the status bar, prefixed by what
// failed.
func (fa *FrostApp) reportError(what string, err error) {
	glog.Errorf("%s: %s", what, err)
	fa.status.SetText(fmt.Sprintf("%s: %s", what, err))
}

// SaveImage asks for a file name and saves the rendered image there as PNG.
func (fa *FrostApp) SaveImage() {
	glog.V(2).Info("FrostApp.SaveImage")
	img := fa.view.Rendered()
	if img == nil {
		fa.status.SetText("Nothing rendered to save yet.")
		return
	}
	onChosen := func(writer fyne.URIWriteCloser, err error) {
		switch {
		case err != nil:
			fa.reportError("Failed to save image", err)
		case writer == nil:
			fa.status.SetText("Save file cancelled.")
		default:
			if err = fa.writeImage(writer, img); err != nil {
				fa.reportError(fmt.Sprintf("Failed to save image to %q", writer.URI()), err)
				return
			}
			fa.status.SetText(fmt.Sprintf("Saved image to %q", writer.URI()))
		}
	}
	fa.saveDialog(onChosen).Show()
}

// writeImage writes img as PNG and closes writer. The directory is
// remembered as the default location of the next save.
func (fa *FrostApp) writeImage(writer fyne.URIWriteCloser, img image.Image) (err error) {
	glog.V(2).Infof("FrostApp.writeImage(%s)", writer.URI())
	defer func() {
		if closeErr := writer.Close(); err == nil {
			err = closeErr
		}
	}()
	fa.App.Preferences().SetString(DefaultPathPreference, path.Dir(writer.URI().Path()))
	return writePNG(writer, img)
}

// saveDialog builds the file save dialog, opened at the last used directory.
func (fa *FrostApp) saveDialog(onChosen func(fyne.URIWriteCloser, error)) *dialog.FileDialog {
	d := dialog.NewFileSave(onChosen, fa.Win)
	d.SetFileName(fa.DefaultName() + ".png")
	if dir := fa.App.Preferences().String(DefaultPathPreference); dir != "" {
		if lister, err := storage.ListerForURI(storage.NewFileURI(dir)); err == nil {
			d.SetLocation(lister)
		} else {
			glog.Warningf("Ignoring last save location %q: %s", dir, err)
		}
	}
	winSize := fa.Win.Canvas().Size()
	d.Resize(fyne.NewSize(winSize.Width*0.9, winSize.Height*0.9))
	return d
}
