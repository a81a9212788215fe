package main

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"github.com/golang/glog"
	"github.com/janpfeifer/frost/clipboard"
	"github.com/janpfeifer/frost/effects"
	"github.com/kbinani/screenshot"
)

// runHeadless frosts cfg.Input into cfg.Output.
func runHeadless(cfg *Config) error {
	src, err := loadImage(cfg.Input)
	if err != nil {
		return err
	}
	out, err := frostImage(cfg, src)
	if err != nil {
		return err
	}
	return savePNG(cfg.Output, out)
}

// frostImage applies the configured effect to src, and scales it to
// cfg.OutputSize if set.
func frostImage(cfg *Config, src image.Image) (image.Image, error) {
	mask, err := cfg.loadMask()
	if err != nil {
		return nil, err
	}
	out, err := cfg.Frost(mask).Apply(src)
	if err != nil {
		return nil, err
	}
	if cfg.OutputSize.Width > 0 && cfg.OutputSize.Height > 0 {
		glog.V(2).Infof("Scaling output to %gx%g points at scale %g",
			cfg.OutputSize.Width, cfg.OutputSize.Height, cfg.Scale)
		out = effects.ScaleToSize(out, cfg.OutputSize, float32(cfg.Scale))
	}
	return out, nil
}

func savePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()
	if err = writePNG(f, img); err != nil {
		return fmt.Errorf("failed to save %q: %w", path, err)
	}
	return nil
}

// writePNG encodes img as PNG into w.
func writePNG(w io.Writer, img image.Image) error {
	if img == nil {
		return errors.New("no image to write")
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}

// captureScreen captures the primary display.
func captureScreen() (*image.RGBA, error) {
	if n := screenshot.NumActiveDisplays(); n != 1 {
		glog.Warningf("%d displays active, capturing only the first one.", n)
	}
	bounds := screenshot.GetDisplayBounds(0)
	img, err := screenshot.CaptureRect(bounds)
	if err != nil {
		return nil, fmt.Errorf("failed to capture screen: %w", err)
	}
	glog.V(2).Infof("Screenshot captured bounds: %+v", bounds)
	return img, nil
}

// frostScreenToClipboard is the system tray action.
func frostScreenToClipboard(cfg *Config) error {
	img, err := captureScreen()
	if err != nil {
		return err
	}
	out, err := frostImage(cfg, img)
	if err != nil {
		return err
	}
	return clipboard.CopyImage(out)
}
