// Frost displays and renders frosted glass versions of images: blurred,
// with changed saturation, tinted and optionally masked.
//
// Without -output it opens a window with a live view of the effect over the
// input image (or a screenshot). With -output it renders the effect to a PNG
// file and exits. With -systray it runs as a system tray app that frosts the
// screen into the clipboard.
package main

import (
	"flag"

	"fyne.io/fyne/v2/app"
	"github.com/golang/glog"
	"github.com/janpfeifer/frost/systray"
)

var (
	flagSysTray    = flag.Bool("systray", false, "Run as a system tray app, whose menu frosts the screen into the clipboard.")
	flagInput      = flag.String("input", "", "Image file (PNG or JPEG) to frost. If empty, a screenshot of the primary display is used.")
	flagOutput     = flag.String("output", "", "If set, frost the input into this PNG file and exit, without opening a window.")
	flagMask       = flag.String("mask", "", "Optional image file used as mask: white areas show the effect, black or transparent ones the original.")
	flagRadius     = flag.Float64("radius", 20, "Blur radius in points. 0 is no blur, 30 is quite blurred.")
	flagMaxRadius  = flag.Float64("max_radius", 0, "Maximum blur radius of the window's blur slider. If 0 the last one used is kept, initially 60.")
	flagTint       = flag.String("tint", "", "Tint color as #RRGGBB or #RRGGBBAA. The alpha lessens the tint.")
	flagSaturation = flag.Float64("saturation", 1.0, "Saturation delta factor: 1 is no change, 0 is grayscale, 1.8 adds saturation.")
	flagWidth      = flag.Float64("width", 0, "If set with -height, the output is scaled to this width in points.")
	flagHeight     = flag.Float64("height", 0, "If set with -width, the output is scaled to this height in points.")
	flagScale      = flag.Float64("scale", 1, "Device pixels per point: it multiplies the blur radius and the output size.")
)

func main() {
	flag.Parse()
	defer glog.Flush()

	cfg, err := configFromFlags()
	if err != nil {
		glog.Fatalf("Invalid flags: %s", err)
	}

	switch {
	case *flagSysTray:
		systray.Run(func() {
			if err := frostScreenToClipboard(cfg); err != nil {
				glog.Errorf("Failed to frost screen: %s", err)
			}
		})
	case cfg.Output != "":
		if err := runHeadless(cfg); err != nil {
			glog.Fatalf("Failed to frost %q: %s", cfg.Input, err)
		}
		glog.Infof("Saved frosted image to %q", cfg.Output)
	default:
		fa := &FrostApp{
			App: app.NewWithID("Frost"),
			Cfg: cfg,
		}
		if err := fa.LoadTarget(); err != nil {
			glog.Fatalf("Failed to load image to frost: %s", err)
		}
		fa.BuildWindow()
		fa.Win.ShowAndRun()
	}
}
