// Package clipboard copies images to the system clipboard.
package clipboard

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"sync"

	"github.com/golang/glog"
	"golang.design/x/clipboard"
)

// ErrUnavailable is returned when the system clipboard can't be used, e.g.
// on a Linux box without an X11 display.
var ErrUnavailable = errors.New("clipboard unavailable")

var (
	// initClipboard connects to the system clipboard. It runs at most once,
	// on first use, so headless runs never touch the display.
	initClipboard = clipboard.Init
	initOnce      sync.Once
	initErr       error
)

func ensureInit() error {
	initOnce.Do(func() {
		if err := initClipboard(); err != nil {
			glog.Errorf("Failed to initialize clipboard: %s", err)
			initErr = fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
	})
	return initErr
}

// CopyImage copies img to the clipboard, encoded as PNG.
func CopyImage(img image.Image) error {
	content, err := EncodePNG(img)
	if err != nil {
		return err
	}
	if err := ensureInit(); err != nil {
		return err
	}
	glog.V(2).Infof("clipboard.CopyImage(%d bytes)", len(content))
	clipboard.Write(clipboard.FmtImage, content)
	return nil
}

// EncodePNG returns img encoded as PNG.
func EncodePNG(img image.Image) ([]byte, error) {
	if img == nil {
		return nil, errors.New("no image to copy")
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode image as PNG: %w", err)
	}
	return buf.Bytes(), nil
}
