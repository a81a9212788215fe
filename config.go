package main

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strconv"
	"strings"

	"github.com/janpfeifer/frost/effects"
)

// Config holds the program configuration, taken from the flags.
type Config struct {
	Input, Output, Mask string

	Radius, MaxRadius float64
	Tint              color.Color
	Saturation        float64

	// OutputSize in points, zero if the output is not to be scaled.
	OutputSize effects.Size
	Scale      float64
}

func configFromFlags() (*Config, error) {
	tint, err := parseTint(*flagTint)
	if err != nil {
		return nil, err
	}
	cfg := &Config{
		Input:      *flagInput,
		Output:     *flagOutput,
		Mask:       *flagMask,
		Radius:     *flagRadius,
		MaxRadius:  *flagMaxRadius,
		Tint:       tint,
		Saturation: *flagSaturation,
		OutputSize: effects.NewSize(float32(*flagWidth), float32(*flagHeight)),
		Scale:      *flagScale,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that don't depend on the images.
func (cfg *Config) Validate() error {
	if cfg.Output != "" && cfg.Input == "" {
		return errors.New("-output requires -input")
	}
	if cfg.MaxRadius < 0 {
		return fmt.Errorf("-max_radius must be >= 0, got %g", cfg.MaxRadius)
	}
	if cfg.Scale <= 0 {
		return fmt.Errorf("-scale must be > 0, got %g", cfg.Scale)
	}
	if (cfg.OutputSize.Width > 0) != (cfg.OutputSize.Height > 0) {
		return errors.New("-width and -height must be set together")
	}
	return cfg.Frost(nil).Validate()
}

// Frost returns the effect configured, using the given mask.
func (cfg *Config) Frost(mask image.Image) *effects.Frost {
	return &effects.Frost{
		Radius:     cfg.Radius,
		Tint:       cfg.Tint,
		Saturation: cfg.Saturation,
		Mask:       mask,
		Scale:      cfg.Scale,
	}
}

// parseTint parses "#RRGGBB" or "#RRGGBBAA" (the "#" is optional) into a
// non-premultiplied color. An empty string means no tint.
func parseTint(s string) (color.Color, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if s == "" {
		return nil, nil
	}
	if len(s) != 6 && len(s) != 8 {
		return nil, fmt.Errorf("invalid tint %q: must be #RRGGBB or #RRGGBBAA", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid tint %q: %w", s, err)
	}
	if len(s) == 6 {
		v = v<<8 | 0xFF
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// loadImage decodes a PNG or JPEG file.
func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %q: %w", path, err)
	}
	return img, nil
}

// loadMask loads cfg.Mask, if set.
func (cfg *Config) loadMask() (image.Image, error) {
	if cfg.Mask == "" {
		return nil, nil
	}
	return loadImage(cfg.Mask)
}
