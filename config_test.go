package main

import (
	"image/color"
	"testing"

	"github.com/janpfeifer/frost/effects"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTint(t *testing.T) {
	c, err := parseTint("")
	require.NoError(t, err)
	assert.Nil(t, c)

	c, err = parseTint("#ff8000")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 0xFF, G: 0x80, A: 0xFF}, c)

	c, err = parseTint(" 10203040 ")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x40}, c)

	for _, bad := range []string{"#fff", "#gg0000", "#1234567"} {
		_, err = parseTint(bad)
		assert.Error(t, err, "tint %q", bad)
	}
}

func validConfig() *Config {
	return &Config{Radius: 5, Saturation: 1, Scale: 1}
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, validConfig().Validate())

	for name, change := range map[string]func(cfg *Config){
		"output without input": func(cfg *Config) { cfg.Output = "out.png" },
		"negative radius":      func(cfg *Config) { cfg.Radius = -1 },
		"negative max radius":  func(cfg *Config) { cfg.MaxRadius = -1 },
		"negative saturation":  func(cfg *Config) { cfg.Saturation = -0.1 },
		"zero scale":           func(cfg *Config) { cfg.Scale = 0 },
		"width without height": func(cfg *Config) { cfg.OutputSize = effects.NewSize(10, 0) },
	} {
		cfg := validConfig()
		change(cfg)
		assert.Error(t, cfg.Validate(), name)
	}
}
