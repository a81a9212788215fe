package resources

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrostIconPng(t *testing.T) {
	img, err := png.Decode(bytes.NewReader(FrostIconPng.Content()))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 32, 32), img.Bounds())
	_, _, _, a := img.At(0, 0).RGBA()
	assert.Zero(t, a, "corners should be transparent")
	_, _, _, a = img.At(16, 16).RGBA()
	assert.Equal(t, uint32(0xFFFF), a)
}
