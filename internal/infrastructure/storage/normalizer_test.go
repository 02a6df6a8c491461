package storage

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngFixture(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x += 10 {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 120, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func decodeJPEG(t *testing.T, data []byte) image.Config {
	t.Helper()

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, "jpeg", format)
	return cfg
}

func TestNormalizeDownscalesWideImages(t *testing.T) {
	src := pngFixture(t, 3000, 1500)

	out, err := Normalize(src, GalleryPolicy)
	require.NoError(t, err)

	cfg := decodeJPEG(t, out)
	assert.Equal(t, 1920, cfg.Width)
	// Aspect ratio survives the resize.
	assert.Equal(t, 960, cfg.Height)
}

func TestNormalizeKeepsDimensionsWithinBound(t *testing.T) {
	src := pngFixture(t, 800, 600)

	out, err := Normalize(src, GalleryPolicy)
	require.NoError(t, err)

	cfg := decodeJPEG(t, out)
	assert.Equal(t, 800, cfg.Width)
	assert.Equal(t, 600, cfg.Height)
}

func TestNormalizeReencodesEvenWhenSmall(t *testing.T) {
	// A PNG within the width bound still comes back as JPEG.
	src := pngFixture(t, 100, 100)

	out, err := Normalize(src, ArchivePolicy)
	require.NoError(t, err)

	_, format, err := image.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
}

func TestNormalizeArchivePolicyBound(t *testing.T) {
	src := pngFixture(t, 2400, 1200)

	out, err := Normalize(src, ArchivePolicy)
	require.NoError(t, err)

	cfg := decodeJPEG(t, out)
	assert.Equal(t, 1200, cfg.Width)
	assert.Equal(t, 600, cfg.Height)
}

func TestNormalizeRejectsNonImageData(t *testing.T) {
	_, err := Normalize([]byte("definitely not pixels"), GalleryPolicy)
	assert.ErrorIs(t, err, ErrImageDecode)
}
