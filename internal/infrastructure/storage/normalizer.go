package storage

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"

	_ "image/gif"
	_ "image/png"

	"github.com/disintegration/imaging"
)

// ErrImageDecode indicates the input could not be decoded as a raster image.
// The caller must abort the corresponding upload; previously uploaded sibling
// images stay where they are (no compensating rollback).
var ErrImageDecode = errors.New("cannot decode image")

// NormalizePolicy bounds an image before it enters the network path.
type NormalizePolicy struct {
	MaxWidthPx int
	Quality    int // JPEG quality factor 1-100
}

// The two call-site budgets: primary gallery images get the looser bound
// (~0.5 MB target), archive and certificate images the lighter one (~0.3 MB).
var (
	GalleryPolicy = NormalizePolicy{MaxWidthPx: 1920, Quality: 85}
	ArchivePolicy = NormalizePolicy{MaxWidthPx: 1200, Quality: 80}
)

// Normalize downscales and re-encodes an image to bound its byte size while
// preserving aspect ratio. Images already within the width bound keep their
// dimensions but are still re-encoded as JPEG at the policy quality.
func Normalize(data []byte, policy NormalizePolicy) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImageDecode, err)
	}

	if w := img.Bounds().Dx(); w > policy.MaxWidthPx {
		// Height 0 lets imaging derive it from the same scale factor.
		img = imaging.Resize(img, policy.MaxWidthPx, 0, imaging.Lanczos)
	}

	b := new(bytes.Buffer)
	if err := jpeg.Encode(b, img, &jpeg.Options{Quality: policy.Quality}); err != nil {
		return nil, fmt.Errorf("cannot encode jpeg: %w", err)
	}
	return b.Bytes(), nil
}
