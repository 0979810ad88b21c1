package storage

import (
	"bytes"
	"image"
	"io"
	"net/http"
	"strings"

	// Decoders accepted for uploads.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"

	"github.com/BruksfildServices01/pet-shelter/internal/httperr"
)

const (
	ContentTypeWebP = "image/webp"

	// DefaultMaxPixels applies when MaxPixels is unset.
	DefaultMaxPixels = 25_000_000
)

// ImageProcessor turns an uploaded photo into a bounded-width WebP.
// MaxBytes bounds the encoded upload and MaxPixels bounds the decoded one.
type ImageProcessor struct {
	MaxBytes  int64
	MaxPixels int64
	MaxWidth  int
	Quality   float32
}

func (p ImageProcessor) Process(r io.Reader) ([]byte, error) {
	raw, err := io.ReadAll(io.LimitReader(r, p.MaxBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(raw)) > p.MaxBytes {
		return nil, httperr.Validation("image_too_large")
	}
	if !strings.HasPrefix(http.DetectContentType(raw), "image/") {
		return nil, httperr.Validation("invalid_image")
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil || cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, httperr.Validation("invalid_image")
	}
	if int64(cfg.Width)*int64(cfg.Height) > p.maxPixels() {
		return nil, httperr.Validation("invalid_image")
	}

	src, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, httperr.Validation("invalid_image")
	}

	img := p.fit(src)

	quality := p.Quality
	if quality <= 0 || quality > 100 {
		quality = 80
	}

	var out bytes.Buffer
	if err := webp.Encode(&out, img, &webp.Options{Quality: quality}); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func (p ImageProcessor) maxPixels() int64 {
	if p.MaxPixels <= 0 {
		return DefaultMaxPixels
	}
	return p.MaxPixels
}

func (p ImageProcessor) fit(src image.Image) image.Image {
	b := src.Bounds()
	if p.MaxWidth <= 0 || b.Dx() <= p.MaxWidth {
		return src
	}

	h := b.Dy() * p.MaxWidth / b.Dx()
	if h < 1 {
		h = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, p.MaxWidth, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
