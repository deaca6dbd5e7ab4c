// Package imaging prepares uploaded equipment photos for the catalog.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"net/http"

	_ "image/png"

	"golang.org/x/image/draw"
)

// MaxDimension is the maximum width or height of a stored catalog photo.
const MaxDimension = 512

// JPEGQuality is the compression quality for stored photos.
const JPEGQuality = 80

// Photo is a processed catalog photo.
type Photo struct {
	Data []byte
	MIME string
}

// Process validates an uploaded photo by sniffing its actual format (JPEG
// and PNG only), downscales it to fit MaxDimension, and re-encodes it as
// JPEG.
func Process(data []byte) (*Photo, error) {
	switch detected := http.DetectContentType(data); detected {
	case "image/jpeg", "image/png":
	default:
		return nil, fmt.Errorf("unsupported image format %s, want JPEG or PNG", detected)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}

	if b := img.Bounds(); b.Dx() > MaxDimension || b.Dy() > MaxDimension {
		img = scale(img, MaxDimension)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: JPEGQuality}); err != nil {
		return nil, fmt.Errorf("encoding JPEG: %w", err)
	}

	return &Photo{Data: buf.Bytes(), MIME: "image/jpeg"}, nil
}

// scale resizes img so its longer side equals maxDim, preserving aspect
// ratio, with Catmull-Rom interpolation.
func scale(img image.Image, maxDim int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	var newW, newH int
	if w >= h {
		newW = maxDim
		newH = max(1, h*maxDim/w)
	} else {
		newH = maxDim
		newW = max(1, w*maxDim/h)
	}

	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}
