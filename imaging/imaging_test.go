package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"
)

func testImage(t *testing.T, w, h int, encode func(*bytes.Buffer, image.Image) error) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{0, 128, 0, 255})
		}
	}
	var buf bytes.Buffer
	if err := encode(&buf, img); err != nil {
		t.Fatalf("encoding test image: %v", err)
	}
	return buf.Bytes()
}

func encodeJPEG(buf *bytes.Buffer, img image.Image) error {
	return jpeg.Encode(buf, img, &jpeg.Options{Quality: 90})
}

func encodePNG(buf *bytes.Buffer, img image.Image) error {
	return png.Encode(buf, img)
}

func TestProcessJPEG(t *testing.T) {
	photo, err := Process(testImage(t, 64, 64, encodeJPEG))
	if err != nil {
		t.Fatalf("Process JPEG: %v", err)
	}
	if photo.MIME != "image/jpeg" {
		t.Errorf("expected image/jpeg, got %s", photo.MIME)
	}
	if len(photo.Data) == 0 {
		t.Error("expected non-empty data")
	}
}

func TestProcessPNGConvertedToJPEG(t *testing.T) {
	photo, err := Process(testImage(t, 64, 64, encodePNG))
	if err != nil {
		t.Fatalf("Process PNG: %v", err)
	}
	if photo.MIME != "image/jpeg" {
		t.Errorf("expected image/jpeg output, got %s", photo.MIME)
	}
}

func TestProcessDownscalesLargePhotos(t *testing.T) {
	photo, err := Process(testImage(t, 1600, 800, encodeJPEG))
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	img, _, err := image.Decode(bytes.NewReader(photo.Data))
	if err != nil {
		t.Fatalf("decoding result: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != MaxDimension {
		t.Errorf("expected width %d, got %d", MaxDimension, b.Dx())
	}
	if b.Dy() != MaxDimension/2 {
		t.Errorf("expected aspect ratio preserved (height %d), got %d", MaxDimension/2, b.Dy())
	}
}

func TestProcessKeepsSmallPhotos(t *testing.T) {
	photo, err := Process(testImage(t, 40, 30, encodeJPEG))
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	img, _, err := image.Decode(bytes.NewReader(photo.Data))
	if err != nil {
		t.Fatalf("decoding result: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 40 || b.Dy() != 30 {
		t.Errorf("small photo should not be resized: got %dx%d", b.Dx(), b.Dy())
	}
}

func TestProcessRejectsNonImages(t *testing.T) {
	if _, err := Process([]byte("definitely not an image")); err == nil {
		t.Error("expected error for non-image data")
	}
}

func TestProcessRejectsGIF(t *testing.T) {
	if _, err := Process([]byte("GIF89a......")); err == nil {
		t.Error("expected error for GIF input")
	}
}
