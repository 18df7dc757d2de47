package notify

import (
	"image"
	"image/color"
	"testing"
)

// warningAmberSquare builds a solid test image of the given edge length.
func warningAmberSquare(size int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetNRGBA(x, y, warningAmber)
		}
	}
	return img
}

func TestEncodeImageRoundTrip(t *testing.T) {
	// Arbitrary channel values, including a translucent and a fully
	// transparent pixel. Decoding the buffer must yield the original
	// channels exactly, independent of host byte order.
	pixels := []color.NRGBA{
		{R: 0x12, G: 0x34, B: 0x56, A: 0xff},
		{R: 0xff, G: 0x00, B: 0x7f, A: 0x80},
		{R: 0x01, G: 0xfe, B: 0xab, A: 0x00},
		{R: 0xde, G: 0xad, B: 0xbe, A: 0xef},
	}

	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for i, p := range pixels {
		img.SetNRGBA(i%2, i/2, p)
	}

	d := encodeImage(img)

	for i, p := range pixels {
		off := i * imageBytesPerPixel
		r, g, b, a := d.Pixels[off], d.Pixels[off+1], d.Pixels[off+2], d.Pixels[off+3]
		if r != p.R || g != p.G || b != p.B || a != p.A {
			t.Errorf("pixel %d = %#x,%#x,%#x,%#x, want %#x,%#x,%#x,%#x",
				i, r, g, b, a, p.R, p.G, p.B, p.A)
		}
	}
}

func TestEncodeImageBufferLength(t *testing.T) {
	sizes := []struct{ w, h int }{
		{1, 1},
		{3, 5},
		{128, 128},
		{16, 1},
	}

	for _, s := range sizes {
		d := encodeImage(image.NewNRGBA(image.Rect(0, 0, s.w, s.h)))
		if want := s.w * s.h * imageBytesPerPixel; len(d.Pixels) != want {
			t.Errorf("%dx%d: buffer length = %d, want %d", s.w, s.h, len(d.Pixels), want)
		}
		if d.Width != int32(s.w) || d.Height != int32(s.h) {
			t.Errorf("%dx%d: dimensions recorded as %dx%d", s.w, s.h, d.Width, d.Height)
		}
		if d.Stride != int32(s.w*imageBytesPerPixel) {
			t.Errorf("%dx%d: stride = %d, want %d", s.w, s.h, d.Stride, s.w*imageBytesPerPixel)
		}
	}
}

func TestEncodeImageMetadata(t *testing.T) {
	d := encodeImage(image.NewNRGBA(image.Rect(0, 0, 4, 4)))

	if !d.HasAlpha {
		t.Error("expected HasAlpha = true")
	}
	if d.BitsPerSample != imageBitsPerSample {
		t.Errorf("BitsPerSample = %d, want %d", d.BitsPerSample, imageBitsPerSample)
	}
	if d.Channels != imageChannels {
		t.Errorf("Channels = %d, want %d", d.Channels, imageChannels)
	}
}

func TestEncodeImageNonZeroOrigin(t *testing.T) {
	// Sub-images have bounds that do not start at (0,0); encoding must
	// still walk every pixel exactly once.
	base := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			base.SetNRGBA(x, y, color.NRGBA{R: byte(x), G: byte(y), B: 0x10, A: 0xff})
		}
	}
	sub := base.SubImage(image.Rect(2, 2, 6, 6))

	d := encodeImage(sub)
	if d.Width != 4 || d.Height != 4 {
		t.Fatalf("dimensions = %dx%d, want 4x4", d.Width, d.Height)
	}
	// First pixel of the sub-image is (2,2) in the base image.
	if d.Pixels[0] != 2 || d.Pixels[1] != 2 {
		t.Errorf("first pixel = %d,%d, want 2,2", d.Pixels[0], d.Pixels[1])
	}
}

func TestScaleSquare(t *testing.T) {
	scaled := scaleSquare(warningAmberSquare(32), freedesktopIconSize)
	bounds := scaled.Bounds()
	if bounds.Dx() != freedesktopIconSize || bounds.Dy() != freedesktopIconSize {
		t.Errorf("scaled to %dx%d, want %dx%d",
			bounds.Dx(), bounds.Dy(), freedesktopIconSize, freedesktopIconSize)
	}
}

func TestScaleSquareNoopOnExactSize(t *testing.T) {
	img := warningAmberSquare(freedesktopIconSize)
	if scaleSquare(img, freedesktopIconSize) != img {
		t.Error("expected the original image back when already at target size")
	}
}
