package notify

import (
	"image"
	"image/color"

	"github.com/nfnt/resize"
)

// The freedesktop notification guidelines recommend at least 128px icons.
const freedesktopIconSize = 128

const (
	imageChannels      = 4
	imageBytesPerPixel = 4
	imageBitsPerSample = 8
)

// imageData is the freedesktop icon_data hint structure. godbus marshals it
// as a DBus STRUCT with signature (iiibiiay); field order must match.
type imageData struct {
	Width         int32
	Height        int32
	Stride        int32
	HasAlpha      bool
	BitsPerSample int32
	Channels      int32
	Pixels        []byte
}

// encodeImage repacks an image into bytewise R,G,B,A order for wire
// transmission. Channels are extracted from a packed 32-bit pixel value via
// shift and mask, so the produced buffer is identical on hosts of either
// endianness. The buffer length is always width*height*4.
func encodeImage(img image.Image) imageData {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	d := imageData{
		Width:         int32(w),
		Height:        int32(h),
		Stride:        int32(w * imageBytesPerPixel),
		HasAlpha:      true,
		BitsPerSample: imageBitsPerSample,
		Channels:      imageChannels,
		Pixels:        make([]byte, w*h*imageBytesPerPixel),
	}

	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			argb := packARGB(img.At(x, y))
			d.Pixels[i+0] = byte(argb >> 16)
			d.Pixels[i+1] = byte(argb >> 8)
			d.Pixels[i+2] = byte(argb)
			d.Pixels[i+3] = byte(argb >> 24)
			i += imageBytesPerPixel
		}
	}

	return d
}

// packARGB converts a color to a single non-premultiplied 0xAARRGGBB value.
func packARGB(c color.Color) uint32 {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return uint32(n.A)<<24 | uint32(n.R)<<16 | uint32(n.G)<<8 | uint32(n.B)
}

// scaleSquare scales an image to size x size pixels.
func scaleSquare(img image.Image, size int) image.Image {
	bounds := img.Bounds()
	if bounds.Dx() == size && bounds.Dy() == size {
		return img
	}
	return resize.Resize(uint(size), uint(size), img, resize.Lanczos3)
}
