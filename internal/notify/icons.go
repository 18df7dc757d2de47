package notify

import (
	"image"
	"image/color"
)

var (
	informationBlue = color.NRGBA{R: 0x2e, G: 0x7d, B: 0xd1, A: 0xff}
	warningAmber    = color.NRGBA{R: 0xe8, G: 0xa3, B: 0x3d, A: 0xff}
	criticalRed     = color.NRGBA{R: 0xd1, G: 0x3b, B: 0x2e, A: 0xff}
	glyphWhite      = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// StandardIcon renders the built-in 128x128 severity glyph: a colored badge
// with an "i" for information and an exclamation mark otherwise. It is the
// default IconLookup used when a notification carries no icon.
func StandardIcon(severity Severity) image.Image {
	badge := informationBlue
	switch severity {
	case SeverityWarning:
		badge = warningAmber
	case SeverityCritical:
		badge = criticalRed
	}

	img := image.NewNRGBA(image.Rect(0, 0, freedesktopIconSize, freedesktopIconSize))
	drawDisc(img, 64, 64, 60, badge)

	if severity == SeverityInformation {
		drawDisc(img, 64, 38, 9, glyphWhite)
		drawRect(img, 56, 56, 72, 98, glyphWhite)
	} else {
		drawRect(img, 56, 30, 72, 76, glyphWhite)
		drawDisc(img, 64, 92, 9, glyphWhite)
	}

	return img
}

func drawDisc(img *image.NRGBA, cx, cy, r int, c color.NRGBA) {
	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= r*r {
				img.SetNRGBA(x, y, c)
			}
		}
	}
}

func drawRect(img *image.NRGBA, x0, y0, x1, y1 int, c color.NRGBA) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
}
