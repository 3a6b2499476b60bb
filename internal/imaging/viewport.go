package imaging

import (
	"image"

	"github.com/anthonynsimon/bild/adjust"
	"github.com/disintegration/imaging"
)

// ViewportSize resolves the overlay viewport for a srcW x srcH image.
//
// Zero requested dimensions are derived from the source: both zero keeps the
// source size, one zero keeps the aspect ratio of the source.
func ViewportSize(srcW, srcH, width, height int) (int, int) {
	switch {
	case width <= 0 && height <= 0:
		return srcW, srcH
	case width <= 0:
		if srcH == 0 {
			return 0, height
		}
		return srcW * height / srcH, height
	case height <= 0:
		if srcW == 0 {
			return width, 0
		}
		return width, srcH * width / srcW
	}
	return width, height
}

// FitToViewport resizes img to exactly width x height so that it lines up
// with overlay coordinates mapped by independent horizontal and vertical
// scale factors. An image already at that size is returned unchanged.
func FitToViewport(img image.Image, width, height int) image.Image {
	b := img.Bounds()
	if b.Dx() == width && b.Dy() == height {
		return img
	}
	if width <= 0 || height <= 0 {
		return img
	}
	return imaging.Resize(img, width, height, imaging.Lanczos)
}

// Dim darkens img by amount (0 to 1) so annotations stand out. A non-positive
// amount returns img unchanged.
func Dim(img image.Image, amount float64) image.Image {
	if amount <= 0 {
		return img
	}
	if amount > 1 {
		amount = 1
	}
	return adjust.Brightness(img, -amount)
}
