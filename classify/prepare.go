package classify

import (
	"image"

	"golang.org/x/image/draw"
)

// Prepare converts img into a size×size grayscale model input.
//
// The image is scaled with Catmull-Rom resampling to fill the square
// (aspect ratio is not preserved, matching a center-crop-free model input).
// When invert is true the result is inverted so ink becomes bright on a
// dark background, the convention of MNIST-style digit models.
// Non-positive sizes return the image at its own resolution.
func Prepare(img image.Image, size int, invert bool) *image.Gray {
	b := img.Bounds()
	dst := image.Rect(0, 0, b.Dx(), b.Dy())
	if size > 0 {
		dst = image.Rect(0, 0, size, size)
	}

	gray := image.NewGray(dst)
	if dst.Dx() == b.Dx() && dst.Dy() == b.Dy() {
		draw.Draw(gray, dst, img, b.Min, draw.Src)
	} else {
		// Scale through RGBA so the resampler works on full precision
		// colors before the grayscale conversion.
		rgba := image.NewRGBA(dst)
		draw.CatmullRom.Scale(rgba, dst, img, b, draw.Src, nil)
		draw.Draw(gray, dst, rgba, image.Point{}, draw.Src)
	}

	if invert {
		for i, v := range gray.Pix {
			gray.Pix[i] = 255 - v
		}
	}
	return gray
}

// inkCoverage returns the fraction of pixels darker than mid gray in a
// non-inverted input.
func inkCoverage(g *image.Gray) float64 {
	if len(g.Pix) == 0 {
		return 0
	}
	n := 0
	for _, v := range g.Pix {
		if v < 128 {
			n++
		}
	}
	return float64(n) / float64(len(g.Pix))
}
