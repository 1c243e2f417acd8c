package compose

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
)

// PrepareBackground converts the photo into a layer of exactly target
// width×height: the image is scaled with Lanczos resampling by whichever
// factor covers both target dimensions and then center-cropped, so the
// result is never letterboxed. A nil or unusable image degrades to a
// deterministic vertical gradient of the same size; this never fails.
func (c *Compositor) PrepareBackground(img image.Image, width, height int) *image.RGBA {
	if img == nil {
		return gradientBackground(width, height)
	}

	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		c.logger.Warn("background image has no pixels, using gradient fallback")
		return gradientBackground(width, height)
	}

	// Fill scales by max(w/srcW, h/srcH) and center-crops the overflow,
	// which is exactly the cover-never-letterbox behavior we need.
	filled := imaging.Fill(img, width, height, imaging.Center, imaging.Lanczos)

	out := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(out, out.Bounds(), filled, image.Point{}, draw.Src)
	return out
}

// gradientBackground is the documented fallback when no photo is
// available: a vertical gray ramp, light at the top and darker at the
// bottom.
func gradientBackground(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		v := uint8(240 - (40*y)/max(height, 1))
		row := color.RGBA{v, v, v, 255}
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, row)
		}
	}
	return img
}

// newCanvas creates the blank canvas for one render, filled with the
// brand's secondary color.
func newCanvas(width, height int, fill color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{fill}, image.Point{}, draw.Src)
	return img
}
