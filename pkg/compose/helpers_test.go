package compose

import (
	"errors"
	"image"
	"image/color"
)

var (
	white = color.RGBA{255, 255, 255, 255}
	black = color.RGBA{0, 0, 0, 255}
)

// missingLogoLoader simulates an absent logo asset, exercising the text
// fallback path.
type missingLogoLoader struct{}

func (missingLogoLoader) Load(string) (image.Image, error) {
	return nil, errors.New("no such file")
}

// stubLogoLoader serves a fixed in-memory logo for every brand.
type stubLogoLoader struct {
	img image.Image
}

func (s stubLogoLoader) Load(string) (image.Image, error) {
	return s.img, nil
}

// solidImage builds a uniformly colored test image.
func solidImage(w, h int, c color.RGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
		img.Pix[i+3] = c.A
	}
	return img
}
