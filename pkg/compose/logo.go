package compose

import (
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"go.uber.org/zap"

	"github.com/mediatalo/somegen/pkg/brand"
)

// LogoLoader fetches a brand's logo asset. The file-backed implementation
// is the production one; tests substitute their own.
type LogoLoader interface {
	Load(path string) (image.Image, error)
}

// FileLogoLoader reads logo images from disk.
type FileLogoLoader struct{}

func (FileLogoLoader) Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	return img, err
}

// SizePolicy says which logo dimension the placement fixes; the other
// follows from the source aspect ratio.
type SizePolicy int

const (
	SizeByHeight SizePolicy = iota
	SizeByWidth
)

// LogoPlacement positions a logo on the canvas. Fractions are relative to
// the canvas; Size is the fraction of canvas height (or width) the fixed
// dimension takes.
type LogoPlacement struct {
	CenterX float64
	CenterY float64
	Size    float64
	Policy  SizePolicy
}

// PlaceLogo draws the brand logo at the placement, recolored into the
// brand's two-tone scheme. A missing or unreadable logo asset degrades to
// the brand name rendered as text; placement never fails a render.
func (c *Compositor) PlaceLogo(canvas *image.RGBA, b *brand.Profile, p LogoPlacement) {
	src, err := c.logos.Load(b.LogoPath)
	if err != nil {
		c.logger.Warn("logo asset unavailable, using text fallback",
			zap.String("brand", b.ID), zap.String("path", b.LogoPath), zap.Error(err))
		c.drawLogoText(canvas, b, p)
		return
	}

	sb := src.Bounds()
	if sb.Dx() <= 0 || sb.Dy() <= 0 {
		c.drawLogoText(canvas, b, p)
		return
	}

	cw := canvas.Bounds().Dx()
	ch := canvas.Bounds().Dy()

	var w, h int
	if p.Policy == SizeByWidth {
		w = int(p.Size * float64(cw))
		h = w * sb.Dy() / sb.Dx()
	} else {
		h = int(p.Size * float64(ch))
		w = h * sb.Dx() / sb.Dy()
	}
	if w < 1 || h < 1 {
		return
	}

	scaled := imaging.Resize(src, w, h, imaging.Lanczos)
	recolored := RecolorLogo(scaled, b.Primary, b.Secondary)

	pos := image.Pt(
		int(p.CenterX*float64(cw))-w/2,
		int(p.CenterY*float64(ch))-h/2,
	)
	// Overlay honors the logo's alpha channel, so transparent regions keep
	// showing the canvas underneath.
	out := imaging.Overlay(imaging.Clone(canvas), recolored, pos, 1.0)
	copy(canvas.Pix, out.Pix)
}

// RecolorLogo maps the logo into the brand's two-tone scheme: pixels whose
// mean channel luma exceeds 128 become the primary color, the rest the
// secondary. Partial transparency is preserved; fully transparent pixels
// stay untouched.
func RecolorLogo(src image.Image, primary, secondary color.RGBA) *image.NRGBA {
	img := imaging.Clone(src)
	for i := 0; i < len(img.Pix); i += 4 {
		a := img.Pix[i+3]
		if a == 0 {
			continue
		}
		luma := (int(img.Pix[i]) + int(img.Pix[i+1]) + int(img.Pix[i+2])) / 3
		col := secondary
		if luma > 128 {
			col = primary
		}
		img.Pix[i] = col.R
		img.Pix[i+1] = col.G
		img.Pix[i+2] = col.B
		img.Pix[i+3] = a
	}
	return img
}

// drawLogoText is the logo fallback: the brand name in the secondary
// color with a subtle shadow, at the logo's anchor point.
func (c *Compositor) drawLogoText(canvas *image.RGBA, b *brand.Profile, p LogoPlacement) {
	ch := canvas.Bounds().Dy()
	size := p.Size * float64(ch) * 0.6
	if p.Policy == SizeByWidth {
		size = p.Size * float64(canvas.Bounds().Dx()) * 0.12
	}
	if size < 12 {
		size = 12
	}

	dc := gg.NewContextForRGBA(canvas)
	dc.SetFontFace(c.fonts.BoldFace(b.FontFamily, size))

	x := p.CenterX * float64(canvas.Bounds().Dx())
	y := p.CenterY * float64(ch)

	dc.SetColor(color.RGBA{0, 0, 0, 120})
	dc.DrawStringAnchored(b.Name, x+2, y+2, 0.5, 0.5)
	dc.SetColor(b.Secondary)
	dc.DrawStringAnchored(b.Name, x, y, 0.5, 0.5)
}
