package compose

import (
	"image"
	"image/color"
	"strings"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/mediatalo/somegen/pkg/brand"
)

// BannerCorner names the canvas corner a corner-placed badge hugs.
type BannerCorner int

const (
	CornerUpperLeft BannerCorner = iota
	CornerUpperRight
)

// BannerStyle selects the badge color scheme.
type BannerStyle int

const (
	// BannerPrimaryBG paints the badge in the brand primary with light
	// text, for photo-backed templates.
	BannerPrimaryBG BannerStyle = iota
	// BannerWhiteBG paints a white badge with primary text, for templates
	// whose canvas is already the brand primary.
	BannerWhiteBG
)

// BannerPlacement positions the badge: either hugging a corner with a 5%
// margin, or centered on an explicit anchor point.
type BannerPlacement struct {
	Centered bool
	Corner   BannerCorner
	CenterX  float64
	CenterY  float64
	Style    BannerStyle
	Size     float64 // text pixel size
}

const bannerMargin = 0.05

// RenderBannerBadge draws the campaign badge: the uppercased label in
// bold on a rectangle sized to the measured text plus fixed padding. An
// empty label draws nothing.
func (c *Compositor) RenderBannerBadge(canvas *image.RGBA, b *brand.Profile, label string, p BannerPlacement) {
	label = strings.ToUpper(strings.TrimSpace(label))
	if label == "" {
		return
	}

	size := p.Size
	if size <= 0 {
		size = 34
	}
	face := c.fonts.BoldFace(b.FontFamily, size)

	textW := font.MeasureString(face, label).Ceil()
	padX := int(size * 0.8)
	padY := int(size * 0.45)
	w := textW + 2*padX
	h := int(size) + 2*padY

	cw := canvas.Bounds().Dx()
	ch := canvas.Bounds().Dy()

	var x0, y0 int
	if p.Centered {
		x0 = int(p.CenterX*float64(cw)) - w/2
		y0 = int(p.CenterY*float64(ch)) - h/2
	} else {
		y0 = int(bannerMargin * float64(ch))
		switch p.Corner {
		case CornerUpperRight:
			x0 = cw - int(bannerMargin*float64(cw)) - w
		default:
			x0 = int(bannerMargin * float64(cw))
		}
	}

	bg, fg := b.Primary, b.TextLight
	if p.Style == BannerWhiteBG {
		bg, fg = color.RGBA{255, 255, 255, 255}, b.Primary
	}

	c.ApplyColorOverlay(canvas, bg, image.Rect(x0, y0, x0+w, y0+h), OverlaySolid)

	dc := gg.NewContextForRGBA(canvas)
	dc.SetFontFace(face)
	dc.SetColor(fg)
	dc.DrawStringAnchored(label, float64(x0+w/2), float64(y0+h/2), 0.5, 0.5)
}
