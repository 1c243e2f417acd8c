package compose

import (
	"image"
	"image/draw"

	"go.uber.org/zap"

	"github.com/mediatalo/somegen/pkg/brand"
)

// Compositor renders finished canvases from requests. It is stateless
// apart from its caches and safe for concurrent use.
type Compositor struct {
	fonts  *FontResolver
	logos  LogoLoader
	logger *zap.Logger
}

// NewCompositor wires the compositor's collaborators explicitly. A nil
// logger is replaced with a no-op one; a nil loader with the file-backed
// default.
func NewCompositor(fonts *FontResolver, logos LogoLoader, logger *zap.Logger) *Compositor {
	if logger == nil {
		logger = zap.NewNop()
	}
	if logos == nil {
		logos = FileLogoLoader{}
	}
	if fonts == nil {
		fonts = NewFontResolver(nil, logger)
	}
	return &Compositor{fonts: fonts, logos: logos, logger: logger}
}

// Fonts exposes the resolver so callers can share faces, e.g. for
// measuring text outside a render.
func (c *Compositor) Fonts() *FontResolver { return c.fonts }

// ComposeStatic renders the finished still image for the request.
func (c *Compositor) ComposeStatic(req *Request) (*image.RGBA, error) {
	_, full, err := c.ComposeLayers(req)
	return full, err
}

// ComposeLayers renders the request twice over: the photo layer holds
// background, photo and color panels only, and the full layer adds logo,
// banner and headline on top. The animation renderer interpolates between
// the two; static output uses only the full layer.
func (c *Compositor) ComposeLayers(req *Request) (photo, full *image.RGBA, err error) {
	tmpl, err := lookupTemplate(req.Canvas.ContentType, req.Canvas.Layout, req.Version)
	if err != nil {
		return nil, nil, err
	}

	w, h := req.Canvas.Width, req.Canvas.Height
	b := req.Brand

	var canvas *image.RGBA
	if tmpl.HasPhoto {
		canvas = newCanvas(w, h, b.Secondary)
		region := tmpl.PhotoRegion.rect(w, h)
		if region.Empty() {
			region = canvas.Bounds()
		}
		bg := c.PrepareBackground(req.Background, region.Dx(), region.Dy())
		draw.Draw(canvas, region, bg, image.Point{}, draw.Src)
	} else {
		canvas = newCanvas(w, h, b.Primary)
	}

	if tmpl.Panel != nil {
		c.ApplyColorOverlay(canvas, b.Primary, tmpl.Panel.Region.rect(w, h), tmpl.Panel.Mode)
	}

	photo = image.NewRGBA(canvas.Bounds())
	copy(photo.Pix, canvas.Pix)

	c.PlaceLogo(canvas, b, tmpl.Logo)

	if label := req.bannerLabel(); label != "" {
		c.RenderBannerBadge(canvas, b, label, BannerPlacement{
			Centered: tmpl.Banner.Centered,
			Corner:   tmpl.Banner.Corner,
			CenterX:  tmpl.Banner.CenterX,
			CenterY:  tmpl.Banner.CenterY,
			Style:    tmpl.Banner.Style,
		})
	}

	c.renderHeadline(canvas, req, tmpl)

	c.logger.Debug("composed canvas",
		zap.String("template", tmpl.Name),
		zap.String("brand", b.ID),
		zap.Int("width", w), zap.Int("height", h))

	return photo, canvas, nil
}

func (c *Compositor) renderHeadline(canvas *image.RGBA, req *Request, tmpl templateSpec) {
	if req.Heading == "" {
		return
	}

	b := req.Brand
	tb := TextBlock{
		CenterX:  tmpl.Headline.CenterX,
		CenterY:  tmpl.Headline.CenterY,
		AnchorX:  0.5,
		AnchorY:  0.5,
		MaxWidth: tmpl.Headline.MaxWidth,
		Size:     float64(b.HeadlineSize(req.Canvas.ContentType)),
		Color:    b.TextLight,
		Shadow:   tmpl.Headline.Shadow,
	}

	if tmpl.Headline.BrandAnchored {
		anchor := b.TitleAnchorPost
		if req.Canvas.ContentType == brand.ContentStory {
			anchor = b.TitleAnchorStory
		}
		switch anchor {
		case brand.AnchorTopLeft, brand.AnchorBottomLeft:
			tb.CenterX, tb.AnchorX = 0.1, 0
		case brand.AnchorTopRight, brand.AnchorBottomRight:
			tb.CenterX, tb.AnchorX = 0.9, 1
		default:
			tb.CenterX, tb.AnchorX = 0.5, 0.5
		}
	}

	c.RenderTextBlock(canvas, req.Heading, b.FontFamily, tb)
}

// rect converts the fractional rectangle to pixels on a w×h canvas.
func (f fracRect) rect(w, h int) image.Rectangle {
	return image.Rect(
		int(f.X0*float64(w)), int(f.Y0*float64(h)),
		int(f.X1*float64(w)), int(f.Y1*float64(h)),
	)
}
