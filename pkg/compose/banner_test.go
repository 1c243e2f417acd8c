package compose

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyColorOverlaySolid(t *testing.T) {
	c := NewCompositor(nil, missingLogoLoader{}, nil)
	canvas := newCanvas(100, 100, white)

	c.ApplyColorOverlay(canvas, black, image.Rect(0, 50, 100, 100), OverlaySolid)

	assert.Equal(t, white, canvas.RGBAAt(50, 25))
	assert.Equal(t, black, canvas.RGBAAt(50, 75))
}

func TestApplyColorOverlayRamp(t *testing.T) {
	c := NewCompositor(nil, missingLogoLoader{}, nil)
	canvas := newCanvas(100, 100, white)

	c.ApplyColorOverlay(canvas, black, image.Rect(0, 0, 100, 100), OverlayRamp)

	top := canvas.RGBAAt(50, 0)
	mid := canvas.RGBAAt(50, 50)
	bottom := canvas.RGBAAt(50, 99)

	assert.Equal(t, white, top, "zero alpha at the top edge")
	assert.Equal(t, black, bottom, "full alpha at the bottom edge")
	assert.Greater(t, mid.R, bottom.R)
	assert.Less(t, mid.R, top.R)
}

func TestApplyColorOverlayClipsToCanvas(t *testing.T) {
	c := NewCompositor(nil, missingLogoLoader{}, nil)
	canvas := newCanvas(50, 50, white)

	// Must not panic on an out-of-bounds region.
	c.ApplyColorOverlay(canvas, black, image.Rect(-10, 40, 200, 200), OverlaySolid)
	assert.Equal(t, black, canvas.RGBAAt(0, 49))
	assert.Equal(t, white, canvas.RGBAAt(0, 0))
}

func TestRenderBannerBadgeCorner(t *testing.T) {
	c := NewCompositor(nil, missingLogoLoader{}, nil)
	b := kaleva(t)
	canvas := newCanvas(1080, 1080, white)

	c.RenderBannerBadge(canvas, b, "Aluevaalit 2025", BannerPlacement{
		Corner: CornerUpperLeft, Style: BannerPrimaryBG, Size: 34,
	})

	// The badge background starts at the 5% margin.
	margin := int(0.05 * 1080)
	assert.Equal(t, b.Primary, canvas.RGBAAt(margin+5, margin+5))
	// The opposite corner stays clean.
	assert.Equal(t, white, canvas.RGBAAt(1050, margin+5))
}

func TestRenderBannerBadgeCentered(t *testing.T) {
	c := NewCompositor(nil, missingLogoLoader{}, nil)
	b := kaleva(t)
	canvas := newCanvas(1080, 1080, black)

	c.RenderBannerBadge(canvas, b, "Vaalit", BannerPlacement{
		Centered: true, CenterX: 0.5, CenterY: 0.5, Style: BannerWhiteBG, Size: 34,
	})

	// White background badge sits under the center point; the text glyphs
	// are primary but padding guarantees white right at the badge edge
	// area near the center row.
	px := canvas.RGBAAt(540, 540-20)
	assert.NotEqual(t, black, px)
}

func TestRenderBannerBadgeEmptyLabel(t *testing.T) {
	c := NewCompositor(nil, missingLogoLoader{}, nil)
	b := kaleva(t)
	canvas := newCanvas(200, 200, black)
	before := append([]uint8(nil), canvas.Pix...)

	c.RenderBannerBadge(canvas, b, "   ", BannerPlacement{Corner: CornerUpperLeft})
	assert.Equal(t, before, canvas.Pix)
}
