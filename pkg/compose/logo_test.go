package compose

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediatalo/somegen/pkg/brand"
)

func kaleva(t *testing.T) *brand.Profile {
	t.Helper()
	p, err := brand.NewCatalog().Lookup("Kaleva")
	require.NoError(t, err)
	return p
}

func TestRecolorLogoTwoTone(t *testing.T) {
	primary := color.RGBA{0xFF, 0x8C, 0x30, 0xFF}
	secondary := color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}

	src := solidImage(4, 1, color.RGBA{0, 0, 0, 0})
	src.SetNRGBA(0, 0, color.NRGBA{200, 200, 200, 255}) // light -> primary
	src.SetNRGBA(1, 0, color.NRGBA{50, 50, 50, 255})    // dark -> secondary
	src.SetNRGBA(2, 0, color.NRGBA{200, 200, 200, 128}) // translucent light
	// pixel 3 stays fully transparent

	out := RecolorLogo(src, primary, secondary)

	assert.Equal(t, color.NRGBA{primary.R, primary.G, primary.B, 255}, out.NRGBAAt(0, 0))
	assert.Equal(t, color.NRGBA{secondary.R, secondary.G, secondary.B, 255}, out.NRGBAAt(1, 0))
	assert.Equal(t, uint8(128), out.NRGBAAt(2, 0).A, "partial alpha preserved")
	assert.Equal(t, uint8(0), out.NRGBAAt(3, 0).A, "transparent pixel untouched")
}

func TestRecolorLogoLumaBoundary(t *testing.T) {
	primary := color.RGBA{10, 20, 30, 255}
	secondary := color.RGBA{240, 240, 240, 255}

	src := solidImage(2, 1, color.RGBA{0, 0, 0, 0})
	src.SetNRGBA(0, 0, color.NRGBA{128, 128, 128, 255}) // exactly 128 -> secondary
	src.SetNRGBA(1, 0, color.NRGBA{129, 129, 129, 255}) // above -> primary

	out := RecolorLogo(src, primary, secondary)
	assert.Equal(t, secondary.R, out.NRGBAAt(0, 0).R)
	assert.Equal(t, primary.R, out.NRGBAAt(1, 0).R)
}

func TestPlaceLogoDrawsOnCanvas(t *testing.T) {
	c := NewCompositor(nil, stubLogoLoader{img: solidImage(100, 50, color.RGBA{220, 220, 220, 255})}, nil)
	b := kaleva(t)
	canvas := newCanvas(400, 400, black)

	c.PlaceLogo(canvas, b, LogoPlacement{CenterX: 0.5, CenterY: 0.5, Size: 0.1})

	// Light source pixels recolor to the brand primary at the center.
	assert.Equal(t, b.Primary, canvas.RGBAAt(200, 200))
	// Far corner untouched.
	assert.Equal(t, black, canvas.RGBAAt(5, 5))
}

func TestPlaceLogoMissingAssetFallsBackToText(t *testing.T) {
	c := NewCompositor(nil, missingLogoLoader{}, nil)
	b := kaleva(t)
	canvas := newCanvas(400, 200, black)
	before := append([]uint8(nil), canvas.Pix...)

	// Must not panic and must draw something.
	c.PlaceLogo(canvas, b, LogoPlacement{CenterX: 0.5, CenterY: 0.5, Size: 0.2})
	assert.NotEqual(t, before, canvas.Pix)
}
