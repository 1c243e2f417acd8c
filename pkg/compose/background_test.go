package compose

import (
	"fmt"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrepareBackgroundExactSize(t *testing.T) {
	c := NewCompositor(nil, missingLogoLoader{}, nil)

	sources := []image.Rectangle{
		image.Rect(0, 0, 4000, 1000), // extreme landscape
		image.Rect(0, 0, 500, 3000),  // extreme portrait
		image.Rect(0, 0, 1080, 1080), // already square
		image.Rect(0, 0, 50, 50),     // tiny, needs upscale
	}
	for _, src := range sources {
		t.Run(fmt.Sprintf("%dx%d", src.Dx(), src.Dy()), func(t *testing.T) {
			out := c.PrepareBackground(solidImage(src.Dx(), src.Dy(), black), 1080, 1350)
			assert.Equal(t, image.Rect(0, 0, 1080, 1350), out.Bounds())
		})
	}
}

// A solid source must yield a solid result: letterbox bars would show up
// as off-color pixels at the edges.
func TestPrepareBackgroundCoversWholeCanvas(t *testing.T) {
	c := NewCompositor(nil, missingLogoLoader{}, nil)

	src := solidImage(2000, 500, black)
	out := c.PrepareBackground(src, 1080, 1080)

	corners := []image.Point{{0, 0}, {1079, 0}, {0, 1079}, {1079, 1079}, {540, 540}}
	for _, pt := range corners {
		px := out.RGBAAt(pt.X, pt.Y)
		assert.Equal(t, black, px, "pixel at %v", pt)
	}
}

func TestPrepareBackgroundNilFallsBackToGradient(t *testing.T) {
	c := NewCompositor(nil, missingLogoLoader{}, nil)

	out := c.PrepareBackground(nil, 400, 400)
	require.Equal(t, image.Rect(0, 0, 400, 400), out.Bounds())

	top := out.RGBAAt(200, 0)
	bottom := out.RGBAAt(200, 399)
	assert.Greater(t, top.R, bottom.R, "gradient must be lighter at the top")
	assert.Equal(t, top.R, top.G)
	assert.Equal(t, top.G, top.B)
}

func TestPrepareBackgroundDeterministic(t *testing.T) {
	c := NewCompositor(nil, missingLogoLoader{}, nil)

	a := c.PrepareBackground(nil, 300, 200)
	b := c.PrepareBackground(nil, 300, 200)
	assert.Equal(t, a.Pix, b.Pix)
}
