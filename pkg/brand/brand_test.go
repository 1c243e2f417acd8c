package brand

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	somegen "github.com/mediatalo/somegen"
)

func TestCatalogLookup(t *testing.T) {
	c := NewCatalog()

	p, err := c.Lookup("Kaleva")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0xFF, 0x8C, 0x30, 0xFF}, p.Primary)
	assert.Equal(t, color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}, p.Secondary)
	assert.Equal(t, "Axiforma", p.FontFamily)
	assert.Equal(t, 60, p.HeadlineSize(ContentPost))
	assert.Equal(t, 80, p.HeadlineSize(ContentStory))
}

func TestCatalogLookupUnknown(t *testing.T) {
	_, err := NewCatalog().Lookup("Helsingin Sanomat")
	require.Error(t, err)
	assert.True(t, somegen.IsConfig(err))
}

func TestCatalogHasAllBrands(t *testing.T) {
	ids := NewCatalog().IDs()
	assert.Len(t, ids, 9)
	assert.Contains(t, ids, "Lapin Kansa")
	assert.Contains(t, ids, "Pyhäjokiseutu")
}

func TestSpecCatalogLookup(t *testing.T) {
	sc := NewSpecCatalog()

	tests := []struct {
		platform string
		ct       ContentType
		layout   Layout
		w, h     int
	}{
		{"instagram", ContentPost, LayoutSquare, 1080, 1080},
		{"instagram", ContentPost, LayoutPortrait, 1080, 1350},
		{"instagram", ContentStory, LayoutPortrait, 1080, 1920},
		{"facebook", ContentPost, LayoutSquare, 1080, 1080},
		{"facebook", ContentPost, LayoutLandscape, 1200, 628},
		{"facebook", ContentStory, LayoutPortrait, 1080, 1920},
		{"linkedin", ContentPost, LayoutLandscape, 1200, 627},
	}
	for _, tt := range tests {
		spec, err := sc.Lookup(tt.platform, tt.ct, tt.layout)
		require.NoError(t, err, "%s/%s/%s", tt.platform, tt.ct, tt.layout)
		assert.Equal(t, tt.w, spec.Width)
		assert.Equal(t, tt.h, spec.Height)
	}
}

func TestSpecCatalogLookupUnknown(t *testing.T) {
	// LinkedIn has no story format.
	_, err := NewSpecCatalog().Lookup("linkedin", ContentStory, LayoutPortrait)
	require.Error(t, err)
	assert.True(t, somegen.IsConfig(err))
}

func TestMustHex(t *testing.T) {
	assert.Equal(t, color.RGBA{0x00, 0x75, 0xBF, 0xFF}, MustHex("#0075BF"))
	// Malformed input degrades to white instead of failing.
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, MustHex("not-a-color"))
}
