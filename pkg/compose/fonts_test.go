package compose

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font"
)

func TestFontResolverAlwaysReturnsFace(t *testing.T) {
	fr := NewFontResolver(nil, nil)

	for _, family := range []string{"", "Axiforma", "No Such Font 9000"} {
		face := fr.Face(family, 40)
		require.NotNil(t, face, "family %q", family)
		assert.Positive(t, font.MeasureString(face, "Vaalit").Ceil())
	}
}

func TestFontResolverBoldFace(t *testing.T) {
	fr := NewFontResolver([]string{"/nonexistent/dir"}, nil)

	face := fr.BoldFace("Axiforma", 34)
	require.NotNil(t, face)
}

// A bold lookup first (banner badges render before the headline) must
// not leave the bold fallback cached under the family, or the headline
// comes out in the wrong weight.
func TestFontResolverBoldLookupDoesNotPoisonRegular(t *testing.T) {
	mixed := NewFontResolver(nil, nil)
	mixed.BoldFace("Axiforma", 34)
	got := mixed.Face("Axiforma", 60)

	fresh := NewFontResolver(nil, nil).Face("Axiforma", 60)

	sample := "Aluevaalit 2025"
	assert.Equal(t,
		font.MeasureString(fresh, sample).Ceil(),
		font.MeasureString(got, sample).Ceil())
}

func TestFontResolverCachesFaces(t *testing.T) {
	fr := NewFontResolver(nil, nil)

	a := fr.Face("Axiforma", 60)
	b := fr.Face("Axiforma", 60)
	assert.Same(t, a, b)

	c := fr.Face("Axiforma", 80)
	assert.NotSame(t, a, c)
}
