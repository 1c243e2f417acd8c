package compose

import (
	"fmt"

	somegen "github.com/mediatalo/somegen"
	"github.com/mediatalo/somegen/pkg/brand"
)

// fracRect is a rectangle in canvas fractions, 0..1 on both axes.
type fracRect struct {
	X0, Y0, X1, Y1 float64
}

// panelStep paints a brand-color overlay over a canvas region.
type panelStep struct {
	Region fracRect
	Mode   OverlayMode
}

// headlineStep positions the wrapped headline. When BrandAnchored is set
// the horizontal placement follows the brand profile's title anchor
// instead of the template's CenterX.
type headlineStep struct {
	CenterX, CenterY float64
	MaxWidth         float64
	BrandAnchored    bool
	Shadow           bool
}

// bannerStep positions the campaign badge for a template.
type bannerStep struct {
	Centered         bool
	Corner           BannerCorner
	CenterX, CenterY float64
	Style            BannerStyle
}

// templateSpec is one entry in the layout template table. The compositor
// executes every template through the same step sequence: photo, panel,
// logo, banner, headline; the spec only parameterizes the geometry.
type templateSpec struct {
	Name   string
	Format string // static output encoding: "png" or "jpeg"

	// HasPhoto templates place the prepared background in PhotoRegion
	// (zero value means the full canvas). Templates without a photo paint
	// the whole canvas in the brand primary.
	HasPhoto    bool
	PhotoRegion fracRect

	Panel    *panelStep
	Logo     LogoPlacement
	Banner   bannerStep
	Headline headlineStep
}

type templateKey struct {
	CT      brand.ContentType
	Layout  brand.Layout
	Version int
}

var templates = map[templateKey]templateSpec{
	// Feed posts, square and portrait share the same four archetypes.
	{brand.ContentPost, brand.LayoutSquare, 1}:    postV1,
	{brand.ContentPost, brand.LayoutSquare, 2}:    postV2,
	{brand.ContentPost, brand.LayoutSquare, 3}:    postV3,
	{brand.ContentPost, brand.LayoutSquare, 4}:    postV4,
	{brand.ContentPost, brand.LayoutPortrait, 1}:  postV1,
	{brand.ContentPost, brand.LayoutPortrait, 2}:  postV2,
	{brand.ContentPost, brand.LayoutPortrait, 3}:  postV3,
	{brand.ContentPost, brand.LayoutPortrait, 4}:  postV4,
	// Stories share archetypes across portrait and square canvases.
	{brand.ContentStory, brand.LayoutPortrait, 1}: storyV1,
	{brand.ContentStory, brand.LayoutPortrait, 2}: storyV2,
	{brand.ContentStory, brand.LayoutPortrait, 3}: storyV3,
	{brand.ContentStory, brand.LayoutPortrait, 4}: storyV4,
	{brand.ContentStory, brand.LayoutSquare, 1}:   storyV1,
	{brand.ContentStory, brand.LayoutSquare, 2}:   storyV2,
	{brand.ContentStory, brand.LayoutSquare, 3}:   storyV3,
	{brand.ContentStory, brand.LayoutSquare, 4}:   storyV4,
	// Landscape has two variants, distinguished by the panel side.
	{brand.ContentPost, brand.LayoutLandscape, 1}: landscapeV1,
	{brand.ContentPost, brand.LayoutLandscape, 2}: landscapeV2,
	// A landscape story resolves to the landscape post templates.
	{brand.ContentStory, brand.LayoutLandscape, 1}: landscapeV1,
	{brand.ContentStory, brand.LayoutLandscape, 2}: landscapeV2,
}

var (
	postV1 = templateSpec{
		Name:     "post-ramp-bottom",
		Format:   "jpeg",
		HasPhoto: true,
		Panel:    &panelStep{Region: fracRect{0, 0.33, 1, 1}, Mode: OverlayRamp},
		Logo:     LogoPlacement{CenterX: 0.5, CenterY: 0.92, Size: 0.06},
		Banner:   bannerStep{Corner: CornerUpperLeft, Style: BannerPrimaryBG},
		Headline: headlineStep{CenterX: 0.5, CenterY: 0.60, MaxWidth: 0.8, Shadow: true},
	}

	postV2 = templateSpec{
		Name:     "post-top-title",
		Format:   "jpeg",
		HasPhoto: true,
		Logo:     LogoPlacement{CenterX: 0.14, CenterY: 0.90, Size: 0.06},
		Banner:   bannerStep{Corner: CornerUpperRight, Style: BannerPrimaryBG},
		Headline: headlineStep{CenterY: 0.20, MaxWidth: 0.8, BrandAnchored: true, Shadow: true},
	}

	postV3 = templateSpec{
		Name:     "post-center-badge",
		Format:   "jpeg",
		HasPhoto: true,
		Logo:     LogoPlacement{CenterX: 0.12, CenterY: 0.08, Size: 0.07},
		Banner:   bannerStep{Centered: true, CenterX: 0.5, CenterY: 0.66, Style: BannerPrimaryBG},
		Headline: headlineStep{CenterX: 0.5, CenterY: 0.78, MaxWidth: 0.75, Shadow: true},
	}

	postV4 = templateSpec{
		Name:   "post-solid",
		Format: "png",
		Logo:   LogoPlacement{CenterX: 0.5, CenterY: 0.12, Size: 0.07},
		Banner: bannerStep{Centered: true, CenterX: 0.5, CenterY: 0.42, Style: BannerWhiteBG},
		Headline: headlineStep{
			CenterX: 0.5, CenterY: 0.58, MaxWidth: 0.8,
		},
	}

	storyV1 = templateSpec{
		Name:     "story-panel-bottom",
		Format:   "jpeg",
		HasPhoto: true,
		Panel:    &panelStep{Region: fracRect{0, 0.55, 1, 1}, Mode: OverlaySolid},
		Logo:     LogoPlacement{CenterX: 0.5, CenterY: 0.93, Size: 0.05},
		Banner:   bannerStep{Corner: CornerUpperRight, Style: BannerPrimaryBG},
		Headline: headlineStep{CenterX: 0.5, CenterY: 0.70, MaxWidth: 0.8},
	}

	storyV2 = templateSpec{
		Name:     "story-center-title",
		Format:   "jpeg",
		HasPhoto: true,
		Logo:     LogoPlacement{CenterX: 0.5, CenterY: 0.90, Size: 0.05},
		Banner:   bannerStep{Corner: CornerUpperRight, Style: BannerPrimaryBG},
		Headline: headlineStep{CenterY: 0.50, MaxWidth: 0.8, BrandAnchored: true, Shadow: true},
	}

	storyV3 = templateSpec{
		Name:     "story-badge-below",
		Format:   "jpeg",
		HasPhoto: true,
		Logo:     LogoPlacement{CenterX: 0.12, CenterY: 0.06, Size: 0.05},
		Banner:   bannerStep{Centered: true, CenterX: 0.5, CenterY: 0.85, Style: BannerPrimaryBG},
		Headline: headlineStep{CenterX: 0.5, CenterY: 0.75, MaxWidth: 0.75, Shadow: true},
	}

	storyV4 = templateSpec{
		Name:     "story-solid",
		Format:   "png",
		Logo:     LogoPlacement{CenterX: 0.5, CenterY: 0.10, Size: 0.06},
		Banner:   bannerStep{Centered: true, CenterX: 0.5, CenterY: 0.40, Style: BannerWhiteBG},
		Headline: headlineStep{CenterX: 0.5, CenterY: 0.55, MaxWidth: 0.8},
	}

	landscapeV1 = templateSpec{
		Name:        "landscape-panel-left",
		Format:      "jpeg",
		HasPhoto:    true,
		PhotoRegion: fracRect{0.4, 0, 1, 1},
		Panel:       &panelStep{Region: fracRect{0, 0, 0.4, 1}, Mode: OverlaySolid},
		Logo:        LogoPlacement{CenterX: 0.2, CenterY: 0.25, Size: 0.10},
		Banner:      bannerStep{Corner: CornerUpperRight, Style: BannerPrimaryBG},
		Headline:    headlineStep{CenterX: 0.2, CenterY: 0.55, MaxWidth: 0.32},
	}

	landscapeV2 = templateSpec{
		Name:        "landscape-panel-right",
		Format:      "jpeg",
		HasPhoto:    true,
		PhotoRegion: fracRect{0, 0, 0.6, 1},
		Panel:       &panelStep{Region: fracRect{0.6, 0, 1, 1}, Mode: OverlaySolid},
		Logo:        LogoPlacement{CenterX: 0.8, CenterY: 0.25, Size: 0.10},
		Banner:      bannerStep{Corner: CornerUpperLeft, Style: BannerPrimaryBG},
		Headline:    headlineStep{CenterX: 0.8, CenterY: 0.55, MaxWidth: 0.32},
	}
)

// lookupTemplate returns the template for a (content type, layout,
// version) triple. Unknown combinations are configuration errors; there
// is no default template.
func lookupTemplate(ct brand.ContentType, layout brand.Layout, version int) (templateSpec, error) {
	t, ok := templates[templateKey{CT: ct, Layout: layout, Version: version}]
	if !ok {
		key := fmt.Sprintf("%s/%s/v%d", ct, layout, version)
		return templateSpec{}, somegen.NewConfigError("template", key)
	}
	return t, nil
}

// StaticFormat reports the static output encoding ("png" or "jpeg") for
// the template a request resolves to.
func StaticFormat(ct brand.ContentType, layout brand.Layout, version int) (string, error) {
	t, err := lookupTemplate(ct, layout, version)
	if err != nil {
		return "", err
	}
	return t.Format, nil
}

// Versions reports how many template versions exist for a layout family.
func Versions(layout brand.Layout) int {
	if layout == brand.LayoutLandscape {
		return 2
	}
	return 4
}
