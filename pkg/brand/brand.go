// Package brand holds the fixed lookup tables for the regional newspaper
// brands and the social-platform canvas specifications. Both catalogs are
// built once at startup and are safe for concurrent read-only use.
package brand

import (
	"image/color"
	"sort"
	"strconv"
	"strings"

	somegen "github.com/mediatalo/somegen"
)

// Anchor names a default text anchor position on the canvas.
type Anchor string

const (
	AnchorTopLeft      Anchor = "top-left"
	AnchorTopRight     Anchor = "top-right"
	AnchorTopCenter    Anchor = "top-center"
	AnchorCenter       Anchor = "center"
	AnchorBottomLeft   Anchor = "bottom-left"
	AnchorBottomRight  Anchor = "bottom-right"
	AnchorBottomCenter Anchor = "bottom-center"
)

// Profile is the immutable visual identity of one newspaper. Profiles are
// loaded into the Catalog at startup and never mutated afterwards.
type Profile struct {
	ID        string
	Name      string
	Primary   color.RGBA
	Secondary color.RGBA
	Accent    color.RGBA
	TextLight color.RGBA
	TextDark  color.RGBA

	LogoPath   string
	FontFamily string

	FontSizePost  int // headline size in px for posts
	FontSizeStory int // headline size in px for stories

	TitleAnchorPost  Anchor
	TitleAnchorStory Anchor
}

// Catalog maps brand identifiers to profiles.
type Catalog struct {
	profiles map[string]*Profile
}

// NewCatalog builds the catalog of all supported newspaper brands.
// Palette values come from the brand style guides; every profile shares
// the Axiforma family with 60px post / 80px story headline sizes.
func NewCatalog() *Catalog {
	c := &Catalog{profiles: make(map[string]*Profile)}

	add := func(name, primary, logo string) {
		c.profiles[name] = &Profile{
			ID:               name,
			Name:             name,
			Primary:          MustHex(primary),
			Secondary:        MustHex("#FFFFFF"),
			Accent:           MustHex("#000000"),
			TextLight:        MustHex("#FFFFFF"),
			TextDark:         MustHex("#000000"),
			LogoPath:         logo,
			FontFamily:       "Axiforma",
			FontSizePost:     60,
			FontSizeStory:    80,
			TitleAnchorPost:  AnchorTopLeft,
			TitleAnchorStory: AnchorTopRight,
		}
	}

	add("Kaleva", "#FF8C30", "assets/logos/kaleva.png")
	add("Lapin Kansa", "#0075BF", "assets/logos/lapin_kansa.png")
	add("Ilkka-Pohjalainen", "#54C1EF", "assets/logos/ilkka_pohjalainen.png")
	add("Koillissanomat", "#76BD22", "assets/logos/koillissanomat.png")
	add("Rantalakeus", "#DE3414", "assets/logos/rantalakeus.png")
	add("Iijokiseutu", "#0073BB", "assets/logos/iijokiseutu.png")
	add("Raahen Seutu", "#76BD22", "assets/logos/raahen_seutu.png")
	add("Pyhäjokiseutu", "#009AC1", "assets/logos/pyhajokiseutu.png")
	add("Siikajokilaakso", "#0073BB", "assets/logos/siikajokilaakso.png")

	return c
}

// Lookup resolves a brand id. An unknown id is a configuration error;
// there is deliberately no default profile on this path.
func (c *Catalog) Lookup(id string) (*Profile, error) {
	p, ok := c.profiles[id]
	if !ok {
		return nil, somegen.NewConfigError("brand", id)
	}
	return p, nil
}

// IDs returns all brand ids in sorted order.
func (c *Catalog) IDs() []string {
	ids := make([]string, 0, len(c.profiles))
	for id := range c.profiles {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// HeadlineSize returns the brand's headline font size for the content type.
func (p *Profile) HeadlineSize(ct ContentType) int {
	if ct == ContentStory {
		return p.FontSizeStory
	}
	return p.FontSizePost
}

// MustHex converts a "#rrggbb" string to an opaque color.RGBA.
// Returns white on malformed input; the catalog values are constants,
// so this is only a safety net for the lookup helpers.
func MustHex(hex string) color.RGBA {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return color.RGBA{255, 255, 255, 255}
	}

	r, err1 := strconv.ParseUint(hex[0:2], 16, 8)
	g, err2 := strconv.ParseUint(hex[2:4], 16, 8)
	b, err3 := strconv.ParseUint(hex[4:6], 16, 8)
	if err1 != nil || err2 != nil || err3 != nil {
		return color.RGBA{255, 255, 255, 255}
	}

	return color.RGBA{uint8(r), uint8(g), uint8(b), 255}
}
