// Package compose builds one finished canvas from a render request: it
// prepares the background layer, paints panels and overlays, places the
// recolored brand logo, renders the banner badge and lays out the wrapped
// headline, all dispatched through a table of named layout templates.
package compose

import (
	"image"

	"github.com/mediatalo/somegen/pkg/brand"
)

// BannerMode controls whether the campaign banner badge is drawn.
type BannerMode string

const (
	// BannerNone renders no banner and no campaign text.
	BannerNone BannerMode = "none"
	// BannerLogoOnly suppresses the banner badge, leaving only the logo.
	BannerLogoOnly BannerMode = "logo_only"
	// BannerCustomText renders the badge with the request's banner text,
	// falling back to the default campaign text when empty.
	BannerCustomText BannerMode = "custom_text"
)

// DefaultBannerText is the campaign text used when a request asks for a
// banner without supplying its own.
const DefaultBannerText = "ALUE- JA KUNTAVAALIT 2025"

// Request carries everything one composition needs. It is created by the
// orchestrator, consumed by a single render and then discarded.
type Request struct {
	// Background is the uploaded photo, already decoded. May be nil; the
	// compositor then falls back to a deterministic gradient.
	Background image.Image

	Heading string
	// Description travels with the request for the caption but is not
	// drawn on the canvas.
	Description string

	Brand  *brand.Profile
	Canvas brand.CanvasSpec

	// Version selects the layout template variant: 1–4 for post and
	// story layouts, 1–2 for landscape (panel side).
	Version int

	BannerMode BannerMode
	BannerText string
}

// bannerLabel resolves the badge text for the request, or "" when no
// badge should be drawn.
func (r *Request) bannerLabel() string {
	switch r.BannerMode {
	case BannerCustomText:
		if r.BannerText != "" {
			return r.BannerText
		}
		return DefaultBannerText
	default:
		return ""
	}
}
