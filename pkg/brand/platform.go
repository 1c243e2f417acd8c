package brand

import (
	"fmt"
	"sort"

	somegen "github.com/mediatalo/somegen"
)

// ContentType distinguishes feed posts from stories.
type ContentType string

const (
	ContentPost  ContentType = "post"
	ContentStory ContentType = "story"
)

// Layout names the canvas aspect family.
type Layout string

const (
	LayoutSquare    Layout = "square"
	LayoutPortrait  Layout = "portrait"
	LayoutLandscape Layout = "landscape"
)

// CanvasSpec is the immutable output geometry for one platform target.
type CanvasSpec struct {
	Platform    string
	ContentType ContentType
	Layout      Layout
	Width       int
	Height      int
	AspectRatio string
	Encodings   []string // allowed output encodings, e.g. PNG, JPEG, MP4
}

// SpecCatalog maps (platform, content type, layout) to canvas specs.
type SpecCatalog struct {
	specs map[string]CanvasSpec
}

func specKey(platform string, ct ContentType, layout Layout) string {
	return fmt.Sprintf("%s/%s/%s", platform, ct, layout)
}

// NewSpecCatalog builds the platform technical specification table.
func NewSpecCatalog() *SpecCatalog {
	sc := &SpecCatalog{specs: make(map[string]CanvasSpec)}

	add := func(platform string, ct ContentType, layout Layout, w, h int, ratio string, encodings ...string) {
		sc.specs[specKey(platform, ct, layout)] = CanvasSpec{
			Platform:    platform,
			ContentType: ct,
			Layout:      layout,
			Width:       w,
			Height:      h,
			AspectRatio: ratio,
			Encodings:   encodings,
		}
	}

	add("instagram", ContentPost, LayoutSquare, 1080, 1080, "1:1", "PNG", "JPEG")
	add("instagram", ContentPost, LayoutPortrait, 1080, 1350, "4:5", "PNG", "JPEG")
	add("instagram", ContentStory, LayoutPortrait, 1080, 1920, "9:16", "MP4", "PNG")
	add("facebook", ContentPost, LayoutSquare, 1080, 1080, "1:1", "PNG", "JPEG")
	add("facebook", ContentPost, LayoutLandscape, 1200, 628, "1.91:1", "PNG", "JPEG")
	add("facebook", ContentStory, LayoutPortrait, 1080, 1920, "9:16", "MP4", "PNG")
	add("linkedin", ContentPost, LayoutLandscape, 1200, 627, "1.91:1", "PNG", "JPEG")

	return sc
}

// Lookup resolves a (platform, content type, layout) triple. A missing
// entry is a configuration error, never a default size.
func (sc *SpecCatalog) Lookup(platform string, ct ContentType, layout Layout) (CanvasSpec, error) {
	key := specKey(platform, ct, layout)
	spec, ok := sc.specs[key]
	if !ok {
		return CanvasSpec{}, somegen.NewConfigError("canvas", key)
	}
	return spec, nil
}

// All returns every registered spec, ordered by key.
func (sc *SpecCatalog) All() []CanvasSpec {
	keys := make([]string, 0, len(sc.specs))
	for k := range sc.specs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]CanvasSpec, 0, len(keys))
	for _, k := range keys {
		out = append(out, sc.specs[k])
	}
	return out
}
