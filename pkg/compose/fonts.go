package compose

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// FontResolver loads rasterizable font faces for (family, size) requests.
// Resolution walks an explicit ordered strategy list (configured font
// directories first, then the embedded Go fonts) so a face is always
// returned and rendering never fails on a missing font file.
type FontResolver struct {
	dirs   []string
	logger *zap.Logger

	mu     sync.Mutex
	parsed map[parsedKey]*opentype.Font
	faces  map[faceKey]font.Face
}

// parsedKey carries the weight alongside the family: the embedded
// fallback differs per weight, so caching by family alone would let a
// bold lookup poison later regular ones.
type parsedKey struct {
	family string
	bold   bool
}

type faceKey struct {
	family string
	bold   bool
	size   float64
}

const (
	embeddedRegular = "\x00go-regular"
	embeddedBold    = "\x00go-bold"
)

// NewFontResolver creates a resolver that probes the given directories for
// <Family>.ttf / <Family>.otf files (case variants included) before
// falling back to the embedded Go fonts.
func NewFontResolver(fontDirs []string, logger *zap.Logger) *FontResolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FontResolver{
		dirs:   fontDirs,
		logger: logger,
		parsed: make(map[parsedKey]*opentype.Font),
		faces:  make(map[faceKey]font.Face),
	}
}

// Face returns a rasterizable face for the family at the given pixel size.
// It never fails: a missing or unparsable family degrades to the embedded
// Go Regular font.
func (fr *FontResolver) Face(family string, size float64) font.Face {
	return fr.face(family, size, false)
}

// BoldFace is Face with a bold fallback (embedded Go Bold), used for the
// banner badge text.
func (fr *FontResolver) BoldFace(family string, size float64) font.Face {
	return fr.face(family, size, true)
}

func (fr *FontResolver) face(family string, size float64, bold bool) font.Face {
	fr.mu.Lock()
	defer fr.mu.Unlock()

	key := faceKey{family: strings.ToLower(family), bold: bold, size: size}
	if f, ok := fr.faces[key]; ok {
		return f
	}

	parsed := fr.resolveLocked(family, bold)
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		// The embedded fonts parse and rasterize at any sane size; reaching
		// this means a corrupt custom font slipped past parsing.
		fr.logger.Warn("font face creation failed, using embedded fallback",
			zap.String("family", family), zap.Error(err))
		face = fr.embeddedFaceLocked(bold, size)
	}

	fr.faces[key] = face
	return face
}

// resolveLocked walks the strategy list for the family: each configured
// directory with .ttf/.otf and lower-case name variants, then the
// embedded fonts. Caller holds fr.mu.
func (fr *FontResolver) resolveLocked(family string, bold bool) *opentype.Font {
	cacheKey := parsedKey{family: strings.ToLower(family), bold: bold}
	if f, ok := fr.parsed[cacheKey]; ok {
		return f
	}

	if family != "" {
		for _, dir := range fr.dirs {
			for _, name := range fontCandidates(family) {
				data, err := os.ReadFile(filepath.Join(dir, name))
				if err != nil {
					continue
				}
				parsed, err := opentype.Parse(data)
				if err != nil {
					fr.logger.Warn("unparsable font file skipped",
						zap.String("path", filepath.Join(dir, name)), zap.Error(err))
					continue
				}
				fr.logger.Info("loaded font", zap.String("family", family),
					zap.String("path", filepath.Join(dir, name)))
				fr.parsed[cacheKey] = parsed
				return parsed
			}
		}
		fr.logger.Warn("font family not found, using embedded fallback",
			zap.String("family", family))
	}

	parsed := fr.embeddedLocked(bold)
	fr.parsed[cacheKey] = parsed
	return parsed
}

func (fr *FontResolver) embeddedLocked(bold bool) *opentype.Font {
	key := parsedKey{family: embeddedRegular}
	data := goregular.TTF
	if bold {
		key = parsedKey{family: embeddedBold, bold: true}
		data = gobold.TTF
	}
	if f, ok := fr.parsed[key]; ok {
		return f
	}
	parsed, err := opentype.Parse(data)
	if err != nil {
		// The embedded Go fonts are known-good; parse failure is unreachable
		// short of build corruption.
		panic("compose: embedded font failed to parse: " + err.Error())
	}
	fr.parsed[key] = parsed
	return parsed
}

func (fr *FontResolver) embeddedFaceLocked(bold bool, size float64) font.Face {
	face, err := opentype.NewFace(fr.embeddedLocked(bold), &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		panic("compose: embedded font face failed: " + err.Error())
	}
	return face
}

// fontCandidates lists the file names tried for a family, in order.
func fontCandidates(family string) []string {
	lower := strings.ToLower(family)
	return []string{
		family + ".ttf",
		family + ".otf",
		lower + ".ttf",
		lower + ".otf",
	}
}
