package compose

import (
	"image"
	"image/color"
	"strings"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

// LayoutHeadline greedily wraps the heading into lines that each fit
// maxWidth when measured with the face. Words join a line while the line
// still fits; a single word wider than maxWidth gets a line of its own
// rather than being broken mid-word. Empty input yields no lines.
func LayoutHeadline(text string, face font.Face, maxWidth int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if font.MeasureString(face, candidate).Ceil() <= maxWidth {
			current = candidate
			continue
		}
		lines = append(lines, current)
		current = word
	}
	return append(lines, current)
}

// TextBlock positions a wrapped multi-line text on the canvas. Anchor
// fractions follow gg's convention: ax/ay 0.5 centers the block on the
// point, 0 hangs it right/below, 1 left/above.
type TextBlock struct {
	CenterX  float64 // fraction of canvas width
	CenterY  float64 // fraction of canvas height
	AnchorX  float64
	AnchorY  float64
	MaxWidth float64 // fraction of canvas width
	Size     float64 // pixel size
	Color    color.RGBA
	Shadow   bool
}

// RenderTextBlock wraps and draws the text per the block, returning the
// wrapped lines so callers can assert layout. Lines stack at exactly the
// font size, so the block is len(lines)×Size tall and the anchor math
// stays exact.
func (c *Compositor) RenderTextBlock(canvas *image.RGBA, text, family string, tb TextBlock) []string {
	face := c.fonts.Face(family, tb.Size)
	maxW := int(tb.MaxWidth * float64(canvas.Bounds().Dx()))
	lines := LayoutHeadline(text, face, maxW)
	if len(lines) == 0 {
		return nil
	}

	dc := gg.NewContextForRGBA(canvas)
	dc.SetFontFace(face)

	lineHeight := tb.Size
	blockHeight := lineHeight * float64(len(lines))
	x := tb.CenterX * float64(canvas.Bounds().Dx())
	top := tb.CenterY*float64(canvas.Bounds().Dy()) - blockHeight*tb.AnchorY

	for i, line := range lines {
		y := top + lineHeight*(float64(i)+0.5)
		if tb.Shadow {
			dc.SetColor(color.RGBA{0, 0, 0, 140})
			dc.DrawStringAnchored(line, x+2, y+2, tb.AnchorX, 0.5)
		}
		dc.SetColor(tb.Color)
		dc.DrawStringAnchored(line, x, y, tb.AnchorX, 0.5)
	}
	return lines
}
