package compose

import (
	"image"
	"image/color"
	"image/draw"
)

// OverlayMode selects how a color overlay is painted.
type OverlayMode int

const (
	// OverlaySolid paints the region as an opaque block.
	OverlaySolid OverlayMode = iota
	// OverlayRamp paints the region with alpha rising linearly from 0 at
	// the top edge to 255 at the bottom edge, blending the photo into a
	// solid brand-color panel.
	OverlayRamp
)

// ApplyColorOverlay paints a rectangular color overlay onto the canvas.
// The region is clipped to the canvas bounds; the canvas itself is never
// resized.
func (c *Compositor) ApplyColorOverlay(canvas *image.RGBA, col color.RGBA, region image.Rectangle, mode OverlayMode) {
	region = region.Intersect(canvas.Bounds())
	if region.Empty() {
		return
	}

	if mode == OverlaySolid {
		draw.Draw(canvas, region, &image.Uniform{col}, image.Point{}, draw.Src)
		return
	}

	span := region.Dy() - 1
	if span < 1 {
		span = 1
	}
	for y := region.Min.Y; y < region.Max.Y; y++ {
		alpha := uint32(255*(y-region.Min.Y)) / uint32(span)
		for x := region.Min.X; x < region.Max.X; x++ {
			blendPixel(canvas, x, y, col, uint8(alpha))
		}
	}
}

// blendPixel source-over blends col at the given alpha onto the canvas
// pixel.
func blendPixel(canvas *image.RGBA, x, y int, col color.RGBA, alpha uint8) {
	if alpha == 255 {
		canvas.SetRGBA(x, y, col)
		return
	}
	if alpha == 0 {
		return
	}

	dst := canvas.RGBAAt(x, y)
	a := uint32(alpha)
	inv := 255 - a
	canvas.SetRGBA(x, y, color.RGBA{
		R: uint8((uint32(col.R)*a + uint32(dst.R)*inv) / 255),
		G: uint8((uint32(col.G)*a + uint32(dst.G)*inv) / 255),
		B: uint8((uint32(col.B)*a + uint32(dst.B)*inv) / 255),
		A: 255,
	})
}
