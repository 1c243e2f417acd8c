package motion

import (
	"image"
)

// Effect names a frame synthesis recipe.
type Effect string

const (
	// EffectZoomPan fades the photo in from black, then wipes the
	// branding layer up from the bottom.
	EffectZoomPan Effect = "zoom_pan"
	// EffectFadeRotate wipes the photo in left to right, then flies the
	// branding layer up into place while fading it in.
	EffectFadeRotate Effect = "fade_rotate"
)

// FPS is the fixed frame rate of every clip.
const FPS = 30

// FrameCount is the number of frames a clip of the given duration holds.
// Degenerate durations still yield one frame, the finished graphic.
func FrameCount(durationSec float64) int {
	n := int(durationSec * FPS)
	if n < 1 {
		n = 1
	}
	return n
}

// maskThreshold is the per-channel difference above which a pixel counts
// as branding rather than photo.
const maskThreshold = 8

// TextMask marks every pixel where the full layer differs from the photo
// layer, which is exactly the branding (logo, banner, headline) drawn on
// top. The mask is a binary alpha image: 255 where branding exists.
func TextMask(photo, full *image.RGBA) *image.Alpha {
	b := photo.Bounds()
	mask := image.NewAlpha(b)
	for i := 0; i+3 < len(photo.Pix); i += 4 {
		d := absDiff(photo.Pix[i], full.Pix[i])
		if g := absDiff(photo.Pix[i+1], full.Pix[i+1]); g > d {
			d = g
		}
		if bl := absDiff(photo.Pix[i+2], full.Pix[i+2]); bl > d {
			d = bl
		}
		if d > maskThreshold {
			mask.Pix[i/4] = 255
		}
	}
	return mask
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}

// ComposeFrame renders frame i of n for the effect. Frame n-1 equals the
// full layer for every effect, so the clip always ends on the finished
// graphic.
func ComposeFrame(photo, full *image.RGBA, mask *image.Alpha, effect Effect, i, n int) *image.RGBA {
	p := 0.0
	if n > 1 {
		p = float64(i) / float64(n-1)
	}
	e := Smoothstep(p)

	switch effect {
	case EffectFadeRotate:
		return fadeRotateFrame(photo, full, mask, e)
	default:
		return zoomPanFrame(photo, full, mask, e)
	}
}

// zoomPanFrame: the photo brightens from black over the first 30% of
// eased progress; the branding then wipes up from the bottom edge over
// the remaining 70%.
func zoomPanFrame(photo, full *image.RGBA, mask *image.Alpha, e float64) *image.RGBA {
	out := image.NewRGBA(photo.Bounds())

	fade := clamp01(e / 0.3)
	for i := 0; i+3 < len(photo.Pix); i += 4 {
		out.Pix[i] = scale(photo.Pix[i], fade)
		out.Pix[i+1] = scale(photo.Pix[i+1], fade)
		out.Pix[i+2] = scale(photo.Pix[i+2], fade)
		out.Pix[i+3] = 255
	}

	wipe := clamp01((e - 0.3) / 0.7)
	if wipe > 0 {
		h := out.Bounds().Dy()
		w := out.Bounds().Dx()
		// Branding is revealed from the bottom up: rows below the wipe
		// front take the full layer wherever the mask marks branding.
		front := h - int(wipe*float64(h))
		for y := front; y < h; y++ {
			rowOff := y * out.Stride
			maskOff := y * mask.Stride
			for x := 0; x < w; x++ {
				if mask.Pix[maskOff+x] == 0 {
					continue
				}
				o := rowOff + x*4
				out.Pix[o] = full.Pix[o]
				out.Pix[o+1] = full.Pix[o+1]
				out.Pix[o+2] = full.Pix[o+2]
			}
		}
	}
	return out
}

// fadeRotateFrame: the photo wipes in left to right over the first 40% of
// eased progress; the branding then flies up from a 20%-height offset
// while fading in over the remaining 60%.
func fadeRotateFrame(photo, full *image.RGBA, mask *image.Alpha, e float64) *image.RGBA {
	out := image.NewRGBA(photo.Bounds())
	w := out.Bounds().Dx()
	h := out.Bounds().Dy()

	wipe := clamp01(e / 0.4)
	edge := int(wipe * float64(w))
	for y := 0; y < h; y++ {
		rowOff := y * out.Stride
		for x := 0; x < w; x++ {
			o := rowOff + x*4
			if x < edge {
				out.Pix[o] = photo.Pix[o]
				out.Pix[o+1] = photo.Pix[o+1]
				out.Pix[o+2] = photo.Pix[o+2]
			}
			out.Pix[o+3] = 255
		}
	}

	fly := clamp01((e - 0.4) / 0.6)
	if fly > 0 {
		offset := int((1 - fly) * 0.2 * float64(h))
		alpha := fly
		for y := 0; y < h; y++ {
			srcY := y - offset // branding shifted down by offset, sliding up
			if srcY < 0 || srcY >= h {
				continue
			}
			maskOff := srcY * mask.Stride
			srcRow := srcY * full.Stride
			dstRow := y * out.Stride
			for x := 0; x < w; x++ {
				if mask.Pix[maskOff+x] == 0 {
					continue
				}
				s := srcRow + x*4
				d := dstRow + x*4
				out.Pix[d] = mix(out.Pix[d], full.Pix[s], alpha)
				out.Pix[d+1] = mix(out.Pix[d+1], full.Pix[s+1], alpha)
				out.Pix[d+2] = mix(out.Pix[d+2], full.Pix[s+2], alpha)
			}
		}
	}
	return out
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func scale(v uint8, f float64) uint8 {
	return uint8(float64(v) * f)
}

func mix(dst, src uint8, a float64) uint8 {
	return uint8(float64(dst)*(1-a) + float64(src)*a)
}
