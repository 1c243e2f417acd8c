// Package motion turns a composed canvas pair into an animated clip: the
// photo layer and the full layer are interpolated frame by frame with a
// named effect, then encoded to H.264 MP4 via ffmpeg with a motion-JPEG
// AVI fallback.
package motion

// Smoothstep is the easing curve applied to raw frame progress: zero
// slope at both ends, so motion accelerates in and decelerates out.
func Smoothstep(p float64) float64 {
	if p <= 0 {
		return 0
	}
	if p >= 1 {
		return 1
	}
	return p * p * (3 - 2*p)
}
