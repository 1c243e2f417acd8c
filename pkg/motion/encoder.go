package motion

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/icza/mjpeg"
	"go.uber.org/zap"

	somegen "github.com/mediatalo/somegen"
)

// Renderer encodes animated clips. H.264 via an external ffmpeg binary is
// the primary path; when ffmpeg is missing or fails the renderer falls
// back to a motion-JPEG AVI written in-process.
type Renderer struct {
	ffmpegPath string
	quality    int // 1..100, mapped onto the CRF scale for H.264
	logger     *zap.Logger
}

// NewRenderer creates a renderer. An empty ffmpegPath means "ffmpeg" on
// PATH; quality outside 1..100 is clamped.
func NewRenderer(ffmpegPath string, quality int, logger *zap.Logger) *Renderer {
	if ffmpegPath == "" {
		ffmpegPath = "ffmpeg"
	}
	if quality < 1 {
		quality = 1
	}
	if quality > 100 {
		quality = 100
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Renderer{ffmpegPath: ffmpegPath, quality: quality, logger: logger}
}

// Render synthesizes duration seconds of frames from the layer pair and
// encodes them to outPath. Frames are generated and consumed strictly in
// index order. When both the H.264 and the MJPEG attempt fail the partial
// outputs are removed and an EncoderError is returned; a successful MJPEG
// fallback writes next to outPath with an .avi extension. A cancelled or
// expired context aborts the render with no output left behind.
func (r *Renderer) Render(ctx context.Context, photo, full *image.RGBA, durationSec float64, effect Effect, outPath string) error {
	n := FrameCount(durationSec)
	mask := TextMask(photo, full)

	primaryErr := r.encodeH264(ctx, photo, full, mask, effect, n, outPath)
	if primaryErr == nil {
		return nil
	}
	// A cancelled or timed-out render must abort, not fall back: the
	// fallback would happily write a complete clip after the deadline.
	if err := ctx.Err(); err != nil {
		return err
	}
	r.logger.Warn("h264 encoding failed, trying mjpeg fallback",
		zap.String("output", outPath), zap.Error(primaryErr))

	aviPath := strings.TrimSuffix(outPath, filepath.Ext(outPath)) + ".avi"
	if fallbackErr := r.encodeMJPEG(ctx, photo, full, mask, effect, n, aviPath); fallbackErr != nil {
		if errors.Is(fallbackErr, context.Canceled) || errors.Is(fallbackErr, context.DeadlineExceeded) {
			return fallbackErr
		}
		return &somegen.EncoderError{Primary: "h264", Fallback: "mjpeg", Err: fallbackErr}
	}

	r.logger.Info("encoded clip with mjpeg fallback", zap.String("output", aviPath))
	return nil
}

// encodeH264 writes the frames as PNGs into a temporary directory and
// invokes ffmpeg on the sequence. The directory is removed on every path.
func (r *Renderer) encodeH264(ctx context.Context, photo, full *image.RGBA, mask *image.Alpha, effect Effect, n int, outPath string) error {
	dir, err := os.MkdirTemp("", "somegen-frames-")
	if err != nil {
		return fmt.Errorf("frame dir: %w", err)
	}
	defer os.RemoveAll(dir)

	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		frame := ComposeFrame(photo, full, mask, effect, i, n)
		if err := writeFramePNG(filepath.Join(dir, fmt.Sprintf("frame_%05d.png", i)), frame); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
	}

	// quality 100 -> CRF 17 (visually lossless), quality 1 -> CRF 40.
	crf := 40 - (r.quality*23)/100

	cmd := exec.CommandContext(ctx, r.ffmpegPath,
		"-y",
		"-framerate", fmt.Sprint(FPS),
		"-i", filepath.Join(dir, "frame_%05d.png"),
		"-c:v", "libx264",
		"-crf", fmt.Sprint(crf),
		"-pix_fmt", "yuv420p",
		"-movflags", "+faststart",
		outPath,
	)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		os.Remove(outPath)
		return fmt.Errorf("ffmpeg: %w: %s", err, lastLine(stderr.String()))
	}
	return nil
}

// encodeMJPEG writes a motion-JPEG AVI in-process, one JPEG frame at a
// time, in index order. Cancellation mid-loop removes the partial file.
func (r *Renderer) encodeMJPEG(ctx context.Context, photo, full *image.RGBA, mask *image.Alpha, effect Effect, n int, outPath string) error {
	w := photo.Bounds().Dx()
	h := photo.Bounds().Dy()

	aw, err := mjpeg.New(outPath, int32(w), int32(h), FPS)
	if err != nil {
		return fmt.Errorf("avi writer: %w", err)
	}

	var buf bytes.Buffer
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			aw.Close()
			os.Remove(outPath)
			return err
		}
		frame := ComposeFrame(photo, full, mask, effect, i, n)
		buf.Reset()
		if err := jpeg.Encode(&buf, frame, &jpeg.Options{Quality: r.quality}); err != nil {
			aw.Close()
			os.Remove(outPath)
			return fmt.Errorf("frame %d: %w", i, err)
		}
		if err := aw.AddFrame(buf.Bytes()); err != nil {
			aw.Close()
			os.Remove(outPath)
			return fmt.Errorf("frame %d: %w", i, err)
		}
	}

	if err := aw.Close(); err != nil {
		os.Remove(outPath)
		return fmt.Errorf("avi close: %w", err)
	}
	return nil
}

func writeFramePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// lastLine trims ffmpeg's stderr to its final line, which carries the
// actual failure reason.
func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	if len(lines) == 0 {
		return ""
	}
	return strings.TrimSpace(lines[len(lines)-1])
}
