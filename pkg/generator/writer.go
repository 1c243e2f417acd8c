// Package generator writes finished canvases to disk.
//
// All still output follows a unified pipeline: compose an image.Image
// first, then encode it as PNG or JPEG. Animated output is handled by
// pkg/motion; this package only covers stills.
package generator

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	somegen "github.com/mediatalo/somegen"
)

// JPEGQuality is the encoding quality for every JPEG still.
const JPEGQuality = 95

// Write encodes img to the output path. The format is inferred from the
// file extension:
//   - ".png"           → PNG image
//   - ".jpg" / ".jpeg" → JPEG image at quality 95
//
// A failure partway through removes the partial file and returns a
// PartialWriteError.
func Write(output string, img image.Image) error {
	switch ext := strings.ToLower(filepath.Ext(output)); ext {
	case ".png":
		return WritePNG(output, img)
	case ".jpg", ".jpeg":
		return WriteJPEG(output, img)
	default:
		return fmt.Errorf("unsupported format %q: use .png, .jpg or .jpeg", ext)
	}
}

// WritePNG encodes img to a PNG file at the given path.
func WritePNG(output string, img image.Image) error {
	return writeFile(output, func(w io.Writer) error {
		return png.Encode(w, img)
	})
}

// WriteJPEG encodes img to a JPEG file at the given path.
func WriteJPEG(output string, img image.Image) error {
	return writeFile(output, func(w io.Writer) error {
		return jpeg.Encode(w, img, &jpeg.Options{Quality: JPEGQuality})
	})
}

// Encode writes img to w in the format named by ext (".png", ".jpg" or
// ".jpeg"). Useful for in-memory encoding.
func Encode(w io.Writer, ext string, img image.Image) error {
	switch strings.ToLower(ext) {
	case ".png":
		return png.Encode(w, img)
	case ".jpg", ".jpeg":
		return jpeg.Encode(w, img, &jpeg.Options{Quality: JPEGQuality})
	default:
		return fmt.Errorf("unsupported format %q: use .png, .jpg or .jpeg", ext)
	}
}

func writeFile(output string, encode func(io.Writer) error) error {
	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create %s: %w", output, err)
	}

	if err := encode(f); err != nil {
		f.Close()
		os.Remove(output)
		return &somegen.PartialWriteError{Path: output, Err: err}
	}
	if err := f.Close(); err != nil {
		os.Remove(output)
		return &somegen.PartialWriteError{Path: output, Err: err}
	}
	return nil
}
