package imaging

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/effect"
	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"
)

// ErrUnexpectedBufferSize is returned when the downsampling pipeline does not
// yield exactly rows*cols pixels.
var ErrUnexpectedBufferSize = errors.New("unexpected pixel buffer size")

// DefaultBackground is the color transparent pixels are composited onto.
var DefaultBackground color.Color = color.White

// Options controls the downsampling pipeline.
type Options struct {
	// Background is the opaque color placed behind the resized image before
	// grayscale conversion. Nil means DefaultBackground.
	Background color.Color
}

// ParseBackground parses a hex color such as "#FFFFFF" or "#fff" for use as
// Options.Background.
func ParseBackground(hex string) (color.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return nil, fmt.Errorf("invalid background color %q: %w", hex, err)
	}
	return c, nil
}

// Downsample resizes img to exactly cols x rows and returns its luminance as a
// flat row-major buffer.
//
// Parameters:
//   - img: Source image of any size and color model.
//   - rows: Target height in pixels. Must be >= 1.
//   - cols: Target width in pixels. Must be >= 1.
//   - opts: Pipeline options; the zero value is valid.
//
// Returns:
//   - []uint8: rows*cols brightness values in [0,255]; pixel (x, y) is at
//     index y*cols + x.
//   - error: Non-nil for non-positive dimensions, or ErrUnexpectedBufferSize
//     (wrapped) when the pipeline produced the wrong number of pixels.
//
// # Pipeline
//
//  1. Resize with nearest-neighbor sampling: each output pixel copies the
//     single nearest source pixel, so edges stay sharp and no blended
//     mid-tones straddle the binarization threshold.
//  2. Composite the result over an opaque background so transparent areas
//     read as the background color instead of black.
//  3. Convert to single-channel luminance.
//  4. Copy the grey channel out of the grayscale image, dropping the other
//     channels and any stride padding.
func Downsample(img image.Image, rows, cols int, opts Options) ([]uint8, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("target size %dx%d must be positive", cols, rows)
	}

	bg := opts.Background
	if bg == nil {
		bg = DefaultBackground
	}

	resized := imaging.Resize(img, cols, rows, imaging.NearestNeighbor)
	flattened := imaging.Overlay(imaging.New(cols, rows, bg), resized, image.Pt(0, 0), 1.0)
	gray := effect.Grayscale(flattened)

	buf := rawPixels(gray)
	if len(buf) != rows*cols {
		return nil, fmt.Errorf("%w: got %d pixels, want %d (%dx%d)",
			ErrUnexpectedBufferSize, len(buf), rows*cols, cols, rows)
	}
	return buf, nil
}

// rawPixels copies the grey level of every visible pixel into a tightly
// packed row-major slice. bild's grayscale output is RGBA with R == G == B, so
// the R channel carries the luminance.
func rawPixels(gray *image.RGBA) []uint8 {
	bounds := gray.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	buf := make([]uint8, 0, w*h)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			buf = append(buf, gray.Pix[gray.PixOffset(x, y)])
		}
	}
	return buf
}
