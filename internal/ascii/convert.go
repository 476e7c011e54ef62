package ascii

import (
	"errors"
	"image"

	apperr "github.com/ironsheep/image-ascii/internal/errors"
	"github.com/ironsheep/image-ascii/internal/imaging"
)

// Result is the output of one conversion.
type Result struct {
	// ASCII is the symbol grid, rows joined by '\n'.
	ASCII string `json:"ascii"`

	// RLE is the run-length encoding, rows joined by '\n'.
	RLE string `json:"rle"`

	// Rows and Cols echo the requested grid size.
	Rows int `json:"rows"`
	Cols int `json:"cols"`

	Grid Grid   `json:"-"`
	Runs []Runs `json:"-"`
}

// Convert decodes an encoded image and converts it into a rows x cols grid.
//
// Failures are coded: INVALID_DIMENSIONS for rows/cols outside
// [1, cfg.MaxDimension], DECODE_ERROR for empty or undecodable data, and
// RESIZE_ERROR when the pixel buffer comes back with the wrong length.
func Convert(data []byte, rows, cols int, cfg Config) (*Result, error) {
	if err := ValidateDimensions(rows, cols, cfg.MaxDimension); err != nil {
		return nil, err
	}

	img, _, err := imaging.Decode(data)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeDecode, err, "failed to decode image")
	}
	return ConvertImage(img, rows, cols, cfg)
}

// ConvertImage converts an already decoded image into a rows x cols grid.
func ConvertImage(img image.Image, rows, cols int, cfg Config) (*Result, error) {
	if err := ValidateDimensions(rows, cols, cfg.MaxDimension); err != nil {
		return nil, err
	}

	buf, err := imaging.Downsample(img, rows, cols, imaging.Options{Background: cfg.Background})
	if err != nil {
		code := apperr.ErrCodeResize
		if !errors.Is(err, imaging.ErrUnexpectedBufferSize) {
			code = apperr.ErrCodeInternal
		}
		return nil, apperr.Wrap(code, err, "failed to downsample image")
	}

	grid, err := Binarize(buf, rows, cols, cfg)
	if err != nil {
		return nil, err
	}

	runs := EncodeGrid(grid)
	return &Result{
		ASCII: grid.String(),
		RLE:   FormatRLE(runs),
		Rows:  rows,
		Cols:  cols,
		Grid:  grid,
		Runs:  runs,
	}, nil
}
