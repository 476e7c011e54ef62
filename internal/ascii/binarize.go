package ascii

import (
	"math"
	"strings"

	apperr "github.com/ironsheep/image-ascii/internal/errors"
)

// Grid is the symbol grid: one string per output row, each holding exactly
// cols glyphs.
type Grid []string

// String joins the rows with '\n'. There is no trailing newline.
func (g Grid) String() string {
	return strings.Join(g, "\n")
}

// Binarize maps a flat brightness buffer onto the glyphs of cfg's alphabet.
//
// The buffer is row-major: value i*cols+j becomes row i, column j. Its length
// must be exactly rows*cols; anything else fails with RESIZE_ERROR rather than
// being truncated or padded. Empty rows are never emitted.
func Binarize(buf []uint8, rows, cols int, cfg Config) (Grid, error) {
	if err := ValidateDimensions(rows, cols, 0); err != nil {
		return nil, err
	}
	if rows > math.MaxInt/cols {
		return nil, apperr.New(apperr.ErrCodeInvalidDimensions,
			"%d rows x %d cols overflows the pixel count", rows, cols)
	}
	if len(buf) != rows*cols {
		return nil, apperr.New(apperr.ErrCodeResize,
			"pixel buffer has %d values, want %d (%d rows x %d cols)", len(buf), rows*cols, rows, cols)
	}

	alpha, err := cfg.Alphabet()
	if err != nil {
		return nil, err
	}

	grid := make(Grid, 0, rows)
	var sb strings.Builder
	for start := 0; start < len(buf); start += cols {
		sb.Reset()
		sb.Grow(cols)
		for _, v := range buf[start : start+cols] {
			sb.WriteRune(alpha.Symbol(v))
		}
		if sb.Len() > 0 {
			grid = append(grid, sb.String())
		}
	}
	return grid, nil
}
