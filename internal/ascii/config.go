package ascii

import (
	"image/color"

	apperr "github.com/ironsheep/image-ascii/internal/errors"
	"github.com/ironsheep/image-ascii/internal/imaging"
)

// DefaultMaxDimension caps rows and cols unless the caller overrides it.
const DefaultMaxDimension = 1000

// Config carries the fixed parameters of the conversion.
//
// A Config is passed by value and never mutated by this package, so one value
// can be shared by concurrent conversions. Build it with DefaultConfig and
// adjust the transport-level fields (MaxDimension, Background) as needed.
type Config struct {
	// Colors selects the alphabet from Alphabets by glyph count.
	Colors int

	// Alphabets is the alphabet table keyed by glyph count.
	Alphabets map[int]Alphabet

	// MaxDimension is the largest accepted rows or cols value. Zero means
	// no upper bound.
	MaxDimension int

	// Background is composited behind transparent pixels. Nil means white.
	Background color.Color
}

// DefaultConfig returns the two-color configuration with threshold 200.
func DefaultConfig() Config {
	return Config{
		Colors:       2,
		Alphabets:    DefaultAlphabets(DefaultThreshold),
		MaxDimension: DefaultMaxDimension,
		Background:   imaging.DefaultBackground,
	}
}

// Alphabet returns the alphabet selected by c.Colors.
func (c Config) Alphabet() (Alphabet, error) {
	a, ok := c.Alphabets[c.Colors]
	if !ok {
		return Alphabet{}, apperr.New(apperr.ErrCodeInternal, "no alphabet for %d colors", c.Colors)
	}
	if err := a.Validate(); err != nil {
		return Alphabet{}, apperr.Wrap(apperr.ErrCodeInternal, err, "alphabet for %d colors is invalid", c.Colors)
	}
	return a, nil
}
