package ascii

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	apperr "github.com/ironsheep/image-ascii/internal/errors"
)

// ParseDimension converts a rows or cols value received from a transport
// into a positive integer.
//
// Accepted inputs are integers, integral floats (JSON numbers decode as
// float64), json.Number and base-10 integer strings with optional surrounding
// whitespace. Fractional, non-finite, non-numeric, missing and non-positive
// values fail with INVALID_DIMENSIONS, as do values above max when max > 0.
func ParseDimension(name string, v any, max int) (int, error) {
	var n int64

	switch val := v.(type) {
	case nil:
		return 0, apperr.New(apperr.ErrCodeInvalidDimensions, "%s is required", name)
	case int:
		n = int64(val)
	case int32:
		n = int64(val)
	case int64:
		n = val
	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) || val != math.Trunc(val) {
			return 0, apperr.New(apperr.ErrCodeInvalidDimensions, "%s must be an integer, got %v", name, val)
		}
		if val > math.MaxInt32 || val < math.MinInt32 {
			return 0, apperr.New(apperr.ErrCodeInvalidDimensions, "%s is out of range: %v", name, val)
		}
		n = int64(val)
	case json.Number:
		i, err := val.Int64()
		if err != nil {
			return 0, apperr.Wrap(apperr.ErrCodeInvalidDimensions, err, "%s must be an integer, got %q", name, val.String())
		}
		n = i
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(val), 10, 32)
		if err != nil {
			return 0, apperr.Wrap(apperr.ErrCodeInvalidDimensions, err, "%s must be an integer, got %q", name, val)
		}
		n = i
	default:
		return 0, apperr.New(apperr.ErrCodeInvalidDimensions, "%s has unsupported type %T", name, v)
	}

	if err := checkDimension(name, n, max); err != nil {
		return 0, err
	}
	return int(n), nil
}

// ValidateDimensions checks that rows and cols are within [1, max].
// A max of zero or less disables the upper bound.
func ValidateDimensions(rows, cols, max int) error {
	if err := checkDimension("rows", int64(rows), max); err != nil {
		return err
	}
	return checkDimension("cols", int64(cols), max)
}

func checkDimension(name string, n int64, max int) error {
	if n < 1 {
		return apperr.New(apperr.ErrCodeInvalidDimensions, "%s must be a positive integer, got %d", name, n)
	}
	if max > 0 && n > int64(max) {
		return apperr.New(apperr.ErrCodeInvalidDimensions, "%s must be at most %d, got %d", name, max, n)
	}
	return nil
}
