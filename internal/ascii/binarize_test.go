package ascii

import (
	"math"
	"strings"
	"testing"

	apperr "github.com/ironsheep/image-ascii/internal/errors"
)

func TestBinarize_Shape(t *testing.T) {
	cfg := DefaultConfig()

	for _, s := range []struct{ rows, cols int }{{1, 1}, {1, 7}, {7, 1}, {3, 4}, {10, 25}} {
		buf := make([]uint8, s.rows*s.cols)
		grid, err := Binarize(buf, s.rows, s.cols, cfg)
		if err != nil {
			t.Fatalf("Binarize(%d,%d) failed: %v", s.rows, s.cols, err)
		}
		if len(grid) != s.rows {
			t.Errorf("Binarize(%d,%d): %d rows, want %d", s.rows, s.cols, len(grid), s.rows)
		}
		for i, row := range grid {
			if len([]rune(row)) != s.cols {
				t.Errorf("row %d has %d glyphs, want %d", i, len([]rune(row)), s.cols)
			}
		}
	}
}

func TestBinarize_RowMajor(t *testing.T) {
	buf := []uint8{
		0, 255, 0,
		255, 199, 200,
	}

	grid, err := Binarize(buf, 2, 3, DefaultConfig())
	if err != nil {
		t.Fatalf("Binarize failed: %v", err)
	}

	want := Grid{"#.#", ".#."}
	if len(grid) != len(want) {
		t.Fatalf("got %d rows, want %d", len(grid), len(want))
	}
	for i := range want {
		if grid[i] != want[i] {
			t.Errorf("row %d = %q, want %q", i, grid[i], want[i])
		}
	}
	if grid.String() != "#.#\n.#." {
		t.Errorf("String() = %q", grid.String())
	}
}

func TestBinarize_ThresholdBoundary(t *testing.T) {
	grid, err := Binarize([]uint8{199, 200}, 1, 2, DefaultConfig())
	if err != nil {
		t.Fatalf("Binarize failed: %v", err)
	}
	if grid[0] != "#." {
		t.Errorf("199,200 -> %q, want %q", grid[0], "#.")
	}
}

func TestBinarize_LengthMismatch(t *testing.T) {
	cfg := DefaultConfig()

	for _, n := range []int{0, 5, 7, 12} {
		_, err := Binarize(make([]uint8, n), 2, 3, cfg)
		if !apperr.Is(err, apperr.ErrCodeResize) {
			t.Errorf("len %d: got %v, want RESIZE_ERROR", n, err)
		}
	}
}

func TestBinarize_InvalidDimensions(t *testing.T) {
	tests := []struct {
		name       string
		rows, cols int
	}{
		{"zero rows", 0, 3},
		{"negative cols", 2, -1},
		{"product overflows", math.MaxInt/2 + 1, 3},
		{"square overflows", math.MaxInt / 4, math.MaxInt / 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid, err := Binarize(nil, tt.rows, tt.cols, DefaultConfig())
			if !apperr.Is(err, apperr.ErrCodeInvalidDimensions) {
				t.Errorf("got %v, want INVALID_DIMENSIONS", err)
			}
			if grid != nil {
				t.Errorf("grid = %q, want nil", grid)
			}
		})
	}
}

func TestBinarize_CustomAlphabet(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Alphabets[3] = Alphabet{Glyphs: []rune{'@', '+', ' '}, Cuts: []uint8{85, 170}}
	cfg.Colors = 3

	grid, err := Binarize([]uint8{0, 100, 250}, 1, 3, cfg)
	if err != nil {
		t.Fatalf("Binarize failed: %v", err)
	}
	if grid[0] != "@+ " {
		t.Errorf("got %q, want %q", grid[0], "@+ ")
	}
}

func TestGrid_StringNoTrailingNewline(t *testing.T) {
	g := Grid{"##", ".."}
	if strings.HasSuffix(g.String(), "\n") {
		t.Error("Grid.String should not end with a newline")
	}
	if Grid(nil).String() != "" {
		t.Error("empty grid should format as empty string")
	}
}
