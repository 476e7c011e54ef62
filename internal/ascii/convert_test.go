package ascii

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	apperr "github.com/ironsheep/image-ascii/internal/errors"
)

// pngBytes encodes a w x h image; fill decides the color of each pixel.
func pngBytes(t *testing.T, w, h int, fill func(x, y int) color.Color) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, fill(x, y))
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}
	return buf.Bytes()
}

func uniform(c color.Color) func(x, y int) color.Color {
	return func(int, int) color.Color { return c }
}

func TestConvert_UniformWhite(t *testing.T) {
	data := pngBytes(t, 10, 10, uniform(color.White))

	res, err := Convert(data, 2, 2, DefaultConfig())
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if res.ASCII != "..\n.." {
		t.Errorf("ascii = %q, want %q", res.ASCII, "..\n..")
	}
	if res.RLE != "2\n2" {
		t.Errorf("rle = %q, want %q", res.RLE, "2\n2")
	}
	if res.Rows != 2 || res.Cols != 2 {
		t.Errorf("size = %dx%d, want 2x2", res.Rows, res.Cols)
	}
}

func TestConvert_SplitImage(t *testing.T) {
	data := pngBytes(t, 40, 20, func(x, y int) color.Color {
		if x < 20 {
			return color.Black
		}
		return color.White
	})

	res, err := Convert(data, 3, 8, DefaultConfig())
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	want := "####....\n####....\n####...."
	if res.ASCII != want {
		t.Errorf("ascii = %q, want %q", res.ASCII, want)
	}
	if res.RLE != "4-4\n4-4\n4-4" {
		t.Errorf("rle = %q", res.RLE)
	}
}

func TestConvert_ShapeInvariants(t *testing.T) {
	data := pngBytes(t, 31, 17, func(x, y int) color.Color {
		return color.Gray{Y: uint8((x*7 + y*13) % 256)}
	})

	for _, s := range []struct{ rows, cols int }{{1, 1}, {4, 9}, {17, 31}, {40, 60}} {
		res, err := Convert(data, s.rows, s.cols, DefaultConfig())
		if err != nil {
			t.Fatalf("Convert(%d,%d) failed: %v", s.rows, s.cols, err)
		}
		lines := strings.Split(res.ASCII, "\n")
		if len(lines) != s.rows {
			t.Errorf("Convert(%d,%d): %d ascii rows", s.rows, s.cols, len(lines))
		}
		if len(res.Runs) != len(res.Grid) {
			t.Errorf("Convert(%d,%d): %d rle rows for %d grid rows", s.rows, s.cols, len(res.Runs), len(res.Grid))
		}
		for i, runs := range res.Runs {
			if runs.Sum() != s.cols {
				t.Errorf("row %d: runs sum to %d, want %d", i, runs.Sum(), s.cols)
			}
		}
	}
}

func TestConvert_Errors(t *testing.T) {
	valid := pngBytes(t, 4, 4, uniform(color.Black))

	tests := []struct {
		name       string
		data       []byte
		rows, cols int
		want       apperr.Code
	}{
		{"empty payload", nil, 2, 2, apperr.ErrCodeDecode},
		{"garbage payload", []byte("definitely not a png"), 2, 2, apperr.ErrCodeDecode},
		{"truncated png", valid[:len(valid)/2], 2, 2, apperr.ErrCodeDecode},
		{"zero rows", valid, 0, 2, apperr.ErrCodeInvalidDimensions},
		{"negative cols", valid, 2, -1, apperr.ErrCodeInvalidDimensions},
		{"above max", valid, DefaultMaxDimension + 1, 2, apperr.ErrCodeInvalidDimensions},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Convert(tt.data, tt.rows, tt.cols, DefaultConfig())
			if err == nil {
				t.Fatal("expected error")
			}
			if got := apperr.GetCode(err); got != tt.want {
				t.Errorf("code = %s, want %s (%v)", got, tt.want, err)
			}
		})
	}
}

func TestConvert_TransparentUsesBackground(t *testing.T) {
	data := pngBytes(t, 6, 6, uniform(color.NRGBA{0, 0, 0, 0}))

	res, err := Convert(data, 1, 3, DefaultConfig())
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if res.ASCII != "..." {
		t.Errorf("white background: got %q", res.ASCII)
	}

	cfg := DefaultConfig()
	cfg.Background = color.Black
	res, err = Convert(data, 1, 3, cfg)
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if res.ASCII != "###" {
		t.Errorf("black background: got %q", res.ASCII)
	}
}

func TestConvert_ThresholdSurvivesGrayscale(t *testing.T) {
	tests := []struct {
		name  string
		fill  color.Color
		ascii string
		rle   string
	}{
		{"gray 199 is dark", color.Gray{Y: 199}, "##\n##", "2\n2"},
		{"gray 200 is light", color.Gray{Y: 200}, "..\n..", "2\n2"},
		{"rgb 199 is dark", color.NRGBA{199, 199, 199, 255}, "##\n##", "2\n2"},
		{"rgb 200 is light", color.NRGBA{200, 200, 200, 255}, "..\n..", "2\n2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := pngBytes(t, 8, 8, uniform(tt.fill))

			res, err := Convert(data, 2, 2, DefaultConfig())
			if err != nil {
				t.Fatalf("Convert failed: %v", err)
			}
			if res.ASCII != tt.ascii {
				t.Errorf("ascii = %q, want %q", res.ASCII, tt.ascii)
			}
			if res.RLE != tt.rle {
				t.Errorf("rle = %q, want %q", res.RLE, tt.rle)
			}
		})
	}
}
