package ascii

import "testing"

func TestTwoColor_ThresholdBoundary(t *testing.T) {
	a := TwoColor(DefaultThreshold)

	tests := []struct {
		v    uint8
		want rune
	}{
		{0, DarkGlyph},
		{128, DarkGlyph},
		{199, DarkGlyph},
		{200, LightGlyph},
		{201, LightGlyph},
		{255, LightGlyph},
	}

	for _, tt := range tests {
		if got := a.Symbol(tt.v); got != tt.want {
			t.Errorf("Symbol(%d) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestAlphabet_MultiLevel(t *testing.T) {
	a := Alphabet{
		Glyphs: []rune{'@', '+', ' '},
		Cuts:   []uint8{85, 170},
	}
	if err := a.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}

	tests := []struct {
		v    uint8
		want rune
	}{
		{0, '@'}, {84, '@'}, {85, '+'}, {169, '+'}, {170, ' '}, {255, ' '},
	}
	for _, tt := range tests {
		if got := a.Symbol(tt.v); got != tt.want {
			t.Errorf("Symbol(%d) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestAlphabet_Validate(t *testing.T) {
	tests := []struct {
		name    string
		a       Alphabet
		wantErr bool
	}{
		{"default", TwoColor(200), false},
		{"one glyph", Alphabet{Glyphs: []rune{'#'}}, true},
		{"missing cut", Alphabet{Glyphs: []rune{'#', '.'}}, true},
		{"descending cuts", Alphabet{Glyphs: []rune{'a', 'b', 'c'}, Cuts: []uint8{100, 50}}, true},
		{"duplicate glyph", Alphabet{Glyphs: []rune{'#', '#'}, Cuts: []uint8{10}}, true},
		{"newline glyph", Alphabet{Glyphs: []rune{'#', '\n'}, Cuts: []uint8{10}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.a.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDefaultAlphabets_FreshMap(t *testing.T) {
	a := DefaultAlphabets(DefaultThreshold)
	a[2] = Alphabet{}

	b := DefaultAlphabets(DefaultThreshold)
	if len(b[2].Glyphs) != 2 {
		t.Error("DefaultAlphabets should return an independent map on each call")
	}
}

func TestConfig_Alphabet(t *testing.T) {
	cfg := DefaultConfig()
	a, err := cfg.Alphabet()
	if err != nil {
		t.Fatalf("Alphabet failed: %v", err)
	}
	if string(a.Glyphs) != "#." {
		t.Errorf("glyphs = %q, want %q", string(a.Glyphs), "#.")
	}

	cfg.Colors = 16
	if _, err := cfg.Alphabet(); err == nil {
		t.Error("Alphabet should fail for an unknown color count")
	}
}
