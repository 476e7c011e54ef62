package ascii

import (
	"fmt"
	"sort"
)

// Glyphs of the default two-color alphabet.
const (
	DarkGlyph  = '#'
	LightGlyph = '.'
)

// DefaultThreshold separates DarkGlyph from LightGlyph on a 0-255 scale.
// A brightness equal to the threshold is light.
const DefaultThreshold uint8 = 200

// Alphabet maps brightness values onto an ordered set of glyphs.
//
// Glyphs are ordered darkest first. Cuts holds the ascending lower bound of
// every glyph after the first, so len(Cuts) == len(Glyphs)-1. A brightness v
// selects Glyphs[i] where i is the number of cuts <= v.
type Alphabet struct {
	Glyphs []rune
	Cuts   []uint8
}

// TwoColor returns the dark/light alphabet split at threshold.
func TwoColor(threshold uint8) Alphabet {
	return Alphabet{
		Glyphs: []rune{DarkGlyph, LightGlyph},
		Cuts:   []uint8{threshold},
	}
}

// DefaultAlphabets returns the alphabet table keyed by glyph count.
// Each call returns a fresh map.
func DefaultAlphabets(threshold uint8) map[int]Alphabet {
	return map[int]Alphabet{
		2: TwoColor(threshold),
	}
}

// Symbol returns the glyph for brightness v.
func (a Alphabet) Symbol(v uint8) rune {
	i := sort.Search(len(a.Cuts), func(i int) bool { return a.Cuts[i] > v })
	return a.Glyphs[i]
}

// Contains reports whether r is one of the alphabet's glyphs.
func (a Alphabet) Contains(r rune) bool {
	for _, g := range a.Glyphs {
		if g == r {
			return true
		}
	}
	return false
}

// Validate checks that the alphabet is usable by Symbol.
func (a Alphabet) Validate() error {
	if len(a.Glyphs) < 2 {
		return fmt.Errorf("alphabet needs at least 2 glyphs, has %d", len(a.Glyphs))
	}
	if len(a.Cuts) != len(a.Glyphs)-1 {
		return fmt.Errorf("alphabet with %d glyphs needs %d cuts, has %d",
			len(a.Glyphs), len(a.Glyphs)-1, len(a.Cuts))
	}
	for i := 1; i < len(a.Cuts); i++ {
		if a.Cuts[i] <= a.Cuts[i-1] {
			return fmt.Errorf("alphabet cuts must be strictly ascending: %v", a.Cuts)
		}
	}
	seen := make(map[rune]bool, len(a.Glyphs))
	for _, g := range a.Glyphs {
		if seen[g] {
			return fmt.Errorf("alphabet glyph %q appears twice", g)
		}
		if g == '\n' {
			return fmt.Errorf("alphabet glyph cannot be a newline")
		}
		seen[g] = true
	}
	return nil
}
