package ascii

import (
	"strconv"
	"strings"

	apperr "github.com/ironsheep/image-ascii/internal/errors"
)

// Separators of the textual run-length format.
const (
	RunSeparator = "-"
	RowSeparator = "\n"
)

// Runs holds the run lengths of one grid row, in row order.
type Runs []int

// String formats the runs as "4-2".
func (r Runs) String() string {
	parts := make([]string, len(r))
	for i, n := range r {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, RunSeparator)
}

// Sum returns the total length of the row the runs describe.
func (r Runs) Sum() int {
	total := 0
	for _, n := range r {
		total += n
	}
	return total
}

// EncodeRuns returns the lengths of consecutive runs of identical glyphs in
// row. An empty row has no runs.
func EncodeRuns(row string) Runs {
	if row == "" {
		return nil
	}

	var runs Runs
	var current rune
	count := 0
	for i, r := range row {
		if i == 0 {
			current, count = r, 1
			continue
		}
		if r == current {
			count++
			continue
		}
		runs = append(runs, count)
		current, count = r, 1
	}
	// The last run has no following glyph to close it.
	runs = append(runs, count)
	return runs
}

// EncodeGrid encodes every non-empty row of g.
func EncodeGrid(g Grid) []Runs {
	out := make([]Runs, 0, len(g))
	for _, row := range g {
		if row == "" {
			continue
		}
		out = append(out, EncodeRuns(row))
	}
	return out
}

// FormatRLE renders encoded rows as text: runs joined by '-', rows by '\n'.
func FormatRLE(rows []Runs) string {
	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = r.String()
	}
	return strings.Join(lines, RowSeparator)
}

// ParseRuns parses one line such as "4-2".
func ParseRuns(line string) (Runs, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, apperr.New(apperr.ErrCodeInvalidRLE, "empty run-length row")
	}

	parts := strings.Split(line, RunSeparator)
	runs := make(Runs, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, apperr.Wrap(apperr.ErrCodeInvalidRLE, err, "run %d of %q is not a number", i+1, line)
		}
		if n < 1 {
			return nil, apperr.New(apperr.ErrCodeInvalidRLE, "run %d of %q must be positive, got %d", i+1, line, n)
		}
		runs[i] = n
	}
	return runs, nil
}

// ParseRLE parses multi-row run-length text. Blank lines are skipped since
// empty grid rows are never encoded.
func ParseRLE(text string) ([]Runs, error) {
	text = strings.ReplaceAll(text, "\r\n", RowSeparator)

	var rows []Runs
	for i, line := range strings.Split(text, RowSeparator) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		runs, err := ParseRuns(line)
		if err != nil {
			return nil, apperr.Wrap(apperr.ErrCodeInvalidRLE, err, "line %d", i+1)
		}
		rows = append(rows, runs)
	}
	if len(rows) == 0 {
		return nil, apperr.New(apperr.ErrCodeInvalidRLE, "no run-length rows")
	}
	return rows, nil
}

// DecodeRuns rebuilds a row from its runs.
//
// The encoding does not record glyph identity, so the caller supplies the
// row's first glyph; runs then alternate between the two glyphs of alpha.
// Alternation is only defined for two-glyph alphabets.
func DecodeRuns(runs Runs, first rune, alpha Alphabet) (string, error) {
	if len(alpha.Glyphs) != 2 {
		return "", apperr.New(apperr.ErrCodeInvalidRLE,
			"alternating decode needs a two-glyph alphabet, got %d glyphs", len(alpha.Glyphs))
	}
	if !alpha.Contains(first) {
		return "", apperr.New(apperr.ErrCodeInvalidRLE, "first glyph %q is not in the alphabet", first)
	}

	other := alpha.Glyphs[0]
	if other == first {
		other = alpha.Glyphs[1]
	}

	var sb strings.Builder
	sb.Grow(runs.Sum())
	current := first
	for i, n := range runs {
		if n < 1 {
			return "", apperr.New(apperr.ErrCodeInvalidRLE, "run %d must be positive, got %d", i+1, n)
		}
		sb.WriteString(strings.Repeat(string(current), n))
		current, other = other, current
	}
	return sb.String(), nil
}

// DecodeRLE rebuilds a grid. firsts holds the first glyph of every row, or a
// single glyph used for all rows.
func DecodeRLE(rows []Runs, firsts []rune, alpha Alphabet) (Grid, error) {
	if len(firsts) != 1 && len(firsts) != len(rows) {
		return nil, apperr.New(apperr.ErrCodeInvalidRLE,
			"need 1 or %d first glyphs, got %d", len(rows), len(firsts))
	}

	grid := make(Grid, len(rows))
	for i, runs := range rows {
		first := firsts[0]
		if len(firsts) > 1 {
			first = firsts[i]
		}
		row, err := DecodeRuns(runs, first, alpha)
		if err != nil {
			return nil, apperr.Wrap(apperr.ErrCodeInvalidRLE, err, "row %d", i+1)
		}
		grid[i] = row
	}
	return grid, nil
}
