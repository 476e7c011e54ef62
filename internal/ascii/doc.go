// Package ascii converts images into two-glyph ASCII art and run-length
// encodes the result.
//
// # Pipeline
//
// Convert runs one synchronous pipeline per call:
//
//	bytes -> decode -> nearest-neighbor resize -> grayscale -> []uint8
//	      -> Binarize -> Grid -> EncodeGrid -> []Runs
//
// Decoding and downsampling live in the internal imaging package; this package
// owns the brightness-to-glyph mapping and the run-length encoding.
//
// # Glyphs
//
// The default alphabet has two glyphs. A brightness below the threshold (200)
// maps to DarkGlyph ('#'), anything else to LightGlyph ('.'). Alphabets are
// looked up by glyph count in Config.Alphabets, so more shades can be added
// without touching the call sites.
//
// # Run-Length Encoding
//
// Each grid row is encoded as the lengths of its runs of identical glyphs,
// joined by '-'; rows are joined by '\n'. The encoding does not say which
// glyph a row starts with. DecodeRuns therefore takes the first glyph as an
// argument and alternates between the two glyphs of the alphabet.
//
//	"####.." -> 4-2
//	"#.#.#." -> 1-1-1-1-1-1
//
// # Errors
//
// All failures are coded errors from the internal errors package:
// INVALID_DIMENSIONS, DECODE_ERROR, RESIZE_ERROR and INVALID_RLE.
package ascii
