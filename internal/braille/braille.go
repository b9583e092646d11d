// Package braille packs 2x4 dot blocks into Unicode braille glyphs.
package braille

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]rune{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const (
	// Blank is the empty braille pattern.
	Blank rune = 0x2800

	// BlockSize is the number of dots in one glyph.
	BlockSize = 8
)

// Encode converts a row-major 4x2 block (dots 1,4,2,5,3,6,7,8) into its glyph.
// It panics unless len(block) == BlockSize.
func Encode(block []bool) rune {
	if len(block) != BlockSize {
		panic("braille: block must have exactly 8 dots")
	}

	r := Blank
	for i, on := range block {
		if on {
			r |= pixelMap[i/2][i%2]
		}
	}
	return r
}
