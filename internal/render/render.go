// Package render turns a life grid into terminal text.
package render

import (
	"io"
	"strings"

	"github.com/san-kum/goool/internal/blocks"
	"github.com/san-kum/goool/internal/braille"
	"github.com/san-kum/goool/internal/color"
	"github.com/san-kum/goool/internal/life"
)

const (
	bigAlive = "██"
	bigDead  = "  "

	reset = "\x1b[0m"
)

// Half-block glyphs indexed by top<<1 | bottom.
var smallGlyphs = [4]rune{' ', '▄', '▀', '█'}

// Colors are optional truecolor overrides for live and dead cells.
type Colors struct {
	Alive *color.RGB
	Dead  *color.RGB
}

// Renderer draws grids in a fixed mode and color scheme.
type Renderer struct {
	mode   life.Mode
	colors Colors
}

func New(mode life.Mode, colors Colors) *Renderer {
	return &Renderer{mode: mode, colors: colors}
}

func (r *Renderer) Mode() life.Mode { return r.mode }

// Render returns one frame: color prefix, rows separated by newlines without a
// trailing one, then an attribute reset.
func (r *Renderer) Render(g life.Grid) string {
	var b strings.Builder
	r.write(&b, g)
	return b.String()
}

// WriteFrame writes the frame for g to w.
func (r *Renderer) WriteFrame(w io.Writer, g life.Grid) error {
	var b strings.Builder
	r.write(&b, g)
	_, err := io.WriteString(w, b.String())
	return err
}

func (r *Renderer) write(b *strings.Builder, g life.Grid) {
	if r.colors.Alive != nil {
		b.WriteString(r.colors.Alive.Foreground())
	}
	if r.colors.Dead != nil {
		b.WriteString(r.colors.Dead.Background())
	}

	switch r.mode {
	case life.Big:
		writeBig(b, g)
	case life.Small:
		writeSmall(b, g)
	case life.Braille:
		writeBraille(b, g)
	}

	b.WriteString(reset)
}

func writeBig(b *strings.Builder, g life.Grid) {
	b.Grow(len(g) * (g.Width()*len(bigAlive) + 1))
	for i, row := range g {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, alive := range row {
			if alive {
				b.WriteString(bigAlive)
			} else {
				b.WriteString(bigDead)
			}
		}
	}
}

// writeSmall consumes rows in pairs; a trailing odd row is drawn against a
// dead bottom half.
func writeSmall(b *strings.Builder, g life.Grid) {
	for top := 0; top < len(g); top += 2 {
		if top > 0 {
			b.WriteByte('\n')
		}
		var bottom []bool
		if top+1 < len(g) {
			bottom = g[top+1]
		}
		for j, up := range g[top] {
			down := j < len(bottom) && bottom[j]
			idx := 0
			if up {
				idx |= 2
			}
			if down {
				idx |= 1
			}
			b.WriteRune(smallGlyphs[idx])
		}
	}
}

// writeBraille packs 4x2 tiles into glyphs. Tiles cut short by the grid edge
// are padded with dead cells.
func writeBraille(b *strings.Builder, g life.Grid) {
	tiles := blocks.Partition([][]bool(g), 4, 2)
	for i, row := range tiles {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, tile := range row {
			b.WriteRune(braille.Encode(padTile(g, i, tile)))
		}
	}
}

func padTile(g life.Grid, tileRow int, tile []bool) []bool {
	if len(tile) == braille.BlockSize {
		return tile
	}

	// A short tile lost rows, columns or both. Rows present = min(4, rows left);
	// the tile width follows from its length.
	rows := min(4, len(g)-tileRow*4)
	cols := len(tile) / rows

	padded := make([]bool, braille.BlockSize)
	for k, alive := range tile {
		padded[(k/cols)*2+k%cols] = alive
	}
	return padded
}
