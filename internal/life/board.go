package life

import (
	"fmt"
	"math/rand/v2"

	"github.com/san-kum/goool/internal/terminal"
)

// Outcome tells what a call to Advance did.
type Outcome int

const (
	// Evolved means the rule was applied.
	Evolved Outcome = iota
	// Resized means the terminal changed size and the board was reseeded.
	Resized
	// Stagnated means the grid repeated the one two ticks back and was reseeded.
	Stagnated
)

func (o Outcome) String() string {
	switch o {
	case Evolved:
		return "evolved"
	case Resized:
		return "resized"
	case Stagnated:
		return "stagnated"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Board owns the grid, the two previous generations and its random source.
type Board struct {
	cells      Grid
	mode       Mode
	resolution terminal.Size
	history    [2]Grid // [0] one tick back, [1] two ticks back
	rng        *rand.Rand
	sizer      terminal.Sizer
}

// New creates a randomly seeded board filling the terminal reported by sizer.
// A failing size query here is fatal for the caller.
func New(mode Mode, sizer terminal.Sizer, seed uint64) (*Board, error) {
	size, err := sizer.Size()
	if err != nil {
		return nil, fmt.Errorf("life: read terminal size: %w", err)
	}
	if !validSize(size) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSize, size)
	}

	b := &Board{
		mode:       mode,
		resolution: size,
		rng:        rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		sizer:      sizer,
	}
	b.Reseed()
	return b, nil
}

// Reseed resizes the grid to the stored resolution and flips a fair coin for
// every cell.
func (b *Board) Reseed() {
	w, h := Dimensions(b.resolution, b.mode)
	cells := NewGrid(w, h)
	for i := range cells {
		for j := range cells[i] {
			cells[i][j] = b.rng.IntN(2) == 1
		}
	}
	b.cells = cells
}

// Advance moves the board one tick forward.
//
// A size change or a 2-cycle replaces the next generation with a fresh random
// grid. Size query errors and negative sizes keep the last known resolution.
func (b *Board) Advance() Outcome {
	prev := b.cells
	outcome := Evolved

	if size, err := b.sizer.Size(); err == nil && validSize(size) && size != b.resolution {
		b.resolution = size
		b.Reseed()
		outcome = Resized
	} else if prev.Equal(b.history[1]) {
		b.Reseed()
		outcome = Stagnated
	} else {
		b.cells = prev.Next()
	}

	b.history[1] = b.history[0]
	b.history[0] = prev
	return outcome
}

func validSize(s terminal.Size) bool {
	return s.Width >= 0 && s.Height >= 0
}

// Cells returns the current generation. Callers must not modify it.
func (b *Board) Cells() Grid { return b.cells }

func (b *Board) Mode() Mode { return b.mode }

func (b *Board) Resolution() terminal.Size { return b.resolution }

// Population counts live cells in the current generation.
func (b *Board) Population() int { return b.cells.Population() }
