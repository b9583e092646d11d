// Package stats records population and reseed history of a running board.
package stats

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/goool/internal/life"
)

// Recorder observes ticks; it satisfies saver.Observer.
type Recorder struct {
	Population []float64
	Outcomes   map[life.Outcome]int

	streak  int
	longest int
}

func NewRecorder() *Recorder {
	return &Recorder{
		Population: make([]float64, 0, 256),
		Outcomes:   make(map[life.Outcome]int),
	}
}

func (r *Recorder) OnTick(frame int, outcome life.Outcome, b *life.Board) {
	r.Population = append(r.Population, float64(b.Population()))
	r.Outcomes[outcome]++

	if outcome == life.Evolved {
		r.streak++
		r.longest = max(r.longest, r.streak)
	} else {
		r.streak = 0
	}
}

// Generations is the number of ticks observed.
func (r *Recorder) Generations() int { return len(r.Population) }

// LongestRun is the most consecutive ticks evolved without a reseed.
func (r *Recorder) LongestRun() int { return r.longest }

// Plot draws population over time.
func (r *Recorder) Plot(width, height int) string {
	if len(r.Population) == 0 {
		return ""
	}
	return asciigraph.Plot(r.Population,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption("population"),
	)
}

func (r *Recorder) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "generations: %d\n", r.Generations())
	for _, o := range []life.Outcome{life.Evolved, life.Stagnated, life.Resized} {
		fmt.Fprintf(&b, "  %s: %d\n", o, r.Outcomes[o])
	}
	fmt.Fprintf(&b, "longest run: %d\n", r.longest)
	if n := len(r.Population); n > 0 {
		fmt.Fprintf(&b, "final population: %.0f\n", r.Population[n-1])
	}
	return b.String()
}
