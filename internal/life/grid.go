package life

// Grid is a row-major matrix of cells; true is alive.
type Grid [][]bool

// NewGrid allocates a dead grid.
func NewGrid(width, height int) Grid {
	g := make(Grid, height)
	for i := range g {
		g[i] = make([]bool, width)
	}
	return g
}

func (g Grid) Height() int { return len(g) }

func (g Grid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Equal reports whether both grids have the same shape and cells.
func (g Grid) Equal(other Grid) bool {
	if len(g) != len(other) {
		return false
	}
	for i := range g {
		if len(g[i]) != len(other[i]) {
			return false
		}
		for j := range g[i] {
			if g[i][j] != other[i][j] {
				return false
			}
		}
	}
	return true
}

func (g Grid) Clone() Grid {
	c := make(Grid, len(g))
	for i := range g {
		c[i] = make([]bool, len(g[i]))
		copy(c[i], g[i])
	}
	return c
}

// Population counts live cells.
func (g Grid) Population() int {
	n := 0
	for _, row := range g {
		for _, alive := range row {
			if alive {
				n++
			}
		}
	}
	return n
}

// Next computes the following generation. Cells beyond the edges count as dead.
func (g Grid) Next() Grid {
	h, w := g.Height(), g.Width()
	next := NewGrid(w, h)
	for i := 0; i < h; i++ {
		for j := 0; j < w; j++ {
			next[i][j] = Rule(g[i][j], g.neighbors(i, j))
		}
	}
	return next
}

func (g Grid) neighbors(i, j int) int {
	count := 0
	for di := -1; di <= 1; di++ {
		for dj := -1; dj <= 1; dj++ {
			if di == 0 && dj == 0 {
				continue
			}
			r, c := i+di, j+dj
			if r < 0 || r >= len(g) || c < 0 || c >= len(g[r]) {
				continue
			}
			if g[r][c] {
				count++
			}
		}
	}
	return count
}

// Rule is B3/S23: a live cell survives with 2 or 3 neighbours, a dead cell is
// born with exactly 3.
func Rule(alive bool, neighbors int) bool {
	return (alive && neighbors == 2) || neighbors == 3
}
