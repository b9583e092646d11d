package life

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/goool/internal/terminal"
)

// parseGrid builds a grid from rows of '#' (alive) and '.' (dead).
func parseGrid(rows ...string) Grid {
	g := make(Grid, len(rows))
	for i, row := range rows {
		g[i] = make([]bool, len(row))
		for j, c := range row {
			g[i][j] = c == '#'
		}
	}
	return g
}

var _ = Describe("Board", func() {
	var (
		size  terminal.Size
		sizer terminal.Sizer
		board *Board
	)

	BeforeEach(func() {
		// Big mode halves the width, so this yields a 6x6 grid.
		size = terminal.Size{Width: 12, Height: 6}
		sizer = terminal.Func(func() (terminal.Size, error) { return size, nil })

		var err error
		board, err = New(Big, sizer, 42)
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("New", func() {
		It("sizes the grid from the terminal and mode", func() {
			Expect(board.Cells().Width()).To(Equal(6))
			Expect(board.Cells().Height()).To(Equal(6))
			Expect(board.Resolution()).To(Equal(size))
			Expect(board.Mode()).To(Equal(Big))
		})

		It("fails when the terminal size cannot be read", func() {
			broken := terminal.Func(func() (terminal.Size, error) {
				return terminal.Size{}, terminal.ErrNoTerminal
			})
			_, err := New(Small, broken, 1)
			Expect(errors.Is(err, terminal.ErrNoTerminal)).To(BeTrue())
		})

		It("rejects negative terminal sizes", func() {
			for _, bad := range []terminal.Fixed{{Width: -5, Height: 24}, {Width: 80, Height: -1}} {
				_, err := New(Big, bad, 1)
				Expect(errors.Is(err, ErrInvalidSize)).To(BeTrue(), "size %v", bad)
			}
		})

		It("accepts an empty terminal", func() {
			empty, err := New(Braille, terminal.Fixed{}, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(empty.Cells().Height()).To(BeZero())
		})

		It("is reproducible for a fixed seed", func() {
			other, err := New(Big, sizer, 42)
			Expect(err).NotTo(HaveOccurred())
			Expect(other.Cells().Equal(board.Cells())).To(BeTrue())
		})

		It("produces both live and dead cells", func() {
			big, err := New(Braille, terminal.Fixed{Width: 40, Height: 10}, 7)
			Expect(err).NotTo(HaveOccurred())
			total := 80 * 40
			Expect(big.Population()).To(BeNumerically(">", total/4))
			Expect(big.Population()).To(BeNumerically("<", total*3/4))
		})
	})

	Describe("Advance", func() {
		It("keeps an all-dead grid dead", func() {
			board.cells = NewGrid(6, 6)
			Expect(board.Advance()).To(Equal(Evolved))
			Expect(board.Population()).To(BeZero())
		})

		It("leaves a 2x2 block unchanged", func() {
			block := parseGrid(
				"......",
				"......",
				"..##..",
				"..##..",
				"......",
				"......",
			)
			board.cells = block.Clone()
			Expect(board.Advance()).To(Equal(Evolved))
			Expect(board.Cells().Equal(block)).To(BeTrue())
		})

		It("flips a blinker", func() {
			board.cells = parseGrid(
				"......",
				"..#...",
				"..#...",
				"..#...",
				"......",
				"......",
			)
			board.Advance()
			Expect(board.Cells().Equal(parseGrid(
				"......",
				"......",
				".###..",
				"......",
				"......",
				"......",
			))).To(BeTrue())
		})

		It("does not wrap around the edges", func() {
			board.cells = parseGrid(
				"#....#",
				"......",
				"......",
				"......",
				"......",
				"#....#",
			)
			board.Advance()
			Expect(board.Population()).To(BeZero())
		})

		It("reseeds a still life once it repeats", func() {
			block := parseGrid(
				"......",
				".##...",
				".##...",
				"......",
				"......",
				"......",
			)
			board.cells = block.Clone()
			Expect(board.Advance()).To(Equal(Evolved))
			Expect(board.Advance()).To(Equal(Evolved))
			Expect(board.Advance()).To(Equal(Stagnated))
			Expect(board.Cells().Width()).To(Equal(6))
			Expect(board.Cells().Height()).To(Equal(6))
		})

		It("reseeds a period-2 oscillator", func() {
			vertical := parseGrid(
				"......",
				"..#...",
				"..#...",
				"..#...",
				"......",
				"......",
			)
			board.cells = vertical.Clone()
			Expect(board.Advance()).To(Equal(Evolved))
			Expect(board.Advance()).To(Equal(Evolved))
			Expect(board.Cells().Equal(vertical)).To(BeTrue())

			Expect(board.Advance()).To(Equal(Stagnated))
			Expect(board.history[0].Equal(vertical)).To(BeTrue())
		})

		It("reseeds at the new size after a resize", func() {
			size = terminal.Size{Width: 20, Height: 3}
			Expect(board.Advance()).To(Equal(Resized))
			Expect(board.Resolution()).To(Equal(size))
			Expect(board.Cells().Width()).To(Equal(10))
			Expect(board.Cells().Height()).To(Equal(3))
		})

		It("keeps the last resolution when the size query fails", func() {
			failing := false
			board.sizer = terminal.Func(func() (terminal.Size, error) {
				if failing {
					return terminal.Size{}, errors.New("ioctl failed")
				}
				return size, nil
			})
			failing = true
			board.cells = NewGrid(6, 6)
			Expect(board.Advance()).To(Equal(Evolved))
			Expect(board.Resolution()).To(Equal(terminal.Size{Width: 12, Height: 6}))
		})

		It("ignores a negative size reported mid-run", func() {
			size = terminal.Size{Width: -4, Height: 6}
			board.cells = NewGrid(6, 6)
			Expect(board.Advance()).To(Equal(Evolved))
			Expect(board.Resolution()).To(Equal(terminal.Size{Width: 12, Height: 6}))
		})

		It("shifts the previous generations into history", func() {
			first := board.Cells()
			board.Advance()
			second := board.Cells()
			board.Advance()

			Expect(board.history[0].Equal(second)).To(BeTrue())
			Expect(board.history[1].Equal(first)).To(BeTrue())
		})
	})
})
