// Package life runs Conway's Game of Life (B3/S23) on a board sized from the terminal.
//
// The board is tied to a [terminal.Sizer] and a [Mode]:
//
//   - [Dimensions]: maps a terminal resolution to grid width and height
//   - [Board.Reseed]: refills the grid with fair coin flips
//   - [Board.Advance]: one tick, reseeding on resize or a 2-cycle
//
// # Stagnation
//
// The board keeps the two previous generations. A grid equal to the one two
// ticks back is either still or blinking with period 2 and gets reseeded
// instead of evolved.
//
// # Thread Safety
//
// Board is NOT thread-safe; it is driven by a single render loop.
package life
