// Package blocks splits 2D slices into rectangular tiles.
package blocks

// Partition cuts grid into h x w tiles, scanning rows of tiles top to bottom
// and tiles left to right. Each tile is flattened row-major. Tiles on the
// bottom and right edges may be smaller; empty tiles are dropped.
//
// The column count is taken from the first row.
func Partition[T any](grid [][]T, h, w int) [][][]T {
	if h <= 0 || w <= 0 {
		panic("blocks: tile size must be positive")
	}

	rows := len(grid)
	cols := 0
	if rows > 0 {
		cols = len(grid[0])
	}

	result := make([][][]T, 0, (rows+h-1)/h)
	for top := 0; top < rows; top += h {
		rowOfTiles := make([][]T, 0, (cols+w-1)/w)
		for left := 0; left < cols; left += w {
			tile := make([]T, 0, h*w)
			for r := top; r < min(top+h, rows); r++ {
				for c := left; c < min(left+w, cols, len(grid[r])); c++ {
					tile = append(tile, grid[r][c])
				}
			}
			if len(tile) > 0 {
				rowOfTiles = append(rowOfTiles, tile)
			}
		}
		result = append(result, rowOfTiles)
	}
	return result
}
