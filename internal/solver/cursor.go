package solver

import "github.com/ysraell/sudoku/internal/domain"

// NextEmpty scans row-major from start inclusive and returns the first
// empty spot. ok is false when no empty cell remains at or after
// start, which is the search's terminal signal.
func NextEmpty(g domain.Grid, start domain.Spot) (domain.Spot, bool) {
	col := start.Col
	for row := start.Row; row < 9; row++ {
		for ; col < 9; col++ {
			at := domain.Spot{Row: row, Col: col}
			if _, filled := g.Get(at); !filled {
				return at, true
			}
		}
		col = 0
	}
	return domain.Spot{}, false
}
