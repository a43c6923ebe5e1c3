package solver

import "github.com/ysraell/sudoku/internal/domain"

// UsedInRow collects the digits already placed in row.
func UsedInRow(g domain.Grid, row int) domain.DigitSet {
	var s domain.DigitSet
	for col := 0; col < 9; col++ {
		if d, ok := g.Get(domain.Spot{Row: row, Col: col}); ok {
			s = s.Add(d)
		}
	}
	return s
}

// UsedInCol collects the digits already placed in col.
func UsedInCol(g domain.Grid, col int) domain.DigitSet {
	var s domain.DigitSet
	for row := 0; row < 9; row++ {
		if d, ok := g.Get(domain.Spot{Row: row, Col: col}); ok {
			s = s.Add(d)
		}
	}
	return s
}

// UsedInBox collects the digits already placed in the 3x3 box
// containing at.
func UsedInBox(g domain.Grid, at domain.Spot) domain.DigitSet {
	var s domain.DigitSet
	o := at.BoxOrigin()
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			if d, ok := g.Get(domain.Spot{Row: o.Row + dr, Col: o.Col + dc}); ok {
				s = s.Add(d)
			}
		}
	}
	return s
}

// Candidates returns the digits that may be placed at at: all digits
// minus those used in its row, column and box. The three sets are
// recomputed from the grid on every call; nothing is cached.
func Candidates(g domain.Grid, at domain.Spot) domain.DigitSet {
	used := UsedInRow(g, at.Row).
		Union(UsedInCol(g, at.Col)).
		Union(UsedInBox(g, at))
	return domain.AllDigits.Without(used)
}
