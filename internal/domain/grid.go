package domain

import (
	"errors"
	"fmt"
)

// Errors reported while constructing a Grid, before any search runs.
var (
	ErrInvalidDimension = errors.New("sudoku: invalid grid dimensions")
	ErrInvalidDigit     = errors.New("sudoku: invalid digit")
)

// Digit is a Sudoku cell value in the range 1..9.
type Digit uint8

// Spot addresses a cell by 0-indexed row and column.
type Spot struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Next returns the row-major successor of s. The successor of the last
// cell lies past the grid, which scans treat as "nothing left".
func (s Spot) Next() Spot {
	if s.Col == 8 {
		return Spot{Row: s.Row + 1}
	}
	return Spot{Row: s.Row, Col: s.Col + 1}
}

// BoxOrigin returns the top-left spot of the 3x3 box containing s.
func (s Spot) BoxOrigin() Spot {
	return Spot{Row: s.Row / 3 * 3, Col: s.Col / 3 * 3}
}

func (s Spot) inRange() bool {
	return s.Row >= 0 && s.Row < 9 && s.Col >= 0 && s.Col < 9
}

// Grid is a 9x9 Sudoku grid. The zero value is the empty grid.
//
// Grid is a plain value: assigning or passing one copies all 81 cells,
// so every branch of a search owns its grid outright.
type Grid struct {
	cells [9][9]uint8 // 0 marks an empty cell
}

// FromCells builds a Grid from a raw 9x9 block where 0 marks an empty
// cell. Values above 9 are rejected with ErrInvalidDigit.
func FromCells(cells [9][9]uint8) (Grid, error) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if cells[r][c] > 9 {
				return Grid{}, fmt.Errorf("%w: %d at row %d col %d", ErrInvalidDigit, cells[r][c], r, c)
			}
		}
	}
	return Grid{cells: cells}, nil
}

// Cells returns the raw 9x9 block with 0 marking empty cells.
func (g Grid) Cells() [9][9]uint8 { return g.cells }

// Get returns the digit at s and whether the cell is filled.
func (g Grid) Get(s Spot) (Digit, bool) {
	v := g.cells[s.Row][s.Col]
	return Digit(v), v != 0
}

// Set writes d at s. An out-of-range spot or digit is a programming
// error, not a puzzle state, so Set panics on either.
func (g *Grid) Set(s Spot, d Digit) {
	if !s.inRange() {
		panic(fmt.Sprintf("sudoku: spot out of range: row %d col %d", s.Row, s.Col))
	}
	if d < 1 || d > 9 {
		panic(fmt.Sprintf("sudoku: digit out of range: %d", d))
	}
	g.cells[s.Row][s.Col] = uint8(d)
}

// Clear empties the cell at s.
func (g *Grid) Clear(s Spot) {
	if !s.inRange() {
		panic(fmt.Sprintf("sudoku: spot out of range: row %d col %d", s.Row, s.Col))
	}
	g.cells[s.Row][s.Col] = 0
}

// Clone returns an independent copy of g. The receiver is already a
// copy, so this only names the intent at branch points.
func (g Grid) Clone() Grid { return g }

// FilledCount returns the number of assigned cells.
func (g Grid) FilledCount() int {
	n := 0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g.cells[r][c] != 0 {
				n++
			}
		}
	}
	return n
}
