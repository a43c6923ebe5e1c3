package domain

import "fmt"

// ParseGrid reads a Grid from text. Cells appear in row-major order as
// the digits 1..9, with '.', '_' or '0' marking an empty cell. Spaces,
// tabs, newlines and the frame runes '|', '+' and '-' are ignored, so
// the single-line 81-cell form, the nine-line form and rendered output
// all parse. Anything else fails with ErrInvalidDigit, and a text with
// other than 81 cells fails with ErrInvalidDimension.
func ParseGrid(text string) (Grid, error) {
	var cells [9][9]uint8
	n := 0
	for _, r := range text {
		switch r {
		case ' ', '\t', '\r', '\n', '|', '+', '-':
			continue
		case '.', '_', '0':
			// empty cell
		case '1', '2', '3', '4', '5', '6', '7', '8', '9':
			if n < 81 {
				cells[n/9][n%9] = uint8(r - '0')
			}
		default:
			return Grid{}, fmt.Errorf("%w: unexpected %q", ErrInvalidDigit, r)
		}
		n++
	}
	if n != 81 {
		return Grid{}, fmt.Errorf("%w: got %d cells, want 81", ErrInvalidDimension, n)
	}
	return Grid{cells: cells}, nil
}

// MustParseGrid is ParseGrid for fixtures; it panics on error.
func MustParseGrid(text string) Grid {
	g, err := ParseGrid(text)
	if err != nil {
		panic(err)
	}
	return g
}
