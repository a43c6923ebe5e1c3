package render

import (
	"strings"

	"github.com/ysraell/sudoku/internal/domain"
)

const rule = "------+-------+------"

// Text renders g as a fixed-width block: one rune per cell with '.'
// for empty, '|' between column triples and a dashed rule between row
// triples. The output parses back via domain.ParseGrid.
func Text(g domain.Grid) string {
	return block(func(at domain.Spot) string {
		return cell(g, at)
	})
}

func cell(g domain.Grid, at domain.Spot) string {
	if d, ok := g.Get(at); ok {
		return string('0' + rune(d))
	}
	return "."
}

func block(cellAt func(at domain.Spot) string) string {
	var b strings.Builder
	for r := 0; r < 9; r++ {
		if r == 3 || r == 6 {
			b.WriteString(rule)
			b.WriteByte('\n')
		}
		for c := 0; c < 9; c++ {
			if c == 3 || c == 6 {
				b.WriteString("| ")
			}
			b.WriteString(cellAt(domain.Spot{Row: r, Col: c}))
			if c < 8 {
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
