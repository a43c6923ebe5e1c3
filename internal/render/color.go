package render

import (
	"github.com/logrusorgru/aurora"

	"github.com/ysraell/sudoku/internal/domain"
)

// Colored renders g like Text but highlights the digits absent from
// base, so a solution shows its placements against the givens it grew
// from. Colored(g, g) is plain.
func Colored(g, base domain.Grid) string {
	return block(func(at domain.Spot) string {
		s := cell(g, at)
		_, given := base.Get(at)
		_, filled := g.Get(at)
		if filled && !given {
			return aurora.Green(s).String()
		}
		return s
	})
}
