package validator

import (
	"context"
	"errors"
	"fmt"

	"github.com/ysraell/sudoku/internal/domain"
)

// ErrConflictingGivens reports that the filled cells of a grid already
// violate the row/column/box rule. The search engine never runs this
// check on its own; callers opt in before solving.
var ErrConflictingGivens = errors.New("sudoku: conflicting givens")

// FastValidator scans rows, columns and boxes with digit bitmasks.
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

// Validate reports whether the filled cells are mutually consistent
// and lists the spots where a digit repeats. A spot shows up once per
// scan that catches it. Empty cells are ignored.
func (v *FastValidator) Validate(ctx context.Context, g domain.Grid) (bool, []domain.Spot, error) {
	conflicts := make([]domain.Spot, 0, 8)
	// rows
	for r := 0; r < 9; r++ {
		var seen domain.DigitSet
		for c := 0; c < 9; c++ {
			at := domain.Spot{Row: r, Col: c}
			d, ok := g.Get(at)
			if !ok {
				continue
			}
			if seen.Has(d) {
				conflicts = append(conflicts, at)
			}
			seen = seen.Add(d)
		}
	}
	// cols
	for c := 0; c < 9; c++ {
		var seen domain.DigitSet
		for r := 0; r < 9; r++ {
			at := domain.Spot{Row: r, Col: c}
			d, ok := g.Get(at)
			if !ok {
				continue
			}
			if seen.Has(d) {
				conflicts = append(conflicts, at)
			}
			seen = seen.Add(d)
		}
	}
	// boxes
	for br := 0; br < 3; br++ {
		for bc := 0; bc < 3; bc++ {
			var seen domain.DigitSet
			for dr := 0; dr < 3; dr++ {
				for dc := 0; dc < 3; dc++ {
					at := domain.Spot{Row: br*3 + dr, Col: bc*3 + dc}
					d, ok := g.Get(at)
					if !ok {
						continue
					}
					if seen.Has(d) {
						conflicts = append(conflicts, at)
					}
					seen = seen.Add(d)
				}
			}
		}
	}
	return len(conflicts) == 0, conflicts, nil
}

// Check is Validate reduced to an error: nil when the givens are
// mutually consistent, ErrConflictingGivens otherwise.
func (v *FastValidator) Check(ctx context.Context, g domain.Grid) error {
	ok, conflicts, err := v.Validate(ctx, g)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %d conflicting cells", ErrConflictingGivens, len(conflicts))
	}
	return nil
}
