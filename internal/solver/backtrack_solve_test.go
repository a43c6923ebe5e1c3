package solver

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ysraell/sudoku/internal/domain"
)

// A classic, solvable Sudoku (0 = empty) and its unique solution.
var sample = [9][9]uint8{
	{5, 3, 0, 0, 7, 0, 0, 0, 0},
	{6, 0, 0, 1, 9, 5, 0, 0, 0},
	{0, 9, 8, 0, 0, 0, 0, 6, 0},
	{8, 0, 0, 0, 6, 0, 0, 0, 3},
	{4, 0, 0, 8, 0, 3, 0, 0, 1},
	{7, 0, 0, 0, 2, 0, 0, 0, 6},
	{0, 6, 0, 0, 0, 0, 2, 8, 0},
	{0, 0, 0, 4, 1, 9, 0, 0, 5},
	{0, 0, 0, 0, 8, 0, 0, 7, 9},
}

var solved = domain.MustParseGrid(
	"534678912" +
		"672195348" +
		"198342567" +
		"859761423" +
		"426853791" +
		"713924856" +
		"961537284" +
		"287419635" +
		"345286179")

// Four cells erased from solved so that each has candidates {1,3} and
// exactly two completions exist: solved itself and the variant with
// the 1s and 3s swapped.
var rectangle = domain.MustParseGrid(
	"534678912" +
		"672195348" +
		"198342567" +
		"85976.42." +
		"42685.79." +
		"713924856" +
		"961537284" +
		"287419635" +
		"345286179")

var rectangleSwapped = domain.MustParseGrid(
	"534678912" +
		"672195348" +
		"198342567" +
		"859763421" +
		"426851793" +
		"713924856" +
		"961537284" +
		"287419635" +
		"345286179")

func gridOf(t *testing.T, cells [9][9]uint8) domain.Grid {
	t.Helper()
	g, err := domain.FromCells(cells)
	require.NoError(t, err)
	return g
}

func requireSolved(t *testing.T, g domain.Grid) {
	t.Helper()
	for i := 0; i < 9; i++ {
		require.Equal(t, domain.AllDigits, UsedInRow(g, i), "row %d", i)
		require.Equal(t, domain.AllDigits, UsedInCol(g, i), "col %d", i)
	}
	for r := 0; r < 9; r += 3 {
		for c := 0; c < 9; c += 3 {
			require.Equal(t, domain.AllDigits, UsedInBox(g, domain.Spot{Row: r, Col: c}), "box at %d,%d", r, c)
		}
	}
}

func TestSolveClassicPuzzle(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	out, st, err := NewBacktrackingSolver().Solve(ctx, gridOf(t, sample))
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Equal(t, solved, out[0])
	requireSolved(t, out[0])
	require.Positive(t, st.Nodes)
	t.Logf("solved in %v, nodes=%d", st.Duration, st.Nodes)
}

func TestSolveFullGridReturnsItself(t *testing.T) {
	t.Parallel()
	out, st, err := NewBacktrackingSolver().Solve(context.Background(), solved)
	require.NoError(t, err)
	require.Equal(t, []domain.Grid{solved}, out)
	require.Zero(t, st.Nodes)
}

func TestSolveSingleEmptyCell(t *testing.T) {
	t.Parallel()
	g := solved.Clone()
	g.Clear(domain.Spot{Row: 0, Col: 2})

	out, st, err := NewBacktrackingSolver().Solve(context.Background(), g)
	require.NoError(t, err)
	require.Equal(t, []domain.Grid{solved}, out)
	require.Equal(t, 1, st.Nodes)
}

func TestSolveConflictingGivensYieldsNothing(t *testing.T) {
	t.Parallel()
	// One empty cell at (0,2); the 4 it needs already sits at (4,2),
	// so its candidate set is empty. Not an error, just no solutions.
	g := solved.Clone()
	g.Clear(domain.Spot{Row: 0, Col: 2})
	g.Set(domain.Spot{Row: 4, Col: 2}, 4)

	out, st, err := NewBacktrackingSolver().Solve(context.Background(), g)
	require.NoError(t, err)
	require.Empty(t, out)
	require.Zero(t, st.Nodes)
}

func TestSolveEnumeratesEveryCompletion(t *testing.T) {
	t.Parallel()
	out, st, err := NewBacktrackingSolver().Solve(context.Background(), rectangle)
	require.NoError(t, err)
	require.Equal(t, []domain.Grid{solved, rectangleSwapped}, out)
	require.Equal(t, 8, st.Nodes)
	for _, g := range out {
		requireSolved(t, g)
	}
}

func TestSolveOrderIsDeterministic(t *testing.T) {
	t.Parallel()
	s := NewBacktrackingSolver()
	first, _, err := s.Solve(context.Background(), rectangle)
	require.NoError(t, err)
	second, _, err := s.Solve(context.Background(), rectangle)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestSolveCanceledContext(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, _, err := NewBacktrackingSolver().Solve(ctx, rectangle)
	require.ErrorIs(t, err, context.Canceled)
	require.Nil(t, out)
}

func TestSolutionsMatchesSolve(t *testing.T) {
	t.Parallel()
	s := NewBacktrackingSolver()
	eager, _, err := s.Solve(context.Background(), rectangle)
	require.NoError(t, err)

	var lazy []domain.Grid
	for g := range s.Solutions(context.Background(), rectangle) {
		lazy = append(lazy, g)
	}
	require.Equal(t, eager, lazy)
}

func TestSolutionsStopOnBreak(t *testing.T) {
	t.Parallel()
	var got []domain.Grid
	for g := range NewBacktrackingSolver().Solutions(context.Background(), rectangle) {
		got = append(got, g)
		break
	}
	require.Equal(t, []domain.Grid{solved}, got)
}

func TestCount(t *testing.T) {
	t.Parallel()
	s := NewBacktrackingSolver()
	ctx := context.Background()

	n, _, err := s.Count(ctx, rectangle, 0)
	require.NoError(t, err)
	require.Equal(t, 2, n)

	n, _, err = s.Count(ctx, rectangle, 1)
	require.NoError(t, err)
	require.Equal(t, 1, n)

	n, _, err = s.Count(ctx, gridOf(t, sample), 2)
	require.NoError(t, err)
	require.Equal(t, 1, n)
}
