package hint

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ysraell/sudoku/internal/domain"
)

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

func TestHintFindsNakedSingle(t *testing.T) {
	t.Parallel()
	g := solved.Clone()
	g.Clear(domain.Spot{Row: 0, Col: 2})

	h, found, err := NewSingles().Hint(context.Background(), g)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, domain.Spot{Row: 0, Col: 2}, h.At)
	require.Equal(t, domain.Digit(4), h.Digit)
	require.NotEmpty(t, h.Message)
}

func TestHintReturnsFirstSingleRowMajor(t *testing.T) {
	t.Parallel()
	g := solved.Clone()
	g.Clear(domain.Spot{Row: 5, Col: 5})
	g.Clear(domain.Spot{Row: 0, Col: 2})

	h, found, err := NewSingles().Hint(context.Background(), g)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, domain.Spot{Row: 0, Col: 2}, h.At)
}

func TestHintNoneWhenAmbiguous(t *testing.T) {
	t.Parallel()
	// Every erased cell of this grid keeps two candidates.
	g := solved.Clone()
	g.Clear(domain.Spot{Row: 3, Col: 5})
	g.Clear(domain.Spot{Row: 3, Col: 8})
	g.Clear(domain.Spot{Row: 4, Col: 5})
	g.Clear(domain.Spot{Row: 4, Col: 8})

	_, found, err := NewSingles().Hint(context.Background(), g)
	require.NoError(t, err)
	require.False(t, found)

	_, found, err = NewSingles().Hint(context.Background(), domain.Grid{})
	require.NoError(t, err)
	require.False(t, found)
}
