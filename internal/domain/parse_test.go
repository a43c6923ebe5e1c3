package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const classicLines = `
5 3 . . 7 . . . .
6 . . 1 9 5 . . .
. 9 8 . . . . 6 .
8 . . . 6 . . . 3
4 . . 8 . 3 . . 1
7 . . . 2 . . . 6
. 6 . . . . 2 8 .
. . . 4 1 9 . . 5
. . . . 8 . . 7 9
`

const classicFlat = "53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79"

var classicCells = [9][9]uint8{
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

func TestParseGridForms(t *testing.T) {
	t.Parallel()
	want, err := FromCells(classicCells)
	require.NoError(t, err)

	got, err := ParseGrid(classicLines)
	require.NoError(t, err)
	require.Equal(t, want, got)

	got, err = ParseGrid(classicFlat)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestParseGridEmptyMarkers(t *testing.T) {
	t.Parallel()
	dots, err := ParseGrid(classicFlat)
	require.NoError(t, err)

	zeros := ""
	for _, r := range classicFlat {
		if r == '.' {
			zeros += "0"
		} else {
			zeros += string(r)
		}
	}
	g, err := ParseGrid(zeros)
	require.NoError(t, err)
	require.Equal(t, dots, g)

	unders := ""
	for _, r := range classicFlat {
		if r == '.' {
			unders += "_"
		} else {
			unders += string(r)
		}
	}
	g, err = ParseGrid(unders)
	require.NoError(t, err)
	require.Equal(t, dots, g)
}

func TestParseGridFramedInput(t *testing.T) {
	t.Parallel()
	framed := `
5 3 . | . 7 . | . . .
6 . . | 1 9 5 | . . .
. 9 8 | . . . | . 6 .
------+-------+------
8 . . | . 6 . | . . 3
4 . . | 8 . 3 | . . 1
7 . . | . 2 . | . . 6
------+-------+------
. 6 . | . . . | 2 8 .
. . . | 4 1 9 | . . 5
. . . | . 8 . | . 7 9
`
	want := MustParseGrid(classicFlat)
	got, err := ParseGrid(framed)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestParseGridErrors(t *testing.T) {
	t.Parallel()
	_, err := ParseGrid(classicFlat[:80])
	require.ErrorIs(t, err, ErrInvalidDimension)

	_, err = ParseGrid(classicFlat + ".")
	require.ErrorIs(t, err, ErrInvalidDimension)

	_, err = ParseGrid("x" + classicFlat[1:])
	require.ErrorIs(t, err, ErrInvalidDigit)
}

func TestMustParseGridPanics(t *testing.T) {
	t.Parallel()
	require.Panics(t, func() { MustParseGrid("not a grid") })
}
