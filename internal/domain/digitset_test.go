package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDigitSetAddHasLen(t *testing.T) {
	t.Parallel()
	var s DigitSet
	require.Equal(t, 0, s.Len())

	s = s.Add(3).Add(7).Add(3)
	require.True(t, s.Has(3))
	require.True(t, s.Has(7))
	require.False(t, s.Has(4))
	require.Equal(t, 2, s.Len())
}

func TestDigitSetUnionWithout(t *testing.T) {
	t.Parallel()
	a := DigitSet(0).Add(1).Add(2)
	b := DigitSet(0).Add(2).Add(9)

	require.Equal(t, []Digit{1, 2, 9}, a.Union(b).Digits())
	require.Equal(t, []Digit{1}, a.Without(b).Digits())
	require.Equal(t, []Digit{1, 3, 4, 5, 6, 7, 8}, AllDigits.Without(b).Digits())
}

func TestDigitSetDigitsAscending(t *testing.T) {
	t.Parallel()
	s := DigitSet(0).Add(9).Add(1).Add(5)
	require.Equal(t, []Digit{1, 5, 9}, s.Digits())
}

func TestAllDigits(t *testing.T) {
	t.Parallel()
	require.Equal(t, 9, AllDigits.Len())
	require.Equal(t, []Digit{1, 2, 3, 4, 5, 6, 7, 8, 9}, AllDigits.Digits())
}
