package chips

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChipsFields(t *testing.T) {
	t.Run("fields are independent", func(t *testing.T) {
		c := Of(1, 2, 3, 4, 5, 6)
		require.Equal(t, [NumColors + 1]int{1, 2, 3, 4, 5, 6}, c.Counts())
		require.Equal(t, 21, c.Total())
		require.Equal(t, 6, c.Gold())

		c = c.Set(Green, 7)
		require.Equal(t, 7, c.Get(Green))
		require.Equal(t, 2, c.Get(Blue))
		require.Equal(t, 4, c.Get(Red))
	})

	t.Run("gold sits above the color fields", func(t *testing.T) {
		require.Equal(t, Chips(1<<15), Chips(0).Set(Gold, 1))
		require.Equal(t, Chips(7<<12), Chips(0).Set(Black, 7))
	})

	t.Run("set rejects values wider than a field", func(t *testing.T) {
		require.Panics(t, func() { Chips(0).Set(Red, 8) })
		require.Panics(t, func() { Chips(0).Set(Red, -1) })
	})
}

func TestChipsArithmetic(t *testing.T) {
	t.Run("add and sub are per field", func(t *testing.T) {
		a := Of(1, 0, 2, 0, 3, 1)
		b := Of(0, 4, 1, 0, 0, 1)
		sum := a.Add(b)
		require.Equal(t, Of(1, 4, 3, 0, 3, 2), sum)
		require.Equal(t, a, sum.Sub(b))
	})

	t.Run("overflow panics instead of carrying", func(t *testing.T) {
		require.Panics(t, func() { Of(7, 0, 0, 0, 0, 0).Add(Of(1, 0, 0, 0, 0, 0)) })
		require.False(t, Of(7, 0, 0, 0, 0, 0).CanAdd(Of(1, 0, 0, 0, 0, 0)))
		require.True(t, Of(6, 0, 0, 0, 0, 0).CanAdd(Of(1, 0, 0, 0, 0, 0)))
	})

	t.Run("underflow panics instead of borrowing", func(t *testing.T) {
		require.Panics(t, func() { Of(0, 1, 0, 0, 0, 0).Sub(Of(1, 0, 0, 0, 0, 0)) })
	})

	t.Run("covers compares every field", func(t *testing.T) {
		require.True(t, Of(2, 2, 0, 0, 0, 1).Covers(Of(1, 2, 0, 0, 0, 0)))
		require.False(t, Of(2, 2, 0, 0, 0, 1).Covers(Of(0, 0, 1, 0, 0, 0)))
	})
}

func TestChipsString(t *testing.T) {
	require.Equal(t, "-", Chips(0).String())
	require.Equal(t, "W2 R1 *1", Of(2, 0, 0, 1, 0, 1).String())
	require.Equal(t, "+U1 G1 -W1", Exchange{Take: Of(0, 1, 1, 0, 0, 0), GiveBack: Of(1, 0, 0, 0, 0, 0)}.String())
	require.Equal(t, "gold", Gold.String())
}
