package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSpaces(t *testing.T) {
	t.Run("the board has 61 cells", func(t *testing.T) {
		require.Len(t, AllSpaces(), numSpaces)
	})

	t.Run("row shape", func(t *testing.T) {
		require.True(t, validCell(0, 1))
		require.True(t, validCell(0, 5))
		require.False(t, validCell(0, 6))
		require.True(t, validCell(8, 5))
		require.True(t, validCell(8, 9))
		require.False(t, validCell(8, 4))
		require.True(t, validCell(4, 1))
		require.True(t, validCell(4, 9))
	})

	t.Run("names", func(t *testing.T) {
		require.Equal(t, "A1", A1.String())
		require.Equal(t, "E5", E5.String())
		require.Equal(t, "F2", F2.String())
		require.Equal(t, "I9", I9.String())
		require.Equal(t, "OFF", Off.String())
	})
}

func TestDirectionOpposite(t *testing.T) {
	require.Equal(t, SouthWest, NorthEast.Opposite())
	require.Equal(t, West, East.Opposite())
	require.Equal(t, NorthWest, SouthEast.Opposite())
	for _, d := range Directions {
		require.Equal(t, d, d.Opposite().Opposite())
	}
}

func TestPlayer(t *testing.T) {
	require.Equal(t, PlayerWhite, PlayerBlack.Opponent())
	require.Equal(t, PlayerBlack, PlayerWhite.Opponent())
	require.Equal(t, Black, PlayerBlack.Marble())
	require.Equal(t, White, PlayerWhite.Marble())
}
