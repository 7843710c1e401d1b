package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWinner(t *testing.T) {
	w, over := Winner(8, 14)
	require.True(t, over)
	require.Equal(t, PlayerWhite, w)

	w, over = Winner(14, 8)
	require.True(t, over)
	require.Equal(t, PlayerBlack, w)

	_, over = Winner(9, 9)
	require.False(t, over)

	_, over = Winner(14, 14)
	require.False(t, over)
}

func TestEvaluate(t *testing.T) {
	t.Run("the opening position is balanced", func(t *testing.T) {
		require.Equal(t, 0.0, NewGame(DefaultLayout, testWeights).Evaluate())
	})

	t.Run("material advantage dominates", func(t *testing.T) {
		g := newPosition(t, []Space{E5}, nil)
		require.Equal(t, 150.0, g.Evaluate())
	})

	t.Run("positional terms", func(t *testing.T) {
		// both marbles are isolated; white also sits one step off center,
		// so black comes out ahead by the centrality difference
		g := newPosition(t, []Space{E5}, []Space{E4})
		require.Equal(t, 2.5, g.Evaluate())
	})

	t.Run("three-marble lines are rewarded", func(t *testing.T) {
		g := newPosition(t, []Space{E4, E5, E6}, nil)
		// one three, no isolation, average center distance 2/3
		want := 3*150.0 + 1*testWeights.Threes - 2.0/3.0*testWeights.Center
		require.InDelta(t, want, g.Evaluate(), 1e-9)
	})
}

func TestCountThrees(t *testing.T) {
	t.Run("opening position", func(t *testing.T) {
		g := NewGame(DefaultLayout, testWeights)
		require.Equal(t, 14, g.countThrees(PlayerBlack))
		require.Equal(t, 14, g.countThrees(PlayerWhite))
	})

	t.Run("overlapping runs count once each", func(t *testing.T) {
		// four in a row contains two distinct threes
		g := newPosition(t, []Space{E4, E5, E6, E7}, nil)
		require.Equal(t, 2, g.countThrees(PlayerBlack))
		require.Equal(t, 0, g.countThrees(PlayerWhite))
	})
}

func TestHeuristicCache(t *testing.T) {
	t.Run("cached adjustments are reused by hash", func(t *testing.T) {
		g := NewGame(DefaultLayout, testWeights)
		g.HeuristicCache()[g.Hash()] = 42
		require.Equal(t, 42.0, g.Evaluate())
	})

	t.Run("evaluation populates the cache", func(t *testing.T) {
		g := NewGame(DefaultLayout, testWeights)
		require.Empty(t, g.HeuristicCache())
		g.Evaluate()
		require.Contains(t, g.HeuristicCache(), g.Hash())
	})

	t.Run("a copy starts with a fresh cache", func(t *testing.T) {
		g := NewGame(DefaultLayout, testWeights)
		g.Evaluate()
		require.Empty(t, g.Copy().HeuristicCache())
	})
}
