package searcher

import (
	"time"

	"golang.org/x/exp/rand"

	"abalone/game"
)

// Random picks uniformly among the legal moves. It serves as a baseline
// opponent and keeps engine tests fast.
type Random struct {
	rng *rand.Rand
}

func NewRandom(seed uint64) *Random {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) FindMove(g *game.Game) game.Move {
	moves := g.LegalMoves()
	if len(moves) == 0 {
		return nil
	}
	return moves[r.rng.Intn(len(moves))]
}
