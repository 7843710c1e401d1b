package searcher

import (
	"math"
	"time"

	"golang.org/x/exp/rand"

	"abalone/game"
)

const defaultDepth = 3

type Option func(*Negamax)

// WithDepth sets the search depth in plies.
func WithDepth(depth int) Option {
	return func(n *Negamax) {
		if depth > 0 {
			n.depth = depth
		}
	}
}

// WithDuration bounds the wall-clock time of a search. The clock is polled
// between root moves, so the bound is approximate; at least one root move is
// always searched.
func WithDuration(d time.Duration) Option {
	return func(n *Negamax) {
		if d > 0 {
			n.duration = d
		}
	}
}

// WithSeed fixes the tie-breaking random source for reproducible play.
func WithSeed(seed uint64) Option {
	return func(n *Negamax) {
		n.rng = rand.New(rand.NewSource(seed))
	}
}

// Negamax is a fixed-depth alpha-beta searcher over one game session. It
// explores through apply/undo and leaves the session exactly as it found it.
type Negamax struct {
	depth    int
	duration time.Duration
	rng      *rand.Rand
}

func NewNegamax(options ...Option) *Negamax {
	n := &Negamax{
		depth: defaultDepth,
		rng:   rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
	}
	for _, option := range options {
		option(n)
	}
	return n
}

// FindMove returns the best move for the player to move, breaking ties
// uniformly at random, or nil when the position is terminal or has no legal
// moves.
func (n *Negamax) FindMove(g *game.Game) game.Move {
	if g.Over() {
		return nil
	}
	moves := g.LegalMoves()
	if len(moves) == 0 {
		return nil
	}
	var deadline time.Time
	if n.duration > 0 {
		deadline = time.Now().Add(n.duration)
	}
	var best []game.Move
	bestScore := math.Inf(-1)
	for _, m := range moves {
		if err := g.Apply(m); err != nil {
			panic("searcher: generated move failed to apply: " + err.Error())
		}
		// full window at the root keeps scores exact for tie-breaking
		score := -n.search(g, n.depth-1, math.Inf(-1), math.Inf(1))
		g.Undo(m)
		switch {
		case score > bestScore:
			bestScore = score
			best = append(best[:0], m)
		case score == bestScore:
			best = append(best, m)
		}
		if !deadline.IsZero() && time.Now().After(deadline) {
			break
		}
	}
	return best[n.rng.Intn(len(best))]
}

func (n *Negamax) search(g *game.Game, depth int, alpha, beta float64) float64 {
	if depth <= 0 || g.Over() {
		return n.relative(g)
	}
	moves := g.LegalMoves()
	if len(moves) == 0 {
		return n.relative(g)
	}
	best := math.Inf(-1)
	for _, m := range moves {
		if err := g.Apply(m); err != nil {
			panic("searcher: generated move failed to apply: " + err.Error())
		}
		score := -n.search(g, depth-1, -beta, -alpha)
		g.Undo(m)
		if score > best {
			best = score
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			break
		}
	}
	return best
}

// relative converts the black-perspective evaluation to the side to move.
func (n *Negamax) relative(g *game.Game) float64 {
	score := g.Evaluate()
	if g.Turn() == game.PlayerWhite {
		return -score
	}
	return score
}
