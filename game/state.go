package game

// Game is one session: the board, the player to move, the applied-move
// history and the memoized positional scores. A Game must only be mutated by
// one goroutine at a time; concurrent searches over the same position need a
// Copy per worker.
type Game struct {
	board      *Board
	turn       Player
	weights    Weights
	history    []Move
	heuristics map[uint64]float64
}

// NewGame starts a session from a starting layout with black to move. The
// evaluation weights have no defaults; callers supply all of them.
func NewGame(layout Layout, weights Weights) *Game {
	return &Game{
		board:      NewBoard(layout),
		turn:       PlayerBlack,
		weights:    weights,
		heuristics: make(map[uint64]float64),
	}
}

// Board exposes the session's board. The board is owned by the session;
// mutate it only through moves once play has started.
func (g *Game) Board() *Board {
	return g.board
}

// Turn returns the player to move.
func (g *Game) Turn() Player {
	return g.turn
}

// Hash returns the position hash of the current board.
func (g *Game) Hash() uint64 {
	return g.board.hash
}

// Apply validates and performs a move, then passes the turn. An illegal move
// leaves the game untouched and returns an *IllegalMoveError.
func (g *Game) Apply(m Move) error {
	if err := m.apply(g); err != nil {
		return err
	}
	g.history = append(g.history, m)
	g.turn = g.turn.Opponent()
	return nil
}

// Undo reverts a move and passes the turn back. Moves must be undone in
// reverse order of application; anything else is a caller bug and panics.
func (g *Game) Undo(m Move) {
	if len(g.history) == 0 || g.history[len(g.history)-1] != m {
		panic("game: moves must be undone in reverse order of application")
	}
	m.undo(g)
	g.history = g.history[:len(g.history)-1]
	g.turn = g.turn.Opponent()
}

// Score counts the marbles still on the board, black first.
func (g *Game) Score() (black, white int) {
	return g.board.Score()
}

// Over reports whether a player has lost six marbles.
func (g *Game) Over() bool {
	black, white := g.board.Score()
	_, over := Winner(black, white)
	return over
}

// Copy returns an independent session over a copy of the board, with an empty
// history and its own heuristic cache.
func (g *Game) Copy() *Game {
	return &Game{
		board:      g.board.Copy(),
		turn:       g.turn,
		weights:    g.weights,
		heuristics: make(map[uint64]float64),
	}
}
