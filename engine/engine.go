package engine

import "abalone/game"

// MaxMoves caps the number of moves in a single game so two evenly matched
// agents cannot shuffle marbles forever.
const MaxMoves = 400

// Agent produces a move for the player currently to move. Returning nil
// forfeits the game.
type Agent interface {
	FindMove(*game.Game) game.Move
}
