package engine

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"abalone/game"
)

// Engine drives a local game between two agents until one side wins or the
// move cap is reached.
type Engine struct {
	ID    uuid.UUID
	Game  *game.Game
	Black Agent
	White Agent

	logger zerolog.Logger
}

func NewLocal(g *game.Game, black, white Agent) *Engine {
	id := uuid.New()
	return &Engine{
		ID:     id,
		Game:   g,
		Black:  black,
		White:  white,
		logger: log.With().Str("game", id.String()).Logger(),
	}
}

// Run plays the game out. It returns the winner when one side loses six
// marbles; ok is false when the game ended without a winner (move cap, agent
// forfeit or an agent producing an illegal move).
func (e *Engine) Run() (winner game.Player, ok bool, moves int) {
	e.logger.Info().Str("turn", e.Game.Turn().String()).Msg("game started")
	for moves = 0; moves < MaxMoves; moves++ {
		black, white := e.Game.Score()
		if w, over := game.Winner(black, white); over {
			e.logger.Info().
				Int("black", black).
				Int("white", white).
				Str("winner", w.String()).
				Msg("game over")
			return w, true, moves
		}
		agent := e.Black
		if e.Game.Turn() == game.PlayerWhite {
			agent = e.White
		}
		move := agent.FindMove(e.Game)
		if move == nil {
			e.logger.Warn().Str("player", e.Game.Turn().String()).Msg("agent forfeited")
			return 0, false, moves
		}
		player := e.Game.Turn()
		if err := e.Game.Apply(move); err != nil {
			e.logger.Error().Err(err).Str("player", player.String()).Msg("agent produced an illegal move")
			return 0, false, moves
		}
		e.logger.Debug().
			Int("move", moves+1).
			Str("player", player.String()).
			Str("played", move.String()).
			Msg("move applied")
	}
	e.logger.Info().Int("moves", moves).Msg("move cap reached without a winner")
	return 0, false, moves
}
