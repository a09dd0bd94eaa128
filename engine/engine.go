// Package engine runs games between agents: it alternates turns, checks
// the legality of every returned move, and records per-move search
// metrics until the game is decided.
package engine

import (
	"gambit/game"
	"gambit/searcher"
)

// Agent produces a move for the side to play in the given state.
type Agent interface {
	FindMove(state game.State) (game.Move, searcher.MoveMetrics, error)
}

// Update describes one applied move, for observers such as board
// renderers. State is the position after the move.
type Update struct {
	Step  int
	Move  game.Move
	State game.State
}

// MoveRecord pairs an applied move with the search metrics behind it.
type MoveRecord struct {
	Step    int
	Player  game.Player
	Move    game.Move
	Metrics searcher.MoveMetrics
}
