package engine

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"gambit/game"
)

// DefaultMaxTurns bounds game length for rule sets that can cycle; the
// chess variant has no repetition rule.
const DefaultMaxTurns = 500

type Option func(*Engine)

// WithMaxTurns overrides the turn limit. Past the limit the game is
// scored a draw.
func WithMaxTurns(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxTurns = n
		}
	}
}

// WithObserver registers a callback invoked after every applied move.
func WithObserver(fn func(Update)) Option {
	return func(e *Engine) {
		e.observer = fn
	}
}

// Engine alternates turns between two agents until the game is decided.
type Engine struct {
	state    game.State
	agents   map[game.Player]Agent
	maxTurns int
	observer func(Update)
}

// New pairs agents with sides on an initial state: first plays
// game.PlayerOne, second plays game.PlayerTwo.
func New(initial game.State, first, second Agent, options ...Option) *Engine {
	e := &Engine{
		state: initial,
		agents: map[game.Player]Agent{
			game.PlayerOne: first,
			game.PlayerTwo: second,
		},
		maxTurns: DefaultMaxTurns,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// State returns the current position.
func (e *Engine) State() game.State {
	return e.state
}

// Run plays the game to completion and returns the outcome along with a
// record of every move. A game that outlives the turn limit is a draw.
func (e *Engine) Run() (game.Outcome, []MoveRecord, error) {
	var records []MoveRecord

	log.Info().Stringer("player", e.state.Player()).Msg("game started")

	for turn := 1; !e.state.Terminal(); turn++ {
		if turn > e.maxTurns {
			log.Warn().Int("max_turns", e.maxTurns).Msg("turn limit reached, scoring a draw")
			return game.Draw, records, nil
		}

		mover := e.state.Player()
		move, metrics, err := e.agents[mover].FindMove(e.state)
		if err != nil {
			return game.StillOngoing, records, fmt.Errorf("agent for %s: %w", mover, err)
		}
		if !legal(e.state, move) {
			return game.StillOngoing, records, &game.IllegalMoveError{Move: move, Reason: "not among the legal moves"}
		}

		next, err := e.state.Play(move)
		if err != nil {
			return game.StillOngoing, records, fmt.Errorf("apply move %s: %w", move, err)
		}
		e.state = next

		records = append(records, MoveRecord{Step: turn, Player: mover, Move: move, Metrics: metrics})
		log.Debug().Int("step", turn).Stringer("player", mover).Stringer("move", move).Msg("move applied")

		if e.observer != nil {
			e.observer(Update{Step: turn, Move: move, State: next})
		}
	}

	outcome := e.state.Outcome()
	log.Info().Stringer("outcome", outcome).Msg("game over")
	return outcome, records, nil
}

func legal(state game.State, move game.Move) bool {
	for _, lm := range state.LegalMoves() {
		if lm == move {
			return true
		}
	}
	return false
}
