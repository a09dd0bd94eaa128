// Package searcher implements the game-agnostic move search. The agent
// only sees the game.State contract, so any game implementing it is
// playable unmodified.
package searcher

import (
	"errors"
	"fmt"
	"math"

	"github.com/rs/zerolog/log"

	"gambit/game"
)

// ErrNoLegalMove is returned when FindMove is asked to move on a terminal
// state. Drivers must check Terminal before asking for a move.
var ErrNoLegalMove = errors.New("no legal move: state is terminal")

type Option func(*Minimax)

// WithMetrics makes the agent collect per-search statistics instead of
// discarding them.
func WithMetrics() Option {
	return func(m *Minimax) {
		m.collector = NewCollector()
	}
}

// Minimax is a depth-bounded minimax agent with alpha-beta pruning. It is
// stateless between moves and runs each search on a single goroutine.
type Minimax struct {
	maxDepth  int
	collector Collector
}

// NewMinimax returns an agent that searches maxDepth plies before falling
// back on the game's heuristic evaluation. For 3x3 tic-tac-toe a depth of
// 9 or more makes the search exhaustive.
func NewMinimax(maxDepth int, options ...Option) *Minimax {
	if maxDepth < 1 {
		panic("search depth must be at least 1")
	}
	m := &Minimax{
		maxDepth:  maxDepth,
		collector: NewNoopCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

func (m *Minimax) Depth() int {
	return m.maxDepth
}

// FindMove returns the best move for the side to play. Ties are broken by
// LegalMoves order: the first move reaching the best score wins, which
// makes repeated searches of the same position return the same move.
func (m *Minimax) FindMove(state game.State) (game.Move, MoveMetrics, error) {
	moves := state.LegalMoves()
	if state.Terminal() || len(moves) == 0 {
		return nil, MoveMetrics{}, ErrNoLegalMove
	}

	m.collector.Start()

	maximizer := state.Player()
	best := math.Inf(-1)
	alpha, beta := math.Inf(-1), math.Inf(1)
	var bestMove game.Move
	for _, mv := range moves {
		value := m.search(mustPlay(state, mv), m.maxDepth-1, alpha, beta, maximizer)
		if value > best { // Strictly better: keeps the earliest move on ties
			best = value
			bestMove = mv
		}
		alpha = math.Max(alpha, best)
	}

	metrics := m.collector.Complete()
	log.Debug().
		Stringer("move", bestMove).
		Float64("value", best).
		Int64("nodes", metrics.Nodes).
		Int64("prunes", metrics.Prunes).
		Dur("elapsed", metrics.Duration).
		Msg("search complete")

	return bestMove, metrics, nil
}

// search scores state from maximizer's perspective with depth plies left.
// [alpha, beta] is the usual pruning window: alpha the score the maximizer
// can already force, beta the score the minimizer can. Once alpha >= beta
// no remaining sibling can change the result, so the node cuts off early.
// Pruning never changes the score at the root, only the work done.
func (m *Minimax) search(state game.State, depth int, alpha, beta float64, maximizer game.Player) float64 {
	m.collector.AddNode()

	if state.Terminal() {
		return state.Evaluate(maximizer)
	}
	if depth == 0 {
		m.collector.AddCutoff()
		return state.Evaluate(maximizer)
	}

	maximizing := state.Player() == maximizer
	best := math.Inf(1)
	if maximizing {
		best = math.Inf(-1)
	}
	for _, mv := range state.LegalMoves() {
		value := m.search(mustPlay(state, mv), depth-1, alpha, beta, maximizer)
		if maximizing {
			best = math.Max(best, value)
			alpha = math.Max(alpha, best)
		} else {
			best = math.Min(best, value)
			beta = math.Min(beta, best)
		}
		if alpha >= beta {
			m.collector.AddPrune()
			break
		}
	}
	return best
}

// mustPlay applies a move drawn from LegalMoves. An error here means the
// game implementation violated its own contract, which is unrecoverable.
func mustPlay(state game.State, mv game.Move) game.State {
	next, err := state.Play(mv)
	if err != nil {
		panic(fmt.Sprintf("legal move %s rejected by Play: %v", mv, err))
	}
	return next
}
