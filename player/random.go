package player

import (
	"golang.org/x/exp/rand"

	"gambit/game"
	"gambit/searcher"
)

// Random picks uniformly among the legal moves. It is the baseline
// opponent in experiments; a fixed seed makes runs reproducible.
type Random struct {
	rng *rand.Rand
}

func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) FindMove(state game.State) (game.Move, searcher.MoveMetrics, error) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return nil, searcher.MoveMetrics{}, searcher.ErrNoLegalMove
	}
	return moves[r.rng.Intn(len(moves))], searcher.MoveMetrics{}, nil
}
