package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gambit/game/tictactoe"
	"gambit/searcher"
)

func TestRandomFindMove(t *testing.T) {
	t.Run("only ever returns legal moves", func(t *testing.T) {
		s, err := tictactoe.Parse("XO./.X./O..", tictactoe.Config{})
		require.NoError(t, err)

		r := NewRandom(42)
		for i := 0; i < 20; i++ {
			move, _, err := r.FindMove(s)
			require.NoError(t, err)
			assert.Contains(t, s.LegalMoves(), move)
		}
	})

	t.Run("the same seed replays the same moves", func(t *testing.T) {
		s := tictactoe.NewState(tictactoe.Config{})

		first, _, err := NewRandom(7).FindMove(s)
		require.NoError(t, err)
		second, _, err := NewRandom(7).FindMove(s)
		require.NoError(t, err)

		require.Equal(t, first, second)
	})

	t.Run("terminal state yields no move", func(t *testing.T) {
		s, err := tictactoe.Parse("XXX/OO./...", tictactoe.Config{})
		require.NoError(t, err)

		_, _, err = NewRandom(1).FindMove(s)

		require.ErrorIs(t, err, searcher.ErrNoLegalMove)
	})
}
