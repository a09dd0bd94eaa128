package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gambit/game"
)

func TestNewState(t *testing.T) {
	s := NewState(Config{})

	require.Equal(t, game.PlayerOne, s.Player(), "X should move first")
	require.Equal(t, 3, s.Size())
	require.False(t, s.Terminal())
	require.Equal(t, game.StillOngoing, s.Outcome())

	moves := s.LegalMoves()
	require.Len(t, moves, 9, "empty board should have one move per cell")
	require.Equal(t, Move{Row: 0, Col: 0}, moves[0], "moves should come in row-major order")
	require.Equal(t, Move{Row: 0, Col: 1}, moves[1], "moves should come in row-major order")
	require.Equal(t, Move{Row: 2, Col: 2}, moves[8], "moves should come in row-major order")
}

func TestPlay(t *testing.T) {
	t.Run("applying a legal move", func(t *testing.T) {
		s := NewState(Config{})

		got, err := s.Play(Move{Row: 1, Col: 1})

		require.NoError(t, err)
		next := got.(*State)
		require.Equal(t, game.PlayerTwo, next.Player(), "turn should pass to O")
		require.Equal(t, game.PlayerOne, next.at(1, 1), "the cell should hold X's mark")
		require.Equal(t, game.Nobody, s.at(1, 1), "the original state should be unchanged")
		require.Equal(t, game.PlayerOne, s.Player(), "the original state should be unchanged")
	})

	t.Run("rejecting an occupied cell", func(t *testing.T) {
		s, err := Parse("X../.../...", Config{})
		require.NoError(t, err)

		_, err = s.Play(Move{Row: 0, Col: 0})

		var illegal *game.IllegalMoveError
		require.ErrorAs(t, err, &illegal)
		assert.Equal(t, "cell is occupied", illegal.Reason)
	})

	t.Run("rejecting an out of bounds move", func(t *testing.T) {
		s := NewState(Config{})

		_, err := s.Play(Move{Row: 3, Col: 0})

		var illegal *game.IllegalMoveError
		require.ErrorAs(t, err, &illegal)
		assert.Equal(t, "out of bounds", illegal.Reason)
	})

	t.Run("rejecting a foreign move type", func(t *testing.T) {
		s := NewState(Config{})

		_, err := s.Play(fakeMove{})

		var illegal *game.IllegalMoveError
		require.ErrorAs(t, err, &illegal)
	})
}

type fakeMove struct{}

func (fakeMove) String() string { return "fake" }

func TestOutcome(t *testing.T) {
	tests := []struct {
		name    string
		picture string
		want    game.Outcome
	}{
		{"top row win", "XXX/OO./...", game.WonBy(game.PlayerOne)},
		{"middle row win", "OO./XXX/...", game.WonBy(game.PlayerOne)},
		{"column win for O", "OX./OXX/O..", game.WonBy(game.PlayerTwo)},
		{"diagonal win", "XO./OX./..X", game.WonBy(game.PlayerOne)},
		{"anti-diagonal win", "OOX/.X./X..", game.WonBy(game.PlayerOne)},
		{"full board draw", "XOX/XOO/OXX", game.Draw},
		{"partially filled board ongoing", "XO./.X./...", game.StillOngoing},
		{"empty board ongoing", ".../.../...", game.StillOngoing},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Parse(tt.picture, Config{})
			require.NoError(t, err)

			require.Equal(t, tt.want, s.Outcome())
			require.Equal(t, tt.want.Decided(), s.Terminal())
		})
	}
}

func TestLegalMovesOnDecidedBoard(t *testing.T) {
	s, err := Parse("XXX/OO./...", Config{})
	require.NoError(t, err)

	require.Empty(t, s.LegalMoves(), "a decided game should offer no moves even with empty cells left")
}

func TestEvaluate(t *testing.T) {
	t.Run("win and loss collapse to the win score", func(t *testing.T) {
		s, err := Parse("XXX/OO./...", Config{})
		require.NoError(t, err)

		require.Equal(t, float64(DefaultWinScore), s.Evaluate(game.PlayerOne))
		require.Equal(t, float64(-DefaultWinScore), s.Evaluate(game.PlayerTwo))
	})

	t.Run("draw scores zero for both sides", func(t *testing.T) {
		s, err := Parse("XOX/XOO/OXX", Config{})
		require.NoError(t, err)

		require.Zero(t, s.Evaluate(game.PlayerOne))
		require.Zero(t, s.Evaluate(game.PlayerTwo))
	})

	t.Run("heuristic is symmetric on undecided boards", func(t *testing.T) {
		for _, picture := range []string{".../.X./...", "XO./.X./...", "X.O/.XO/..."} {
			s, err := Parse(picture, Config{})
			require.NoError(t, err)

			require.Equal(t, s.Evaluate(game.PlayerOne), -s.Evaluate(game.PlayerTwo),
				"evaluate(p) should equal -evaluate(other) for %q", picture)
		}
	})

	t.Run("heuristic stays below the win score", func(t *testing.T) {
		s, err := Parse("XX./OX./O..", Config{})
		require.NoError(t, err)

		score := s.Evaluate(game.PlayerOne)
		require.Greater(t, score, 0.0, "a dominant position should score positively")
		require.Less(t, score, float64(DefaultWinScore), "no undecided board may outrank a win")
	})

	t.Run("custom win score is honored", func(t *testing.T) {
		s, err := Parse("XXX/OO./...", Config{WinScore: 50})
		require.NoError(t, err)

		require.Equal(t, 50.0, s.Evaluate(game.PlayerOne))
	})
}

func TestParseMove(t *testing.T) {
	s := NewState(Config{})

	t.Run("well-formed input", func(t *testing.T) {
		mv, err := s.ParseMove("1,2")
		require.NoError(t, err)
		require.Equal(t, Move{Row: 1, Col: 2}, mv)
	})

	t.Run("whitespace is tolerated", func(t *testing.T) {
		mv, err := s.ParseMove(" 0 , 2 ")
		require.NoError(t, err)
		require.Equal(t, Move{Row: 0, Col: 2}, mv)
	})

	t.Run("malformed input", func(t *testing.T) {
		for _, text := range []string{"", "1", "1,2,3", "a,b"} {
			_, err := s.ParseMove(text)
			require.Error(t, err, "input %q should not parse", text)
		}
	})
}

func TestParse(t *testing.T) {
	t.Run("derives the side to move from mark counts", func(t *testing.T) {
		s, err := Parse("XX./OO./...", Config{})
		require.NoError(t, err)
		require.Equal(t, game.PlayerOne, s.Player(), "equal counts mean X moves next")

		s, err = Parse("XXO/.../...", Config{})
		require.NoError(t, err)
		require.Equal(t, game.PlayerTwo, s.Player(), "one extra X means O moves next")
	})

	t.Run("rejects unreachable mark counts", func(t *testing.T) {
		_, err := Parse("XX./.../...", Config{})
		require.Error(t, err)
	})

	t.Run("rejects malformed pictures", func(t *testing.T) {
		for _, picture := range []string{"", "XX/OO/..", "XXXX/.../...", "A../.../..."} {
			_, err := Parse(picture, Config{})
			require.Error(t, err, "picture %q should not parse", picture)
		}
	})
}
