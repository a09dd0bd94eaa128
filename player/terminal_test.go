package player

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"gambit/game"
	"gambit/game/tictactoe"
	"gambit/searcher"
)

func TestTerminalParsedInput(t *testing.T) {
	t.Run("reads a move in the game's native form", func(t *testing.T) {
		s := tictactoe.NewState(tictactoe.Config{})
		term := NewTerminal(strings.NewReader("0,2\n"), &bytes.Buffer{})

		move, _, err := term.FindMove(s)

		require.NoError(t, err)
		require.Equal(t, tictactoe.Move{Row: 0, Col: 2}, move)
	})

	t.Run("re-prompts on garbage and illegal moves", func(t *testing.T) {
		s, err := tictactoe.Parse("X../.../...", tictactoe.Config{})
		require.NoError(t, err)
		var out bytes.Buffer
		term := NewTerminal(strings.NewReader("nope\n0,0\n1,1\n"), &out)

		move, _, err := term.FindMove(s)

		require.NoError(t, err)
		require.Equal(t, tictactoe.Move{Row: 1, Col: 1}, move)
		require.Contains(t, out.String(), "invalid input")
		require.Contains(t, out.String(), "illegal move")
	})

	t.Run("exhausted input is an error", func(t *testing.T) {
		s := tictactoe.NewState(tictactoe.Config{})
		term := NewTerminal(strings.NewReader(""), &bytes.Buffer{})

		_, _, err := term.FindMove(s)

		require.Error(t, err)
	})

	t.Run("terminal state yields no move", func(t *testing.T) {
		s, err := tictactoe.Parse("XXX/OO./...", tictactoe.Config{})
		require.NoError(t, err)
		term := NewTerminal(strings.NewReader("0,0\n"), &bytes.Buffer{})

		_, _, err = term.FindMove(s)

		require.ErrorIs(t, err, searcher.ErrNoLegalMove)
	})
}

func TestTerminalNumberedMenu(t *testing.T) {
	state := menuState{moves: []game.Move{menuMove("left"), menuMove("right")}}

	t.Run("picks a move by number", func(t *testing.T) {
		var out bytes.Buffer
		term := NewTerminal(strings.NewReader("2\n"), &out)

		move, _, err := term.FindMove(state)

		require.NoError(t, err)
		require.Equal(t, menuMove("right"), move)
		require.Contains(t, out.String(), "1: left", "the menu should list the moves")
	})

	t.Run("re-prompts on an out of range choice", func(t *testing.T) {
		term := NewTerminal(strings.NewReader("0\n3\n1\n"), &bytes.Buffer{})

		move, _, err := term.FindMove(state)

		require.NoError(t, err)
		require.Equal(t, menuMove("left"), move)
	})
}

// menuState is a minimal game without a move parser, forcing the menu
// fallback.
type menuState struct {
	moves []game.Move
}

type menuMove string

func (m menuMove) String() string { return string(m) }

func (s menuState) Player() game.Player                { return game.PlayerOne }
func (s menuState) LegalMoves() []game.Move            { return s.moves }
func (s menuState) Play(game.Move) (game.State, error) { return s, nil }
func (s menuState) Terminal() bool                     { return false }
func (s menuState) Outcome() game.Outcome              { return game.StillOngoing }
func (s menuState) Evaluate(game.Player) float64       { return 0 }
