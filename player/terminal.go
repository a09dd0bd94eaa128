// Package player provides the non-searching agents: a terminal-driven
// human proxy and a seeded random baseline.
package player

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gambit/game"
	"gambit/searcher"
)

// Terminal is a human proxy that renders the position and reads moves
// from an input stream.
type Terminal struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: bufio.NewScanner(in), out: out}
}

// FindMove prompts until it reads a legal move. Games implementing
// game.MoveParser take moves in their native text form; other games get a
// numbered move menu.
func (t *Terminal) FindMove(state game.State) (game.Move, searcher.MoveMetrics, error) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return nil, searcher.MoveMetrics{}, searcher.ErrNoLegalMove
	}

	fmt.Fprintf(t.out, "\n%v\n", state)

	if parser, ok := state.(game.MoveParser); ok {
		return t.promptParsed(parser, moves)
	}
	return t.promptNumbered(moves)
}

func (t *Terminal) promptParsed(parser game.MoveParser, moves []game.Move) (game.Move, searcher.MoveMetrics, error) {
	for {
		fmt.Fprint(t.out, "your move: ")
		if !t.in.Scan() {
			return nil, searcher.MoveMetrics{}, t.readErr()
		}
		mv, err := parser.ParseMove(t.in.Text())
		if err != nil {
			fmt.Fprintf(t.out, "invalid input: %v\n", err)
			continue
		}
		if !contains(moves, mv) {
			fmt.Fprintln(t.out, "illegal move, try again")
			continue
		}
		return mv, searcher.MoveMetrics{}, nil
	}
}

func (t *Terminal) promptNumbered(moves []game.Move) (game.Move, searcher.MoveMetrics, error) {
	for i, mv := range moves {
		fmt.Fprintf(t.out, "%d: %s\n", i+1, mv)
	}
	for {
		fmt.Fprintf(t.out, "enter move number (1-%d): ", len(moves))
		if !t.in.Scan() {
			return nil, searcher.MoveMetrics{}, t.readErr()
		}
		n, err := strconv.Atoi(strings.TrimSpace(t.in.Text()))
		if err != nil || n < 1 || n > len(moves) {
			fmt.Fprintln(t.out, "invalid choice, try again")
			continue
		}
		return moves[n-1], searcher.MoveMetrics{}, nil
	}
}

func (t *Terminal) readErr() error {
	if err := t.in.Err(); err != nil {
		return fmt.Errorf("read move: %w", err)
	}
	return fmt.Errorf("read move: %w", io.EOF)
}

func contains(moves []game.Move, mv game.Move) bool {
	for _, m := range moves {
		if m == mv {
			return true
		}
	}
	return false
}
