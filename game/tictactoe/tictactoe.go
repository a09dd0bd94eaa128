// Package tictactoe implements size-in-a-row tic-tac-toe behind the
// game.State contract. The board size and win score are construction-time
// configuration; the standard game is 3x3 scored at ±1000.
package tictactoe

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gambit/game"
)

const (
	DefaultSize     = 3
	DefaultWinScore = 1000
)

// Config carries the construction-time constants of a board. The zero
// value yields the standard 3x3 game.
type Config struct {
	Size     int
	WinScore float64
}

func (c Config) withDefaults() Config {
	if c.Size <= 0 {
		c.Size = DefaultSize
	}
	if c.WinScore <= 0 {
		c.WinScore = DefaultWinScore
	}
	return c
}

// Move addresses a cell by zero-indexed row and column.
type Move struct {
	Row, Col int
}

func (m Move) String() string {
	return fmt.Sprintf("%d,%d", m.Row, m.Col)
}

// State is an immutable board snapshot. Play copies the cells, so older
// states stay valid while a search explores their successors.
type State struct {
	cfg    Config
	lines  [][]int // cell indices of every row, column and diagonal
	cells  []game.Player
	player game.Player
}

// NewState returns an empty board with PlayerOne (X) to move.
func NewState(cfg Config) *State {
	cfg = cfg.withDefaults()
	return &State{
		cfg:    cfg,
		lines:  winLines(cfg.Size),
		cells:  make([]game.Player, cfg.Size*cfg.Size),
		player: game.PlayerOne,
	}
}

// winLines enumerates the cell indices of every winnable line: n rows,
// n columns, and the two diagonals.
func winLines(size int) [][]int {
	lines := make([][]int, 0, 2*size+2)
	diag := make([]int, size)
	anti := make([]int, size)
	for i := 0; i < size; i++ {
		row := make([]int, size)
		col := make([]int, size)
		for j := 0; j < size; j++ {
			row[j] = i*size + j
			col[j] = j*size + i
		}
		lines = append(lines, row, col)
		diag[i] = i*size + i
		anti[i] = i*size + (size - 1 - i)
	}
	return append(lines, diag, anti)
}

func (s *State) Size() int {
	return s.cfg.Size
}

func (s *State) Player() game.Player {
	return s.player
}

func (s *State) at(row, col int) game.Player {
	return s.cells[row*s.cfg.Size+col]
}

// LegalMoves lists every empty cell in row-major order. This order doubles
// as the searcher's tie-break order, so it must stay stable.
func (s *State) LegalMoves() []game.Move {
	if s.Outcome().Decided() {
		return nil
	}
	moves := make([]game.Move, 0, len(s.cells))
	for i, cell := range s.cells {
		if cell == game.Nobody {
			moves = append(moves, Move{Row: i / s.cfg.Size, Col: i % s.cfg.Size})
		}
	}
	return moves
}

func (s *State) Play(mv game.Move) (game.State, error) {
	m, ok := mv.(Move)
	if !ok {
		return nil, &game.IllegalMoveError{Move: mv, Reason: "not a tic-tac-toe move"}
	}
	if m.Row < 0 || m.Row >= s.cfg.Size || m.Col < 0 || m.Col >= s.cfg.Size {
		return nil, &game.IllegalMoveError{Move: mv, Reason: "out of bounds"}
	}
	if s.at(m.Row, m.Col) != game.Nobody {
		return nil, &game.IllegalMoveError{Move: mv, Reason: "cell is occupied"}
	}

	next := &State{
		cfg:    s.cfg,
		lines:  s.lines,
		cells:  append([]game.Player(nil), s.cells...),
		player: s.player.Other(),
	}
	next.cells[m.Row*s.cfg.Size+m.Col] = s.player
	return next, nil
}

func (s *State) Terminal() bool {
	return s.Outcome().Decided()
}

// Outcome scans every line for a completed run, then falls back to a draw
// check on a full board.
func (s *State) Outcome() game.Outcome {
	for _, line := range s.lines {
		if owner := s.lineOwner(line); owner != game.Nobody {
			return game.WonBy(owner)
		}
	}
	for _, cell := range s.cells {
		if cell == game.Nobody {
			return game.StillOngoing
		}
	}
	return game.Draw
}

func (s *State) lineOwner(line []int) game.Player {
	owner := s.cells[line[0]]
	if owner == game.Nobody {
		return game.Nobody
	}
	for _, i := range line[1:] {
		if s.cells[i] != owner {
			return game.Nobody
		}
	}
	return owner
}

// Evaluate scores decided states at ±WinScore (or 0 for a draw) and
// undecided states with an open-line heuristic: every line the opponent
// has not touched is worth 10^marks to the side holding marks in it. The
// heuristic is clamped strictly inside (-WinScore, WinScore) so a win
// always outranks any undecided position.
func (s *State) Evaluate(perspective game.Player) float64 {
	switch out := s.Outcome(); out.Status {
	case game.Won:
		if out.Winner == perspective {
			return s.cfg.WinScore
		}
		return -s.cfg.WinScore
	case game.Drawn:
		return 0
	}

	score := 0.0
	for _, line := range s.lines {
		mine, theirs := 0, 0
		for _, i := range line {
			switch s.cells[i] {
			case perspective:
				mine++
			case perspective.Other():
				theirs++
			}
		}
		if theirs == 0 {
			score += math.Pow(10, float64(mine))
		}
		if mine == 0 {
			score -= math.Pow(10, float64(theirs))
		}
	}

	limit := s.cfg.WinScore - 1
	return math.Max(-limit, math.Min(limit, score))
}

// ParseMove reads a move in the form "row,col".
func (s *State) ParseMove(text string) (game.Move, error) {
	parts := strings.Split(strings.TrimSpace(text), ",")
	if len(parts) != 2 {
		return nil, fmt.Errorf("expected \"row,col\", got %q", text)
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return nil, fmt.Errorf("bad row in %q: %w", text, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, fmt.Errorf("bad column in %q: %w", text, err)
	}
	return Move{Row: row, Col: col}, nil
}

func (s *State) String() string {
	var b strings.Builder
	b.WriteString(" ")
	for c := 0; c < s.cfg.Size; c++ {
		fmt.Fprintf(&b, " %d", c)
	}
	b.WriteByte('\n')
	for r := 0; r < s.cfg.Size; r++ {
		fmt.Fprintf(&b, "%d ", r)
		for c := 0; c < s.cfg.Size; c++ {
			if c > 0 {
				b.WriteByte('|')
			}
			b.WriteString(mark(s.at(r, c)))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func mark(p game.Player) string {
	switch p {
	case game.PlayerOne:
		return "X"
	case game.PlayerTwo:
		return "O"
	default:
		return " "
	}
}

// Parse builds a state from a compact board picture: one character per
// cell ('X', 'O', '.' or '_'), rows separated by '/', e.g. "XX./OO./...".
// The side to move is derived from the mark counts, X moving first.
func Parse(picture string, cfg Config) (*State, error) {
	cfg = cfg.withDefaults()
	rows := strings.Split(picture, "/")
	if len(rows) != cfg.Size {
		return nil, fmt.Errorf("expected %d rows, got %d", cfg.Size, len(rows))
	}

	s := NewState(cfg)
	xs, os := 0, 0
	for r, row := range rows {
		if len(row) != cfg.Size {
			return nil, fmt.Errorf("row %d: expected %d cells, got %d", r, cfg.Size, len(row))
		}
		for c := 0; c < len(row); c++ {
			switch row[c] {
			case 'X', 'x':
				s.cells[r*cfg.Size+c] = game.PlayerOne
				xs++
			case 'O', 'o':
				s.cells[r*cfg.Size+c] = game.PlayerTwo
				os++
			case '.', '_':
			default:
				return nil, fmt.Errorf("row %d: unknown cell %q", r, row[c])
			}
		}
	}
	if xs != os && xs != os+1 {
		return nil, fmt.Errorf("unreachable position: %d X marks vs %d O marks", xs, os)
	}
	if xs > os {
		s.player = game.PlayerTwo
	}
	return s, nil
}
