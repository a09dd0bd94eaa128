// Package chess implements a simplified chess variant behind the
// game.State contract: pseudo-legal piece movement, simplified castling,
// and a win by capturing the king. There is no check or checkmate
// detection, no en passant, and no promotion. PlayerOne is white.
package chess

import (
	"fmt"
	"strings"

	"gambit/game"
)

const DefaultWinScore = 1000

// Piece is a single board cell: uppercase for white, lowercase for black,
// Empty for a vacant square.
type Piece byte

const Empty Piece = '.'

func (p Piece) white() bool { return p >= 'A' && p <= 'Z' }
func (p Piece) black() bool { return p >= 'a' && p <= 'z' }

// kind folds both colors to the lowercase piece letter.
func (p Piece) kind() byte {
	if p.white() {
		return byte(p) + ('a' - 'A')
	}
	return byte(p)
}

func (p Piece) value() float64 {
	switch p.kind() {
	case 'p':
		return 1
	case 'n', 'b':
		return 3
	case 'r':
		return 5
	case 'q':
		return 9
	case 'k':
		return 100
	default:
		return 0
	}
}

// Square addresses a board cell. Row 0 is rank 8, so white's back rank is
// row 7.
type Square struct {
	Row, Col int
}

func (sq Square) String() string {
	return fmt.Sprintf("%c%d", 'a'+sq.Col, 8-sq.Row)
}

func parseSquare(text string) (Square, error) {
	if len(text) != 2 || text[0] < 'a' || text[0] > 'h' || text[1] < '1' || text[1] > '8' {
		return Square{}, fmt.Errorf("bad square %q", text)
	}
	return Square{Row: 8 - int(text[1]-'0'), Col: int(text[0] - 'a')}, nil
}

// Move relocates the piece on From to To.
type Move struct {
	From, To Square
}

func (m Move) String() string {
	return m.From.String() + m.To.String()
}

// rights tracks which castling pieces have moved. Rook indices are
// queenside, kingside.
type rights struct {
	whiteKing  bool
	blackKing  bool
	whiteRooks [2]bool
	blackRooks [2]bool
}

// Config carries the construction-time scoring constant.
type Config struct {
	WinScore float64
}

func (c Config) withDefaults() Config {
	if c.WinScore <= 0 {
		c.WinScore = DefaultWinScore
	}
	return c
}

// State is an immutable position snapshot. The board and castling rights
// are value types, so Play copies the whole state in one assignment.
type State struct {
	cfg    Config
	board  [8][8]Piece
	player game.Player
	rights rights
}

// NewState returns the standard starting position with white to move.
func NewState(cfg Config) *State {
	s := &State{cfg: cfg.withDefaults(), player: game.PlayerOne}
	setup := []string{
		"rnbqkbnr",
		"pppppppp",
		"........",
		"........",
		"........",
		"........",
		"PPPPPPPP",
		"RNBQKBNR",
	}
	for r, row := range setup {
		for c := 0; c < 8; c++ {
			s.board[r][c] = Piece(row[c])
		}
	}
	return s
}

func (s *State) Player() game.Player {
	return s.player
}

func (s *State) at(sq Square) Piece {
	return s.board[sq.Row][sq.Col]
}

// LegalMoves generates the current side's pseudo-legal moves in board-scan
// order. Terminal states return an empty slice.
func (s *State) LegalMoves() []game.Move {
	if s.Outcome().Decided() {
		return nil
	}
	return s.pseudoMoves()
}

// pseudoMoves lists moves without consulting Outcome, which needs the raw
// move count for its stalemate check.
func (s *State) pseudoMoves() []game.Move {
	var moves []game.Move
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			if s.owns(s.board[r][c]) {
				moves = append(moves, s.movesFrom(r, c)...)
			}
		}
	}
	return moves
}

func (s *State) Play(mv game.Move) (game.State, error) {
	m, ok := mv.(Move)
	if !ok {
		return nil, &game.IllegalMoveError{Move: mv, Reason: "not a chess move"}
	}
	legal := false
	for _, lm := range s.LegalMoves() {
		if lm == game.Move(m) {
			legal = true
			break
		}
	}
	if !legal {
		return nil, &game.IllegalMoveError{Move: mv, Reason: "not a legal move"}
	}

	next := *s
	next.player = s.player.Other()
	piece := next.at(m.From)

	// A king or rook leaving its home square forfeits the castling right.
	switch piece {
	case 'K':
		next.rights.whiteKing = true
	case 'k':
		next.rights.blackKing = true
	case 'R':
		if m.From.Row == 7 && m.From.Col == 0 {
			next.rights.whiteRooks[0] = true
		} else if m.From.Row == 7 && m.From.Col == 7 {
			next.rights.whiteRooks[1] = true
		}
	case 'r':
		if m.From.Row == 0 && m.From.Col == 0 {
			next.rights.blackRooks[0] = true
		} else if m.From.Row == 0 && m.From.Col == 7 {
			next.rights.blackRooks[1] = true
		}
	}

	// A king travelling two files is castling; bring the rook across.
	if piece.kind() == 'k' && abs(m.From.Col-m.To.Col) > 1 {
		row := m.From.Row
		switch m.To.Col {
		case 6:
			next.board[row][5] = next.board[row][7]
			next.board[row][7] = Empty
		case 2:
			next.board[row][3] = next.board[row][0]
			next.board[row][0] = Empty
		}
	}

	next.board[m.To.Row][m.To.Col] = piece
	next.board[m.From.Row][m.From.Col] = Empty
	return &next, nil
}

func (s *State) Terminal() bool {
	return s.Outcome().Decided()
}

// Outcome declares a win as soon as a king is off the board, and a draw
// when the side to move has no moves at all.
func (s *State) Outcome() game.Outcome {
	whiteKing, blackKing := false, false
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			switch s.board[r][c] {
			case 'K':
				whiteKing = true
			case 'k':
				blackKing = true
			}
		}
	}
	if !whiteKing {
		return game.WonBy(game.PlayerTwo)
	}
	if !blackKing {
		return game.WonBy(game.PlayerOne)
	}
	if len(s.pseudoMoves()) == 0 {
		return game.Draw
	}
	return game.StillOngoing
}

// Evaluate scores decided states at ±WinScore and undecided states by
// material difference (pawn 1, knight/bishop 3, rook 5, queen 9). Both
// kings are on the board in any undecided state, so the material span
// stays well inside the win score.
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

	material := 0.0
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			p := s.board[r][c]
			if p.white() {
				material += p.value()
			} else if p.black() {
				material -= p.value()
			}
		}
	}
	if perspective == game.PlayerTwo {
		material = -material
	}
	return material
}

// ParseMove reads a move as a source and destination square, e.g. "e2e4".
func (s *State) ParseMove(text string) (game.Move, error) {
	text = strings.TrimSpace(text)
	if len(text) != 4 {
		return nil, fmt.Errorf("expected a move like \"e2e4\", got %q", text)
	}
	from, err := parseSquare(text[:2])
	if err != nil {
		return nil, err
	}
	to, err := parseSquare(text[2:])
	if err != nil {
		return nil, err
	}
	return Move{From: from, To: to}, nil
}

func (s *State) String() string {
	var b strings.Builder
	b.WriteString("  a b c d e f g h\n")
	for r := 0; r < 8; r++ {
		fmt.Fprintf(&b, "%d ", 8-r)
		for c := 0; c < 8; c++ {
			b.WriteByte(byte(s.board[r][c]))
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d\n", 8-r)
	}
	b.WriteString("  a b c d e f g h\n")
	return b.String()
}

// Parse builds a state from a board picture: eight '/'-separated rows of
// eight piece letters ('.' for empty), row 0 first (rank 8). Castling
// rights are granted only to kings and rooks still on their home squares.
func Parse(picture string, toMove game.Player, cfg Config) (*State, error) {
	rows := strings.Split(picture, "/")
	if len(rows) != 8 {
		return nil, fmt.Errorf("expected 8 rows, got %d", len(rows))
	}
	s := &State{cfg: cfg.withDefaults(), player: toMove}
	for r, row := range rows {
		if len(row) != 8 {
			return nil, fmt.Errorf("row %d: expected 8 cells, got %d", r, len(row))
		}
		for c := 0; c < 8; c++ {
			p := Piece(row[c])
			if p != Empty && !strings.ContainsRune("PNBRQKpnbrqk", rune(p)) {
				return nil, fmt.Errorf("row %d: unknown piece %q", r, row[c])
			}
			s.board[r][c] = p
		}
	}
	s.rights = rights{
		whiteKing:  s.board[7][4] != 'K',
		blackKing:  s.board[0][4] != 'k',
		whiteRooks: [2]bool{s.board[7][0] != 'R', s.board[7][7] != 'R'},
		blackRooks: [2]bool{s.board[0][0] != 'r', s.board[0][7] != 'r'},
	}
	return s, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
