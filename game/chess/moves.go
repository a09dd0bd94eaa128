package chess

import "gambit/game"

// owns reports whether the piece belongs to the side to move.
func (s *State) owns(p Piece) bool {
	if s.player == game.PlayerOne {
		return p.white()
	}
	return p.black()
}

// hostile reports whether the piece belongs to the opponent of the side
// to move.
func (s *State) hostile(p Piece) bool {
	if s.player == game.PlayerOne {
		return p.black()
	}
	return p.white()
}

func inBoard(r, c int) bool {
	return r >= 0 && r < 8 && c >= 0 && c < 8
}

func (s *State) movesFrom(r, c int) []game.Move {
	switch s.board[r][c].kind() {
	case 'p':
		return s.pawnMoves(r, c)
	case 'n':
		return s.knightMoves(r, c)
	case 'b':
		return s.slidingMoves(r, c, diagonalDirs)
	case 'r':
		return s.slidingMoves(r, c, straightDirs)
	case 'q':
		return append(s.slidingMoves(r, c, diagonalDirs), s.slidingMoves(r, c, straightDirs)...)
	case 'k':
		return s.kingMoves(r, c)
	default:
		return nil
	}
}

func (s *State) pawnMoves(r, c int) []game.Move {
	var moves []game.Move
	from := Square{Row: r, Col: c}

	// White pawns move up the board (towards row 0), black pawns down.
	dir := -1
	startRow := 6
	if s.player == game.PlayerTwo {
		dir = 1
		startRow = 1
	}

	if inBoard(r+dir, c) && s.board[r+dir][c] == Empty {
		moves = append(moves, Move{From: from, To: Square{Row: r + dir, Col: c}})
		if r == startRow && s.board[r+2*dir][c] == Empty {
			moves = append(moves, Move{From: from, To: Square{Row: r + 2*dir, Col: c}})
		}
	}

	for _, dc := range []int{-1, 1} {
		nr, nc := r+dir, c+dc
		if inBoard(nr, nc) && s.hostile(s.board[nr][nc]) {
			moves = append(moves, Move{From: from, To: Square{Row: nr, Col: nc}})
		}
	}
	return moves
}

var knightJumps = [8][2]int{
	{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
	{1, -2}, {1, 2}, {2, -1}, {2, 1},
}

func (s *State) knightMoves(r, c int) []game.Move {
	var moves []game.Move
	from := Square{Row: r, Col: c}
	for _, jump := range knightJumps {
		nr, nc := r+jump[0], c+jump[1]
		if !inBoard(nr, nc) {
			continue
		}
		if target := s.board[nr][nc]; target == Empty || s.hostile(target) {
			moves = append(moves, Move{From: from, To: Square{Row: nr, Col: nc}})
		}
	}
	return moves
}

var (
	diagonalDirs = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
)

func (s *State) slidingMoves(r, c int, dirs [4][2]int) []game.Move {
	var moves []game.Move
	from := Square{Row: r, Col: c}
	for _, dir := range dirs {
		for i := 1; i < 8; i++ {
			nr, nc := r+i*dir[0], c+i*dir[1]
			if !inBoard(nr, nc) {
				break
			}
			target := s.board[nr][nc]
			if target == Empty {
				moves = append(moves, Move{From: from, To: Square{Row: nr, Col: nc}})
				continue
			}
			if s.hostile(target) {
				moves = append(moves, Move{From: from, To: Square{Row: nr, Col: nc}})
			}
			break
		}
	}
	return moves
}

var kingSteps = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

func (s *State) kingMoves(r, c int) []game.Move {
	var moves []game.Move
	from := Square{Row: r, Col: c}
	for _, step := range kingSteps {
		nr, nc := r+step[0], c+step[1]
		if !inBoard(nr, nc) {
			continue
		}
		if target := s.board[nr][nc]; target == Empty || s.hostile(target) {
			moves = append(moves, Move{From: from, To: Square{Row: nr, Col: nc}})
		}
	}

	// Simplified castling: an unmoved king and rook with a clear path
	// between them. The king is not tested for passing through check.
	if s.player == game.PlayerOne && !s.rights.whiteKing {
		if !s.rights.whiteRooks[1] && s.clear(7, 5, 6) {
			moves = append(moves, Move{From: from, To: Square{Row: 7, Col: 6}})
		}
		if !s.rights.whiteRooks[0] && s.clear(7, 1, 3) {
			moves = append(moves, Move{From: from, To: Square{Row: 7, Col: 2}})
		}
	} else if s.player == game.PlayerTwo && !s.rights.blackKing {
		if !s.rights.blackRooks[1] && s.clear(0, 5, 6) {
			moves = append(moves, Move{From: from, To: Square{Row: 0, Col: 6}})
		}
		if !s.rights.blackRooks[0] && s.clear(0, 1, 3) {
			moves = append(moves, Move{From: from, To: Square{Row: 0, Col: 2}})
		}
	}
	return moves
}

// clear reports whether every square on row between cols from and to
// (inclusive) is empty.
func (s *State) clear(row, from, to int) bool {
	for c := from; c <= to; c++ {
		if s.board[row][c] != Empty {
			return false
		}
	}
	return true
}
