// Package game defines the contract between a two-player perfect-information
// game and the agents that play it. The searcher only ever sees these
// interfaces, so adding a new game means implementing State, not touching
// the search.
package game

// Move is a game-specific move value. Concrete games define their own move
// types; agents treat moves as opaque tokens drawn from LegalMoves.
type Move interface {
	String() string
}

// State is a snapshot of a game in progress. States are immutable: Play
// returns a new State and never modifies the receiver, so a searcher can
// hold any number of positions at once without undo bookkeeping.
type State interface {
	// Player returns the side whose turn it is.
	Player() Player

	// LegalMoves returns every playable move in a stable deterministic
	// order (board-scan order). Terminal states return an empty slice.
	LegalMoves() []Move

	// Play applies a move and returns the resulting state with the turn
	// advanced to the other side. It returns an IllegalMoveError if the
	// move is out of bounds, targets an occupied cell, or is not this
	// game's move type.
	Play(Move) (State, error)

	// Terminal reports whether the game is decided (won or drawn).
	Terminal() bool

	// Outcome returns the result of the game so far. It is called at
	// every search-tree node, so it has to be cheap.
	Outcome() Outcome

	// Evaluate scores the state from the given player's perspective.
	// Won states score strictly higher than any undecided state, lost
	// states strictly lower, and Evaluate(p) == -Evaluate(p.Other())
	// whenever the state is decided.
	Evaluate(perspective Player) float64
}

// MoveParser is implemented by games whose moves have a native text form,
// such as "1,2" for tic-tac-toe or "e2e4" for chess. Drivers fall back to
// offering moves by number when a game has no parser.
type MoveParser interface {
	ParseMove(text string) (Move, error)
}
