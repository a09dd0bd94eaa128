package game

import "fmt"

// IllegalMoveError reports a move that cannot be applied to a state.
// Agents only play moves drawn from LegalMoves, so this error surfacing
// from inside a search is a contract violation, not a runtime condition.
type IllegalMoveError struct {
	Move   Move
	Reason string
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("illegal move %s: %s", e.Move, e.Reason)
}
