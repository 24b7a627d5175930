package game

import (
	"errors"
	"fmt"
)

// ErrIllegalMove is wrapped by every IllegalMoveError. Forecasting a move
// that did not come from LegalMoves is a contract violation by the caller;
// nothing in the engine recovers from it.
var ErrIllegalMove = errors.New("illegal move")

// IllegalMoveError reports which move was illegally forecast for which player.
type IllegalMoveError struct {
	Player Player
	Move   Move
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("illegal move %v for %v", e.Move, e.Player)
}

func (e *IllegalMoveError) Unwrap() error {
	return ErrIllegalMove
}

// State is the game-state contract the search core and the evaluators
// consume. Implementations must be immutable snapshots: Forecast and
// ForecastFor return fresh successors and never mutate the receiver.
type State interface {
	// LegalMoves enumerates the legal destinations for p. The order must be
	// stable for a given state so that the search tie-break is reproducible.
	LegalMoves(p Player) []Move
	// ActivePlayer is the player on turn.
	ActivePlayer() Player
	// Forecast applies a move for the player on turn and returns the
	// successor state.
	Forecast(m Move) (State, error)
	// ForecastFor applies a move for p even when p is not on turn. The
	// two-ply lookahead evaluator walks one player's successors without
	// alternating; Forecast is the on-turn specialization.
	ForecastFor(p Player, m Move) (State, error)
	// IsWinner and IsLoser are the terminal predicates for p.
	IsWinner(p Player) bool
	IsLoser(p Player) bool
	// Location is p's square, or NoMove before p's opening placement.
	Location(p Player) Move
}
