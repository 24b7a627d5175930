// Package eval holds the static-evaluation strategies that score
// non-terminal positions for the search core.
package eval

import (
	"errors"
	"fmt"
	"math"

	"github.com/knightmoves/isolation/game"
)

// ErrZeroDistance is returned by the proximity heuristic when both players
// report the same square. A legal position can never produce it; scoring it
// silently would corrupt move ordering with an undefined value.
var ErrZeroDistance = errors.New("players occupy the same square")

// opponentWeight penalizes the opponent's mobility more than it rewards our
// own, favoring moves that shrink the opponent's options faster than ours.
const opponentWeight = 1.5

// Evaluator scores a state from the perspective of one player. Higher is
// better for that player; +Inf is a decided win, -Inf a decided loss, and
// every other value is a relative heuristic estimate. Evaluators are pure:
// the same state always scores identically.
type Evaluator interface {
	Evaluate(s game.State, p game.Player) (float64, error)
	Name() string
}

// terminalScore collapses decided positions to ±Inf. Every strategy applies
// it before any move enumeration.
func terminalScore(s game.State, p game.Player) (float64, bool) {
	if s.IsLoser(p) {
		return math.Inf(-1), true
	}
	if s.IsWinner(p) {
		return math.Inf(1), true
	}
	return 0, false
}

// Mobility is the weighted mobility difference: own moves minus 1.5 times
// the opponent's moves.
type Mobility struct{}

func (Mobility) Name() string { return "mobility" }

func (Mobility) Evaluate(s game.State, p game.Player) (float64, error) {
	if v, done := terminalScore(s, p); done {
		return v, nil
	}
	own := len(s.LegalMoves(p))
	opp := len(s.LegalMoves(p.Other()))
	return float64(own) - opponentWeight*float64(opp), nil
}

// Proximity scales the weighted mobility difference by the Manhattan
// distance between the players, discouraging close-quarters play.
type Proximity struct{}

func (Proximity) Name() string { return "proximity" }

func (Proximity) Evaluate(s game.State, p game.Player) (float64, error) {
	if v, done := terminalScore(s, p); done {
		return v, nil
	}
	own := len(s.LegalMoves(p))
	opp := len(s.LegalMoves(p.Other()))
	diff := float64(own) - opponentWeight*float64(opp)
	dist := game.ManhattanDistance(s.Location(p), s.Location(p.Other()))
	if dist == 0 {
		return 0, ErrZeroDistance
	}
	return diff * float64(dist), nil
}

// Lookahead extends the weighted mobility difference with each player's own
// two-ply move counts: the player's mobility summed over that player's
// successors and their successors, without alternating turns. It expands at
// most branching-factor-squared extra nodes per call.
type Lookahead struct{}

func (Lookahead) Name() string { return "lookahead" }

func (Lookahead) Evaluate(s game.State, p game.Player) (float64, error) {
	if v, done := terminalScore(s, p); done {
		return v, nil
	}
	own, err := twoPlyMobility(s, p)
	if err != nil {
		return 0, err
	}
	opp, err := twoPlyMobility(s, p.Other())
	if err != nil {
		return 0, err
	}
	return float64(own) - opponentWeight*float64(opp), nil
}

// twoPlyMobility sums p's move counts over the current state, all of p's
// immediate successors, and their successors, keeping p's perspective
// throughout.
func twoPlyMobility(s game.State, p game.Player) (int, error) {
	moves := s.LegalMoves(p)
	total := len(moves)
	for _, m := range moves {
		child, err := s.ForecastFor(p, m)
		if err != nil {
			return 0, err
		}
		childMoves := child.LegalMoves(p)
		total += len(childMoves)
		for _, m2 := range childMoves {
			grandchild, err := child.ForecastFor(p, m2)
			if err != nil {
				return 0, err
			}
			total += len(grandchild.LegalMoves(p))
		}
	}
	return total, nil
}

// New returns the evaluator registered under the given name.
func New(name string) (Evaluator, error) {
	switch name {
	case "mobility":
		return Mobility{}, nil
	case "proximity":
		return Proximity{}, nil
	case "lookahead":
		return Lookahead{}, nil
	}
	return nil, fmt.Errorf("unknown evaluator %q", name)
}
