// Package search implements depth-limited minimax, alpha-beta pruning and
// an iterative-deepening driver with cooperative time-based cancellation.
package search

import (
	"errors"

	"github.com/knightmoves/isolation/eval"
	"github.com/knightmoves/isolation/game"
)

// DefaultTimeoutThreshold is the remaining-time floor, in milliseconds,
// below which a running search is abandoned.
const DefaultTimeoutThreshold = 10.0

// Solver explores the game tree for the player on turn at the root. It is
// single-threaded and synchronous: states are immutable snapshots, every
// recursive frame owns its own forecast chain, and nothing is shared
// between branches.
type Solver struct {
	evaluator eval.Evaluator
	guard     *DeadlineGuard
	threshold float64

	// maximizer is the player the search is run for; every frontier
	// evaluation uses this perspective.
	maximizer game.Player

	currentIDDepth int
	nodes          int
}

// Init initializes the solver with an evaluation strategy.
func (s *Solver) Init(ev eval.Evaluator) error {
	if ev == nil {
		return errors.New("an evaluator is required")
	}
	s.evaluator = ev
	s.threshold = DefaultTimeoutThreshold
	return nil
}

// SetTimeoutThreshold overrides the remaining-time floor, in the same unit
// as the time-left probe.
func (s *Solver) SetTimeoutThreshold(ms float64) {
	s.threshold = ms
}

// InstallTimer installs the caller's time-remaining probe for subsequent
// searches. A nil probe removes any time limit.
func (s *Solver) InstallTimer(probe TimeLeft) {
	s.guard = NewDeadlineGuard(probe, s.threshold)
}

// Nodes returns how many search frames were expanded by the last top-level
// call.
func (s *Solver) Nodes() int {
	return s.nodes
}
