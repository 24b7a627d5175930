package search

import (
	"context"
	"errors"
)

// ErrSearchTimeout is the cancellation signal that unwinds an in-flight
// search. It propagates through every recursive frame as an error return
// (Go's mapping of the timeout exception) and only the iterative-deepening
// driver stops on it.
var ErrSearchTimeout = errors.New("search timeout")

// TimeLeft reports the remaining move time, in milliseconds. It is queried
// fresh on every guard check, never cached, so it must be cheap and
// side-effect free.
type TimeLeft func() float64

// DeadlineGuard aborts a search when the caller's remaining time drops below
// a fixed threshold.
type DeadlineGuard struct {
	timeLeft  TimeLeft
	threshold float64
}

// NewDeadlineGuard wraps a time-remaining probe and a threshold in the same
// unit. A nil probe never fires; the context can still cancel the search.
func NewDeadlineGuard(probe TimeLeft, threshold float64) *DeadlineGuard {
	return &DeadlineGuard{timeLeft: probe, threshold: threshold}
}

// Check runs at the entry of every recursive search frame, including the
// top-level call. Context cancellation counts as a timeout: either way the
// whole search unwinds and the last completed depth's answer stands.
func (g *DeadlineGuard) Check(ctx context.Context) error {
	if ctx.Err() != nil {
		return ErrSearchTimeout
	}
	if g == nil || g.timeLeft == nil {
		return nil
	}
	if g.timeLeft() < g.threshold {
		return ErrSearchTimeout
	}
	return nil
}
