package search

import (
	"context"
	"errors"
	"math"

	"github.com/knightmoves/isolation/game"
)

// Minimax runs a depth-limited minimax search and returns the best move for
// the player on turn. Depth 0 at the top level means no search is performed
// and the no-move sentinel is returned. Ties keep the first-seen move; move
// enumeration order is the state's stable order, so results are
// reproducible.
func (s *Solver) Minimax(ctx context.Context, st game.State, depth int) (game.Move, error) {
	if err := s.guard.Check(ctx); err != nil {
		return game.NoMove, err
	}
	s.maximizer = st.ActivePlayer()
	s.nodes = 0
	if depth <= 0 {
		return game.NoMove, nil
	}

	best := game.NoMove
	value := math.Inf(-1)
	for _, m := range st.LegalMoves(st.ActivePlayer()) {
		child, err := st.Forecast(m)
		if err != nil {
			return game.NoMove, err
		}
		v, err := s.minValue(ctx, child, depth-1)
		if err != nil {
			return game.NoMove, err
		}
		if best.IsNone() || v > value {
			best, value = m, v
		}
	}
	return best, nil
}

// GetMoveAtDepth is the fixed-depth move request: one minimax pass at the
// configured depth under the caller's time probe. A timeout yields the
// sentinel rather than an error; there is no earlier iteration to fall
// back on.
func (s *Solver) GetMoveAtDepth(ctx context.Context, st game.State, probe TimeLeft, depth int) (game.Move, error) {
	s.InstallTimer(probe)
	m, err := s.Minimax(ctx, st, depth)
	if errors.Is(err, ErrSearchTimeout) {
		return game.NoMove, nil
	}
	return m, err
}

func (s *Solver) minValue(ctx context.Context, st game.State, depth int) (float64, error) {
	if err := s.guard.Check(ctx); err != nil {
		return 0, err
	}
	s.nodes++
	moves := st.LegalMoves(st.ActivePlayer())
	// An exhausted layer is evaluated in place, like the depth frontier.
	if depth == 0 || len(moves) == 0 {
		return s.evaluator.Evaluate(st, s.maximizer)
	}
	value := math.Inf(1)
	for _, m := range moves {
		child, err := st.Forecast(m)
		if err != nil {
			return 0, err
		}
		v, err := s.maxValue(ctx, child, depth-1)
		if err != nil {
			return 0, err
		}
		if v < value {
			value = v
		}
	}
	return value, nil
}

func (s *Solver) maxValue(ctx context.Context, st game.State, depth int) (float64, error) {
	if err := s.guard.Check(ctx); err != nil {
		return 0, err
	}
	s.nodes++
	moves := st.LegalMoves(st.ActivePlayer())
	if depth == 0 || len(moves) == 0 {
		return s.evaluator.Evaluate(st, s.maximizer)
	}
	value := math.Inf(-1)
	for _, m := range moves {
		child, err := st.Forecast(m)
		if err != nil {
			return 0, err
		}
		v, err := s.minValue(ctx, child, depth-1)
		if err != nil {
			return 0, err
		}
		if v > value {
			value = v
		}
	}
	return value, nil
}
