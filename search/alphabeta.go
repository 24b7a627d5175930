package search

import (
	"context"
	"math"

	"github.com/knightmoves/isolation/game"
)

// thanks Wikipedia:
/**function alphabeta(node, depth, α, β, maximizingPlayer) is
    if depth = 0 or node is a terminal node then
        return the heuristic value of node
    if maximizingPlayer then
        value := −∞
        for each child of node do
            value := max(value, alphabeta(child, depth − 1, α, β, FALSE))
            α := max(α, value)
            if α ≥ β then
                break (* β cut-off *)
        return value
    else
        value := +∞
        for each child of node do
            value := min(value, alphabeta(child, depth − 1, α, β, TRUE))
            β := min(β, value)
            if α ≥ β then
                break (* α cut-off *)
        return value
(* Initial call *)
alphabeta(origin, depth, −∞, +∞, TRUE)
**/

// AlphaBeta runs a depth-limited search with alpha-beta pruning and returns
// the best move for the player on turn. The caller's bounds flow through
// the whole recursion; they are never reset inside nested calls. A common
// variant of this routine resets both bounds at the top of the call and
// threads only one of them downward, which degrades to plain minimax with
// extra bookkeeping; this implementation deliberately does the textbook
// bound threading. Both are value-equivalent for the chosen move, and the
// tie-break matches Minimax exactly: strict inequality, first seen wins.
func (s *Solver) AlphaBeta(ctx context.Context, st game.State, depth int, α, β float64) (game.Move, error) {
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
		v, err := s.minABValue(ctx, child, depth-1, α, β)
		if err != nil {
			return game.NoMove, err
		}
		if best.IsNone() || v > value {
			best, value = m, v
		}
		if value >= β {
			return best, nil // β cut-off
		}
		α = max(α, value)
	}
	return best, nil
}

func (s *Solver) maxABValue(ctx context.Context, st game.State, depth int, α, β float64) (float64, error) {
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
		v, err := s.minABValue(ctx, child, depth-1, α, β)
		if err != nil {
			return 0, err
		}
		if v > value {
			value = v
		}
		if value >= β {
			return value, nil // β cut-off; still a valid bound for the parent
		}
		α = max(α, value)
	}
	return value, nil
}

func (s *Solver) minABValue(ctx context.Context, st game.State, depth int, α, β float64) (float64, error) {
	if err := s.guard.Check(ctx); err != nil {
		return 0, err
	}
	s.nodes++
	moves := st.LegalMoves(st.ActivePlayer())
	if depth == 0 || len(moves) == 0 {
		return s.evaluator.Evaluate(st, s.maximizer)
	}
	value := math.Inf(1)
	for _, m := range moves {
		child, err := st.Forecast(m)
		if err != nil {
			return 0, err
		}
		v, err := s.maxABValue(ctx, child, depth-1, α, β)
		if err != nil {
			return 0, err
		}
		if v < value {
			value = v
		}
		if value <= α {
			return value, nil // α cut-off
		}
		β = min(β, value)
	}
	return value, nil
}
