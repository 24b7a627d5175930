// Package player wraps the search core into playing agents for the match
// harness and the shell.
package player

import (
	"context"
	"fmt"

	"lukechampine.com/frand"

	"github.com/knightmoves/isolation/eval"
	"github.com/knightmoves/isolation/game"
	"github.com/knightmoves/isolation/search"
)

// Agent picks a move for the player on turn within the caller's time
// budget. The sentinel move means the agent found nothing, which forfeits
// the game.
type Agent interface {
	BestMove(ctx context.Context, st game.State, timeLeft search.TimeLeft) (game.Move, error)
	Name() string
}

// AlphaBetaAgent runs iterative-deepening alpha-beta until time runs out.
type AlphaBetaAgent struct {
	solver *search.Solver
	name   string
}

// NewAlphaBeta builds the anytime agent with the given evaluation strategy.
func NewAlphaBeta(ev eval.Evaluator, timeoutThreshold float64) (*AlphaBetaAgent, error) {
	s := new(search.Solver)
	if err := s.Init(ev); err != nil {
		return nil, err
	}
	s.SetTimeoutThreshold(timeoutThreshold)
	return &AlphaBetaAgent{
		solver: s,
		name:   fmt.Sprintf("ab-%s", ev.Name()),
	}, nil
}

func (a *AlphaBetaAgent) Name() string { return a.name }

func (a *AlphaBetaAgent) BestMove(ctx context.Context, st game.State, timeLeft search.TimeLeft) (game.Move, error) {
	return a.solver.GetMove(ctx, st, timeLeft)
}

// MinimaxAgent searches to a fixed depth with plain minimax. If the clock
// expires mid-search it forfeits: there is no shallower iteration to fall
// back on.
type MinimaxAgent struct {
	solver *search.Solver
	depth  int
	name   string
}

// NewMinimax builds the fixed-depth agent.
func NewMinimax(ev eval.Evaluator, depth int, timeoutThreshold float64) (*MinimaxAgent, error) {
	if depth < 1 {
		return nil, fmt.Errorf("search depth must be at least 1, got %d", depth)
	}
	s := new(search.Solver)
	if err := s.Init(ev); err != nil {
		return nil, err
	}
	s.SetTimeoutThreshold(timeoutThreshold)
	return &MinimaxAgent{
		solver: s,
		depth:  depth,
		name:   fmt.Sprintf("mm-%s-d%d", ev.Name(), depth),
	}, nil
}

func (a *MinimaxAgent) Name() string { return a.name }

func (a *MinimaxAgent) BestMove(ctx context.Context, st game.State, timeLeft search.TimeLeft) (game.Move, error) {
	return a.solver.GetMoveAtDepth(ctx, st, timeLeft, a.depth)
}

// RandomAgent plays a uniformly random legal move. It is the baseline
// opponent for benchmark matches.
type RandomAgent struct{}

func (RandomAgent) Name() string { return "random" }

func (RandomAgent) BestMove(ctx context.Context, st game.State, timeLeft search.TimeLeft) (game.Move, error) {
	moves := st.LegalMoves(st.ActivePlayer())
	if len(moves) == 0 {
		return game.NoMove, nil
	}
	return moves[frand.Intn(len(moves))], nil
}

// New builds an agent from a spec string: "random", "mm-<evaluator>" or
// "ab-<evaluator>", e.g. "ab-mobility".
func New(spec string, searchDepth int, timeoutThreshold float64) (Agent, error) {
	if spec == "random" {
		return RandomAgent{}, nil
	}
	if len(spec) > 3 && spec[:3] == "ab-" {
		ev, err := eval.New(spec[3:])
		if err != nil {
			return nil, err
		}
		return NewAlphaBeta(ev, timeoutThreshold)
	}
	if len(spec) > 3 && spec[:3] == "mm-" {
		ev, err := eval.New(spec[3:])
		if err != nil {
			return nil, err
		}
		return NewMinimax(ev, searchDepth, timeoutThreshold)
	}
	return nil, fmt.Errorf("unknown agent spec %q", spec)
}
