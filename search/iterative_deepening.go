package search

import (
	"context"
	"errors"
	"math"

	"github.com/rs/zerolog/log"

	"github.com/knightmoves/isolation/game"
)

// GetMove is the anytime move request: alpha-beta searches at depth 1, 2,
// 3, ... until the time probe runs out. Each depth that completes without a
// timeout overwrites the best-move record; a depth cut short leaves it
// untouched. There is no termination condition other than time, so the
// answer is the deepest fully-searched result the budget allowed — or the
// no-move sentinel when not even depth 1 finished.
//
// The timeout signal never escapes this driver. Any other error (a broken
// collaborator contract, a degenerate heuristic input) stops the deepening
// loop and is returned alongside the best move found so far.
func (s *Solver) GetMove(ctx context.Context, st game.State, probe TimeLeft) (game.Move, error) {
	s.InstallTimer(probe)
	s.nodes = 0

	best := game.NoMove
	if len(st.LegalMoves(st.ActivePlayer())) == 0 {
		return best, nil
	}

	for depth := 1; ; depth++ {
		s.currentIDDepth = depth
		m, err := s.AlphaBeta(ctx, st, depth, math.Inf(-1), math.Inf(1))
		if err != nil {
			if errors.Is(err, ErrSearchTimeout) {
				log.Debug().Int("depth", depth).Int("completed", depth-1).
					Msg("deepening-stopped")
				break
			}
			log.Err(err).Int("depth", depth).Msg("search-error")
			return best, err
		}
		best = m
		log.Debug().Int("depth", depth).Stringer("best", best).
			Int("nodes", s.nodes).Msg("depth-complete")
	}
	return best, nil
}
