package search

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/matryer/is"

	"github.com/knightmoves/isolation/eval"
	"github.com/knightmoves/isolation/game"
)

func TestGetMoveNoLegalMoves(t *testing.T) {
	is := is.New(t)
	dead := &treeNode{active: game.Player1}

	s := new(Solver)
	is.NoErr(s.Init(eval.Mobility{}))
	m, err := s.GetMove(context.Background(), dead, func() float64 { return 1e9 })
	is.NoErr(err)
	is.True(m.IsNone())
	is.Equal(s.Nodes(), 0) // no recursive search was performed
}

func TestGetMoveImmediateTimeout(t *testing.T) {
	is := is.New(t)
	b := midgame(t)

	s := new(Solver)
	is.NoErr(s.Init(eval.Mobility{}))
	// the guard fires before depth 1 can complete, so no depth ever
	// overwrites the sentinel
	m, err := s.GetMove(context.Background(), b, func() float64 { return 0 })
	is.NoErr(err)
	is.True(m.IsNone())
}

func TestGetMoveKeepsLastCompletedDepth(t *testing.T) {
	is := is.New(t)

	// Depth 1 prefers B (shallow values 5 vs 10); the full two-ply search
	// prefers A (opponent replies leave 9 vs 1). Expiring the clock inside
	// depth 2 must leave depth 1's answer untouched.
	childA := &treeNode{active: game.Player2, children: map[game.Move]*treeNode{}}
	childB := &treeNode{active: game.Player2, children: map[game.Move]*treeNode{}}
	gcA := &treeNode{active: game.Player1}
	gcB := &treeNode{active: game.Player1}
	childA.moves[game.Player2] = []game.Move{mv(1, 0)}
	childA.children[mv(1, 0)] = gcA
	childB.moves[game.Player2] = []game.Move{mv(1, 1)}
	childB.children[mv(1, 1)] = gcB
	root := &treeNode{
		active:   game.Player1,
		moves:    [2][]game.Move{{mv(0, 0), mv(0, 1)}, nil},
		children: map[game.Move]*treeNode{mv(0, 0): childA, mv(0, 1): childB},
	}
	ev := tableEval{values: map[*treeNode]float64{
		childA: 5, childB: 10,
		gcA: 9, gcB: 1,
	}}

	s := new(Solver)
	is.NoErr(s.Init(ev))

	// sanity: with no clock pressure the deeper answer wins
	full, err := s.AlphaBeta(context.Background(), root, 2, math.Inf(-1), math.Inf(1))
	is.NoErr(err)
	is.Equal(full, mv(0, 0))

	// depth 1 costs three guard checks (top level plus two frontier
	// frames); allow five so the clock expires inside depth 2
	checks := 0
	probe := func() float64 {
		checks++
		if checks > 5 {
			return 0
		}
		return 1e6
	}
	m, err := s.GetMove(context.Background(), root, probe)
	is.NoErr(err)
	is.Equal(m, mv(0, 1))
}

func TestGetMoveOnBoard(t *testing.T) {
	is := is.New(t)
	b := midgame(t)

	s := new(Solver)
	is.NoErr(s.Init(eval.Mobility{}))

	budget := 100.0 // ms
	start := time.Now()
	probe := func() float64 {
		return budget - float64(time.Since(start).Microseconds())/1000.0
	}
	m, err := s.GetMove(context.Background(), b, probe)
	is.NoErr(err)
	is.True(!m.IsNone())
	is.True(b.IsLegalMove(b.ActivePlayer(), m))
}

func TestGetMoveAtDepthTimeout(t *testing.T) {
	is := is.New(t)
	b := midgame(t)

	s := new(Solver)
	is.NoErr(s.Init(eval.Mobility{}))

	m, err := s.GetMoveAtDepth(context.Background(), b, func() float64 { return 0 }, 3)
	is.NoErr(err)
	is.True(m.IsNone())

	m, err = s.GetMoveAtDepth(context.Background(), b, func() float64 { return 1e9 }, 3)
	is.NoErr(err)
	is.True(!m.IsNone())
}
