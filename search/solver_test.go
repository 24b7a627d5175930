package search

import (
	"context"
	"math"
	"os"
	"testing"

	"github.com/matryer/is"
	"github.com/rs/zerolog"

	"github.com/knightmoves/isolation/eval"
	"github.com/knightmoves/isolation/game"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	os.Exit(m.Run())
}

// treeNode is a canned game-state collaborator for synthetic trees. Moves
// are enumerated in insertion order, so tie-break expectations are exact.
type treeNode struct {
	active   game.Player
	moves    [2][]game.Move
	children map[game.Move]*treeNode
	locs     [2]game.Move
	loser    [2]bool
	winner   [2]bool
}

func (n *treeNode) LegalMoves(p game.Player) []game.Move { return n.moves[p] }
func (n *treeNode) ActivePlayer() game.Player            { return n.active }
func (n *treeNode) Location(p game.Player) game.Move     { return n.locs[p] }
func (n *treeNode) IsWinner(p game.Player) bool          { return n.winner[p] }
func (n *treeNode) IsLoser(p game.Player) bool           { return n.loser[p] }

func (n *treeNode) Forecast(m game.Move) (game.State, error) {
	return n.ForecastFor(n.active, m)
}

func (n *treeNode) ForecastFor(p game.Player, m game.Move) (game.State, error) {
	if c := n.children[m]; c != nil {
		return c, nil
	}
	return nil, &game.IllegalMoveError{Player: p, Move: m}
}

// tableEval scores stub states from a lookup table.
type tableEval struct {
	values map[*treeNode]float64
}

func (e tableEval) Name() string { return "table" }

func (e tableEval) Evaluate(s game.State, p game.Player) (float64, error) {
	return e.values[s.(*treeNode)], nil
}

func mv(r, c int) game.Move { return game.Move{Row: r, Col: c} }

// buildTree wires a root with one stub child per value list entry; each
// child gets one grandchild per nested value.
func buildTree(leafValues [][]float64) (*treeNode, tableEval) {
	values := map[*treeNode]float64{}
	root := &treeNode{active: game.Player1, children: map[game.Move]*treeNode{}}
	for i, branch := range leafValues {
		m := mv(0, i)
		child := &treeNode{active: game.Player2, children: map[game.Move]*treeNode{}}
		for j, v := range branch {
			lm := mv(1, j)
			leaf := &treeNode{active: game.Player1}
			values[leaf] = v
			child.children[lm] = leaf
			child.moves[game.Player2] = append(child.moves[game.Player2], lm)
		}
		root.children[m] = child
		root.moves[game.Player1] = append(root.moves[game.Player1], m)
	}
	return root, tableEval{values: values}
}

func midgame(t *testing.T) *game.Board {
	t.Helper()
	b, err := game.NewBoard(game.DefaultDim, game.DefaultDim)
	if err != nil {
		t.Fatal(err)
	}
	st, err := b.Forecast(mv(3, 3))
	if err != nil {
		t.Fatal(err)
	}
	st, err = st.Forecast(mv(0, 0))
	if err != nil {
		t.Fatal(err)
	}
	return st.(*game.Board)
}

func TestPruningSoundness(t *testing.T) {
	is := is.New(t)
	// Depth 2, branching factor 3, fixed leaf values. The root value under
	// alpha-beta must equal full minimax; pruning cuts volume, never
	// correctness.
	root, ev := buildTree([][]float64{{3, 12, 8}, {2, 4, 6}, {14, 5, 2}})

	s := new(Solver)
	is.NoErr(s.Init(ev))
	ctx := context.Background()

	s.nodes = 0
	vMM, err := s.maxValue(ctx, root, 2)
	is.NoErr(err)
	mmNodes := s.nodes

	s.nodes = 0
	vAB, err := s.maxABValue(ctx, root, 2, math.Inf(-1), math.Inf(1))
	is.NoErr(err)
	abNodes := s.nodes

	is.Equal(vMM, float64(3))
	is.Equal(vAB, vMM)
	is.True(abNodes < mmNodes) // this tree admits real cutoffs

	// and both front ends choose the same first-seen best move
	mmMove, err := s.Minimax(ctx, root, 2)
	is.NoErr(err)
	abMove, err := s.AlphaBeta(ctx, root, 2, math.Inf(-1), math.Inf(1))
	is.NoErr(err)
	is.Equal(mmMove, mv(0, 0))
	is.Equal(abMove, mmMove)
}

func TestMinimaxAlphaBetaAgreeOnBoard(t *testing.T) {
	is := is.New(t)
	b := midgame(t)

	s := new(Solver)
	is.NoErr(s.Init(eval.Mobility{}))
	ctx := context.Background()

	mmMove, err := s.Minimax(ctx, b, 3)
	is.NoErr(err)
	abMove, err := s.AlphaBeta(ctx, b, 3, math.Inf(-1), math.Inf(1))
	is.NoErr(err)
	is.Equal(mmMove, abMove)

	vMM, err := s.maxValue(ctx, b, 3)
	is.NoErr(err)
	vAB, err := s.maxABValue(ctx, b, 3, math.Inf(-1), math.Inf(1))
	is.NoErr(err)
	is.Equal(vMM, vAB)
}

// The 3x3 scenario: the side to move has two candidate placements; the
// mobility heuristic at depth 1 must pick the one maximizing
// own - 1.5*opp after the move, first seen winning ties.
func TestDepthOneMobilityChoice(t *testing.T) {
	is := is.New(t)

	child := func(own, opp int) *treeNode {
		n := &treeNode{active: game.Player2}
		for i := 0; i < own; i++ {
			n.moves[game.Player1] = append(n.moves[game.Player1], mv(5, i))
		}
		for i := 0; i < opp; i++ {
			n.moves[game.Player2] = append(n.moves[game.Player2], mv(6, i))
		}
		return n
	}

	s := new(Solver)
	is.NoErr(s.Init(eval.Mobility{}))
	ctx := context.Background()

	// candidate 1 leaves us 2 v 1 (score 0.5), candidate 2 leaves 3 v 2
	// (score 0); candidate 1 wins
	root := &treeNode{
		active: game.Player1,
		moves:  [2][]game.Move{{mv(0, 1), mv(1, 0)}, {mv(2, 2)}},
		children: map[game.Move]*treeNode{
			mv(0, 1): child(2, 1),
			mv(1, 0): child(3, 2),
		},
	}
	m, err := s.Minimax(ctx, root, 1)
	is.NoErr(err)
	is.Equal(m, mv(0, 1))

	// identical scores: the first-seen candidate must win the tie
	root.children[mv(1, 0)] = child(2, 1)
	m, err = s.Minimax(ctx, root, 1)
	is.NoErr(err)
	is.Equal(m, mv(0, 1))
}

func TestTopLevelDepthZero(t *testing.T) {
	is := is.New(t)
	s := new(Solver)
	is.NoErr(s.Init(eval.Mobility{}))
	m, err := s.Minimax(context.Background(), midgame(t), 0)
	is.NoErr(err)
	is.True(m.IsNone())
}

func TestEvaluatorErrorPropagates(t *testing.T) {
	is := is.New(t)
	// both players on the same square: the proximity heuristic must refuse
	sq := mv(2, 2)
	leaf := &treeNode{active: game.Player2, locs: [2]game.Move{sq, sq},
		moves: [2][]game.Move{{mv(0, 0)}, {mv(1, 1)}}}
	root := &treeNode{
		active:   game.Player1,
		moves:    [2][]game.Move{{mv(0, 1)}, nil},
		children: map[game.Move]*treeNode{mv(0, 1): leaf},
	}

	s := new(Solver)
	is.NoErr(s.Init(eval.Proximity{}))
	_, err := s.Minimax(context.Background(), root, 1)
	is.True(err != nil)
	is.True(err == eval.ErrZeroDistance)
}
