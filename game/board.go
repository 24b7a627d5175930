package game

import (
	"errors"
	"sync"

	"github.com/knightmoves/isolation/zobrist"
)

const (
	// DefaultDim is the side length of a standard Isolation board.
	DefaultDim = 7
)

// Players move like chess knights. The offset order fixes the legal-move
// enumeration order, which the search tie-break depends on.
var knightOffsets = [8][2]int{
	{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
	{1, -2}, {1, 2}, {2, -1}, {2, 1},
}

// One shared key table per board size, so that positions of equal dimensions
// hash into the same space across games.
var (
	ztablesMu sync.Mutex
	ztables   = map[[2]int]*zobrist.Zobrist{}
)

func ztableFor(width, height int) *zobrist.Zobrist {
	ztablesMu.Lock()
	defer ztablesMu.Unlock()
	key := [2]int{width, height}
	z, ok := ztables[key]
	if !ok {
		z = &zobrist.Zobrist{}
		z.Initialize(width * height)
		ztables[key] = z
	}
	return z
}

// Board is an immutable Isolation position. Every square a player has ever
// stood on is blocked, including both current squares. Forecast copies; a
// Board is never mutated after construction.
type Board struct {
	width, height int
	blocked       []bool
	locs          [2]Move
	onTurn        Player
	moveCount     int
	hash          uint64
	z             *zobrist.Zobrist
}

// NewBoard creates an empty width×height board with both players unplaced
// and Player1 on turn.
func NewBoard(width, height int) (*Board, error) {
	if width < 3 || height < 3 {
		return nil, errors.New("board must be at least 3x3")
	}
	b := &Board{
		width:   width,
		height:  height,
		blocked: make([]bool, width*height),
		locs:    [2]Move{NoMove, NoMove},
		onTurn:  Player1,
		z:       ztableFor(width, height),
	}
	return b, nil
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

// MoveCount is the number of on-turn moves applied since the opening.
func (b *Board) MoveCount() int { return b.moveCount }

// Hash is the zobrist hash of this position, maintained incrementally.
func (b *Board) Hash() uint64 { return b.hash }

func (b *Board) ActivePlayer() Player { return b.onTurn }

func (b *Board) Location(p Player) Move { return b.locs[p] }

func (b *Board) cell(m Move) int {
	return m.Row*b.width + m.Col
}

func (b *Board) inBounds(m Move) bool {
	return m.Row >= 0 && m.Row < b.height && m.Col >= 0 && m.Col < b.width
}

// LegalMoves enumerates p's legal destinations: every open square before
// p's opening placement, knight moves from p's square afterwards. The order
// is stable for a given state.
func (b *Board) LegalMoves(p Player) []Move {
	loc := b.locs[p]
	if loc.IsNone() {
		moves := make([]Move, 0, b.width*b.height)
		for r := 0; r < b.height; r++ {
			for c := 0; c < b.width; c++ {
				m := Move{r, c}
				if !b.blocked[b.cell(m)] {
					moves = append(moves, m)
				}
			}
		}
		return moves
	}
	moves := make([]Move, 0, len(knightOffsets))
	for _, off := range knightOffsets {
		m := Move{loc.Row + off[0], loc.Col + off[1]}
		if b.inBounds(m) && !b.blocked[b.cell(m)] {
			moves = append(moves, m)
		}
	}
	return moves
}

// IsLegalMove reports whether m is currently legal for p.
func (b *Board) IsLegalMove(p Player, m Move) bool {
	if m.IsNone() || !b.inBounds(m) || b.blocked[b.cell(m)] {
		return false
	}
	loc := b.locs[p]
	if loc.IsNone() {
		return true
	}
	dr, dc := abs(m.Row-loc.Row), abs(m.Col-loc.Col)
	return (dr == 1 && dc == 2) || (dr == 2 && dc == 1)
}

// Forecast applies a move for the player on turn and returns the successor.
func (b *Board) Forecast(m Move) (State, error) {
	return b.ForecastFor(b.onTurn, m)
}

// ForecastFor applies a move for p. When p is on turn the turn passes to the
// opponent; an off-turn forecast (the lookahead evaluator's same-player
// expansion) leaves the turn untouched.
func (b *Board) ForecastFor(p Player, m Move) (State, error) {
	if !b.IsLegalMove(p, m) {
		return nil, &IllegalMoveError{Player: p, Move: m}
	}
	nb := &Board{
		width:     b.width,
		height:    b.height,
		blocked:   make([]bool, len(b.blocked)),
		locs:      b.locs,
		onTurn:    b.onTurn,
		moveCount: b.moveCount,
		hash:      b.hash,
		z:         b.z,
	}
	copy(nb.blocked, b.blocked)

	cell := nb.cell(m)
	nb.blocked[cell] = true
	nb.hash ^= nb.z.Blocked(cell)
	if old := nb.locs[p]; !old.IsNone() {
		nb.hash ^= nb.z.Location(int(p), nb.cell(old))
	}
	nb.locs[p] = m
	nb.hash ^= nb.z.Location(int(p), cell)

	if p == nb.onTurn {
		nb.onTurn = p.Other()
		nb.hash ^= nb.z.TheirTurn()
		nb.moveCount++
	}
	return nb, nil
}

// IsLoser reports whether p is on turn with no legal moves left.
func (b *Board) IsLoser(p Player) bool {
	return p == b.onTurn && len(b.LegalMoves(p)) == 0
}

// IsWinner reports whether p's opponent is on turn with no legal moves left.
func (b *Board) IsWinner(p Player) bool {
	return p != b.onTurn && len(b.LegalMoves(b.onTurn)) == 0
}

// GameOver reports whether the player on turn has been isolated.
func (b *Board) GameOver() bool {
	return len(b.LegalMoves(b.onTurn)) == 0
}

// Winner returns the winning player once the game is over.
func (b *Board) Winner() (Player, bool) {
	if !b.GameOver() {
		return 0, false
	}
	return b.onTurn.Other(), true
}
