package game

import "fmt"

// Player identifies one of the two players, 0 or 1.
type Player uint8

const (
	Player1 Player = 0
	Player2 Player = 1
)

// Other returns the opponent of p.
func (p Player) Other() Player {
	return p ^ 1
}

func (p Player) String() string {
	if p == Player1 {
		return "p1"
	}
	return "p2"
}

// Move is a destination square. The same type doubles as a player location;
// an unplaced player's location is NoMove.
type Move struct {
	Row, Col int
}

// NoMove is the "no legal move / search produced nothing" sentinel. It must
// never be used as a real destination.
var NoMove = Move{-1, -1}

// IsNone reports whether m is the no-move sentinel.
func (m Move) IsNone() bool {
	return m == NoMove
}

func (m Move) String() string {
	if m.IsNone() {
		return "(none)"
	}
	return fmt.Sprintf("(%d,%d)", m.Row, m.Col)
}

// ManhattanDistance returns the L1 distance between two squares.
func ManhattanDistance(a, b Move) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
