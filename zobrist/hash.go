package zobrist

import (
	"lukechampine.com/frand"
)

const bignum = 1<<63 - 2

// generate a zobrist hash for an isolation position.
// https://en.wikipedia.org/wiki/Zobrist_hashing
type Zobrist struct {
	theirTurn uint64

	blockedTable []uint64
	locTable     [2][]uint64

	cells int
}

// Initialize generates random keys for every (square, feature) pair on a
// board with the given number of cells.
func (z *Zobrist) Initialize(cells int) {
	z.cells = cells
	z.blockedTable = make([]uint64, cells)
	for i := 0; i < cells; i++ {
		z.blockedTable[i] = frand.Uint64n(bignum) + 1
	}
	for p := 0; p < 2; p++ {
		z.locTable[p] = make([]uint64, cells)
		for i := 0; i < cells; i++ {
			z.locTable[p][i] = frand.Uint64n(bignum) + 1
		}
	}
	z.theirTurn = frand.Uint64n(bignum) + 1
}

// Blocked returns the key for a blocked square. XOR it in when the square
// gets visited; visited squares never reopen, so it is never XORed out.
func (z *Zobrist) Blocked(cell int) uint64 {
	return z.blockedTable[cell]
}

// Location returns the key for player p standing on the given square.
func (z *Zobrist) Location(p int, cell int) uint64 {
	return z.locTable[p][cell]
}

// TheirTurn is XORed in whenever the second player is on turn.
func (z *Zobrist) TheirTurn() uint64 {
	return z.theirTurn
}

// Cells returns the number of squares these tables were generated for.
func (z *Zobrist) Cells() int {
	return z.cells
}
