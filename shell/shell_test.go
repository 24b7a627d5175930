package shell

import (
	"testing"

	"github.com/matryer/is"

	"github.com/knightmoves/isolation/config"
)

func testController() *ShellController {
	cfg := config.DefaultConfig()
	return &ShellController{cfg: cfg}
}

func TestNewGame(t *testing.T) {
	is := is.New(t)
	sc := testController()

	is.NoErr(sc.newGame(nil))
	is.Equal(sc.board.Width(), 7)

	is.NoErr(sc.newGame([]string{"5", "6"}))
	is.Equal(sc.board.Width(), 5)
	is.Equal(sc.board.Height(), 6)

	is.True(sc.newGame([]string{"5"}) != nil)
	is.True(sc.newGame([]string{"x", "y"}) != nil)
	is.True(sc.newGame([]string{"1", "1"}) != nil) // too small
}

func TestPlayMove(t *testing.T) {
	is := is.New(t)
	sc := testController()

	// no game yet
	is.True(sc.playMove([]string{"0", "0"}) != nil)

	is.NoErr(sc.newGame(nil))
	is.True(sc.playMove([]string{"0"}) != nil)
	is.True(sc.playMove([]string{"a", "b"}) != nil)
	is.True(sc.playMove([]string{"9", "9"}) != nil) // out of bounds

	is.NoErr(sc.playMove([]string{"3", "3"}))
	// the square is now occupied
	is.True(sc.playMove([]string{"3", "3"}) != nil)
	is.NoErr(sc.playMove([]string{"0", "0"}))
}
