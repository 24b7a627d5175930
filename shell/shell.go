// Package shell is an interactive console for playing against the engine
// and for kicking off automatic matches.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"

	"github.com/knightmoves/isolation/automatic"
	"github.com/knightmoves/isolation/config"
	"github.com/knightmoves/isolation/game"
	"github.com/knightmoves/isolation/player"
)

type ShellController struct {
	l   *readline.Instance
	cfg *config.Config

	board  *game.Board
	engine player.Agent
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func NewShellController(cfg *config.Config) *ShellController {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31misolation>\033[0m ",
		HistoryFile:     "/tmp/readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	return &ShellController{l: l, cfg: cfg}
}

func (sc *ShellController) showMessage(msg string) {
	showMessage(msg, sc.l.Stdout())
}

func (sc *ShellController) showError(err error) {
	showMessage("Error: "+err.Error(), sc.l.Stderr())
}

func (sc *ShellController) newGame(fields []string) error {
	w := sc.cfg.GetInt(config.ConfigBoardWidth)
	h := sc.cfg.GetInt(config.ConfigBoardHeight)
	if len(fields) == 2 {
		var err error
		if w, err = strconv.Atoi(fields[0]); err != nil {
			return err
		}
		if h, err = strconv.Atoi(fields[1]); err != nil {
			return err
		}
	} else if len(fields) != 0 {
		return errors.New("usage: new [width height]")
	}
	b, err := game.NewBoard(w, h)
	if err != nil {
		return err
	}
	sc.board = b
	return nil
}

func (sc *ShellController) requireGame() error {
	if sc.board == nil {
		return errors.New("no game in progress, type `new` to start one")
	}
	if sc.board.GameOver() {
		return errors.New("the game is over, type `new` to start another")
	}
	return nil
}

func (sc *ShellController) playMove(fields []string) error {
	if err := sc.requireGame(); err != nil {
		return err
	}
	if len(fields) != 2 {
		return errors.New("usage: play <row> <col>")
	}
	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return err
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return err
	}
	st, err := sc.board.Forecast(game.Move{Row: row, Col: col})
	if err != nil {
		return err
	}
	sc.board = st.(*game.Board)
	return nil
}

// enginePlay lets the configured engine pick a move for whoever is on turn.
func (sc *ShellController) enginePlay() error {
	if err := sc.requireGame(); err != nil {
		return err
	}
	if sc.engine == nil {
		a, err := player.New(sc.cfg.GetString(config.ConfigPlayer1),
			sc.cfg.GetInt(config.ConfigSearchDepth),
			sc.cfg.GetFloat64(config.ConfigTimeoutThresholdMs))
		if err != nil {
			return err
		}
		sc.engine = a
	}

	budget := sc.cfg.GetFloat64(config.ConfigTimePerMoveMs)
	start := time.Now()
	timeLeft := func() float64 {
		return budget - float64(time.Since(start).Microseconds())/1000.0
	}
	m, err := sc.engine.BestMove(context.Background(), sc.board, timeLeft)
	if err != nil {
		return err
	}
	if m.IsNone() {
		return errors.New("the engine found no move and forfeits")
	}
	st, err := sc.board.Forecast(m)
	if err != nil {
		return err
	}
	sc.board = st.(*game.Board)
	sc.showMessage(fmt.Sprintf("%s plays %v", sc.engine.Name(), m))
	return nil
}

func (sc *ShellController) listMoves() error {
	if err := sc.requireGame(); err != nil {
		return err
	}
	onTurn := sc.board.ActivePlayer()
	moves := sc.board.LegalMoves(onTurn)
	var ss strings.Builder
	fmt.Fprintf(&ss, "player %d to move, %d moves:", onTurn+1, len(moves))
	for _, m := range moves {
		fmt.Fprintf(&ss, " %v", m)
	}
	sc.showMessage(ss.String())
	return nil
}

func (sc *ShellController) autoplay(fields []string) error {
	numGames := sc.cfg.GetInt(config.ConfigGameCount)
	if len(fields) == 1 {
		var err error
		if numGames, err = strconv.Atoi(fields[0]); err != nil {
			return err
		}
	} else if len(fields) != 0 {
		return errors.New("usage: autoplay [num-games]")
	}
	mr, err := automatic.StartCompVCompGames(context.Background(), sc.cfg,
		numGames, sc.cfg.GetInt(config.ConfigThreads),
		sc.cfg.GetString(config.ConfigLogFile))
	if err != nil {
		return err
	}
	sc.showMessage(mr.String())
	return nil
}

func (sc *ShellController) showBoard() error {
	if sc.board == nil {
		return errors.New("no game in progress, type `new` to start one")
	}
	sc.showMessage(sc.board.ToDisplayText())
	if winner, over := sc.board.Winner(); over {
		sc.showMessage(fmt.Sprintf("game over, player %d wins", winner+1))
	}
	return nil
}

func (sc *ShellController) commandSwitch(line string, sig chan os.Signal) error {
	fields, err := shellquote.Split(line)
	if err != nil {
		return err
	}
	if len(fields) == 0 {
		return nil
	}
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "new":
		if err := sc.newGame(args); err != nil {
			sc.showError(err)
			break
		}
		return sc.showBoard()

	case "show", "s":
		if err := sc.showBoard(); err != nil {
			sc.showError(err)
		}

	case "moves":
		if err := sc.listMoves(); err != nil {
			sc.showError(err)
		}

	case "play":
		if err := sc.playMove(args); err != nil {
			sc.showError(err)
			break
		}
		return sc.showBoard()

	case "engine":
		if err := sc.enginePlay(); err != nil {
			sc.showError(err)
			break
		}
		return sc.showBoard()

	case "set":
		if err := sc.cfg.Load(args); err != nil {
			sc.showError(err)
			break
		}
		// a new spec needs a new engine
		sc.engine = nil

	case "autoplay":
		if err := sc.autoplay(args); err != nil {
			sc.showError(err)
		}

	case "help":
		sc.showMessage(usage)

	case "exit", "bye":
		sig <- syscall.SIGINT
		return errors.New("sending quit signal")

	default:
		sc.showError(fmt.Errorf("unknown command %q, type `help`", cmd))
	}
	return nil
}

func (sc *ShellController) Loop(sig chan os.Signal) {

	defer sc.l.Close()

	for {

		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			} else {
				continue
			}
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		line = strings.TrimSpace(line)

		if err := sc.commandSwitch(line, sig); err != nil {
			log.Error().Err(err).Msg("")
			break
		}
	}
	log.Debug().Msgf("Exiting readline loop...")
}
