// Package automatic contains the logic for computer vs computer matches,
// used for benchmarking evaluation strategies against each other.
package automatic

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/knightmoves/isolation/config"
	"github.com/knightmoves/isolation/game"
	"github.com/knightmoves/isolation/player"
)

// GameRunner is the master struct for the automatic game logic. It plays
// complete games between two agents on fresh boards.
type GameRunner struct {
	cfg         *config.Config
	agents      [2]player.Agent
	timePerMove float64 // ms
	logchan     chan string
	gamechan    chan string
}

// Result summarizes one finished game. Winner is a seat index into the
// runner's agents, already unswapped.
type Result struct {
	GameID  int
	Winner  int
	Moves   int
	Forfeit bool
}

// NewGameRunner instantiates a runner with agents built from the config's
// player specs.
func NewGameRunner(logchan chan string, cfg *config.Config) (*GameRunner, error) {
	r := &GameRunner{
		cfg:         cfg,
		timePerMove: cfg.GetFloat64(config.ConfigTimePerMoveMs),
		logchan:     logchan,
	}
	for idx, key := range []string{config.ConfigPlayer1, config.ConfigPlayer2} {
		a, err := player.New(cfg.GetString(key), cfg.GetInt(config.ConfigSearchDepth),
			cfg.GetFloat64(config.ConfigTimeoutThresholdMs))
		if err != nil {
			return nil, err
		}
		r.agents[idx] = a
	}
	return r, nil
}

// playGame plays one full game from the given opening placements. When
// swap is true agent 1 takes the first seat, which evens out any
// first-mover advantage across a match.
func (r *GameRunner) playGame(ctx context.Context, gameID int, opening [2]game.Move, swap bool) (Result, error) {
	b, err := game.NewBoard(r.cfg.GetInt(config.ConfigBoardWidth),
		r.cfg.GetInt(config.ConfigBoardHeight))
	if err != nil {
		return Result{}, err
	}
	st := game.State(b)
	for _, m := range opening {
		st, err = st.Forecast(m)
		if err != nil {
			return Result{}, err
		}
	}

	seat := func(p game.Player) int {
		if swap {
			return int(p.Other())
		}
		return int(p)
	}

	board := st.(*game.Board)
	moves := 0
	for !board.GameOver() {
		onTurn := board.ActivePlayer()
		agent := r.agents[seat(onTurn)]

		start := time.Now()
		timeLeft := func() float64 {
			return r.timePerMove - float64(time.Since(start).Microseconds())/1000.0
		}
		m, err := agent.BestMove(ctx, board, timeLeft)
		if err != nil || m.IsNone() || !board.IsLegalMove(onTurn, m) {
			if err != nil {
				log.Err(err).Str("agent", agent.Name()).Int("gameID", gameID).
					Msg("agent error, forfeiting")
			}
			return Result{GameID: gameID, Winner: seat(onTurn.Other()),
				Moves: moves, Forfeit: true}, nil
		}

		next, err := board.Forecast(m)
		if err != nil {
			return Result{}, err
		}
		board = next.(*game.Board)
		moves++

		if r.logchan != nil {
			r.logchan <- fmt.Sprintf("%v,%v,%v,%v,%v,%.1f\n",
				agent.Name(), gameID, moves, m.Row, m.Col, timeLeft())
		}
	}
	if r.gamechan != nil {
		r.gamechan <- board.ToDisplayText()
	}

	winner, _ := board.Winner()
	return Result{GameID: gameID, Winner: seat(winner), Moves: moves}, nil
}
