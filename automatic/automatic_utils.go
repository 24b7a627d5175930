package automatic

// Data collection for automatic games. Allow computer vs computer matches,
// aggregate the results, and log every move to a CSV file for later
// analysis.

import (
	"context"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
	"lukechampine.com/frand"

	"github.com/knightmoves/isolation/config"
	"github.com/knightmoves/isolation/game"
	"github.com/knightmoves/isolation/stats"
)

type Job struct {
	id      int
	opening [2]game.Move
	swap    bool
}

// MatchReport aggregates the outcome of a series of games.
type MatchReport struct {
	Names       [2]string
	Wins        [2]int
	Forfeits    int
	GamesPlayed int
	GameLengths stats.Statistic

	lengths []float64
}

func (mr *MatchReport) String() string {
	var ss strings.Builder
	total := float64(mr.GamesPlayed)
	for seat := 0; seat < 2; seat++ {
		winRate := float64(mr.Wins[seat]) / total
		// 95% interval for a Bernoulli proportion
		ci := stats.ZVal(95) * math.Sqrt(winRate*(1-winRate)/total)
		fmt.Fprintf(&ss, "%s: %d wins (%.1f%% ± %.1f%%)\n",
			mr.Names[seat], mr.Wins[seat], 100*winRate, 100*ci)
	}
	fmt.Fprintf(&ss, "forfeits: %d\n", mr.Forfeits)
	fmt.Fprintf(&ss, "game length: mean %.1f, stdev %.1f\n",
		mr.GameLengths.Mean(), mr.GameLengths.Stdev())
	if len(mr.lengths) > 0 {
		hist := histogram.Hist(10, mr.lengths)
		histogram.Fprint(&ss, hist, histogram.Linear(40))
	}
	return ss.String()
}

// StartCompVCompGames plays numGames games between the config's two agents
// across the given number of threads, writing a move log to
// outputFilename. Each game starts from a random opening, and the agents
// alternate seats between games.
func StartCompVCompGames(ctx context.Context, cfg *config.Config, numGames int,
	threads int, outputFilename string) (*MatchReport, error) {

	logfile, err := os.Create(outputFilename)
	if err != nil {
		return nil, err
	}
	log.Debug().Msgf("Starting %v games, %v threads", numGames, threads)

	jobs := make(chan Job, 100)
	logChan := make(chan string, 100)
	results := make(chan Result, numGames)

	writerDone := make(chan struct{})
	go func() {
		logfile.WriteString("agent,gameID,turn,row,col,timeRemainingMs\n")
		for msg := range logChan {
			logfile.WriteString(msg)
		}
		logfile.Close()
		close(writerDone)
	}()

	// the derived context also unblocks the feeder when a worker dies early,
	// e.g. on a bad agent spec
	g, gctx := errgroup.WithContext(ctx)
	for t := 0; t < threads; t++ {
		g.Go(func() error {
			r, err := NewGameRunner(logChan, cfg)
			if err != nil {
				return err
			}
			for j := range jobs {
				res, err := r.playGame(gctx, j.id, j.opening, j.swap)
				if err != nil {
					return err
				}
				results <- res
			}
			return nil
		})
	}

	feedErr := feedJobs(gctx, cfg, jobs, numGames)

	err = g.Wait()
	close(logChan)
	<-writerDone
	close(results)
	if err != nil {
		return nil, err
	}
	if feedErr != nil {
		return nil, feedErr
	}

	return aggregate(cfg, results), nil
}

// feedJobs queues one job per game, each with a fresh random opening.
// Openings are deduplicated by position hash so a match isn't skewed by
// replaying the same start, until the board runs out of distinct ones.
func feedJobs(ctx context.Context, cfg *config.Config, jobs chan Job, numGames int) error {
	defer close(jobs)

	w := cfg.GetInt(config.ConfigBoardWidth)
	h := cfg.GetInt(config.ConfigBoardHeight)
	scratch, err := game.NewBoard(w, h)
	if err != nil {
		return err
	}
	seen := make(map[uint64]bool)

	for i := 0; i < numGames; i++ {
		var opening [2]game.Move
		for attempt := 0; ; attempt++ {
			opening = [2]game.Move{
				{Row: frand.Intn(h), Col: frand.Intn(w)},
				{Row: frand.Intn(h), Col: frand.Intn(w)},
			}
			if opening[0] == opening[1] {
				continue
			}
			st, err := scratch.Forecast(opening[0])
			if err != nil {
				return err
			}
			st, err = st.Forecast(opening[1])
			if err != nil {
				return err
			}
			hash := st.(*game.Board).Hash()
			if !seen[hash] || attempt >= 100 {
				seen[hash] = true
				break
			}
		}

		select {
		case jobs <- Job{id: i, opening: opening, swap: i%2 == 1}:
		case <-ctx.Done():
			log.Info().Msg("Stopping job feed early...")
			return nil
		}
		if (i+1)%1000 == 0 {
			log.Debug().Msgf("Queued %v jobs", i+1)
		}
	}
	return nil
}

func aggregate(cfg *config.Config, results chan Result) *MatchReport {
	mr := &MatchReport{
		Names: [2]string{
			cfg.GetString(config.ConfigPlayer1),
			cfg.GetString(config.ConfigPlayer2),
		},
	}
	all := make([]Result, 0, len(results))
	for res := range results {
		all = append(all, res)
	}
	mr.GamesPlayed = len(all)
	mr.Wins[0] = lo.CountBy(all, func(r Result) bool { return r.Winner == 0 })
	mr.Wins[1] = lo.CountBy(all, func(r Result) bool { return r.Winner == 1 })
	mr.Forfeits = lo.CountBy(all, func(r Result) bool { return r.Forfeit })
	mr.lengths = lo.Map(all, func(r Result, _ int) float64 { return float64(r.Moves) })
	for _, l := range mr.lengths {
		mr.GameLengths.Push(l)
	}
	return mr
}
