package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/pprof"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/knightmoves/isolation/automatic"
	"github.com/knightmoves/isolation/config"
	"github.com/knightmoves/isolation/shell"
)

var profilePath = os.Getenv("ISOLATION_CPU_PROFILE")

func main() {

	cfg := config.DefaultConfig()
	args := os.Args[1:]

	// an optional leading subcommand, the rest are key=value overrides
	subcommand := ""
	if len(args) > 0 && !strings.Contains(args[0], "=") {
		subcommand = args[0]
		args = args[1:]
	}
	if err := cfg.Load(args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	output.FormatMessage = func(i interface{}) string {
		return fmt.Sprintf("%s", i)
	}
	output.FormatFieldName = func(i interface{}) string {
		return fmt.Sprintf("%s:", i)
	}

	var logger zerolog.Logger
	if cfg.GetBool(config.ConfigDebug) {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		logger = zerolog.New(output).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		logger = zerolog.New(output).Level(zerolog.InfoLevel).With().Timestamp().Logger()
	}
	zerolog.DefaultContextLogger = &logger
	log.Logger = logger
	logger.Debug().Msg("Debug logging is on")

	if profilePath != "" {
		f, err := os.Create(profilePath)
		if err != nil {
			panic("could not create CPU profile: " + err.Error())
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			panic("could not start CPU profile: " + err.Error())
		}
		defer pprof.StopCPUProfile()
	}

	switch subcommand {
	case "":
		runShell(cfg)
	case "autoplay":
		runAutoplay(cfg)
	default:
		fmt.Fprintf(os.Stderr, "unknown subcommand %q (try `autoplay` or no subcommand for the shell)\n", subcommand)
		os.Exit(1)
	}
}

func runShell(cfg *config.Config) {
	idleConnsClosed := make(chan struct{})
	sig := make(chan os.Signal, 1)
	go func() {
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		log.Info().Msg("got quit signal...")
		close(idleConnsClosed)
	}()

	sc := shell.NewShellController(cfg)
	go sc.Loop(sig)

	<-idleConnsClosed
	log.Info().Msg("shutting down")
}

func runAutoplay(cfg *config.Config) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sig
		log.Info().Msg("got quit signal...")
		cancel()
	}()

	mr, err := automatic.StartCompVCompGames(ctx, cfg,
		cfg.GetInt(config.ConfigGameCount), cfg.GetInt(config.ConfigThreads),
		cfg.GetString(config.ConfigLogFile))
	if err != nil {
		log.Fatal().Err(err).Msg("")
	}
	fmt.Println(mr.String())
}
