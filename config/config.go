// Package config holds the runtime knobs for the engine, the shell and the
// match harness. Values come from defaults, ISOLATION_* environment
// variables, and key=value command-line overrides, in that order.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	ConfigDebug              = "debug"
	ConfigBoardWidth         = "board-width"
	ConfigBoardHeight        = "board-height"
	ConfigPlayer1            = "player1"
	ConfigPlayer2            = "player2"
	ConfigSearchDepth        = "search-depth"
	ConfigTimePerMoveMs      = "time-per-move-ms"
	ConfigTimeoutThresholdMs = "timeout-threshold-ms"
	ConfigGameCount          = "game-count"
	ConfigThreads            = "threads"
	ConfigLogFile            = "log-file"
)

type Config struct {
	*viper.Viper
}

// DefaultConfig returns a config with every knob at its default value.
func DefaultConfig() *Config {
	v := viper.New()
	v.SetDefault(ConfigDebug, false)
	v.SetDefault(ConfigBoardWidth, 7)
	v.SetDefault(ConfigBoardHeight, 7)
	v.SetDefault(ConfigPlayer1, "ab-lookahead")
	v.SetDefault(ConfigPlayer2, "random")
	v.SetDefault(ConfigSearchDepth, 3)
	v.SetDefault(ConfigTimePerMoveMs, 150.0)
	v.SetDefault(ConfigTimeoutThresholdMs, 10.0)
	v.SetDefault(ConfigGameCount, 1000)
	v.SetDefault(ConfigThreads, 4)
	v.SetDefault(ConfigLogFile, "/tmp/games.csv")

	v.SetEnvPrefix("isolation")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return &Config{v}
}

// Load applies key=value overrides from the command line, e.g.
// "board-width=9 player1=ab-mobility".
func (c *Config) Load(args []string) error {
	for _, arg := range args {
		key, val, found := strings.Cut(arg, "=")
		if !found {
			return fmt.Errorf("malformed option %q, expected key=value", arg)
		}
		key = strings.ToLower(strings.TrimSpace(key))
		if !c.IsSet(key) {
			return fmt.Errorf("unknown option %q", key)
		}
		c.Set(key, strings.TrimSpace(val))
	}
	return nil
}
