// slidepuzzle is a sliding-tile puzzle game.
//
// Usage:
//
//	slidepuzzle               - Play the game
//	slidepuzzle play          - Play the game
//	slidepuzzle shuffle       - Print a shuffled board to the terminal
//	slidepuzzle version       - Print the version
//
// Global flags:
//
//	--config <path>  - YAML config (default: built-in)
//	--seed <value>   - RNG seed (0 = random based on time)
//	--debug          - Debug logging
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig string
	flagSeed   int64
	flagDebug  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "slidepuzzle",
	Short: "Slide Puzzle - a sliding-tile puzzle with three boards",
	Long: `Slide Puzzle is a 4x4 sliding-tile game. Click a tile next to the
empty cell to slide it; put every tile back in order to solve the board.

Controls:
  Left click   - Slide a tile / press a button
  Right click  - Hold to peek at the solved picture
  R            - Reshuffle the current board
  Enter        - Start
  Escape       - Back to the start screen
  F3           - Toggle the debug overlay

Examples:
  slidepuzzle
  slidepuzzle --config ./puzzle.yaml --seed 42
  slidepuzzle shuffle --moves 50`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML (default: built-in)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(shuffleCmd)
	rootCmd.AddCommand(versionCmd)
}

// newLogger builds the process logger. --debug wins over the configured
// level; an unknown level falls back to info.
func newLogger(level string, debug bool) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "slidepuzzle",
	})

	lvl, err := log.ParseLevel(level)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", level)
		lvl = log.InfoLevel
	}
	if debug {
		lvl = log.DebugLevel
	}
	logger.SetLevel(lvl)
	return logger
}

func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
