// platformer is a 2D coin-collecting platformer played in the terminal.
//
// Usage:
//
//	platformer list              - List available level packs
//	platformer play [pack]       - Play a pack (default: classic)
//	platformer menu              - Start menu to pick packs interactively
//	platformer levels [pack]     - Show the levels of a pack
//	platformer scores [pack]     - Show high scores for a pack
//	platformer serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible effects
//	--db <path>        - Set database path (default: ~/.platformer/scores.db)
//	--log-file <path>  - Write logs to a file (default: discard)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import the platformer to register its packs
	_ "github.com/vovakirdan/tui-platformer/internal/games/platformer"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "Platformer - jump, collect coins, dodge enemies in your terminal",
	Long: `Platformer is a side-view platform game for the terminal.
Collect every coin in a level to advance; touching an enemy or falling
off the bottom costs a life.

Available commands:
  list     - Show all level packs
  play     - Play a pack directly
  menu     - Interactive pack picker menu
  levels   - Show the levels of a pack or directory
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  platformer play
  platformer play extended --difficulty hard
  platformer play --levels ./my-levels --watch
  platformer serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.platformer/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger builds the logger for terminal play. Logs go to --log-file, or
// nowhere, since stderr would corrupt the alternate screen.
func newLogger() (*log.Logger, func(), error) {
	var w io.Writer = io.Discard
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "platformer",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
