package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/audio"
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/level"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevels     string
	flagWatch      bool
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play [pack]",
	Short: "Play a level pack",
	Long: `Start playing the given level pack (default: classic).

Controls:
  A/D, Left/Right  - Move
  Space/W/Up       - Jump
  Enter            - Start / next level
  P/Esc            - Pause
  R                - Restart
  B                - Back (when paused or after game over)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - 5 lives, slower enemies
  normal - Config defaults
  hard   - 2 lives, faster enemies
  fixed  - Disable difficulty progression

Examples:
  platformer play
  platformer play extended
  platformer play --difficulty easy
  platformer play --config ./my-platformer.yaml
  platformer play --levels ./levels --watch`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	addGameFlags(playCmd)
	playCmd.Flags().StringVar(&flagLevels, "levels", "", "Directory of level YAML files to play instead of a pack")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload --levels when its files change")
}

// addGameFlags registers the flags shared by every command that starts games.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom platformer config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

// gameID maps a pack name to its registered game ID.
func gameID(pack string) string {
	if pack == "" || pack == level.PackClassic {
		return "platformer"
	}
	return "platformer_" + pack
}

// applyGameFlags sets the package-level options read by every game Reset.
func applyGameFlags() {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		fail("%v", err)
	}
	platformer.SetConfigPath(flagConfig)
	platformer.SetDifficultyPreset(preset)
}

// startAudio starts the sound manager unless muted or disabled by config.
func startAudio(logger *log.Logger) (platformer.Audio, func()) {
	if flagMute {
		return audio.Nop{}, func() {}
	}
	cfg, err := config.LoadPlatformer(flagConfig)
	if err != nil {
		cfg = config.DefaultPlatformerConfig()
	}
	if !cfg.Audio.Enabled {
		return audio.Nop{}, func() {}
	}
	mgr := audio.New(cfg.Audio, logger)
	mgr.Start()
	return mgr, mgr.Close
}

// terminalConfig returns the runtime config for the local terminal.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the score database. The game runs without it on error.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, args []string) {
	pack := ""
	if len(args) == 1 {
		pack = args[0]
	}
	id := gameID(pack)
	if !registry.Exists(id) {
		fail("unknown pack %q\nRun 'platformer list' to see available packs.", pack)
	}
	if flagWatch && flagLevels == "" {
		fail("--watch requires --levels")
	}
	applyGameFlags()

	logger, closeLog, err := newLogger()
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	g, err := registry.Create(id)
	if err != nil {
		fail("creating game: %v", err)
	}
	game, ok := g.(*platformer.Game)
	if !ok {
		fail("game %q is not a platformer", id)
	}
	game.SetLogger(logger)

	opts := tui.GameOptions{Logger: logger}
	if flagLevels != "" {
		set, err := level.LoadDir(flagLevels)
		if err != nil {
			fail("%v", err)
		}
		game.SetLevels(set)
		logger.Info("custom levels loaded", "dir", flagLevels, "levels", set.Len())

		if flagWatch {
			watcher, err := level.NewWatcher(flagLevels)
			if err != nil {
				fail("watching %s: %v", flagLevels, err)
			}
			defer watcher.Close()
			opts.Watcher = watcher
			opts.LevelsDir = flagLevels
		}
	}

	sound, closeAudio := startAudio(logger)
	defer closeAudio()
	game.SetAudio(sound)

	store := openStore(logger)
	opts.Store = store

	runErr := tui.Run(game, terminalConfig(), opts)

	if store != nil {
		store.Close()
	}
	if runErr != nil {
		fail("running game: %v", runErr)
	}
}
