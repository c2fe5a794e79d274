package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a level pack picker",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to play a pack, Tab for the
scoreboard. Pressing B after a game ends returns to the menu.

Examples:
  platformer menu
  platformer menu --fps 30
  platformer menu --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func init() {
	addGameFlags(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) {
	applyGameFlags()

	logger, closeLog, err := newLogger()
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	sound, closeAudio := startAudio(logger)
	defer closeAudio()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := terminalConfig()
	for {
		result, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		cfg = result.Config

		if result.Quit {
			return
		}

		if result.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			if goBack {
				continue
			}
			return
		}

		g, err := registry.Create(result.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}
		if game, ok := g.(*platformer.Game); ok {
			game.SetLogger(logger)
			game.SetAudio(sound)
		}

		runCfg := cfg
		if runCfg.Seed == 0 {
			runCfg.Seed = time.Now().UnixNano()
		}
		if err := tui.Run(g, runCfg, tui.GameOptions{Store: store, Logger: logger}); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}
}
