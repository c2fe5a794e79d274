package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [pack]",
	Short: "Show high scores for a pack",
	Long: `Display the top 10 runs for the given pack (default: classic).

Examples:
  platformer scores
  platformer scores extended`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func runScores(_ *cobra.Command, args []string) {
	pack := ""
	if len(args) == 1 {
		pack = args[0]
	}
	id := gameID(pack)

	info, ok := registry.Info(id)
	if !ok {
		fail("unknown pack %q\nRun 'platformer list' to see available packs.", pack)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening scores database: %v", err)
	}
	defer store.Close()

	scores, err := store.TopScores(id, 10)
	if err != nil {
		fail("retrieving scores: %v", err)
	}

	fmt.Printf("High Scores - %s\n", info.Title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'platformer play %s' to set the first high score!\n", packOf(id))
		return
	}

	fmt.Printf("  %-4s  %-8s  %-5s  %-7s  %s\n", "Rank", "Score", "Level", "Result", "Date")
	fmt.Printf("  %-4s  %-8s  %-5s  %-7s  %s\n", "----", "-----", "-----", "------", "----")
	for i, e := range scores {
		result := "-"
		if e.Completed {
			result = "cleared"
		}
		fmt.Printf("  %-4d  %-8d  %-5d  %-7s  %s\n",
			i+1, e.Score, e.Level, result, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetGameStats(id); err == nil {
		fmt.Println()
		fmt.Printf("Runs: %d  Best: %d  Average: %.0f  Cleared: %d\n",
			stats.GamesCount, stats.HighScore, stats.AvgScore, stats.Completions)
	}
}
