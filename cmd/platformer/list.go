package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/level"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all level packs",
	Long:  `Shows every built-in level pack with its game ID and level count.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No packs available.")
		return
	}

	fmt.Println("Available packs:")
	fmt.Println()

	maxIDLen := len("ID")
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Printf("  %-*s  %-10s  %-6s  %s\n", maxIDLen, "ID", "Pack", "Levels", "Title")
	fmt.Printf("  %-*s  %-10s  %-6s  %s\n", maxIDLen, "--", "----", "------", "-----")

	for _, g := range games {
		pack := packOf(g.ID)
		count := "?"
		if set, err := level.LoadPack(pack); err == nil {
			count = fmt.Sprint(set.Len())
		}
		fmt.Printf("  %-*s  %-10s  %-6s  %s\n", maxIDLen, g.ID, pack, count, g.Title)
	}

	fmt.Println()
	fmt.Println("Run 'platformer play <pack>' to play a pack.")
}

// packOf is the inverse of gameID.
func packOf(id string) string {
	if pack, ok := strings.CutPrefix(id, "platformer_"); ok {
		return pack
	}
	return level.PackClassic
}
