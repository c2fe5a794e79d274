package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/level"
)

var flagLevelsDir string

var levelsCmd = &cobra.Command{
	Use:   "levels [pack]",
	Short: "Show the levels of a pack",
	Long: `List the levels of a built-in pack (default: classic), or validate
and list a directory of level files with --levels.

Examples:
  platformer levels
  platformer levels extended
  platformer levels --levels ./my-levels`,
	Args: cobra.MaximumNArgs(1),
	Run:  runLevels,
}

func init() {
	levelsCmd.Flags().StringVar(&flagLevelsDir, "levels", "", "Directory of level YAML files")
}

func runLevels(_ *cobra.Command, args []string) {
	var (
		set *level.Set
		err error
	)
	switch {
	case flagLevelsDir != "":
		set, err = level.LoadDir(flagLevelsDir)
	case len(args) == 1:
		set, err = level.LoadPack(args[0])
	default:
		set, err = level.LoadPack(level.PackClassic)
	}
	if err != nil {
		fail("%v", err)
	}

	fmt.Printf("Levels - %s\n", set.Name)
	fmt.Println()
	fmt.Printf("  %-3s  %-20s  %-9s  %-5s  %s\n", "#", "Name", "Platforms", "Coins", "Enemies")
	fmt.Printf("  %-3s  %-20s  %-9s  %-5s  %s\n", "-", "----", "---------", "-----", "-------")
	for _, t := range set.Templates() {
		fmt.Printf("  %-3d  %-20s  %-9d  %-5d  %d\n",
			t.Number, t.Name, len(t.Platforms), len(t.Collectibles), len(t.Enemies))
	}
}
