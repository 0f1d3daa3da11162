package cmd

import (
	"fmt"

	"icon-scraper/internal/config"
	"icon-scraper/internal/report"

	"github.com/spf13/cobra"
)

// presetsCmd represents the presets command
var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List built-in scrape presets",
	Long:  `List the icon listings icon-scraper knows how to extract out of the box.`,
	Run:   runPresetsCommand,
}

func runPresetsCommand(cmd *cobra.Command, args []string) {
	w := cmd.OutOrStdout()

	fmt.Fprintln(w, "Available presets:")
	report.Rule(w, 18)

	for _, name := range config.PresetNames() {
		preset, _ := config.GetPreset(name)
		fmt.Fprintf(w, "\n📦 %s\n", preset.Name)
		fmt.Fprintf(w, "   Description: %s\n", preset.Description)
		fmt.Fprintf(w, "   Source: %s %s\n", preset.Fetcher, preset.Target)
		if preset.StrategyArg != "" {
			fmt.Fprintf(w, "   Strategy: %s %q\n", preset.Strategy, preset.StrategyArg)
		} else {
			fmt.Fprintf(w, "   Strategy: %s (default)\n", preset.Strategy)
		}
		fmt.Fprintf(w, "   Outputs: %s, %s", preset.Origin, preset.Sorted)
		if preset.JSON != "" {
			fmt.Fprintf(w, ", %s", preset.JSON)
		}
		fmt.Fprintln(w)
		if preset.Expected > 0 {
			fmt.Fprintf(w, "   Expected glyphs: %d\n", preset.Expected)
		}
	}
}

func init() {
	rootCmd.AddCommand(presetsCmd)
}
