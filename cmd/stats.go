package cmd

import (
	"fmt"

	"icon-scraper/internal/output"
	"icon-scraper/internal/report"

	"github.com/spf13/cobra"
)

var statsPreview int

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats [file.json]",
	Short: "Summarize a JSON icon listing",
	Long:  `Read a listing written with --json and report its glyph counts.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runStatsCommand,
}

func runStatsCommand(cmd *cobra.Command, args []string) error {
	listing, err := output.ReadJSON(args[0])
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	summary := report.Summarize(listing.Icons)
	report.PrintSummary(w, listing.FontName, summary)
	if listing.TotalGlyphs != summary.Total {
		fmt.Fprintf(w, "   ⚠️  totalGlyphs says %d\n", listing.TotalGlyphs)
	}
	fmt.Fprintln(w)
	report.PrintPreview(w, listing.Icons, statsPreview)
	return nil
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().IntVar(&statsPreview, "preview", 10, "Number of leading icons to list")
}
