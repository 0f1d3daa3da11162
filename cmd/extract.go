package cmd

import (
	"fmt"

	"icon-scraper/internal/extract"
	"icon-scraper/internal/pipeline"
	"icon-scraper/internal/source"

	"github.com/spf13/cobra"
)

var (
	extractPattern string
	extractOrigin  string
	extractSorted  string
	extractJSON    string
	extractFont    string
	extractUnique  bool
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract [file]",
	Short: "Extract icon names from a saved HTML demo page",
	Long: `Extract icon names from a local HTML file by matching a marker pattern
(by default the <span class="mls"> wrapper used by IcoMoon demo pages).
Names are written in source order and sorted; duplicates are kept unless --unique is set.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExtractCommand,
}

func runExtractCommand(cmd *cobra.Command, args []string) error {
	path := "icon.html"
	if len(args) > 0 {
		path = args[0]
	}

	strategy, err := extract.ParseStrategy(extract.KindPattern, extractPattern)
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(cmd.OutOrStdout(), "Reading %s using %s\n", path, strategy.Name())
	}

	out := pipeline.Run(cmd.Context(), pipeline.Job{
		Source:     &source.FileSource{Path: path},
		Strategy:   strategy,
		Unique:     extractUnique,
		OutputDir:  outputDir,
		Origin:     extractOrigin,
		Sorted:     extractSorted,
		JSON:       extractJSON,
		FontName:   extractFont,
		WriteEmpty: true,
		Progress:   progressWriter(cmd),
	})
	if out.LoadErr != nil {
		return fmt.Errorf("read %s: %w", path, out.LoadErr)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✔ Extracted %d icons\n", len(out.Icons))
	return nil
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringVar(&extractPattern, "pattern", extract.DefaultMarkerPattern,
		"Regular expression whose first capture group is the icon name")
	extractCmd.Flags().StringVar(&extractOrigin, "origin", "icons-origin.txt",
		"Output file for icons in source order")
	extractCmd.Flags().StringVar(&extractSorted, "sorted", "icons-sort.txt",
		"Output file for icons in sorted order")
	extractCmd.Flags().StringVar(&extractJSON, "json", "",
		"Also write a JSON listing to this file")
	extractCmd.Flags().StringVar(&extractFont, "font", "icomoon",
		"Font name recorded in the JSON listing")
	extractCmd.Flags().BoolVar(&extractUnique, "unique", false,
		"Drop repeated icon names, keeping the first occurrence")
}
