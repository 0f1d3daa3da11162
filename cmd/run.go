package cmd

import (
	"fmt"
	"strings"

	"icon-scraper/internal/config"
	"icon-scraper/internal/errors"
	"icon-scraper/internal/extract"
	"icon-scraper/internal/pipeline"
	"icon-scraper/internal/source"

	"github.com/spf13/cobra"
)

var (
	runTarget  string
	runRobots  bool
	runNoJSON  bool
	runSample  int
	runPreview int
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [preset]",
	Short: "Run a built-in scrape preset",
	Long:  `Run a named preset end to end. Use 'icon-scraper presets' to list them.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runPresetCommand,
}

func runPresetCommand(cmd *cobra.Command, args []string) error {
	preset, ok := config.GetPreset(args[0])
	if !ok {
		return errors.NewValidationError("preset",
			fmt.Sprintf("unknown preset %q (available: %s)", args[0], strings.Join(config.PresetNames(), ", ")))
	}
	if runTarget != "" {
		preset.Target = runTarget
	}

	strategy, err := extract.ParseStrategy(preset.Strategy, preset.StrategyArg)
	if err != nil {
		return err
	}
	src, err := source.New(preset.Fetcher, preset.Target, sourceOptions(0, "", runRobots))
	if err != nil {
		return err
	}

	job := pipeline.Job{
		Source:    src,
		Strategy:  strategy,
		Unique:    preset.Unique,
		OutputDir: outputDir,
		Origin:    preset.Origin,
		Sorted:    preset.Sorted,
		FontName:  preset.FontName,
	}
	if !runNoJSON {
		job.JSON = preset.JSON
	}

	if verbose {
		fmt.Fprintf(cmd.OutOrStdout(), "Preset %s: %s via %s\n", preset.Name, preset.Target, strategy.Name())
	}

	// Local demo pages always produce output files, like the extract command.
	if preset.Fetcher == source.KindFile {
		job.WriteEmpty = true
		job.Progress = progressWriter(cmd)
		out := pipeline.Run(cmd.Context(), job)
		if out.LoadErr != nil {
			return fmt.Errorf("read %s: %w", preset.Target, out.LoadErr)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✔ Extracted %d icons\n", len(out.Icons))
		return nil
	}

	runScrape(cmd, job, scrapeView{
		Preview:  runPreview,
		Sample:   runSample,
		Expected: preset.Expected,
	})
	return nil
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVar(&runTarget, "target", "", "Override the preset's file path or URL")
	runCmd.Flags().BoolVar(&runRobots, "robots", false, "Refuse pages disallowed by the host's robots.txt")
	runCmd.Flags().BoolVar(&runNoJSON, "no-json", false, "Skip the preset's JSON listing")
	runCmd.Flags().IntVar(&runSample, "sample", 5, "Number of random icons to show")
	runCmd.Flags().IntVar(&runPreview, "preview", 20, "Number of leading icons to list")
}
