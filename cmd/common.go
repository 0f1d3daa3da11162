package cmd

import (
	"bytes"
	"fmt"
	"io"

	"icon-scraper/internal/pipeline"
	"icon-scraper/internal/report"

	"github.com/spf13/cobra"
)

// progressWriter is where "✓ Saved" lines go. They are only shown with --verbose.
func progressWriter(cmd *cobra.Command) io.Writer {
	if verbose {
		return cmd.OutOrStdout()
	}
	return io.Discard
}

// scrapeView controls how a remote scrape is reported
type scrapeView struct {
	Preview  int
	Sample   int
	Expected int
}

// runScrape runs job and reports it the way the scrape command does:
// banner, preview, saved files, statistics, random sample.
func runScrape(cmd *cobra.Command, job pipeline.Job, view scrapeView) *pipeline.Outcome {
	w := cmd.OutOrStdout()

	report.Banner(w, "Icon Scraper")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Fetching icons from:", job.Source.Describe())

	var saved bytes.Buffer
	job.Progress = &saved
	out := pipeline.Run(cmd.Context(), job)

	if out.UsedFallback {
		fmt.Fprintln(w, "Trying alternative parsing method...")
	}

	if len(out.Icons) > 0 {
		fmt.Fprintf(w, "\n✅ Successfully extracted %d icons\n\n", len(out.Icons))
		report.PrintPreview(w, out.Icons, view.Preview)
		fmt.Fprintln(w)
		io.Copy(w, &saved)
		report.PrintStatistics(w, len(out.Icons), view.Expected)
		report.PrintSample(w, out.Icons, view.Sample, nil)
	} else {
		fmt.Fprintln(w, "❌ No icons found. The page structure may have changed.")
	}

	fmt.Fprintln(w)
	report.Banner(w, "Process Complete")
	return out
}
