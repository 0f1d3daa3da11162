package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"icon-scraper/internal/errors"
	"icon-scraper/internal/output"
	"icon-scraper/internal/source"

	"github.com/spf13/cobra"
)

var (
	snapshotFetcher string
	snapshotOut     string
	snapshotTimeout time.Duration
	snapshotRobots  bool
)

// snapshotCmd represents the snapshot command
var snapshotCmd = &cobra.Command{
	Use:   "snapshot [url]",
	Short: "Save a remote page locally for later extraction",
	Long: `Fetch a page and write its HTML to disk so it can be fed to 'extract'.
Use --fetcher browser to save the page after JavaScript has run.`,
	Args: cobra.ExactArgs(1),
	RunE: runSnapshotCommand,
}

func runSnapshotCommand(cmd *cobra.Command, args []string) error {
	src, err := source.New(snapshotFetcher, args[0], sourceOptions(snapshotTimeout, "", snapshotRobots))
	if err != nil {
		return err
	}

	html, err := src.Load(cmd.Context())
	if err != nil {
		return err
	}

	path := output.Resolve(outputDir, snapshotOut)
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.NewWriteError(path, err)
		}
	}
	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		return errors.NewWriteError(path, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Saved %s (%d bytes) to %s\n", src.Describe(), len(html), path)
	return nil
}

func init() {
	rootCmd.AddCommand(snapshotCmd)

	snapshotCmd.Flags().StringVar(&snapshotFetcher, "fetcher", source.KindHTTP, "How to load the page: http, colly or browser")
	snapshotCmd.Flags().StringVar(&snapshotOut, "out", "icon.html", "File to write the page to")
	snapshotCmd.Flags().DurationVar(&snapshotTimeout, "timeout", 0, "Fetch timeout (default from ICONSCRAPE_TIMEOUT, 30s)")
	snapshotCmd.Flags().BoolVar(&snapshotRobots, "robots", false, "Refuse pages disallowed by the host's robots.txt")
}
