package cmd

import (
	"fmt"
	"os"

	"icon-scraper/internal/config"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose   bool
	logFile   string
	outputDir string
	envConfig config.Env
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "icon-scraper",
	Short: "Extract icon names from icon font demo pages",
	Long: `Icon-scraper pulls icon class names out of an icon font's HTML listing,
either a demo page saved locally or a reference page fetched over HTTP,
and writes them as plain text (source order and sorted) and JSON.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := setupLogging(logFile); err != nil {
			return fmt.Errorf("setup logging: %w", err)
		}

		cfg, err := config.LoadEnv()
		if err != nil {
			return err
		}
		envConfig = cfg
		if outputDir == "" {
			outputDir = envConfig.OutputDir
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Also write diagnostics to this file (rotated)")
	rootCmd.PersistentFlags().StringVarP(&outputDir, "output-dir", "o", "", "Directory for output files (default: current directory)")
}
