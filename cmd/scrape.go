package cmd

import (
	"time"

	"icon-scraper/internal/extract"
	"icon-scraper/internal/pipeline"
	"icon-scraper/internal/source"

	"github.com/spf13/cobra"
)

// DefaultScrapeURL is the Uncode icon reference page
const DefaultScrapeURL = "https://undsgn.com/uncode-icons/"

var (
	scrapePrefix    string
	scrapeFetcher   string
	scrapeOut       string
	scrapeSortedOut string
	scrapeJSON      bool
	scrapeJSONOut   string
	scrapeFont      string
	scrapeExpected  int
	scrapeSample    int
	scrapePreview   int
	scrapeRobots    bool
	scrapeTimeout   time.Duration
	scrapeUserAgent string
)

// scrapeCmd represents the scrape command
var scrapeCmd = &cobra.Command{
	Use:   "scrape [url]",
	Short: "Scrape icon names from a remote reference page",
	Long: `Fetch a page and keep every line that starts with the icon prefix, deduplicated
in first-occurrence order. If the raw HTML has no such lines, the rendered body
text is scanned instead. A failed fetch is reported and produces no output files.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScrapeCommand,
}

func runScrapeCommand(cmd *cobra.Command, args []string) error {
	target := DefaultScrapeURL
	if envConfig.URL != "" {
		target = envConfig.URL
	}
	if len(args) > 0 {
		target = args[0]
	}

	strategy, err := extract.ParseStrategy(extract.KindPrefix, scrapePrefix)
	if err != nil {
		return err
	}

	src, err := source.New(scrapeFetcher, target, sourceOptions(scrapeTimeout, scrapeUserAgent, scrapeRobots))
	if err != nil {
		return err
	}

	job := pipeline.Job{
		Source:    src,
		Strategy:  strategy,
		OutputDir: outputDir,
		Origin:    scrapeOut,
		Sorted:    scrapeSortedOut,
		FontName:  scrapeFont,
	}
	if scrapeJSON {
		job.JSON = scrapeJSONOut
	}

	runScrape(cmd, job, scrapeView{
		Preview:  scrapePreview,
		Sample:   scrapeSample,
		Expected: scrapeExpected,
	})
	return nil
}

// sourceOptions merges flag values with environment overrides
func sourceOptions(timeout time.Duration, userAgent string, robots bool) source.Options {
	if timeout <= 0 {
		timeout = envConfig.Timeout
	}
	if userAgent == "" {
		userAgent = envConfig.UserAgent
	}
	return source.Options{
		UserAgent:     userAgent,
		Timeout:       timeout,
		RespectRobots: robots,
	}
}

func init() {
	rootCmd.AddCommand(scrapeCmd)

	scrapeCmd.Flags().StringVar(&scrapePrefix, "prefix", extract.DefaultPrefix,
		"Keep lines starting with this prefix")
	scrapeCmd.Flags().StringVar(&scrapeFetcher, "fetcher", source.KindHTTP,
		"How to load the page: http, colly or browser")
	scrapeCmd.Flags().StringVar(&scrapeOut, "out", "uncode-icons.txt",
		"Output file for icons in page order")
	scrapeCmd.Flags().StringVar(&scrapeSortedOut, "sorted-out", "uncode-icons-sort.txt",
		"Output file for icons in sorted order")
	scrapeCmd.Flags().BoolVar(&scrapeJSON, "json", false,
		"Also write a JSON listing")
	scrapeCmd.Flags().StringVar(&scrapeJSONOut, "json-out", "uncode-icons.json",
		"JSON listing file used with --json")
	scrapeCmd.Flags().StringVar(&scrapeFont, "font", "uncodeicon",
		"Font name recorded in the JSON listing")
	scrapeCmd.Flags().IntVar(&scrapeExpected, "expected", 1444,
		"Glyph count advertised by the page (0 to skip the comparison)")
	scrapeCmd.Flags().IntVar(&scrapeSample, "sample", 5,
		"Number of random icons to show")
	scrapeCmd.Flags().IntVar(&scrapePreview, "preview", 20,
		"Number of leading icons to list")
	scrapeCmd.Flags().BoolVar(&scrapeRobots, "robots", false,
		"Refuse pages disallowed by the host's robots.txt")
	scrapeCmd.Flags().DurationVar(&scrapeTimeout, "timeout", 0,
		"Fetch timeout (default from ICONSCRAPE_TIMEOUT, 30s)")
	scrapeCmd.Flags().StringVar(&scrapeUserAgent, "user-agent", "",
		"User-Agent header sent with requests")
}
