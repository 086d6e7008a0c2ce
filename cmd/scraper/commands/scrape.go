package commands

import (
	"context"
	"strings"
	"time"

	"github.com/riskibarqy/league-scraper/internal/app"
	"github.com/riskibarqy/league-scraper/internal/config"
	"github.com/riskibarqy/league-scraper/internal/observability"
	"github.com/riskibarqy/league-scraper/internal/platform/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type scrapeFlags struct {
	url      string
	timeout  time.Duration
	browser  string
	format   string
	headless bool
}

var flags scrapeFlags

var scrapeCmd = &cobra.Command{
	Use:   "scrape [--url <page>] [--timeout 10s] [--browser chromedp|rod] [--format text|json]",
	Short: "Loads the competition page once and prints standings and matches.",
	Args:  cobra.NoArgs,
	RunE:  runScrape,
}

func init() {
	bindScrapeFlags(rootCmd.Flags())
	bindScrapeFlags(scrapeCmd.Flags())

	// Scraping is the default action.
	rootCmd.Args = cobra.NoArgs
	rootCmd.RunE = runScrape
	rootCmd.AddCommand(scrapeCmd)
}

func bindScrapeFlags(fs *pflag.FlagSet) {
	fs.StringVar(&flags.url, "url", "", "Competition page to load (overrides SCRAPER_TARGET_URL).")
	fs.DurationVar(&flags.timeout, "timeout", 0, "Maximum wait for the standings table (overrides SCRAPER_WAIT_TIMEOUT).")
	fs.StringVar(&flags.browser, "browser", "", "Browser backend: chromedp or rod (overrides SCRAPER_BROWSER).")
	fs.StringVar(&flags.format, "format", "", "Output format: text or json (overrides SCRAPER_OUTPUT_FORMAT).")
	fs.BoolVar(&flags.headless, "headless", true, "Run the browser headless (overrides SCRAPER_HEADLESS).")
}

func runScrape(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger := logging.NewJSON(cfg.LogLevel)
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	shutdownTracing, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			logger.Warn("shutdown tracing failed", "error", err)
		}
	}()

	scraper, err := app.NewScraper(cfg, cmd.OutOrStdout(), logger)
	if err != nil {
		return err
	}
	return scraper.Run(cmd.Context())
}

// loadConfig merges env values with explicitly set flags. Validation runs on
// the merged result, so a flag can replace an invalid env value.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	if err := applyFlags(cmd, &cfg); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// applyFlags overlays explicitly set flags on the env config and revalidates.
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	fs := cmd.Flags()
	if fs.Changed("url") {
		cfg.TargetURL = strings.TrimSpace(flags.url)
	}
	if fs.Changed("timeout") {
		cfg.WaitTimeout = flags.timeout
	}
	if fs.Changed("browser") {
		cfg.Browser = strings.ToLower(strings.TrimSpace(flags.browser))
	}
	if fs.Changed("format") {
		cfg.OutputFormat = strings.ToLower(strings.TrimSpace(flags.format))
	}
	if fs.Changed("headless") {
		cfg.Headless = flags.headless
	}
	return cfg.Validate()
}
