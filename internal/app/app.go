package app

import (
	"context"
	"fmt"
	"io"

	"github.com/riskibarqy/league-scraper/external/browser"
	"github.com/riskibarqy/league-scraper/internal/config"
	"github.com/riskibarqy/league-scraper/internal/interfaces/console"
	idgen "github.com/riskibarqy/league-scraper/internal/platform/id"
	"github.com/riskibarqy/league-scraper/internal/platform/logging"
	"github.com/riskibarqy/league-scraper/internal/usecase"
)

// Scraper runs one scrape and prints the result.
type Scraper struct {
	service *usecase.LeagueScrapeService
	printer *console.Printer
}

func NewScraper(cfg config.Config, out io.Writer, logger *logging.Logger) (*Scraper, error) {
	driver, err := browser.NewDriver(browser.Config{
		Kind:              cfg.Browser,
		Headless:          cfg.Headless,
		BinPath:           cfg.BrowserBin,
		NavigationTimeout: cfg.NavTimeout,
		Logger:            logger,
	})
	if err != nil {
		return nil, fmt.Errorf("build page driver: %w", err)
	}

	return newScraper(cfg, driver, out, logger)
}

func newScraper(cfg config.Config, driver usecase.PageDriver, out io.Writer, logger *logging.Logger) (*Scraper, error) {
	printer, err := console.NewPrinter(out, cfg.OutputFormat)
	if err != nil {
		return nil, fmt.Errorf("build printer: %w", err)
	}

	svc := usecase.NewLeagueScrapeService(
		driver,
		usecase.ScrapeConfig{
			TargetURL:   cfg.TargetURL,
			WaitTimeout: cfg.WaitTimeout,
		},
		idgen.NewRandomGenerator(),
		logger,
	)

	return &Scraper{service: svc, printer: printer}, nil
}

// Run prints nothing when the scrape fails.
func (s *Scraper) Run(ctx context.Context) error {
	result, err := s.service.Run(ctx)
	if err != nil {
		return err
	}
	return s.printer.Print(result)
}
