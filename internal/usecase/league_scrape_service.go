package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/riskibarqy/league-scraper/internal/domain/fixture"
	"github.com/riskibarqy/league-scraper/internal/domain/leaguestanding"
	idgen "github.com/riskibarqy/league-scraper/internal/platform/id"
	"github.com/riskibarqy/league-scraper/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const (
	DefaultTargetURL   = "http://okcat.cat/competicions/3/lliga-nacional-catalana/2025/"
	DefaultWaitTimeout = 10 * time.Second
)

// ScrapeResult holds the two datasets of one run.
type ScrapeResult struct {
	Standings []leaguestanding.Standing `json:"standings"`
	Matches   []fixture.Fixture         `json:"matches"`
}

type ScrapeConfig struct {
	TargetURL   string
	WaitTimeout time.Duration
}

type LeagueScrapeService struct {
	driver      PageDriver
	targetURL   string
	waitTimeout time.Duration
	idGen       idgen.Generator
	logger      *logging.Logger
}

func NewLeagueScrapeService(driver PageDriver, cfg ScrapeConfig, idGen idgen.Generator, logger *logging.Logger) *LeagueScrapeService {
	if logger == nil {
		logger = logging.Default()
	}
	if idGen == nil {
		idGen = idgen.NewRandomGenerator()
	}

	return &LeagueScrapeService{
		driver:      driver,
		targetURL:   strings.TrimSpace(cfg.TargetURL),
		waitTimeout: cfg.WaitTimeout,
		idGen:       idGen,
		logger:      logger,
	}
}

// Run loads the page, waits for the standings table and extracts both
// datasets. On any error the result is empty; the page is always closed.
func (s *LeagueScrapeService) Run(ctx context.Context) (ScrapeResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueScrapeService.Run")
	defer span.End()

	if err := s.validate(); err != nil {
		return ScrapeResult{}, err
	}

	runID, err := s.idGen.NewID()
	if err != nil {
		return ScrapeResult{}, fmt.Errorf("generate run id: %w", err)
	}
	logger := s.logger.With("run_id", runID, "url", s.targetURL)
	span.SetAttributes(
		attribute.String("scrape.run_id", runID),
		attribute.String("scrape.url", s.targetURL),
	)

	startedAt := time.Now()
	logger.InfoContext(ctx, "scrape started", "wait_timeout", s.waitTimeout)

	result, err := s.scrape(ctx, logger)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "scrape failed")
		logger.ErrorContext(ctx, "scrape failed", "error", err, "duration", time.Since(startedAt))
		return ScrapeResult{}, err
	}

	span.SetAttributes(
		attribute.Int("scrape.standings", len(result.Standings)),
		attribute.Int("scrape.matches", len(result.Matches)),
	)
	logger.InfoContext(ctx, "scrape finished",
		"standings", len(result.Standings),
		"matches", len(result.Matches),
		"duration", time.Since(startedAt),
	)
	return result, nil
}

func (s *LeagueScrapeService) scrape(ctx context.Context, logger *logging.Logger) (ScrapeResult, error) {
	page, err := s.driver.Open(ctx, s.targetURL)
	if err != nil {
		return ScrapeResult{}, fmt.Errorf("open page: %w", err)
	}
	defer func() {
		if closeErr := page.Close(); closeErr != nil {
			logger.WarnContext(ctx, "close page failed", "error", closeErr)
		}
	}()

	if err := page.WaitForSelector(ctx, StandingsRowSelector, s.waitTimeout); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && !errors.Is(err, ErrRenderTimeout) {
			return ScrapeResult{}, fmt.Errorf("wait for standings table: %w", ctxErr)
		}
		if errors.Is(err, context.DeadlineExceeded) && !errors.Is(err, ErrRenderTimeout) {
			err = fmt.Errorf("%w: %w", ErrRenderTimeout, err)
		}
		return ScrapeResult{}, fmt.Errorf("wait for standings table: %w", err)
	}
	logger.DebugContext(ctx, "standings table rendered")

	doc, err := page.Document(ctx)
	if err != nil {
		return ScrapeResult{}, fmt.Errorf("snapshot document: %w", err)
	}

	return ScrapeResult{
		Standings: BuildStandings(doc.QueryAll(StandingsRowSelector)),
		Matches:   BuildFixtures(doc.QueryAll(MatchTableSelector)),
	}, nil
}

func (s *LeagueScrapeService) validate() error {
	if s.driver == nil {
		return fmt.Errorf("%w: page driver is required", ErrInvalidInput)
	}
	if s.targetURL == "" {
		return fmt.Errorf("%w: target url is required", ErrInvalidInput)
	}
	parsed, err := url.Parse(s.targetURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return fmt.Errorf("%w: target url %q must be an absolute http(s) url", ErrInvalidInput, s.targetURL)
	}
	if s.waitTimeout <= 0 {
		return fmt.Errorf("%w: wait timeout must be > 0", ErrInvalidInput)
	}
	return nil
}
