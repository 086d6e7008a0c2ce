package browser

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/league-scraper/internal/platform/dom"
	"github.com/riskibarqy/league-scraper/internal/platform/logging"
	"github.com/riskibarqy/league-scraper/internal/usecase"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	KindChromedp = "chromedp"
	KindRod      = "rod"

	DefaultNavigationTimeout = 30 * time.Second
)

var tracer = otel.Tracer("league-scraper/external/browser")

// Config selects and tunes the headless browser backend.
type Config struct {
	Kind     string
	Headless bool
	BinPath  string
	// NavigationTimeout bounds page load in Open. Zero means DefaultNavigationTimeout.
	NavigationTimeout time.Duration
	Logger            *logging.Logger
}

// NewDriver returns the page driver for cfg.Kind. Each Open launches a
// dedicated browser process that is torn down by the page's Close.
func NewDriver(cfg Config) (usecase.PageDriver, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	navTimeout := cfg.NavigationTimeout
	if navTimeout <= 0 {
		navTimeout = DefaultNavigationTimeout
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Kind)) {
	case "", KindChromedp:
		return &ChromedpDriver{
			headless:   cfg.Headless,
			binPath:    strings.TrimSpace(cfg.BinPath),
			navTimeout: navTimeout,
			logger:     logger.With("browser", KindChromedp),
		}, nil
	case KindRod:
		return &RodDriver{
			headless:   cfg.Headless,
			binPath:    strings.TrimSpace(cfg.BinPath),
			navTimeout: navTimeout,
			logger:     logger.With("browser", KindRod),
		}, nil
	default:
		return nil, fmt.Errorf("unsupported browser %q: valid values are %s, %s", cfg.Kind, KindChromedp, KindRod)
	}
}

func startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

// boundedContext derives a context from base that expires after timeout or at
// caller's deadline, whichever comes first, so both report DeadlineExceeded.
// Cancelling caller cancels the result.
func boundedContext(base, caller context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	deadline := time.Now().Add(timeout)
	if d, ok := caller.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	ctx, cancel := context.WithDeadline(base, deadline)
	stop := context.AfterFunc(caller, func() {
		if stderrors.Is(caller.Err(), context.Canceled) {
			cancel()
		}
	})
	return ctx, func() {
		stop()
		cancel()
	}
}

// classifyWaitError maps a backend wait failure onto the usecase sentinels.
// A deadline hit while waiting is a render timeout; anything else means the
// browser itself failed.
func classifyWaitError(err error, selector string, timeout time.Duration) error {
	if err == nil {
		return nil
	}
	if stderrors.Is(err, context.DeadlineExceeded) {
		return crerr.Wrapf(usecase.ErrRenderTimeout, "selector %q not present after %s", selector, timeout)
	}
	if stderrors.Is(err, context.Canceled) {
		return crerr.Wrapf(err, "wait for selector %q", selector)
	}
	return fmt.Errorf("%w: wait for selector %q: %v", usecase.ErrDependencyUnavailable, selector, err)
}

func dependencyError(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", usecase.ErrDependencyUnavailable, op, err)
}

func parseSnapshot(html string) (dom.Node, error) {
	doc, err := dom.ParseString(html)
	if err != nil {
		return nil, crerr.Wrap(err, "parse page snapshot")
	}
	return doc, nil
}
