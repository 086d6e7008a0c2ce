package browser

import (
	"context"
	"sync"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/riskibarqy/league-scraper/internal/platform/dom"
	"github.com/riskibarqy/league-scraper/internal/platform/logging"
	"github.com/riskibarqy/league-scraper/internal/usecase"
	"go.opentelemetry.io/otel/attribute"
)

type ChromedpDriver struct {
	headless   bool
	binPath    string
	navTimeout time.Duration
	logger     *logging.Logger
}

func (d *ChromedpDriver) allocatorOptions() []chromedp.ExecAllocatorOption {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox,
		chromedp.Flag("headless", d.headless),
	)
	if d.binPath != "" {
		opts = append(opts, chromedp.ExecPath(d.binPath))
	}
	return opts
}

// Open starts a browser and navigates to url. The browser outlives ctx and
// is released by Close.
func (d *ChromedpDriver) Open(ctx context.Context, url string) (usecase.Page, error) {
	ctx, span := startSpan(ctx, "browser.chromedp.Open", attribute.String("browser.url", url))
	defer span.End()

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(context.WithoutCancel(ctx), d.allocatorOptions()...)
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)

	page := &chromedpPage{
		ctx:           browserCtx,
		cancelBrowser: cancelBrowser,
		cancelAlloc:   cancelAlloc,
		logger:        d.logger,
	}

	// The first Run starts the browser and must not carry a deadline, or
	// chromedp tears the browser down when it expires.
	stop := context.AfterFunc(ctx, cancelBrowser)
	err := chromedp.Run(browserCtx)
	stop()
	if err != nil {
		span.RecordError(err)
		_ = page.Close()
		return nil, dependencyError("launch browser", err)
	}

	navCtx, cancelNav := boundedContext(browserCtx, ctx, d.navTimeout)
	err = chromedp.Run(navCtx, chromedp.Navigate(url))
	cancelNav()
	if err != nil {
		span.RecordError(err)
		_ = page.Close()
		return nil, dependencyError("navigate "+url, err)
	}

	d.logger.DebugContext(ctx, "page opened", "url", url)
	return page, nil
}

type chromedpPage struct {
	ctx           context.Context
	cancelBrowser context.CancelFunc
	cancelAlloc   context.CancelFunc
	logger        *logging.Logger

	closeOnce sync.Once
	closeErr  error
}

func (p *chromedpPage) WaitForSelector(ctx context.Context, selector string, timeout time.Duration) error {
	ctx, span := startSpan(ctx, "browser.chromedp.WaitForSelector", attribute.String("browser.selector", selector))
	defer span.End()

	waitCtx, cancel := boundedContext(p.ctx, ctx, timeout)
	defer cancel()

	if err := chromedp.Run(waitCtx, chromedp.WaitReady(selector, chromedp.ByQuery)); err != nil {
		span.RecordError(err)
		return classifyWaitError(err, selector, timeout)
	}
	return nil
}

func (p *chromedpPage) Document(ctx context.Context) (dom.Node, error) {
	_, span := startSpan(ctx, "browser.chromedp.Document")
	defer span.End()

	var html string
	if err := chromedp.Run(p.ctx, chromedp.OuterHTML("html", &html, chromedp.ByQuery)); err != nil {
		span.RecordError(err)
		return nil, dependencyError("snapshot page", err)
	}
	return parseSnapshot(html)
}

func (p *chromedpPage) Close() error {
	p.closeOnce.Do(func() {
		p.closeErr = chromedp.Cancel(p.ctx)
		p.cancelBrowser()
		p.cancelAlloc()
		p.logger.Debug("browser closed")
	})
	return p.closeErr
}
