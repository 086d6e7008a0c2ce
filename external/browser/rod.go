package browser

import (
	"context"
	"sync"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/riskibarqy/league-scraper/internal/platform/dom"
	"github.com/riskibarqy/league-scraper/internal/platform/logging"
	"github.com/riskibarqy/league-scraper/internal/usecase"
	"go.opentelemetry.io/otel/attribute"
)

type RodDriver struct {
	headless   bool
	binPath    string
	navTimeout time.Duration
	logger     *logging.Logger
}

func (d *RodDriver) launcher(ctx context.Context) *launcher.Launcher {
	l := launcher.New().
		Context(ctx).
		Headless(d.headless).
		NoSandbox(true)
	if d.binPath != "" {
		l = l.Bin(d.binPath)
	}
	return l
}

func (d *RodDriver) Open(ctx context.Context, url string) (usecase.Page, error) {
	ctx, span := startSpan(ctx, "browser.rod.Open", attribute.String("browser.url", url))
	defer span.End()

	l := d.launcher(context.WithoutCancel(ctx))
	controlURL, err := l.Launch()
	if err != nil {
		span.RecordError(err)
		l.Cleanup()
		return nil, dependencyError("launch browser", err)
	}

	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		span.RecordError(err)
		l.Kill()
		l.Cleanup()
		return nil, dependencyError("connect browser", err)
	}

	page := &rodPage{browser: browser, launcher: l, logger: d.logger}

	navCtx, cancelNav := context.WithTimeout(ctx, d.navTimeout)
	target, err := browser.Context(navCtx).Page(proto.TargetCreateTarget{URL: url})
	if err == nil {
		err = target.WaitLoad()
	}
	cancelNav()
	if err != nil {
		span.RecordError(err)
		_ = page.Close()
		return nil, dependencyError("navigate "+url, err)
	}
	page.page = target

	d.logger.DebugContext(ctx, "page opened", "url", url)
	return page, nil
}

type rodPage struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
	page     *rod.Page
	logger   *logging.Logger

	closeOnce sync.Once
	closeErr  error
}

func (p *rodPage) WaitForSelector(ctx context.Context, selector string, timeout time.Duration) error {
	ctx, span := startSpan(ctx, "browser.rod.WaitForSelector", attribute.String("browser.selector", selector))
	defer span.End()

	if _, err := p.page.Context(ctx).Timeout(timeout).Element(selector); err != nil {
		span.RecordError(err)
		return classifyWaitError(err, selector, timeout)
	}
	return nil
}

func (p *rodPage) Document(ctx context.Context) (dom.Node, error) {
	ctx, span := startSpan(ctx, "browser.rod.Document")
	defer span.End()

	html, err := p.page.Context(ctx).HTML()
	if err != nil {
		span.RecordError(err)
		return nil, dependencyError("snapshot page", err)
	}
	return parseSnapshot(html)
}

func (p *rodPage) Close() error {
	p.closeOnce.Do(func() {
		if err := p.browser.Close(); err != nil {
			p.closeErr = crerr.Wrap(err, "close browser")
			p.launcher.Kill()
		}
		p.launcher.Cleanup()
		p.logger.Debug("browser closed")
	})
	return p.closeErr
}
