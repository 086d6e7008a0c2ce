package usecase

import (
	"context"
	"time"

	"github.com/riskibarqy/league-scraper/internal/platform/dom"
)

// PageDriver opens a browser page on a URL. Implementations live in external/browser.
type PageDriver interface {
	Open(ctx context.Context, url string) (Page, error)
}

// Page is one rendered page. Close releases every browser resource behind it
// and must be safe to call after any other method failed.
type Page interface {
	// WaitForSelector blocks until selector matches. It returns an error
	// wrapping ErrRenderTimeout when timeout expires first.
	WaitForSelector(ctx context.Context, selector string, timeout time.Duration) error
	// Document snapshots the current DOM.
	Document(ctx context.Context) (dom.Node, error)
	Close() error
}
