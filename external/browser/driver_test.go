package browser

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/riskibarqy/league-scraper/internal/usecase"
)

func TestNewDriver_SelectsBackend(t *testing.T) {
	t.Parallel()

	cases := []struct {
		kind string
		want any
	}{
		{kind: "", want: &ChromedpDriver{}},
		{kind: "chromedp", want: &ChromedpDriver{}},
		{kind: " ROD ", want: &RodDriver{}},
	}

	for _, tc := range cases {
		driver, err := NewDriver(Config{Kind: tc.kind, Headless: true})
		if err != nil {
			t.Fatalf("kind %q: unexpected error: %v", tc.kind, err)
		}
		if fmt.Sprintf("%T", driver) != fmt.Sprintf("%T", tc.want) {
			t.Fatalf("kind %q: expected %T, got %T", tc.kind, tc.want, driver)
		}
	}
}

func TestNewDriver_RejectsUnknownBackend(t *testing.T) {
	t.Parallel()

	if _, err := NewDriver(Config{Kind: "firefox"}); err == nil {
		t.Fatalf("expected error for unknown backend")
	}
}

func TestChromedpDriver_AllocatorOptions(t *testing.T) {
	t.Parallel()

	plain := &ChromedpDriver{headless: true}
	withBin := &ChromedpDriver{headless: true, binPath: "/usr/bin/chromium"}
	if len(withBin.allocatorOptions()) != len(plain.allocatorOptions())+1 {
		t.Fatalf("expected exec path option to be appended")
	}
}

func TestNewDriver_NavigationTimeout(t *testing.T) {
	t.Parallel()

	driver, err := NewDriver(Config{Kind: KindChromedp})
	if err != nil {
		t.Fatalf("new driver: %v", err)
	}
	if got := driver.(*ChromedpDriver).navTimeout; got != DefaultNavigationTimeout {
		t.Fatalf("expected default navigation timeout, got %s", got)
	}

	driver, err = NewDriver(Config{Kind: KindRod, NavigationTimeout: 5 * time.Second})
	if err != nil {
		t.Fatalf("new driver: %v", err)
	}
	if got := driver.(*RodDriver).navTimeout; got != 5*time.Second {
		t.Fatalf("expected configured navigation timeout, got %s", got)
	}
}

func TestBoundedContext_CallerDeadlineIsRenderTimeout(t *testing.T) {
	t.Parallel()

	caller, cancelCaller := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancelCaller()

	ctx, cancel := boundedContext(context.Background(), caller, time.Minute)
	defer cancel()

	<-ctx.Done()
	if !errors.Is(ctx.Err(), context.DeadlineExceeded) {
		t.Fatalf("expected DeadlineExceeded, got %v", ctx.Err())
	}
	if err := classifyWaitError(ctx.Err(), "tr", time.Minute); !errors.Is(err, usecase.ErrRenderTimeout) {
		t.Fatalf("expected ErrRenderTimeout, got %v", err)
	}
}

func TestBoundedContext_OwnTimeout(t *testing.T) {
	t.Parallel()

	ctx, cancel := boundedContext(context.Background(), context.Background(), 20*time.Millisecond)
	defer cancel()

	<-ctx.Done()
	if !errors.Is(ctx.Err(), context.DeadlineExceeded) {
		t.Fatalf("expected DeadlineExceeded, got %v", ctx.Err())
	}
}

func TestBoundedContext_CallerCancelPropagates(t *testing.T) {
	t.Parallel()

	caller, cancelCaller := context.WithCancel(context.Background())
	ctx, cancel := boundedContext(context.Background(), caller, time.Minute)
	defer cancel()

	cancelCaller()
	<-ctx.Done()
	if !errors.Is(ctx.Err(), context.Canceled) {
		t.Fatalf("expected Canceled, got %v", ctx.Err())
	}
}

func TestClassifyWaitError(t *testing.T) {
	t.Parallel()

	if err := classifyWaitError(nil, "tr", time.Second); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}

	timeout := classifyWaitError(fmt.Errorf("waiting: %w", context.DeadlineExceeded), "tr", time.Second)
	if !errors.Is(timeout, usecase.ErrRenderTimeout) {
		t.Fatalf("expected ErrRenderTimeout, got %v", timeout)
	}

	canceled := classifyWaitError(context.Canceled, "tr", time.Second)
	if !errors.Is(canceled, context.Canceled) || errors.Is(canceled, usecase.ErrRenderTimeout) {
		t.Fatalf("expected cancellation to pass through, got %v", canceled)
	}

	crashed := classifyWaitError(errors.New("websocket closed"), "tr", time.Second)
	if !errors.Is(crashed, usecase.ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", crashed)
	}
}

func TestParseSnapshot(t *testing.T) {
	t.Parallel()

	doc, err := parseSnapshot(`<html><body><table><caption> Jornada 2 </caption></table></body></html>`)
	if err != nil {
		t.Fatalf("parse snapshot: %v", err)
	}
	if got := doc.QueryFirst("caption").Text(); got != " Jornada 2 " {
		t.Fatalf("unexpected caption text: %q", got)
	}
}
