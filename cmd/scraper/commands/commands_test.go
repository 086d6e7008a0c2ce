package commands

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/riskibarqy/league-scraper/internal/config"
	"github.com/riskibarqy/league-scraper/internal/usecase"
	"github.com/spf13/cobra"
)

func baseConfig() config.Config {
	return config.Config{
		TargetURL:    usecase.DefaultTargetURL,
		WaitTimeout:  10 * time.Second,
		NavTimeout:   config.DefaultNavigationTimeout,
		Browser:      config.BrowserChromedp,
		Headless:     true,
		OutputFormat: config.OutputText,
	}
}

func TestApplyFlags_OverridesOnlyChangedFlags(t *testing.T) {
	t.Cleanup(func() { flags = scrapeFlags{headless: true} })

	cmd := newTestScrapeCommand()
	if err := cmd.ParseFlags([]string{"--timeout=3s", "--format=JSON"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	cfg := baseConfig()
	if err := applyFlags(cmd, &cfg); err != nil {
		t.Fatalf("apply flags: %v", err)
	}
	if cfg.WaitTimeout != 3*time.Second {
		t.Fatalf("unexpected WaitTimeout: %s", cfg.WaitTimeout)
	}
	if cfg.OutputFormat != config.OutputJSON {
		t.Fatalf("unexpected OutputFormat: %q", cfg.OutputFormat)
	}
	if cfg.TargetURL != usecase.DefaultTargetURL || cfg.Browser != config.BrowserChromedp || !cfg.Headless {
		t.Fatalf("unchanged flags must keep env values: %+v", cfg)
	}
}

func TestApplyFlags_RevalidatesOverrides(t *testing.T) {
	t.Cleanup(func() { flags = scrapeFlags{headless: true} })

	cmd := newTestScrapeCommand()
	if err := cmd.ParseFlags([]string{"--url=not a url"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	cfg := baseConfig()
	if err := applyFlags(cmd, &cfg); err == nil {
		t.Fatalf("expected validation error for relative url")
	}
}

func TestLoadConfig_FlagsReplaceInvalidEnvValues(t *testing.T) {
	t.Cleanup(func() { flags = scrapeFlags{headless: true} })
	t.Setenv("SCRAPER_WAIT_TIMEOUT", "0s")
	t.Setenv("SCRAPER_BROWSER", "firefox")
	t.Setenv("SCRAPER_OUTPUT_FORMAT", "csv")

	cmd := newTestScrapeCommand()
	if err := cmd.ParseFlags([]string{"--timeout=5s", "--browser=rod", "--format=json"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.WaitTimeout != 5*time.Second || cfg.Browser != config.BrowserRod || cfg.OutputFormat != config.OutputJSON {
		t.Fatalf("flags did not override env: %+v", cfg)
	}
}

func TestLoadConfig_InvalidEnvWithoutOverrideFails(t *testing.T) {
	t.Cleanup(func() { flags = scrapeFlags{headless: true} })
	t.Setenv("SCRAPER_WAIT_TIMEOUT", "0s")

	cmd := newTestScrapeCommand()
	if err := cmd.ParseFlags([]string{"--browser=rod"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if _, err := loadConfig(cmd); err == nil {
		t.Fatalf("expected validation error for SCRAPER_WAIT_TIMEOUT=0s")
	}
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute version: %v", err)
	}
	if !strings.Contains(out.String(), "Version:") {
		t.Fatalf("unexpected version output: %q", out.String())
	}
}

// newTestScrapeCommand binds the scrape flags to a fresh flag set, so
// Changed state does not leak between tests.
func newTestScrapeCommand() *cobra.Command {
	cmd := &cobra.Command{Use: "scrape"}
	bindScrapeFlags(cmd.Flags())
	return cmd
}
