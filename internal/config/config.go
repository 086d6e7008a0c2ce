package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/league-scraper/internal/platform/logging"
	"github.com/riskibarqy/league-scraper/internal/usecase"
)

const (
	// DefaultNavigationTimeout bounds page load before the render wait starts.
	DefaultNavigationTimeout = 30 * time.Second

	BrowserChromedp = "chromedp"
	BrowserRod      = "rod"

	OutputText = "text"
	OutputJSON = "json"
)

// Config stores runtime configuration for the scraper.
type Config struct {
	AppEnv         string
	ServiceName    string
	ServiceVersion string
	LogLevel       logging.Level
	TargetURL      string
	WaitTimeout    time.Duration
	NavTimeout     time.Duration
	Browser        string
	Headless       bool
	BrowserBin     string
	OutputFormat   string
	UptraceEnabled bool
	UptraceDSN     string
}

// Load reads the environment. Malformed values fail here; range and enum
// checks are left to Validate.
func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceDSN == "" {
		uptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	waitTimeout, err := time.ParseDuration(getEnv("SCRAPER_WAIT_TIMEOUT", usecase.DefaultWaitTimeout.String()))
	if err != nil {
		return Config{}, fmt.Errorf("parse SCRAPER_WAIT_TIMEOUT: %w", err)
	}

	navigationTimeout, err := time.ParseDuration(getEnv("SCRAPER_NAVIGATION_TIMEOUT", DefaultNavigationTimeout.String()))
	if err != nil {
		return Config{}, fmt.Errorf("parse SCRAPER_NAVIGATION_TIMEOUT: %w", err)
	}

	headless, err := strconv.ParseBool(getEnv("SCRAPER_HEADLESS", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SCRAPER_HEADLESS: %w", err)
	}

	cfg := Config{
		AppEnv:         appEnv,
		ServiceName:    getEnv("APP_SERVICE_NAME", "league-scraper"),
		ServiceVersion: getEnv("APP_SERVICE_VERSION", "dev"),
		LogLevel:       parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
		TargetURL:      strings.TrimSpace(getEnv("SCRAPER_TARGET_URL", usecase.DefaultTargetURL)),
		WaitTimeout:    waitTimeout,
		NavTimeout:     navigationTimeout,
		Browser:        strings.ToLower(strings.TrimSpace(getEnv("SCRAPER_BROWSER", BrowserChromedp))),
		Headless:       headless,
		BrowserBin:     strings.TrimSpace(getEnv("SCRAPER_BROWSER_BIN", "")),
		OutputFormat:   strings.ToLower(strings.TrimSpace(getEnv("SCRAPER_OUTPUT_FORMAT", OutputText))),
		UptraceEnabled: uptraceEnabled,
		UptraceDSN:     uptraceDSN,
	}
	return cfg, nil
}

// Validate checks the scraper fields. Load only parses, so Validate runs
// once flag overrides have been applied.
func (c Config) Validate() error {
	if err := validateTargetURL(c.TargetURL); err != nil {
		return err
	}
	if c.WaitTimeout <= 0 {
		return fmt.Errorf("SCRAPER_WAIT_TIMEOUT must be > 0")
	}
	if c.NavTimeout <= 0 {
		return fmt.Errorf("SCRAPER_NAVIGATION_TIMEOUT must be > 0")
	}
	switch c.Browser {
	case BrowserChromedp, BrowserRod:
	default:
		return fmt.Errorf("invalid SCRAPER_BROWSER %q: valid values are %s, %s", c.Browser, BrowserChromedp, BrowserRod)
	}
	switch c.OutputFormat {
	case OutputText, OutputJSON:
	default:
		return fmt.Errorf("invalid SCRAPER_OUTPUT_FORMAT %q: valid values are %s, %s", c.OutputFormat, OutputText, OutputJSON)
	}
	return nil
}

func validateTargetURL(raw string) error {
	if raw == "" {
		return fmt.Errorf("SCRAPER_TARGET_URL cannot be empty")
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("parse SCRAPER_TARGET_URL: %w", err)
	}
	if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return fmt.Errorf("SCRAPER_TARGET_URL %q must be an absolute http(s) url", raw)
	}
	return nil
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	items := strings.Split(raw, ",")
	for _, item := range items {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			value := strings.TrimSpace(parts[1])
			return strings.Trim(value, "\"'")
		}
	}

	return ""
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
