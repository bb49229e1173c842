package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	AppName = "movieobserver"

	defaultAPIURL      = "http://localhost:8000"
	defaultAddr        = ":3000"
	defaultHTTPTimeout = 12 * time.Second
)

// Config holds the settings resolved once at startup.
type Config struct {
	APIURL      string
	Addr        string
	Environment string
	LogLevel    slog.Level
	LogFile     string
	HTTPTimeout time.Duration
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	// .env is optional; production deployments set the variables directly.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from getenv.
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		APIURL:      firstNonEmpty(getenv("API_URL"), getenv("NEXT_PUBLIC_API_URL"), defaultAPIURL),
		Environment: firstNonEmpty(getenv("GO_ENV"), "development"),
		LogLevel:    parseLevel(getenv("LOG_LEVEL")),
		LogFile:     strings.TrimSpace(getenv("LOG_FILE")),
		HTTPTimeout: defaultHTTPTimeout,
	}

	cfg.APIURL = strings.TrimRight(strings.TrimSpace(cfg.APIURL), "/")
	u, err := url.Parse(cfg.APIURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid API_URL %q", cfg.APIURL)
	}

	switch {
	case strings.TrimSpace(getenv("ADDR")) != "":
		cfg.Addr = strings.TrimSpace(getenv("ADDR"))
	case strings.TrimSpace(getenv("PORT")) != "":
		cfg.Addr = ":" + strings.TrimSpace(getenv("PORT"))
	default:
		cfg.Addr = defaultAddr
	}

	if raw := strings.TrimSpace(getenv("HTTP_TIMEOUT")); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil || timeout <= 0 {
			return nil, fmt.Errorf("invalid HTTP_TIMEOUT %q", raw)
		}
		cfg.HTTPTimeout = timeout
	}

	return cfg, nil
}

// IsProduction reports whether GO_ENV is production.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// LogFilePath returns the configured log file, defaulting to the user cache dir.
func (c *Config) LogFilePath() (string, error) {
	if c.LogFile != "" {
		return c.LogFile, nil
	}
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AppName, AppName+".log"), nil
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
