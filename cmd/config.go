package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultHTTPPort        = "4000"
	defaultLogLevel        = "info"
	defaultLogFormat       = "text"
	defaultStatsSchedule   = "0 * * * * *"
	defaultShutdownTimeout = 5 * time.Second
)

type Config struct {
	HTTPPort        string
	LogLevel        slog.Level
	LogFormat       string
	StatsSchedule   string
	ShutdownTimeout time.Duration
}

// LoadConfig reads the configuration from the environment. Variables in
// envFile are loaded first without overriding the process environment; a
// missing file is not an error.
func LoadConfig(envFile string) (Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", envFile, err)
	}

	cfg := Config{
		HTTPPort:      envOrDefault("HTTP_PORT", defaultHTTPPort),
		LogFormat:     strings.ToLower(envOrDefault("LOG_FORMAT", defaultLogFormat)),
		StatsSchedule: defaultStatsSchedule,
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(envOrDefault("LOG_LEVEL", defaultLogLevel))); err != nil {
		return Config{}, fmt.Errorf("LOG_LEVEL: %w", err)
	}

	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return Config{}, fmt.Errorf("LOG_FORMAT: %q is not one of text, json", cfg.LogFormat)
	}

	// An explicitly empty schedule disables the stats job.
	if v, ok := os.LookupEnv("STATS_SCHEDULE"); ok {
		cfg.StatsSchedule = strings.TrimSpace(v)
	}

	cfg.ShutdownTimeout = defaultShutdownTimeout
	if v := os.Getenv("SHUTDOWN_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("SHUTDOWN_TIMEOUT: %w", err)
		}
		cfg.ShutdownTimeout = d
	}

	return cfg, nil
}

// Addr is the listen address of the HTTP server.
func (c Config) Addr() string {
	return fmt.Sprintf("0.0.0.0:%s", c.HTTPPort)
}

// NewLogger builds the process logger from the configured level and format.
func (c Config) NewLogger() *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.LogLevel}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
