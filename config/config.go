// Package config loads runtime settings from the environment (and an optional .env file).
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// ErrInvalid indicates an environment value that cannot be parsed.
var ErrInvalid = errors.New("config: invalid value")

// Defaults.
const (
	DefaultPort         = ":8000"
	DefaultEnv          = "local"
	DefaultBaseInterval = time.Second
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "text"
	DefaultBackendURL   = "ws://localhost:8000/ws/kruskal"
	DefaultCacheSize    = 128
)

type Config struct {
	Port           string
	Env            string
	BaseInterval   time.Duration // replay tick at speed 1
	LogLevel       string
	LogFormat      string
	BackendURL     string
	CacheSize      int
	AllowedOrigins []string // empty means any origin
}

// Load reads .env (if present) and the KRUSKAL_* / PORT / APP_ENV variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:           normalizePort(firstNonEmpty(os.Getenv("PORT"), DefaultPort)),
		Env:            firstNonEmpty(strings.TrimSpace(os.Getenv("APP_ENV")), DefaultEnv),
		BaseInterval:   DefaultBaseInterval,
		LogLevel:       firstNonEmpty(strings.TrimSpace(os.Getenv("KRUSKAL_LOG_LEVEL")), DefaultLogLevel),
		LogFormat:      firstNonEmpty(strings.TrimSpace(os.Getenv("KRUSKAL_LOG_FORMAT")), DefaultLogFormat),
		BackendURL:     firstNonEmpty(strings.TrimSpace(os.Getenv("KRUSKAL_BACKEND_URL")), DefaultBackendURL),
		CacheSize:      DefaultCacheSize,
		AllowedOrigins: splitList(os.Getenv("KRUSKAL_ALLOWED_ORIGINS")),
	}

	if raw := strings.TrimSpace(os.Getenv("KRUSKAL_BASE_INTERVAL")); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("Load: KRUSKAL_BASE_INTERVAL=%q: %w", raw, ErrInvalid)
		}
		cfg.BaseInterval = d
	}
	if raw := strings.TrimSpace(os.Getenv("KRUSKAL_CACHE_SIZE")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("Load: KRUSKAL_CACHE_SIZE=%q: %w", raw, ErrInvalid)
		}
		cfg.CacheSize = n
	}
	if f := cfg.LogFormat; f != "text" && f != "json" {
		return nil, fmt.Errorf("Load: KRUSKAL_LOG_FORMAT=%q: %w", f, ErrInvalid)
	}

	return cfg, nil
}

func normalizePort(p string) string {
	p = strings.TrimSpace(p)
	if strings.Contains(p, ":") {
		return p
	}

	return ":" + p
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
