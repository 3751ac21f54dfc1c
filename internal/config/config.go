// Package config loads server settings from the environment, with an
// optional .env file for local development.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2/log"
	"github.com/joho/godotenv"
)

var ErrInvalidConfig = errors.New("invalid configuration")

const (
	DefaultPort        = 8080
	DefaultEnv         = "development"
	DefaultCORSOrigins = "http://localhost:5173"
)

type Config struct {
	Port        int
	Env         string
	CORSOrigins []string
	LogLevel    log.Level
}

// Load reads .env files (when present) and then the process environment.
// Values already set in the environment win over .env entries.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: reading %s: %v", ErrInvalidConfig, f, err)
		}
	}

	cfg := &Config{
		Port:     DefaultPort,
		Env:      getEnv("ENV", DefaultEnv),
		LogLevel: log.LevelInfo,
	}

	if raw := os.Getenv("PORT"); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil || port <= 0 || port > 65535 {
			return nil, fmt.Errorf("%w: PORT %q", ErrInvalidConfig, raw)
		}
		cfg.Port = port
	}

	for _, origin := range strings.Split(getEnv("CORS_ORIGINS", DefaultCORSOrigins), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, origin)
		}
	}
	if len(cfg.CORSOrigins) == 0 {
		return nil, fmt.Errorf("%w: CORS_ORIGINS is empty", ErrInvalidConfig)
	}

	level, err := parseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}
	cfg.LogLevel = level

	return cfg, nil
}

// Addr is the listen address for fiber.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// AllowOrigins joins the origins the way the CORS middleware expects them.
func (c *Config) AllowOrigins() string {
	return strings.Join(c.CORSOrigins, ",")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseLevel(s string) (log.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return log.LevelTrace, nil
	case "debug":
		return log.LevelDebug, nil
	case "info":
		return log.LevelInfo, nil
	case "warn", "warning":
		return log.LevelWarn, nil
	case "error":
		return log.LevelError, nil
	}
	return log.LevelInfo, fmt.Errorf("%w: LOG_LEVEL %q", ErrInvalidConfig, s)
}
