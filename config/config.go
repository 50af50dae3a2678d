// Package config loads service configuration from YAML and the environment
package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"cipher-backend/models"

	"github.com/gin-contrib/cors"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPort          = 8080
	DefaultAllowedOrigin = "http://localhost:3000"
	DefaultMaxBodyBytes  = 1 << 20
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "text"
	DefaultMetricsPath   = "/metrics"

	// APIPrefix is reserved for the cipher API routes.
	APIPrefix = "/api"

	RequestIDHeader = "X-Request-ID"
)

// Load reads the YAML file at path (skipped when path is empty), applies
// defaults and environment overrides, then validates the result.
func Load(path string) (*models.Config, error) {
	var cfg models.Config

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
		}
	}

	ApplyDefaults(&cfg)

	if err := applyEnvOverrides(&cfg); err != nil {
		return nil, err
	}

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

func ApplyDefaults(cfg *models.Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultPort
	}
	if len(cfg.Server.AllowedOrigins) == 0 {
		cfg.Server.AllowedOrigins = []string{DefaultAllowedOrigin}
	}
	if cfg.Server.MaxBodyBytes == 0 {
		cfg.Server.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = DefaultMetricsPath
	}
}

// applyEnvOverrides honours PORT and CIPHER_* variables.
func applyEnvOverrides(cfg *models.Config) error {
	if val := os.Getenv("PORT"); val != "" {
		port, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", val, err)
		}
		cfg.Server.Port = port
	}
	if val := os.Getenv("CIPHER_LOG_LEVEL"); val != "" {
		cfg.Log.Level = strings.ToLower(val)
	}
	if val := os.Getenv("CIPHER_LOG_FORMAT"); val != "" {
		cfg.Log.Format = strings.ToLower(val)
	}
	if val := os.Getenv("CIPHER_METRICS_ENABLED"); val != "" {
		enabled, err := strconv.ParseBool(val)
		if err != nil {
			return fmt.Errorf("invalid CIPHER_METRICS_ENABLED %q: %w", val, err)
		}
		cfg.Metrics.Enabled = &enabled
	}
	return nil
}

func Validate(cfg *models.Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", cfg.Server.Port)
	}
	if err := CORSConfig(cfg.Server).Validate(); err != nil {
		return fmt.Errorf("server.allowed_origins: %w", err)
	}
	if _, err := parseLevel(cfg.Log.Level); err != nil {
		return err
	}
	switch cfg.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", cfg.Log.Format)
	}
	if !strings.HasPrefix(cfg.Metrics.Path, "/") {
		return fmt.Errorf("metrics.path must start with '/', got %q", cfg.Metrics.Path)
	}
	if cfg.Metrics.Path == APIPrefix || strings.HasPrefix(cfg.Metrics.Path, APIPrefix+"/") {
		return fmt.Errorf("metrics.path %q collides with the %s routes", cfg.Metrics.Path, APIPrefix)
	}
	if strings.ContainsAny(cfg.Metrics.Path, ":*") {
		return fmt.Errorf("metrics.path %q cannot contain route wildcards", cfg.Metrics.Path)
	}
	return nil
}

// CORSConfig builds the cors middleware settings for the API server.
func CORSConfig(server models.ServerConfig) cors.Config {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = server.AllowedOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", RequestIDHeader}
	corsConfig.ExposeHeaders = []string{RequestIDHeader}
	corsConfig.AllowCredentials = true
	return corsConfig
}

// NewLogger builds a slog.Logger writing to w according to cfg.
func NewLogger(cfg models.LogConfig, w io.Writer) (*slog.Logger, error) {
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}

	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}

func parseLevel(s string) (slog.Level, error) {
	switch s {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("log.level must be one of debug, info, warn, error, got %q", s)
}
