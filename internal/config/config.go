package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the stock MCP service configuration.
type Config struct {
	// Upstream
	APIKey            string `env:"ALPHA_VANTAGE_API_KEY" validate:"required"`
	BaseURL           string `env:"ALPHA_VANTAGE_BASE_URL" envDefault:"https://www.alphavantage.co/query" validate:"required,url"`
	UpstreamTimeoutMS int    `env:"UPSTREAM_TIMEOUT_MS" envDefault:"15000" validate:"min=1"`

	// Server
	Port              int    `env:"MCP_PORT" envDefault:"8080" validate:"min=1,max=65535"`
	TimeoutMS         int    `env:"TIMEOUT_MS" envDefault:"10000" validate:"min=1"`
	CORSAllowedOrigin string `env:"CORS_ALLOWED_ORIGIN" envDefault:"*" validate:"required"`

	// Observability
	LogLevel       string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
	PrometheusPort int    `env:"PROMETHEUS_PORT" envDefault:"9092" validate:"min=0,max=65535"`
}

// Timeout returns the transport request timeout as a time.Duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutMS) * time.Millisecond
}

// UpstreamTimeout returns the upstream HTTP client timeout.
func (c *Config) UpstreamTimeout() time.Duration {
	return time.Duration(c.UpstreamTimeoutMS) * time.Millisecond
}

// SlogLevel converts LogLevel to a slog.Level. Unknown values map to info.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
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

// LoadFromEnv loads configuration from environment variables.
// Values from the given dotenv files (default ".env") are applied first without
// overriding variables that are already set; missing files are skipped.
func LoadFromEnv(dotenvFiles ...string) (*Config, error) {
	if len(dotenvFiles) == 0 {
		dotenvFiles = []string{".env"}
	}
	for _, f := range dotenvFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	cfg := &Config{}
	opts := env.Options{
		Prefix: "",
	}

	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("failed to parse environment variables: %w", err)
	}

	cfg.APIKey = strings.TrimSpace(cfg.APIKey)

	return cfg, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("invalid configuration: %w", err)
		}

		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msgs = append(msgs, describeFieldError(fe))
		}
		return errors.New(strings.Join(msgs, "; "))
	}

	return nil
}

// envNames maps struct field names to the variable that sets them.
var envNames = map[string]string{
	"APIKey":            "ALPHA_VANTAGE_API_KEY",
	"BaseURL":           "ALPHA_VANTAGE_BASE_URL",
	"UpstreamTimeoutMS": "UPSTREAM_TIMEOUT_MS",
	"Port":              "MCP_PORT",
	"TimeoutMS":         "TIMEOUT_MS",
	"CORSAllowedOrigin": "CORS_ALLOWED_ORIGIN",
	"LogLevel":          "LOG_LEVEL",
	"PrometheusPort":    "PROMETHEUS_PORT",
}

func describeFieldError(fe validator.FieldError) string {
	name := envNames[fe.Field()]
	if name == "" {
		name = fe.Field()
	}

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s environment variable is required", name)
	case "oneof":
		return fmt.Sprintf("invalid %s: %v (expected one of %s)", name, fe.Value(), fe.Param())
	case "url":
		return fmt.Sprintf("invalid %s: not a URL", name)
	case "min", "max":
		return fmt.Sprintf("invalid %s: %v (%s=%s)", name, fe.Value(), fe.Tag(), fe.Param())
	default:
		return fmt.Sprintf("invalid %s: failed %s", name, fe.Tag())
	}
}
