package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"stockmcp/internal/config"
)

// missingDotenv points LoadFromEnv at a file that does not exist so a stray
// .env in the working directory cannot leak into the tests.
func missingDotenv(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "absent.env")
}

func TestLoadFromEnv_Defaults(t *testing.T) {
	t.Setenv("ALPHA_VANTAGE_API_KEY", "  key-123  ")

	cfg, err := config.LoadFromEnv(missingDotenv(t))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	require.Equal(t, "key-123", cfg.APIKey)
	require.Equal(t, "https://www.alphavantage.co/query", cfg.BaseURL)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, 10*time.Second, cfg.Timeout())
	require.Equal(t, 15*time.Second, cfg.UpstreamTimeout())
	require.Equal(t, 9092, cfg.PrometheusPort)
	require.Equal(t, "*", cfg.CORSAllowedOrigin)
	require.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	t.Setenv("ALPHA_VANTAGE_API_KEY", "key")
	t.Setenv("ALPHA_VANTAGE_BASE_URL", "http://localhost:9999/query")
	t.Setenv("MCP_PORT", "3000")
	t.Setenv("TIMEOUT_MS", "2500")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("PROMETHEUS_PORT", "0")

	cfg, err := config.LoadFromEnv(missingDotenv(t))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	require.Equal(t, "http://localhost:9999/query", cfg.BaseURL)
	require.Equal(t, 3000, cfg.Port)
	require.Equal(t, 2500*time.Millisecond, cfg.Timeout())
	require.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	require.Zero(t, cfg.PrometheusPort)
}

func TestLoadFromEnv_DotenvFile(t *testing.T) {
	// t.Setenv registers cleanup; unsetting lets the dotenv file supply the value.
	t.Setenv("ALPHA_VANTAGE_API_KEY", "")
	require.NoError(t, os.Unsetenv("ALPHA_VANTAGE_API_KEY"))

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("ALPHA_VANTAGE_API_KEY=from-file\n"), 0o600))

	cfg, err := config.LoadFromEnv(path)
	require.NoError(t, err)
	require.Equal(t, "from-file", cfg.APIKey)
}

func TestValidate_MissingAPIKey(t *testing.T) {
	t.Setenv("ALPHA_VANTAGE_API_KEY", "   ")

	cfg, err := config.LoadFromEnv(missingDotenv(t))
	require.NoError(t, err)

	err = cfg.Validate()
	require.EqualError(t, err, "ALPHA_VANTAGE_API_KEY environment variable is required")
}

func TestValidate_BadValues(t *testing.T) {
	t.Setenv("ALPHA_VANTAGE_API_KEY", "key")
	t.Setenv("LOG_LEVEL", "verbose")
	t.Setenv("MCP_PORT", "70000")

	cfg, err := config.LoadFromEnv(missingDotenv(t))
	require.NoError(t, err)

	err = cfg.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid LOG_LEVEL")
	require.Contains(t, err.Error(), "invalid MCP_PORT")
}

func TestLoadFromEnv_UnparsableNumber(t *testing.T) {
	t.Setenv("ALPHA_VANTAGE_API_KEY", "key")
	t.Setenv("TIMEOUT_MS", "soon")

	_, err := config.LoadFromEnv(missingDotenv(t))
	require.Error(t, err)
}
