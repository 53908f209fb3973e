package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"stockmcp/internal/mcp"
)

// RouterConfig carries the dependencies of the HTTP binding.
type RouterConfig struct {
	Server            *mcp.Server
	Data              mcp.MarketData
	Logger            *slog.Logger
	Timeout           time.Duration
	CORSAllowedOrigin string
}

// NewRouter builds the HTTP binding:
//
//   - POST /mcp       JSON-RPC, response in the body
//   - POST /mcp/sse   JSON-RPC, response as one SSE event
//   - GET  /quote/{symbol}, /search/{keywords}, /timeseries/{symbol}, /overview/{symbol}
//   - GET  /health
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(CorrelationIDMiddleware)
	r.Use(LoggingMiddleware(cfg.Logger))
	r.Use(CORSMiddleware(cfg.CORSAllowedOrigin))
	r.Use(TimeoutMiddleware(cfg.Timeout, cfg.Logger))

	r.Get("/health", HealthCheckHandler())

	mcpHandler := NewMCPInvokeHandler(cfg.Server, cfg.Logger)
	r.Post("/mcp", mcpHandler.ServeHTTP)
	r.Post("/mcp/sse", mcpHandler.ServeSSE)

	NewMarketHandler(cfg.Data, cfg.Logger).Routes(r)

	return r
}
