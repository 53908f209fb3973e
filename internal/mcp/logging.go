package mcp

import (
	"context"
	"log/slog"

	"stockmcp/internal/marketdata"
)

type correlationIDKey struct{}

// WithCorrelationID returns a context carrying the request correlation ID.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

// CorrelationID returns the correlation ID stored in ctx, or "".
func CorrelationID(ctx context.Context) string {
	id, _ := ctx.Value(correlationIDKey{}).(string)
	return id
}

// LogMCPRequest logs an MCP tool request with structured fields
func LogMCPRequest(ctx context.Context, logger *slog.Logger, tool string, subject string, correlationID string) {
	logger.InfoContext(ctx, "mcp_request",
		"component", "mcp-provider",
		"tool_name", tool,
		"subject", subject,
		"correlation_id", correlationID,
	)
}

// LogMCPSuccess logs successful MCP tool execution with latency
func LogMCPSuccess(ctx context.Context, logger *slog.Logger, tool string, subject string, correlationID string, latencyMS int64) {
	logger.InfoContext(ctx, "mcp_success",
		"component", "mcp-provider",
		"tool_name", tool,
		"subject", subject,
		"correlation_id", correlationID,
		"latency_ms", latencyMS,
	)
}

// LogMCPError logs a failed MCP tool execution. Caller-side failures are
// logged at warn, everything else at error.
func LogMCPError(ctx context.Context, logger *slog.Logger, tool string, subject string, correlationID string, errorKind string, errorMsg string) {
	level := slog.LevelError
	switch errorKind {
	case KindInvalidArguments, KindUnknownTool, marketdata.KindValidation, marketdata.KindNotFound:
		level = slog.LevelWarn
	}

	logger.Log(ctx, level, "mcp_error",
		"component", "mcp-provider",
		"tool_name", tool,
		"subject", subject,
		"correlation_id", correlationID,
		"error_kind", errorKind,
		"error_message", errorMsg,
	)
}
