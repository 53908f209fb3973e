package handlers

import (
	"io"
	"log/slog"
	"net/http"
	"time"

	"stockmcp/internal/mcp"
)

// maxRequestBody bounds a JSON-RPC request body.
const maxRequestBody = 1 << 20

// MCPInvokeHandler serves MCP JSON-RPC over plain HTTP and over SSE.
type MCPInvokeHandler struct {
	server *mcp.Server
	logger *slog.Logger
}

// NewMCPInvokeHandler creates a new MCP handler around server
func NewMCPInvokeHandler(server *mcp.Server, logger *slog.Logger) *MCPInvokeHandler {
	return &MCPInvokeHandler{
		server: server,
		logger: logger.With("handler", "mcp"),
	}
}

// ServeHTTP handles POST /mcp and writes the JSON-RPC response as the body.
func (h *MCPInvokeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	resp, err := h.handle(w, r)
	if err != nil {
		http.Error(w, "Request body too large or unreadable", http.StatusBadRequest)
		return
	}
	if resp == nil {
		w.WriteHeader(http.StatusAccepted)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// ServeSSE handles POST /mcp/sse and writes the JSON-RPC response as a single
// SSE event. Notifications get 202 with no stream, like POST /mcp.
func (h *MCPInvokeHandler) ServeSSE(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	resp, err := h.handle(w, r)
	if err == nil && resp == nil {
		w.WriteHeader(http.StatusAccepted)
		return
	}

	sseWriter := mcp.NewSSEWriter(w)
	if err != nil {
		err = sseWriter.SendError(nil, mcp.ParseError, "Request body too large or unreadable", err.Error())
	} else {
		err = sseWriter.SendResponse(resp)
	}
	if err != nil {
		h.logger.Error("sse_send_failed", "error", err, "correlation_id", GetCorrelationID(r.Context()))
	}
}

// handle reads the body and runs it through the protocol handler. A non-nil
// error means the body could not be read.
func (h *MCPInvokeHandler) handle(w http.ResponseWriter, r *http.Request) (*mcp.JSONRPCResponse, error) {
	start := time.Now()
	correlationID := GetCorrelationID(r.Context())

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxRequestBody))
	if err != nil {
		h.logger.Warn("mcp_body_read_failed", "error", err, "correlation_id", correlationID)
		return nil, err
	}

	ctx := mcp.WithCorrelationID(r.Context(), correlationID)
	resp := h.server.HandleMessage(ctx, body)

	h.logger.Debug("mcp_http_exchange",
		"correlation_id", correlationID,
		"latency_ms", time.Since(start).Milliseconds(),
		"rpc_error", resp != nil && resp.Error != nil,
	)
	return resp, nil
}
