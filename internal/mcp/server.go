package mcp

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
)

// Server answers MCP JSON-RPC requests. Transports decode a request, hand it
// to Handle and encode whatever comes back in their own framing.
type Server struct {
	invoker *ToolInvoker
	logger  *slog.Logger
}

// NewServer creates a protocol handler around invoker
func NewServer(invoker *ToolInvoker, logger *slog.Logger) *Server {
	return &Server{
		invoker: invoker,
		logger:  logger.With("component", "mcp-server"),
	}
}

// HandleMessage parses one raw JSON-RPC message and handles it.
// A nil response means nothing should be written back.
func (s *Server) HandleMessage(ctx context.Context, data []byte) *JSONRPCResponse {
	req, err := ParseJSONRPCRequest(bytes.NewReader(data))
	if err != nil {
		var id interface{}
		if req != nil {
			id = req.ID
		}
		return rpcErrorResponse(id, err)
	}
	return s.Handle(ctx, req)
}

// Handle dispatches a parsed request by method.
// Notifications get no response.
func (s *Server) Handle(ctx context.Context, req *JSONRPCRequest) *JSONRPCResponse {
	if req.ID == nil && strings.HasPrefix(req.Method, "notifications/") {
		s.logger.DebugContext(ctx, "mcp_notification", "method", req.Method)
		return nil
	}

	switch req.Method {
	case "initialize":
		return NewJSONRPCResult(req.ID, InitializeResult{
			ProtocolVersion: ProtocolVersion,
			Capabilities: map[string]interface{}{
				"tools": map[string]interface{}{},
			},
			ServerInfo: ServerInfo{Name: ServerName, Version: ServerVersion},
		})

	case "ping":
		return NewJSONRPCResult(req.ID, map[string]interface{}{})

	case "tools/list", "list_tools":
		return NewJSONRPCResult(req.ID, ListToolsResult{Tools: Tools()})

	case "tools/call", "call_tool":
		params, err := ParseCallToolParams(req.Params)
		if err != nil {
			return rpcErrorResponse(req.ID, err)
		}
		return NewJSONRPCResult(req.ID, s.invoker.InvokeTool(ctx, params.Name, params.Arguments))

	default:
		s.logger.WarnContext(ctx, "mcp_unknown_method", "method", req.Method)
		return NewJSONRPCError(req.ID, MethodNotFound, "Method not found", req.Method)
	}
}

func rpcErrorResponse(id interface{}, err error) *JSONRPCResponse {
	var rpcErr *RPCError
	if errors.As(err, &rpcErr) {
		return NewJSONRPCError(id, rpcErr.Code, rpcErr.Message, rpcErr.Data)
	}
	return NewJSONRPCError(id, InternalError, "Internal error", err.Error())
}
