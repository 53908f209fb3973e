package mcp

import (
	"encoding/json"
	"io"
)

// ParseJSONRPCRequest parses a JSON-RPC 2.0 request from a reader
// Returns error for invalid JSON or malformed JSON-RPC requests
func ParseJSONRPCRequest(r io.Reader) (*JSONRPCRequest, error) {
	var req JSONRPCRequest
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return nil, &RPCError{
			Code:    ParseError,
			Message: "Invalid JSON",
			Data:    err.Error(),
		}
	}

	// Validate JSON-RPC 2.0 format
	if req.JSONRPC != "2.0" {
		return &req, &RPCError{
			Code:    InvalidRequest,
			Message: "Invalid JSON-RPC version (must be '2.0')",
			Data:    req.JSONRPC,
		}
	}

	if req.Method == "" {
		return &req, &RPCError{
			Code:    InvalidRequest,
			Message: "Missing 'method' field",
		}
	}

	return &req, nil
}

// ParseCallToolParams extracts tools/call parameters from JSON-RPC params.
// Absent params decode to an empty call, which the dispatcher rejects.
func ParseCallToolParams(params json.RawMessage) (*CallToolParams, error) {
	var toolParams CallToolParams
	if len(params) == 0 {
		return &toolParams, nil
	}

	if err := json.Unmarshal(params, &toolParams); err != nil {
		return nil, &RPCError{
			Code:    InvalidParams,
			Message: "Invalid tools/call parameters",
			Data:    err.Error(),
		}
	}

	return &toolParams, nil
}

// NewJSONRPCError creates a JSON-RPC error response
func NewJSONRPCError(id interface{}, code int, message string, data interface{}) *JSONRPCResponse {
	return &JSONRPCResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &RPCError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// NewJSONRPCResult creates a JSON-RPC success response
func NewJSONRPCResult(id interface{}, result interface{}) *JSONRPCResponse {
	return &JSONRPCResponse{
		JSONRPC: "2.0",
		ID:      id,
		Result:  result,
	}
}
