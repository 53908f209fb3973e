package mcp

import (
	"errors"
	"fmt"
	"net/http"

	"stockmcp/internal/marketdata"
)

// Dispatcher error kinds, alongside the marketdata.Kind* labels.
const (
	KindInvalidArguments = "invalid_arguments"
	KindUnknownTool      = "unknown_tool"
)

// InvalidArgumentsError reports tool arguments that are absent, not an object,
// or that violate the tool's input schema.
type InvalidArgumentsError struct {
	Tool    string
	Field   string
	Message string
}

func (e *InvalidArgumentsError) Error() string {
	if e.Tool == "" {
		return e.Message
	}
	if e.Field == "" {
		return fmt.Sprintf("Invalid arguments for %s: %s", e.Tool, e.Message)
	}
	return fmt.Sprintf("Invalid arguments for %s: %s: %s", e.Tool, e.Field, e.Message)
}

// UnknownToolError reports a tool name missing from the registry.
type UnknownToolError struct {
	Name string
}

func (e *UnknownToolError) Error() string {
	return fmt.Sprintf("Unknown tool: %s", e.Name)
}

// ErrorKind classifies dispatcher and market data errors.
func ErrorKind(err error) string {
	var (
		argsErr *InvalidArgumentsError
		toolErr *UnknownToolError
	)
	switch {
	case errors.As(err, &argsErr):
		return KindInvalidArguments
	case errors.As(err, &toolErr):
		return KindUnknownTool
	default:
		return marketdata.Kind(err)
	}
}

// HTTPStatusFromError maps an error to the HTTP status used by plain HTTP routes
func HTTPStatusFromError(err error) int {
	if err == nil {
		return http.StatusOK
	}

	var rpcErr *RPCError
	if errors.As(err, &rpcErr) {
		return httpStatusFromRPCCode(rpcErr.Code)
	}

	switch ErrorKind(err) {
	case marketdata.KindValidation, KindInvalidArguments:
		return http.StatusBadRequest
	case KindUnknownTool, marketdata.KindNotFound:
		return http.StatusNotFound
	case marketdata.KindRateLimit:
		return http.StatusTooManyRequests
	case marketdata.KindUpstream, marketdata.KindNetwork:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func httpStatusFromRPCCode(code int) int {
	switch code {
	case ParseError, InvalidRequest, InvalidParams:
		return http.StatusBadRequest
	case MethodNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
