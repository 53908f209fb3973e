package mcp

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"stockmcp/internal/marketdata"
)

// CallRecorder observes completed tool invocations.
type CallRecorder interface {
	RecordToolCall(tool, outcome string, latency time.Duration)
}

type nopCallRecorder struct{}

func (nopCallRecorder) RecordToolCall(string, string, time.Duration) {}

type invocable struct {
	validator *SchemaValidator
	run       toolFunc
}

// ToolInvoker dispatches tool calls with parameter validation. It holds no
// per-call state and is safe for concurrent use.
type ToolInvoker struct {
	tools    map[string]invocable
	recorder CallRecorder
	logger   *slog.Logger
}

// InvokerOption is a configuration option for the ToolInvoker.
type InvokerOption func(*ToolInvoker)

// WithCallRecorder sets the tool call recorder.
func WithCallRecorder(r CallRecorder) InvokerOption {
	return func(ti *ToolInvoker) {
		ti.recorder = r
	}
}

// WithInvokerLogger sets the logger.
func WithInvokerLogger(logger *slog.Logger) InvokerOption {
	return func(ti *ToolInvoker) {
		ti.logger = logger
	}
}

// NewToolInvoker compiles the input schema of every registered tool and binds
// it to the executor.
func NewToolInvoker(executor *ToolExecutor, opts ...InvokerOption) (*ToolInvoker, error) {
	ti := &ToolInvoker{
		tools:    make(map[string]invocable, len(registry)),
		recorder: nopCallRecorder{},
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(ti)
	}

	handlers := executor.handlers()
	for _, tool := range registry {
		run, ok := handlers[tool.Name]
		if !ok {
			return nil, fmt.Errorf("tool %s has no implementation", tool.Name)
		}

		validator, err := NewSchemaValidator(tool.InputSchema)
		if err != nil {
			return nil, fmt.Errorf("tool %s: %w", tool.Name, err)
		}

		ti.tools[tool.Name] = invocable{validator: validator, run: run}
	}

	return ti, nil
}

// InvokeTool runs the named tool. Every failure, including a panic inside the
// tool, is returned as a result with IsError set; it never returns nil.
func (ti *ToolInvoker) InvokeTool(ctx context.Context, toolName string, args interface{}) (result *CallToolResult) {
	start := time.Now()
	correlationID := CorrelationID(ctx)
	subject := argSubject(args)

	LogMCPRequest(ctx, ti.logger, toolName, subject, correlationID)

	// Unregistered names share one label to bound metric cardinality.
	label := "unknown"
	if tool, ok := LookupTool(toolName); ok {
		label = tool.Name
	}

	defer func() {
		if p := recover(); p != nil {
			ti.logger.ErrorContext(ctx, "mcp_panic", "tool_name", toolName, "panic", fmt.Sprint(p))
			err := fmt.Errorf("internal error while running %s", toolName)
			LogMCPError(ctx, ti.logger, toolName, subject, correlationID, marketdata.KindInternal, err.Error())
			ti.recorder.RecordToolCall(label, marketdata.KindInternal, time.Since(start))
			result = ErrorResult(err)
		}
	}()

	value, err := ti.invoke(ctx, toolName, args)
	if err == nil {
		result, err = TextResult(value)
	}

	latency := time.Since(start)
	if err != nil {
		kind := ErrorKind(err)
		LogMCPError(ctx, ti.logger, toolName, subject, correlationID, kind, err.Error())
		ti.recorder.RecordToolCall(label, kind, latency)
		return ErrorResult(err)
	}

	LogMCPSuccess(ctx, ti.logger, toolName, subject, correlationID, latency.Milliseconds())
	ti.recorder.RecordToolCall(label, marketdata.OutcomeOK, latency)
	return result
}

// invoke checks the call preconditions in order: arguments form an object,
// the tool exists, the arguments satisfy its schema.
func (ti *ToolInvoker) invoke(ctx context.Context, toolName string, args interface{}) (interface{}, error) {
	argMap, ok := args.(map[string]interface{})
	if !ok || argMap == nil {
		return nil, &InvalidArgumentsError{Message: "Invalid arguments provided"}
	}

	tool, ok := ti.tools[toolName]
	if !ok {
		return nil, &UnknownToolError{Name: toolName}
	}

	if err := tool.validator.Validate(argMap); err != nil {
		if argsErr, ok := err.(*InvalidArgumentsError); ok {
			argsErr.Tool = toolName
		}
		return nil, err
	}

	return tool.run(ctx, argMap)
}

// argSubject picks the symbol or keywords argument for log lines.
func argSubject(args interface{}) string {
	argMap, ok := args.(map[string]interface{})
	if !ok {
		return ""
	}
	if s, ok := argMap["symbol"].(string); ok {
		return s
	}
	s, _ := argMap["keywords"].(string)
	return s
}
