package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"stockmcp/internal/marketdata"
	"stockmcp/internal/models"
)

// MarketData is the market data source the tools run against.
//
//go:generate mockgen -package=mcp_test -destination=mock_market_data_test.go -source=tools.go MarketData
type MarketData interface {
	GetQuote(ctx context.Context, symbol string) (*models.Quote, error)
	Search(ctx context.Context, keywords string) ([]models.SearchMatch, error)
	GetDailyTimeSeries(ctx context.Context, symbol string, outputSize string) ([]models.DailyBar, error)
	GetOverview(ctx context.Context, symbol string) (*models.CompanyOverview, error)
}

// ToolExecutor handles execution of MCP tools
type ToolExecutor struct {
	data MarketData
}

// NewToolExecutor creates a new tool executor backed by data
func NewToolExecutor(data MarketData) *ToolExecutor {
	return &ToolExecutor{
		data: data,
	}
}

// toolFunc runs one tool against arguments that already passed schema validation.
type toolFunc func(ctx context.Context, args map[string]interface{}) (interface{}, error)

// handlers returns the tool implementations keyed by tool name.
func (te *ToolExecutor) handlers() map[string]toolFunc {
	return map[string]toolFunc{
		ToolGetStockQuote:      te.ExecuteGetStockQuote,
		ToolSearchStocks:       te.ExecuteSearchStocks,
		ToolGetDailyTimeSeries: te.ExecuteGetDailyTimeSeries,
		ToolGetCompanyOverview: te.ExecuteGetCompanyOverview,
	}
}

// ExecuteGetStockQuote executes get_stock_quote
func (te *ToolExecutor) ExecuteGetStockQuote(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	return te.data.GetQuote(ctx, stringArg(args, "symbol"))
}

// ExecuteSearchStocks executes search_stocks
func (te *ToolExecutor) ExecuteSearchStocks(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	return te.data.Search(ctx, stringArg(args, "keywords"))
}

// ExecuteGetDailyTimeSeries executes get_daily_time_series.
// outputSize falls back to compact when omitted.
func (te *ToolExecutor) ExecuteGetDailyTimeSeries(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	outputSize := stringArg(args, "outputSize")
	if outputSize == "" {
		outputSize = marketdata.OutputSizeCompact
	}
	return te.data.GetDailyTimeSeries(ctx, stringArg(args, "symbol"), outputSize)
}

// ExecuteGetCompanyOverview executes get_company_overview
func (te *ToolExecutor) ExecuteGetCompanyOverview(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	return te.data.GetOverview(ctx, stringArg(args, "symbol"))
}

func stringArg(args map[string]interface{}, name string) string {
	s, _ := args[name].(string)
	return s
}

// TextResult wraps a value as pretty-printed JSON text content
func TextResult(v interface{}) (*CallToolResult, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false) // company descriptions contain '&'
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("failed to serialize result: %w", err)
	}
	text := strings.TrimSuffix(buf.String(), "\n")

	return &CallToolResult{
		Content: []TextContent{
			{
				Type: "text",
				Text: text,
			},
		},
	}, nil
}

// ErrorResult wraps a failure as a tool result flagged as an error
func ErrorResult(err error) *CallToolResult {
	return &CallToolResult{
		Content: []TextContent{
			{
				Type: "text",
				Text: "Error: " + err.Error(),
			},
		},
		IsError: true,
	}
}
