package mcp

import "slices"

// Tool names
const (
	ToolGetStockQuote      = "get_stock_quote"
	ToolSearchStocks       = "search_stocks"
	ToolGetDailyTimeSeries = "get_daily_time_series"
	ToolGetCompanyOverview = "get_company_overview"
)

// registry is built once and shared by every transport.
var registry = []Tool{
	{
		Name:        ToolGetStockQuote,
		Description: "Get real-time stock quote for a given symbol",
		InputSchema: objectSchema(map[string]interface{}{
			"symbol": map[string]interface{}{
				"type":        "string",
				"description": "Stock symbol (e.g., AAPL, MSFT, GOOGL)",
			},
		}, "symbol"),
	},
	{
		Name:        ToolSearchStocks,
		Description: "Search for stocks by company name or symbol",
		InputSchema: objectSchema(map[string]interface{}{
			"keywords": map[string]interface{}{
				"type":        "string",
				"description": "Search keywords (company name or symbol)",
			},
		}, "keywords"),
	},
	{
		Name:        ToolGetDailyTimeSeries,
		Description: "Get daily time series data for a stock",
		InputSchema: objectSchema(map[string]interface{}{
			"symbol": map[string]interface{}{
				"type":        "string",
				"description": "Stock symbol",
			},
			"outputSize": map[string]interface{}{
				"type":        "string",
				"enum":        []string{"compact", "full"},
				"description": "Output size: compact (100 data points) or full (20+ years)",
				"default":     "compact",
			},
		}, "symbol"),
	},
	{
		Name:        ToolGetCompanyOverview,
		Description: "Get comprehensive company overview and fundamentals",
		InputSchema: objectSchema(map[string]interface{}{
			"symbol": map[string]interface{}{
				"type":        "string",
				"description": "Stock symbol",
			},
		}, "symbol"),
	},
}

func objectSchema(properties map[string]interface{}, required ...string) map[string]interface{} {
	return map[string]interface{}{
		"type":       "object",
		"properties": properties,
		"required":   required,
	}
}

// Tools returns the tool descriptors in registry order.
func Tools() []Tool {
	return slices.Clone(registry)
}

// LookupTool returns the descriptor registered under name.
func LookupTool(name string) (Tool, bool) {
	i := slices.IndexFunc(registry, func(t Tool) bool { return t.Name == name })
	if i < 0 {
		return Tool{}, false
	}
	return registry[i], true
}
