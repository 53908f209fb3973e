package marketdata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"stockmcp/internal/models"
)

// DefaultBaseURL is the provider's query endpoint.
const DefaultBaseURL = "https://www.alphavantage.co/query"

// HTTPClient describes an HTTP client.
//
//go:generate mockgen -package=marketdata_test -destination=mock_http_client_test.go -source=client.go HTTPClient
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client calls the market-data provider and normalizes its responses.
// It is safe for concurrent use; all fields are read-only after construction.
type Client struct {
	// baseURL is the provider query endpoint.
	baseURL string
	// apiKey is sent as the apikey query parameter and never logged.
	apiKey     string
	httpClient HTTPClient
	recorder   Recorder
	logger     *slog.Logger
}

// ClientOption is a configuration option for the Client.
type ClientOption func(*Client)

// WithBaseURL sets the provider endpoint.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient sets the HTTP client used for upstream calls.
func WithHTTPClient(httpClient HTTPClient) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithRecorder sets the upstream call recorder.
func WithRecorder(r Recorder) ClientOption {
	return func(c *Client) {
		c.recorder = r
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a new market-data client. The API key is required.
func NewClient(apiKey string, options ...ClientOption) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("market data API key is required")
	}

	c := &Client{
		baseURL:    DefaultBaseURL,
		apiKey:     apiKey,
		httpClient: http.DefaultClient,
		recorder:   nopRecorder{},
		logger:     slog.Default(),
	}
	for _, option := range options {
		option(c)
	}
	c.logger = c.logger.With("component", "market_data_client")

	if _, err := url.Parse(c.baseURL); err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	return c, nil
}

// GetQuote returns the latest quote for a symbol.
func (c *Client) GetQuote(ctx context.Context, symbolInput string) (quote *models.Quote, err error) {
	symbol, err := ValidateSymbol(symbolInput)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	defer func() { c.observe(ctx, FunctionGlobalQuote, start, err) }()

	var env quoteEnvelope
	if err := c.query(ctx, FunctionGlobalQuote, url.Values{"symbol": {symbol}}, &env); err != nil {
		return nil, err
	}

	return normalizeQuote(&env, symbol)
}

// Search returns the provider's best matches for free-text keywords. An empty
// slice means no matches.
func (c *Client) Search(ctx context.Context, keywordsInput string) (matches []models.SearchMatch, err error) {
	keywords := SanitizeInput(keywordsInput)
	if err := ValidateKeywords(keywords); err != nil {
		return nil, err
	}

	start := time.Now()
	defer func() { c.observe(ctx, FunctionSymbolSearch, start, err) }()

	var env searchEnvelope
	if err := c.query(ctx, FunctionSymbolSearch, url.Values{"keywords": {keywords}}, &env); err != nil {
		return nil, err
	}

	return normalizeSearch(&env)
}

// GetDailyTimeSeries returns daily bars for a symbol, oldest first. An empty
// outputSize means compact.
func (c *Client) GetDailyTimeSeries(ctx context.Context, symbolInput string, outputSize string) (bars []models.DailyBar, err error) {
	symbol, err := ValidateSymbol(symbolInput)
	if err != nil {
		return nil, err
	}
	if err := ValidateOutputSize(outputSize); err != nil {
		return nil, err
	}
	if outputSize == "" {
		outputSize = OutputSizeCompact
	}

	start := time.Now()
	defer func() { c.observe(ctx, FunctionTimeSeriesDaily, start, err) }()

	var env timeSeriesEnvelope
	params := url.Values{"symbol": {symbol}, "outputsize": {outputSize}}
	if err := c.query(ctx, FunctionTimeSeriesDaily, params, &env); err != nil {
		return nil, err
	}

	return normalizeTimeSeries(&env, symbol)
}

// GetOverview returns company fundamentals for a symbol.
func (c *Client) GetOverview(ctx context.Context, symbolInput string) (overview *models.CompanyOverview, err error) {
	symbol, err := ValidateSymbol(symbolInput)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	defer func() { c.observe(ctx, FunctionOverview, start, err) }()

	var env overviewEnvelope
	if err := c.query(ctx, FunctionOverview, url.Values{"symbol": {symbol}}, &env); err != nil {
		return nil, err
	}

	return normalizeOverview(&env, symbol)
}

// query issues one GET for function and decodes the body into out.
func (c *Client) query(ctx context.Context, function string, params url.Values, out any) error {
	query := url.Values{}
	for k, v := range params {
		query[k] = v
	}
	query.Set("function", function)

	// Logged before the credential is added.
	c.logger.DebugContext(ctx, "upstream_request", "function", function, "params", query.Encode())
	query.Set("apikey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+query.Encode(), http.NoBody)
	if err != nil {
		return &NetworkError{Err: fmt.Errorf("creating request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return &NetworkError{Err: fmt.Errorf("unexpected status code: %d", res.StatusCode)}
	}

	// A timeout or reset while the body streams in is a transport failure,
	// not something the provider reported.
	body, err := io.ReadAll(res.Body)
	if err != nil {
		return &NetworkError{Err: fmt.Errorf("reading response body: %w", err)}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &UpstreamError{Message: fmt.Sprintf("decoding %s response: %v", function, err)}
	}

	return nil
}

// observe records one upstream exchange once its outcome is known.
func (c *Client) observe(ctx context.Context, function string, start time.Time, err error) {
	elapsed := time.Since(start)
	outcome := OutcomeOK
	if err != nil {
		outcome = Kind(err)
		c.logger.WarnContext(ctx, "upstream_failure",
			"function", function,
			"error_kind", outcome,
			"error", err.Error(),
			"latency_ms", elapsed.Milliseconds(),
		)
	}
	c.recorder.RecordUpstreamCall(function, outcome, elapsed)
}
