package marketdata

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"stockmcp/internal/models"
)

// Provider function names.
const (
	FunctionGlobalQuote     = "GLOBAL_QUOTE"
	FunctionSymbolSearch    = "SYMBOL_SEARCH"
	FunctionTimeSeriesDaily = "TIME_SERIES_DAILY"
	FunctionOverview        = "OVERVIEW"
)

// providerStatus holds the top-level fields the provider uses to signal
// failures instead of HTTP status codes. Every envelope embeds it.
type providerStatus struct {
	ErrorMessage string `json:"Error Message"`
	Note         string `json:"Note"`
	Information  string `json:"Information"`
}

// check applies the provider failure signals in priority order.
func (s providerStatus) check() error {
	if s.ErrorMessage != "" {
		return &UpstreamError{Message: s.ErrorMessage}
	}
	if s.Note != "" {
		return &RateLimitError{Notice: s.Note}
	}
	if isRateLimitInformation(s.Information) {
		return &RateLimitError{Notice: s.Information}
	}
	return nil
}

// The provider moved its throttling notice from "Note" to "Information" at some
// point; "Information" is also used for unrelated notices, so match on wording.
func isRateLimitInformation(info string) bool {
	lower := strings.ToLower(info)
	return strings.Contains(lower, "rate limit") || strings.Contains(lower, "call frequency")
}

type quoteEnvelope struct {
	providerStatus
	GlobalQuote *rawQuote `json:"Global Quote"`
}

type rawQuote struct {
	Symbol           string `json:"01. symbol"`
	Open             string `json:"02. open"`
	High             string `json:"03. high"`
	Low              string `json:"04. low"`
	Price            string `json:"05. price"`
	Volume           string `json:"06. volume"`
	LatestTradingDay string `json:"07. latest trading day"`
	PreviousClose    string `json:"08. previous close"`
	Change           string `json:"09. change"`
	ChangePercent    string `json:"10. change percent"`
}

type searchEnvelope struct {
	providerStatus
	BestMatches []rawMatch `json:"bestMatches"`
}

type rawMatch struct {
	Symbol      string `json:"1. symbol"`
	Name        string `json:"2. name"`
	Type        string `json:"3. type"`
	Region      string `json:"4. region"`
	MarketOpen  string `json:"5. marketOpen"`
	MarketClose string `json:"6. marketClose"`
	Timezone    string `json:"7. timezone"`
	Currency    string `json:"8. currency"`
	MatchScore  string `json:"9. matchScore"`
}

type timeSeriesEnvelope struct {
	providerStatus
	TimeSeries map[string]rawBar `json:"Time Series (Daily)"`
}

type rawBar struct {
	Open   string `json:"1. open"`
	High   string `json:"2. high"`
	Low    string `json:"3. low"`
	Close  string `json:"4. close"`
	Volume string `json:"5. volume"`
}

type overviewEnvelope struct {
	providerStatus
	Symbol           string `json:"Symbol"`
	Name             string `json:"Name"`
	Description      string `json:"Description"`
	Sector           string `json:"Sector"`
	Industry         string `json:"Industry"`
	MarketCap        string `json:"MarketCapitalization"`
	PERatio          string `json:"PERatio"`
	DividendYield    string `json:"DividendYield"`
	Beta             string `json:"Beta"`
	FiftyTwoWeekHigh string `json:"52WeekHigh"`
	FiftyTwoWeekLow  string `json:"52WeekLow"`
}

func normalizeQuote(env *quoteEnvelope, symbol string) (*models.Quote, error) {
	if err := env.check(); err != nil {
		return nil, err
	}
	if env.GlobalQuote == nil || *env.GlobalQuote == (rawQuote{}) {
		return nil, &NotFoundError{What: "data", Query: symbol}
	}

	q := env.GlobalQuote
	p := &numberParser{}
	quote := &models.Quote{
		Symbol:        q.Symbol,
		Price:         p.float("05. price", q.Price),
		Change:        p.float("09. change", q.Change),
		ChangePercent: q.ChangePercent,
		Volume:        p.volume("06. volume", q.Volume),
		High:          p.float("03. high", q.High),
		Low:           p.float("04. low", q.Low),
		Open:          p.float("02. open", q.Open),
		PreviousClose: p.float("08. previous close", q.PreviousClose),
		Timestamp:     q.LatestTradingDay,
	}
	if p.err != nil {
		return nil, p.err
	}
	return quote, nil
}

func normalizeSearch(env *searchEnvelope) ([]models.SearchMatch, error) {
	if err := env.check(); err != nil {
		return nil, err
	}

	matches := make([]models.SearchMatch, 0, len(env.BestMatches))
	for _, m := range env.BestMatches {
		matches = append(matches, models.SearchMatch{
			Symbol:      m.Symbol,
			Name:        m.Name,
			Type:        m.Type,
			Region:      m.Region,
			MarketOpen:  m.MarketOpen,
			MarketClose: m.MarketClose,
			Timezone:    m.Timezone,
			Currency:    m.Currency,
			MatchScore:  m.MatchScore,
		})
	}
	return matches, nil
}

// normalizeTimeSeries flattens the date-keyed map into bars sorted by date,
// oldest first. Map order carries no meaning.
func normalizeTimeSeries(env *timeSeriesEnvelope, symbol string) ([]models.DailyBar, error) {
	if err := env.check(); err != nil {
		return nil, err
	}
	if len(env.TimeSeries) == 0 {
		return nil, &NotFoundError{What: "time series data", Query: symbol}
	}

	p := &numberParser{}
	bars := make([]models.DailyBar, 0, len(env.TimeSeries))
	for date, b := range env.TimeSeries {
		bars = append(bars, models.DailyBar{
			Timestamp: date,
			Open:      p.float(date+" 1. open", b.Open),
			High:      p.float(date+" 2. high", b.High),
			Low:       p.float(date+" 3. low", b.Low),
			Close:     p.float(date+" 4. close", b.Close),
			Volume:    p.volume(date+" 5. volume", b.Volume),
		})
	}
	if p.err != nil {
		return nil, p.err
	}

	// ISO dates order lexicographically.
	slices.SortFunc(bars, func(a, b models.DailyBar) int {
		return strings.Compare(a.Timestamp, b.Timestamp)
	})
	return bars, nil
}

func normalizeOverview(env *overviewEnvelope, symbol string) (*models.CompanyOverview, error) {
	if err := env.check(); err != nil {
		return nil, err
	}
	if env.Symbol == "" {
		return nil, &NotFoundError{What: "company data", Query: symbol}
	}

	return &models.CompanyOverview{
		Symbol:           env.Symbol,
		Name:             env.Name,
		Description:      env.Description,
		Sector:           env.Sector,
		Industry:         env.Industry,
		MarketCap:        env.MarketCap,
		PERatio:          env.PERatio,
		DividendYield:    env.DividendYield,
		Beta:             env.Beta,
		FiftyTwoWeekHigh: env.FiftyTwoWeekHigh,
		FiftyTwoWeekLow:  env.FiftyTwoWeekLow,
	}, nil
}

// numberParser converts provider number strings, keeping the first failure.
type numberParser struct {
	err error
}

func (p *numberParser) float(field, raw string) float64 {
	if p.err != nil {
		return 0
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		p.err = &UpstreamError{Message: fmt.Sprintf("malformed numeric value %q for %s", raw, field)}
		return 0
	}
	return v
}

func (p *numberParser) volume(field, raw string) int64 {
	if p.err != nil {
		return 0
	}
	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || v < 0 {
		p.err = &UpstreamError{Message: fmt.Sprintf("malformed volume %q for %s", raw, field)}
		return 0
	}
	return v
}
