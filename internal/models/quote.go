package models

// Quote is a single-quote snapshot for one symbol.
type Quote struct {
	Symbol        string  `json:"symbol"`
	Price         float64 `json:"price"`
	Change        float64 `json:"change"`
	ChangePercent string  `json:"changePercent"`
	Volume        int64   `json:"volume"`
	High          float64 `json:"high"`
	Low           float64 `json:"low"`
	Open          float64 `json:"open"`
	PreviousClose float64 `json:"previousClose"`
	Timestamp     string  `json:"timestamp"`
}

// SearchMatch is one entry of a symbol search result.
// MatchScore stays in the provider's "0.0000"-"1.0000" string form.
type SearchMatch struct {
	Symbol      string `json:"symbol"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Region      string `json:"region"`
	MarketOpen  string `json:"marketOpen"`
	MarketClose string `json:"marketClose"`
	Timezone    string `json:"timezone"`
	Currency    string `json:"currency"`
	MatchScore  string `json:"matchScore"`
}

// DailyBar is one trading day of OHLCV data.
type DailyBar struct {
	Timestamp string  `json:"timestamp"`
	Open      float64 `json:"open"`
	High      float64 `json:"high"`
	Low       float64 `json:"low"`
	Close     float64 `json:"close"`
	Volume    int64   `json:"volume"`
}

// CompanyOverview holds company fundamentals.
// Numeric fundamentals are kept as the pre-formatted strings the provider emits.
type CompanyOverview struct {
	Symbol           string `json:"symbol"`
	Name             string `json:"name"`
	Description      string `json:"description"`
	Sector           string `json:"sector"`
	Industry         string `json:"industry"`
	MarketCap        string `json:"marketCap"`
	PERatio          string `json:"peRatio"`
	DividendYield    string `json:"dividendYield"`
	Beta             string `json:"beta"`
	FiftyTwoWeekHigh string `json:"fiftyTwoWeekHigh"`
	FiftyTwoWeekLow  string `json:"fiftyTwoWeekLow"`
}

// ErrorResponse is the standard error response format.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
