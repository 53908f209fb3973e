package marketdata

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func decode[T any](t *testing.T, raw string) *T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal([]byte(raw), &v))
	return &v
}

func TestNormalizeTimeSeries_SortsAscending(t *testing.T) {
	t.Parallel()

	env := decode[timeSeriesEnvelope](t, `{
		"Meta Data": {"2. Symbol": "IBM"},
		"Time Series (Daily)": {
			"2024-12-18": {"1. open": "3", "2. high": "3.5", "3. low": "2.5", "4. close": "3.1", "5. volume": "300"},
			"2024-12-20": {"1. open": "5", "2. high": "5.5", "3. low": "4.5", "4. close": "5.1", "5. volume": "500"},
			"2023-01-03": {"1. open": "1", "2. high": "1.5", "3. low": "0.5", "4. close": "1.1", "5. volume": "100"},
			"2024-12-19": {"1. open": "4", "2. high": "4.5", "3. low": "3.5", "4. close": "4.1", "5. volume": "400"}
		}
	}`)

	bars, err := normalizeTimeSeries(env, "IBM")
	require.NoError(t, err)
	require.Len(t, bars, 4)

	dates := make([]string, len(bars))
	for i, b := range bars {
		dates[i] = b.Timestamp
	}
	require.Equal(t, []string{"2023-01-03", "2024-12-18", "2024-12-19", "2024-12-20"}, dates)
	require.InDelta(t, 5.1, bars[3].Close, 1e-9)
	require.Equal(t, int64(500), bars[3].Volume)
}

func TestNormalizeTimeSeries_MissingOrEmpty(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{`{}`, `{"Time Series (Daily)": {}}`} {
		_, err := normalizeTimeSeries(decode[timeSeriesEnvelope](t, raw), "IBM")
		var nf *NotFoundError
		require.ErrorAs(t, err, &nf)
		require.Equal(t, "No time series data found for symbol: IBM", err.Error())
	}
}

func TestNormalizeQuote_EmptyObjectIsNotFound(t *testing.T) {
	t.Parallel()

	_, err := normalizeQuote(decode[quoteEnvelope](t, `{"Global Quote": {}}`), "ZZZZ")
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	require.Equal(t, "No data found for symbol: ZZZZ", err.Error())
	require.Equal(t, KindNotFound, Kind(err))

	_, err = normalizeQuote(decode[quoteEnvelope](t, `{}`), "ZZZZ")
	require.ErrorAs(t, err, &nf)
}

func TestNormalizeQuote_MalformedNumber(t *testing.T) {
	t.Parallel()

	env := decode[quoteEnvelope](t, `{"Global Quote": {
		"01. symbol": "AAPL", "02. open": "1", "03. high": "1", "04. low": "1",
		"05. price": "N/A", "06. volume": "10", "07. latest trading day": "2024-12-20",
		"08. previous close": "1", "09. change": "0", "10. change percent": "0%"
	}}`)

	_, err := normalizeQuote(env, "AAPL")
	var ue *UpstreamError
	require.ErrorAs(t, err, &ue)
	require.Contains(t, err.Error(), "05. price")

	env.GlobalQuote.Price = "NaN"
	_, err = normalizeQuote(env, "AAPL")
	require.ErrorAs(t, err, &ue)

	env.GlobalQuote.Price = "1"
	env.GlobalQuote.Volume = "-5"
	_, err = normalizeQuote(env, "AAPL")
	require.ErrorAs(t, err, &ue)
	require.Contains(t, err.Error(), "06. volume")
}

func TestProviderStatus_Priority(t *testing.T) {
	t.Parallel()

	both := decode[providerStatus](t, `{"Error Message": "Invalid API call.", "Note": "Thank you for using Alpha Vantage!"}`)
	var ue *UpstreamError
	require.ErrorAs(t, both.check(), &ue)
	require.Equal(t, "API Error: Invalid API call.", ue.Error())

	note := decode[providerStatus](t, `{"Note": "Our standard API call frequency is 5 calls per minute"}`)
	var rl *RateLimitError
	require.ErrorAs(t, note.check(), &rl)

	info := decode[providerStatus](t, `{"Information": "We have detected your API key and our standard API rate limit is 25 requests per day."}`)
	require.ErrorAs(t, info.check(), &rl)

	other := decode[providerStatus](t, `{"Information": "The demo API key is for demo purposes only."}`)
	require.NoError(t, other.check())
}

func TestNormalizeRateLimitWinsOverPayload(t *testing.T) {
	t.Parallel()

	const note = `"Note": "API call frequency is 5 calls per minute"`

	_, err := normalizeQuote(decode[quoteEnvelope](t, `{`+note+`, "Global Quote": {"01. symbol": "AAPL"}}`), "AAPL")
	require.Equal(t, KindRateLimit, Kind(err))

	_, err = normalizeSearch(decode[searchEnvelope](t, `{`+note+`, "bestMatches": [{"1. symbol": "AAPL"}]}`))
	require.Equal(t, KindRateLimit, Kind(err))

	_, err = normalizeTimeSeries(decode[timeSeriesEnvelope](t, `{`+note+`, "Time Series (Daily)": {"2024-01-02": {}}}`), "AAPL")
	require.Equal(t, KindRateLimit, Kind(err))

	_, err = normalizeOverview(decode[overviewEnvelope](t, `{`+note+`, "Symbol": "AAPL"}`), "AAPL")
	require.Equal(t, KindRateLimit, Kind(err))
}

func TestNormalizeOverview(t *testing.T) {
	t.Parallel()

	overview, err := normalizeOverview(decode[overviewEnvelope](t, `{
		"Symbol": "IBM", "Name": "International Business Machines", "Description": "IBM & co",
		"Sector": "TECHNOLOGY", "Industry": "COMPUTER & OFFICE EQUIPMENT",
		"MarketCapitalization": "215000000000", "PERatio": "35.2", "DividendYield": "0.029",
		"Beta": "0.72", "52WeekHigh": "239.35", "52WeekLow": "162.62", "EBITDA": "14000000000"
	}`), "IBM")
	require.NoError(t, err)
	require.Equal(t, "IBM", overview.Symbol)
	require.Equal(t, "215000000000", overview.MarketCap)
	require.Equal(t, "239.35", overview.FiftyTwoWeekHigh)
	require.Equal(t, "162.62", overview.FiftyTwoWeekLow)

	_, err = normalizeOverview(decode[overviewEnvelope](t, `{}`), "IBM")
	require.Equal(t, "No company data found for symbol: IBM", err.Error())
}

func TestNormalizeSearch_NoMatches(t *testing.T) {
	t.Parallel()

	matches, err := normalizeSearch(decode[searchEnvelope](t, `{"bestMatches": []}`))
	require.NoError(t, err)
	require.NotNil(t, matches)
	require.Empty(t, matches)

	matches, err = normalizeSearch(decode[searchEnvelope](t, `{}`))
	require.NoError(t, err)
	require.Empty(t, matches)
}
