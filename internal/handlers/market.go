package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"stockmcp/internal/marketdata"
	"stockmcp/internal/mcp"
	"stockmcp/internal/models"
)

// MarketHandler serves the convenience GET routes that call the market data
// client directly and return the plain record.
//
//   - GET /quote/{symbol}
//   - GET /search/{keywords}
//   - GET /timeseries/{symbol}?outputSize=compact|full
//   - GET /overview/{symbol}
type MarketHandler struct {
	data   mcp.MarketData
	logger *slog.Logger
}

// NewMarketHandler creates a new convenience route handler.
func NewMarketHandler(data mcp.MarketData, logger *slog.Logger) *MarketHandler {
	return &MarketHandler{
		data:   data,
		logger: logger.With("handler", "market"),
	}
}

// Routes mounts the convenience routes on r.
func (h *MarketHandler) Routes(r chi.Router) {
	r.Get("/quote/{symbol}", h.Quote)
	r.Get("/search/{keywords}", h.Search)
	r.Get("/timeseries/{symbol}", h.TimeSeries)
	r.Get("/overview/{symbol}", h.Overview)
}

// Quote handles GET /quote/{symbol}.
func (h *MarketHandler) Quote(w http.ResponseWriter, r *http.Request) {
	quote, err := h.data.GetQuote(r.Context(), chi.URLParam(r, "symbol"))
	h.respond(w, r, quote, err)
}

// Search handles GET /search/{keywords}.
func (h *MarketHandler) Search(w http.ResponseWriter, r *http.Request) {
	// chi matches on RawPath when it is set, leaving the segment escaped.
	keywords := chi.URLParam(r, "keywords")
	if unescaped, err := url.PathUnescape(keywords); err == nil {
		keywords = unescaped
	}
	matches, err := h.data.Search(r.Context(), keywords)
	h.respond(w, r, matches, err)
}

// TimeSeries handles GET /timeseries/{symbol}.
func (h *MarketHandler) TimeSeries(w http.ResponseWriter, r *http.Request) {
	outputSize := r.URL.Query().Get("outputSize")
	if outputSize == "" {
		outputSize = marketdata.OutputSizeCompact
	}
	bars, err := h.data.GetDailyTimeSeries(r.Context(), chi.URLParam(r, "symbol"), outputSize)
	h.respond(w, r, bars, err)
}

// Overview handles GET /overview/{symbol}.
func (h *MarketHandler) Overview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.data.GetOverview(r.Context(), chi.URLParam(r, "symbol"))
	h.respond(w, r, overview, err)
}

func (h *MarketHandler) respond(w http.ResponseWriter, r *http.Request, v interface{}, err error) {
	if err != nil {
		kind := mcp.ErrorKind(err)
		h.logger.Warn("market_request_failed",
			"path", r.URL.Path,
			"error_kind", kind,
			"error", err.Error(),
			"correlation_id", GetCorrelationID(r.Context()),
		)
		sendError(w, mcp.HTTPStatusFromError(err), kind, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, v)
}

// sendError sends a JSON error response.
func sendError(w http.ResponseWriter, statusCode int, errorCode string, message string) {
	writeJSON(w, statusCode, models.ErrorResponse{
		Error:   errorCode,
		Message: message,
	})
}

func writeJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}
