package instrumentation

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics contains all Prometheus metrics for the stock MCP service.
type Metrics struct {
	// Tool dispatch
	ToolCallsTotal *prometheus.CounterVec
	ToolLatencyMs  *prometheus.HistogramVec

	// Upstream provider
	UpstreamRequestsTotal *prometheus.CounterVec
	UpstreamLatencyMs     *prometheus.HistogramVec
}

// NewMetrics creates the metrics and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		// Tool invocations by tool name and outcome
		ToolCallsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "stockmcp_tool_calls_total",
			Help: "Total number of tool invocations by tool and outcome",
		}, []string{"tool", "outcome"}),

		// End-to-end tool latency
		ToolLatencyMs: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "stockmcp_tool_latency_ms",
			Help:    "Time to execute a tool invocation in milliseconds",
			Buckets: []float64{5, 25, 50, 100, 250, 500, 1000, 2500, 5000, 10000},
		}, []string{"tool"}),

		// Upstream calls by provider function and outcome
		UpstreamRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "stockmcp_upstream_requests_total",
			Help: "Total number of market data provider requests by function and outcome",
		}, []string{"function", "outcome"}),

		// Upstream latency
		UpstreamLatencyMs: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "stockmcp_upstream_latency_ms",
			Help:    "Market data provider round trip time in milliseconds",
			Buckets: []float64{25, 50, 100, 250, 500, 1000, 2500, 5000, 10000},
		}, []string{"function"}),
	}
}

// RecordToolCall records one tool invocation.
func (m *Metrics) RecordToolCall(tool, outcome string, latency time.Duration) {
	m.ToolCallsTotal.WithLabelValues(tool, outcome).Inc()
	m.ToolLatencyMs.WithLabelValues(tool).Observe(float64(latency.Milliseconds()))
}

// RecordUpstreamCall records one provider round trip.
func (m *Metrics) RecordUpstreamCall(function, outcome string, latency time.Duration) {
	m.UpstreamRequestsTotal.WithLabelValues(function, outcome).Inc()
	m.UpstreamLatencyMs.WithLabelValues(function).Observe(float64(latency.Milliseconds()))
}
