package instrumentation_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"stockmcp/internal/instrumentation"
)

func TestRecordToolCall(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := instrumentation.NewMetrics(reg)

	m.RecordToolCall("get_stock_quote", "ok", 40*time.Millisecond)
	m.RecordToolCall("get_stock_quote", "ok", 60*time.Millisecond)
	m.RecordToolCall("get_stock_quote", "rate_limited", 5*time.Millisecond)

	require.Equal(t, 2.0, testutil.ToFloat64(m.ToolCallsTotal.WithLabelValues("get_stock_quote", "ok")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.ToolCallsTotal.WithLabelValues("get_stock_quote", "rate_limited")))
	require.Equal(t, 1, testutil.CollectAndCount(m.ToolLatencyMs, "stockmcp_tool_latency_ms"))
}

func TestRecordUpstreamCall(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := instrumentation.NewMetrics(reg)

	m.RecordUpstreamCall("GLOBAL_QUOTE", "ok", 120*time.Millisecond)
	m.RecordUpstreamCall("OVERVIEW", "not_found", 80*time.Millisecond)

	require.Equal(t, 1.0, testutil.ToFloat64(m.UpstreamRequestsTotal.WithLabelValues("GLOBAL_QUOTE", "ok")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.UpstreamRequestsTotal.WithLabelValues("OVERVIEW", "not_found")))
	require.Equal(t, 2, testutil.CollectAndCount(m.UpstreamLatencyMs))
}

func TestNewMetrics_SeparateRegistries(t *testing.T) {
	require.NotPanics(t, func() {
		instrumentation.NewMetrics(prometheus.NewRegistry())
		instrumentation.NewMetrics(prometheus.NewRegistry())
	})
}
