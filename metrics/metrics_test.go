package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/m-lab/sta-channel/metrics"
)

// TestMetricsRecordable exercises every exported collector once, the way a
// real caller would, to catch a bad label set or bucket list at the point
// it's defined rather than the first time it's used in anger.
func TestMetricsRecordable(t *testing.T) {
	metrics.RoundTripHistogram.With(prometheus.Labels{"tag": "Ping"}).Observe(0.001)
	metrics.PayloadSizeHistogram.With(prometheus.Labels{"tag": "Ping", "direction": "send"}).Observe(16)
	metrics.HandshakeFailureCount.With(prometheus.Labels{"reason": "timeout"}).Inc()
	metrics.TimeoutCount.With(prometheus.Labels{"tag": "Ping"}).Inc()
	metrics.UnsupportedCount.With(prometheus.Labels{"tag": "ReadSdfFile"}).Inc()
	metrics.ErrorCount.With(prometheus.Labels{"kind": "timeout"}).Inc()
	metrics.NetlistSizeHistogram.Observe(42)
	metrics.CriticalityComputeHistogram.Observe(0.0005)
	metrics.GraphLoadCount.Inc()

	if got := testutil.ToFloat64(metrics.GraphLoadCount); got != 1 {
		t.Errorf("GraphLoadCount = %v, want 1", got)
	}
}
