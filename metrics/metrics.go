// Package metrics defines prometheus metric types and provides convenience
// methods to add accounting to the channel client and server.
//
// When defining new operations or metrics, these are helpful values to track:
//  - things coming into or go out of the system: requests, files, tests, api calls.
//  - the success or error status of any of the above.
//  - the distribution of processing latency.
package metrics

import (
	"log"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RoundTripHistogram tracks client-observed latency from Send to a
	// matching response, labeled by command tag.
	RoundTripHistogram = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "stachannel_round_trip_time_histogram",
			Help: "client round-trip latency distribution (seconds), by command",
			Buckets: []float64{
				0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05,
				0.1, 0.25, 0.5, 1, 2.5, 5, 10,
			},
		},
		[]string{"tag"})

	// PayloadSizeHistogram tracks encoded frame sizes, labeled by command
	// tag and direction (send/recv).
	PayloadSizeHistogram = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "stachannel_payload_size_bytes_histogram",
			Help: "encoded frame payload size distribution (bytes)",
			Buckets: []float64{
				16, 32, 64, 128, 256, 512, 1024, 4096, 16384, 65536, 262144, 1048576,
			},
		},
		[]string{"tag", "direction"})

	// HandshakeFailureCount counts Connect attempts that failed the
	// encoder-id handshake or the initial liveness check.
	HandshakeFailureCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stachannel_handshake_failure_total",
			Help: "The total number of channel handshake failures.",
		}, []string{"reason"})

	// TimeoutCount counts requests that timed out waiting for a response,
	// labeled by command tag.
	TimeoutCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stachannel_timeout_total",
			Help: "The total number of requests that timed out awaiting a response.",
		}, []string{"tag"})

	// UnsupportedCount counts responses with Status == Unsupported,
	// labeled by command tag.
	UnsupportedCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stachannel_unsupported_total",
			Help: "The total number of commands the engine reported as unsupported.",
		}, []string{"tag"})

	// ErrorCount measures the number of protocol errors by kind.
	// Example usage:
	//    metrics.ErrorCount.With(prometheus.Labels{"kind": "decode error"}).Inc()
	ErrorCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stachannel_error_total",
			Help: "The total number of protocol errors encountered, by kind.",
		}, []string{"kind"})

	// NetlistSizeHistogram tracks the number of flattened blocks passed to
	// CreateNetlist.
	NetlistSizeHistogram = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "stachannel_netlist_block_count_histogram",
			Help: "flattened netlist block count histogram",
			Buckets: []float64{
				1, 2, 3, 4, 5, 6, 8,
				10, 12.5, 16, 20, 25, 32, 40, 50, 63, 79,
				100, 125, 160, 200, 250, 320, 400, 500, 630, 790,
				1000, 1250, 1600, 2000, 2500, 3200, 4000, 5000, 6300, 7900,
				10000,
			},
		})

	// CriticalityComputeHistogram tracks the time spent computing
	// per-node criticality factors from a GraphSlacks response.
	CriticalityComputeHistogram = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "stachannel_criticality_compute_time_histogram",
			Help:    "criticality computation latency distribution (seconds)",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 20),
		},
	)

	// GraphLoadCount counts completed LoadGraph calls.
	GraphLoadCount = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "stachannel_graph_load_total",
			Help: "Number of times the correlator graph map was (re)loaded.",
		},
	)
)

// init() prints a log message to let the user know that the package has been
// loaded and the metrics registered. The metrics are auto-registered, which
// means they are registered as soon as this package is loaded, and the exact
// time this occurs (and whether this occurs at all in a given context) can be
// opaque.
func init() {
	log.Println("Prometheus metrics in sta-channel.metrics are registered.")
}
