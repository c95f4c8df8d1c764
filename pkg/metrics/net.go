// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Client metrics

	clientInFlightGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: Namespace,
		Name:      "client_in_flight_requests",
		Help:      "A gauge of in-flight requests for the wrapped client.",
	})

	clientCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "client_api_requests_total",
		Help:      "A counter for requests from the wrapped client.",
	},
		[]string{"code", "method"},
	)

	// clientDNSLatencyVec has an instance label "event", set in the
	// DNSStart and DNSDone hooks of the trace below.
	clientDNSLatencyVec = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "dns_duration_seconds",
		Help:      "Trace dns latency histogram.",
		Buckets:   []float64{.005, .01, .025, .05},
	},
		[]string{"event"},
	)

	// clientTLSLatencyVec has an instance label "event", set in the
	// TLSHandshakeStart and TLSHandshakeDone hooks of the trace below.
	clientTLSLatencyVec = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "tls_duration_seconds",
		Help:      "Trace tls latency histogram.",
		Buckets:   []float64{.05, .1, .25, .5},
	},
		[]string{"event"},
	)

	clientHistVec = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "request_duration_seconds",
		Help:      "A histogram of request latencies.",
		Buckets:   prometheus.DefBuckets,
	},
		[]string{},
	)
)

// RegisterClientMetrics registers the HTTP client metrics in registry, or in
// the default registry if nil.
func RegisterClientMetrics(registry prometheus.Registerer) {
	ResetClientMetrics()
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}
	registry.MustRegister(clientCounter, clientTLSLatencyVec, clientDNSLatencyVec, clientHistVec, clientInFlightGauge)
}

// ResetClientMetrics resets the HTTP client metrics. The function is useful for designing self-contained unit tests
// where the count of metrics matters.
func ResetClientMetrics() {
	clientCounter.Reset()
	clientTLSLatencyVec.Reset()
	clientDNSLatencyVec.Reset()
	clientHistVec.Reset()
	clientInFlightGauge.Set(0.0)
}

// InstrumentClientRoundTripperDuration instruments the transport of the
// provided HTTP client for metering HTTP roundtrips
func InstrumentClientRoundTripperDuration(client *http.Client) *http.Client {
	trace := &promhttp.InstrumentTrace{
		DNSStart: func(t float64) {
			clientDNSLatencyVec.WithLabelValues("dns_start").Observe(t)
		},
		DNSDone: func(t float64) {
			clientDNSLatencyVec.WithLabelValues("dns_done").Observe(t)
		},
		TLSHandshakeStart: func(t float64) {
			clientTLSLatencyVec.WithLabelValues("tls_handshake_start").Observe(t)
		},
		TLSHandshakeDone: func(t float64) {
			clientTLSLatencyVec.WithLabelValues("tls_handshake_done").Observe(t)
		},
	}
	base := client.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	client.Transport = promhttp.InstrumentRoundTripperInFlight(clientInFlightGauge,
		promhttp.InstrumentRoundTripperCounter(clientCounter,
			promhttp.InstrumentRoundTripperTrace(trace,
				promhttp.InstrumentRoundTripperDuration(clientHistVec, base),
			),
		),
	)
	return client
}
