package paypal

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// InstrumentedTransport counts and times every outbound call to PayPal,
// labelled by status code and method.
func InstrumentedTransport(base http.RoundTripper, reg prometheus.Registerer) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}

	requests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "paypal_client_requests_total",
			Help: "Total number of requests sent to the PayPal REST API.",
		},
		[]string{"code", "method"},
	)
	duration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "paypal_client_request_duration_seconds",
			Help:    "Latency of requests sent to the PayPal REST API.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"code", "method"},
	)
	reg.MustRegister(requests, duration)

	return promhttp.InstrumentRoundTripperCounter(requests,
		promhttp.InstrumentRoundTripperDuration(duration, base))
}
