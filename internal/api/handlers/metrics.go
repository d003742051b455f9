package handlers

import "github.com/prometheus/client_golang/prometheus"

var (
	streamsActive = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "listener_streams_active",
		Help: "Number of connected listener-count streams.",
	})

	samplesSent = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "listener_samples_sent_total",
		Help: "Total listener-count samples pushed to streams.",
	})
)

// RegisterMetrics registers stream metrics with the default registry.
func RegisterMetrics() {
	prometheus.MustRegister(streamsActive, samplesSent)
}
