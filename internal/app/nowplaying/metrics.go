package nowplaying

import "github.com/prometheus/client_golang/prometheus"

// outcomeUnavailable labels resolutions where the station page could
// not be read. On-air resolutions are labeled by the result kind.
const outcomeUnavailable = "unavailable"

var (
	resolutionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "nowplaying_resolutions_total", Help: "Now-playing resolutions by outcome"},
		[]string{"outcome"},
	)
	resolveDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "nowplaying_resolve_duration_seconds",
			Help:    "Time spent resolving the current track",
			Buckets: []float64{0.5, 1, 2, 5, 10, 30},
		},
	)
	playlistFallbacks = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "nowplaying_playlist_fallbacks_total", Help: "Songs whose start time fell back to the current minute"},
	)
)

// RegisterMetrics registers the package metrics with the default registry.
func RegisterMetrics() {
	prometheus.MustRegister(resolutionsTotal, resolveDuration, playlistFallbacks)
}
