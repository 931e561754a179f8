// Package metrics holds the prometheus collectors of the service. They are
// registered on the default registry at init and exposed on /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "resonate_http_requests_total",
		Help: "Total HTTP requests by route and status code",
	}, []string{"route", "code"})
	HTTPRequestDurationMs = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "resonate_http_request_duration_ms",
		Help:    "HTTP request duration in milliseconds",
		Buckets: []float64{1, 5, 10, 20, 50, 100, 200, 500, 1000},
	}, []string{"route"})
	PublishersScoredTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "resonate_publishers_scored_total",
		Help: "Total publishers scored by city",
	}, []string{"city"})
	PublishersDroppedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "resonate_publishers_dropped_total",
		Help: "Total malformed publishers dropped from a batch by city",
	}, []string{"city"})
	MatchScore = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "resonate_match_score",
		Help:    "Overall match score distribution",
		Buckets: []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1},
	}, []string{"city"})
	MixSize = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "resonate_mix_size",
		Help:    "Number of publishers chosen per optimized mix",
		Buckets: []float64{0, 1, 2, 3, 5, 8, 13, 21},
	}, []string{"city"})
	CacheHitsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "resonate_cache_hits_total",
		Help: "Total publisher inventory cache hits",
	})
	CacheMissesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "resonate_cache_misses_total",
		Help: "Total publisher inventory cache misses",
	})
)

func init() {
	prometheus.MustRegister(HTTPRequestsTotal)
	prometheus.MustRegister(HTTPRequestDurationMs)
	prometheus.MustRegister(PublishersScoredTotal)
	prometheus.MustRegister(PublishersDroppedTotal)
	prometheus.MustRegister(MatchScore)
	prometheus.MustRegister(MixSize)
	prometheus.MustRegister(CacheHitsTotal)
	prometheus.MustRegister(CacheMissesTotal)
}

// Handler exposes the registered collectors.
func Handler() http.Handler { return promhttp.Handler() }
