package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	CacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dashboard_cache_hits_total",
		Help: "Feed reads served from the TTL cache.",
	})

	CacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dashboard_cache_misses_total",
		Help: "Feed reads that re-executed the Mongo query.",
	})

	ManualRefreshes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dashboard_manual_refreshes_total",
		Help: "Manual refresh requests that invalidated the cache.",
	})

	LoadFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dashboard_load_failures_total",
		Help: "Feed loads that failed against Mongo.",
	})

	MongoUp = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "dashboard_mongo_up",
		Help: "1 when the last Mongo ping succeeded.",
	})

	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "dashboard_request_duration_seconds",
		Help:    "HTTP handler latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"path"})
)

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
