// Package metrics defines the Prometheus metrics of a crawl run.
//
// Crawl metrics:
//   - gamecrawl_batches_total (Counter): pagination batches fetched, including the terminal empty one
//   - gamecrawl_records_enriched_total (Counter): records appended to the accumulator
//   - gamecrawl_resolver_degraded_total{resolver} (Counter): resolver failures downgraded to an absent field
//   - gamecrawl_persist_failures_total{output} (Counter): sink writes that failed
//
// IGDB metrics:
//   - gamecrawl_igdb_requests_total{endpoint, status} (Counter): requests by endpoint and HTTP status
//   - gamecrawl_igdb_request_duration_seconds{endpoint} (Histogram): request latency by endpoint
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	BatchesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gamecrawl_batches_total",
		Help: "Pagination batches fetched from the catalog",
	})

	RecordsEnriched = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gamecrawl_records_enriched_total",
		Help: "Records enriched and appended to the accumulator",
	})

	ResolverDegraded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gamecrawl_resolver_degraded_total",
		Help: "Resolver failures downgraded to an absent field",
	}, []string{"resolver"})

	PersistFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gamecrawl_persist_failures_total",
		Help: "Failed writes of an output artifact",
	}, []string{"output"})

	IGDBRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gamecrawl_igdb_requests_total",
		Help: "IGDB API requests by endpoint and HTTP status",
	}, []string{"endpoint", "status"})

	IGDBRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "gamecrawl_igdb_request_duration_seconds",
		Help:    "IGDB API request duration",
		Buckets: prometheus.DefBuckets,
	}, []string{"endpoint"})
)

// Handler returns the HTTP handler exposing the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
