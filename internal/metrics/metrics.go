// Package metrics exposes the service's Prometheus instrumentation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	lookupRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cvnapi_lookup_requests_total",
		Help: "Lookup request count by outcome.",
	}, []string{"outcome"})

	skippedRows = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cvnapi_skipped_rows_total",
		Help: "Rows dropped during lookups, by reason.",
	}, []string{"reason"})

	storeLastUpdate = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "cvnapi_store_last_update_timestamp_seconds",
		Help: "Modification time of the backing data file.",
	})
)

// RecordLookupRequest counts a finished lookup request. Outcomes: ok,
// not_modified, invalid_callback, missing_query.
func RecordLookupRequest(outcome string) {
	lookupRequests.WithLabelValues(outcome).Inc()
}

// RecordSkippedRow counts a row dropped by the data layer. Reasons:
// corrupt, unknown_type, excluded_type.
func RecordSkippedRow(reason string) {
	skippedRows.WithLabelValues(reason).Inc()
}

// SetStoreLastUpdate publishes the data file's freshness timestamp so
// dashboards can alert on a stale store.
func SetStoreLastUpdate(ts int64) {
	storeLastUpdate.Set(float64(ts))
}
