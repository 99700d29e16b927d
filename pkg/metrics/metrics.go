package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/foliokit/folio/pkg/storage"
)

var (
	// Store metrics
	StoreWrites = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "folio_store_writes_total",
			Help: "Durable writes per entity slot",
		},
		[]string{"entity"},
	)

	StoreWriteFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "folio_store_write_failures_total",
			Help: "Failed durable writes per entity slot",
		},
		[]string{"entity"},
	)

	SlotRecoveries = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "folio_slot_recoveries_total",
			Help: "Slot loads that fell back to defaults (unreadable or corrupt bytes)",
		},
		[]string{"entity"},
	)

	// Auth metrics
	LoginAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "folio_login_attempts_total",
			Help: "Login attempts by outcome",
		},
		[]string{"outcome"},
	)

	// Snapshot metrics
	SnapshotExports = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "folio_snapshot_exports_total",
			Help: "Snapshot documents exported",
		},
	)

	SnapshotImports = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "folio_snapshot_imports_total",
			Help: "Snapshot imports by outcome",
		},
		[]string{"outcome"},
	)

	// API metrics
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "folio_http_requests_total",
			Help: "HTTP requests by method, path pattern and status",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "folio_http_request_duration_seconds",
			Help:    "HTTP request latency by path pattern",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
)

func init() {
	// Register all metrics
	prometheus.MustRegister(StoreWrites)
	prometheus.MustRegister(StoreWriteFailures)
	prometheus.MustRegister(SlotRecoveries)
	prometheus.MustRegister(LoginAttempts)
	prometheus.MustRegister(SnapshotExports)
	prometheus.MustRegister(SnapshotImports)
	prometheus.MustRegister(HTTPRequestsTotal)
	prometheus.MustRegister(HTTPRequestDuration)

	// Pre-create the per-entity series so every slot exposes a zero
	// counter from the first scrape instead of appearing on first use
	for _, key := range storage.Keys {
		StoreWrites.WithLabelValues(key)
		StoreWriteFailures.WithLabelValues(key)
		SlotRecoveries.WithLabelValues(key)
	}
}

// Handler returns the Prometheus HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}
