package games

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	backendFile  = "file"
	backendRedis = "redis"

	opLoad = "load"
	opSave = "save"
)

var (
	storeOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wolfbot_game_store_operations_total",
			Help: "Total number of game document loads and saves by backend and status.",
		},
		[]string{"backend", "operation", "status"},
	)

	storeOperationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wolfbot_game_store_operation_seconds",
			Help:    "Duration of game document loads and saves.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"backend", "operation"},
	)

	storeConflictsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wolfbot_game_store_conflicts_total",
			Help: "Total number of saves rejected because the document changed since it was loaded.",
		},
		[]string{"backend"},
	)
)

// observe records one store operation; call it deferred with the start time
func observe(backend, operation string, start time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	storeOperationsTotal.WithLabelValues(backend, operation, status).Inc()
	storeOperationSeconds.WithLabelValues(backend, operation).Observe(time.Since(start).Seconds())
}
