package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Entity/component metrics
	EntitiesTotal = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "shardkeeper_entities_total",
			Help: "Total number of live entities",
		},
	)

	ComponentsTotal = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "shardkeeper_components_total",
			Help: "Total number of stored components by type",
		},
		[]string{"component_type"},
	)

	QueryLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "shardkeeper_query_latency_seconds",
			Help:    "Time spent acquiring locks and building a query's candidate set",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"query"},
	)

	LockWaitDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "shardkeeper_lock_wait_seconds",
			Help:    "Time a query spent waiting to acquire one component type's lock",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"component_type", "mode"},
	)

	LockPoisonedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shardkeeper_lock_poisoned_total",
			Help: "Total number of component types that have become poisoned",
		},
		[]string{"component_type"},
	)

	// Tick metrics
	TickDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "shardkeeper_tick_duration_seconds",
			Help:    "Time taken to run one full game tick",
			Buckets: prometheus.DefBuckets,
		},
	)

	TicksTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "shardkeeper_ticks_total",
			Help: "Total number of game ticks completed",
		},
	)

	TicksBehind = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "shardkeeper_ticks_behind",
			Help: "Number of ticks the server is currently behind its target tick rate",
		},
	)

	// Network/session metrics
	SessionsTotal = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "shardkeeper_sessions_total",
			Help: "Total number of currently connected sessions",
		},
	)

	PacketsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shardkeeper_packets_total",
			Help: "Total number of packets processed by direction and packet id",
		},
		[]string{"direction", "packet"},
	)

	KeepAliveTimeoutsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "shardkeeper_keepalive_timeouts_total",
			Help: "Total number of sessions disconnected for failing to answer a keep-alive",
		},
	)

	// Admin API metrics
	APIRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shardkeeper_api_requests_total",
			Help: "Total number of admin API requests by path and status",
		},
		[]string{"path", "status"},
	)

	APIRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "shardkeeper_api_request_duration_seconds",
			Help:    "Admin API request duration in seconds by path",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path"},
	)
)

func init() {
	prometheus.MustRegister(EntitiesTotal)
	prometheus.MustRegister(ComponentsTotal)
	prometheus.MustRegister(QueryLatency)
	prometheus.MustRegister(LockWaitDuration)
	prometheus.MustRegister(LockPoisonedTotal)
	prometheus.MustRegister(TickDuration)
	prometheus.MustRegister(TicksTotal)
	prometheus.MustRegister(TicksBehind)
	prometheus.MustRegister(SessionsTotal)
	prometheus.MustRegister(PacketsTotal)
	prometheus.MustRegister(KeepAliveTimeoutsTotal)
	prometheus.MustRegister(APIRequestsTotal)
	prometheus.MustRegister(APIRequestDuration)
}

// Handler returns the Prometheus HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Timer is a helper for timing operations.
type Timer struct {
	start time.Time
}

// NewTimer creates a new timer.
func NewTimer() *Timer {
	return &Timer{start: time.Now()}
}

// ObserveDuration records the duration to a histogram.
func (t *Timer) ObserveDuration(histogram prometheus.Histogram) {
	duration := time.Since(t.start).Seconds()
	histogram.Observe(duration)
}

// ObserveDurationVec records the duration to a histogram vec with labels.
func (t *Timer) ObserveDurationVec(histogram prometheus.ObserverVec, labels ...string) {
	duration := time.Since(t.start).Seconds()
	histogram.WithLabelValues(labels...).Observe(duration)
}

// Duration returns the elapsed time since the timer started.
func (t *Timer) Duration() time.Duration {
	return time.Since(t.start)
}
