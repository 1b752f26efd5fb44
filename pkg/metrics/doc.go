/*
Package metrics provides Prometheus metrics collection and exposition for
shardkeeper: gauges for live entity and per-component-type counts,
histograms for query lock-wait latency and tick duration, counters for
ticks and packets processed, and an admin HTTP health/readiness surface.

# Architecture

	┌──────────────────── METRICS SYSTEM ──────────────────────┐
	│                                                            │
	│  ┌────────────────────────────────────────────┐          │
	│  │          Prometheus Registry                │          │
	│  │  - Global DefaultRegistry                   │          │
	│  │  - MustRegister at package init             │          │
	│  └──────────────────┬─────────────────────────┘          │
	│                     │                                      │
	│  ┌──────────────────▼─────────────────────────┐          │
	│  │              Metric Categories               │          │
	│  │  Entity/component: EntitiesTotal,            │          │
	│  │    ComponentsTotal, QueryLatency,            │          │
	│  │    LockWaitDuration, LockPoisonedTotal       │          │
	│  │  Tick: TickDuration, TicksTotal, TicksBehind │          │
	│  │  Network: SessionsTotal, PacketsTotal,       │          │
	│  │    KeepAliveTimeoutsTotal                    │          │
	│  │  Admin API: APIRequestsTotal,                │          │
	│  │    APIRequestDuration                        │          │
	│  └──────────────────┬─────────────────────────┘          │
	│                     │                                      │
	│  ┌──────────────────▼─────────────────────────┐          │
	│  │         Collector (polling loop)             │          │
	│  │  - Polls a Stats implementation on a ticker │          │
	│  │  - Writes EntitiesTotal/ComponentsTotal/    │          │
	│  │    SessionsTotal gauges                      │          │
	│  └────────────────────────────────────────────┘           │
	└────────────────────────────────────────────────────────┘

# Stats decoupling

Collector depends only on the Stats interface (EntityCount,
ComponentCounts, SessionCount), not on pkg/ecs or pkg/game directly —
pkg/game.World implements it. This keeps metrics from needing a compile-time
type parameter per component type the way pkg/ecs.Len[T] does.

# Usage

	collector := metrics.NewCollector(world)
	collector.Start(cfg.TickInterval())
	defer collector.Stop()

	mux.Handle("/metrics", metrics.Handler())

# Health checking

HealthChecker (health.go) tracks per-component health independently of the
Prometheus metrics above — it is what pkg/api's /ready endpoint and the
admin HTTP liveness/readiness handlers consult, registered under component
names "ecs", "net", "api".
*/
package metrics
