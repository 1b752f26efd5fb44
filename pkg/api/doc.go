/*
Package api is shardkeeper's admin HTTP surface: liveness, readiness,
Prometheus metrics, and a read-only player listing, served over plain
net/http. There is a single running process here with no peer cluster
to address, so the surface is a ServeMux rather than a generated RPC
service.

# Endpoints

  - GET /health  — liveness; always 200 while the process is up.
  - GET /ready   — readiness; backed by pkg/metrics.HealthChecker, 503
    until the "ecs", "net" and "api" components have all registered
    healthy.
  - GET /metrics — Prometheus exposition via promhttp.
  - GET /players — JSON array of currently connected players.
*/
package api
