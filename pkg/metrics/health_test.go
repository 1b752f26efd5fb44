package metrics

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetHealthChecker() {
	healthChecker = &HealthChecker{
		components: make(map[string]ComponentHealth),
		critical:   make(map[string]struct{}),
		startTime:  time.Now(),
	}
}

func TestReadinessNotReadyUntilEcsNetApiAllRegistered(t *testing.T) {
	resetHealthChecker()

	assert.Equal(t, "not_ready", GetReadiness().Status)

	// The checker only gates on components its caller declares critical,
	// so all three are declared, not yet healthy, before any comes up.
	RegisterCriticalComponent("ecs", false, "not started")
	RegisterCriticalComponent("net", false, "not started")
	RegisterCriticalComponent("api", false, "not started")

	RegisterCriticalComponent("ecs", true, "")
	assert.Equal(t, "not_ready", GetReadiness().Status, "net and api are still missing")

	RegisterCriticalComponent("net", true, "")
	assert.Equal(t, "not_ready", GetReadiness().Status, "api is still missing")

	RegisterCriticalComponent("api", true, "")
	assert.Equal(t, "ready", GetReadiness().Status)
}

func TestReadinessTripsWhenACriticalComponentGoesUnhealthy(t *testing.T) {
	resetHealthChecker()
	RegisterCriticalComponent("ecs", true, "")
	RegisterCriticalComponent("net", true, "")
	RegisterCriticalComponent("api", true, "")
	require.Equal(t, "ready", GetReadiness().Status)

	UpdateComponent("net", false, "listener closed")

	readiness := GetReadiness()
	assert.Equal(t, "not_ready", readiness.Status)
	assert.Equal(t, "not ready: listener closed", readiness.Components["net"])
	assert.Contains(t, readiness.Message, "net")
}

func TestNonCriticalComponentDoesNotGateReadiness(t *testing.T) {
	resetHealthChecker()
	RegisterCriticalComponent("ecs", true, "")
	RegisterCriticalComponent("net", true, "")
	RegisterCriticalComponent("api", true, "")

	// playerdata isn't wired as critical: the shard can still accept
	// players with a degraded store, so readiness shouldn't flip.
	RegisterComponent("playerdata", false, "disk full")

	readiness := GetReadiness()
	assert.Equal(t, "ready", readiness.Status)
	_, gated := readiness.Components["playerdata"]
	assert.False(t, gated, "non-critical components should not appear in the readiness report")
}

func TestUpdateComponentPreservesCriticality(t *testing.T) {
	resetHealthChecker()
	RegisterCriticalComponent("ecs", false, "starting")
	require.Equal(t, "not_ready", GetReadiness().Status)

	// UpdateComponent shouldn't need the caller to re-declare criticality.
	UpdateComponent("ecs", true, "")
	assert.Equal(t, "ready", GetReadiness().Status)
}

func TestGetHealthReportsEveryRegisteredComponent(t *testing.T) {
	resetHealthChecker()
	healthChecker.version = "1.2.3"
	RegisterCriticalComponent("ecs", true, "")
	RegisterComponent("playerdata", false, "disk full")

	health := GetHealth()
	assert.Equal(t, "unhealthy", health.Status)
	assert.Equal(t, "1.2.3", health.Version)
	assert.Equal(t, "healthy", health.Components["ecs"])
	assert.Equal(t, "unhealthy: disk full", health.Components["playerdata"])
}

func TestHealthHandlerReturns503WhenAnyComponentUnhealthy(t *testing.T) {
	resetHealthChecker()
	RegisterComponent("playerdata", false, "disk full")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	HealthHandler()(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var health HealthStatus
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&health))
	assert.Equal(t, "unhealthy", health.Status)
}

func TestReadyHandlerStatusCodesTrackEcsNetApi(t *testing.T) {
	resetHealthChecker()

	req := httptest.NewRequest(http.MethodGet, "/ready", nil)
	rec := httptest.NewRecorder()
	ReadyHandler()(rec, req)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	RegisterCriticalComponent("ecs", true, "")
	RegisterCriticalComponent("net", true, "")
	RegisterCriticalComponent("api", true, "")

	rec = httptest.NewRecorder()
	ReadyHandler()(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	var readiness HealthStatus
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&readiness))
	assert.Equal(t, "ready", readiness.Status)
	assert.Equal(t, "ready", readiness.Components["ecs"])
	assert.Equal(t, "ready", readiness.Components["net"])
	assert.Equal(t, "ready", readiness.Components["api"])
}

func TestLivenessHandlerAlwaysHealthyRegardlessOfComponents(t *testing.T) {
	resetHealthChecker()
	RegisterCriticalComponent("ecs", false, "starting")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	LivenessHandler()(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "alive", body["status"])
	assert.NotEmpty(t, body["uptime"])
}
