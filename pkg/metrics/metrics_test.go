package metrics_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shardkeeper/shardkeeper/pkg/ecs"
	"github.com/shardkeeper/shardkeeper/pkg/game"
	"github.com/shardkeeper/shardkeeper/pkg/metrics"
)

// sampleCount reads the number of observations a Histogram has recorded so
// far, by writing it to a protobuf Metric the way the Prometheus registry
// itself would when scraping.
func sampleCount(t *testing.T, h prometheus.Histogram) uint64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, h.Write(&m))
	return m.GetHistogram().GetSampleCount()
}

func TestQueryLatencyRecordsComponentLabels(t *testing.T) {
	reg := ecs.NewRegistry()
	storage := ecs.NewStorage()
	e := reg.Create()
	require.NoError(t, ecs.Insert(storage, e, game.Position{X: 1}))
	require.NoError(t, ecs.Insert(storage, e, game.Velocity{DX: 1}))

	before := sampleCount(t, metrics.QueryLatency.WithLabelValues("Position").(prometheus.Histogram))

	q1, err := ecs.NewQuery1(reg, storage, ecs.Read[game.Position]())
	require.NoError(t, err)
	it1, err := q1.Iter(t.Context())
	require.NoError(t, err)
	it1.Close()

	after := sampleCount(t, metrics.QueryLatency.WithLabelValues("Position").(prometheus.Histogram))
	assert.Greater(t, after, before, "a Query1[Position] iteration should add a QueryLatency sample under label \"Position\"")

	before2 := sampleCount(t, metrics.QueryLatency.WithLabelValues("Position+Velocity").(prometheus.Histogram))

	q2, err := ecs.NewQuery2(reg, storage, ecs.Read[game.Position](), ecs.Read[game.Velocity]())
	require.NoError(t, err)
	it2, err := q2.Iter(t.Context())
	require.NoError(t, err)
	it2.Close()

	after2 := sampleCount(t, metrics.QueryLatency.WithLabelValues("Position+Velocity").(prometheus.Histogram))
	assert.Greater(t, after2, before2, "a Query2[Position,Velocity] iteration should add a sample under the joined label")
}

func TestLockWaitDurationRecordsComponentTypeAndMode(t *testing.T) {
	reg := ecs.NewRegistry()
	storage := ecs.NewStorage()
	e := reg.Create()
	require.NoError(t, ecs.Insert(storage, e, game.Health{Current: 20, Max: 20}))

	readBefore := sampleCount(t, metrics.LockWaitDuration.WithLabelValues("Health", "read").(prometheus.Histogram))
	writeBefore := sampleCount(t, metrics.LockWaitDuration.WithLabelValues("Health", "write").(prometheus.Histogram))

	readQ, err := ecs.NewQuery1(reg, storage, ecs.Read[game.Health]())
	require.NoError(t, err)
	readIt, err := readQ.Iter(t.Context())
	require.NoError(t, err)
	readIt.Close()

	writeQ, err := ecs.NewQuery1(reg, storage, ecs.Write[game.Health]())
	require.NoError(t, err)
	writeIt, err := writeQ.Iter(t.Context())
	require.NoError(t, err)
	writeIt.Close()

	assert.Greater(t, sampleCount(t, metrics.LockWaitDuration.WithLabelValues("Health", "read").(prometheus.Histogram)), readBefore)
	assert.Greater(t, sampleCount(t, metrics.LockWaitDuration.WithLabelValues("Health", "write").(prometheus.Histogram)), writeBefore)
}

func TestTickDurationAndTicksTotalAdvanceOnWorldTick(t *testing.T) {
	before := sampleCount(t, metrics.TickDuration)
	ticksBefore := testutilToFloat(metrics.TicksTotal)

	w := game.NewWorld()
	w.Register(game.MovementSystem)
	w.Start(5 * time.Millisecond)
	require.Eventually(t, func() bool { return w.Ticks() > 0 }, time.Second, 5*time.Millisecond)
	w.Stop()

	assert.Greater(t, sampleCount(t, metrics.TickDuration), before)
	assert.Greater(t, testutilToFloat(metrics.TicksTotal), ticksBefore)
}

// testutilToFloat reads a Counter's current value without importing the
// testutil package just for this one case.
func testutilToFloat(c prometheus.Counter) float64 {
	var m dto.Metric
	_ = c.Write(&m)
	return m.GetCounter().GetValue()
}
