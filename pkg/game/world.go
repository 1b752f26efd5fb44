package game

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"github.com/shardkeeper/shardkeeper/pkg/ecs"
	"github.com/shardkeeper/shardkeeper/pkg/log"
	"github.com/shardkeeper/shardkeeper/pkg/metrics"
)

// System is one unit of per-tick game logic. It receives the tick's
// deadline-bearing context and the World it may query and mutate.
type System func(ctx context.Context, w *World) error

// World owns the live ecs.Registry and ecs.Storage for one running server
// and runs a fixed list of Systems once per tick, on every ticker fire.
type World struct {
	ticks    uint64
	sessions int64

	Registry *ecs.Registry
	Storage  *ecs.Storage

	logger  zerolog.Logger
	systems []System

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
}

// NewWorld returns an empty world with no entities and no registered
// systems.
func NewWorld() *World {
	return &World{
		Registry: ecs.NewRegistry(),
		Storage:  ecs.NewStorage(),
		logger:   log.WithComponent("game"),
	}
}

// Register appends a system to the end of the tick pipeline. Register must
// be called before Start; registering systems on a running world is not
// supported.
func (w *World) Register(s System) {
	w.systems = append(w.systems, s)
}

// Start runs the tick loop in a new goroutine, firing every interval until
// Stop is called.
func (w *World) Start(interval time.Duration) {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return
	}
	w.running = true
	w.stopCh = make(chan struct{})
	w.mu.Unlock()

	go w.run(interval)
}

// Stop halts the tick loop. It does not close Storage; callers that want a
// clean shutdown should call Storage.Close separately once Stop returns.
func (w *World) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.running {
		return
	}
	w.running = false
	close(w.stopCh)
}

func (w *World) run(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	w.logger.Info().Dur("interval", interval).Msg("tick loop started")

	for {
		select {
		case <-ticker.C:
			w.tick(interval)
		case <-w.stopCh:
			w.logger.Info().Msg("tick loop stopped")
			return
		}
	}
}

// tick runs every registered system once, in registration order. A ctx
// deadline of one tick interval bounds how long a single tick's systems may
// collectively suspend on a contended component lock before being
// cancelled; a system that returns context.DeadlineExceeded is logged and
// skipped rather than blocking the next tick indefinitely.
func (w *World) tick(interval time.Duration) {
	timer := metrics.NewTimer()
	defer func() {
		elapsed := timer.Duration()
		timer.ObserveDuration(metrics.TickDuration)

		behind := 0.0
		if elapsed > interval {
			behind = float64(elapsed/interval - 1)
		}
		metrics.TicksBehind.Set(behind)
	}()

	ctx, cancel := context.WithTimeout(context.Background(), interval)
	defer cancel()

	for _, system := range w.systems {
		if err := system(ctx, w); err != nil {
			w.logger.Error().Err(err).Msg("system failed")
		}
	}

	atomic.AddUint64(&w.ticks, 1)
	metrics.TicksTotal.Inc()
}

// Ticks returns the number of ticks run so far.
func (w *World) Ticks() uint64 { return atomic.LoadUint64(&w.ticks) }

// AddSession / RemoveSession track how many live network sessions pkg/net
// currently has open, for metrics.Stats.SessionCount. World does not track
// session identity itself — that is pkg/net's job.
func (w *World) AddSession()    { atomic.AddInt64(&w.sessions, 1) }
func (w *World) RemoveSession() { atomic.AddInt64(&w.sessions, -1) }

// EntityCount implements metrics.Stats.
func (w *World) EntityCount() int { return w.Registry.Count() }

// ComponentCounts implements metrics.Stats.
func (w *World) ComponentCounts() map[string]int { return w.Storage.Counts() }

// SessionCount implements metrics.Stats.
func (w *World) SessionCount() int { return int(atomic.LoadInt64(&w.sessions)) }
