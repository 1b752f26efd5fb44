package metrics

import "time"

// Stats is implemented by whatever holds the live ecs.Registry and
// ecs.Storage (pkg/game's World) so Collector can poll it without this
// package importing pkg/ecs's generic accessors directly.
type Stats interface {
	EntityCount() int
	ComponentCounts() map[string]int
	SessionCount() int
}

// Collector periodically polls Stats and updates the corresponding gauges.
// It does not own a goroutine until Start is called.
type Collector struct {
	stats  Stats
	stopCh chan struct{}
}

// NewCollector creates a metrics collector over stats.
func NewCollector(stats Stats) *Collector {
	return &Collector{stats: stats, stopCh: make(chan struct{})}
}

// Start begins polling on a fixed interval, collecting once immediately.
func (c *Collector) Start(interval time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		c.collect()
		for {
			select {
			case <-ticker.C:
				c.collect()
			case <-c.stopCh:
				ticker.Stop()
				return
			}
		}
	}()
}

// Stop stops the collector.
func (c *Collector) Stop() {
	close(c.stopCh)
}

func (c *Collector) collect() {
	EntitiesTotal.Set(float64(c.stats.EntityCount()))
	SessionsTotal.Set(float64(c.stats.SessionCount()))
	for componentType, count := range c.stats.ComponentCounts() {
		ComponentsTotal.WithLabelValues(componentType).Set(float64(count))
	}
}
