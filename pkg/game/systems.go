package game

import (
	"context"

	"github.com/shardkeeper/shardkeeper/pkg/ecs"
)

// MovementSystem advances every entity with both a Position and a Velocity
// by one tick's worth of displacement.
func MovementSystem(ctx context.Context, w *World) error {
	q, err := ecs.NewQuery2(w.Registry, w.Storage, ecs.Write[Position](), ecs.Read[Velocity]())
	if err != nil {
		return err
	}
	it, err := q.Iter(ctx)
	if err != nil {
		return err
	}
	defer it.Close()

	for it.Next() {
		pos := it.AMut()
		vel := it.B()
		pos.X += vel.DX
		pos.Y += vel.DY
		pos.Z += vel.DZ
	}
	return nil
}

// HealthCleanupSystem destroys any entity whose Health has reached zero.
// It runs after MovementSystem so a killing blow this tick still sees the
// entity's final position logged by whatever inspected it upstream.
func HealthCleanupSystem(ctx context.Context, w *World) error {
	q, err := ecs.NewQuery1(w.Registry, w.Storage, ecs.Read[Health]())
	if err != nil {
		return err
	}
	it, err := q.Iter(ctx)
	if err != nil {
		return err
	}

	var dead []ecs.Entity
	for it.Next() {
		if it.A().Dead() {
			dead = append(dead, it.Entity())
		}
	}
	it.Close()

	for _, e := range dead {
		w.Registry.Destroy(e)
	}
	return nil
}
