package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/shardkeeper/shardkeeper/pkg/ecs"
	"github.com/shardkeeper/shardkeeper/pkg/game"
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run a canned ECS query workload and report throughput",
	RunE:  runBench,
}

func init() {
	benchCmd.Flags().Int("entities", 10000, "Number of entities to populate")
	benchCmd.Flags().Int("iterations", 100, "Number of MovementSystem passes to run")
}

func runBench(cmd *cobra.Command, args []string) error {
	entities, _ := cmd.Flags().GetInt("entities")
	iterations, _ := cmd.Flags().GetInt("iterations")

	w := game.NewWorld()
	for i := 0; i < entities; i++ {
		e := w.Registry.Create()
		if err := ecs.Insert(w.Storage, e, game.Position{}); err != nil {
			return err
		}
		if err := ecs.Insert(w.Storage, e, game.Velocity{DX: 1, DY: 1, DZ: 1}); err != nil {
			return err
		}
	}

	ctx := context.Background()
	start := time.Now()
	for i := 0; i < iterations; i++ {
		if err := game.MovementSystem(ctx, w); err != nil {
			return err
		}
	}
	elapsed := time.Since(start)

	total := entities * iterations
	fmt.Printf("entities=%d iterations=%d total_rows=%d elapsed=%s rows/sec=%.0f\n",
		entities, iterations, total, elapsed, float64(total)/elapsed.Seconds())
	return nil
}
