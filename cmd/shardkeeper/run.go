package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/shardkeeper/shardkeeper/pkg/api"
	"github.com/shardkeeper/shardkeeper/pkg/config"
	"github.com/shardkeeper/shardkeeper/pkg/events"
	"github.com/shardkeeper/shardkeeper/pkg/game"
	"github.com/shardkeeper/shardkeeper/pkg/log"
	"github.com/shardkeeper/shardkeeper/pkg/metrics"
	shardnet "github.com/shardkeeper/shardkeeper/pkg/net"
	"github.com/shardkeeper/shardkeeper/pkg/playerdata"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the shardkeeper server",
	RunE:  runServer,
}

func init() {
	runCmd.Flags().StringP("config", "c", "shardkeeper.yaml", "Path to server configuration file")
}

func runServer(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")

	cfg, err := config.Load(configPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = config.Default()
	}

	logger := log.WithComponent("main")
	logger.Info().Str("config", configPath).Msg("starting shardkeeper")

	metrics.SetVersion(Version)

	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		metrics.RegisterCriticalComponent("ecs", false, err.Error())
		return fmt.Errorf("create data dir: %w", err)
	}

	store, err := playerdata.Open(cfg.DataDir)
	if err != nil {
		metrics.RegisterCriticalComponent("ecs", false, err.Error())
		return fmt.Errorf("open player data store: %w", err)
	}
	defer store.Close()

	world := game.NewWorld()
	world.Register(game.MovementSystem)
	world.Register(game.HealthCleanupSystem)
	world.Start(cfg.TickInterval())
	defer world.Stop()
	metrics.RegisterCriticalComponent("ecs", true, "")

	collector := metrics.NewCollector(world)
	collector.Start(cfg.TickInterval())
	defer collector.Stop()

	broker := events.NewBroker()
	broker.Start()
	defer broker.Stop()

	srv, err := shardnet.NewServer(cfg.ListenAddr, world, broker)
	if err != nil {
		metrics.RegisterCriticalComponent("net", false, err.Error())
		return fmt.Errorf("start network server: %w", err)
	}
	defer srv.Stop()
	metrics.RegisterCriticalComponent("net", true, "")
	go func() {
		if err := srv.Serve(); err != nil {
			logger.Error().Err(err).Msg("network server exited")
		}
	}()

	adminServer := api.NewServer(world)
	metrics.RegisterCriticalComponent("api", true, "")
	go func() {
		if err := adminServer.Start(cfg.AdminAddr); err != nil {
			logger.Error().Err(err).Msg("admin server exited")
		}
	}()

	logger.Info().
		Str("listen", cfg.ListenAddr).
		Str("admin", cfg.AdminAddr).
		Int("tick_rate", cfg.TickRate).
		Msg("shardkeeper running")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info().Msg("shutting down")
	return nil
}
