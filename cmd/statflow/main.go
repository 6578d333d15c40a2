package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/statflow-lab/project-statflow/internal/aggregator"
	"github.com/statflow-lab/project-statflow/internal/archiver"
	corecfg "github.com/statflow-lab/project-statflow/internal/core/config"
	"github.com/statflow-lab/project-statflow/internal/core/storage/mongodb"
	"github.com/statflow-lab/project-statflow/internal/core/storage/redis"
	"github.com/statflow-lab/project-statflow/internal/ingestion"
	"github.com/statflow-lab/project-statflow/internal/query"
	"github.com/statflow-lab/project-statflow/internal/server"
)

func main() {
	configPath := flag.String("config", "statflow.yaml", "Path to configuration file")
	flag.Parse()

	// 0. Initialize Logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// 1. Load Configuration
	cfg, err := corecfg.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	slog.Info("Loaded config", "config", cfg)

	popTimeout, _ := cfg.Aggregator.PopTimeoutDuration()
	errorBackoff, _ := cfg.Aggregator.ErrorBackoffDuration()
	archiveInterval, _ := cfg.Archiver.IntervalDuration()

	// 2. Initialize Hot Store (Redis)
	hotStore, err := redis.NewAdapter(
		cfg.Redis.Addr,
		cfg.Redis.Password,
		cfg.Redis.DB,
		cfg.Redis.PoolSize,
	)
	if err != nil {
		slog.Error("Failed to initialize hot store", "error", err)
		os.Exit(1)
	}
	defer hotStore.Close()

	// 3. Initialize Cold Store (MongoDB)
	coldStore, err := mongodb.NewAdapter(
		cfg.Mongo.URI,
		cfg.Mongo.Database,
		cfg.Mongo.Collection,
	)
	if err != nil {
		slog.Error("Failed to initialize cold store", "error", err)
		os.Exit(1)
	}
	defer coldStore.Close(context.Background())

	// 4. Initialize Pipeline Services
	consumer := aggregator.New(hotStore, popTimeout, errorBackoff)
	arch := archiver.New(
		hotStore,
		coldStore,
		archiveInterval,
		cfg.Archiver.ScanPageSize,
		cfg.Archiver.RetentionDays,
	)

	querySvc := query.NewService(hotStore, coldStore, cfg.Archiver.RetentionDays)
	importerSvc := ingestion.NewService(hotStore, cfg.Importer.FilePath)

	// 5. Initialize Server
	srv := server.New(fmtAddr(cfg.Server.Host, cfg.Server.Port), hotStore, coldStore, cfg.Server.Mode)
	querySvc.RegisterRoutes(srv.Engine)
	importerSvc.RegisterRoutes(srv.Engine)

	// 6. Start Services
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Signal handler triggers the shutdown sequence below.
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		slog.Info("Signal received, shutting down...")
		cancel()
	}()

	g, gctx := errgroup.WithContext(ctx)

	if cfg.Aggregator.Enabled {
		g.Go(func() error { return consumer.Start(gctx) })
	} else {
		slog.Info("Aggregator disabled by config")
	}

	if cfg.Archiver.Enabled {
		g.Go(func() error { return arch.Start(gctx) })
	} else {
		slog.Info("Archiver disabled by config")
	}

	// HTTP server blocks until ctx is cancelled.
	g.Go(func() error { return srv.Run(gctx) })

	// Any active import run winds down with the process.
	g.Go(func() error {
		<-gctx.Done()
		importerSvc.StopImport()
		return nil
	})

	if err := g.Wait(); err != nil {
		slog.Error("Service stopped with error", "error", err)
	}

	slog.Info("Shutdown complete")
}

func fmtAddr(host string, port int) string {
	return fmt.Sprintf("%s:%d", host, port)
}
