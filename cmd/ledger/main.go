package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/aevon-lab/contact-ledger/internal/aggregation"
	corecfg "github.com/aevon-lab/contact-ledger/internal/core/config"
	"github.com/aevon-lab/contact-ledger/internal/core/storage/backend"
	"github.com/aevon-lab/contact-ledger/internal/ingestion"
	"github.com/aevon-lab/contact-ledger/internal/normalize"
	"github.com/aevon-lab/contact-ledger/internal/pipeline"
	"github.com/aevon-lab/contact-ledger/internal/projection"
	"github.com/aevon-lab/contact-ledger/internal/server"
)

const defaultConfigFile = "ledger.yaml"

func main() {
	configPath := flag.String("config", "", "Path to configuration file (default: "+defaultConfigFile+" if present)")
	serve := flag.Bool("serve", false, "Serve the contact API after the run until interrupted")
	flag.Parse()

	if err := run(*configPath, *serve); err != nil {
		slog.Error("Ledger run failed", "error", err)
		os.Exit(1)
	}
}

func run(configPath string, serve bool) error {
	// 0. Bootstrap logger until the configured one is known
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	// 1. Load Configuration
	if configPath == "" {
		if _, err := os.Stat(defaultConfigFile); err == nil {
			configPath = defaultConfigFile
		} else if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("stat %s: %w", defaultConfigFile, err)
		}
	}
	cfg, err := corecfg.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	slog.SetDefault(newLogger(cfg.Log))
	slog.Info("Loaded config", "path", configPath, "driver", cfg.Database.Driver, "sources", len(cfg.EnabledSources()))

	// Signal handler cancels the run or the server.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Initialize Storage (runs migrations)
	store, err := backend.Open(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	// 3. Wire the pipeline
	ingestionSvc := ingestion.NewService(normalize.DefaultRegistry(), store, cfg.Ingestion.MaxBodySizeMB)
	job := aggregation.JobParameter{WorkerCount: cfg.Aggregation.WorkerCount}
	p := &pipeline.Pipeline{
		Store:      store,
		Ingestion:  ingestionSvc,
		Sources:    cfg.EnabledSources(),
		OutputPath: cfg.Export.Path,
		Job:        job,
	}

	// 4. Single pass
	if _, err := p.Run(ctx); err != nil {
		return err
	}
	if !serve {
		return nil
	}

	// 5. Serve the projection API until a signal arrives
	srv := server.New(fmtAddr(cfg.Server.Host, cfg.Server.Port), store, cfg.Server.Mode)
	ingestionSvc.RegisterRoutes(srv.Engine)
	projection.NewService(store, job).RegisterRoutes(srv.Engine)

	if cfg.Server.RefreshInterval > 0 {
		go func() {
			if err := pipeline.NewScheduler(cfg.Server.RefreshInterval, p).Start(ctx); err != nil {
				slog.Error("Scheduler stopped with error", "error", err)
			}
		}()
	}

	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server stopped: %w", err)
	}

	slog.Info("Shutdown complete")
	return nil
}

func newLogger(cfg corecfg.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

func fmtAddr(host string, port int) string {
	return fmt.Sprintf("%s:%d", host, port)
}
