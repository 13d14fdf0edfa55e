package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tailscale.com/tsnet"

	planforge "github.com/claude/planforge"
	"github.com/claude/planforge/internal/catalog"
	"github.com/claude/planforge/internal/config"
	"github.com/claude/planforge/internal/plan"
	"github.com/claude/planforge/internal/resolve"
	"github.com/claude/planforge/internal/server"
	"github.com/claude/planforge/internal/storage"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	migrateOnly := flag.Bool("migrate-only", false, "run migrations and exit")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	log.Info("PlanForge starting", "version", Version)

	// Load config
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Run migrations
	dsn := cfg.Database.DSN()
	if err := storage.RunMigrations(dsn, "migrations"); err != nil {
		log.Error("migration failed", "error", err)
		os.Exit(1)
	}
	log.Info("migrations applied")

	if *migrateOnly {
		log.Info("migrate-only: exiting")
		return
	}

	// Connect database
	ctx := context.Background()
	db, err := storage.New(ctx, dsn)
	if err != nil {
		log.Error("failed to connect database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	log.Info("database connected")

	// Seed the catalog on first boot (idempotent — only when empty)
	if err := seedCatalog(ctx, db, log); err != nil {
		log.Error("catalog seed failed", "error", err)
		os.Exit(1)
	}

	// Create generator and resolver
	gen := plan.NewGenerator(plan.Options{
		FuzzyThreshold: cfg.Matching.FuzzyThreshold,
		Logger:         log,
	})
	resolver := resolve.New(cfg.Matching.FuzzyThreshold)

	// Create server
	srv := server.New(db, gen, resolver, cfg.Auth.APIKey, log)

	// Start server — tsnet or plain HTTP
	var listener net.Listener
	var tsServer *tsnet.Server

	if cfg.Tailscale.Enabled {
		tsServer = &tsnet.Server{
			Hostname: cfg.Tailscale.Hostname,
			Dir:      cfg.Tailscale.StateDir,
		}
		if err := tsServer.Start(); err != nil {
			log.Error("tsnet start failed", "error", err)
			os.Exit(1)
		}
		defer tsServer.Close()

		listener, err = tsServer.Listen("tcp", ":80")
		if err != nil {
			log.Error("tsnet listen failed", "error", err)
			os.Exit(1)
		}
		log.Info("tsnet server starting", "hostname", cfg.Tailscale.Hostname)
	} else {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		listener, err = net.Listen("tcp", addr)
		if err != nil {
			log.Error("listen failed", "addr", addr, "error", err)
			os.Exit(1)
		}
		log.Info("server starting", "addr", addr, "mode", "dev (no tailscale)")
	}

	httpSrv := &http.Server{Handler: srv}

	go func() {
		if err := httpSrv.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Info("shutting down", "signal", sig)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", "error", err)
	}
	log.Info("server stopped")
}

// seedCatalog loads the bundled starter catalog into an empty database
// so a fresh deployment can generate plans before any import runs.
func seedCatalog(ctx context.Context, db *storage.DB, log *slog.Logger) error {
	count, err := db.CountExercises(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	data, err := planforge.SeedFS.ReadFile(planforge.SeedPath)
	if err != nil {
		return fmt.Errorf("reading seed catalog: %w", err)
	}
	var entries []catalog.Exercise
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("parsing seed catalog: %w", err)
	}

	n, err := db.UpsertExercises(ctx, entries)
	if err != nil {
		return fmt.Errorf("seeding catalog: %w", err)
	}
	log.Info("catalog seeded", "exercises", n)
	return nil
}
