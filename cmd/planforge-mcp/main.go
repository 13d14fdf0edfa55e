package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/claude/planforge/internal/config"
	"github.com/claude/planforge/internal/mcp"
	"github.com/claude/planforge/internal/plan"
	"github.com/claude/planforge/internal/resolve"
	"github.com/claude/planforge/internal/storage"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file (local mode)")
	serverURL := flag.String("server", "", "PlanForge server URL for remote mode (e.g. https://planforge.tail1234.ts.net)")
	apiKey := flag.String("api-key", "", "API key for remote writes (remote mode)")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("planforge-mcp", Version)
		return
	}

	// MCP speaks JSON-RPC on stdout; logs must go to stderr.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	var (
		ds        mcp.DataSource
		threshold float64
	)

	if *serverURL != "" {
		// Remote mode: all data access goes through the REST API.
		ds = mcp.NewHTTPClient(*serverURL, *apiKey)
		log.Info("remote mode", "server", *serverURL)
	} else {
		cfg, err := config.Load(*configPath)
		if err != nil {
			log.Error("failed to load config", "error", err)
			os.Exit(1)
		}
		threshold = cfg.Matching.FuzzyThreshold

		db, err := storage.New(context.Background(), cfg.Database.DSN())
		if err != nil {
			log.Error("failed to connect database", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		ds = db
		log.Info("local mode", "database", cfg.Database.Name)
	}

	gen := plan.NewGenerator(plan.Options{FuzzyThreshold: threshold, Logger: log})
	resolver := resolve.New(threshold)

	s := mcp.New(ds, gen, resolver, Version, log)
	log.Info("MCP server starting on stdio")

	if err := server.ServeStdio(s); err != nil {
		log.Error("MCP server error", "error", err)
		os.Exit(1)
	}
}
