// Taskbridge: read-only Todoist search/fetch MCP connector
//
// Exposes one Todoist account to a research client through exactly two
// MCP tools, search and fetch, served over SSE (the default, one JSON
// payload per call) or stdio.
//
// Usage:
//
//	taskbridge serve           # Start the MCP server (SSE transport on $PORT)
//	taskbridge serve --stdio   # Serve over stdio instead
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/HendryAvila/taskbridge/internal/config"
	bridgeserver "github.com/HendryAvila/taskbridge/internal/server"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "serve":
		stdio := len(os.Args) > 2 && os.Args[2] == "--stdio"
		if err := run(stdio); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "--help", "-h", "help":
		printUsage()
		os.Exit(0)
	case "--version", "-v", "version":
		fmt.Printf("taskbridge v%s\n", bridgeserver.Version)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func run(stdio bool) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger, err := newLogger(cfg.Logger.Level)
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck // stderr sync failure is harmless at exit

	s := bridgeserver.New(cfg, logger)

	if stdio {
		logger.Info("serving over stdio")
		return server.ServeStdio(s)
	}

	sse := server.NewSSEServer(s)
	addr := fmt.Sprintf(":%d", cfg.Server.Port)

	// Graceful shutdown on interrupt.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("serving over SSE",
			zap.String("addr", addr),
			zap.String("upstream", cfg.Todoist.BaseURL),
		)
		errCh <- sse.Start(addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return sse.Shutdown(shutdownCtx)
	}
}

// newLogger builds the process logger. An unparseable level falls back
// to the production default (info) rather than refusing to start.
func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if lvl, err := zap.ParseAtomicLevel(level); err == nil {
		cfg.Level = lvl
	}
	return cfg.Build()
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `taskbridge v%s — read-only Todoist search/fetch MCP connector

Usage:
  taskbridge serve           Start the MCP server (SSE transport on $PORT, default 8000)
  taskbridge serve --stdio   Serve over stdio instead

Configuration (environment):
  TODOIST_TOKEN   Todoist API token (required)
  PORT            Listen port for the SSE transport (default 8000)
  LOGGER_LEVEL    Log level: debug, info, warn, error (default info)

Connect a host over SSE at http://<host>:$PORT/sse, or over stdio:

  {
    "mcpServers": {
      "taskbridge": {
        "command": "taskbridge",
        "args": ["serve", "--stdio"]
      }
    }
  }
`, bridgeserver.Version)
}
