// Package main is the entry point for the MCP server. It exposes the task
// tools over stdio for AI agents; all wiring is done by hand since there is
// no HTTP surface to assemble. Stdout belongs to the protocol, so logs and
// fatal errors go to stderr.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/taskdrop/taskdrop/internal/adapters/clients/asana"
	"github.com/taskdrop/taskdrop/internal/adapters/clients/planner"
	"github.com/taskdrop/taskdrop/internal/adapters/directory"
	"github.com/taskdrop/taskdrop/internal/adapters/mcp"
	"github.com/taskdrop/taskdrop/internal/app"
	"github.com/taskdrop/taskdrop/internal/platform/config"
	"github.com/taskdrop/taskdrop/internal/platform/httpclient"
	"github.com/taskdrop/taskdrop/internal/platform/logging"
	"github.com/taskdrop/taskdrop/internal/ports"
)

const version = "0.1.0"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	service, err := buildService(cfg, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server := mcp.NewServer(service, version)

	logger.Info("mcp server starting", slog.String("transport", "stdio"))
	if err := server.Run(ctx, mcpsdk.NewStdioTransport()); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("mcp server: %w", err)
	}

	logger.Info("mcp server stopped")
	return nil
}

// buildService assembles the task service with whichever backends are
// configured. Metrics are omitted: a stdio tool has nowhere to export them.
func buildService(cfg *config.Config, logger *slog.Logger) (ports.TaskService, error) {
	var creators []ports.TaskCreator

	if cfg.Backends.Asana.Configured() {
		client := httpclient.New(&cfg.Client, "asana", cfg.Backends.Asana.BaseURL, cfg.Backends.Asana.Token, nil, logger)
		creator, err := asana.New(client, &cfg.Backends.Asana, logger)
		if err != nil {
			return nil, fmt.Errorf("building asana adapter: %w", err)
		}
		creators = append(creators, creator)
	}

	if cfg.Backends.Planner.Configured() {
		client := httpclient.New(&cfg.Client, "planner", cfg.Backends.Planner.BaseURL, cfg.Backends.Planner.Token, nil, logger)
		creator, err := planner.New(client, &cfg.Backends.Planner, logger)
		if err != nil {
			return nil, fmt.Errorf("building planner adapter: %w", err)
		}
		creators = append(creators, creator)
	}

	return app.NewTaskService(creators, directory.New(cfg.Directory), nil, logger), nil
}
