package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	mcpSdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hrleave/leavectl/internal/config"
	"github.com/hrleave/leavectl/internal/leave"
	"github.com/hrleave/leavectl/internal/log"
	"github.com/hrleave/leavectl/internal/mcp"
	"github.com/hrleave/leavectl/internal/store"
)

const serverName = "hr-leave-management-server"

// runMCP initializes the ledger and starts the MCP server on stdio.
func runMCP(cfg *config.Config, logger log.Logger) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	ledger, err := buildLedger(cfg, logger)
	if err != nil {
		return err
	}

	server, err := mcp.NewServer(mcp.Config{
		Name:    serverName,
		Version: Version,
		Logger:  logger.With("component", "mcp"),
		Ledger:  ledger,
	})
	if err != nil {
		return fmt.Errorf("creating MCP server: %w", err)
	}

	logger.Info("MCP server ready",
		"name", serverName,
		"version", Version,
		"transport", "stdio",
		"data_file", cfg.DataFile)

	if err := server.Run(ctx, &mcpSdk.StdioTransport{}); err != nil {
		return fmt.Errorf("MCP server error: %w", err)
	}

	logger.Info("MCP server shut down gracefully")
	return nil
}

// buildLedger constructs the ledger, wiring in the file store and loading
// either the persisted document or, when empty and seeding is enabled, the
// fixture data set.
func buildLedger(cfg *config.Config, logger log.Logger) (*leave.Ledger, error) {
	var saver leave.Saver
	snap := leave.Snapshot{}

	if cfg.DataFile != "" {
		fileStore := store.NewFile(cfg.DataFile, logger.With("component", "store"))
		loaded, err := fileStore.Load()
		if err != nil {
			return nil, fmt.Errorf("loading data file: %w", err)
		}
		snap = loaded
		saver = fileStore
	}

	if len(snap.Employees) == 0 && cfg.Seed {
		logger.Info("store empty, loading fixture data")
		snap = leave.SeedData()
	}

	ledger := leave.NewLedger(saver, logger.With("component", "ledger"))
	ledger.Restore(snap)
	return ledger, nil
}
