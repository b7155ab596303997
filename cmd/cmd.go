// Package cmd provides the CLI commands for leavectl.
//
// Commands:
//   - mcp: run the Model Context Protocol server on stdio
//   - seed: write the fixture data set to the configured data file
//   - version: print version information
//
// All commands load configuration first and install a logger; the mcp
// command shuts down gracefully on SIGINT/SIGTERM via context cancellation.
package cmd

import (
	"fmt"
	"os"

	"github.com/hrleave/leavectl/internal/config"
	"github.com/hrleave/leavectl/internal/log"
)

// Execute is the main entry point for the leavectl CLI.
func Execute() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := log.New(log.Config{
		Level: cfg.SlogLevel(),
		JSON:  cfg.LogJSON,
	})

	if len(os.Args) < 2 {
		runHelp()
		return nil
	}

	switch os.Args[1] {
	case "mcp":
		return runMCP(cfg, logger)
	case "seed":
		return runSeed(cfg, logger)
	case "version", "--version", "-v":
		runVersion()
		return nil
	case "help", "--help", "-h":
		runHelp()
		return nil
	default:
		return fmt.Errorf("unknown command: %s", os.Args[1])
	}
}

// runHelp displays the help message.
func runHelp() {
	fmt.Println("leavectl - HR leave management MCP server")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  leavectl mcp        Start the MCP server on stdio (for Claude Desktop/Cursor)")
	fmt.Println("  leavectl seed       Write the fixture data set to the data file")
	fmt.Println("  leavectl version    Show version information")
	fmt.Println("  leavectl help       Show this help")
	fmt.Println()
	fmt.Println("Environment Variables:")
	fmt.Println("  LEAVECTL_DATA_FILE  Path of the JSON data file (empty = in-memory only)")
	fmt.Println("  LEAVECTL_SEED       Load fixture data when the store is empty (default: true)")
	fmt.Println("  LEAVECTL_LOG_LEVEL  debug, info, warn or error (default: info)")
	fmt.Println("  LEAVECTL_LOG_JSON   Log in JSON format (default: false)")
}
