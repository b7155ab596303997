package mcp

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hrleave/leavectl/internal/leave"
)

// Server wraps the MCP SDK server and the leave ledger it serves.
type Server struct {
	mcpServer *mcp.Server
	ledger    *leave.Ledger
	logger    *slog.Logger
	name      string
	version   string
}

// Config holds MCP server configuration.
type Config struct {
	Name    string
	Version string
	Logger  *slog.Logger
	Ledger  *leave.Ledger
}

// NewServer creates an MCP server with all leave tools and resources
// registered.
func NewServer(cfg Config) (*Server, error) {
	if cfg.Name == "" {
		return nil, fmt.Errorf("server name is required")
	}
	if cfg.Version == "" {
		return nil, fmt.Errorf("server version is required")
	}
	if cfg.Ledger == nil {
		return nil, fmt.Errorf("ledger is required")
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	s := &Server{
		mcpServer: mcp.NewServer(&mcp.Implementation{
			Name:    cfg.Name,
			Version: cfg.Version,
		}, nil),
		ledger:  cfg.Ledger,
		logger:  cfg.Logger,
		name:    cfg.Name,
		version: cfg.Version,
	}

	if err := s.registerTools(); err != nil {
		return nil, fmt.Errorf("registering tools: %w", err)
	}
	s.registerResources()

	return s, nil
}

// Run starts the server on the given transport. It blocks until the context
// is cancelled or the transport closes.
func (s *Server) Run(ctx context.Context, transport mcp.Transport) error {
	return s.mcpServer.Run(ctx, transport)
}

// registerTools registers every tool group.
func (s *Server) registerTools() error {
	if err := s.registerEmployeeTools(); err != nil {
		return fmt.Errorf("employee tools: %w", err)
	}
	if err := s.registerRequestTools(); err != nil {
		return fmt.Errorf("request tools: %w", err)
	}
	if err := s.registerCalendarTools(); err != nil {
		return fmt.Errorf("calendar tools: %w", err)
	}
	return nil
}
