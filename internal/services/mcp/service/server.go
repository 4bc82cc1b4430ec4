// Package service hosts the MCP server that exposes the match engine to
// assistant clients over stdio.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/orbitalworks/stellarduel/internal/services/mcp/domain"
)

const (
	serverName    = "stellarduel"
	serverVersion = "0.1.0"
)

// Server wraps the MCP server with the engine tools registered.
type Server struct {
	mcpServer *mcp.Server
}

// NewServer builds an MCP server with the arena and simulation tools.
func NewServer() *Server {
	mcpServer := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)

	mcp.AddTool(mcpServer, domain.ArenaListTool(), domain.ArenaListHandler())
	mcp.AddTool(mcpServer, domain.ArenaGetTool(), domain.ArenaGetHandler())
	mcp.AddTool(mcpServer, domain.SimulateMatchTool(), domain.SimulateMatchHandler())

	return &Server{mcpServer: mcpServer}
}

// Run creates a server and serves it on stdio until the context ends.
func Run(ctx context.Context) error {
	return NewServer().Serve(ctx)
}

// Serve starts the MCP server on stdio and blocks until it stops or the
// context ends.
func (s *Server) Serve(ctx context.Context) error {
	return s.serveWithTransport(ctx, &mcp.StdioTransport{})
}

// serveWithTransport starts the MCP server using the provided transport.
// Context cancellation is the normal shutdown path, not an error.
func (s *Server) serveWithTransport(ctx context.Context, transport mcp.Transport) error {
	if s == nil || s.mcpServer == nil {
		return fmt.Errorf("MCP server is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	err := s.mcpServer.Run(ctx, transport)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		err = nil
	}
	if err != nil {
		return fmt.Errorf("serve MCP: %w", err)
	}
	return nil
}
