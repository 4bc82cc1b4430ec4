// Package mcp parses MCP command flags and serves the engine tools on stdio.
package mcp

import (
	"context"
	"flag"

	entrypoint "github.com/orbitalworks/stellarduel/internal/platform/cmd"
	"github.com/orbitalworks/stellarduel/internal/services/mcp/service"
)

// Config holds MCP command configuration. The server runs the engine
// in-process, so there is nothing to dial.
type Config struct{}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the MCP protocol adapter on stdio.
func Run(ctx context.Context, _ Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceMCP, func(ctx context.Context) error {
		return service.Run(ctx)
	})
}
