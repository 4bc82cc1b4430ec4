// Package game parses game command flags and starts the match server.
package game

import (
	"context"
	"flag"

	entrypoint "github.com/orbitalworks/stellarduel/internal/platform/cmd"
	server "github.com/orbitalworks/stellarduel/internal/services/game/app"
)

// Config holds game command configuration.
type Config struct {
	Port int    `env:"STELLAR_DUEL_GAME_PORT" envDefault:"8080"`
	Addr string `env:"STELLAR_DUEL_GAME_ADDR"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.Port, "port", cfg.Port, "The game server port")
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "The game server listen address (overrides -port)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the game API service and simulation runtime.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceGame, func(context.Context) error {
		if cfg.Addr != "" {
			return server.RunWithAddr(ctx, cfg.Addr)
		}
		return server.Run(ctx, cfg.Port)
	})
}
