// Package app wires the game runtime, storage, and gRPC lifecycle.
package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"os"
	"path/filepath"
	"strings"

	stellarduelv1 "github.com/orbitalworks/stellarduel/api/gen/go/stellarduel/v1"
	"github.com/orbitalworks/stellarduel/internal/platform/config"
	gameservice "github.com/orbitalworks/stellarduel/internal/services/game/api/grpc/game"
	gamesqlite "github.com/orbitalworks/stellarduel/internal/services/game/storage/sqlite"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
)

type serverEnv struct {
	DBPath string `env:"STELLAR_DUEL_GAME_DB_PATH"`
}

func loadServerEnv() serverEnv {
	var cfg serverEnv
	_ = config.ParseEnv(&cfg)
	if strings.TrimSpace(cfg.DBPath) == "" {
		cfg.DBPath = filepath.Join("data", "game.db")
	}
	return cfg
}

// Server hosts the game gRPC API, the simulation runtime, and storage.
type Server struct {
	listener   net.Listener
	grpcServer *grpc.Server
	health     *health.Server
	store      *gamesqlite.Store
	runtime    *Runtime
}

// New creates a configured game server listening on the provided port.
func New(port int) (*Server, error) {
	return NewWithAddr(fmt.Sprintf(":%d", port))
}

// NewWithAddr creates a configured game server for the provided address.
func NewWithAddr(addr string) (*Server, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", addr, err)
	}

	env := loadServerEnv()
	store, err := openGameStore(env.DBPath)
	if err != nil {
		_ = listener.Close()
		return nil, err
	}

	runtime := NewRuntime(store)
	grpcServer := grpc.NewServer(grpc.StatsHandler(otelgrpc.NewServerHandler()))
	matchService := gameservice.NewMatchService(runtime, store)
	arenaService := gameservice.NewArenaService()
	healthServer := health.NewServer()
	stellarduelv1.RegisterMatchServiceServer(grpcServer, matchService)
	stellarduelv1.RegisterArenaServiceServer(grpcServer, arenaService)
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus("stellarduel.v1.MatchService", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus("stellarduel.v1.ArenaService", grpc_health_v1.HealthCheckResponse_SERVING)

	return &Server{
		listener:   listener,
		grpcServer: grpcServer,
		health:     healthServer,
		store:      store,
		runtime:    runtime,
	}, nil
}

// Addr returns the listener address for the server.
func (s *Server) Addr() string {
	if s == nil || s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Runtime returns the simulation runtime for embedding callers.
func (s *Server) Runtime() *Runtime {
	if s == nil {
		return nil
	}
	return s.runtime
}

// Run creates and serves a game server until context cancellation.
func Run(ctx context.Context, port int) error {
	server, err := New(port)
	if err != nil {
		return err
	}
	return server.Serve(ctx)
}

// RunWithAddr creates and serves a game server on an explicit address.
func RunWithAddr(ctx context.Context, addr string) error {
	server, err := NewWithAddr(addr)
	if err != nil {
		return err
	}
	return server.Serve(ctx)
}

// Serve starts the simulation runtime and gRPC server until context
// cancellation.
func (s *Server) Serve(ctx context.Context) error {
	if s == nil {
		return errors.New("server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	defer s.Close()

	runtimeCtx, stopRuntime := context.WithCancel(ctx)
	defer stopRuntime()
	runtimeErr := make(chan error, 1)
	go func() {
		runtimeErr <- s.runtime.Run(runtimeCtx)
	}()

	log.Printf("game server listening at %v", s.listener.Addr())
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.grpcServer.Serve(s.listener)
	}()

	select {
	case <-ctx.Done():
		if s.health != nil {
			s.health.Shutdown()
		}
		s.grpcServer.GracefulStop()
		stopRuntime()
		<-runtimeErr
		err := <-serveErr
		if err == nil || errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("serve gRPC: %w", err)
	case err := <-serveErr:
		stopRuntime()
		<-runtimeErr
		if err == nil || errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("serve gRPC: %w", err)
	}
}

// Close releases game server resources.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.health != nil {
		s.health.Shutdown()
	}
	if s.grpcServer != nil {
		s.grpcServer.Stop()
	}
	if s.listener != nil {
		_ = s.listener.Close()
	}
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			log.Printf("close game store: %v", err)
		}
	}
}

func openGameStore(path string) (*gamesqlite.Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}
	store, err := gamesqlite.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open game sqlite store: %w", err)
	}
	return store, nil
}
