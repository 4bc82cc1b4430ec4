package scenario

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	stellarduelv1 "github.com/orbitalworks/stellarduel/api/gen/go/stellarduel/v1"
	platformgrpc "github.com/orbitalworks/stellarduel/internal/platform/grpc"
	"google.golang.org/grpc"
)

// Config controls scenario execution.
type Config struct {
	GRPCAddr   string
	Timeout    time.Duration
	Assertions AssertionMode
	Verbose    bool
	Logger     *log.Logger
}

// DefaultConfig returns default runner configuration.
func DefaultConfig() Config {
	return Config{
		GRPCAddr:   "localhost:8080",
		Timeout:    30 * time.Second,
		Assertions: AssertionStrict,
		Verbose:    false,
	}
}

// Runner executes Lua scenarios against the match gRPC API.
type Runner struct {
	conn        *grpc.ClientConn
	arenaClient stellarduelv1.ArenaServiceClient
	matchClient stellarduelv1.MatchServiceClient
	assertions  Assertions
	logger      *log.Logger
	verbose     bool
	timeout     time.Duration
}

// scenarioState tracks the running match across steps.
type scenarioState struct {
	// parent is the scenario-level context; the snapshot stream is
	// derived from it so it outlives per-step timeouts.
	parent   context.Context
	matchID  string
	sequence int64
	watch    grpc.ServerStreamingClient[stellarduelv1.MatchSnapshot]
	stopWait context.CancelFunc
	last     *stellarduelv1.MatchSnapshot
	done     bool
}

// NewRunner connects to gRPC, waits for the match server to report
// healthy, and prepares a scenario runner.
func NewRunner(ctx context.Context, cfg Config) (*Runner, error) {
	if cfg.GRPCAddr == "" {
		return nil, errors.New("grpc address is required")
	}

	var logf func(string, ...any)
	if cfg.Verbose && cfg.Logger != nil {
		logf = cfg.Logger.Printf
	}
	conn, err := platformgrpc.DialWithHealth(
		ctx,
		nil,
		cfg.GRPCAddr,
		cfg.Timeout,
		logf,
		platformgrpc.DefaultClientDialOptions()...,
	)
	if err != nil {
		return nil, fmt.Errorf("dial gRPC: %w", err)
	}

	r := newRunnerWithClients(cfg, stellarduelv1.NewArenaServiceClient(conn), stellarduelv1.NewMatchServiceClient(conn))
	r.conn = conn
	return r, nil
}

// newRunnerWithClients builds a Runner from pre-built clients. Config
// defaults (logger, timeout) are applied here so they are testable.
func newRunnerWithClients(cfg Config, arenaClient stellarduelv1.ArenaServiceClient, matchClient stellarduelv1.MatchServiceClient) *Runner {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(os.Stderr, "", 0)
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &Runner{
		arenaClient: arenaClient,
		matchClient: matchClient,
		assertions:  Assertions{Mode: cfg.Assertions, Logger: logger},
		logger:      logger,
		verbose:     cfg.Verbose,
		timeout:     timeout,
	}
}

// Close releases resources held by the runner.
func (r *Runner) Close() error {
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}

// RunFile loads and executes a scenario file.
func RunFile(ctx context.Context, cfg Config, path string) error {
	runner, err := NewRunner(ctx, cfg)
	if err != nil {
		return err
	}
	defer runner.Close()

	scenario, err := LoadScenarioFromFile(path)
	if err != nil {
		return err
	}
	return runner.RunScenario(ctx, scenario)
}

// RunScenario executes the scenario steps against gRPC.
func (r *Runner) RunScenario(ctx context.Context, scenario *Scenario) error {
	if scenario == nil {
		return errors.New("scenario is required")
	}
	r.logf("scenario start: %s (%d steps)", scenario.Name, len(scenario.Steps))
	state := &scenarioState{parent: ctx}
	defer func() {
		if state.stopWait != nil {
			state.stopWait()
		}
	}()

	for index, step := range scenario.Steps {
		stepNumber := index + 1
		r.logf("step %d/%d start: %s", stepNumber, len(scenario.Steps), step.Kind)
		stepStart := time.Now()
		stepCtx, cancel := context.WithTimeout(ctx, r.timeout)
		err := r.runStep(stepCtx, state, step)
		cancel()
		if err != nil {
			return fmt.Errorf("step %d (%s): %w", stepNumber, step.Kind, err)
		}
		r.logf("step %d/%d done: %s (%s)", stepNumber, len(scenario.Steps), step.Kind, time.Since(stepStart))
	}
	r.logf("scenario done: %s", scenario.Name)
	return nil
}

func (r *Runner) runStep(ctx context.Context, state *scenarioState, step Step) error {
	switch step.Kind {
	case "match":
		return r.stepMatch(ctx, state, step.Args)
	case "drive":
		return r.stepDrive(ctx, state, step.Args)
	case "expect":
		return r.stepExpect(state, step.Args)
	case "expect_event":
		return r.stepExpectEvent(ctx, state, step.Args)
	case "play_out":
		return r.stepPlayOut(ctx, state, step.Args)
	default:
		return fmt.Errorf("unknown step kind: %s", step.Kind)
	}
}

func (r *Runner) logf(format string, args ...any) {
	if !r.verbose || r.logger == nil {
		return
	}
	r.logger.Printf(format, args...)
}
