package scenario

import (
	"context"
	"flag"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("scenario", flag.ContinueOnError)

	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.GRPCAddr != "localhost:8080" {
		t.Fatalf("expected default grpc addr, got %q", cfg.GRPCAddr)
	}
	if !cfg.Assertions {
		t.Fatal("expected assertions to default to true")
	}
}

func TestParseConfigFlags(t *testing.T) {
	fs := flag.NewFlagSet("scenario", flag.ContinueOnError)

	cfg, err := ParseConfig(fs, []string{"-grpc-addr", "game:9000", "-scenario", "run.lua", "-assert=false"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.GRPCAddr != "game:9000" || cfg.Scenario != "run.lua" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.Assertions {
		t.Fatal("expected assertions disabled")
	}
}

func TestRunRequiresScenarioPath(t *testing.T) {
	err := Run(context.Background(), Config{GRPCAddr: "localhost:8080"}, nil, nil)
	if err == nil {
		t.Fatal("expected error for missing scenario path")
	}
}
