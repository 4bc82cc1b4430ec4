package config

import "testing"

type envConfig struct {
	Addr string `env:"CONFIG_TEST_ADDR" envDefault:"localhost:9000"`
	Tick int    `env:"CONFIG_TEST_TICK" envDefault:"60"`
}

func TestParseEnvAppliesDefaults(t *testing.T) {
	var cfg envConfig
	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Addr != "localhost:9000" {
		t.Fatalf("expected default addr, got %q", cfg.Addr)
	}
	if cfg.Tick != 60 {
		t.Fatalf("expected default tick, got %d", cfg.Tick)
	}
}

func TestParseEnvReadsEnvironment(t *testing.T) {
	t.Setenv("CONFIG_TEST_ADDR", "0.0.0.0:7777")
	t.Setenv("CONFIG_TEST_TICK", "120")

	var cfg envConfig
	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Addr != "0.0.0.0:7777" {
		t.Fatalf("expected env addr, got %q", cfg.Addr)
	}
	if cfg.Tick != 120 {
		t.Fatalf("expected env tick, got %d", cfg.Tick)
	}
}
