package mcp

import (
	"flag"
	"testing"
)

func TestParseConfig(t *testing.T) {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)

	if _, err := ParseConfig(fs, nil); err != nil {
		t.Fatalf("parse config: %v", err)
	}
}

func TestParseConfigRejectsUnknownFlags(t *testing.T) {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	fs.SetOutput(nullWriter{})

	if _, err := ParseConfig(fs, []string{"-transport", "http"}); err == nil {
		t.Fatal("expected error for unknown flag")
	}
}

type nullWriter struct{}

func (nullWriter) Write(p []byte) (int, error) { return len(p), nil }
