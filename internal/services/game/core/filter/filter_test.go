package filter

import (
	"testing"
)

func TestParseMatchFilterEmpty(t *testing.T) {
	cond, err := ParseMatchFilter("   ")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cond.Clause != "" || len(cond.Params) != 0 {
		t.Fatalf("expected empty condition, got %+v", cond)
	}
}

func TestParseMatchFilterEquality(t *testing.T) {
	cond, err := ParseMatchFilter(`arena = "pulsar-core"`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cond.Clause != "arena_key = ?" {
		t.Fatalf("unexpected clause %q", cond.Clause)
	}
	if len(cond.Params) != 1 || cond.Params[0] != "pulsar-core" {
		t.Fatalf("unexpected params %+v", cond.Params)
	}
}

func TestParseMatchFilterAnd(t *testing.T) {
	cond, err := ParseMatchFilter(`status = "complete" AND winner = "player"`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cond.Clause != "(status = ? AND winner = ?)" {
		t.Fatalf("unexpected clause %q", cond.Clause)
	}
	if len(cond.Params) != 2 {
		t.Fatalf("unexpected params %+v", cond.Params)
	}
}

func TestParseMatchFilterOr(t *testing.T) {
	cond, err := ParseMatchFilter(`winner = "player" OR winner = "draw"`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cond.Clause != "(winner = ? OR winner = ?)" {
		t.Fatalf("unexpected clause %q", cond.Clause)
	}
}

func TestParseMatchFilterTimestamp(t *testing.T) {
	cond, err := ParseMatchFilter(`created_at >= timestamp("2026-01-01T00:00:00Z")`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cond.Clause != "created_at >= ?" {
		t.Fatalf("unexpected clause %q", cond.Clause)
	}
	millis, ok := cond.Params[0].(int64)
	if !ok || millis <= 0 {
		t.Fatalf("expected unix millis param, got %+v", cond.Params)
	}
}

func TestParseMatchFilterUnknownField(t *testing.T) {
	if _, err := ParseMatchFilter(`pilot = "x"`); err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestParseMatchFilterInvalidSyntax(t *testing.T) {
	if _, err := ParseMatchFilter(`arena = `); err == nil {
		t.Fatal("expected parse error")
	}
}
