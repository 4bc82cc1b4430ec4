package domain

import (
	"context"
	"testing"

	"github.com/orbitalworks/stellarduel/internal/services/game/domain/arena"
)

func TestArenaListHandler_ReturnsCatalog(t *testing.T) {
	handler := ArenaListHandler()

	_, result, err := handler(context.Background(), nil, ListArenasInput{})
	if err != nil {
		t.Fatalf("list arenas: %v", err)
	}
	if len(result.Arenas) != len(arena.Definitions()) {
		t.Fatalf("arenas = %d, want %d", len(result.Arenas), len(arena.Definitions()))
	}
	for _, entry := range result.Arenas {
		if entry.Key == "" || entry.Name == "" {
			t.Fatalf("arena entry missing key or name: %+v", entry)
		}
	}
}

func TestArenaGetHandler_ReturnsDefinition(t *testing.T) {
	handler := ArenaGetHandler()

	_, result, err := handler(context.Background(), nil, GetArenaInput{Key: "nebula-rift"})
	if err != nil {
		t.Fatalf("get arena: %v", err)
	}
	if result.Arena.Key != "nebula-rift" {
		t.Fatalf("key = %q, want nebula-rift", result.Arena.Key)
	}
	if result.Arena.BackgroundColor == "" || result.Arena.AccentColor == "" {
		t.Fatalf("expected colors populated: %+v", result.Arena)
	}
}

func TestArenaGetHandler_RequiresKey(t *testing.T) {
	handler := ArenaGetHandler()

	if _, _, err := handler(context.Background(), nil, GetArenaInput{}); err == nil {
		t.Fatal("expected error for missing key")
	}
}

func TestArenaGetHandler_UnknownKey(t *testing.T) {
	handler := ArenaGetHandler()

	if _, _, err := handler(context.Background(), nil, GetArenaInput{Key: "void"}); err == nil {
		t.Fatal("expected error for unknown key")
	}
}
