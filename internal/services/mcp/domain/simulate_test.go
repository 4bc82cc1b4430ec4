package domain

import (
	"context"
	"testing"

	"github.com/orbitalworks/stellarduel/internal/services/game/domain/match"
)

func runSimulation(t *testing.T, input SimulateMatchInput) SimulateMatchResult {
	t.Helper()

	handler := SimulateMatchHandler()
	_, result, err := handler(context.Background(), nil, input)
	if err != nil {
		t.Fatalf("simulate match: %v", err)
	}
	return result
}

func TestSimulateMatchHandler_CompletesMatch(t *testing.T) {
	result := runSimulation(t, SimulateMatchInput{Arena: "nebula-rift", Difficulty: "easy", Seed: 7})

	if result.Winner == "" {
		t.Fatal("expected a winner")
	}
	if result.Ticks <= 0 {
		t.Fatalf("ticks = %d, want > 0", result.Ticks)
	}
	if result.Seed != 7 {
		t.Fatalf("seed = %d, want 7", result.Seed)
	}
	if result.MatchID == "" {
		t.Fatal("expected match id")
	}
	if len(result.Events) == 0 {
		t.Fatal("expected event log")
	}
	if result.Events[0].Type != string(match.EventKickoff) {
		t.Fatalf("first event = %q, want kickoff", result.Events[0].Type)
	}
	last := result.Events[len(result.Events)-1]
	if last.Type != string(match.EventComplete) {
		t.Fatalf("last event = %q, want complete", last.Type)
	}
	if last.Message == "" {
		t.Fatal("expected completion commentary")
	}
}

func TestSimulateMatchHandler_Deterministic(t *testing.T) {
	input := SimulateMatchInput{Arena: "pulsar-core", Difficulty: "hard", Seed: 99}

	first := runSimulation(t, input)
	second := runSimulation(t, input)

	if first.Winner != second.Winner ||
		first.PlayerScore != second.PlayerScore ||
		first.AIScore != second.AIScore ||
		first.Ticks != second.Ticks {
		t.Fatalf("replays diverged: %+v vs %+v", first, second)
	}
}

func TestSimulateMatchHandler_ZeroSeedDraws(t *testing.T) {
	result := runSimulation(t, SimulateMatchInput{Arena: "nebula-rift"})

	if result.Seed == 0 {
		t.Fatal("expected a drawn seed")
	}
	if result.Difficulty != string(match.DifficultyMedium) {
		t.Fatalf("difficulty = %q, want medium default", result.Difficulty)
	}
}

func TestSimulateMatchHandler_PilotedPlayerCompletes(t *testing.T) {
	result := runSimulation(t, SimulateMatchInput{Arena: "nebula-rift", Difficulty: "medium", Seed: 13, PilotPlayer: true})

	if result.Winner == "" {
		t.Fatal("expected a winner")
	}
}

func TestSimulateMatchHandler_LocalizedEvents(t *testing.T) {
	base := runSimulation(t, SimulateMatchInput{Arena: "nebula-rift", Difficulty: "easy", Seed: 7})
	localized := runSimulation(t, SimulateMatchInput{Arena: "nebula-rift", Difficulty: "easy", Seed: 7, Locale: "pt-BR"})

	baseLast := base.Events[len(base.Events)-1]
	localizedLast := localized.Events[len(localized.Events)-1]
	if baseLast.Message == localizedLast.Message {
		t.Fatalf("expected locale to change commentary, both %q", baseLast.Message)
	}
}

func TestSimulateMatchHandler_Validation(t *testing.T) {
	handler := SimulateMatchHandler()

	cases := []struct {
		name  string
		input SimulateMatchInput
	}{
		{name: "missing arena", input: SimulateMatchInput{}},
		{name: "unknown arena", input: SimulateMatchInput{Arena: "void"}},
		{name: "bad difficulty", input: SimulateMatchInput{Arena: "nebula-rift", Difficulty: "brutal"}},
		{name: "negative seed", input: SimulateMatchInput{Arena: "nebula-rift", Seed: -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, _, err := handler(context.Background(), nil, tc.input); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestSimulateMatchHandler_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	handler := SimulateMatchHandler()
	if _, _, err := handler(ctx, nil, SimulateMatchInput{Arena: "nebula-rift", Seed: 7}); err == nil {
		t.Fatal("expected context error")
	}
}
