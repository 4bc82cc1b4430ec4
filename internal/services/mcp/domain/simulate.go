package domain

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/orbitalworks/stellarduel/internal/platform/id"
	"github.com/orbitalworks/stellarduel/internal/services/game/domain/ai"
	"github.com/orbitalworks/stellarduel/internal/services/game/domain/announcer"
	"github.com/orbitalworks/stellarduel/internal/services/game/domain/arena"
	"github.com/orbitalworks/stellarduel/internal/services/game/domain/match"
)

// maxSimulationTicks bounds a headless run. Regulation time plus goal
// resets fits comfortably under this at the simulation step size.
const maxSimulationTicks = 20000

// SimulateMatchInput represents the MCP tool input for a headless match run.
type SimulateMatchInput struct {
	Arena       string `json:"arena" jsonschema:"arena key, e.g. nebula-rift"`
	Difficulty  string `json:"difficulty,omitempty" jsonschema:"opponent difficulty (easy, medium, hard, elite); defaults to medium"`
	Seed        int64  `json:"seed,omitempty" jsonschema:"match seed; a random seed is drawn when zero"`
	PilotPlayer bool   `json:"pilot_player,omitempty" jsonschema:"steer the player ship with a mirrored pilot instead of leaving it idle"`
	Locale      string `json:"locale,omitempty" jsonschema:"BCP 47 locale for commentary lines; defaults to en-US"`
}

// SimulatedEvent is one rendered entry of the match event log.
type SimulatedEvent struct {
	Tick    int64  `json:"tick" jsonschema:"simulation tick the event occurred on"`
	Type    string `json:"type" jsonschema:"event type (kickoff, goal, boost_pickup, hazard, low_time, complete)"`
	Message string `json:"message,omitempty" jsonschema:"commentary line in the requested locale"`
}

// SimulateMatchResult represents the MCP tool output for a headless match run.
type SimulateMatchResult struct {
	MatchID     string           `json:"match_id" jsonschema:"identifier assigned to the simulated match"`
	ArenaKey    string           `json:"arena_key" jsonschema:"arena the match was played in"`
	Difficulty  string           `json:"difficulty" jsonschema:"opponent difficulty tier"`
	Seed        int64            `json:"seed" jsonschema:"seed the match ran with; replays identically"`
	Winner      string           `json:"winner" jsonschema:"match outcome (player, ai, draw)"`
	PlayerScore int              `json:"player_score" jsonschema:"final player goals"`
	AIScore     int              `json:"ai_score" jsonschema:"final opponent goals"`
	Combo       int              `json:"combo" jsonschema:"final goal combo multiplier"`
	Ticks       int64            `json:"ticks" jsonschema:"simulation ticks until completion"`
	Events      []SimulatedEvent `json:"events" jsonschema:"full match event log"`
}

// SimulateMatchTool declares the headless match simulation tool.
func SimulateMatchTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "simulate_match",
		Description: "Runs a complete headless match for an arena, difficulty, and seed, returning the final score, winner, and event log. The player ship idles unless pilot_player is set.",
	}
}

// SimulateMatchHandler returns the headless match simulation handler.
func SimulateMatchHandler() mcp.ToolHandlerFor[SimulateMatchInput, SimulateMatchResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input SimulateMatchInput) (*mcp.CallToolResult, SimulateMatchResult, error) {
		arenaKey := strings.TrimSpace(input.Arena)
		if arenaKey == "" {
			return nil, SimulateMatchResult{}, fmt.Errorf("arena key is required")
		}
		def, err := arena.ByKey(arenaKey)
		if err != nil {
			return nil, SimulateMatchResult{}, fmt.Errorf("arena %q is not in the catalog", arenaKey)
		}

		difficultyName := input.Difficulty
		if strings.TrimSpace(difficultyName) == "" {
			difficultyName = string(match.DifficultyMedium)
		}
		difficulty, err := match.ParseDifficulty(difficultyName)
		if err != nil {
			return nil, SimulateMatchResult{}, fmt.Errorf("difficulty %q is not one of easy, medium, hard, elite", input.Difficulty)
		}

		seed := input.Seed
		if seed < 0 {
			return nil, SimulateMatchResult{}, fmt.Errorf("seed must not be negative")
		}
		for seed == 0 {
			seed = rand.Int63()
		}

		locale := strings.TrimSpace(input.Locale)
		if locale == "" {
			locale = announcer.BaseLocale
		}

		matchID, err := id.NewID()
		if err != nil {
			return nil, SimulateMatchResult{}, fmt.Errorf("generate match id: %w", err)
		}

		pilot := ai.NewPilot(difficulty, rand.New(rand.NewSource(seed+1)))
		sim := match.New(matchID, def, difficulty, seed, pilot)

		var playerPilot *ai.Pilot
		if input.PilotPlayer {
			playerPilot = ai.NewPilot(difficulty, rand.New(rand.NewSource(seed+2)))
		}

		for tick := 0; sim.Phase != match.PhaseComplete; tick++ {
			if err := ctx.Err(); err != nil {
				return nil, SimulateMatchResult{}, err
			}
			if tick >= maxSimulationTicks {
				return nil, SimulateMatchResult{}, fmt.Errorf("match did not complete within %d ticks", maxSimulationTicks)
			}
			var controls match.Controls
			if playerPilot != nil {
				controls = mirroredControls(playerPilot, sim.Player, sim.Ball, sim.Field, match.MaxStepDT)
			}
			if err := sim.Step(match.MaxStepDT, controls); err != nil {
				return nil, SimulateMatchResult{}, fmt.Errorf("advance match: %w", err)
			}
		}

		snap := sim.Snapshot()
		result := SimulateMatchResult{
			MatchID:     snap.ID,
			ArenaKey:    snap.ArenaKey,
			Difficulty:  string(snap.Difficulty),
			Seed:        snap.Seed,
			Winner:      string(snap.Winner),
			PlayerScore: snap.Player.Score,
			AIScore:     snap.Opponent.Score,
			Combo:       snap.Combo,
			Ticks:       snap.Tick,
			Events:      make([]SimulatedEvent, 0, len(sim.Events)),
		}
		for _, event := range sim.Events {
			entry := SimulatedEvent{Tick: event.Tick, Type: string(event.Type)}
			if event.MessageKey != "" {
				entry.Message = announcer.Line(locale, event.MessageKey, event.Variant)
			}
			result.Events = append(result.Events, entry)
		}
		return nil, result, nil
	}
}

// mirroredControls steers the player ship with a pilot built for the right
// side of the field. Ship, ball, and pads are reflected about the field
// center before the pilot thinks, and the turn controls are swapped back.
func mirroredControls(pilot *ai.Pilot, self *match.Ship, ball *match.Ball, field *arena.Field, dt float64) match.Controls {
	ship := *self
	ship.Pos.X = arena.FieldWidth - ship.Pos.X
	ship.Vel.X = -ship.Vel.X
	ship.Angle = math.Pi - ship.Angle

	mirroredBall := *ball
	mirroredBall.Pos.X = arena.FieldWidth - mirroredBall.Pos.X
	mirroredBall.Vel.X = -mirroredBall.Vel.X

	mirroredField := arena.Field{Def: field.Def}
	for _, pad := range field.Pads {
		mirroredPad := *pad
		mirroredPad.Pos.X = arena.FieldWidth - mirroredPad.Pos.X
		mirroredField.Pads = append(mirroredField.Pads, &mirroredPad)
	}

	controls := pilot.ChooseControls(&ship, &mirroredBall, &mirroredField, dt)
	controls.Left, controls.Right = controls.Right, controls.Left
	return controls
}
