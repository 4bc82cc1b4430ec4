package scenario

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	stellarduelv1 "github.com/orbitalworks/stellarduel/api/gen/go/stellarduel/v1"
)

const defaultDriveTicks = 60

// stepMatch creates a match and opens its snapshot stream.
func (r *Runner) stepMatch(ctx context.Context, state *scenarioState, args map[string]any) error {
	if state.matchID != "" {
		return errors.New("scenario already has a match")
	}

	arenaKey := argString(args, "arena", "")
	difficulty, err := difficultyFromName(argString(args, "difficulty", "medium"))
	if err != nil {
		return err
	}

	resp, err := r.matchClient.CreateMatch(ctx, &stellarduelv1.CreateMatchRequest{
		ArenaKey:   arenaKey,
		Difficulty: difficulty,
		Seed:       int64(argInt(args, "seed", 0)),
	})
	if err != nil {
		return fmt.Errorf("create match: %w", err)
	}
	state.matchID = resp.GetMatch().GetId()
	r.logf("match created: %s (arena %s)", state.matchID, arenaKey)

	// The snapshot stream must outlive individual steps.
	watchCtx, cancel := context.WithCancel(state.parent)
	watch, err := r.matchClient.WatchMatch(watchCtx, &stellarduelv1.WatchMatchRequest{
		MatchId:     state.matchID,
		TickDivisor: 1,
	})
	if err != nil {
		cancel()
		return fmt.Errorf("watch match: %w", err)
	}
	state.watch = watch
	state.stopWait = cancel
	return nil
}

// stepDrive latches controls and advances the requested number of ticks.
func (r *Runner) stepDrive(ctx context.Context, state *scenarioState, args map[string]any) error {
	if state.matchID == "" {
		return errors.New("drive requires a match step first")
	}
	if state.done {
		return errors.New("match already completed")
	}

	state.sequence++
	_, err := r.matchClient.SubmitInput(ctx, &stellarduelv1.SubmitInputRequest{
		MatchId: state.matchID,
		Controls: &stellarduelv1.ControlInput{
			Left:    argBool(args, "left"),
			Right:   argBool(args, "right"),
			Forward: argBool(args, "forward"),
			Back:    argBool(args, "back"),
			Boost:   argBool(args, "boost"),
		},
		Sequence: state.sequence,
	})
	if err != nil {
		return fmt.Errorf("submit input: %w", err)
	}

	target := state.startTick() + int64(argInt(args, "ticks", defaultDriveTicks))
	return r.advance(state, func(snap *stellarduelv1.MatchSnapshot) bool {
		return snap.GetTick() >= target
	})
}

// stepPlayOut coasts until the match completes or max_ticks pass.
func (r *Runner) stepPlayOut(ctx context.Context, state *scenarioState, args map[string]any) error {
	if state.matchID == "" {
		return errors.New("play_out requires a match step first")
	}
	if state.done {
		return nil
	}

	state.sequence++
	if _, err := r.matchClient.SubmitInput(ctx, &stellarduelv1.SubmitInputRequest{
		MatchId:  state.matchID,
		Controls: &stellarduelv1.ControlInput{},
		Sequence: state.sequence,
	}); err != nil {
		return fmt.Errorf("submit input: %w", err)
	}

	maxTicks := argInt(args, "max_ticks", 0)
	limit := int64(0)
	if maxTicks > 0 {
		limit = state.startTick() + int64(maxTicks)
	}
	return r.advance(state, func(snap *stellarduelv1.MatchSnapshot) bool {
		if snap.GetPhase() == stellarduelv1.MatchPhase_MATCH_PHASE_COMPLETE {
			return true
		}
		return limit > 0 && snap.GetTick() >= limit
	})
}

// advance consumes snapshots until stop reports true or the stream ends.
func (r *Runner) advance(state *scenarioState, stop func(*stellarduelv1.MatchSnapshot) bool) error {
	for {
		snap, err := state.watch.Recv()
		if err != nil {
			if errors.Is(err, io.EOF) {
				state.done = true
				return nil
			}
			return fmt.Errorf("recv snapshot: %w", err)
		}
		state.last = snap
		if snap.GetPhase() == stellarduelv1.MatchPhase_MATCH_PHASE_COMPLETE {
			state.done = true
			return nil
		}
		if stop(snap) {
			return nil
		}
	}
}

// stepExpect asserts on the latest observed snapshot.
func (r *Runner) stepExpect(state *scenarioState, args map[string]any) error {
	snap := state.last
	if snap == nil {
		return errors.New("expect requires an observed snapshot; drive first")
	}

	if want, ok := args["phase"].(string); ok {
		got := phaseName(snap.GetPhase())
		if err := r.assertions.Check(got == want, "phase = %q, want %q", got, want); err != nil {
			return err
		}
	}
	if want, ok := args["winner"].(string); ok {
		got := winnerName(snap.GetWinner())
		if err := r.assertions.Check(got == want, "winner = %q, want %q", got, want); err != nil {
			return err
		}
	}
	if want, ok := argOptInt(args, "player_score"); ok {
		got := int(snap.GetPlayer().GetScore())
		if err := r.assertions.Check(got == want, "player score = %d, want %d", got, want); err != nil {
			return err
		}
	}
	if want, ok := argOptInt(args, "ai_score"); ok {
		got := int(snap.GetOpponent().GetScore())
		if err := r.assertions.Check(got == want, "ai score = %d, want %d", got, want); err != nil {
			return err
		}
	}
	if want, ok := argOptInt(args, "combo"); ok {
		got := int(snap.GetCombo())
		if err := r.assertions.Check(got == want, "combo = %d, want %d", got, want); err != nil {
			return err
		}
	}
	if want, ok := argOptFloat(args, "min_clock"); ok {
		if err := r.assertions.Check(snap.GetClock() >= want, "clock = %.2f, want >= %.2f", snap.GetClock(), want); err != nil {
			return err
		}
	}
	if want, ok := argOptFloat(args, "max_clock"); ok {
		if err := r.assertions.Check(snap.GetClock() <= want, "clock = %.2f, want <= %.2f", snap.GetClock(), want); err != nil {
			return err
		}
	}
	return nil
}

// stepExpectEvent asserts the persisted event log contains a type.
func (r *Runner) stepExpectEvent(ctx context.Context, state *scenarioState, args map[string]any) error {
	if state.matchID == "" {
		return errors.New("expect_event requires a match step first")
	}
	wantType := argString(args, "type", "")

	pageToken := ""
	for {
		resp, err := r.matchClient.ListMatchEvents(ctx, &stellarduelv1.ListMatchEventsRequest{
			MatchId:   state.matchID,
			PageSize:  500,
			PageToken: pageToken,
		})
		if err != nil {
			return fmt.Errorf("list match events: %w", err)
		}
		for _, evt := range resp.GetEvents() {
			if evt.GetType() == wantType {
				return nil
			}
		}
		pageToken = resp.GetNextPageToken()
		if pageToken == "" {
			break
		}
	}
	return r.assertions.Check(false, "event log has no %q event", wantType)
}

func (s *scenarioState) startTick() int64 {
	if s.last == nil {
		return 0
	}
	return s.last.GetTick()
}

func difficultyFromName(name string) (stellarduelv1.Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "easy":
		return stellarduelv1.Difficulty_DIFFICULTY_EASY, nil
	case "medium":
		return stellarduelv1.Difficulty_DIFFICULTY_MEDIUM, nil
	case "hard":
		return stellarduelv1.Difficulty_DIFFICULTY_HARD, nil
	case "elite":
		return stellarduelv1.Difficulty_DIFFICULTY_ELITE, nil
	default:
		return stellarduelv1.Difficulty_DIFFICULTY_UNSPECIFIED, fmt.Errorf("unknown difficulty: %s", name)
	}
}

func phaseName(phase stellarduelv1.MatchPhase) string {
	switch phase {
	case stellarduelv1.MatchPhase_MATCH_PHASE_PENDING:
		return "pending"
	case stellarduelv1.MatchPhase_MATCH_PHASE_PLAYING:
		return "playing"
	case stellarduelv1.MatchPhase_MATCH_PHASE_GOAL_RESET:
		return "goal_reset"
	case stellarduelv1.MatchPhase_MATCH_PHASE_COMPLETE:
		return "complete"
	default:
		return "unspecified"
	}
}

func winnerName(winner stellarduelv1.MatchWinner) string {
	switch winner {
	case stellarduelv1.MatchWinner_MATCH_WINNER_PLAYER:
		return "player"
	case stellarduelv1.MatchWinner_MATCH_WINNER_AI:
		return "ai"
	case stellarduelv1.MatchWinner_MATCH_WINNER_DRAW:
		return "draw"
	default:
		return ""
	}
}

func argString(args map[string]any, key, fallback string) string {
	if value, ok := args[key].(string); ok {
		return value
	}
	return fallback
}

func argInt(args map[string]any, key string, fallback int) int {
	if value, ok := argOptInt(args, key); ok {
		return value
	}
	return fallback
}

func argOptInt(args map[string]any, key string) (int, bool) {
	switch value := args[key].(type) {
	case int:
		return value, true
	case float64:
		return int(value), true
	default:
		return 0, false
	}
}

func argOptFloat(args map[string]any, key string) (float64, bool) {
	switch value := args[key].(type) {
	case int:
		return float64(value), true
	case float64:
		return value, true
	default:
		return 0, false
	}
}

func argBool(args map[string]any, key string) bool {
	value, _ := args[key].(bool)
	return value
}
