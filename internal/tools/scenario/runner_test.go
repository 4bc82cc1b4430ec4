package scenario

import (
	"context"
	"io"
	"log"
	"strings"
	"testing"

	stellarduelv1 "github.com/orbitalworks/stellarduel/api/gen/go/stellarduel/v1"
	"google.golang.org/grpc"
)

type fakeWatchStream struct {
	grpc.ClientStream
	snapshots []*stellarduelv1.MatchSnapshot
	next      int
}

func (f *fakeWatchStream) Recv() (*stellarduelv1.MatchSnapshot, error) {
	if f.next >= len(f.snapshots) {
		return nil, io.EOF
	}
	snap := f.snapshots[f.next]
	f.next++
	return snap, nil
}

type fakeMatchClient struct {
	stellarduelv1.MatchServiceClient
	snapshots []*stellarduelv1.MatchSnapshot
	events    []*stellarduelv1.MatchEvent
	inputs    []*stellarduelv1.SubmitInputRequest
}

func (f *fakeMatchClient) CreateMatch(ctx context.Context, in *stellarduelv1.CreateMatchRequest, opts ...grpc.CallOption) (*stellarduelv1.CreateMatchResponse, error) {
	return &stellarduelv1.CreateMatchResponse{
		Match: &stellarduelv1.Match{
			Id:         "match-1",
			ArenaKey:   in.GetArenaKey(),
			Difficulty: in.GetDifficulty(),
			Seed:       in.GetSeed(),
			Phase:      stellarduelv1.MatchPhase_MATCH_PHASE_PENDING,
		},
	}, nil
}

func (f *fakeMatchClient) SubmitInput(ctx context.Context, in *stellarduelv1.SubmitInputRequest, opts ...grpc.CallOption) (*stellarduelv1.SubmitInputResponse, error) {
	f.inputs = append(f.inputs, in)
	return &stellarduelv1.SubmitInputResponse{}, nil
}

func (f *fakeMatchClient) WatchMatch(ctx context.Context, in *stellarduelv1.WatchMatchRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[stellarduelv1.MatchSnapshot], error) {
	return &fakeWatchStream{snapshots: f.snapshots}, nil
}

func (f *fakeMatchClient) ListMatchEvents(ctx context.Context, in *stellarduelv1.ListMatchEventsRequest, opts ...grpc.CallOption) (*stellarduelv1.ListMatchEventsResponse, error) {
	return &stellarduelv1.ListMatchEventsResponse{Events: f.events}, nil
}

func playingSnapshots(count int) []*stellarduelv1.MatchSnapshot {
	out := make([]*stellarduelv1.MatchSnapshot, 0, count)
	for i := 1; i <= count; i++ {
		out = append(out, &stellarduelv1.MatchSnapshot{
			MatchId: "match-1",
			Phase:   stellarduelv1.MatchPhase_MATCH_PHASE_PLAYING,
			Tick:    int64(i),
			Clock:   120 - float64(i)/60,
		})
	}
	return out
}

func newTestRunner(client *fakeMatchClient, mode AssertionMode, logger *log.Logger) *Runner {
	return newRunnerWithClients(Config{Assertions: mode, Logger: logger}, nil, client)
}

func TestRunScenario_DriveAndExpect(t *testing.T) {
	client := &fakeMatchClient{snapshots: playingSnapshots(10)}
	runner := newTestRunner(client, AssertionStrict, nil)

	err := runner.RunScenario(context.Background(), &Scenario{
		Name: "drive",
		Steps: []Step{
			{Kind: "match", Args: map[string]any{"arena": "nebula-rift", "difficulty": "easy", "seed": 3}},
			{Kind: "drive", Args: map[string]any{"forward": true, "ticks": 5}},
			{Kind: "expect", Args: map[string]any{"phase": "playing", "min_clock": 100}},
		},
	})
	if err != nil {
		t.Fatalf("run scenario: %v", err)
	}
	if len(client.inputs) != 1 {
		t.Fatalf("inputs = %d, want 1", len(client.inputs))
	}
	if !client.inputs[0].GetControls().GetForward() {
		t.Fatal("expected forward control latched")
	}
	if client.inputs[0].GetSequence() != 1 {
		t.Fatalf("sequence = %d, want 1", client.inputs[0].GetSequence())
	}
}

func TestRunScenario_StrictExpectFails(t *testing.T) {
	client := &fakeMatchClient{snapshots: playingSnapshots(10)}
	runner := newTestRunner(client, AssertionStrict, nil)

	err := runner.RunScenario(context.Background(), &Scenario{
		Name: "fail",
		Steps: []Step{
			{Kind: "match", Args: map[string]any{"arena": "nebula-rift"}},
			{Kind: "drive", Args: map[string]any{"ticks": 5}},
			{Kind: "expect", Args: map[string]any{"phase": "complete"}},
		},
	})
	if err == nil {
		t.Fatal("expected strict assertion failure")
	}
	if !strings.Contains(err.Error(), `phase = "playing", want "complete"`) {
		t.Fatalf("error = %q", err.Error())
	}
}

func TestRunScenario_LogOnlyContinues(t *testing.T) {
	client := &fakeMatchClient{snapshots: playingSnapshots(10)}
	var buf strings.Builder
	runner := newTestRunner(client, AssertionLogOnly, log.New(&buf, "", 0))

	err := runner.RunScenario(context.Background(), &Scenario{
		Name: "log-only",
		Steps: []Step{
			{Kind: "match", Args: map[string]any{"arena": "nebula-rift"}},
			{Kind: "drive", Args: map[string]any{"ticks": 5}},
			{Kind: "expect", Args: map[string]any{"phase": "complete"}},
		},
	})
	if err != nil {
		t.Fatalf("run scenario: %v", err)
	}
	if !strings.Contains(buf.String(), "expectation not met") {
		t.Fatalf("expected logged expectation, got %q", buf.String())
	}
}

func TestRunScenario_PlayOutStopsOnCompletion(t *testing.T) {
	snapshots := playingSnapshots(5)
	snapshots = append(snapshots, &stellarduelv1.MatchSnapshot{
		MatchId: "match-1",
		Phase:   stellarduelv1.MatchPhase_MATCH_PHASE_COMPLETE,
		Tick:    7200,
		Winner:  stellarduelv1.MatchWinner_MATCH_WINNER_DRAW,
	})
	client := &fakeMatchClient{snapshots: snapshots}
	runner := newTestRunner(client, AssertionStrict, nil)

	err := runner.RunScenario(context.Background(), &Scenario{
		Name: "playout",
		Steps: []Step{
			{Kind: "match", Args: map[string]any{"arena": "nebula-rift"}},
			{Kind: "play_out", Args: map[string]any{}},
			{Kind: "expect", Args: map[string]any{"phase": "complete", "winner": "draw"}},
		},
	})
	if err != nil {
		t.Fatalf("run scenario: %v", err)
	}
}

func TestRunScenario_ExpectEvent(t *testing.T) {
	client := &fakeMatchClient{
		snapshots: playingSnapshots(5),
		events: []*stellarduelv1.MatchEvent{
			{Seq: 0, Type: "kickoff"},
			{Seq: 1, Type: "goal"},
		},
	}
	runner := newTestRunner(client, AssertionStrict, nil)

	err := runner.RunScenario(context.Background(), &Scenario{
		Name: "events",
		Steps: []Step{
			{Kind: "match", Args: map[string]any{"arena": "nebula-rift"}},
			{Kind: "expect_event", Args: map[string]any{"type": "goal"}},
		},
	})
	if err != nil {
		t.Fatalf("run scenario: %v", err)
	}

	err = runner.RunScenario(context.Background(), &Scenario{
		Name: "events-missing",
		Steps: []Step{
			{Kind: "match", Args: map[string]any{"arena": "nebula-rift"}},
			{Kind: "expect_event", Args: map[string]any{"type": "hazard"}},
		},
	})
	if err == nil {
		t.Fatal("expected missing event failure")
	}
}

func TestRunScenario_DriveWithoutMatch(t *testing.T) {
	runner := newTestRunner(&fakeMatchClient{}, AssertionStrict, nil)
	err := runner.RunScenario(context.Background(), &Scenario{
		Name:  "no-match",
		Steps: []Step{{Kind: "drive", Args: map[string]any{"ticks": 5}}},
	})
	if err == nil || !strings.Contains(err.Error(), "requires a match step") {
		t.Fatalf("error = %v", err)
	}
}
