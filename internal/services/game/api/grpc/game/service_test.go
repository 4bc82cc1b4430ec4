package game

import (
	"context"
	"testing"
	"time"

	stellarduelv1 "github.com/orbitalworks/stellarduel/api/gen/go/stellarduel/v1"
	apperrors "github.com/orbitalworks/stellarduel/internal/platform/errors"
	"github.com/orbitalworks/stellarduel/internal/services/game/domain/match"
	"github.com/orbitalworks/stellarduel/internal/services/game/storage"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestCreateMatch_NilRequest(t *testing.T) {
	svc := NewMatchService(&fakeRuntime{}, newFakeStore())
	_, err := svc.CreateMatch(context.Background(), nil)
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("code = %v, want %v", status.Code(err), codes.InvalidArgument)
	}
}

func TestCreateMatch_MissingArenaKey(t *testing.T) {
	svc := NewMatchService(&fakeRuntime{}, newFakeStore())
	_, err := svc.CreateMatch(context.Background(), &stellarduelv1.CreateMatchRequest{
		Difficulty: stellarduelv1.Difficulty_DIFFICULTY_MEDIUM,
	})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("code = %v, want %v", status.Code(err), codes.InvalidArgument)
	}
}

func TestCreateMatch_UnspecifiedDifficulty(t *testing.T) {
	svc := NewMatchService(&fakeRuntime{}, newFakeStore())
	_, err := svc.CreateMatch(context.Background(), &stellarduelv1.CreateMatchRequest{
		ArenaKey: "nebula-rift",
	})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("code = %v, want %v", status.Code(err), codes.InvalidArgument)
	}
}

func TestCreateMatch_NegativeSeed(t *testing.T) {
	svc := NewMatchService(&fakeRuntime{}, newFakeStore())
	_, err := svc.CreateMatch(context.Background(), &stellarduelv1.CreateMatchRequest{
		ArenaKey:   "nebula-rift",
		Difficulty: stellarduelv1.Difficulty_DIFFICULTY_MEDIUM,
		Seed:       -7,
	})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("code = %v, want %v", status.Code(err), codes.InvalidArgument)
	}
}

func TestCreateMatch_UnknownArena(t *testing.T) {
	svc := NewMatchService(&fakeRuntime{}, newFakeStore())
	_, err := svc.CreateMatch(context.Background(), &stellarduelv1.CreateMatchRequest{
		ArenaKey:   "no-such-arena",
		Difficulty: stellarduelv1.Difficulty_DIFFICULTY_MEDIUM,
	})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("code = %v, want %v", status.Code(err), codes.NotFound)
	}
}

func TestCreateMatch_ReturnsRecord(t *testing.T) {
	rt := &fakeRuntime{}
	svc := NewMatchService(rt, newFakeStore())
	resp, err := svc.CreateMatch(context.Background(), &stellarduelv1.CreateMatchRequest{
		ArenaKey:   "pulsar-core",
		Difficulty: stellarduelv1.Difficulty_DIFFICULTY_HARD,
		Seed:       99,
	})
	if err != nil {
		t.Fatalf("create match: %v", err)
	}
	m := resp.GetMatch()
	if m.GetId() == "" || m.GetArenaKey() != "pulsar-core" {
		t.Fatalf("unexpected match: %+v", m)
	}
	if m.GetDifficulty() != stellarduelv1.Difficulty_DIFFICULTY_HARD || m.GetSeed() != 99 {
		t.Fatalf("difficulty/seed not carried: %+v", m)
	}
	if m.GetPhase() != stellarduelv1.MatchPhase_MATCH_PHASE_PENDING {
		t.Fatalf("phase = %v, want pending", m.GetPhase())
	}
	if len(rt.created) != 1 {
		t.Fatalf("runtime created %d matches, want 1", len(rt.created))
	}
}

func TestGetMatch_NotFound(t *testing.T) {
	svc := NewMatchService(&fakeRuntime{}, newFakeStore())
	_, err := svc.GetMatch(context.Background(), &stellarduelv1.GetMatchRequest{MatchId: "missing"})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("code = %v, want %v", status.Code(err), codes.NotFound)
	}
}

func TestGetMatch_ReturnsRecord(t *testing.T) {
	store := newFakeStore()
	completed := time.Date(2026, 3, 1, 12, 2, 0, 0, time.UTC)
	store.matches["m1"] = storage.MatchRecord{
		ID:          "m1",
		ArenaKey:    "nebula-rift",
		Difficulty:  match.DifficultyElite,
		Status:      match.PhaseComplete,
		PlayerScore: 4,
		AIScore:     2,
		Combo:       3,
		Winner:      match.WinnerPlayer,
		CreatedAt:   completed.Add(-2 * time.Minute),
		CompletedAt: &completed,
	}
	svc := NewMatchService(&fakeRuntime{}, store)

	resp, err := svc.GetMatch(context.Background(), &stellarduelv1.GetMatchRequest{MatchId: "m1"})
	if err != nil {
		t.Fatalf("get match: %v", err)
	}
	m := resp.GetMatch()
	if m.GetWinner() != stellarduelv1.MatchWinner_MATCH_WINNER_PLAYER {
		t.Fatalf("winner = %v, want player", m.GetWinner())
	}
	if m.GetPlayerScore() != 4 || m.GetAiScore() != 2 {
		t.Fatalf("scores not carried: %+v", m)
	}
	if m.GetCompletedAt() == nil || !m.GetCompletedAt().AsTime().Equal(completed) {
		t.Fatalf("completed_at not carried: %v", m.GetCompletedAt())
	}
}

func TestListMatches_InvalidFilter(t *testing.T) {
	svc := NewMatchService(&fakeRuntime{}, newFakeStore())
	_, err := svc.ListMatches(context.Background(), &stellarduelv1.ListMatchesRequest{
		Filter: `bogus_field = "x"`,
	})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("code = %v, want %v", status.Code(err), codes.InvalidArgument)
	}
}

func TestListMatches_TranslatesFilter(t *testing.T) {
	store := newFakeStore()
	svc := NewMatchService(&fakeRuntime{}, store)
	_, err := svc.ListMatches(context.Background(), &stellarduelv1.ListMatchesRequest{
		Filter: `arena = "pulsar-core"`,
	})
	if err != nil {
		t.Fatalf("list matches: %v", err)
	}
	if store.listMatchesReq.FilterClause != "arena_key = ?" {
		t.Fatalf("clause = %q", store.listMatchesReq.FilterClause)
	}
	if len(store.listMatchesReq.FilterParams) != 1 || store.listMatchesReq.FilterParams[0] != "pulsar-core" {
		t.Fatalf("params = %v", store.listMatchesReq.FilterParams)
	}
}

func TestListMatches_OrdersNewestFirst(t *testing.T) {
	store := newFakeStore()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store.matches["m1"] = storage.MatchRecord{ID: "m1", ArenaKey: "nebula-rift", Difficulty: match.DifficultyEasy, Status: match.PhaseComplete, CreatedAt: base}
	store.matches["m2"] = storage.MatchRecord{ID: "m2", ArenaKey: "nebula-rift", Difficulty: match.DifficultyEasy, Status: match.PhasePlaying, CreatedAt: base.Add(time.Minute)}
	svc := NewMatchService(&fakeRuntime{}, store)

	resp, err := svc.ListMatches(context.Background(), &stellarduelv1.ListMatchesRequest{})
	if err != nil {
		t.Fatalf("list matches: %v", err)
	}
	if len(resp.GetMatches()) != 2 || resp.GetMatches()[0].GetId() != "m2" {
		t.Fatalf("unexpected order: %+v", resp.GetMatches())
	}
}

func TestSubmitInput_MissingMatchID(t *testing.T) {
	svc := NewMatchService(&fakeRuntime{}, newFakeStore())
	_, err := svc.SubmitInput(context.Background(), &stellarduelv1.SubmitInputRequest{
		Controls: &stellarduelv1.ControlInput{Forward: true},
	})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("code = %v, want %v", status.Code(err), codes.InvalidArgument)
	}
}

func TestSubmitInput_MissingControls(t *testing.T) {
	svc := NewMatchService(&fakeRuntime{}, newFakeStore())
	_, err := svc.SubmitInput(context.Background(), &stellarduelv1.SubmitInputRequest{MatchId: "m1"})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("code = %v, want %v", status.Code(err), codes.InvalidArgument)
	}
}

func TestSubmitInput_LatchesControls(t *testing.T) {
	rt := &fakeRuntime{appliedTick: 42}
	svc := NewMatchService(rt, newFakeStore())
	resp, err := svc.SubmitInput(context.Background(), &stellarduelv1.SubmitInputRequest{
		MatchId:  "m1",
		Controls: &stellarduelv1.ControlInput{Forward: true, Boost: true},
		Sequence: 1,
	})
	if err != nil {
		t.Fatalf("submit input: %v", err)
	}
	if resp.GetAppliedTick() != 42 {
		t.Fatalf("applied tick = %d, want 42", resp.GetAppliedTick())
	}
	if len(rt.inputs) != 1 || !rt.inputs[0].Forward || !rt.inputs[0].Boost || rt.inputs[0].Left {
		t.Fatalf("controls not latched: %+v", rt.inputs)
	}
}

func TestSubmitInput_StaleSequence(t *testing.T) {
	rt := &fakeRuntime{lastSeq: 5}
	svc := NewMatchService(rt, newFakeStore())
	_, err := svc.SubmitInput(context.Background(), &stellarduelv1.SubmitInputRequest{
		MatchId:  "m1",
		Controls: &stellarduelv1.ControlInput{},
		Sequence: 3,
	})
	if status.Code(err) != codes.FailedPrecondition {
		t.Fatalf("code = %v, want %v", status.Code(err), codes.FailedPrecondition)
	}
}

func TestSubmitInput_NotLive(t *testing.T) {
	rt := &fakeRuntime{submitErr: apperrors.New(apperrors.CodeMatchNotLive, "match is not live")}
	svc := NewMatchService(rt, newFakeStore())
	_, err := svc.SubmitInput(context.Background(), &stellarduelv1.SubmitInputRequest{
		MatchId:  "m1",
		Controls: &stellarduelv1.ControlInput{},
	})
	if status.Code(err) != codes.FailedPrecondition {
		t.Fatalf("code = %v, want %v", status.Code(err), codes.FailedPrecondition)
	}
}

func TestListMatchEvents_RendersLocalizedLines(t *testing.T) {
	store := newFakeStore()
	store.events["m1"] = []storage.EventRecord{
		{MatchID: "m1", Seq: 0, Tick: 1, Type: match.EventKickoff},
		{MatchID: "m1", Seq: 1, Tick: 60, Type: match.EventGoal, MessageKey: "goal_player", Variant: 0},
	}
	svc := NewMatchService(&fakeRuntime{}, store)

	resp, err := svc.ListMatchEvents(context.Background(), &stellarduelv1.ListMatchEventsRequest{MatchId: "m1"})
	if err != nil {
		t.Fatalf("list match events: %v", err)
	}
	if len(resp.GetEvents()) != 2 {
		t.Fatalf("expected 2 events, got %d", len(resp.GetEvents()))
	}
	if resp.GetEvents()[0].GetMessage() != "" {
		t.Fatalf("kickoff should have no announcer line, got %q", resp.GetEvents()[0].GetMessage())
	}
	english := resp.GetEvents()[1].GetMessage()
	if english == "" {
		t.Fatal("expected announcer line for goal event")
	}

	ptResp, err := svc.ListMatchEvents(context.Background(), &stellarduelv1.ListMatchEventsRequest{
		MatchId: "m1",
		Locale:  "pt-BR",
	})
	if err != nil {
		t.Fatalf("list match events pt-BR: %v", err)
	}
	if ptResp.GetEvents()[1].GetMessage() == english {
		t.Fatal("expected a translated line for pt-BR")
	}
}

func TestListArenaRecords_ReturnsRecords(t *testing.T) {
	store := newFakeStore()
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store.records["pulsar-core"] = storage.ArenaRecord{ArenaKey: "pulsar-core", BestTotalGoals: 9, UpdatedAt: at}
	svc := NewMatchService(&fakeRuntime{}, store)

	resp, err := svc.ListArenaRecords(context.Background(), &stellarduelv1.ListArenaRecordsRequest{})
	if err != nil {
		t.Fatalf("list arena records: %v", err)
	}
	if len(resp.GetRecords()) != 1 || resp.GetRecords()[0].GetBestTotalGoals() != 9 {
		t.Fatalf("unexpected records: %+v", resp.GetRecords())
	}
}
