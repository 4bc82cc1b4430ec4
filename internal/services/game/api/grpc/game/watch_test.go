package game

import (
	"context"
	"testing"

	stellarduelv1 "github.com/orbitalworks/stellarduel/api/gen/go/stellarduel/v1"
	"github.com/orbitalworks/stellarduel/internal/services/game/domain/match"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type fakeWatchStream struct {
	grpc.ServerStream
	ctx  context.Context
	sent []*stellarduelv1.MatchSnapshot
}

func (f *fakeWatchStream) Context() context.Context { return f.ctx }

func (f *fakeWatchStream) Send(snap *stellarduelv1.MatchSnapshot) error {
	f.sent = append(f.sent, snap)
	return nil
}

func TestWatchMatch_MissingMatchID(t *testing.T) {
	svc := NewMatchService(&fakeRuntime{}, newFakeStore())
	stream := &fakeWatchStream{ctx: context.Background()}
	err := svc.WatchMatch(&stellarduelv1.WatchMatchRequest{}, stream)
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("code = %v, want %v", status.Code(err), codes.InvalidArgument)
	}
}

func TestWatchMatch_StreamsUntilCompletion(t *testing.T) {
	rt := &fakeRuntime{
		snapshots: []match.Snapshot{
			{ID: "m1", Phase: match.PhasePlaying, Tick: 6, Clock: 119.9},
			{ID: "m1", Phase: match.PhaseComplete, Tick: 7200, Winner: match.WinnerDraw},
		},
	}
	svc := NewMatchService(rt, newFakeStore())
	stream := &fakeWatchStream{ctx: context.Background()}

	if err := svc.WatchMatch(&stellarduelv1.WatchMatchRequest{MatchId: "m1"}, stream); err != nil {
		t.Fatalf("watch match: %v", err)
	}
	if len(stream.sent) != 2 {
		t.Fatalf("expected 2 snapshots, got %d", len(stream.sent))
	}
	last := stream.sent[1]
	if last.GetPhase() != stellarduelv1.MatchPhase_MATCH_PHASE_COMPLETE {
		t.Fatalf("final phase = %v, want complete", last.GetPhase())
	}
	if last.GetWinner() != stellarduelv1.MatchWinner_MATCH_WINNER_DRAW {
		t.Fatalf("winner = %v, want draw", last.GetWinner())
	}
}

func TestWatchMatch_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	blocked := make(chan match.Snapshot)
	rt := &blockedRuntime{snapshots: blocked}
	svc := NewMatchService(rt, newFakeStore())
	stream := &fakeWatchStream{ctx: ctx}

	err := svc.WatchMatch(&stellarduelv1.WatchMatchRequest{MatchId: "m1"}, stream)
	if status.Code(err) != codes.Canceled {
		t.Fatalf("code = %v, want %v", status.Code(err), codes.Canceled)
	}
}

type blockedRuntime struct {
	fakeRuntime
	snapshots chan match.Snapshot
}

func (b *blockedRuntime) Watch(ctx context.Context, matchID string, tickDivisor int) (<-chan match.Snapshot, error) {
	return b.snapshots, nil
}
