package app

import (
	"context"
	"testing"
	"time"

	stellarduelv1 "github.com/orbitalworks/stellarduel/api/gen/go/stellarduel/v1"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

func startTestServer(t *testing.T) *Server {
	t.Helper()
	dbPath := t.TempDir() + "/game.db"
	t.Setenv("STELLAR_DUEL_GAME_DB_PATH", dbPath)

	srv, err := NewWithAddr("127.0.0.1:0")
	if err != nil {
		t.Fatalf("new server: %v", err)
	}

	runCtx, runCancel := context.WithCancel(context.Background())
	serveDone := make(chan error, 1)
	go func() {
		serveDone <- srv.Serve(runCtx)
	}()
	t.Cleanup(func() {
		runCancel()
		select {
		case serveErr := <-serveDone:
			if serveErr != nil {
				t.Fatalf("serve: %v", serveErr)
			}
		case <-time.After(5 * time.Second):
			t.Fatal("timeout waiting for server shutdown")
		}
	})
	return srv
}

func dialTestServer(t *testing.T, srv *Server) *grpc.ClientConn {
	t.Helper()
	conn, err := grpc.NewClient(srv.Addr(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		t.Fatalf("dial game server: %v", err)
	}
	t.Cleanup(func() {
		if closeErr := conn.Close(); closeErr != nil {
			t.Fatalf("close gRPC connection: %v", closeErr)
		}
	})
	return conn
}

func TestServer_ArenaCatalogRoundTrip(t *testing.T) {
	srv := startTestServer(t)
	conn := dialTestServer(t, srv)
	client := stellarduelv1.NewArenaServiceClient(conn)

	listResp, err := client.ListArenas(context.Background(), &stellarduelv1.ListArenasRequest{})
	if err != nil {
		t.Fatalf("list arenas: %v", err)
	}
	if len(listResp.GetArenas()) != 5 {
		t.Fatalf("arenas len = %d, want 5", len(listResp.GetArenas()))
	}

	getResp, err := client.GetArena(context.Background(), &stellarduelv1.GetArenaRequest{
		Key: listResp.GetArenas()[0].GetKey(),
	})
	if err != nil {
		t.Fatalf("get arena: %v", err)
	}
	if getResp.GetArena().GetName() == "" {
		t.Fatal("expected arena name")
	}
}

func TestServer_CreateSubmitAndWatchMatch(t *testing.T) {
	srv := startTestServer(t)
	conn := dialTestServer(t, srv)
	client := stellarduelv1.NewMatchServiceClient(conn)
	ctx := context.Background()

	createResp, err := client.CreateMatch(ctx, &stellarduelv1.CreateMatchRequest{
		ArenaKey:   "nebula-rift",
		Difficulty: stellarduelv1.Difficulty_DIFFICULTY_MEDIUM,
		Seed:       21,
	})
	if err != nil {
		t.Fatalf("create match: %v", err)
	}
	matchID := createResp.GetMatch().GetId()
	if matchID == "" {
		t.Fatal("expected match id")
	}

	if _, err := client.SubmitInput(ctx, &stellarduelv1.SubmitInputRequest{
		MatchId:  matchID,
		Controls: &stellarduelv1.ControlInput{Forward: true},
		Sequence: 1,
	}); err != nil {
		t.Fatalf("submit input: %v", err)
	}

	watchCtx, watchCancel := context.WithTimeout(ctx, 10*time.Second)
	defer watchCancel()
	stream, err := client.WatchMatch(watchCtx, &stellarduelv1.WatchMatchRequest{
		MatchId:     matchID,
		TickDivisor: 1,
	})
	if err != nil {
		t.Fatalf("watch match: %v", err)
	}
	snap, err := stream.Recv()
	if err != nil {
		t.Fatalf("recv snapshot: %v", err)
	}
	if snap.GetMatchId() != matchID {
		t.Fatalf("snapshot match id = %q, want %q", snap.GetMatchId(), matchID)
	}
	if snap.GetPhase() == stellarduelv1.MatchPhase_MATCH_PHASE_UNSPECIFIED {
		t.Fatalf("unexpected phase: %v", snap.GetPhase())
	}

	getResp, err := client.GetMatch(ctx, &stellarduelv1.GetMatchRequest{MatchId: matchID})
	if err != nil {
		t.Fatalf("get match: %v", err)
	}
	if getResp.GetMatch().GetSeed() != 21 {
		t.Fatalf("seed = %d, want 21", getResp.GetMatch().GetSeed())
	}

	listResp, err := client.ListMatches(ctx, &stellarduelv1.ListMatchesRequest{PageSize: 10})
	if err != nil {
		t.Fatalf("list matches: %v", err)
	}
	if len(listResp.GetMatches()) != 1 {
		t.Fatalf("matches len = %d, want 1", len(listResp.GetMatches()))
	}
}
