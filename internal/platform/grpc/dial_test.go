package grpc

import (
	"context"
	"errors"
	"testing"
	"time"

	gogrpc "google.golang.org/grpc"
)

func TestDialWithHealthConnectFailure(t *testing.T) {
	dialErr := errors.New("connection refused")
	dialer := DialerFunc(func(ctx context.Context, addr string, opts ...gogrpc.DialOption) (*gogrpc.ClientConn, error) {
		return nil, dialErr
	})

	_, err := DialWithHealth(context.Background(), dialer, "localhost:1", 50*time.Millisecond, nil)
	if err == nil {
		t.Fatal("expected dial error")
	}

	var stageErr *DialError
	if !errors.As(err, &stageErr) {
		t.Fatalf("expected DialError, got %T", err)
	}
	if stageErr.Stage != DialStageConnect {
		t.Fatalf("expected connect stage, got %s", stageErr.Stage)
	}
	if !errors.Is(err, dialErr) {
		t.Fatal("expected underlying dial error in chain")
	}
}

func TestWaitForHealthRequiresConnection(t *testing.T) {
	if err := WaitForHealth(context.Background(), nil, "", nil); err == nil {
		t.Fatal("expected error for nil connection")
	}
}

func TestDefaultClientDialOptionsNotEmpty(t *testing.T) {
	if len(DefaultClientDialOptions()) == 0 {
		t.Fatal("expected default dial options")
	}
}
