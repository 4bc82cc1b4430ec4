package errors

import (
	goerrors "errors"
	"fmt"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestErrorIsMatchesByCode(t *testing.T) {
	err := New(CodeNotFound, "match missing")
	target := New(CodeNotFound, "different message")

	if !goerrors.Is(err, target) {
		t.Fatal("expected errors with same code to match")
	}
	if goerrors.Is(err, New(CodeArenaUnknownKey, "other")) {
		t.Fatal("expected errors with different codes not to match")
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := Wrap(CodeUnknown, "persist match", cause)

	if !goerrors.Is(err, cause) {
		t.Fatal("expected wrapped cause to be found in chain")
	}
}

func TestGetCode(t *testing.T) {
	err := fmt.Errorf("outer: %w", New(CodeMatchNotLive, "match is finished"))
	if got := GetCode(err); got != CodeMatchNotLive {
		t.Fatalf("expected MATCH_NOT_LIVE, got %s", got)
	}
	if got := GetCode(fmt.Errorf("plain")); got != CodeUnknown {
		t.Fatalf("expected UNKNOWN for plain error, got %s", got)
	}
}

func TestGRPCCodeMapping(t *testing.T) {
	tests := []struct {
		code Code
		want codes.Code
	}{
		{CodeArenaUnknownKey, codes.InvalidArgument},
		{CodeMatchInvalidDifficulty, codes.InvalidArgument},
		{CodeMatchAlreadyComplete, codes.FailedPrecondition},
		{CodeNotFound, codes.NotFound},
		{CodeUnknown, codes.Internal},
	}
	for _, tt := range tests {
		if got := tt.code.GRPCCode(); got != tt.want {
			t.Fatalf("code %s: expected %v, got %v", tt.code, tt.want, got)
		}
	}
}

func TestToGRPCStatusCarriesDetails(t *testing.T) {
	err := WithMetadata(CodeArenaUnknownKey, "unknown arena", map[string]string{"arena_key": "void-spire"})
	stErr := err.ToGRPCStatus("en-US", "Unknown arena")

	st, ok := status.FromError(stErr)
	if !ok {
		t.Fatal("expected a gRPC status error")
	}
	if st.Code() != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", st.Code())
	}
	if len(st.Details()) != 2 {
		t.Fatalf("expected 2 detail messages, got %d", len(st.Details()))
	}
}
