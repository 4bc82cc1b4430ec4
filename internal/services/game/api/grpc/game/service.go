// Package game exposes the stellarduel.v1 match and arena gRPC services.
package game

import (
	"context"
	"errors"
	"strings"

	stellarduelv1 "github.com/orbitalworks/stellarduel/api/gen/go/stellarduel/v1"
	apperrors "github.com/orbitalworks/stellarduel/internal/platform/errors"
	"github.com/orbitalworks/stellarduel/internal/platform/grpc/pagination"
	"github.com/orbitalworks/stellarduel/internal/services/game/core/filter"
	"github.com/orbitalworks/stellarduel/internal/services/game/domain/announcer"
	"github.com/orbitalworks/stellarduel/internal/services/game/domain/match"
	"github.com/orbitalworks/stellarduel/internal/services/game/storage"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	defaultListMatchesPageSize = 20
	maxListMatchesPageSize     = 100

	defaultListEventsPageSize = 50
	maxListEventsPageSize     = 500

	defaultWatchTickDivisor = 6
)

// MatchRuntime is the live simulation surface the match service drives.
type MatchRuntime interface {
	// CreateMatch starts a live match and returns its initial record.
	CreateMatch(ctx context.Context, arenaKey string, difficulty match.Difficulty, seed int64) (storage.MatchRecord, error)
	// SubmitInput latches controls for the next step and returns that tick.
	SubmitInput(matchID string, controls match.Controls, sequence int64) (int64, error)
	// Watch subscribes to snapshots until the match completes or ctx ends.
	Watch(ctx context.Context, matchID string, tickDivisor int) (<-chan match.Snapshot, error)
}

// MatchService exposes stellarduel.v1.MatchService operations.
type MatchService struct {
	stellarduelv1.UnimplementedMatchServiceServer
	runtime MatchRuntime
	store   storage.Store
}

// NewMatchService creates a match service over a runtime and its store.
func NewMatchService(runtime MatchRuntime, store storage.Store) *MatchService {
	return &MatchService{runtime: runtime, store: store}
}

// CreateMatch starts a match on an arena against the AI pilot.
func (s *MatchService) CreateMatch(ctx context.Context, in *stellarduelv1.CreateMatchRequest) (*stellarduelv1.CreateMatchResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "create match request is required")
	}
	if s == nil || s.runtime == nil {
		return nil, status.Error(codes.Internal, "match runtime is not configured")
	}

	arenaKey := strings.TrimSpace(in.GetArenaKey())
	if arenaKey == "" {
		return nil, status.Error(codes.InvalidArgument, "arena key is required")
	}
	difficulty, err := difficultyFromProto(in.GetDifficulty())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "difficulty is required")
	}
	if in.GetSeed() < 0 {
		return nil, status.Error(codes.InvalidArgument, "seed must not be negative")
	}

	rec, err := s.runtime.CreateMatch(ctx, arenaKey, difficulty, in.GetSeed())
	if err != nil {
		return nil, statusFromError(err, "create match")
	}
	return &stellarduelv1.CreateMatchResponse{Match: matchToProto(rec)}, nil
}

// GetMatch returns one match record by id.
func (s *MatchService) GetMatch(ctx context.Context, in *stellarduelv1.GetMatchRequest) (*stellarduelv1.GetMatchResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "get match request is required")
	}
	if s == nil || s.store == nil {
		return nil, status.Error(codes.Internal, "match store is not configured")
	}
	matchID := strings.TrimSpace(in.GetMatchId())
	if matchID == "" {
		return nil, status.Error(codes.InvalidArgument, "match id is required")
	}

	rec, err := s.store.GetMatch(ctx, matchID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, status.Error(codes.NotFound, "match not found")
		}
		return nil, status.Errorf(codes.Internal, "get match: %v", err)
	}
	return &stellarduelv1.GetMatchResponse{Match: matchToProto(rec)}, nil
}

// ListMatches returns a filtered page of match records, newest first.
func (s *MatchService) ListMatches(ctx context.Context, in *stellarduelv1.ListMatchesRequest) (*stellarduelv1.ListMatchesResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "list matches request is required")
	}
	if s == nil || s.store == nil {
		return nil, status.Error(codes.Internal, "match store is not configured")
	}

	cond, err := filter.ParseMatchFilter(in.GetFilter())
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid filter: %v", err)
	}

	pageSize := pagination.ClampPageSize(in.GetPageSize(), pagination.PageSizeConfig{
		Default: defaultListMatchesPageSize,
		Max:     maxListMatchesPageSize,
	})
	page, err := s.store.ListMatches(ctx, storage.ListMatchesRequest{
		PageSize:     pageSize,
		PageToken:    in.GetPageToken(),
		Filter:       in.GetFilter(),
		FilterClause: cond.Clause,
		FilterParams: cond.Params,
	})
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "list matches: %v", err)
	}

	resp := &stellarduelv1.ListMatchesResponse{
		Matches:       make([]*stellarduelv1.Match, 0, len(page.Matches)),
		NextPageToken: page.NextPageToken,
	}
	for _, rec := range page.Matches {
		resp.Matches = append(resp.Matches, matchToProto(rec))
	}
	return resp, nil
}

// SubmitInput latches player controls for the next simulation step.
func (s *MatchService) SubmitInput(ctx context.Context, in *stellarduelv1.SubmitInputRequest) (*stellarduelv1.SubmitInputResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "submit input request is required")
	}
	if s == nil || s.runtime == nil {
		return nil, status.Error(codes.Internal, "match runtime is not configured")
	}
	matchID := strings.TrimSpace(in.GetMatchId())
	if matchID == "" {
		return nil, status.Error(codes.InvalidArgument, "match id is required")
	}
	if in.GetControls() == nil {
		return nil, status.Error(codes.InvalidArgument, "controls are required")
	}

	controls := match.Controls{
		Left:    in.GetControls().GetLeft(),
		Right:   in.GetControls().GetRight(),
		Forward: in.GetControls().GetForward(),
		Back:    in.GetControls().GetBack(),
		Boost:   in.GetControls().GetBoost(),
	}
	tick, err := s.runtime.SubmitInput(matchID, controls, in.GetSequence())
	if err != nil {
		return nil, statusFromError(err, "submit input")
	}
	return &stellarduelv1.SubmitInputResponse{AppliedTick: tick}, nil
}

// WatchMatch streams snapshots until the match completes.
func (s *MatchService) WatchMatch(in *stellarduelv1.WatchMatchRequest, stream stellarduelv1.MatchService_WatchMatchServer) error {
	if in == nil {
		return status.Error(codes.InvalidArgument, "watch match request is required")
	}
	if s == nil || s.runtime == nil {
		return status.Error(codes.Internal, "match runtime is not configured")
	}
	matchID := strings.TrimSpace(in.GetMatchId())
	if matchID == "" {
		return status.Error(codes.InvalidArgument, "match id is required")
	}
	divisor := int(in.GetTickDivisor())
	if divisor <= 0 {
		divisor = defaultWatchTickDivisor
	}

	snapshots, err := s.runtime.Watch(stream.Context(), matchID, divisor)
	if err != nil {
		return statusFromError(err, "watch match")
	}
	for {
		select {
		case <-stream.Context().Done():
			return status.FromContextError(stream.Context().Err()).Err()
		case snap, ok := <-snapshots:
			if !ok {
				return nil
			}
			if err := stream.Send(snapshotToProto(snap)); err != nil {
				return err
			}
		}
	}
}

// ListMatchEvents returns a page of a match's event log with announcer
// lines rendered for the requested locale.
func (s *MatchService) ListMatchEvents(ctx context.Context, in *stellarduelv1.ListMatchEventsRequest) (*stellarduelv1.ListMatchEventsResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "list match events request is required")
	}
	if s == nil || s.store == nil {
		return nil, status.Error(codes.Internal, "match store is not configured")
	}
	matchID := strings.TrimSpace(in.GetMatchId())
	if matchID == "" {
		return nil, status.Error(codes.InvalidArgument, "match id is required")
	}

	pageSize := pagination.ClampPageSize(in.GetPageSize(), pagination.PageSizeConfig{
		Default: defaultListEventsPageSize,
		Max:     maxListEventsPageSize,
	})
	page, err := s.store.ListEvents(ctx, matchID, pageSize, in.GetPageToken())
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "list match events: %v", err)
	}

	locale := in.GetLocale()
	if locale == "" {
		locale = announcer.BaseLocale
	}
	resp := &stellarduelv1.ListMatchEventsResponse{
		Events:        make([]*stellarduelv1.MatchEvent, 0, len(page.Events)),
		NextPageToken: page.NextPageToken,
	}
	for _, evt := range page.Events {
		resp.Events = append(resp.Events, eventToProto(evt, locale))
	}
	return resp, nil
}

// ListArenaRecords returns the best combined goal total per arena.
func (s *MatchService) ListArenaRecords(ctx context.Context, in *stellarduelv1.ListArenaRecordsRequest) (*stellarduelv1.ListArenaRecordsResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "list arena records request is required")
	}
	if s == nil || s.store == nil {
		return nil, status.Error(codes.Internal, "match store is not configured")
	}

	records, err := s.store.ListArenaRecords(ctx)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list arena records: %v", err)
	}

	resp := &stellarduelv1.ListArenaRecordsResponse{
		Records: make([]*stellarduelv1.ArenaRecord, 0, len(records)),
	}
	for _, rec := range records {
		resp.Records = append(resp.Records, arenaRecordToProto(rec))
	}
	return resp, nil
}

// statusFromError maps domain error codes onto gRPC status codes.
func statusFromError(err error, op string) error {
	switch apperrors.GetCode(err) {
	case apperrors.CodeNotFound, apperrors.CodeArenaUnknownKey:
		return status.Errorf(codes.NotFound, "%s: %v", op, err)
	case apperrors.CodeMatchEmptyArenaKey,
		apperrors.CodeMatchInvalidDifficulty,
		apperrors.CodeSeedOutOfRange,
		apperrors.CodeMatchInvalidTickRate,
		apperrors.CodeFilterInvalid:
		return status.Errorf(codes.InvalidArgument, "%s: %v", op, err)
	case apperrors.CodeMatchNotLive,
		apperrors.CodeMatchAlreadyComplete,
		apperrors.CodeMatchInvalidPhase,
		apperrors.CodeMatchControlsOutOfOrder:
		return status.Errorf(codes.FailedPrecondition, "%s: %v", op, err)
	default:
		return status.Errorf(codes.Internal, "%s: %v", op, err)
	}
}
