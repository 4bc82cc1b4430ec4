package game

import (
	"context"
	"strings"

	stellarduelv1 "github.com/orbitalworks/stellarduel/api/gen/go/stellarduel/v1"
	"github.com/orbitalworks/stellarduel/internal/services/game/domain/arena"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ArenaService exposes stellarduel.v1.ArenaService operations over the
// static arena catalog.
type ArenaService struct {
	stellarduelv1.UnimplementedArenaServiceServer
}

// NewArenaService creates an arena catalog service.
func NewArenaService() *ArenaService {
	return &ArenaService{}
}

// ListArenas returns every arena definition.
func (s *ArenaService) ListArenas(ctx context.Context, in *stellarduelv1.ListArenasRequest) (*stellarduelv1.ListArenasResponse, error) {
	defs := arena.Definitions()
	resp := &stellarduelv1.ListArenasResponse{
		Arenas: make([]*stellarduelv1.Arena, 0, len(defs)),
	}
	for _, def := range defs {
		resp.Arenas = append(resp.Arenas, arenaToProto(def))
	}
	return resp, nil
}

// GetArena returns one arena definition by key.
func (s *ArenaService) GetArena(ctx context.Context, in *stellarduelv1.GetArenaRequest) (*stellarduelv1.GetArenaResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "get arena request is required")
	}
	key := strings.TrimSpace(in.GetKey())
	if key == "" {
		return nil, status.Error(codes.InvalidArgument, "arena key is required")
	}

	def, err := arena.ByKey(key)
	if err != nil {
		return nil, status.Errorf(codes.NotFound, "arena not found: %s", key)
	}
	return &stellarduelv1.GetArenaResponse{Arena: arenaToProto(def)}, nil
}
