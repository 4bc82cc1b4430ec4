// Package storage defines the persistence boundary for matches, their event
// logs, and per-arena records.
package storage

import (
	"context"
	"time"

	apperrors "github.com/orbitalworks/stellarduel/internal/platform/errors"
	"github.com/orbitalworks/stellarduel/internal/services/game/domain/match"
)

// ErrNotFound indicates a requested persistence record is missing.
// Callers use this to differentiate between legitimate "no such entity"
// states and transport or data corruption failures.
var ErrNotFound = apperrors.New(apperrors.CodeNotFound, "record not found")

// MatchRecord captures the match metadata that APIs read. Live matches are
// persisted at creation and again at completion with final scores.
type MatchRecord struct {
	ID          string
	ArenaKey    string
	Difficulty  match.Difficulty
	Seed        int64
	Status      match.Phase
	PlayerScore int
	AIScore     int
	Combo       int
	Winner      match.Winner
	CreatedAt   time.Time
	CompletedAt *time.Time
}

// EventRecord is one persisted match event. Seq is the event's position in
// the match log and orders pagination.
type EventRecord struct {
	MatchID    string
	Seq        int64
	Tick       int64
	Type       match.EventType
	MessageKey string
	Variant    int
	Payload    map[string]string
}

// ArenaRecord tracks the best combined goal total ever reached on an arena.
type ArenaRecord struct {
	ArenaKey       string
	BestTotalGoals int
	UpdatedAt      time.Time
}

// MatchPage describes a page of match records.
type MatchPage struct {
	Matches       []MatchRecord
	NextPageToken string
}

// EventPage describes a page of match events.
type EventPage struct {
	Events        []EventRecord
	NextPageToken string
}

// ListMatchesRequest describes filters and paging for match listing.
type ListMatchesRequest struct {
	PageSize  int
	PageToken string
	// Filter is the raw AIP-160 expression, used to bind page tokens.
	Filter string
	// FilterClause is an optional SQL WHERE clause fragment.
	FilterClause string
	// FilterParams are the positional parameters for the filter clause.
	FilterParams []any
}

// MatchStore owns match metadata reads and writes.
type MatchStore interface {
	PutMatch(ctx context.Context, m MatchRecord) error
	GetMatch(ctx context.Context, id string) (MatchRecord, error)
	// ListMatches returns matches ordered by creation time descending.
	ListMatches(ctx context.Context, req ListMatchesRequest) (MatchPage, error)
}

// EventStore owns the persisted per-match event log.
type EventStore interface {
	AppendEvents(ctx context.Context, events []EventRecord) error
	// ListEvents returns a page of events ordered by seq ascending.
	ListEvents(ctx context.Context, matchID string, pageSize int, pageToken string) (EventPage, error)
}

// RecordStore owns per-arena best totals.
type RecordStore interface {
	// RecordArenaTotal raises the arena's best total when the new total beats it.
	RecordArenaTotal(ctx context.Context, arenaKey string, totalGoals int, at time.Time) error
	GetArenaRecord(ctx context.Context, arenaKey string) (ArenaRecord, error)
	ListArenaRecords(ctx context.Context) ([]ArenaRecord, error)
}

// Store is the composite persistence interface the game service consumes.
type Store interface {
	MatchStore
	EventStore
	RecordStore
	Close() error
}
