package game

import (
	"context"
	"sort"
	"time"

	apperrors "github.com/orbitalworks/stellarduel/internal/platform/errors"
	"github.com/orbitalworks/stellarduel/internal/services/game/domain/arena"
	"github.com/orbitalworks/stellarduel/internal/services/game/domain/match"
	"github.com/orbitalworks/stellarduel/internal/services/game/storage"
)

type fakeRuntime struct {
	created     []storage.MatchRecord
	inputs      []match.Controls
	lastSeq     int64
	snapshots   []match.Snapshot
	createErr   error
	submitErr   error
	watchErr    error
	appliedTick int64
}

func (f *fakeRuntime) CreateMatch(ctx context.Context, arenaKey string, difficulty match.Difficulty, seed int64) (storage.MatchRecord, error) {
	if f.createErr != nil {
		return storage.MatchRecord{}, f.createErr
	}
	if _, err := arena.ByKey(arenaKey); err != nil {
		return storage.MatchRecord{}, err
	}
	rec := storage.MatchRecord{
		ID:         "match-1",
		ArenaKey:   arenaKey,
		Difficulty: difficulty,
		Seed:       seed,
		Status:     match.PhasePending,
		Combo:      1,
		CreatedAt:  time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	f.created = append(f.created, rec)
	return rec, nil
}

func (f *fakeRuntime) SubmitInput(matchID string, controls match.Controls, sequence int64) (int64, error) {
	if f.submitErr != nil {
		return 0, f.submitErr
	}
	if sequence > 0 && sequence <= f.lastSeq {
		return 0, apperrors.New(apperrors.CodeMatchControlsOutOfOrder, "controls sequence is stale")
	}
	f.lastSeq = sequence
	f.inputs = append(f.inputs, controls)
	return f.appliedTick, nil
}

func (f *fakeRuntime) Watch(ctx context.Context, matchID string, tickDivisor int) (<-chan match.Snapshot, error) {
	if f.watchErr != nil {
		return nil, f.watchErr
	}
	ch := make(chan match.Snapshot, len(f.snapshots))
	for _, snap := range f.snapshots {
		ch <- snap
	}
	close(ch)
	return ch, nil
}

type fakeStore struct {
	matches map[string]storage.MatchRecord
	events  map[string][]storage.EventRecord
	records map[string]storage.ArenaRecord

	listMatchesReq storage.ListMatchesRequest
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		matches: map[string]storage.MatchRecord{},
		events:  map[string][]storage.EventRecord{},
		records: map[string]storage.ArenaRecord{},
	}
}

func (f *fakeStore) PutMatch(ctx context.Context, m storage.MatchRecord) error {
	f.matches[m.ID] = m
	return nil
}

func (f *fakeStore) GetMatch(ctx context.Context, id string) (storage.MatchRecord, error) {
	rec, ok := f.matches[id]
	if !ok {
		return storage.MatchRecord{}, storage.ErrNotFound
	}
	return rec, nil
}

func (f *fakeStore) ListMatches(ctx context.Context, req storage.ListMatchesRequest) (storage.MatchPage, error) {
	f.listMatchesReq = req
	var out []storage.MatchRecord
	for _, rec := range f.matches {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return storage.MatchPage{Matches: out}, nil
}

func (f *fakeStore) AppendEvents(ctx context.Context, events []storage.EventRecord) error {
	for _, evt := range events {
		f.events[evt.MatchID] = append(f.events[evt.MatchID], evt)
	}
	return nil
}

func (f *fakeStore) ListEvents(ctx context.Context, matchID string, pageSize int, pageToken string) (storage.EventPage, error) {
	return storage.EventPage{Events: f.events[matchID]}, nil
}

func (f *fakeStore) RecordArenaTotal(ctx context.Context, arenaKey string, totalGoals int, at time.Time) error {
	rec, ok := f.records[arenaKey]
	if !ok || totalGoals > rec.BestTotalGoals {
		f.records[arenaKey] = storage.ArenaRecord{ArenaKey: arenaKey, BestTotalGoals: totalGoals, UpdatedAt: at}
	}
	return nil
}

func (f *fakeStore) GetArenaRecord(ctx context.Context, arenaKey string) (storage.ArenaRecord, error) {
	rec, ok := f.records[arenaKey]
	if !ok {
		return storage.ArenaRecord{}, storage.ErrNotFound
	}
	return rec, nil
}

func (f *fakeStore) ListArenaRecords(ctx context.Context) ([]storage.ArenaRecord, error) {
	var out []storage.ArenaRecord
	for _, rec := range f.records {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ArenaKey < out[j].ArenaKey })
	return out, nil
}

func (f *fakeStore) Close() error { return nil }
