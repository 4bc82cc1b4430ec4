// Package sqlite implements the game storage interfaces on modernc.org/sqlite.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/orbitalworks/stellarduel/internal/platform/storage/sqlitemigrate"
	"github.com/orbitalworks/stellarduel/internal/services/game/domain/match"
	"github.com/orbitalworks/stellarduel/internal/services/game/storage"
	"github.com/orbitalworks/stellarduel/internal/services/game/storage/cursor"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Store is the SQLite-backed implementation of storage.Store.
type Store struct {
	db *sql.DB
}

var _ storage.Store = (*Store)(nil)

// Open opens (or creates) the database at path and applies migrations.
func Open(path string) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := sqlitemigrate.ApplyMigrations(db, migrationsFS, "migrations"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply migrations: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// PutMatch inserts or replaces a match record.
func (s *Store) PutMatch(ctx context.Context, m storage.MatchRecord) error {
	_, err := s.db.ExecContext(ctx, `
INSERT INTO matches (id, arena_key, difficulty, seed, status, player_score, ai_score, combo, winner, created_at, completed_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
    status = excluded.status,
    player_score = excluded.player_score,
    ai_score = excluded.ai_score,
    combo = excluded.combo,
    winner = excluded.winner,
    completed_at = excluded.completed_at`,
		m.ID, m.ArenaKey, string(m.Difficulty), m.Seed, string(m.Status),
		m.PlayerScore, m.AIScore, m.Combo, string(m.Winner),
		toMillis(m.CreatedAt), toMillisPtr(m.CompletedAt),
	)
	if err != nil {
		return fmt.Errorf("put match: %w", err)
	}
	return nil
}

// GetMatch retrieves a match by id.
func (s *Store) GetMatch(ctx context.Context, id string) (storage.MatchRecord, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT id, arena_key, difficulty, seed, status, player_score, ai_score, combo, winner, created_at, completed_at
FROM matches WHERE id = ?`, id)
	return scanMatch(row)
}

// ListMatches returns matches ordered by creation time descending using
// keyset pagination.
func (s *Store) ListMatches(ctx context.Context, req storage.ListMatchesRequest) (storage.MatchPage, error) {
	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = 50
	}

	query := `
SELECT id, arena_key, difficulty, seed, status, player_score, ai_score, combo, winner, created_at, completed_at
FROM matches`
	var conditions []string
	var params []any

	if req.FilterClause != "" {
		conditions = append(conditions, req.FilterClause)
		params = append(params, req.FilterParams...)
	}

	if req.PageToken != "" {
		c, err := cursor.Decode(req.PageToken)
		if err != nil {
			return storage.MatchPage{}, err
		}
		if err := cursor.ValidateFilterHash(c, req.Filter); err != nil {
			return storage.MatchPage{}, err
		}
		conditions = append(conditions, "(created_at < ? OR (created_at = ? AND id < ?))")
		params = append(params, c.CreatedAt, c.CreatedAt, c.ID)
	}

	for i, cond := range conditions {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += " ORDER BY created_at DESC, id DESC LIMIT ?"
	params = append(params, pageSize+1)

	rows, err := s.db.QueryContext(ctx, query, params...)
	if err != nil {
		return storage.MatchPage{}, fmt.Errorf("list matches: %w", err)
	}
	defer rows.Close()

	var matches []storage.MatchRecord
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return storage.MatchPage{}, err
		}
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return storage.MatchPage{}, fmt.Errorf("scan matches: %w", err)
	}

	page := storage.MatchPage{Matches: matches}
	if len(matches) > pageSize {
		page.Matches = matches[:pageSize]
		last := page.Matches[pageSize-1]
		token, err := cursor.Encode(cursor.Cursor{
			CreatedAt:  toMillis(last.CreatedAt),
			ID:         last.ID,
			FilterHash: cursor.HashFilter(req.Filter),
		})
		if err != nil {
			return storage.MatchPage{}, err
		}
		page.NextPageToken = token
	}
	return page, nil
}

// AppendEvents persists a batch of match events in one transaction.
func (s *Store) AppendEvents(ctx context.Context, events []storage.EventRecord) error {
	if len(events) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin append events: %w", err)
	}

	for _, evt := range events {
		payload, err := json.Marshal(evt.Payload)
		if err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("marshal event payload: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `
INSERT OR IGNORE INTO match_events (match_id, seq, tick, event_type, message_key, variant, payload)
VALUES (?, ?, ?, ?, ?, ?, ?)`,
			evt.MatchID, evt.Seq, evt.Tick, string(evt.Type), evt.MessageKey, evt.Variant, string(payload),
		); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("append event: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit append events: %w", err)
	}
	return nil
}

// ListEvents returns a page of events for a match ordered by seq ascending.
func (s *Store) ListEvents(ctx context.Context, matchID string, pageSize int, pageToken string) (storage.EventPage, error) {
	if pageSize <= 0 {
		pageSize = 100
	}

	afterSeq := int64(-1)
	if pageToken != "" {
		c, err := cursor.Decode(pageToken)
		if err != nil {
			return storage.EventPage{}, err
		}
		afterSeq = c.Seq
	}

	rows, err := s.db.QueryContext(ctx, `
SELECT match_id, seq, tick, event_type, message_key, variant, payload
FROM match_events
WHERE match_id = ? AND seq > ?
ORDER BY seq ASC LIMIT ?`, matchID, afterSeq, pageSize+1)
	if err != nil {
		return storage.EventPage{}, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var events []storage.EventRecord
	for rows.Next() {
		var evt storage.EventRecord
		var eventType, payload string
		if err := rows.Scan(&evt.MatchID, &evt.Seq, &evt.Tick, &eventType, &evt.MessageKey, &evt.Variant, &payload); err != nil {
			return storage.EventPage{}, fmt.Errorf("scan event: %w", err)
		}
		evt.Type = match.EventType(eventType)
		if payload != "" && payload != "null" {
			if err := json.Unmarshal([]byte(payload), &evt.Payload); err != nil {
				return storage.EventPage{}, fmt.Errorf("unmarshal event payload: %w", err)
			}
		}
		events = append(events, evt)
	}
	if err := rows.Err(); err != nil {
		return storage.EventPage{}, fmt.Errorf("scan events: %w", err)
	}

	page := storage.EventPage{Events: events}
	if len(events) > pageSize {
		page.Events = events[:pageSize]
		token, err := cursor.Encode(cursor.Cursor{Seq: page.Events[pageSize-1].Seq})
		if err != nil {
			return storage.EventPage{}, err
		}
		page.NextPageToken = token
	}
	return page, nil
}

// RecordArenaTotal raises the arena's best combined goal total when beaten.
func (s *Store) RecordArenaTotal(ctx context.Context, arenaKey string, totalGoals int, at time.Time) error {
	_, err := s.db.ExecContext(ctx, `
INSERT INTO arena_records (arena_key, best_total_goals, updated_at)
VALUES (?, ?, ?)
ON CONFLICT(arena_key) DO UPDATE SET
    best_total_goals = MAX(best_total_goals, excluded.best_total_goals),
    updated_at = CASE WHEN excluded.best_total_goals > best_total_goals THEN excluded.updated_at ELSE updated_at END`,
		arenaKey, totalGoals, toMillis(at),
	)
	if err != nil {
		return fmt.Errorf("record arena total: %w", err)
	}
	return nil
}

// GetArenaRecord retrieves the record for one arena.
func (s *Store) GetArenaRecord(ctx context.Context, arenaKey string) (storage.ArenaRecord, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT arena_key, best_total_goals, updated_at FROM arena_records WHERE arena_key = ?`, arenaKey)

	var rec storage.ArenaRecord
	var updatedAt int64
	if err := row.Scan(&rec.ArenaKey, &rec.BestTotalGoals, &updatedAt); err != nil {
		if err == sql.ErrNoRows {
			return storage.ArenaRecord{}, storage.ErrNotFound
		}
		return storage.ArenaRecord{}, fmt.Errorf("get arena record: %w", err)
	}
	rec.UpdatedAt = fromMillis(updatedAt)
	return rec, nil
}

// ListArenaRecords returns all arena records ordered by arena key.
func (s *Store) ListArenaRecords(ctx context.Context) ([]storage.ArenaRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT arena_key, best_total_goals, updated_at FROM arena_records ORDER BY arena_key ASC`)
	if err != nil {
		return nil, fmt.Errorf("list arena records: %w", err)
	}
	defer rows.Close()

	var records []storage.ArenaRecord
	for rows.Next() {
		var rec storage.ArenaRecord
		var updatedAt int64
		if err := rows.Scan(&rec.ArenaKey, &rec.BestTotalGoals, &updatedAt); err != nil {
			return nil, fmt.Errorf("scan arena record: %w", err)
		}
		rec.UpdatedAt = fromMillis(updatedAt)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scan arena records: %w", err)
	}
	return records, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMatch(row rowScanner) (storage.MatchRecord, error) {
	var m storage.MatchRecord
	var difficulty, status, winner string
	var createdAt int64
	var completedAt sql.NullInt64

	err := row.Scan(&m.ID, &m.ArenaKey, &difficulty, &m.Seed, &status,
		&m.PlayerScore, &m.AIScore, &m.Combo, &winner, &createdAt, &completedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return storage.MatchRecord{}, storage.ErrNotFound
		}
		return storage.MatchRecord{}, fmt.Errorf("scan match: %w", err)
	}

	m.Difficulty = match.Difficulty(difficulty)
	m.Status = match.Phase(status)
	m.Winner = match.Winner(winner)
	m.CreatedAt = fromMillis(createdAt)
	if completedAt.Valid {
		t := fromMillis(completedAt.Int64)
		m.CompletedAt = &t
	}
	return m, nil
}

func toMillis(t time.Time) int64 {
	return t.UTC().UnixMilli()
}

func toMillisPtr(t *time.Time) any {
	if t == nil {
		return nil
	}
	return toMillis(*t)
}

func fromMillis(millis int64) time.Time {
	return time.UnixMilli(millis).UTC()
}
