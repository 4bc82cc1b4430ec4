package app

import (
	"context"
	"log"
	"math/rand"
	"sync"
	"time"

	apperrors "github.com/orbitalworks/stellarduel/internal/platform/errors"
	"github.com/orbitalworks/stellarduel/internal/platform/id"
	"github.com/orbitalworks/stellarduel/internal/services/game/domain/ai"
	"github.com/orbitalworks/stellarduel/internal/services/game/domain/arena"
	"github.com/orbitalworks/stellarduel/internal/services/game/domain/match"
	"github.com/orbitalworks/stellarduel/internal/services/game/storage"
)

const (
	// Simulation steps per second.
	tickRate = 60
	stepDT   = 1.0 / tickRate

	// Buffered snapshots per watcher; slow readers drop frames.
	watcherBuffer = 16
)

// watcher receives snapshots every divisor ticks.
type watcher struct {
	ch      chan match.Snapshot
	divisor int64
}

// liveMatch couples a running simulation with its latched controls,
// persisted record, and snapshot subscribers.
type liveMatch struct {
	sim      *match.Match
	controls match.Controls
	lastSeq  int64
	rec      storage.MatchRecord
	flushed  int
	watchers map[int]*watcher
	nextID   int
}

// Runtime advances all live matches at a fixed step and owns their
// persistence lifecycle.
type Runtime struct {
	mu    sync.Mutex
	live  map[string]*liveMatch
	store storage.Store

	clock   func() time.Time
	newSeed func() int64
}

// NewRuntime creates a runtime over the given store.
func NewRuntime(store storage.Store) *Runtime {
	return &Runtime{
		live:  make(map[string]*liveMatch),
		store: store,
		clock: time.Now,
		newSeed: func() int64 {
			for {
				if seed := rand.Int63(); seed != 0 {
					return seed
				}
			}
		},
	}
}

// CreateMatch starts a live match and persists its initial record.
// A zero seed draws a random one.
func (r *Runtime) CreateMatch(ctx context.Context, arenaKey string, difficulty match.Difficulty, seed int64) (storage.MatchRecord, error) {
	if arenaKey == "" {
		return storage.MatchRecord{}, apperrors.New(apperrors.CodeMatchEmptyArenaKey, "arena key is required")
	}
	def, err := arena.ByKey(arenaKey)
	if err != nil {
		return storage.MatchRecord{}, err
	}
	if _, err := match.ParseDifficulty(string(difficulty)); err != nil {
		return storage.MatchRecord{}, err
	}
	if seed < 0 {
		return storage.MatchRecord{}, apperrors.New(apperrors.CodeSeedOutOfRange, "seed must not be negative")
	}
	if seed == 0 {
		seed = r.newSeed()
	}

	matchID, err := id.NewID()
	if err != nil {
		return storage.MatchRecord{}, err
	}

	// The pilot gets its own RNG stream so AI decisions never consume
	// draws that the match simulation depends on.
	pilot := ai.NewPilot(difficulty, rand.New(rand.NewSource(seed+1)))
	sim := match.New(matchID, def, difficulty, seed, pilot)

	rec := storage.MatchRecord{
		ID:         sim.ID,
		ArenaKey:   arenaKey,
		Difficulty: difficulty,
		Seed:       seed,
		Status:     match.PhasePending,
		Combo:      1,
		CreatedAt:  r.clock().UTC(),
	}
	if err := r.store.PutMatch(ctx, rec); err != nil {
		return storage.MatchRecord{}, err
	}

	r.mu.Lock()
	r.live[sim.ID] = &liveMatch{
		sim:      sim,
		rec:      rec,
		watchers: make(map[int]*watcher),
	}
	r.mu.Unlock()
	return rec, nil
}

// SubmitInput latches controls for the next step. Sequences must be
// monotonic when provided; zero sequences skip the ordering check.
func (r *Runtime) SubmitInput(matchID string, controls match.Controls, sequence int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	lm, ok := r.live[matchID]
	if !ok {
		return 0, apperrors.New(apperrors.CodeMatchNotLive, "match is not live")
	}
	if sequence > 0 {
		if sequence <= lm.lastSeq {
			return 0, apperrors.New(apperrors.CodeMatchControlsOutOfOrder, "controls sequence is stale")
		}
		lm.lastSeq = sequence
	}
	lm.controls = controls
	return lm.sim.Tick + 1, nil
}

// Watch subscribes to snapshots of a live match. The channel closes when
// the match completes or ctx is cancelled.
func (r *Runtime) Watch(ctx context.Context, matchID string, tickDivisor int) (<-chan match.Snapshot, error) {
	if tickDivisor <= 0 {
		tickDivisor = 1
	}

	r.mu.Lock()
	lm, ok := r.live[matchID]
	if !ok {
		r.mu.Unlock()
		return nil, apperrors.New(apperrors.CodeMatchNotLive, "match is not live")
	}
	w := &watcher{ch: make(chan match.Snapshot, watcherBuffer), divisor: int64(tickDivisor)}
	watcherID := lm.nextID
	lm.nextID++
	lm.watchers[watcherID] = w
	r.mu.Unlock()

	go func() {
		<-ctx.Done()
		r.mu.Lock()
		defer r.mu.Unlock()
		// Completion may have removed the watcher already; only the
		// party that removes it closes the channel.
		if lm, ok := r.live[matchID]; ok {
			if w, ok := lm.watchers[watcherID]; ok {
				delete(lm.watchers, watcherID)
				close(w.ch)
			}
		}
	}()
	return w.ch, nil
}

// Snapshot returns the current state of a live match.
func (r *Runtime) Snapshot(matchID string) (match.Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	lm, ok := r.live[matchID]
	if !ok {
		return match.Snapshot{}, apperrors.New(apperrors.CodeMatchNotLive, "match is not live")
	}
	return lm.sim.Snapshot(), nil
}

// LiveCount reports how many matches are currently simulating.
func (r *Runtime) LiveCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.live)
}

// Run advances all live matches until ctx is cancelled.
func (r *Runtime) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / tickRate)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			r.step(ctx, stepDT)
		}
	}
}

// step advances every live match by dt, flushes new events, broadcasts
// snapshots, and finalizes completed matches.
func (r *Runtime) step(ctx context.Context, dt float64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for matchID, lm := range r.live {
		if err := lm.sim.Step(dt, lm.controls); err != nil {
			log.Printf("step match %s: %v", matchID, err)
			continue
		}

		r.flushEvents(ctx, lm)
		snap := lm.sim.Snapshot()
		for _, w := range lm.watchers {
			if snap.Tick%w.divisor != 0 && snap.Phase != match.PhaseComplete {
				continue
			}
			select {
			case w.ch <- snap:
			default:
			}
		}

		if snap.Phase == match.PhaseComplete {
			r.finalize(ctx, matchID, lm)
		}
	}
}

// flushEvents persists events appended since the last flush.
func (r *Runtime) flushEvents(ctx context.Context, lm *liveMatch) {
	events := lm.sim.Events
	if len(events) <= lm.flushed {
		return
	}

	records := make([]storage.EventRecord, 0, len(events)-lm.flushed)
	for seq := lm.flushed; seq < len(events); seq++ {
		evt := events[seq]
		records = append(records, storage.EventRecord{
			MatchID:    lm.sim.ID,
			Seq:        int64(seq),
			Tick:       evt.Tick,
			Type:       evt.Type,
			MessageKey: evt.MessageKey,
			Variant:    evt.Variant,
			Payload:    evt.Payload,
		})
	}
	if err := r.store.AppendEvents(ctx, records); err != nil {
		log.Printf("flush events for match %s: %v", lm.sim.ID, err)
		return
	}
	lm.flushed = len(events)
}

// finalize persists the completed match and removes it from the live set.
// Callers hold r.mu.
func (r *Runtime) finalize(ctx context.Context, matchID string, lm *liveMatch) {
	completed := r.clock().UTC()
	lm.rec.Status = match.PhaseComplete
	lm.rec.PlayerScore = lm.sim.Player.Score
	lm.rec.AIScore = lm.sim.Opponent.Score
	lm.rec.Combo = lm.sim.Combo
	lm.rec.Winner = lm.sim.Winner
	lm.rec.CompletedAt = &completed

	if err := r.store.PutMatch(ctx, lm.rec); err != nil {
		log.Printf("persist completed match %s: %v", matchID, err)
	}
	if err := r.store.RecordArenaTotal(ctx, lm.rec.ArenaKey, lm.sim.TotalGoals(), completed); err != nil {
		log.Printf("record arena total for %s: %v", lm.rec.ArenaKey, err)
	}

	for watcherID, w := range lm.watchers {
		delete(lm.watchers, watcherID)
		close(w.ch)
	}
	delete(r.live, matchID)
}
