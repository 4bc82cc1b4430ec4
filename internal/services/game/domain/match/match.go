// Package match implements the Stellar Duel match aggregate: two ships, a
// ball, a generated field, and the rules that advance them tick by tick.
//
// A match is deterministic: all randomness flows from the seeded RNG created
// at construction, so the same arena, seed, and input timeline replays
// identically.
package match

import (
	"math"
	"math/rand"
	"strconv"
	"strings"

	"github.com/orbitalworks/stellarduel/internal/platform/errors"
	"github.com/orbitalworks/stellarduel/internal/services/game/domain/announcer"
	"github.com/orbitalworks/stellarduel/internal/services/game/domain/arena"
	"github.com/orbitalworks/stellarduel/internal/services/game/domain/geom"
)

// Match rules.
const (
	RegulationTime  = 120.0
	MaxCombo        = 8
	GoalResetDelay  = 1.2
	MaxStepDT       = 0.05
	LowTimeWarning  = 30.0
	messageWindow   = 3.0
	hazardPerturb   = 120.0
	shipSpawnOffset = 180.0
)

// Phase is the match lifecycle state.
type Phase string

const (
	PhasePending   Phase = "pending"
	PhasePlaying   Phase = "playing"
	PhaseGoalReset Phase = "goal_reset"
	PhaseComplete  Phase = "complete"
)

// Winner identifies the match outcome.
type Winner string

const (
	WinnerPlayer Winner = "player"
	WinnerAI     Winner = "ai"
	WinnerDraw   Winner = "draw"
)

// Difficulty selects the opponent tier.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
	DifficultyElite  Difficulty = "elite"
)

// ParseDifficulty validates a difficulty string.
func ParseDifficulty(value string) (Difficulty, error) {
	switch d := Difficulty(strings.ToLower(strings.TrimSpace(value))); d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyElite:
		return d, nil
	}
	return "", errors.WithMetadata(errors.CodeMatchInvalidDifficulty,
		"invalid difficulty", map[string]string{"difficulty": value})
}

// OpponentPilot steers the AI ship. Implementations must draw randomness
// only from sources supplied at construction to keep matches replayable.
type OpponentPilot interface {
	// ChooseControls returns the opponent's controls for this frame.
	ChooseControls(self *Ship, ball *Ball, field *arena.Field, dt float64) Controls
	// NotifyGoal reports a goal; scoredByOpponent is true when the AI scored.
	NotifyGoal(scoredByOpponent bool)
}

// Match is the full simulation state of one duel.
type Match struct {
	ID         string
	Def        arena.Definition
	Difficulty Difficulty
	Seed       int64
	Phase      Phase
	Clock      float64
	Tick       int64
	Combo      int
	Winner     Winner
	Player     *Ship
	Opponent   *Ship
	Ball       *Ball
	Field      *arena.Field
	Events     []Event

	rng           *rand.Rand
	pilot         OpponentPilot
	resetTimer    float64
	lowTimeWarned bool
	msgTimer      float64
}

// New builds a pending match. The field layout and ball serve come from the
// match seed; the pilot is injected so its randomness stays separate.
func New(id string, def arena.Definition, difficulty Difficulty, seed int64, pilot OpponentPilot) *Match {
	rng := rand.New(rand.NewSource(seed))
	return &Match{
		ID:         id,
		Def:        def,
		Difficulty: difficulty,
		Seed:       seed,
		Phase:      PhasePending,
		Clock:      RegulationTime,
		Combo:      1,
		Player:     NewShip(geom.Vec2{X: shipSpawnOffset, Y: arena.FieldHeight / 2}),
		Opponent:   NewShip(geom.Vec2{X: arena.FieldWidth - shipSpawnOffset, Y: arena.FieldHeight / 2}),
		Ball:       NewBall(rng),
		Field:      arena.Generate(def, rng),
		rng:        rng,
		pilot:      pilot,
	}
}

// Step advances the match by dt seconds with the given player controls.
// dt is clamped to MaxStepDT so a stalled caller cannot tunnel the ball.
func (m *Match) Step(dt float64, controls Controls) error {
	if m.Phase == PhaseComplete {
		return errors.New(errors.CodeMatchAlreadyComplete, "match already complete")
	}
	if dt <= 0 {
		return errors.New(errors.CodeMatchInvalidTickRate, "step duration must be positive")
	}
	dt = math.Min(dt, MaxStepDT)

	m.Tick++
	m.msgTimer = math.Max(0, m.msgTimer-dt)

	switch m.Phase {
	case PhasePending:
		m.Phase = PhasePlaying
		m.emit(EventKickoff, "", map[string]string{"arena": m.Def.Key})
	case PhaseGoalReset:
		m.resetTimer -= dt
		if m.resetTimer <= 0 {
			m.resetPositions()
			m.Phase = PhasePlaying
		}
		return nil
	}

	m.Player.ApplyControls(controls, dt)
	playerPicked := m.Player.Integrate(dt, m.Field)

	opponentControls := m.pilot.ChooseControls(m.Opponent, m.Ball, m.Field, dt)
	m.Opponent.ApplyControls(opponentControls, dt)
	opponentPicked := m.Opponent.Integrate(dt, m.Field)

	m.Ball.Update(dt, m.Field)
	m.Ball.ShipHit(m.Player)
	m.Ball.ShipHit(m.Opponent)

	if playerPicked {
		m.emitThrottled(EventBoostPickup, announcer.KeyBoost, map[string]string{"ship": "player"})
	} else if opponentPicked {
		m.emitThrottled(EventBoostPickup, announcer.KeyBoost, map[string]string{"ship": "ai"})
	}

	shipRadius := math.Max(arena.ShipWidth, arena.ShipHeight) / 2
	if m.Field.HazardHit(m.Player.Pos, shipRadius) {
		m.Player.Vel.X += -hazardPerturb + m.rng.Float64()*2*hazardPerturb
		m.Player.Vel.Y += -hazardPerturb + m.rng.Float64()*2*hazardPerturb
		m.emitThrottled(EventHazard, announcer.KeyHazard, nil)
	}

	if leftGoalContains(m.Ball.Pos) {
		m.Opponent.Score++
		m.Combo = 1
		m.pilot.NotifyGoal(true)
		m.goalScored("ai", announcer.KeyGoalAI)
	} else if rightGoalContains(m.Ball.Pos) {
		m.Player.Score++
		if m.Combo < MaxCombo {
			m.Combo++
		}
		m.pilot.NotifyGoal(false)
		m.goalScored("player", announcer.KeyGoalPlayer)
	}

	m.Clock -= dt
	if !m.lowTimeWarned && m.Clock < LowTimeWarning {
		m.lowTimeWarned = true
		m.emit(EventLowTime, announcer.KeyLowTime, nil)
	}
	if m.Clock <= 0 {
		m.Clock = 0
		m.complete()
	}

	m.Field.Update(dt)
	return nil
}

func (m *Match) goalScored(scorer string, messageKey string) {
	m.Phase = PhaseGoalReset
	m.resetTimer = GoalResetDelay
	m.emit(EventGoal, messageKey, map[string]string{
		"scorer":       scorer,
		"player_score": strconv.Itoa(m.Player.Score),
		"ai_score":     strconv.Itoa(m.Opponent.Score),
		"combo":        strconv.Itoa(m.Combo),
	})
}

func (m *Match) complete() {
	m.Phase = PhaseComplete
	var key string
	switch {
	case m.Player.Score > m.Opponent.Score:
		m.Winner = WinnerPlayer
		key = announcer.KeyVictory
	case m.Opponent.Score > m.Player.Score:
		m.Winner = WinnerAI
		key = announcer.KeyDefeat
	default:
		m.Winner = WinnerDraw
		key = announcer.KeyDraw
	}
	m.emit(EventComplete, key, map[string]string{
		"winner":      string(m.Winner),
		"total_goals": strconv.Itoa(m.TotalGoals()),
	})
}

func (m *Match) resetPositions() {
	m.Player.Reset(geom.Vec2{X: shipSpawnOffset, Y: arena.FieldHeight / 2})
	m.Opponent.Reset(geom.Vec2{X: arena.FieldWidth - shipSpawnOffset, Y: arena.FieldHeight / 2})
	m.Ball.Reset(m.rng)
}

// emit appends an event. A non-empty message key opens the commentary
// window that throttles boost and hazard chatter.
func (m *Match) emit(eventType EventType, messageKey string, payload map[string]string) {
	variant := 0
	if n := announcer.VariantCount(messageKey); n > 0 {
		variant = m.rng.Intn(n)
	}
	if messageKey != "" {
		m.msgTimer = messageWindow
	}
	m.Events = append(m.Events, Event{
		Tick:       m.Tick,
		Type:       eventType,
		MessageKey: messageKey,
		Variant:    variant,
		Payload:    payload,
	})
}

func (m *Match) emitThrottled(eventType EventType, messageKey string, payload map[string]string) {
	if m.msgTimer > 0 {
		return
	}
	m.emit(eventType, messageKey, payload)
}

// TotalGoals is the combined score, used for per-arena records.
func (m *Match) TotalGoals() int {
	return m.Player.Score + m.Opponent.Score
}

func leftGoalContains(pos geom.Vec2) bool {
	return pos.X <= arena.GoalWidth && goalBandContains(pos.Y)
}

func rightGoalContains(pos geom.Vec2) bool {
	return pos.X >= arena.FieldWidth-arena.GoalWidth && goalBandContains(pos.Y)
}

func goalBandContains(y float64) bool {
	top := (arena.FieldHeight - arena.GoalHeight) / 2
	return y >= top && y <= top+arena.GoalHeight
}

// ShipState is a value copy of one ship for snapshots.
type ShipState struct {
	Pos      geom.Vec2
	Vel      geom.Vec2
	Angle    float64
	Boost    float64
	Boosting bool
	Score    int
}

// Snapshot is an immutable view of the match for readers and streams.
type Snapshot struct {
	ID         string
	ArenaKey   string
	Difficulty Difficulty
	Seed       int64
	Phase      Phase
	Clock      float64
	Tick       int64
	Combo      int
	Winner     Winner
	Player     ShipState
	Opponent   ShipState
	BallPos    geom.Vec2
	BallVel    geom.Vec2
	EventCount int
}

// Snapshot returns a value copy of the observable match state.
func (m *Match) Snapshot() Snapshot {
	return Snapshot{
		ID:         m.ID,
		ArenaKey:   m.Def.Key,
		Difficulty: m.Difficulty,
		Seed:       m.Seed,
		Phase:      m.Phase,
		Clock:      m.Clock,
		Tick:       m.Tick,
		Combo:      m.Combo,
		Winner:     m.Winner,
		Player:     shipState(m.Player),
		Opponent:   shipState(m.Opponent),
		BallPos:    m.Ball.Pos,
		BallVel:    m.Ball.Vel,
		EventCount: len(m.Events),
	}
}

func shipState(s *Ship) ShipState {
	return ShipState{
		Pos:      s.Pos,
		Vel:      s.Vel,
		Angle:    s.Angle,
		Boost:    s.Boost,
		Boosting: s.Boosting,
		Score:    s.Score,
	}
}
