// Package ai implements the adaptive opponent pilot: a weighted state
// machine that predicts the ball, picks a target per state, and steers
// toward it with difficulty-scaled reaction delay and aim noise.
package ai

import (
	"math"
	"math/rand"

	"github.com/orbitalworks/stellarduel/internal/services/game/domain/arena"
	"github.com/orbitalworks/stellarduel/internal/services/game/domain/geom"
	"github.com/orbitalworks/stellarduel/internal/services/game/domain/match"
)

type state string

const (
	stateIdle       state = "idle"
	stateChaseBall  state = "chase_ball"
	stateAttackGoal state = "attack_goal"
	stateDefendGoal state = "defend_goal"
	stateRetreat    state = "retreat"
	stateBoostHunt  state = "boost_hunt"
)

type transition struct {
	next   state
	weight float64
}

// transitions is ordered so weighted sampling is deterministic per seed.
var transitions = map[state][]transition{
	stateIdle: {
		{stateChaseBall, 0.7},
		{stateDefendGoal, 0.3},
	},
	stateChaseBall: {
		{stateAttackGoal, 0.6},
		{stateDefendGoal, 0.3},
		{stateBoostHunt, 0.1},
	},
	stateAttackGoal: {
		{stateChaseBall, 0.5},
		{stateDefendGoal, 0.3},
		{stateRetreat, 0.2},
	},
	stateDefendGoal: {
		{stateChaseBall, 0.6},
		{stateAttackGoal, 0.2},
		{stateBoostHunt, 0.2},
	},
	stateRetreat: {
		{stateDefendGoal, 0.5},
		{stateChaseBall, 0.4},
		{stateBoostHunt, 0.1},
	},
	stateBoostHunt: {
		{stateChaseBall, 0.7},
		{stateAttackGoal, 0.3},
	},
}

var difficultyTuning = map[match.Difficulty]struct {
	reaction float64
	aimNoise float64
}{
	match.DifficultyEasy:   {reaction: 0.5, aimNoise: 30},
	match.DifficultyMedium: {reaction: 0.25, aimNoise: 15},
	match.DifficultyHard:   {reaction: 0.1, aimNoise: 6},
	match.DifficultyElite:  {reaction: 0, aimNoise: 1},
}

// Pilot drives the opponent ship. It implements match.OpponentPilot.
type Pilot struct {
	state      state
	thinkTimer float64

	reaction float64
	aimNoise float64

	goalsScored   int
	goalsConceded int

	rng *rand.Rand
}

// NewPilot builds a pilot for the difficulty tier. The RNG must be owned by
// the pilot; sharing it with the match would entangle their random streams.
func NewPilot(difficulty match.Difficulty, rng *rand.Rand) *Pilot {
	tuning := difficultyTuning[difficulty]
	return &Pilot{
		state:    stateIdle,
		reaction: tuning.reaction,
		aimNoise: tuning.aimNoise,
		rng:      rng,
	}
}

// State returns the current behavior state name.
func (p *Pilot) State() string {
	return string(p.state)
}

// AimNoise returns the current aim noise in pixels.
func (p *Pilot) AimNoise() float64 {
	return p.aimNoise
}

// ReactionDelay returns the current think interval in seconds.
func (p *Pilot) ReactionDelay() float64 {
	return p.reaction
}

// NotifyGoal updates the score ledger and adapts the tuning: the pilot
// tightens when trailing by more than two and loosens when leading by
// more than two.
func (p *Pilot) NotifyGoal(scoredByOpponent bool) {
	if scoredByOpponent {
		p.goalsScored++
	} else {
		p.goalsConceded++
	}

	diff := p.goalsScored - p.goalsConceded
	if diff < -2 {
		p.aimNoise = math.Max(1, p.aimNoise-3)
		p.reaction = math.Max(0, p.reaction-0.05)
	} else if diff > 2 {
		p.aimNoise = math.Min(40, p.aimNoise+2)
		p.reaction = math.Min(0.6, p.reaction+0.03)
	}
}

// ChooseControls produces one frame of steering.
func (p *Pilot) ChooseControls(self *match.Ship, ball *match.Ball, field *arena.Field, dt float64) match.Controls {
	p.thinkTimer -= dt
	if p.thinkTimer <= 0 {
		p.state = p.chooseState(self, ball, field)
		p.thinkTimer = p.reaction + p.uniform(-0.05, 0.05)
	}

	predicted := predictBall(ball)
	ownGoalX := arena.FieldWidth - arena.GoalWidth - 30
	playerGoalX := arena.GoalWidth + 30.0

	var target geom.Vec2
	switch p.state {
	case stateDefendGoal:
		target = geom.Vec2{
			X: geom.Lerp(predicted.X, ownGoalX, 0.6),
			Y: geom.Lerp(predicted.Y, arena.FieldHeight/2, 0.3),
		}
	case stateAttackGoal:
		target = geom.Vec2{
			X: predicted.X + (playerGoalX-predicted.X)*0.3,
			Y: predicted.Y,
		}
	case stateBoostHunt:
		if pad := field.NearestActivePad(self.Pos); pad != nil {
			target = pad.Pos
		} else {
			target = predicted
		}
	case stateRetreat:
		target = geom.Vec2{X: ownGoalX, Y: arena.FieldHeight / 2}
	default:
		target = predicted
	}

	target.X += p.uniform(-p.aimNoise, p.aimNoise)
	target.Y += p.uniform(-p.aimNoise, p.aimNoise)

	delta := target.Sub(self.Pos)
	angleToTarget := math.Atan2(delta.Y, delta.X)
	ad := geom.AngleDiff(angleToTarget, self.Angle)
	dist := delta.Len()

	return match.Controls{
		Left:    ad < -0.08,
		Right:   ad > 0.08,
		Forward: dist > 40,
		Boost: self.Boost > 40 && dist > 150 &&
			(p.state == stateAttackGoal || p.state == stateDefendGoal),
	}
}

// chooseState applies the forced transitions first, then samples the
// weight table.
func (p *Pilot) chooseState(self *match.Ship, ball *match.Ball, field *arena.Field) state {
	ownGoalX := arena.FieldWidth - arena.GoalWidth/2
	ballToGoal := math.Abs(ball.Pos.X - ownGoalX)
	distToBall := self.Pos.Dist(ball.Pos)

	ballDanger := ball.Pos.X > arena.FieldWidth*0.65 && ballToGoal < 250
	boostLow := self.Boost < 30
	boostNear := false
	for _, pad := range field.Pads {
		if pad.Active && self.Pos.Dist(pad.Pos) < 200 {
			boostNear = true
			break
		}
	}

	if ballDanger {
		return stateDefendGoal
	}
	if boostLow && boostNear {
		return stateBoostHunt
	}
	if distToBall < 150 && ball.Pos.X < arena.FieldWidth*0.5 {
		return stateAttackGoal
	}

	options, ok := transitions[p.state]
	if !ok {
		options = transitions[stateIdle]
	}
	total := 0.0
	for _, t := range options {
		total += t.weight
	}
	r := p.rng.Float64() * total
	for _, t := range options {
		r -= t.weight
		if r < 0 {
			return t.next
		}
	}
	return options[len(options)-1].next
}

// predictBall runs a short Euler extrapolation of the ball's path.
func predictBall(ball *match.Ball) geom.Vec2 {
	const steps, dt = 20, 0.05
	pos := ball.Pos
	for i := 0; i < steps; i++ {
		pos = pos.Add(ball.Vel.Scale(dt))
	}
	return pos
}

func (p *Pilot) uniform(lo, hi float64) float64 {
	return lo + p.rng.Float64()*(hi-lo)
}
