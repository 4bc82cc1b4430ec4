package match

import (
	"math"

	"github.com/orbitalworks/stellarduel/internal/services/game/domain/arena"
	"github.com/orbitalworks/stellarduel/internal/services/game/domain/geom"
)

// Ship tuning constants.
const (
	BoostMax      = 100.0
	BoostRecharge = 8.0
	BoostCost     = 30.0
	BoostAccel    = 520.0
	Thrust        = 400.0
	TurnRate      = 220.0 // degrees per second
	MaxSpeed      = 380.0
	MaxBoostSpeed = 520.0

	wallPad         = 30.0
	wallRestitution = 0.6
	padPickupGain   = 45.0
	asteroidShove   = 220.0
)

// Controls is one frame of steering input.
type Controls struct {
	Left    bool
	Right   bool
	Forward bool
	Back    bool
	Boost   bool
}

// Ship is one competitor's vessel.
type Ship struct {
	Pos      geom.Vec2
	Vel      geom.Vec2
	Angle    float64
	Boost    float64
	Boosting bool
	Score    int
}

// NewShip places a ship at the given position with a full tank.
func NewShip(pos geom.Vec2) *Ship {
	return &Ship{Pos: pos, Boost: BoostMax}
}

// ApplyControls turns, thrusts, and boosts the ship for one frame.
func (s *Ship) ApplyControls(c Controls, dt float64) {
	turn := TurnRate * dt * math.Pi / 180
	if c.Left {
		s.Angle -= turn
	}
	if c.Right {
		s.Angle += turn
	}

	heading := geom.Vec2{X: math.Cos(s.Angle), Y: math.Sin(s.Angle)}
	if c.Forward {
		s.Vel = s.Vel.Add(heading.Scale(Thrust * dt))
	}
	if c.Back {
		s.Vel = s.Vel.Sub(heading.Scale(Thrust * 0.5 * dt))
	}

	s.Boosting = c.Boost && s.Boost > 5 && c.Forward
	if s.Boosting {
		s.Vel = s.Vel.Add(heading.Scale(BoostAccel * dt))
		s.Boost -= BoostCost * dt
	} else {
		s.Boost = math.Min(BoostMax, s.Boost+BoostRecharge*dt)
	}

	speedCap := MaxSpeed
	if s.Boosting {
		speedCap = MaxBoostSpeed
	}
	if spd := s.Vel.Len(); spd > speedCap {
		s.Vel = s.Vel.Scale(speedCap / spd)
	}

	drag := 0.992
	if c.Forward || c.Back {
		drag = 0.999
	}
	s.Vel = s.Vel.Scale(drag)
}

// Integrate applies field forces and moves the ship. It reports whether the
// ship consumed a boost pad this frame.
func (s *Ship) Integrate(dt float64, field *arena.Field) bool {
	s.Vel = field.ApplyGravity(s.Pos, s.Vel, 1.0, dt)
	s.Pos = s.Pos.Add(s.Vel.Scale(dt))

	if s.Pos.X < wallPad {
		s.Pos.X = wallPad
		s.Vel.X = math.Abs(s.Vel.X) * wallRestitution
	}
	if s.Pos.X > arena.FieldWidth-wallPad {
		s.Pos.X = arena.FieldWidth - wallPad
		s.Vel.X = -math.Abs(s.Vel.X) * wallRestitution
	}
	if s.Pos.Y < wallPad {
		s.Pos.Y = wallPad
		s.Vel.Y = math.Abs(s.Vel.Y) * wallRestitution
	}
	if s.Pos.Y > arena.FieldHeight-wallPad {
		s.Pos.Y = arena.FieldHeight - wallPad
		s.Vel.Y = -math.Abs(s.Vel.Y) * wallRestitution
	}

	for _, ast := range field.Asteroids {
		delta := s.Pos.Sub(ast.Pos)
		d := delta.Len()
		minDist := ast.Radius + math.Max(arena.ShipWidth, arena.ShipHeight)/2
		if d < minDist && d > 0.1 {
			s.Vel = s.Vel.Add(delta.Scale(asteroidShove / d))
		}
	}

	picked := false
	for _, pad := range field.Pads {
		if pad.Active && s.Pos.Dist(pad.Pos) < pad.Radius+16 {
			s.Boost = math.Min(BoostMax, s.Boost+padPickupGain)
			pad.Active = false
			pad.Cooldown = arena.PadCooldown
			picked = true
		}
	}
	return picked
}

// Reset parks the ship at pos with zero velocity, keeping score and tank.
func (s *Ship) Reset(pos geom.Vec2) {
	s.Pos = pos
	s.Vel = geom.Vec2{}
	s.Boosting = false
}
