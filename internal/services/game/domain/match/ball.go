package match

import (
	"math"
	"math/rand"

	"github.com/orbitalworks/stellarduel/internal/services/game/domain/arena"
	"github.com/orbitalworks/stellarduel/internal/services/game/domain/geom"
)

// Ball tuning constants.
const (
	ballMass            = 0.7
	ballRestitution     = 0.9
	ballMaxSpeed        = 750.0
	ballMinImpact       = 260.0
	ballBoostImpact     = 200.0
	ballMinDeflect      = 160.0
	shipRecoil          = 80.0
	ballVelInheritance  = 0.3
	ballImpactShipScale = 0.8
)

// Ball is the match ball.
type Ball struct {
	Pos geom.Vec2
	Vel geom.Vec2
}

// NewBall returns a ball served from the field center.
func NewBall(rng *rand.Rand) *Ball {
	b := &Ball{}
	b.Reset(rng)
	return b
}

// Reset recenters the ball with a small random serve velocity.
func (b *Ball) Reset(rng *rand.Rand) {
	b.Pos = geom.Vec2{X: arena.FieldWidth / 2, Y: arena.FieldHeight / 2}
	b.Vel = geom.Vec2{
		X: -120 + rng.Float64()*240,
		Y: -90 + rng.Float64()*180,
	}
}

// Update applies field forces, moves the ball, and resolves wall and
// asteroid collisions.
func (b *Ball) Update(dt float64, field *arena.Field) {
	b.Vel = field.ApplyGravity(b.Pos, b.Vel, ballMass, dt)
	b.Pos = b.Pos.Add(b.Vel.Scale(dt))

	if b.Pos.X < arena.BallRadius {
		b.Pos.X = arena.BallRadius
		b.Vel.X = math.Abs(b.Vel.X) * ballRestitution
	}
	if b.Pos.X > arena.FieldWidth-arena.BallRadius {
		b.Pos.X = arena.FieldWidth - arena.BallRadius
		b.Vel.X = -math.Abs(b.Vel.X) * ballRestitution
	}
	if b.Pos.Y < arena.BallRadius {
		b.Pos.Y = arena.BallRadius
		b.Vel.Y = math.Abs(b.Vel.Y) * ballRestitution
	}
	if b.Pos.Y > arena.FieldHeight-arena.BallRadius {
		b.Pos.Y = arena.FieldHeight - arena.BallRadius
		b.Vel.Y = -math.Abs(b.Vel.Y) * ballRestitution
	}

	for _, ast := range field.Asteroids {
		delta := b.Pos.Sub(ast.Pos)
		d := delta.Len()
		if d < arena.BallRadius+ast.Radius && d > 0.1 {
			n := delta.Scale(1 / d)
			spd := math.Max(b.Vel.Len(), ballMinDeflect)
			b.Vel = n.Scale(spd)
			b.Pos = ast.Pos.Add(n.Scale(arena.BallRadius + ast.Radius + 2))
		}
	}

	if spd := b.Vel.Len(); spd > ballMaxSpeed {
		b.Vel = b.Vel.Scale(ballMaxSpeed / spd)
	}
}

// ShipHit resolves a ship striking the ball. The ball leaves along the
// contact normal at an impact speed derived from the ship's speed, plus a
// bonus while boosting; the ship recoils. Reports whether contact occurred.
func (b *Ball) ShipHit(ship *Ship) bool {
	delta := b.Pos.Sub(ship.Pos)
	d := delta.Len()
	minDist := arena.BallRadius + math.Max(arena.ShipWidth, arena.ShipHeight)/2
	if d >= minDist || d <= 0.1 {
		return false
	}

	n := delta.Scale(1 / d)
	impact := math.Max(ship.Vel.Len()*ballImpactShipScale, ballMinImpact)
	if ship.Boosting {
		impact += ballBoostImpact
	}
	b.Vel = n.Scale(impact).Add(ship.Vel.Scale(ballVelInheritance))
	ship.Vel = ship.Vel.Sub(n.Scale(shipRecoil))
	b.Pos = ship.Pos.Add(n.Scale(minDist + 2))
	return true
}
