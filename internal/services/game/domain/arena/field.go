package arena

import (
	"math"
	"math/rand"

	"github.com/orbitalworks/stellarduel/internal/services/game/domain/geom"
)

// PadRadius is the pickup radius of every boost pad.
const PadRadius = 22.0

// PadCooldown is how long a consumed pad stays inactive.
const PadCooldown = 5.0

// BoostPad refills a ship's boost tank on pickup.
type BoostPad struct {
	Pos      geom.Vec2
	Radius   float64
	Active   bool
	Cooldown float64
}

// Anomaly is a gravity anomaly. Strength is positive for black holes
// (attracting), negative for repulsors, and a damping magnitude for nebulas.
type Anomaly struct {
	Pos      geom.Vec2
	Radius   float64
	Strength float64
	Kind     AnomalyKind
}

// Asteroid is a moving obstacle that deflects ships and the ball.
type Asteroid struct {
	Pos    geom.Vec2
	Vel    geom.Vec2
	Radius float64
	Angle  float64
	Spin   float64
}

// CrystalShard is a slowly orbiting decoration-grade obstacle.
type CrystalShard struct {
	Pos   geom.Vec2
	Angle float64
	Size  float64
	Spin  float64
}

// GravityCorridor pushes objects inside its rectangle along a fixed direction.
type GravityCorridor struct {
	Pos       geom.Vec2
	Width     float64
	Height    float64
	Strength  float64
	Direction float64
}

// PulseRing expands from the center and wraps back to its seed radius.
type PulseRing struct {
	Center    geom.Vec2
	Radius    float64
	MaxRadius float64
	Speed     float64
}

// LightningNode toggles between active and dormant on randomized timers.
type LightningNode struct {
	Pos    geom.Vec2
	Radius float64
	Timer  float64
	Active bool
}

// Field is the generated per-match state of an arena.
type Field struct {
	Def       Definition
	Pads      []*BoostPad
	Anomalies []Anomaly
	Asteroids []*Asteroid
	Shards    []*CrystalShard
	Corridors []GravityCorridor
	Rings     []*PulseRing
	Nodes     []*LightningNode

	rng *rand.Rand
}

// Generate lays out a field from the definition using the match RNG.
func Generate(def Definition, rng *rand.Rand) *Field {
	f := &Field{Def: def, rng: rng}

	f.Pads = append(f.Pads, &BoostPad{
		Pos:    geom.Vec2{X: FieldWidth / 2, Y: FieldHeight / 2},
		Radius: PadRadius,
		Active: true,
	})
	for i := 0; i < intBetween(rng, 3, 6); i++ {
		f.Pads = append(f.Pads, &BoostPad{
			Pos: geom.Vec2{
				X: floatBetween(rng, 120, FieldWidth-120),
				Y: floatBetween(rng, 90, FieldHeight-90),
			},
			Radius: PadRadius,
			Active: true,
		})
	}

	for i := 0; i < def.MaxAnomalies; i++ {
		kind := def.AnomalyKinds[rng.Intn(len(def.AnomalyKinds))]
		var strength float64
		switch kind {
		case AnomalyBlackHole:
			strength = floatBetween(rng, 100, 220)
		case AnomalyNebula:
			strength = floatBetween(rng, 25, 55)
		default:
			strength = -floatBetween(rng, 50, 110)
		}
		f.Anomalies = append(f.Anomalies, Anomaly{
			Pos: geom.Vec2{
				X: floatBetween(rng, 220, FieldWidth-220),
				Y: floatBetween(rng, 130, FieldHeight-130),
			},
			Radius:   floatBetween(rng, 55, 115),
			Strength: strength,
			Kind:     kind,
		})
	}

	speedBound := 80.0
	if def.Key == "black-hole-station" {
		speedBound = 60.0
	}
	for i := 0; i < def.MaxAsteroids; i++ {
		f.Asteroids = append(f.Asteroids, &Asteroid{
			Pos: geom.Vec2{
				X: floatBetween(rng, 200, FieldWidth-200),
				Y: floatBetween(rng, 90, FieldHeight-90),
			},
			Radius: floatBetween(rng, 14, 32),
			Vel: geom.Vec2{
				X: floatBetween(rng, -speedBound, speedBound),
				Y: floatBetween(rng, -speedBound*0.8, speedBound*0.8),
			},
			Angle: floatBetween(rng, 0, 2*math.Pi),
			Spin:  floatBetween(rng, -2.5, 2.5),
		})
	}

	if def.hasHazard(HazardCrystalShards) {
		for i := 0; i < 8; i++ {
			f.Shards = append(f.Shards, &CrystalShard{
				Pos: geom.Vec2{
					X: floatBetween(rng, 100, FieldWidth-100),
					Y: floatBetween(rng, 80, FieldHeight-80),
				},
				Angle: floatBetween(rng, 0, 2*math.Pi),
				Size:  floatBetween(rng, 18, 45),
				Spin:  floatBetween(rng, -0.8, 0.8),
			})
		}
	}

	if def.hasHazard(HazardGravityCorridors) {
		for i := 0; i < 3; i++ {
			f.Corridors = append(f.Corridors, GravityCorridor{
				Pos: geom.Vec2{
					X: floatBetween(rng, 200, FieldWidth-200),
					Y: floatBetween(rng, 100, FieldHeight-100),
				},
				Width:     floatBetween(rng, 40, 80),
				Height:    floatBetween(rng, 80, 180),
				Strength:  floatBetween(rng, 150, 300),
				Direction: floatBetween(rng, 0, 2*math.Pi),
			})
		}
	}

	if def.hasHazard(HazardPulseRings) {
		for i := 0; i < 3; i++ {
			f.Rings = append(f.Rings, &PulseRing{
				Center: geom.Vec2{
					X: floatBetween(rng, 200, FieldWidth-200),
					Y: floatBetween(rng, 100, FieldHeight-100),
				},
				Radius:    10,
				MaxRadius: floatBetween(rng, 80, 160),
				Speed:     floatBetween(rng, 80, 160),
			})
		}
	}

	if def.hasHazard(HazardLightningNodes) {
		for i := 0; i < 5; i++ {
			f.Nodes = append(f.Nodes, &LightningNode{
				Pos: geom.Vec2{
					X: floatBetween(rng, 150, FieldWidth-150),
					Y: floatBetween(rng, 80, FieldHeight-80),
				},
				Radius: floatBetween(rng, 50, 90),
				Timer:  floatBetween(rng, 1.5, 4.0),
			})
		}
	}

	return f
}

// Update advances pads, asteroids, shards, rings, and lightning nodes by dt.
func (f *Field) Update(dt float64) {
	for _, pad := range f.Pads {
		if !pad.Active {
			pad.Cooldown -= dt
			if pad.Cooldown <= 0 {
				pad.Active = true
			}
		}
	}

	for _, ast := range f.Asteroids {
		ast.Pos = ast.Pos.Add(ast.Vel.Scale(dt))
		ast.Angle += ast.Spin * dt
		if ast.Pos.X < ast.Radius || ast.Pos.X > FieldWidth-ast.Radius {
			ast.Vel.X = -ast.Vel.X
		}
		if ast.Pos.Y < ast.Radius || ast.Pos.Y > FieldHeight-ast.Radius {
			ast.Vel.Y = -ast.Vel.Y
		}
	}

	for _, sh := range f.Shards {
		sh.Angle += sh.Spin * dt
	}

	for _, ring := range f.Rings {
		ring.Radius += ring.Speed * dt
		if ring.Radius > ring.MaxRadius {
			ring.Radius = 10
		}
	}

	for _, node := range f.Nodes {
		node.Timer -= dt
		if node.Timer <= 0 {
			node.Active = !node.Active
			if node.Active {
				node.Timer = floatBetween(f.rng, 0.4, 2.5)
			} else {
				node.Timer = floatBetween(f.rng, 1.0, 4.0)
			}
		}
	}
}

// ApplyGravity returns the velocity after anomaly and corridor forces.
func (f *Field) ApplyGravity(pos, vel geom.Vec2, mass, dt float64) geom.Vec2 {
	for _, a := range f.Anomalies {
		delta := a.Pos.Sub(pos)
		dist := math.Max(1, delta.Len())
		if a.Kind == AnomalyNebula {
			if dist < a.Radius {
				vel = vel.Scale(1 - 0.35*dt)
			}
			continue
		}
		if dist < a.Radius*3 {
			force := a.Strength / math.Pow(dist, 1.2) * dt / mass
			vel = vel.Add(delta.Scale(force / dist))
		}
	}

	for _, gc := range f.Corridors {
		delta := pos.Sub(gc.Pos)
		if math.Abs(delta.X) < gc.Width/2 && math.Abs(delta.Y) < gc.Height/2 {
			push := gc.Strength * dt / mass
			vel.X += math.Cos(gc.Direction) * push
			vel.Y += math.Sin(gc.Direction) * push
		}
	}

	return vel
}

// HazardHit reports whether an object at pos with the given radius touches
// an active lightning node or the edge of a pulse ring.
func (f *Field) HazardHit(pos geom.Vec2, radius float64) bool {
	for _, node := range f.Nodes {
		if node.Active && pos.Dist(node.Pos) < node.Radius+radius {
			return true
		}
	}
	for _, ring := range f.Rings {
		if math.Abs(pos.Dist(ring.Center)-ring.Radius) < 10+radius {
			return true
		}
	}
	return false
}

// NearestActivePad returns the closest active pad to pos, or nil.
func (f *Field) NearestActivePad(pos geom.Vec2) *BoostPad {
	var nearest *BoostPad
	nearestDist := math.MaxFloat64
	for _, pad := range f.Pads {
		if !pad.Active {
			continue
		}
		if d := pos.Dist(pad.Pos); d < nearestDist {
			nearestDist = d
			nearest = pad
		}
	}
	return nearest
}

func floatBetween(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func intBetween(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}
