package match

import (
	"math"
	"testing"

	"github.com/orbitalworks/stellarduel/internal/services/game/domain/arena"
	"github.com/orbitalworks/stellarduel/internal/services/game/domain/geom"
)

func TestApplyControlsThrustAccelerates(t *testing.T) {
	s := NewShip(geom.Vec2{X: 640, Y: 360})
	s.ApplyControls(Controls{Forward: true}, 0.05)
	if s.Vel.X <= 0 {
		t.Fatalf("expected forward acceleration along +x, got %+v", s.Vel)
	}
	if s.Vel.Y != 0 {
		t.Fatalf("expected no lateral drift at angle 0, got %+v", s.Vel)
	}
}

func TestApplyControlsBoostDrainsTank(t *testing.T) {
	s := NewShip(geom.Vec2{X: 640, Y: 360})
	s.ApplyControls(Controls{Forward: true, Boost: true}, 0.1)
	if !s.Boosting {
		t.Fatal("expected boosting")
	}
	want := BoostMax - BoostCost*0.1
	if math.Abs(s.Boost-want) > 1e-9 {
		t.Fatalf("expected tank %f, got %f", want, s.Boost)
	}
}

func TestBoostRequiresForwardAndFuel(t *testing.T) {
	s := NewShip(geom.Vec2{X: 640, Y: 360})
	s.ApplyControls(Controls{Boost: true}, 0.05)
	if s.Boosting {
		t.Fatal("boost without forward should not engage")
	}

	s.Boost = 4
	s.ApplyControls(Controls{Forward: true, Boost: true}, 0.05)
	if s.Boosting {
		t.Fatal("boost with near-empty tank should not engage")
	}
}

func TestTankRechargesWhenCoasting(t *testing.T) {
	s := NewShip(geom.Vec2{X: 640, Y: 360})
	s.Boost = 50
	s.ApplyControls(Controls{}, 1.0)
	if math.Abs(s.Boost-58) > 1e-9 {
		t.Fatalf("expected recharge to 58, got %f", s.Boost)
	}
}

func TestSpeedClamp(t *testing.T) {
	s := NewShip(geom.Vec2{X: 640, Y: 360})
	s.Vel = geom.Vec2{X: 1000, Y: 0}
	s.ApplyControls(Controls{}, 0.016)
	if s.Vel.Len() > MaxSpeed {
		t.Fatalf("expected clamp to %f, got %f", MaxSpeed, s.Vel.Len())
	}

	s.Vel = geom.Vec2{X: 1000, Y: 0}
	s.Boost = BoostMax
	s.ApplyControls(Controls{Forward: true, Boost: true}, 0.016)
	if s.Vel.Len() > MaxBoostSpeed {
		t.Fatalf("expected boost clamp to %f, got %f", MaxBoostSpeed, s.Vel.Len())
	}
}

func TestIntegrateWallBounce(t *testing.T) {
	def, _ := arena.ByKey("lunar-colosseum")
	field := emptyField(def)

	s := NewShip(geom.Vec2{X: 31, Y: 360})
	s.Vel = geom.Vec2{X: -200, Y: 0}
	s.Integrate(0.05, field)

	if s.Pos.X != 30 {
		t.Fatalf("expected clamp at pad 30, got %f", s.Pos.X)
	}
	want := 200 * 0.6
	if math.Abs(s.Vel.X-want) > 1e-9 {
		t.Fatalf("expected reflected velocity %f, got %f", want, s.Vel.X)
	}
}

func TestIntegratePadPickup(t *testing.T) {
	def, _ := arena.ByKey("lunar-colosseum")
	field := emptyField(def)
	pad := &arena.BoostPad{Pos: geom.Vec2{X: 640, Y: 360}, Radius: arena.PadRadius, Active: true}
	field.Pads = []*arena.BoostPad{pad}

	s := NewShip(geom.Vec2{X: 640, Y: 360})
	s.Boost = 40
	picked := s.Integrate(0.016, field)

	if !picked {
		t.Fatal("expected pad pickup")
	}
	if pad.Active {
		t.Fatal("pad should deactivate")
	}
	if pad.Cooldown != arena.PadCooldown {
		t.Fatalf("expected cooldown %f, got %f", arena.PadCooldown, pad.Cooldown)
	}
	if math.Abs(s.Boost-85) > 1e-9 {
		t.Fatalf("expected tank 85, got %f", s.Boost)
	}
}

func TestIntegrateAsteroidShove(t *testing.T) {
	def, _ := arena.ByKey("asteroid-graveyard")
	field := emptyField(def)
	field.Asteroids = []*arena.Asteroid{{Pos: geom.Vec2{X: 650, Y: 360}, Radius: 20}}

	s := NewShip(geom.Vec2{X: 640, Y: 360})
	s.Integrate(0.016, field)
	if s.Vel.X >= 0 {
		t.Fatalf("expected shove away from asteroid (-x), got %+v", s.Vel)
	}
}

// emptyField builds a field with no generated content so tests control
// exactly which obstacles exist.
func emptyField(def arena.Definition) *arena.Field {
	return &arena.Field{Def: def}
}
