package arena

import (
	"math/rand"
	"testing"

	"github.com/orbitalworks/stellarduel/internal/platform/errors"
	"github.com/orbitalworks/stellarduel/internal/services/game/domain/geom"
)

func TestDefinitionsOrderedAndComplete(t *testing.T) {
	defs := Definitions()
	if len(defs) != 5 {
		t.Fatalf("expected 5 arenas, got %d", len(defs))
	}
	for i, def := range defs {
		if def.ID != i {
			t.Fatalf("arena %d has id %d", i, def.ID)
		}
		if def.Key == "" || def.Name == "" {
			t.Fatalf("arena %d missing key or name", i)
		}
		if len(def.AnomalyKinds) == 0 {
			t.Fatalf("arena %s has no anomaly kinds", def.Key)
		}
	}
}

func TestByKeyUnknown(t *testing.T) {
	_, err := ByKey("the-backrooms")
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.GetCode(err) != errors.CodeArenaUnknownKey {
		t.Fatalf("unexpected code %s", errors.GetCode(err))
	}
}

func TestGenerateDeterministic(t *testing.T) {
	def, err := ByKey("pulsar-core")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}

	a := Generate(def, rand.New(rand.NewSource(7)))
	b := Generate(def, rand.New(rand.NewSource(7)))

	if len(a.Pads) != len(b.Pads) {
		t.Fatalf("pad counts differ: %d vs %d", len(a.Pads), len(b.Pads))
	}
	for i := range a.Pads {
		if a.Pads[i].Pos != b.Pads[i].Pos {
			t.Fatalf("pad %d positions differ", i)
		}
	}
	if len(a.Rings) != 3 || len(a.Nodes) != 5 {
		t.Fatalf("expected 3 rings and 5 nodes, got %d and %d", len(a.Rings), len(a.Nodes))
	}
}

func TestGenerateRespectsDefinitionCounts(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	lunar, _ := ByKey("lunar-colosseum")
	f := Generate(lunar, rng)
	if len(f.Anomalies) != 1 {
		t.Fatalf("expected 1 anomaly, got %d", len(f.Anomalies))
	}
	if f.Anomalies[0].Kind != AnomalyRepulsor {
		t.Fatalf("expected repulsor, got %s", f.Anomalies[0].Kind)
	}
	if f.Anomalies[0].Strength >= 0 {
		t.Fatalf("repulsor strength should be negative, got %f", f.Anomalies[0].Strength)
	}
	if len(f.Asteroids) != 0 || len(f.Shards) != 0 {
		t.Fatal("lunar colosseum should have no asteroids or shards")
	}

	graveyard, _ := ByKey("asteroid-graveyard")
	f = Generate(graveyard, rng)
	if len(f.Asteroids) != 5 {
		t.Fatalf("expected 5 asteroids, got %d", len(f.Asteroids))
	}

	station, _ := ByKey("black-hole-station")
	f = Generate(station, rng)
	if len(f.Corridors) != 3 {
		t.Fatalf("expected 3 corridors, got %d", len(f.Corridors))
	}
	for _, a := range f.Anomalies {
		if a.Kind != AnomalyBlackHole {
			t.Fatalf("expected black holes only, got %s", a.Kind)
		}
		if a.Strength <= 0 {
			t.Fatalf("black hole strength should be positive, got %f", a.Strength)
		}
	}
}

func TestPadCooldownReactivates(t *testing.T) {
	def, _ := ByKey("lunar-colosseum")
	f := Generate(def, rand.New(rand.NewSource(3)))

	pad := f.Pads[0]
	pad.Active = false
	pad.Cooldown = PadCooldown

	for i := 0; i < 48; i++ {
		f.Update(0.1)
	}
	if pad.Active {
		t.Fatal("pad reactivated early")
	}
	f.Update(0.3)
	if !pad.Active {
		t.Fatal("pad should have reactivated after cooldown")
	}
}

func TestApplyGravityBlackHoleAttracts(t *testing.T) {
	f := &Field{Anomalies: []Anomaly{{
		Pos:      geom.Vec2{X: 700, Y: 360},
		Radius:   100,
		Strength: 200,
		Kind:     AnomalyBlackHole,
	}}}

	vel := f.ApplyGravity(geom.Vec2{X: 600, Y: 360}, geom.Vec2{}, 1.0, 0.016)
	if vel.X <= 0 {
		t.Fatalf("expected pull toward anomaly (+x), got %+v", vel)
	}

	// Outside 3x radius there is no force.
	vel = f.ApplyGravity(geom.Vec2{X: 100, Y: 360}, geom.Vec2{}, 1.0, 0.016)
	if vel != (geom.Vec2{}) {
		t.Fatalf("expected no force outside influence, got %+v", vel)
	}
}

func TestApplyGravityNebulaDamps(t *testing.T) {
	f := &Field{Anomalies: []Anomaly{{
		Pos:      geom.Vec2{X: 640, Y: 360},
		Radius:   80,
		Strength: 40,
		Kind:     AnomalyNebula,
	}}}

	vel := f.ApplyGravity(geom.Vec2{X: 640, Y: 360}, geom.Vec2{X: 100, Y: 0}, 1.0, 0.1)
	if vel.X >= 100 {
		t.Fatalf("expected damping, got %+v", vel)
	}
}

func TestHazardHit(t *testing.T) {
	f := &Field{
		Nodes: []*LightningNode{{Pos: geom.Vec2{X: 300, Y: 300}, Radius: 60, Active: true}},
		Rings: []*PulseRing{{Center: geom.Vec2{X: 900, Y: 400}, Radius: 50, MaxRadius: 120}},
	}

	if !f.HazardHit(geom.Vec2{X: 320, Y: 300}, 11) {
		t.Fatal("expected hit on active lightning node")
	}
	f.Nodes[0].Active = false
	if f.HazardHit(geom.Vec2{X: 320, Y: 300}, 11) {
		t.Fatal("dormant node should not hit")
	}

	// Ring edge at distance 50: a point at distance 55 with radius 5 hits.
	if !f.HazardHit(geom.Vec2{X: 955, Y: 400}, 5) {
		t.Fatal("expected hit on pulse ring edge")
	}
	if f.HazardHit(geom.Vec2{X: 900, Y: 400}, 5) {
		t.Fatal("ring center should be safe")
	}
}

func TestAsteroidBouncesOffWalls(t *testing.T) {
	f := &Field{Asteroids: []*Asteroid{{
		Pos:    geom.Vec2{X: 20, Y: 360},
		Vel:    geom.Vec2{X: -100, Y: 0},
		Radius: 25,
	}}}

	f.Update(0.016)
	if f.Asteroids[0].Vel.X <= 0 {
		t.Fatalf("expected bounce, velocity %+v", f.Asteroids[0].Vel)
	}
}

func TestPulseRingWraps(t *testing.T) {
	f := &Field{Rings: []*PulseRing{{Radius: 99, MaxRadius: 100, Speed: 100}}}
	f.Update(0.05)
	if f.Rings[0].Radius != 10 {
		t.Fatalf("expected ring reset to 10, got %f", f.Rings[0].Radius)
	}
}
