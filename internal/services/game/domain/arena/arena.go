// Package arena holds the built-in arena catalog and per-match field state.
//
// Arena definitions are static data; a Field is generated from a definition
// and a seeded RNG so that layouts replay identically for a given match seed.
package arena

import (
	"sort"

	"github.com/orbitalworks/stellarduel/internal/platform/errors"
)

// Field geometry shared by every arena.
const (
	FieldWidth  = 1280.0
	FieldHeight = 720.0
	BallRadius  = 16.0
	ShipWidth   = 36.0
	ShipHeight  = 22.0
	GoalWidth   = 22.0
	GoalHeight  = 150.0
)

// AnomalyKind classifies a gravity anomaly.
type AnomalyKind string

const (
	AnomalyBlackHole AnomalyKind = "black_hole"
	AnomalyRepulsor  AnomalyKind = "repulsor"
	AnomalyNebula    AnomalyKind = "nebula"
)

// HazardKind names an arena hazard class.
type HazardKind string

const (
	HazardCrystalShards    HazardKind = "crystal_shards"
	HazardSpinningRocks    HazardKind = "spinning_rocks"
	HazardGravityCorridors HazardKind = "gravity_corridors"
	HazardPulseRings       HazardKind = "pulse_rings"
	HazardLightningNodes   HazardKind = "lightning_nodes"
)

// Definition is a static arena description. Colors are hex strings so
// clients can render arena cards without a palette table of their own.
type Definition struct {
	ID           int
	Key          string
	Name         string
	Subtitle     string
	Description  string
	Background   string
	Accent       string
	Accent2      string
	AnomalyKinds []AnomalyKind
	MaxAnomalies int
	MaxAsteroids int
	Hazards      []HazardKind
}

var definitions = []Definition{
	{
		ID:           0,
		Key:          "lunar-colosseum",
		Name:         "Lunar Colosseum",
		Subtitle:     "The ancient arena of the moon",
		Description:  "Zero gravity · Crater rings · Classic arena",
		Background:   "#060812",
		Accent:       "#b4c8ff",
		Accent2:      "#6478c8",
		AnomalyKinds: []AnomalyKind{AnomalyRepulsor},
		MaxAnomalies: 1,
		MaxAsteroids: 0,
	},
	{
		ID:           1,
		Key:          "nebula-rift",
		Name:         "Nebula Rift",
		Subtitle:     "Lost in the gas clouds of Orion",
		Description:  "Nebula drag zones · Crystal obstacles · Dual tone",
		Background:   "#040012",
		Accent:       "#00ffc8",
		Accent2:      "#c800ff",
		AnomalyKinds: []AnomalyKind{AnomalyNebula, AnomalyRepulsor},
		MaxAnomalies: 3,
		MaxAsteroids: 0,
		Hazards:      []HazardKind{HazardCrystalShards},
	},
	{
		ID:           2,
		Key:          "asteroid-graveyard",
		Name:         "Asteroid Graveyard",
		Subtitle:     "Ruins of a shattered world",
		Description:  "Dense asteroid field · Spinning debris · High chaos",
		Background:   "#0c0600",
		Accent:       "#ff8c28",
		Accent2:      "#a05014",
		AnomalyKinds: []AnomalyKind{AnomalyRepulsor},
		MaxAnomalies: 2,
		MaxAsteroids: 5,
		Hazards:      []HazardKind{HazardSpinningRocks},
	},
	{
		ID:           3,
		Key:          "black-hole-station",
		Name:         "Black Hole Station",
		Subtitle:     "Event horizon — point of no return",
		Description:  "Black holes · Gravity corridors · Maximum danger",
		Background:   "#080002",
		Accent:       "#ff2850",
		Accent2:      "#b40050",
		AnomalyKinds: []AnomalyKind{AnomalyBlackHole},
		MaxAnomalies: 2,
		MaxAsteroids: 2,
		Hazards:      []HazardKind{HazardGravityCorridors},
	},
	{
		ID:           4,
		Key:          "pulsar-core",
		Name:         "Pulsar Core",
		Subtitle:     "The beating heart of a neutron star",
		Description:  "Pulse rings · Lightning nodes · Neon grid",
		Background:   "#000812",
		Accent:       "#00f0ff",
		Accent2:      "#fff000",
		AnomalyKinds: []AnomalyKind{AnomalyRepulsor, AnomalyNebula},
		MaxAnomalies: 2,
		MaxAsteroids: 1,
		Hazards:      []HazardKind{HazardPulseRings, HazardLightningNodes},
	},
}

// Definitions returns the arena catalog ordered by ID.
func Definitions() []Definition {
	out := make([]Definition, len(definitions))
	copy(out, definitions)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ByKey looks an arena up by its key.
func ByKey(key string) (Definition, error) {
	for _, def := range definitions {
		if def.Key == key {
			return def, nil
		}
	}
	return Definition{}, errors.WithMetadata(errors.CodeArenaUnknownKey,
		"unknown arena key", map[string]string{"key": key})
}

// hasHazard reports whether the definition generates the given hazard class.
func (d Definition) hasHazard(kind HazardKind) bool {
	for _, h := range d.Hazards {
		if h == kind {
			return true
		}
	}
	return false
}
