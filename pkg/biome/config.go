package biome

import "github.com/StoreStation/VibeShitCraft-worldgen/pkg/rng"

// EntityCategory groups spawn entries the way the host spawner does.
type EntityCategory int

const (
	Monster EntityCategory = iota
	Creature
	Ambient
	WaterCreature

	// CategoryCount is the number of spawn categories.
	CategoryCount
)

var categoryNames = [CategoryCount]string{
	Monster:       "monster",
	Creature:      "creature",
	Ambient:       "ambient",
	WaterCreature: "water_creature",
}

func (c EntityCategory) String() string {
	if c < 0 || c >= CategoryCount {
		return "unknown"
	}
	return categoryNames[c]
}

// SpawnEntry is one weighted entry of a spawn list. Kind is the internal
// entity-kind name; translating it to a host entity is an adapter concern.
type SpawnEntry struct {
	Kind   string `validate:"required"`
	Weight int    `validate:"gte=0"`
	Min    int    `validate:"gte=0,ltefield=Max"`
	Max    int    `validate:"gte=0"`
}

// RollCount draws a group size in [Min, Max].
func (e SpawnEntry) RollCount(r rng.Intner) int {
	if e.Max <= e.Min {
		return e.Min
	}
	return e.Min + r.Intn(e.Max-e.Min+1)
}

// PickSpawn selects one entry with probability proportional to its weight.
// It returns false when the list is empty or every weight is zero.
func PickSpawn(entries []SpawnEntry, r rng.Intner) (SpawnEntry, bool) {
	total := 0
	for _, e := range entries {
		total += e.Weight
	}
	if total <= 0 {
		return SpawnEntry{}, false
	}
	n := r.Intn(total)
	for _, e := range entries {
		n -= e.Weight
		if n < 0 {
			return e, true
		}
	}
	return SpawnEntry{}, false
}

// Config holds the tunables of a single biome. Once handed to NewTable it
// is owned by the table and must not be modified.
type Config struct {
	ID   ID     `validate:"gte=0,lt=256"`
	Name string `validate:"required"`

	// Climate point used by the field generator; temperature runs from
	// frozen (0) to scorching (2), wetness from arid (0) to sodden (1).
	Temperature float64 `validate:"gte=0,lte=2"`
	Wetness     float64 `validate:"gte=0,lte=1"`
	Generated   bool    // candidate for climate classification
	Ocean       bool    // chosen where continentalness is low

	MineshaftsEnabled       bool
	MineshaftRarity         float64 `validate:"gte=0,lte=100"`
	NetherFortressesEnabled bool
	NetherFortressRarity    float64 `validate:"gte=0,lte=100"`
	VillagesEnabled         bool
	VillageRarity           float64 `validate:"gte=0,lte=100"`

	Spawns [CategoryCount][]SpawnEntry
}

// SpawnList returns a copy of the spawn entries for category.
func (c *Config) SpawnList(category EntityCategory) []SpawnEntry {
	if category < 0 || category >= CategoryCount {
		return nil
	}
	return append([]SpawnEntry(nil), c.Spawns[category]...)
}
