package structure

import (
	"fmt"
	"strings"

	"github.com/StoreStation/VibeShitCraft-worldgen/pkg/biome"
)

// Kind selects which structure an Oracle places. Kinds differ only in how
// the placement stream is seeded, which gates run and which biome settings
// are consulted.
type Kind int

const (
	Mineshaft Kind = iota
	NetherFortress
	Village
)

// Kinds lists every structure kind in declaration order.
var Kinds = []Kind{Mineshaft, NetherFortress, Village}

var kindNames = map[Kind]string{
	Mineshaft:      "mineshaft",
	NetherFortress: "nether_fortress",
	Village:        "village",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ParseKind resolves a kind from its String form, ignoring case.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown structure kind %q", s)
}

// Region grid shifts: a fortress region is 16x16 chunks, a village region
// 32x32.
const (
	fortressRegionShift = 4
	villageRegionShift  = 5

	villageSpacing    = 1 << villageRegionShift
	villageSeparation = 8
	villageSalt       = 10387312
)

// RegionShift reports the chunk-to-region shift for kinds placed on a
// region grid.
func (k Kind) RegionShift() (int, bool) {
	switch k {
	case NetherFortress:
		return fortressRegionShift, true
	case Village:
		return villageRegionShift, true
	}
	return 0, false
}

// settings returns whether the kind is enabled for a biome and its rarity
// percentage.
func (k Kind) settings(c *biome.Config) (bool, float64) {
	switch k {
	case Mineshaft:
		return c.MineshaftsEnabled, c.MineshaftRarity
	case NetherFortress:
		return c.NetherFortressesEnabled, c.NetherFortressRarity
	case Village:
		return c.VillagesEnabled, c.VillageRarity
	}
	return false, 0
}

// Enabled returns the set of biomes in t that allow the kind at all.
func (k Kind) Enabled(t *biome.Table) biome.Set {
	return t.Select(func(c *biome.Config) bool {
		ok, _ := k.settings(c)
		return ok
	})
}

var fortressSpawns = []biome.SpawnEntry{
	{Kind: "Blaze", Weight: 10, Min: 2, Max: 3},
	{Kind: "PigZombie", Weight: 5, Min: 4, Max: 4},
	{Kind: "Skeleton", Weight: 10, Min: 4, Max: 4},
	{Kind: "LavaSlime", Weight: 3, Min: 4, Max: 4},
}

// SpawnList returns the monster list that replaces the biome's own inside
// the structure, or nil when the kind does not override spawns.
func (k Kind) SpawnList() []biome.SpawnEntry {
	if k == NetherFortress {
		return append([]biome.SpawnEntry(nil), fortressSpawns...)
	}
	return nil
}
