package biome

// Ids of the default overworld and nether biomes.
const (
	Ocean        ID = 0
	Plains       ID = 1
	Desert       ID = 2
	ExtremeHills ID = 3
	Forest       ID = 4
	Taiga        ID = 5
	Swampland    ID = 6
	River        ID = 7
	Hell         ID = 8
	SnowyTundra  ID = 12
	Jungle       ID = 21
	DarkForest   ID = 29
	Savanna      ID = 35
)

// Shared spawn lists.
var (
	defaultMonsters = []SpawnEntry{
		{Kind: "Spider", Weight: 100, Min: 4, Max: 4},
		{Kind: "Zombie", Weight: 100, Min: 4, Max: 4},
		{Kind: "Skeleton", Weight: 100, Min: 4, Max: 4},
		{Kind: "Creeper", Weight: 100, Min: 4, Max: 4},
		{Kind: "Slime", Weight: 100, Min: 4, Max: 4},
		{Kind: "Enderman", Weight: 10, Min: 1, Max: 4},
		{Kind: "Witch", Weight: 5, Min: 1, Max: 1},
	}
	defaultCreatures = []SpawnEntry{
		{Kind: "Sheep", Weight: 12, Min: 4, Max: 4},
		{Kind: "Pig", Weight: 10, Min: 4, Max: 4},
		{Kind: "Chicken", Weight: 10, Min: 4, Max: 4},
		{Kind: "Cow", Weight: 8, Min: 4, Max: 4},
	}
	defaultAmbient = []SpawnEntry{
		{Kind: "Bat", Weight: 10, Min: 8, Max: 8},
	}
	defaultWater = []SpawnEntry{
		{Kind: "Squid", Weight: 10, Min: 4, Max: 4},
	}
)

func overworld(id ID, name string, temp, wet float64) Config {
	return Config{
		ID: id, Name: name,
		Temperature: temp, Wetness: wet,
		Generated:         true,
		MineshaftsEnabled: true, MineshaftRarity: 1,
		NetherFortressRarity: 100,
		VillageRarity:        100,
		Spawns: [CategoryCount][]SpawnEntry{
			Monster:       withEntry(defaultMonsters),
			Creature:      withEntry(defaultCreatures),
			Ambient:       withEntry(defaultAmbient),
			WaterCreature: withEntry(defaultWater),
		},
	}
}

// DefaultConfigs returns the stock biome configs. The result is a fresh
// slice each call so callers may tweak it before building a Table.
func DefaultConfigs() []Config {
	ocean := overworld(Ocean, "Ocean", 0.5, 0.5)
	ocean.Generated = false
	ocean.Ocean = true
	ocean.Spawns[Creature] = nil

	plains := overworld(Plains, "Plains", 0.8, 0.4)
	plains.VillagesEnabled = true
	plains.Spawns[Creature] = withEntry(plains.Spawns[Creature], SpawnEntry{Kind: "EntityHorse", Weight: 5, Min: 2, Max: 6})

	desert := overworld(Desert, "Desert", 2.0, 0.0)
	desert.VillagesEnabled = true
	desert.Spawns[Creature] = []SpawnEntry{{Kind: "Rabbit", Weight: 4, Min: 2, Max: 3}}

	forest := overworld(Forest, "Forest", 0.7, 0.7)
	forest.Spawns[Creature] = withEntry(forest.Spawns[Creature], SpawnEntry{Kind: "Wolf", Weight: 5, Min: 4, Max: 4})

	taiga := overworld(Taiga, "Taiga", 0.25, 0.8)
	taiga.Spawns[Creature] = withEntry(taiga.Spawns[Creature],
		SpawnEntry{Kind: "Wolf", Weight: 8, Min: 4, Max: 4},
		SpawnEntry{Kind: "Rabbit", Weight: 4, Min: 2, Max: 3})

	swamp := overworld(Swampland, "Swampland", 0.8, 0.9)

	river := overworld(River, "River", 0.5, 0.5)
	river.Generated = false
	river.Spawns[Creature] = nil

	hell := Config{
		ID: Hell, Name: "Hell",
		Temperature: 2.0, Wetness: 0.0,
		NetherFortressesEnabled: true, NetherFortressRarity: 100,
		Spawns: [CategoryCount][]SpawnEntry{
			Monster: {
				{Kind: "Ghast", Weight: 50, Min: 4, Max: 4},
				{Kind: "PigZombie", Weight: 100, Min: 4, Max: 4},
				{Kind: "LavaSlime", Weight: 1, Min: 4, Max: 4},
			},
			Ambient: withEntry(defaultAmbient),
		},
	}

	tundra := overworld(SnowyTundra, "Snowy Tundra", 0.0, 0.5)
	tundra.Spawns[Creature] = []SpawnEntry{{Kind: "Rabbit", Weight: 10, Min: 2, Max: 3}}

	jungle := overworld(Jungle, "Jungle", 1.2, 0.9)
	jungle.Spawns[Monster] = withEntry(jungle.Spawns[Monster], SpawnEntry{Kind: "Ozelot", Weight: 2, Min: 1, Max: 1})
	jungle.Spawns[Creature] = withEntry(jungle.Spawns[Creature], SpawnEntry{Kind: "Chicken", Weight: 10, Min: 4, Max: 4})

	darkForest := overworld(DarkForest, "Dark Forest", 0.6, 1.0)

	savanna := overworld(Savanna, "Savanna", 1.2, 0.0)
	savanna.VillagesEnabled = true
	savanna.Spawns[Creature] = withEntry(savanna.Spawns[Creature], SpawnEntry{Kind: "EntityHorse", Weight: 1, Min: 2, Max: 6})

	return []Config{
		ocean, plains, desert,
		overworld(ExtremeHills, "Extreme Hills", 0.2, 0.3),
		forest, taiga, swamp, river, hell, tundra, jungle, darkForest, savanna,
	}
}

// withEntry appends to a copy so shared default lists stay untouched.
func withEntry(list []SpawnEntry, extra ...SpawnEntry) []SpawnEntry {
	out := make([]SpawnEntry, 0, len(list)+len(extra))
	out = append(out, list...)
	return append(out, extra...)
}

// DefaultTable builds a Table from DefaultConfigs.
func DefaultTable() *Table {
	t, err := NewTable(DefaultConfigs())
	if err != nil {
		panic("biome: default configs are invalid: " + err.Error())
	}
	return t
}
