package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/StoreStation/VibeShitCraft-worldgen/pkg/biome"
	"github.com/StoreStation/VibeShitCraft-worldgen/pkg/config"
	"github.com/StoreStation/VibeShitCraft-worldgen/pkg/rng"
	"github.com/StoreStation/VibeShitCraft-worldgen/pkg/structure"
	"github.com/StoreStation/VibeShitCraft-worldgen/pkg/worldgen"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	seed := flag.String("seed", "", "World seed, number or text (overrides WORLD_SEED)")
	cacheCapacity := flag.Int("cache", cfg.Biome.CacheCapacity, "Biome sample cache capacity (0 disables)")
	scale := flag.Float64("scale", cfg.Biome.Scale, "Biome noise scale")
	minX := flag.Int("x", -8, "Minimum chunk X of the surveyed area")
	minZ := flag.Int("z", -8, "Minimum chunk Z of the surveyed area")
	width := flag.Int("width", 16, "Surveyed area width in chunks")
	depth := flag.Int("depth", 16, "Surveyed area depth in chunks")
	workers := flag.Int("workers", 0, "Survey goroutines (0 = GOMAXPROCS)")
	locateRadius := flag.Int("locate", 8, "Region radius for locating villages")
	flag.Parse()

	if *seed != "" {
		cfg.World.Seed = config.ParseSeed(*seed)
	}
	cfg.Biome.CacheCapacity = *cacheCapacity
	cfg.Biome.Scale = *scale
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid settings: %v", err)
	}
	log.SetPrefix(cfg.Logging.Prefix)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	w := worldgen.FromConfig(cfg)
	log.Printf("World seed %d | scale %g | cache %d", w.Seed(), cfg.Biome.Scale, cfg.Biome.CacheCapacity)

	area := worldgen.ChunkArea{MinX: int32(*minX), MinZ: int32(*minZ), Width: int32(*width), Depth: int32(*depth)}
	survey, err := w.Survey(ctx, area, *workers)
	if err != nil {
		log.Printf("Survey failed: %v", err)
		os.Exit(1)
	}
	printBiomes(w.Table(), survey)
	for _, s := range survey.Starts {
		log.Printf("%s starts in chunk (%d, %d) at block (%d, %d)", s.Kind, s.ChunkX, s.ChunkZ, s.Position.X, s.Position.Z)
	}

	centerX := (int(area.MinX)*2 + int(area.Width)) * 8
	centerZ := (int(area.MinZ)*2 + int(area.Depth)) * 8
	villages := structure.Village.Enabled(w.Table())
	log.Printf("Village biomes viable at block (%d, %d): %v",
		centerX, centerZ, w.Generator().AreBiomesViable(centerX, centerZ, 16, villages))
	if p, ok := w.Generator().FindBiomePosition(centerX, centerZ, 256, villages, rng.New(w.Seed())); ok {
		log.Printf("Village biome found at block (%d, %d)", p.X, p.Z)
	} else {
		log.Printf("No village biome within 256 blocks of (%d, %d)", centerX, centerZ)
	}
	if s, ok := w.Locate(structure.Village, int32(centerX>>4), int32(centerZ>>4), *locateRadius); ok {
		log.Printf("Nearest village starts in chunk (%d, %d)", s.ChunkX, s.ChunkZ)
	}

	w.Cleanup()
}

func printBiomes(table *biome.Table, s *worldgen.Survey) {
	ids := make([]biome.ID, 0, len(s.Biomes))
	total := 0
	for id, n := range s.Biomes {
		ids = append(ids, id)
		total += n
	}
	sort.Slice(ids, func(i, j int) bool {
		if s.Biomes[ids[i]] != s.Biomes[ids[j]] {
			return s.Biomes[ids[i]] > s.Biomes[ids[j]]
		}
		return ids[i] < ids[j]
	})

	log.Printf("Surveyed %dx%d chunks at (%d, %d):", s.Area.Width, s.Area.Depth, s.Area.MinX, s.Area.MinZ)
	for _, id := range ids {
		name := id.String()
		if c, ok := table.Lookup(id); ok {
			name = c.Name
		}
		log.Printf("  %-14s %6.2f%%", name, 100*float64(s.Biomes[id])/float64(total))
	}
}
