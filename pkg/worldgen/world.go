// Package worldgen ties a seed and a biome table into one queryable world:
// a biome field with its cache, and one structure oracle per kind.
package worldgen

import (
	"log"

	"github.com/StoreStation/VibeShitCraft-worldgen/pkg/biome"
	"github.com/StoreStation/VibeShitCraft-worldgen/pkg/config"
	"github.com/StoreStation/VibeShitCraft-worldgen/pkg/structure"
	"github.com/StoreStation/VibeShitCraft-worldgen/pkg/world"
)

// World is safe for concurrent queries. Cleanup is the exception and must
// only run while no query is in flight.
type World struct {
	gen     *world.Generator
	oracles []*structure.Oracle // indexed by structure.Kind
}

// New creates a world for seed using table for every biome decision.
func New(seed int64, table *biome.Table, opts world.Options) *World {
	w := &World{gen: world.NewGenerator(seed, table, opts)}
	for _, kind := range structure.Kinds {
		w.oracles = append(w.oracles, structure.NewOracle(kind, seed, table, w.gen))
	}
	return w
}

// FromConfig creates a world with the default biome table and the field
// settings from cfg.
func FromConfig(cfg *config.Config) *World {
	opts := world.Options{
		Scale:          cfg.Biome.Scale,
		OceanThreshold: cfg.Biome.OceanThreshold,
		CacheCapacity:  cfg.Biome.CacheCapacity,
	}
	return New(cfg.World.Seed, biome.DefaultTable(), opts)
}

// Seed returns the world seed.
func (w *World) Seed() int64 { return w.gen.Seed() }

// Table returns the biome table.
func (w *World) Table() *biome.Table { return w.gen.Table() }

// Generator returns the biome field.
func (w *World) Generator() *world.Generator { return w.gen }

// Oracle returns the placement oracle for kind, or nil for an unknown kind.
func (w *World) Oracle(kind structure.Kind) *structure.Oracle {
	if int(kind) < 0 || int(kind) >= len(w.oracles) {
		return nil
	}
	return w.oracles[kind]
}

// Decide asks the oracle for kind about chunk (chunkX, chunkZ).
func (w *World) Decide(kind structure.Kind, chunkX, chunkZ int32) structure.Decision {
	o := w.Oracle(kind)
	if o == nil {
		return structure.Decision{}
	}
	return o.Decide(chunkX, chunkZ)
}

// Start is a structure start found in a chunk.
type Start struct {
	Kind           structure.Kind
	ChunkX, ChunkZ int32
	Position       world.Pos
}

// StartsInChunk returns every structure that starts in chunk
// (chunkX, chunkZ), in kind order.
func (w *World) StartsInChunk(chunkX, chunkZ int32) []Start {
	var starts []Start
	for _, o := range w.oracles {
		if d := o.Decide(chunkX, chunkZ); d.Eligible {
			starts = append(starts, Start{Kind: o.Kind(), ChunkX: chunkX, ChunkZ: chunkZ, Position: d.Position})
		}
	}
	return starts
}

// Cleanup drops every cached biome sample. Call it between generation
// passes, never concurrently with queries.
func (w *World) Cleanup() {
	st := w.gen.Cache().Stats()
	n := w.gen.Cleanup()
	log.Printf("Evicted %d cached biome samples (%d hits, %d misses)", n, st.Hits, st.Misses)
}
