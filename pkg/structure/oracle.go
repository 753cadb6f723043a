// Package structure decides where rare structures start. Every decision is
// a pure function of the world seed, the chunk and the biome field, so
// chunks generated in any order or on any worker agree with each other.
package structure

import (
	"github.com/StoreStation/VibeShitCraft-worldgen/pkg/biome"
	"github.com/StoreStation/VibeShitCraft-worldgen/pkg/rng"
	"github.com/StoreStation/VibeShitCraft-worldgen/pkg/world"
)

// Field is the part of the biome generator the oracle reads.
// *world.Generator implements it.
type Field interface {
	BiomeAt(x, z int) biome.ID
	AreBiomesViable(x, z, radius int, allowed biome.Set) bool
}

// Decision is the outcome of one placement query. Position is the block at
// the centre of the chunk and is only meaningful when Eligible is set.
type Decision struct {
	Eligible bool
	Position world.Pos
}

// Oracle decides structure starts of one kind for one world.
type Oracle struct {
	kind          Kind
	seed          int64
	table         *biome.Table
	field         Field
	chunks        rng.ChunkMixer
	villageBiomes biome.Set
}

// NewOracle creates an oracle for kind. The table and field are only read.
func NewOracle(kind Kind, seed int64, table *biome.Table, field Field) *Oracle {
	o := &Oracle{
		kind:  kind,
		seed:  seed,
		table: table,
		field: field,
	}
	switch kind {
	case Mineshaft:
		o.chunks = rng.NewChunkMixer(seed)
	case Village:
		o.villageBiomes = Village.Enabled(table)
	}
	return o
}

// Kind returns the structure kind this oracle places.
func (o *Oracle) Kind() Kind { return o.kind }

// Decide reports whether a structure of the oracle's kind starts in chunk
// (chunkX, chunkZ). The draws from the placement stream happen in a fixed
// order and count; changing either moves every structure in existing
// worlds.
func (o *Oracle) Decide(chunkX, chunkZ int32) Decision {
	r := o.stream(chunkX, chunkZ)
	if r == nil {
		return Decision{}
	}

	switch o.kind {
	case NetherFortress:
		if r.NextIntn(3) != 0 {
			return Decision{}
		}
		fallthrough
	case Village:
		cx, cz := o.candidate(r, chunkX, chunkZ)
		if cx != chunkX || cz != chunkZ {
			return Decision{}
		}
	case Mineshaft:
		if int64(r.NextIntn(80)) >= distance(chunkX, chunkZ) {
			return Decision{}
		}
	}

	x, z := int(chunkX)*16+8, int(chunkZ)*16+8
	cfg, ok := o.table.Lookup(o.field.BiomeAt(x, z))
	if !ok {
		return Decision{}
	}
	enabled, rarity := o.kind.settings(cfg)
	if !enabled {
		return Decision{}
	}
	if o.kind == Village && !o.field.AreBiomesViable(x, z, 0, o.villageBiomes) {
		return Decision{}
	}
	if r.NextDouble()*100 >= rarity {
		return Decision{}
	}
	return Decision{Eligible: true, Position: world.Pos{X: x, Z: z}}
}

// Candidate returns the single chunk of region (regionX, regionZ) that may
// hold a structure, and false when the region holds none. Only region
// kinds have candidates; the biome and rarity checks still apply, so
// Decide on the returned chunk may reject it.
func (o *Oracle) Candidate(regionX, regionZ int32) (chunkX, chunkZ int32, ok bool) {
	shift, grid := o.kind.RegionShift()
	if !grid {
		return 0, 0, false
	}
	rx, rz := regionX<<shift, regionZ<<shift
	r := o.stream(rx, rz)
	if o.kind == NetherFortress && r.NextIntn(3) != 0 {
		return 0, 0, false
	}
	chunkX, chunkZ = o.candidate(r, rx, rz)
	return chunkX, chunkZ, true
}

// stream seeds the placement stream for a chunk.
func (o *Oracle) stream(chunkX, chunkZ int32) *rng.Random {
	switch o.kind {
	case Mineshaft:
		r := rng.New(o.chunks.Mix(chunkX, chunkZ))
		r.NextInt()
		return r
	case NetherFortress:
		r := rng.New(rng.Mix(o.seed, chunkX>>fortressRegionShift, chunkZ>>fortressRegionShift))
		r.NextInt()
		return r
	case Village:
		return rng.New(rng.MixSalted(o.seed, chunkX>>villageRegionShift, chunkZ>>villageRegionShift, villageSalt))
	}
	return nil
}

// candidate draws the candidate chunk of the region containing
// (chunkX, chunkZ), x offset first.
func (o *Oracle) candidate(r *rng.Random, chunkX, chunkZ int32) (int32, int32) {
	shift, _ := o.kind.RegionShift()
	baseX := chunkX >> shift << shift
	baseZ := chunkZ >> shift << shift
	if o.kind == Village {
		n := int32(villageSpacing - villageSeparation)
		return baseX + r.NextIntn(n), baseZ + r.NextIntn(n)
	}
	return baseX + 4 + r.NextIntn(8), baseZ + 4 + r.NextIntn(8)
}

func distance(chunkX, chunkZ int32) int64 {
	x, z := int64(chunkX), int64(chunkZ)
	if x < 0 {
		x = -x
	}
	if z < 0 {
		z = -z
	}
	if x > z {
		return x
	}
	return z
}
