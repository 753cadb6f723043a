// Package world computes the biome field of a seeded world at coarse and
// fine resolution, and answers region queries (viability, random match)
// on top of it.
package world

import (
	"math"

	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"

	"github.com/StoreStation/VibeShitCraft-worldgen/pkg/biome"
	"github.com/StoreStation/VibeShitCraft-worldgen/pkg/rng"
)

// Options tunes the biome field. The zero value is not useful; start from
// DefaultOptions.
type Options struct {
	// Scale converts block coordinates to noise coordinates. Smaller values
	// give larger biomes.
	Scale float64
	// OceanThreshold is the continentalness below which the ocean biome
	// is chosen.
	OceanThreshold float64
	// CacheCapacity bounds the number of cached samples; <= 0 disables
	// the cache.
	CacheCapacity int
}

// DefaultOptions returns the stock field settings.
func DefaultOptions() Options {
	return Options{
		Scale:          0.003,
		OceanThreshold: -0.25,
		CacheCapacity:  1024,
	}
}

const (
	continentScale = 0.5 // continents are twice the size of climate zones
	wetnessOffset  = 500 // decorrelates wetness from temperature
	jitterSpan     = 3.0 // fine-zoom jitter per axis lies in (-1.5, 1.5)
	jitterSalt     = 0x5EED_2001
)

type climate struct {
	id          biome.ID
	temperature float64
	wetness     float64
}

// Generator produces biome ids for one world. Everything it computes is a
// pure function of the seed, the biome table and the queried window; the
// only state that changes after construction is the sample cache.
type Generator struct {
	seed        int64
	opts        Options
	table       *biome.Table
	temperature *perlin.Perlin    // climate temperature
	continent   *perlin.Perlin    // land / ocean split
	wetness     opensimplex.Noise // climate wetness, normalised to [0, 1)
	climates    []climate         // generated biomes in ascending id order
	ocean       biome.ID          // biome.Unknown when the table has none
	cache       *Cache
}

// NewGenerator creates a biome field for seed. The table is borrowed for
// the lifetime of the generator and is only ever read. A nil table acts as
// an empty one: every point is biome.Unknown.
func NewGenerator(seed int64, table *biome.Table, opts Options) *Generator {
	g := &Generator{
		seed:        seed,
		opts:        opts,
		table:       table,
		temperature: perlin.NewPerlin(2, 2, 3, seed+1),
		continent:   perlin.NewPerlin(2, 2, 2, seed+7),
		wetness:     opensimplex.NewNormalized(seed + 2),
		ocean:       biome.Unknown,
		cache:       NewCache(opts.CacheCapacity),
	}
	g.cache.owner = g
	if table == nil {
		return g
	}
	for _, id := range table.IDs() {
		c, _ := table.Lookup(id)
		if c.Ocean && !g.ocean.Valid() {
			g.ocean = id
		}
		if c.Generated {
			g.climates = append(g.climates, climate{id: id, temperature: c.Temperature, wetness: c.Wetness})
		}
	}
	return g
}

// Seed returns the world seed.
func (g *Generator) Seed() int64 { return g.seed }

// Table returns the biome table the generator reads.
func (g *Generator) Table() *biome.Table { return g.table }

// Cache exposes the sample cache, mainly for statistics.
func (g *Generator) Cache() *Cache { return g.cache }

// Cleanup evicts all cached samples. It must not race with queries.
func (g *Generator) Cleanup() int {
	return g.cache.Cleanup()
}

// coarseAt classifies coarse cell (i, j), i.e. block (4i, 4j).
func (g *Generator) coarseAt(i, j int) biome.ID {
	x := float64(i*CoarseSpacing) * g.opts.Scale
	z := float64(j*CoarseSpacing) * g.opts.Scale

	if g.ocean.Valid() {
		c := g.continent.Noise2D(x*continentScale, z*continentScale)
		if c < g.opts.OceanThreshold {
			return g.ocean
		}
	}

	// Temperature noise is roughly -1..1; map it onto the 0..2 climate axis.
	temp := (g.temperature.Noise2D(x, z) + 1) / 2
	if temp < 0 {
		temp = 0
	} else if temp > 1 {
		temp = 1
	}
	temp *= 2
	return g.classify(temp, g.wetnessAt(x, z))
}

// wetnessAt reads the wetness field at noise coordinates (x, z).
func (g *Generator) wetnessAt(x, z float64) float64 {
	return g.wetness.Eval2(x+wetnessOffset, z+wetnessOffset)
}

// SampleWetness returns the wetness in [0, 1) at every point of a coarse
// window, row-major by Z. These are the values the climate classifier
// sees; ocean cells report the wetness of the land they replaced.
func (g *Generator) SampleWetness(w Window) ([]float64, error) {
	if err := w.validate(); err != nil {
		return nil, err
	}
	out := make([]float64, 0, w.Area())
	for dz := 0; dz < w.Depth; dz++ {
		for dx := 0; dx < w.Width; dx++ {
			x := float64((w.X+dx)*CoarseSpacing) * g.opts.Scale
			z := float64((w.Z+dz)*CoarseSpacing) * g.opts.Scale
			out = append(out, g.wetnessAt(x, z))
		}
	}
	return out, nil
}

// classify returns the generated biome whose climate point is nearest to
// (temp, wet). Temperature spans twice the range of wetness, so it is
// halved to weigh both axes equally. Ties keep the lower id.
func (g *Generator) classify(temp, wet float64) biome.ID {
	best := biome.Unknown
	bestDist := math.Inf(1)
	for _, c := range g.climates {
		dt := (c.temperature - temp) / 2
		dw := c.wetness - wet
		if d := dt*dt + dw*dw; d < bestDist {
			best, bestDist = c.id, d
		}
	}
	return best
}

// jitter returns the displacement of coarse cell (i, j)'s centre used by
// the fine zoom.
func (g *Generator) jitter(i, j int) (float64, float64) {
	h := rng.Scramble(g.seed^jitterSalt, i, j)
	jx := (float64(h&0xffff)/0x10000 - 0.5) * jitterSpan
	jz := (float64(h>>16&0xffff)/0x10000 - 0.5) * jitterSpan
	return jx, jz
}

// zoomCell maps block (x, z) to the coarse cell that owns it. Lattice
// points own their own cell. Any other block picks, among the four cells
// around it, the one whose jittered centre is nearest, which gives
// irregular borders without breaking agreement on the lattice.
func (g *Generator) zoomCell(x, z int) (int, int) {
	i0, j0 := x>>2, z>>2
	if x&3 == 0 && z&3 == 0 {
		return i0, j0
	}
	bestI, bestJ := i0, j0
	bestDist := math.Inf(1)
	for dj := 0; dj <= 1; dj++ {
		for di := 0; di <= 1; di++ {
			i, j := i0+di, j0+dj
			jx, jz := g.jitter(i, j)
			dx := float64(i*CoarseSpacing) + jx - float64(x)
			dz := float64(j*CoarseSpacing) + jz - float64(z)
			if d := dx*dx + dz*dz; d < bestDist {
				bestI, bestJ, bestDist = i, j, d
			}
		}
	}
	return bestI, bestJ
}

// BiomeAt returns the fine-resolution biome of block (x, z). It agrees with
// SampleFine and skips the cache.
func (g *Generator) BiomeAt(x, z int) biome.ID {
	i, j := g.zoomCell(x, z)
	return g.coarseAt(i, j)
}

// SampleCoarse returns the biome grid for a coarse window.
func (g *Generator) SampleCoarse(w Window) (*RegionSample, error) {
	if err := w.validate(); err != nil {
		return nil, err
	}
	return g.cache.getOrCompute(w, Coarse, func() *RegionSample {
		return g.computeCoarse(w)
	}), nil
}

// SampleFine returns the biome grid for a window of blocks. At blocks whose
// coordinates are both multiples of 4 it matches SampleCoarse.
func (g *Generator) SampleFine(w Window) (*RegionSample, error) {
	if err := w.validate(); err != nil {
		return nil, err
	}
	return g.cache.getOrCompute(w, Fine, func() *RegionSample {
		return g.computeFine(w)
	}), nil
}

func (g *Generator) computeCoarse(w Window) *RegionSample {
	s := newRegionSample(w, Coarse)
	s.owner = g
	for dz := 0; dz < w.Depth; dz++ {
		for dx := 0; dx < w.Width; dx++ {
			s.ids[dz*w.Width+dx] = g.coarseAt(w.X+dx, w.Z+dz)
		}
	}
	return s
}

func (g *Generator) computeFine(w Window) *RegionSample {
	// Every block's owning cell is its floor cell or the next one along
	// each axis, so one coarse window with a one-cell margin covers them all.
	cw := Window{X: w.X >> 2, Z: w.Z >> 2}
	cw.Width = (w.X+w.Width-1)>>2 - cw.X + 2
	cw.Depth = (w.Z+w.Depth-1)>>2 - cw.Z + 2
	coarse, _ := g.SampleCoarse(cw) // cw always has a positive extent

	s := newRegionSample(w, Fine)
	s.owner = g
	for dz := 0; dz < w.Depth; dz++ {
		for dx := 0; dx < w.Width; dx++ {
			i, j := g.zoomCell(w.X+dx, w.Z+dz)
			s.ids[dz*w.Width+dx] = coarse.Cell(i, j)
		}
	}
	return s
}
