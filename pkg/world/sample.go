package world

import "github.com/StoreStation/VibeShitCraft-worldgen/pkg/biome"

// RegionSample is a grid of biome ids covering exactly one window at one
// resolution, stored row-major by Z. Samples are immutable once built, so
// the cache can hand the same value to any number of readers.
type RegionSample struct {
	window Window
	res    Resolution
	ids    []biome.ID
	owner  *Generator // nil for samples built outside a generator
}

func newRegionSample(w Window, res Resolution) *RegionSample {
	return &RegionSample{window: w, res: res, ids: make([]biome.ID, w.Area())}
}

// Window returns the window the sample was computed for.
func (s *RegionSample) Window() Window { return s.window }

// Resolution returns the lattice the sample was computed at.
func (s *RegionSample) Resolution() Resolution { return s.res }

// At returns the biome at local offset (dx, dz) from the window corner, or
// biome.Unknown outside the window.
func (s *RegionSample) At(dx, dz int) biome.ID {
	if dx < 0 || dz < 0 || dx >= s.window.Width || dz >= s.window.Depth {
		return biome.Unknown
	}
	return s.ids[dz*s.window.Width+dx]
}

// Cell returns the biome at lattice point (x, z), or biome.Unknown outside
// the window.
func (s *RegionSample) Cell(x, z int) biome.ID {
	return s.At(x-s.window.X, z-s.window.Z)
}

// IDs returns a copy of the grid in row-major order.
func (s *RegionSample) IDs() []biome.ID {
	return append([]biome.ID(nil), s.ids...)
}

// Histogram counts how many points hold each biome.
func (s *RegionSample) Histogram() map[biome.ID]int {
	counts := make(map[biome.ID]int)
	for _, id := range s.ids {
		counts[id]++
	}
	return counts
}

// Equal reports whether two samples cover the same window at the same
// resolution with identical values.
func (s *RegionSample) Equal(o *RegionSample) bool {
	if s == nil || o == nil {
		return s == o
	}
	if s.window != o.window || s.res != o.res || len(s.ids) != len(o.ids) {
		return false
	}
	for i := range s.ids {
		if s.ids[i] != o.ids[i] {
			return false
		}
	}
	return true
}
