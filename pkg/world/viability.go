package world

import (
	"fmt"

	"github.com/StoreStation/VibeShitCraft-worldgen/pkg/biome"
	"github.com/StoreStation/VibeShitCraft-worldgen/pkg/rng"
)

func checkExtent(w Window) error {
	if w.Width < 0 || w.Depth < 0 {
		return fmt.Errorf("%w: window %s has a negative extent", ErrInvalidArgument, w)
	}
	return nil
}

// AreViable reports whether every coarse sample in w belongs to allowed.
// An empty window is vacuously viable; unknown ids never are.
func (g *Generator) AreViable(w Window, allowed biome.Set) (bool, error) {
	if err := checkExtent(w); err != nil {
		return false, err
	}
	if w.Empty() {
		return true, nil
	}
	s, err := g.SampleCoarse(w)
	if err != nil {
		return false, err
	}
	for _, id := range s.ids {
		if !allowed.Contains(id) {
			return false, nil
		}
	}
	return true, nil
}

// AreBiomesViable is AreViable for the block square of the given radius
// around (x, z). A negative radius is never viable.
func (g *Generator) AreBiomesViable(x, z, radius int, allowed biome.Set) bool {
	if radius < 0 {
		return false
	}
	ok, err := g.AreViable(CoarseWindowAround(x, z, radius), allowed)
	return err == nil && ok
}

// FindRandomMatch picks a coarse lattice point in w whose biome is in
// allowed, uniformly among all such points, and returns its block
// position. It reports false when nothing matches.
func (g *Generator) FindRandomMatch(w Window, allowed biome.Set, r rng.Intner) (Pos, bool, error) {
	if err := checkExtent(w); err != nil {
		return Pos{}, false, err
	}
	if w.Empty() {
		return Pos{}, false, nil
	}
	s, err := g.SampleCoarse(w)
	if err != nil {
		return Pos{}, false, err
	}
	dx, dz, ok := pickMatch(s, allowed, r)
	if !ok {
		return Pos{}, false, nil
	}
	return Pos{X: (w.X + dx) * CoarseSpacing, Z: (w.Z + dz) * CoarseSpacing}, true, nil
}

// FindBiomePosition is FindRandomMatch for the block square of the given
// radius around (x, z).
func (g *Generator) FindBiomePosition(x, z, radius int, allowed biome.Set, r rng.Intner) (Pos, bool) {
	if radius < 0 {
		return Pos{}, false
	}
	p, ok, err := g.FindRandomMatch(CoarseWindowAround(x, z, radius), allowed, r)
	return p, err == nil && ok
}

// pickMatch is a size-one reservoir over the sample: the i-th match
// replaces the held one with probability 1/i, so every match is equally
// likely whatever the scan order.
func pickMatch(s *RegionSample, allowed biome.Set, r rng.Intner) (dx, dz int, ok bool) {
	width := s.window.Width
	matches := 0
	for idx, id := range s.ids {
		if !allowed.Contains(id) {
			continue
		}
		matches++
		if matches == 1 || r.Intn(matches) == 0 {
			dx, dz, ok = idx%width, idx/width, true
		}
	}
	return dx, dz, ok
}
