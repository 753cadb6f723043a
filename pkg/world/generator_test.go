package world

import (
	"errors"
	"testing"

	"github.com/StoreStation/VibeShitCraft-worldgen/pkg/biome"
)

func newTestGenerator(seed int64) *Generator {
	return NewGenerator(seed, biome.DefaultTable(), DefaultOptions())
}

func TestSampleDeterminism(t *testing.T) {
	g1 := newTestGenerator(12345)
	g2 := newTestGenerator(12345)

	windows := []Window{
		{X: 0, Z: 0, Width: 16, Depth: 16},
		{X: -37, Z: 91, Width: 5, Depth: 9},
		{X: 1000, Z: -1000, Width: 1, Depth: 1},
	}
	for _, w := range windows {
		c1, err := g1.SampleCoarse(w)
		if err != nil {
			t.Fatalf("SampleCoarse(%v) failed: %v", w, err)
		}
		c2, _ := g2.SampleCoarse(w)
		if !c1.Equal(c2) {
			t.Errorf("SampleCoarse(%v) differs between generators with the same seed", w)
		}

		f1, err := g1.SampleFine(w)
		if err != nil {
			t.Fatalf("SampleFine(%v) failed: %v", w, err)
		}
		f2, _ := g2.SampleFine(w)
		if !f1.Equal(f2) {
			t.Errorf("SampleFine(%v) differs between generators with the same seed", w)
		}
	}
}

func TestSampleDimensions(t *testing.T) {
	g := newTestGenerator(1)
	w := Window{X: -3, Z: 5, Width: 7, Depth: 2}
	for _, res := range []Resolution{Coarse, Fine} {
		var s *RegionSample
		var err error
		if res == Coarse {
			s, err = g.SampleCoarse(w)
		} else {
			s, err = g.SampleFine(w)
		}
		if err != nil {
			t.Fatalf("%v sample failed: %v", res, err)
		}
		if s.Window() != w || s.Resolution() != res {
			t.Errorf("%v sample reports window %v / %v", res, s.Window(), s.Resolution())
		}
		if len(s.IDs()) != w.Width*w.Depth {
			t.Errorf("%v sample has %d ids, want %d", res, len(s.IDs()), w.Width*w.Depth)
		}
		if s.At(w.Width, 0) != biome.Unknown || s.At(0, -1) != biome.Unknown {
			t.Errorf("%v sample returned a biome outside its window", res)
		}
	}
}

func TestInvalidWindow(t *testing.T) {
	g := newTestGenerator(1)
	bad := []Window{
		{Width: 0, Depth: 4},
		{Width: 4, Depth: 0},
		{Width: -1, Depth: 4},
		{Width: 4, Depth: -8},
	}
	for _, w := range bad {
		if _, err := g.SampleCoarse(w); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("SampleCoarse(%v) error = %v, want ErrInvalidArgument", w, err)
		}
		if _, err := g.SampleFine(w); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("SampleFine(%v) error = %v, want ErrInvalidArgument", w, err)
		}
	}
	if g.Cache().Len() != 0 {
		t.Errorf("invalid windows left %d cache entries", g.Cache().Len())
	}
}

func TestResolutionConsistency(t *testing.T) {
	g := newTestGenerator(777)

	coarseWindows := []Window{
		{X: 0, Z: 0, Width: 8, Depth: 8},
		{X: -20, Z: 13, Width: 12, Depth: 5},
		{X: 250, Z: -250, Width: 3, Depth: 9},
	}
	for _, cw := range coarseWindows {
		coarse, err := g.SampleCoarse(cw)
		if err != nil {
			t.Fatal(err)
		}
		fw := Window{X: cw.X * 4, Z: cw.Z * 4, Width: cw.Width * 4, Depth: cw.Depth * 4}
		fine, err := g.SampleFine(fw)
		if err != nil {
			t.Fatal(err)
		}
		for dz := 0; dz < cw.Depth; dz++ {
			for dx := 0; dx < cw.Width; dx++ {
				want := coarse.At(dx, dz)
				if got := fine.At(dx*4, dz*4); got != want {
					t.Errorf("lattice point (%d, %d): fine = %d, coarse = %d",
						(cw.X+dx)*4, (cw.Z+dz)*4, got, want)
				}
			}
		}
	}
}

func TestUnalignedFineWindowAgreesOnLattice(t *testing.T) {
	g := newTestGenerator(31337)
	fw := Window{X: -13, Z: 6, Width: 23, Depth: 17}
	fine, err := g.SampleFine(fw)
	if err != nil {
		t.Fatal(err)
	}
	for z := fw.Z; z < fw.Z+fw.Depth; z++ {
		for x := fw.X; x < fw.X+fw.Width; x++ {
			if x&3 != 0 || z&3 != 0 {
				continue
			}
			coarse, _ := g.SampleCoarse(Window{X: x >> 2, Z: z >> 2, Width: 1, Depth: 1})
			if fine.Cell(x, z) != coarse.At(0, 0) {
				t.Errorf("block (%d, %d): fine = %d, coarse = %d", x, z, fine.Cell(x, z), coarse.At(0, 0))
			}
		}
	}
}

func TestFineBiomeComesFromSurroundingCells(t *testing.T) {
	g := newTestGenerator(4242)
	fw := Window{X: 100, Z: -60, Width: 32, Depth: 32}
	fine, _ := g.SampleFine(fw)
	for z := fw.Z; z < fw.Z+fw.Depth; z++ {
		for x := fw.X; x < fw.X+fw.Width; x++ {
			got := fine.Cell(x, z)
			around, _ := g.SampleCoarse(Window{X: x >> 2, Z: z >> 2, Width: 2, Depth: 2})
			found := false
			for _, id := range around.IDs() {
				if id == got {
					found = true
				}
			}
			if !found {
				t.Fatalf("block (%d, %d) has biome %d not present in its surrounding cells %v", x, z, got, around.IDs())
			}
		}
	}
}

func TestBiomeAtMatchesSampleFine(t *testing.T) {
	g := newTestGenerator(99)
	fw := Window{X: -40, Z: -40, Width: 80, Depth: 80}
	fine, _ := g.SampleFine(fw)
	for z := fw.Z; z < fw.Z+fw.Depth; z += 3 {
		for x := fw.X; x < fw.X+fw.Width; x += 5 {
			if got, want := g.BiomeAt(x, z), fine.Cell(x, z); got != want {
				t.Errorf("BiomeAt(%d, %d) = %d, SampleFine = %d", x, z, got, want)
			}
		}
	}
}

func TestGeneratedBiomesVary(t *testing.T) {
	g := newTestGenerator(42)
	found := make(map[biome.ID]bool)
	for x := -8000; x < 8000; x += 64 {
		for z := -8000; z < 8000; z += 64 {
			found[g.BiomeAt(x, z)] = true
		}
	}
	if len(found) < 4 {
		t.Errorf("only found %d distinct biomes in a 16000x16000 area, want >= 4: %v", len(found), found)
	}
	if found[biome.Unknown] {
		t.Error("default table produced unknown biomes")
	}
	if found[biome.Hell] || found[biome.River] {
		t.Error("biomes outside climate classification were generated")
	}
}

func TestDifferentSeedsVary(t *testing.T) {
	w := Window{X: 0, Z: 0, Width: 64, Depth: 64}
	a, _ := newTestGenerator(1).SampleCoarse(w)
	b, _ := newTestGenerator(2).SampleCoarse(w)
	if a.Equal(b) {
		t.Error("different seeds produced identical biome grids")
	}
}

func TestEmptyClimateListYieldsUnknown(t *testing.T) {
	table, err := biome.NewTable([]biome.Config{
		{ID: biome.River, Name: "River", Temperature: 0.5, Wetness: 0.5},
	})
	if err != nil {
		t.Fatal(err)
	}
	g := NewGenerator(5, table, DefaultOptions())
	s, _ := g.SampleCoarse(Window{Width: 4, Depth: 4})
	for _, id := range s.IDs() {
		if id != biome.Unknown {
			t.Fatalf("sample holds %d, want only unknown ids", id)
		}
	}
}

func TestClassifyPrefersNearestClimate(t *testing.T) {
	g := newTestGenerator(1)
	tests := []struct {
		temp, wet float64
		want      biome.ID
	}{
		{2.0, 0.0, biome.Desert},
		{0.0, 0.5, biome.SnowyTundra},
		{0.8, 0.4, biome.Plains},
		{0.8, 0.9, biome.Swampland},
		{1.2, 0.9, biome.Jungle},
	}
	for _, tt := range tests {
		if got := g.classify(tt.temp, tt.wet); got != tt.want {
			t.Errorf("classify(%.1f, %.1f) = %d, want %d", tt.temp, tt.wet, got, tt.want)
		}
	}
}

func TestCoarseWindowAround(t *testing.T) {
	tests := []struct {
		x, z, radius int
		want         Window
	}{
		{8, 8, 0, Window{X: 2, Z: 2, Width: 1, Depth: 1}},
		{0, 0, 16, Window{X: -4, Z: -4, Width: 9, Depth: 9}},
		{-1, -1, 0, Window{X: -1, Z: -1, Width: 1, Depth: 1}},
		{5, 10, 3, Window{X: 0, Z: 1, Width: 3, Depth: 3}},
	}
	for _, tt := range tests {
		if got := CoarseWindowAround(tt.x, tt.z, tt.radius); got != tt.want {
			t.Errorf("CoarseWindowAround(%d, %d, %d) = %v, want %v", tt.x, tt.z, tt.radius, got, tt.want)
		}
	}
}

func TestNilTableYieldsUnknown(t *testing.T) {
	g := NewGenerator(3, nil, DefaultOptions())
	s, err := g.SampleFine(Window{X: -5, Z: 5, Width: 6, Depth: 6})
	if err != nil {
		t.Fatal(err)
	}
	for _, id := range s.IDs() {
		if id != biome.Unknown {
			t.Fatalf("nil table produced biome %d", id)
		}
	}
	if g.AreBiomesViable(0, 0, 8, biome.NewSet(biome.Plains)) {
		t.Error("nil table reported a viable window")
	}
}

func TestSampleWetness(t *testing.T) {
	g := newTestGenerator(12345)
	w := Window{X: -10, Z: 20, Width: 7, Depth: 5}

	wet, err := g.SampleWetness(w)
	if err != nil {
		t.Fatalf("SampleWetness(%v) failed: %v", w, err)
	}
	if len(wet) != w.Area() {
		t.Fatalf("got %d values, want %d", len(wet), w.Area())
	}
	again, _ := newTestGenerator(12345).SampleWetness(w)
	distinct := make(map[float64]bool)
	for i, v := range wet {
		if v < 0 || v >= 1 {
			t.Errorf("wetness[%d] = %g, outside [0, 1)", i, v)
		}
		if again[i] != v {
			t.Errorf("wetness[%d] differs between generators with the same seed", i)
		}
		distinct[v] = true
	}
	if len(distinct) < 2 {
		t.Error("wetness is constant across the window")
	}

	// A single-cell window reads the same point as the larger grid.
	one, _ := g.SampleWetness(Window{X: w.X + 3, Z: w.Z + 2, Width: 1, Depth: 1})
	if one[0] != wet[2*w.Width+3] {
		t.Errorf("single-cell wetness %g, grid value %g", one[0], wet[2*w.Width+3])
	}

	if _, err := g.SampleWetness(Window{Width: 0, Depth: 1}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("empty window error = %v, want ErrInvalidArgument", err)
	}
}
