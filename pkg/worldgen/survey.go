package worldgen

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/StoreStation/VibeShitCraft-worldgen/pkg/biome"
	"github.com/StoreStation/VibeShitCraft-worldgen/pkg/world"
)

// ChunkArea is a rectangle of chunks, MinX/MinZ inclusive.
type ChunkArea struct {
	MinX, MinZ   int32
	Width, Depth int32
}

// Survey summarises a chunk area: how many blocks each biome covers and
// which structures start there.
type Survey struct {
	Area   ChunkArea
	Biomes map[biome.ID]int
	Starts []Start
}

// Survey samples every chunk of area at fine resolution and asks every
// oracle about it. Rows are spread over up to workers goroutines (<= 0
// means GOMAXPROCS). The result does not depend on the worker count.
func (w *World) Survey(ctx context.Context, area ChunkArea, workers int) (*Survey, error) {
	if area.Width <= 0 || area.Depth <= 0 {
		return nil, fmt.Errorf("%w: chunk area %dx%d", world.ErrInvalidArgument, area.Width, area.Depth)
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	s := &Survey{Area: area, Biomes: make(map[biome.ID]int)}
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for dz := int32(0); dz < area.Depth; dz++ {
		chunkZ := area.MinZ + dz
		g.Go(func() error {
			counts := make(map[biome.ID]int)
			var starts []Start
			for dx := int32(0); dx < area.Width; dx++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				chunkX := area.MinX + dx
				sample, err := w.gen.SampleFine(world.Window{X: int(chunkX) * 16, Z: int(chunkZ) * 16, Width: 16, Depth: 16})
				if err != nil {
					return err
				}
				for id, n := range sample.Histogram() {
					counts[id] += n
				}
				starts = append(starts, w.StartsInChunk(chunkX, chunkZ)...)
			}

			mu.Lock()
			defer mu.Unlock()
			for id, n := range counts {
				s.Biomes[id] += n
			}
			s.Starts = append(s.Starts, starts...)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(s.Starts, func(i, j int) bool {
		a, b := s.Starts[i], s.Starts[j]
		if a.ChunkZ != b.ChunkZ {
			return a.ChunkZ < b.ChunkZ
		}
		if a.ChunkX != b.ChunkX {
			return a.ChunkX < b.ChunkX
		}
		return a.Kind < b.Kind
	})
	return s, nil
}
