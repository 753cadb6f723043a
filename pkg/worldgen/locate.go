package worldgen

import (
	"github.com/StoreStation/VibeShitCraft-worldgen/pkg/structure"
)

// Locate searches region rings around chunk (chunkX, chunkZ), out to
// radius regions, for a structure of the given kind. It returns the start
// closest to the chunk among the first ring holding one and the ring after
// it. Only region kinds can be located; mineshafts report false.
func (w *World) Locate(kind structure.Kind, chunkX, chunkZ int32, radius int) (Start, bool) {
	o := w.Oracle(kind)
	if o == nil || radius < 0 {
		return Start{}, false
	}
	shift, ok := kind.RegionShift()
	if !ok {
		return Start{}, false
	}
	originX, originZ := chunkX>>shift, chunkZ>>shift

	var best Start
	bestDist := int64(-1)
	lastRing := radius
	for ring := 0; ring <= lastRing; ring++ {
		for dx := -ring; dx <= ring; dx++ {
			for dz := -ring; dz <= ring; dz++ {
				if abs(dx) != ring && abs(dz) != ring {
					continue
				}
				cx, cz, ok := o.Candidate(originX+int32(dx), originZ+int32(dz))
				if !ok {
					continue
				}
				d := o.Decide(cx, cz)
				if !d.Eligible {
					continue
				}
				ddx, ddz := int64(cx-chunkX), int64(cz-chunkZ)
				if dist := ddx*ddx + ddz*ddz; bestDist < 0 || dist < bestDist {
					if bestDist < 0 && ring < lastRing {
						lastRing = ring + 1
					}
					best = Start{Kind: kind, ChunkX: cx, ChunkZ: cz, Position: d.Position}
					bestDist = dist
				}
			}
		}
	}
	return best, bestDist >= 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
