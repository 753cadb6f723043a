package rng

// Mix combines a world seed with a pair of region coordinates into a stream
// seed. The xor and shift happen in 32-bit arithmetic before widening, which
// is what the host game does for region-gridded structures.
func Mix(worldSeed int64, a, b int32) int64 {
	return int64(a^(b<<4)) ^ worldSeed
}

// villageMulX and villageMulZ are the coordinate multipliers used for
// spaced region grids.
const (
	villageMulX = 341873128712
	villageMulZ = 132897987541
)

// MixSalted combines a world seed, region coordinates and a per-structure
// salt. Distinct salts keep structure kinds that share a region grid from
// drawing identical streams.
func MixSalted(worldSeed int64, a, b int32, salt int64) int64 {
	return int64(a)*villageMulX + int64(b)*villageMulZ + worldSeed + salt
}

// ChunkMixer derives per-chunk stream seeds the way the host's structure
// pass does: two multipliers are drawn once from a stream seeded with the
// world seed, then every chunk gets x*l ^ z*m ^ seed.
type ChunkMixer struct {
	worldSeed int64
	xMul      int64
	zMul      int64
}

// NewChunkMixer draws the chunk multipliers for worldSeed.
func NewChunkMixer(worldSeed int64) ChunkMixer {
	r := New(worldSeed)
	l := r.NextLong()
	m := r.NextLong()
	return ChunkMixer{worldSeed: worldSeed, xMul: l, zMul: m}
}

// Mix returns the stream seed for chunk (x, z).
func (c ChunkMixer) Mix(x, z int32) int64 {
	return int64(x)*c.xMul ^ int64(z)*c.zMul ^ c.worldSeed
}

// Scramble hashes a seed and an integer coordinate pair into 64
// well-mixed bits (splitmix64 finaliser). Used where a value is needed per
// lattice point without creating a stream.
func Scramble(seed int64, x, z int) uint64 {
	const k1 = 0xbf58476d1ce4e5b9 // splitmix64 step 1
	const k2 = 0x94d049bb133111eb // splitmix64 step 2
	h := uint64(seed) ^ uint64(int64(x))*k1 ^ uint64(int64(z))*0x6c8e9cf570932bd5
	h ^= h >> 30
	h *= k1
	h ^= h >> 27
	h *= k2
	h ^= h >> 31
	return h
}
