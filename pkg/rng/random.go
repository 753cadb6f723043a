package rng

import "math"

// Random is a 48-bit linear congruential generator that yields the same
// sequence as java.util.Random for the same seed. Worlds generated by the
// host game depend on the exact order and count of draws, so every
// method here mirrors its Java counterpart bit for bit.
//
// A Random is a stream, not a shared service: create one per decision and
// do not use it from more than one goroutine.
type Random struct {
	seed int64
}

const (
	multiplier = 0x5DEECE66D
	addend     = 0xB
	mask       = 1<<48 - 1
)

// New creates a stream seeded with seed.
func New(seed int64) *Random {
	r := &Random{}
	r.SetSeed(seed)
	return r
}

// SetSeed resets the stream as if it had just been created with seed.
func (r *Random) SetSeed(seed int64) {
	r.seed = (seed ^ multiplier) & mask
}

func (r *Random) next(bits uint) int32 {
	r.seed = (r.seed*multiplier + addend) & mask
	return int32(r.seed >> (48 - bits))
}

// NextInt returns the next 32 bits of the stream as a signed integer.
func (r *Random) NextInt() int32 {
	return r.next(32)
}

// NextIntn returns a value in [0, n). It panics if n <= 0.
func (r *Random) NextIntn(n int32) int32 {
	if n <= 0 {
		panic("rng: bound must be positive")
	}
	if n&-n == n { // power of two
		return int32((int64(n) * int64(r.next(31))) >> 31)
	}
	for {
		bits := r.next(31)
		val := bits % n
		// int32 overflow rejects the biased tail, as the Java loop does.
		if bits-val+(n-1) >= 0 {
			return val
		}
	}
}

// Intn is NextIntn for callers that work with int, such as the position
// finder and spawn picking. Like NextIntn it panics unless 0 < n <= MaxInt32;
// larger bounds would otherwise be truncated.
func (r *Random) Intn(n int) int {
	if n > math.MaxInt32 {
		panic("rng: bound exceeds int32 range")
	}
	return int(r.NextIntn(int32(n)))
}

// NextLong returns a 64-bit value built from two 32-bit draws.
func (r *Random) NextLong() int64 {
	return int64(r.next(32))<<32 + int64(r.next(32))
}

// NextDouble returns a value in [0, 1) with 53 bits of precision.
func (r *Random) NextDouble() float64 {
	return float64(int64(r.next(26))<<27+int64(r.next(27))) * (1.0 / (1 << 53))
}

// Intner is the slice of a random stream that reservoir sampling and
// weighted picks need. *Random and *math/rand.Rand both satisfy it.
type Intner interface {
	Intn(n int) int
}
