package biome

import "math/bits"

// Set is a fixed-size set of biome ids. It is a value type; copies are
// independent and safe to read concurrently.
type Set struct {
	words [MaxCount / 64]uint64
}

// NewSet returns a set holding ids. Invalid ids are ignored.
func NewSet(ids ...ID) Set {
	var s Set
	for _, id := range ids {
		s.add(id)
	}
	return s
}

func (s *Set) add(id ID) {
	if !id.Valid() {
		return
	}
	s.words[id/64] |= 1 << (uint(id) % 64)
}

// With returns a copy of s extended with ids.
func (s Set) With(ids ...ID) Set {
	for _, id := range ids {
		s.add(id)
	}
	return s
}

// Contains reports whether id is in the set. Unknown is never contained.
func (s Set) Contains(id ID) bool {
	if !id.Valid() {
		return false
	}
	return s.words[id/64]&(1<<(uint(id)%64)) != 0
}

// Len returns the number of ids in the set.
func (s Set) Len() int {
	n := 0
	for _, w := range s.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// SubsetOf reports whether every id in s is also in other.
func (s Set) SubsetOf(other Set) bool {
	for i, w := range s.words {
		if w&^other.words[i] != 0 {
			return false
		}
	}
	return true
}

// IDs lists the members in ascending order.
func (s Set) IDs() []ID {
	ids := make([]ID, 0, s.Len())
	for i, w := range s.words {
		for w != 0 {
			b := bits.TrailingZeros64(w)
			ids = append(ids, ID(i*64+b))
			w &^= 1 << uint(b)
		}
	}
	return ids
}
