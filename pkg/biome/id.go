package biome

import "fmt"

// ID identifies a biome for the lifetime of a world. Valid ids index
// directly into a Table.
type ID int

// MaxCount is the number of addressable biome ids.
const MaxCount = 256

// Unknown is the sentinel for ids outside [0, MaxCount). It is never a
// member of any Set and never has a Config.
const Unknown ID = -1

// FromInt converts a raw integer into an ID, mapping anything out of range
// to Unknown instead of wrapping it.
func FromInt(v int) ID {
	if v < 0 || v >= MaxCount {
		return Unknown
	}
	return ID(v)
}

// Valid reports whether id is inside [0, MaxCount).
func (id ID) Valid() bool {
	return id >= 0 && id < MaxCount
}

func (id ID) String() string {
	if !id.Valid() {
		return "unknown"
	}
	return fmt.Sprintf("biome#%d", int(id))
}
