package biome

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidConfig is returned by NewTable for configs that break a field
// constraint or reuse an id.
var ErrInvalidConfig = errors.New("invalid biome config")

var validate = validator.New()

// Table is the read-only view of all biome configs for one world. It is
// built once and may be read from any number of goroutines without
// locking.
type Table struct {
	configs [MaxCount]*Config
	ids     []ID
	byName  map[string]ID
}

// NewTable validates configs and builds a table from them.
func NewTable(configs []Config) (*Table, error) {
	t := &Table{byName: make(map[string]ID, len(configs))}
	for i := range configs {
		c := configs[i]
		if err := validate.Struct(&c); err != nil {
			return nil, fmt.Errorf("%w: biome %d (%s): %v", ErrInvalidConfig, c.ID, c.Name, err)
		}
		for cat, entries := range c.Spawns {
			for j := range entries {
				if err := validate.Struct(&entries[j]); err != nil {
					return nil, fmt.Errorf("%w: biome %s %s spawn %d: %v",
						ErrInvalidConfig, c.Name, EntityCategory(cat), j, err)
				}
			}
			c.Spawns[cat] = append([]SpawnEntry(nil), entries...)
		}
		if t.configs[c.ID] != nil {
			return nil, fmt.Errorf("%w: duplicate biome id %d (%s and %s)",
				ErrInvalidConfig, c.ID, t.configs[c.ID].Name, c.Name)
		}
		t.configs[c.ID] = &c
		t.ids = append(t.ids, c.ID)
		t.byName[strings.ToLower(c.Name)] = c.ID
	}
	sort.Slice(t.ids, func(i, j int) bool { return t.ids[i] < t.ids[j] })
	return t, nil
}

// Lookup returns the config for id. Unknown ids and ids without a config
// report false, which callers treat as "feature disabled".
func (t *Table) Lookup(id ID) (*Config, bool) {
	if t == nil || !id.Valid() {
		return nil, false
	}
	c := t.configs[id]
	return c, c != nil
}

// ByName finds a biome id by case-insensitive name.
func (t *Table) ByName(name string) (ID, bool) {
	id, ok := t.byName[strings.ToLower(name)]
	return id, ok
}

// IDs returns the configured ids in ascending order.
func (t *Table) IDs() []ID {
	return append([]ID(nil), t.ids...)
}

// Len returns the number of configured biomes.
func (t *Table) Len() int {
	return len(t.ids)
}

// Select returns the set of configured biomes for which pred is true.
func (t *Table) Select(pred func(*Config) bool) Set {
	var s Set
	for _, id := range t.ids {
		if pred(t.configs[id]) {
			s.add(id)
		}
	}
	return s
}
