package gamedata

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a definition lookup misses.
var ErrNotFound = errors.New("definition not found")

// IntSource is the slice of a random generator needed to pick enemies.
// *rand.Rand satisfies it.
type IntSource interface {
	Intn(n int) int
}

// EnemyRegistry holds loaded enemy definitions and provides spawning utilities.
type EnemyRegistry struct {
	enemies     []EnemyDef
	totalWeight int
}

// NewEnemyRegistry creates a registry from loaded enemy definitions.
func NewEnemyRegistry(enemies []EnemyDef) *EnemyRegistry {
	totalWeight := 0
	for _, e := range enemies {
		totalWeight += e.SpawnWeight
	}
	return &EnemyRegistry{
		enemies:     enemies,
		totalWeight: totalWeight,
	}
}

// LoadEnemyRegistry loads and creates a registry from the embedded enemies.json.
func LoadEnemyRegistry() (*EnemyRegistry, error) {
	enemies, err := LoadEnemies()
	if err != nil {
		return nil, err
	}
	if len(enemies) == 0 {
		return nil, errors.New("no enemies loaded from enemies.json")
	}
	for i := range enemies {
		if enemies[i].HP < 1 {
			return nil, fmt.Errorf("enemy %s: hp must be positive", enemies[i].ID)
		}
	}
	return NewEnemyRegistry(enemies), nil
}

// MustLoadEnemyRegistry loads a registry, panicking on error.
func MustLoadEnemyRegistry() *EnemyRegistry {
	registry, err := LoadEnemyRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// Spawn picks an enemy definition with the given selection strategy.
func (r *EnemyRegistry) Spawn(selection string, rng IntSource) *EnemyDef {
	if selection == SelectWeighted {
		return r.SpawnRandom(rng)
	}
	return r.SpawnUniform(rng)
}

// SpawnUniform selects an enemy definition with equal probability.
func (r *EnemyRegistry) SpawnUniform(rng IntSource) *EnemyDef {
	if len(r.enemies) == 0 {
		return nil
	}
	return &r.enemies[rng.Intn(len(r.enemies))]
}

// SpawnRandom selects a random enemy definition using weighted probability.
// Enemies with higher spawnWeight are more likely to be selected.
func (r *EnemyRegistry) SpawnRandom(rng IntSource) *EnemyDef {
	if r.totalWeight <= 0 || len(r.enemies) == 0 {
		return nil
	}

	roll := rng.Intn(r.totalWeight)

	cumulative := 0
	for i := range r.enemies {
		cumulative += r.enemies[i].SpawnWeight
		if roll < cumulative {
			return &r.enemies[i]
		}
	}

	return &r.enemies[0]
}

// GetByID returns the enemy definition with the given ID, or nil if not found.
func (r *EnemyRegistry) GetByID(id string) *EnemyDef {
	for i := range r.enemies {
		if r.enemies[i].ID == id {
			return &r.enemies[i]
		}
	}
	return nil
}

// Count returns the number of enemy types in the registry.
func (r *EnemyRegistry) Count() int {
	return len(r.enemies)
}

// =============================================================================
// VariantRegistry
// =============================================================================

// VariantRegistry holds the loaded rule sets.
type VariantRegistry struct {
	variants  map[string]*VariantDef
	all       []VariantDef
	defaultID string
}

// NewVariantRegistry creates a registry from loaded variant definitions.
func NewVariantRegistry(file VariantsFile) *VariantRegistry {
	registry := &VariantRegistry{
		variants:  make(map[string]*VariantDef),
		all:       file.Variants,
		defaultID: file.DefaultVariant,
	}
	for i := range file.Variants {
		registry.variants[file.Variants[i].ID] = &file.Variants[i]
	}
	return registry
}

// LoadVariantRegistry loads, validates and indexes the embedded variants.json.
func LoadVariantRegistry() (*VariantRegistry, error) {
	file, err := LoadVariants()
	if err != nil {
		return nil, err
	}
	if len(file.Variants) == 0 {
		return nil, errors.New("no variants loaded from variants.json")
	}
	for i := range file.Variants {
		if err := file.Variants[i].Validate(); err != nil {
			return nil, fmt.Errorf("invalid variants.json: %w", err)
		}
	}
	registry := NewVariantRegistry(file)
	if registry.variants[registry.defaultID] == nil {
		return nil, fmt.Errorf("default variant %q: %w", registry.defaultID, ErrNotFound)
	}
	return registry, nil
}

// Get returns the variant with the given ID. An empty ID selects the default.
func (r *VariantRegistry) Get(id string) (*VariantDef, error) {
	if id == "" {
		id = r.defaultID
	}
	v := r.variants[id]
	if v == nil {
		return nil, fmt.Errorf("variant %q: %w", id, ErrNotFound)
	}
	return v, nil
}

// IDs returns the variant IDs in file order.
func (r *VariantRegistry) IDs() []string {
	ids := make([]string, 0, len(r.all))
	for _, v := range r.all {
		ids = append(ids, v.ID)
	}
	return ids
}
