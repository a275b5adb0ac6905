package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/samdwyer/gridquest/internal/config"
	"github.com/samdwyer/gridquest/internal/gamedata"
)

// Config holds game configuration options.
type Config struct {
	// Variant selects the rule set. Empty selects the default.
	Variant string

	// Seed for random number generation. Used for reproducible runs.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	// EnemyDelay replaces the variant's counter-attack pause when HasEnemyDelay is set.
	EnemyDelay    time.Duration
	HasEnemyDelay bool
}

// ConfigFrom picks the game settings out of the runtime configuration.
func ConfigFrom(c config.Config) Config {
	return Config{
		Variant:       c.Variant,
		Seed:          c.Seed,
		EnemyDelay:    c.EnemyDelay,
		HasEnemyDelay: c.HasEnemyDelay,
	}
}

// Build loads the game data and returns an engine and a scheduler for cfg.
func Build(cfg Config, opts ...EngineOption) (*Engine, *Scheduler, error) {
	variants, err := gamedata.LoadVariantRegistry()
	if err != nil {
		return nil, nil, fmt.Errorf("load variants: %w", err)
	}
	variant, err := variants.Get(cfg.Variant)
	if err != nil {
		return nil, nil, fmt.Errorf("select variant (have %v): %w", variants.IDs(), err)
	}
	enemies, err := gamedata.LoadEnemyRegistry()
	if err != nil {
		return nil, nil, fmt.Errorf("load enemies: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	// IDs get their own stream so they do not shift the game's rolls.
	opts = append([]EngineOption{WithIDSource(rand.New(rand.NewSource(seed)))}, opts...)
	engine := NewEngine(variant, enemies, rand.New(rand.NewSource(seed)), opts...)

	delay := variant.EnemyTurnDelay()
	if cfg.HasEnemyDelay {
		delay = cfg.EnemyDelay
	}
	return engine, NewScheduler(delay), nil
}
