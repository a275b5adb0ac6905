package entity

import (
	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/samdwyer/gridquest/internal/gamedata"
)

// Enemy is one spawned opponent. It lives only for the length of a battle.
type Enemy struct {
	Def    *gamedata.EnemyDef // Reference to the enemy definition
	ID     string             // Unique instance identifier
	Name   string             // Enemy name (e.g., "Slime")
	Sprite string             // Sprite tag
	Symbol rune               // Display symbol
	HP     int                // Current hit points
	MaxHP  int                // Maximum hit points
	Attack int                // Attack power
	Exp    int                // Experience granted on defeat
	Gold   int                // Gold granted on defeat
}

// Stats are the rolled values for a spawned enemy.
type Stats struct {
	HP, Attack, Exp, Gold int
}

// NewEnemyFromDef creates an enemy with the definition's base stats.
func NewEnemyFromDef(def *gamedata.EnemyDef) Enemy {
	return NewScaledEnemy(def, Stats{HP: def.HP, Attack: def.Attack, Exp: def.Exp, Gold: def.Gold})
}

// NewScaledEnemy creates an enemy of the given type with already rolled stats.
func NewScaledEnemy(def *gamedata.EnemyDef, s Stats) Enemy {
	hp := s.HP
	if hp < 1 {
		hp = 1
	}
	return Enemy{
		Def:    def,
		ID:     uuid.NewString(),
		Name:   def.Name,
		Sprite: def.Sprite,
		Symbol: def.GlyphRune(),
		HP:     hp,
		MaxHP:  hp,
		Attack: s.Attack,
		Exp:    s.Exp,
		Gold:   s.Gold,
	}
}

// IsAlive returns true while HP is above zero.
func (e Enemy) IsAlive() bool {
	return e.HP > 0
}

// Color returns the tcell color for this enemy.
func (e Enemy) Color() tcell.Color {
	if e.Def != nil {
		return e.Def.TCellColor()
	}
	return tcell.ColorPurple
}

// GetName returns the enemy's name.
func (e *Enemy) GetName() string { return e.Name }

// GetHP returns current hit points.
func (e *Enemy) GetHP() int { return e.HP }

// GetMaxHP returns maximum hit points.
func (e *Enemy) GetMaxHP() int { return e.MaxHP }

// TakeDamage reduces HP by amount, clamping at 0. Returns actual damage taken.
func (e *Enemy) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if actual > e.HP {
		actual = e.HP
	}
	e.HP -= actual
	return actual
}

// Heal restores HP by amount, clamping at MaxHP. Returns actual amount healed.
func (e *Enemy) Heal(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if e.HP+actual > e.MaxHP {
		actual = e.MaxHP - e.HP
	}
	e.HP += actual
	return actual
}
