// Package entity provides the player and the enemies met in battle.
package entity

import (
	"github.com/samdwyer/gridquest/internal/gamedata"
)

// Weapon is an equipped item that adds to the player's attack.
type Weapon struct {
	Name   string
	Attack int
}

// Player holds the hero's position, stats and belongings.
// Player is a value type; Clone before mutating a copy that shares Inventory.
type Player struct {
	Name   string
	Symbol rune
	X, Y   int

	HP, MaxHP int
	Attack    int
	Level     int
	Exp       int
	Gold      int
	Inventory map[string]int
	Weapon    *Weapon
}

// NewPlayer creates a level 1 player at the origin with the variant's starting stats.
func NewPlayer(start gamedata.StartDef) Player {
	inv := map[string]int{}
	if start.Potions > 0 {
		inv[gamedata.ItemPotion] = start.Potions
	}
	return Player{
		Name:      "Hero",
		Symbol:    '@',
		HP:        start.HP,
		MaxHP:     start.HP,
		Attack:    start.Attack,
		Level:     1,
		Gold:      start.Gold,
		Inventory: inv,
	}
}

// Clone returns a deep copy of the player.
func (p Player) Clone() Player {
	inv := make(map[string]int, len(p.Inventory))
	for k, v := range p.Inventory {
		inv[k] = v
	}
	p.Inventory = inv
	if p.Weapon != nil {
		w := *p.Weapon
		p.Weapon = &w
	}
	return p
}

// Position returns the current x, y coordinates.
func (p Player) Position() (int, int) {
	return p.X, p.Y
}

// IsAlive returns true while HP is above zero.
func (p Player) IsAlive() bool {
	return p.HP > 0
}

// TotalAttack returns base attack plus the weapon bonus.
func (p Player) TotalAttack() int {
	if p.Weapon == nil {
		return p.Attack
	}
	return p.Attack + p.Weapon.Attack
}

// Count returns how many of the named item the player carries.
func (p Player) Count(item string) int {
	return p.Inventory[item]
}

// GetName returns the player's name.
func (p *Player) GetName() string { return p.Name }

// GetHP returns current hit points.
func (p *Player) GetHP() int { return p.HP }

// GetMaxHP returns maximum hit points.
func (p *Player) GetMaxHP() int { return p.MaxHP }

// TakeDamage reduces HP by amount, clamping at 0. Returns actual damage taken.
func (p *Player) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if actual > p.HP {
		actual = p.HP
	}
	p.HP -= actual
	return actual
}

// Heal restores HP by amount, clamping at MaxHP. Returns actual amount healed.
func (p *Player) Heal(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if p.HP+actual > p.MaxHP {
		actual = p.MaxHP - p.HP
	}
	p.HP += actual
	return actual
}

// AddItem adds n of the named item. The inventory must not be shared with another Player.
func (p *Player) AddItem(item string, n int) {
	if p.Inventory == nil {
		p.Inventory = map[string]int{}
	}
	p.Inventory[item] += n
}

// UseItem removes one of the named item and reports whether one was available.
func (p *Player) UseItem(item string) bool {
	if p.Inventory[item] <= 0 {
		return false
	}
	p.Inventory[item]--
	return true
}
