package gamedata

import (
	"fmt"
	"time"
)

// Enemy selection strategies.
const (
	SelectUniform  = "uniform"
	SelectWeighted = "weighted"
)

// Enemy stat scaling modes.
const (
	ScaleFlat  = "flat"
	ScaleLevel = "level"
)

// Heal modes.
const (
	HealPotion = "potion"
	HealSelf   = "self"
)

// ItemPotion is the inventory key for healing potions.
const ItemPotion = "potion"

// ScalingDef controls how enemy stats grow with the player's level.
type ScalingDef struct {
	Mode           string `json:"mode"`
	HPPerLevel     int    `json:"hpPerLevel"`
	AttackPerLevel int    `json:"attackPerLevel"`
	ExpPerLevel    int    `json:"expPerLevel"`
	GoldPerLevel   int    `json:"goldPerLevel"`
	Jitter         int    `json:"jitter"` // Max extra HP rolled per spawn
}

// RollDef is a base amount plus a random bonus in [0, Spread).
type RollDef struct {
	Base   int `json:"base"`
	Spread int `json:"spread"`
}

// WeaponDropDef describes the rare weapon an enemy can drop.
type WeaponDropDef struct {
	Chance float64 `json:"chance"`
	Name   string  `json:"name"`
	Attack int     `json:"attack"`
}

// LevelUpDef is the stat growth applied on each level gained.
type LevelUpDef struct {
	HP     int `json:"hp"`
	Attack int `json:"attack"`
}

// StartDef holds the player's starting stats.
type StartDef struct {
	HP      int `json:"hp"`
	Attack  int `json:"attack"`
	Gold    int `json:"gold"`
	Potions int `json:"potions"`
}

// VariantDef defines one rule set loaded from JSON.
type VariantDef struct {
	ID               string        `json:"id"`
	Name             string        `json:"name"`
	GridSize         int           `json:"gridSize"`
	EncounterChance  float64       `json:"encounterChance"`
	EnemySelection   string        `json:"enemySelection"`
	Scaling          ScalingDef    `json:"scaling"`
	AttackSpread     int           `json:"attackSpread"` // Player damage bonus is rolled in [0, AttackSpread)
	EnemySpread      int           `json:"enemySpread"`  // Enemy damage bonus is rolled in [0, EnemySpread)
	HealMode         string        `json:"healMode"`
	PotionHeal       int           `json:"potionHeal"`
	SelfHeal         RollDef       `json:"selfHeal"`
	CanFlee          bool          `json:"canFlee"`
	FleeChance       float64       `json:"fleeChance"`
	ShopEnabled      bool          `json:"shopEnabled"`
	PotionCost       int           `json:"potionCost"`
	WeaponDrop       WeaponDropDef `json:"weaponDrop"`
	LevelUp          LevelUpDef    `json:"levelUp"`
	Start            StartDef      `json:"start"`
	EnemyTurnDelayMs int           `json:"enemyTurnDelayMs"`
}

// EnemyTurnDelay returns the pause before an enemy counter-attack.
func (v *VariantDef) EnemyTurnDelay() time.Duration {
	return time.Duration(v.EnemyTurnDelayMs) * time.Millisecond
}

// Validate checks the definition for values the engine cannot run with.
func (v *VariantDef) Validate() error {
	switch {
	case v.ID == "":
		return fmt.Errorf("variant has no id")
	case v.GridSize < 2:
		return fmt.Errorf("variant %s: grid size %d too small", v.ID, v.GridSize)
	case v.EncounterChance < 0 || v.EncounterChance > 1:
		return fmt.Errorf("variant %s: encounter chance %v out of range", v.ID, v.EncounterChance)
	case v.FleeChance < 0 || v.FleeChance > 1:
		return fmt.Errorf("variant %s: flee chance %v out of range", v.ID, v.FleeChance)
	case v.WeaponDrop.Chance < 0 || v.WeaponDrop.Chance > 1:
		return fmt.Errorf("variant %s: weapon drop chance %v out of range", v.ID, v.WeaponDrop.Chance)
	case v.EnemySelection != SelectUniform && v.EnemySelection != SelectWeighted:
		return fmt.Errorf("variant %s: unknown enemy selection %q", v.ID, v.EnemySelection)
	case v.Scaling.Mode != ScaleFlat && v.Scaling.Mode != ScaleLevel:
		return fmt.Errorf("variant %s: unknown scaling mode %q", v.ID, v.Scaling.Mode)
	case v.HealMode != HealPotion && v.HealMode != HealSelf:
		return fmt.Errorf("variant %s: unknown heal mode %q", v.ID, v.HealMode)
	case v.HealMode == HealSelf && v.SelfHeal.Spread < 1:
		return fmt.Errorf("variant %s: self heal spread must be positive", v.ID)
	case v.AttackSpread < 1 || v.EnemySpread < 1:
		return fmt.Errorf("variant %s: damage spreads must be positive", v.ID)
	case v.Start.HP < 1:
		return fmt.Errorf("variant %s: starting hp must be positive", v.ID)
	case v.EnemyTurnDelayMs < 0:
		return fmt.Errorf("variant %s: negative enemy turn delay", v.ID)
	}
	return nil
}

// VariantsFile represents the structure of variants.json.
type VariantsFile struct {
	DefaultVariant string       `json:"defaultVariant"`
	Variants       []VariantDef `json:"variants"`
}

// LoadVariants loads variant definitions from the embedded variants.json file.
func LoadVariants() (VariantsFile, error) {
	return Load[VariantsFile]("variants.json")
}
