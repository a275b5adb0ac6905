package game

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/gridquest/internal/entity"
	"github.com/samdwyer/gridquest/internal/gamedata"
)

// tryMove attempts to move the player by the given delta.
// Moving is ignored during a battle, after defeat, and off the grid.
func (e *Engine) tryMove(ctx context.Context, s *State, dx, dy int) {
	if s.Mode != ModeExplore {
		return
	}

	newX := s.Player.X + dx
	newY := s.Player.Y + dy
	if !e.grid.IsPassable(newX, newY) {
		return
	}

	s.Player.X, s.Player.Y = newX, newY
	s.Steps++

	if e.variant.ShopEnabled && e.grid.IsShop(newX, newY) {
		s.ShopOpen = true
		s.Message = "You've entered the shop! Press B or click 'Buy Potion' to buy.\nPress I to close the shop."
		return
	}
	s.ShopOpen = false

	if e.rollEncounter(ctx, s) {
		return
	}
	s.Message = "You moved. No enemies here."
}

// rollEncounter starts a battle with the variant's encounter probability.
func (e *Engine) rollEncounter(ctx context.Context, s *State) bool {
	if !e.resolver.Chance(e.variant.EncounterChance) {
		return false
	}

	def := e.enemies.Spawn(e.variant.EnemySelection, e.rng)
	if def == nil {
		return false
	}
	enemy := e.spawnEnemy(def, s.Player.Level)

	s.Mode = ModeBattle
	s.Battle = &Battle{
		ID:    e.newID(),
		Enemy: enemy,
		Phase: PhasePlayer,
	}
	s.Message = fmt.Sprintf("A wild %s appeared!\n(%s)", enemy.Name, e.BattleHelp())

	_, span := e.tracer.Start(ctx, "encounter.start")
	span.SetAttributes(
		attribute.String("battle.id", s.Battle.ID),
		attribute.String("enemy.id", def.ID),
		attribute.String("enemy.instance", enemy.ID),
		attribute.Int("enemy.hp", enemy.HP),
		attribute.Int("enemy.attack", enemy.Attack),
		attribute.Int("player.level", s.Player.Level),
		attribute.Int("player.x", s.Player.X),
		attribute.Int("player.y", s.Player.Y),
	)
	span.End()

	return true
}

// spawnEnemy rolls the stats of a new enemy for a player of the given level.
func (e *Engine) spawnEnemy(def *gamedata.EnemyDef, level int) entity.Enemy {
	stats := entity.Stats{HP: def.HP, Attack: def.Attack, Exp: def.Exp, Gold: def.Gold}

	sc := e.variant.Scaling
	if sc.Mode == gamedata.ScaleLevel {
		above := level - 1
		stats.HP += above*sc.HPPerLevel + e.resolver.Roll(0, sc.Jitter+1)
		stats.Attack += above*sc.AttackPerLevel + e.resolver.Roll(0, 2)
		stats.Exp += above * sc.ExpPerLevel
		stats.Gold += above * sc.GoldPerLevel
	}

	enemy := entity.NewScaledEnemy(def, stats)
	enemy.ID = e.newID()
	return enemy
}
