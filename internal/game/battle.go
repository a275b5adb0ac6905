package game

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/gridquest/internal/entity"
	"github.com/samdwyer/gridquest/internal/gamedata"
)

// playerCanAct reports whether a battle is waiting on the player.
func playerCanAct(s *State) bool {
	return s.InBattle() && s.Battle.Phase == PhasePlayer
}

// endPlayerPhase hands the turn to the enemy. The scheduler picks it up.
func endPlayerPhase(s *State) {
	s.Battle.Phase = PhaseEnemy
}

// attack strikes the enemy with the player's weapon-adjusted attack.
func (e *Engine) attack(ctx context.Context, s *State) {
	if !playerCanAct(s) {
		return
	}

	enemy := &s.Battle.Enemy
	result := e.resolver.Strike(s.Player.TotalAttack(), e.variant.AttackSpread, enemy)
	s.Message = fmt.Sprintf("You attack the %s for %d damage!", enemy.Name, result.Rolled)

	if result.Defeated {
		e.victory(ctx, s)
		return
	}
	endPlayerPhase(s)
}

// heal restores player HP the way the variant allows.
func (e *Engine) heal(ctx context.Context, s *State) {
	if !playerCanAct(s) {
		return
	}

	if e.variant.HealMode == gamedata.HealPotion {
		e.drinkPotion(s)
		return
	}

	result := e.resolver.Mend(e.variant.SelfHeal.Base, e.variant.SelfHeal.Spread, &s.Player)
	s.Message = fmt.Sprintf("You catch your breath and recover %d HP!", result.Healing)
	endPlayerPhase(s)
}

// usePotion drinks a potion from the inventory, in or out of battle.
func (e *Engine) usePotion(ctx context.Context, s *State) {
	switch s.Mode {
	case ModeExplore:
		e.drinkPotion(s)
	case ModeBattle:
		if playerCanAct(s) {
			e.drinkPotion(s)
		}
	}
}

// drinkPotion consumes one potion. Only a successful drink in battle costs a turn.
func (e *Engine) drinkPotion(s *State) {
	if s.Player.Count(gamedata.ItemPotion) <= 0 {
		s.Message = "You have no potions!"
		return
	}
	if s.Player.HP >= s.Player.MaxHP {
		s.Message = "You are already at full health."
		return
	}

	s.Player.UseItem(gamedata.ItemPotion)
	healed := s.Player.Heal(e.variant.PotionHeal)
	s.Message = fmt.Sprintf("You used a potion and recovered %d HP!", healed)

	if s.InBattle() {
		endPlayerPhase(s)
	}
}

// flee tries to escape the battle.
func (e *Engine) flee(ctx context.Context, s *State) {
	if !playerCanAct(s) || !e.variant.CanFlee {
		return
	}

	if e.resolver.Chance(e.variant.FleeChance) {
		s.Message = "You escaped!"
		e.endBattle(ctx, s, OutcomeFled)
		return
	}

	s.Message = "You failed to escape!"
	endPlayerPhase(s)
}

// enemyTurn resolves a queued counter-attack. Turns queued for a battle
// that has ended, or for a turn already resolved, are dropped.
func (e *Engine) enemyTurn(ctx context.Context, s *State, battleID string, turn int) {
	id, current, ok := s.AwaitingEnemy()
	if !ok || id != battleID || current != turn {
		return
	}

	enemy := s.Battle.Enemy
	result := e.resolver.Strike(enemy.Attack, e.variant.EnemySpread, &s.Player)
	s.Message = fmt.Sprintf("The %s hits you for %d damage!", enemy.Name, result.Rolled)

	if result.Defeated {
		s.Message += "\nYou were defeated! Press N to restart."
		e.endBattle(ctx, s, OutcomeDefeat)
		return
	}

	s.Battle.Phase = PhasePlayer
	s.Battle.Turn++
}

// victory grants the defeated enemy's rewards and ends the battle.
func (e *Engine) victory(ctx context.Context, s *State) {
	enemy := s.Battle.Enemy

	s.Player.Exp += enemy.Exp
	s.Player.Gold += enemy.Gold
	s.Message += fmt.Sprintf("\nYou defeated the %s! +%d EXP, +%d gold.", enemy.Name, enemy.Exp, enemy.Gold)

	drop := e.variant.WeaponDrop
	if s.Player.Weapon == nil && drop.Name != "" && e.resolver.Chance(drop.Chance) {
		s.Player.Weapon = &entity.Weapon{Name: drop.Name, Attack: drop.Attack}
		s.Message += fmt.Sprintf("\nThe %s dropped a %s!", enemy.Name, drop.Name)
	}

	s.Victories++
	e.endBattle(ctx, s, OutcomeVictory)
	e.levelUp(ctx, s)
}

// endBattle drops the enemy and records how the battle went.
func (e *Engine) endBattle(ctx context.Context, s *State, outcome Outcome) {
	b := s.Battle

	_, span := e.tracer.Start(ctx, "battle.end")
	span.SetAttributes(
		attribute.String("battle.id", b.ID),
		attribute.String("enemy", b.Enemy.Name),
		attribute.String("outcome", string(outcome)),
		attribute.Int("turns_taken", b.Turn),
		attribute.Int("player.hp_remaining", s.Player.HP),
	)
	span.End()

	s.Last = &BattleReport{
		ID:      b.ID,
		Enemy:   b.Enemy,
		Outcome: outcome,
		Turns:   b.Turn,
	}
	s.Battle = nil

	if outcome == OutcomeDefeat {
		s.Mode = ModeDefeat
	} else {
		s.Mode = ModeExplore
	}
}
