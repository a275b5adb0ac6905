// Package game provides the rules engine, the turn scheduler and the main loop.
package game

import (
	"fmt"

	"github.com/samdwyer/gridquest/internal/entity"
)

// Mode represents the current game mode.
type Mode int

const (
	// ModeExplore is the default mode where the player walks the grid.
	ModeExplore Mode = iota
	// ModeBattle is active while an enemy is being fought.
	ModeBattle
	// ModeDefeat is terminal until the player restarts.
	ModeDefeat
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeExplore:
		return "explore"
	case ModeBattle:
		return "battle"
	case ModeDefeat:
		return "defeat"
	default:
		return "unknown"
	}
}

// Phase is the half of a battle turn currently in progress.
type Phase int

const (
	// PhasePlayer - waiting for the player to act
	PhasePlayer Phase = iota
	// PhaseEnemy - the enemy's counter-attack is queued
	PhaseEnemy
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhasePlayer:
		return "player_turn"
	case PhaseEnemy:
		return "enemy_turn"
	default:
		return "unknown"
	}
}

// Battle holds all state for an active fight.
type Battle struct {
	ID    string       // Unique per encounter
	Enemy entity.Enemy // The opponent
	Phase Phase        // Whose half of the turn it is
	Turn  int          // Completed player/enemy exchanges
}

// Outcome describes how a battle ended.
type Outcome string

const (
	OutcomeVictory Outcome = "victory"
	OutcomeFled    Outcome = "fled"
	OutcomeDefeat  Outcome = "defeat"
)

// BattleReport records the last finished battle.
type BattleReport struct {
	ID      string
	Enemy   entity.Enemy
	Outcome Outcome
	Turns   int
}

// Summary describes the battle in one line, e.g. "Slime, victory in 3 turns".
func (r BattleReport) Summary() string {
	turns := "turns"
	if r.Turns == 1 {
		turns = "turn"
	}
	return fmt.Sprintf("%s, %s in %d %s", r.Enemy.Name, r.Outcome, r.Turns, turns)
}

// State is a snapshot of the whole game. Engine.Apply never modifies the
// State it is given; it returns a new one.
type State struct {
	Mode      Mode
	Player    entity.Player
	Battle    *Battle       // Non-nil only in ModeBattle
	Last      *BattleReport // Most recently finished battle
	ShopOpen  bool
	Message   string // Overwritten on every transition
	Steps     int
	Victories int
}

// Clone returns a deep copy of the state.
func (s State) Clone() State {
	s.Player = s.Player.Clone()
	if s.Battle != nil {
		b := *s.Battle
		s.Battle = &b
	}
	if s.Last != nil {
		r := *s.Last
		s.Last = &r
	}
	return s
}

// InBattle reports whether a battle is active.
func (s State) InBattle() bool {
	return s.Mode == ModeBattle && s.Battle != nil
}

// AwaitingEnemy reports whether an enemy counter-attack is due, and for which battle turn.
func (s State) AwaitingEnemy() (battleID string, turn int, ok bool) {
	if !s.InBattle() || s.Battle.Phase != PhaseEnemy {
		return "", 0, false
	}
	return s.Battle.ID, s.Battle.Turn, true
}
