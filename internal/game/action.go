package game

// ActionKind identifies what an Action asks the engine to do.
type ActionKind int

const (
	ActNone ActionKind = iota
	ActMove
	ActAttack
	ActHeal
	ActFlee
	ActUsePotion
	ActToggleShop
	ActBuyPotion
	ActEnemyTurn
	ActRestart
	ActQuit
)

var actionNames = map[ActionKind]string{
	ActNone:       "none",
	ActMove:       "move",
	ActAttack:     "attack",
	ActHeal:       "heal",
	ActFlee:       "flee",
	ActUsePotion:  "use_potion",
	ActToggleShop: "toggle_shop",
	ActBuyPotion:  "buy_potion",
	ActEnemyTurn:  "enemy_turn",
	ActRestart:    "restart",
	ActQuit:       "quit",
}

// String returns a human-readable action name.
func (k ActionKind) String() string {
	if name, ok := actionNames[k]; ok {
		return name
	}
	return "unknown"
}

// Action is one input to the engine.
type Action struct {
	Kind     ActionKind
	DX, DY   int    // ActMove
	BattleID string // ActEnemyTurn
	Turn     int    // ActEnemyTurn
}

// Move returns a movement action.
func Move(dx, dy int) Action {
	return Action{Kind: ActMove, DX: dx, DY: dy}
}

// EnemyTurn returns the counter-attack action for the given battle turn.
func EnemyTurn(battleID string, turn int) Action {
	return Action{Kind: ActEnemyTurn, BattleID: battleID, Turn: turn}
}

// Do returns an action with no arguments.
func Do(kind ActionKind) Action {
	return Action{Kind: kind}
}
