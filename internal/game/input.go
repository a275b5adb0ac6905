package game

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/gridquest/internal/gamedata"
	"github.com/samdwyer/gridquest/internal/ui"
)

// KeyAction maps a key press to an action for the current mode.
// Letters are case-insensitive; 'a' moves left while exploring and
// attacks in battle.
func KeyAction(s State, v *gamedata.VariantDef, key tcell.Key, r rune) (Action, bool) {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Do(ActQuit), true
	case tcell.KeyUp:
		return Move(0, -1), true
	case tcell.KeyDown:
		return Move(0, 1), true
	case tcell.KeyLeft:
		return Move(-1, 0), true
	case tcell.KeyRight:
		return Move(1, 0), true
	case tcell.KeyRune:
	default:
		return Action{}, false
	}

	r = unicode.ToLower(r)
	if r == 'q' {
		return Do(ActQuit), true
	}

	switch s.Mode {
	case ModeExplore:
		return exploreRune(v, r)
	case ModeBattle:
		return battleRune(v, r)
	case ModeDefeat:
		if r == 'n' {
			return Do(ActRestart), true
		}
	}
	return Action{}, false
}

func exploreRune(v *gamedata.VariantDef, r rune) (Action, bool) {
	switch r {
	case 'w':
		return Move(0, -1), true
	case 's':
		return Move(0, 1), true
	case 'a':
		return Move(-1, 0), true
	case 'd':
		return Move(1, 0), true
	case 'p':
		return Do(ActUsePotion), true
	case 'i':
		if v.ShopEnabled {
			return Do(ActToggleShop), true
		}
	case 'b':
		if v.ShopEnabled {
			return Do(ActBuyPotion), true
		}
	}
	return Action{}, false
}

func battleRune(v *gamedata.VariantDef, r rune) (Action, bool) {
	switch r {
	case 'a':
		return Do(ActAttack), true
	case 'h':
		return Do(ActHeal), true
	case 'p':
		return Do(ActUsePotion), true
	case 'r':
		if v.CanFlee {
			return Do(ActFlee), true
		}
	}
	return Action{}, false
}

// ButtonAction maps a clicked on-screen button to an action.
func ButtonAction(b ui.Button) (Action, bool) {
	switch b {
	case ui.ButtonBuyPotion:
		return Do(ActBuyPotion), true
	case ui.ButtonUsePotion:
		return Do(ActUsePotion), true
	}
	return Action{}, false
}
