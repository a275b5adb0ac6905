package game

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/gridquest/internal/ui"
)

func TestKeyAction(t *testing.T) {
	classic := newTestEngine(t, "classic", &fakeRand{})
	scaled := newTestEngine(t, "scaled", &fakeRand{})

	explore := State{Mode: ModeExplore}
	battle := State{Mode: ModeBattle, Battle: &Battle{ID: "b1"}}
	defeat := State{Mode: ModeDefeat}

	tests := []struct {
		name   string
		engine *Engine
		state  State
		key    tcell.Key
		r      rune
		want   Action
		wantOK bool
	}{
		{"arrow up", classic, explore, tcell.KeyUp, 0, Move(0, -1), true},
		{"arrow right", classic, explore, tcell.KeyRight, 0, Move(1, 0), true},
		{"a moves left", classic, explore, tcell.KeyRune, 'a', Move(-1, 0), true},
		{"D moves right", classic, explore, tcell.KeyRune, 'D', Move(1, 0), true},
		{"p drinks", classic, explore, tcell.KeyRune, 'p', Do(ActUsePotion), true},
		{"i toggles shop", classic, explore, tcell.KeyRune, 'i', Do(ActToggleShop), true},
		{"b buys", classic, explore, tcell.KeyRune, 'b', Do(ActBuyPotion), true},
		{"no shop keys in scaled", scaled, explore, tcell.KeyRune, 'i', Action{}, false},
		{"a attacks in battle", classic, battle, tcell.KeyRune, 'a', Do(ActAttack), true},
		{"A attacks in battle", classic, battle, tcell.KeyRune, 'A', Do(ActAttack), true},
		{"h heals", classic, battle, tcell.KeyRune, 'h', Do(ActHeal), true},
		{"r runs", classic, battle, tcell.KeyRune, 'r', Do(ActFlee), true},
		{"no running in scaled", scaled, battle, tcell.KeyRune, 'r', Action{}, false},
		{"wasd idle in battle", classic, battle, tcell.KeyRune, 'w', Action{}, false},
		{"n restarts after defeat", classic, defeat, tcell.KeyRune, 'n', Do(ActRestart), true},
		{"n does nothing while exploring", classic, explore, tcell.KeyRune, 'n', Action{}, false},
		{"q quits", classic, battle, tcell.KeyRune, 'q', Do(ActQuit), true},
		{"escape quits", classic, explore, tcell.KeyEscape, 0, Do(ActQuit), true},
		{"enter ignored", classic, explore, tcell.KeyEnter, 0, Action{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := KeyAction(tt.state, tt.engine.Variant(), tt.key, tt.r)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("KeyAction() = %+v, %v, want %+v, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestButtonAction(t *testing.T) {
	tests := []struct {
		button ui.Button
		want   Action
		wantOK bool
	}{
		{ui.ButtonBuyPotion, Do(ActBuyPotion), true},
		{ui.ButtonUsePotion, Do(ActUsePotion), true},
		{ui.ButtonNone, Action{}, false},
	}

	for _, tt := range tests {
		got, ok := ButtonAction(tt.button)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("ButtonAction(%v) = %+v, %v", tt.button, got, ok)
		}
	}
}
