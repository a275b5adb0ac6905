package game

import (
	"strings"
	"testing"

	"github.com/samdwyer/gridquest/internal/entity"
	"github.com/samdwyer/gridquest/internal/gamedata"
)

func TestThreshold(t *testing.T) {
	tests := []struct {
		level int
		want  int
	}{
		{1, 25},
		{2, 35},
		{5, 65},
	}

	for _, tt := range tests {
		if got := Threshold(tt.level); got != tt.want {
			t.Errorf("Threshold(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestLevelUp(t *testing.T) {
	gains := gamedata.LevelUpDef{HP: 10, Attack: 3}

	tests := []struct {
		name       string
		level, exp int
		wantLevel  int
		wantExp    int
		wantGained int
	}{
		{"below threshold", 1, 24, 1, 24, 0},
		{"exactly threshold", 1, 25, 2, 0, 1},
		{"one level with carry", 1, 33, 2, 8, 1},
		{"two levels at once", 1, 25 + 35 + 10, 3, 10, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := entity.NewPlayer(gamedata.StartDef{HP: 30, Attack: 5})
			p.Level, p.Exp, p.HP = tt.level, tt.exp, 12

			got, gained := LevelUp(p, gains)

			if got.Level != tt.wantLevel || got.Exp != tt.wantExp || gained != tt.wantGained {
				t.Errorf("LevelUp() = level %d exp %d gained %d, want %d %d %d",
					got.Level, got.Exp, gained, tt.wantLevel, tt.wantExp, tt.wantGained)
			}
			if got.Exp >= Threshold(got.Level) {
				t.Errorf("exp %d left at or above threshold %d", got.Exp, Threshold(got.Level))
			}
			if got.MaxHP != 30+10*gained || got.Attack != 5+3*gained {
				t.Errorf("stats = %d max HP, %d attack", got.MaxHP, got.Attack)
			}
			if gained > 0 && got.HP != got.MaxHP {
				t.Errorf("HP = %d, want full heal to %d", got.HP, got.MaxHP)
			}
			if gained == 0 && got.HP != 12 {
				t.Errorf("HP changed without a level: %d", got.HP)
			}
		})
	}
}

func TestVictoryLevelsUp(t *testing.T) {
	e := newTestEngine(t, "classic", &fakeRand{})
	s := inBattle(t, e, e.NewState(), "goblin")
	s.Player.Exp = 20
	s.Player.HP = 5
	s.Battle.Enemy.HP = 1

	next := e.Apply(ctx, s, Do(ActAttack))

	if next.Player.Level != 2 || next.Player.Exp != 13 {
		t.Errorf("level %d exp %d, want 2 and 13", next.Player.Level, next.Player.Exp)
	}
	if next.Player.MaxHP != 40 || next.Player.HP != 40 || next.Player.Attack != 8 {
		t.Errorf("player after level up = %+v", next.Player)
	}
	if !strings.Contains(next.Message, "*** You leveled up! Now level 2 ***") {
		t.Errorf("message = %q", next.Message)
	}
}
