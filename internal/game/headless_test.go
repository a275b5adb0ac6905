package game

import (
	"bytes"
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/samdwyer/gridquest/internal/entity"
	"github.com/samdwyer/gridquest/internal/gamedata"
	"github.com/samdwyer/gridquest/internal/telemetry"
)

func TestSessionRun(t *testing.T) {
	e := newTestEngine(t, "classic", &fakeRand{})
	var out bytes.Buffer
	sess := NewSession(e, &out)

	script := strings.Join([]string{
		"# walk a little",
		"status",
		"",
		"east",
		"so",
		"xyzzy",
		"quit",
		"north",
	}, "\n")

	if err := sess.Run(ctx, strings.NewReader(script)); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	p := sess.State().Player
	if p.X != 1 || p.Y != 1 {
		t.Errorf("position = (%d,%d), want (1,1)", p.X, p.Y)
	}

	got := out.String()
	for _, want := range []string{
		"[explore] pos (0,0) HP 30/30 LV 1 EXP 0/25 ATK 5 Gold 10 Potions 2",
		"You moved. No enemies here.",
		`Unknown command "xyzzy".`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestSessionBattleWithTypo(t *testing.T) {
	// Encounter on the first step; uniform roll 0 picks the slime.
	e := newTestEngine(t, "classic", &fakeRand{floats: []float64{0.1}, ints: []int{0, 0, 0}})
	var out bytes.Buffer
	sess := NewSession(e, &out)

	if !sess.Exec(ctx, "east") {
		t.Fatal("session ended early")
	}
	if !sess.State().InBattle() {
		t.Fatal("expected a battle")
	}

	sess.Exec(ctx, "atack")

	s := sess.State()
	if s.Battle.Enemy.HP != 10 || s.Player.HP != 27 {
		t.Errorf("slime HP %d player HP %d, want 10 and 27", s.Battle.Enemy.HP, s.Player.HP)
	}
	if s.Battle.Phase != PhasePlayer || s.Battle.Turn != 1 {
		t.Errorf("battle = %+v", *s.Battle)
	}
	if !strings.Contains(out.String(), "The Slime hits you for 3 damage!") {
		t.Errorf("output = %s", out.String())
	}

	// "a" is not shorthand for anything in typed play.
	before := out.Len()
	sess.Exec(ctx, "a")
	if !strings.Contains(out.String()[before:], `Unknown command "a".`) {
		t.Errorf("single letter a was not reported: %q", out.String()[before:])
	}

	sess.Exec(ctx, "status")
	if !strings.Contains(out.String(), "| Slime HP 10/15") {
		t.Errorf("status missing enemy:\n%s", out.String())
	}
}

func TestSessionStopsOnCancel(t *testing.T) {
	e := newTestEngine(t, "classic", &fakeRand{})
	cctx, cancel := context.WithCancel(ctx)
	cancel()

	err := NewSession(e, &bytes.Buffer{}).Run(cctx, strings.NewReader("east\n"))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
}

func TestBuild(t *testing.T) {
	opt := WithTracer(telemetry.NoopTracer())

	e, sched, err := Build(Config{Variant: "scaled", Seed: 7}, opt)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if e.Variant().ID != "scaled" || sched.Delay() != 700*time.Millisecond {
		t.Errorf("variant %s delay %v", e.Variant().ID, sched.Delay())
	}

	_, sched, err = Build(Config{EnemyDelay: 0, HasEnemyDelay: true}, opt)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if sched.Delay() != 0 {
		t.Errorf("delay override ignored: %v", sched.Delay())
	}

	if _, _, err := Build(Config{Variant: "nope"}, opt); !errors.Is(err, gamedata.ErrNotFound) {
		t.Errorf("Build(unknown) error = %v, want ErrNotFound", err)
	}
}

func TestBuildSameSeedSameBattle(t *testing.T) {
	walk := func() State {
		e, _, err := Build(Config{Seed: 7}, WithTracer(telemetry.NoopTracer()))
		if err != nil {
			t.Fatalf("Build() error = %v", err)
		}
		s := e.NewState()
		for i := 0; i < 200 && !s.InBattle(); i++ {
			dx := 1
			if i%2 == 1 {
				dx = -1
			}
			s = e.Apply(ctx, s, Move(dx, 0))
		}
		return s
	}

	a, b := walk(), walk()
	if !a.InBattle() {
		t.Fatal("no encounter in 200 steps")
	}
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed gave different states:\n%+v\n%+v", a.Battle, b.Battle)
	}
}

func TestBuildView(t *testing.T) {
	e := newTestEngine(t, "classic", &fakeRand{})

	v := BuildView(e, e.NewState())
	if v.Enemy != nil || v.Defeated || v.PotionCost != 10 || v.NextLevelExp != 25 {
		t.Errorf("explore view = %+v", v)
	}
	if !strings.Contains(v.Help, "I: shop") {
		t.Errorf("help = %q", v.Help)
	}

	v = BuildView(e, inBattle(t, e, e.NewState(), "goblin"))
	if v.Enemy == nil || v.Enemy.Name != "Goblin" || !strings.Contains(v.Help, "R: run") {
		t.Errorf("battle view enemy = %+v help %q", v.Enemy, v.Help)
	}

	won := e.NewState()
	won.Last = &BattleReport{Enemy: entity.Enemy{Name: "Slime"}, Outcome: OutcomeVictory, Turns: 1}
	if v = BuildView(e, won); v.LastBattle != "Slime, victory in 1 turn" {
		t.Errorf("LastBattle = %q", v.LastBattle)
	}

	v = BuildView(e, State{Mode: ModeDefeat, Player: e.NewState().Player})
	if !v.Defeated || !strings.HasPrefix(v.Help, "N: new game") {
		t.Errorf("defeat view = %+v", v)
	}
}
