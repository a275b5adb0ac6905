package game

import (
	"testing"
	"time"
)

func TestSchedulerDue(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	s := NewScheduler(700 * time.Millisecond)

	if _, ok := s.Next(); ok {
		t.Fatal("new scheduler has a pending turn")
	}

	s.Schedule("b1", 2, now)
	due, ok := s.Next()
	if !ok || !due.Equal(now.Add(700*time.Millisecond)) {
		t.Fatalf("Next() = %v, %v", due, ok)
	}

	if _, ok := s.Due(now.Add(699 * time.Millisecond)); ok {
		t.Error("turn fired early")
	}

	a, ok := s.Due(due)
	if !ok {
		t.Fatal("turn did not fire at its due time")
	}
	if a.Kind != ActEnemyTurn || a.BattleID != "b1" || a.Turn != 2 {
		t.Errorf("Due() = %+v", a)
	}
	if s.Pending() {
		t.Error("turn still pending after firing")
	}
}

func TestSchedulerNegativeDelay(t *testing.T) {
	s := NewScheduler(-time.Second)
	if s.Delay() != 0 {
		t.Errorf("Delay() = %v, want 0", s.Delay())
	}
}

func TestSchedulerSync(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	s := NewScheduler(time.Second)

	awaiting := State{
		Mode:   ModeBattle,
		Battle: &Battle{ID: "b1", Phase: PhaseEnemy, Turn: 0},
	}

	s.Sync(awaiting, now)
	first, ok := s.Next()
	if !ok {
		t.Fatal("Sync did not schedule the owed turn")
	}

	// Syncing the same turn again keeps the original due time.
	s.Sync(awaiting, now.Add(500*time.Millisecond))
	if due, _ := s.Next(); !due.Equal(first) {
		t.Errorf("due moved from %v to %v", first, due)
	}

	// A later turn replaces the queued one.
	next := awaiting.Clone()
	next.Battle.Turn = 1
	s.Sync(next, now.Add(2*time.Second))
	a, ok := s.Due(now.Add(3 * time.Second))
	if !ok || a.Turn != 1 {
		t.Errorf("Due() = %+v, %v, want turn 1", a, ok)
	}

	// A state that owes nothing clears the queue.
	s.Schedule("b1", 1, now)
	s.Sync(State{Mode: ModeExplore}, now)
	if s.Pending() {
		t.Error("Sync kept a turn for a finished battle")
	}
}

func TestSchedulerDrivesBattle(t *testing.T) {
	e := newTestEngine(t, "classic", &fakeRand{ints: []int{0, 0}})
	sched := NewScheduler(700 * time.Millisecond)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	s := inBattle(t, e, e.NewState(), "slime")
	s = e.Apply(ctx, s, Do(ActAttack))
	sched.Sync(s, now)

	a, ok := sched.Due(now.Add(700 * time.Millisecond))
	if !ok {
		t.Fatal("no enemy turn queued after attacking")
	}
	s = e.Apply(ctx, s, a)
	sched.Sync(s, now.Add(700*time.Millisecond))

	if s.Player.HP != 27 || s.Battle.Phase != PhasePlayer {
		t.Errorf("after enemy turn: HP %d phase %v", s.Player.HP, s.Battle.Phase)
	}
	if sched.Pending() {
		t.Error("turn queued while waiting on the player")
	}
}
