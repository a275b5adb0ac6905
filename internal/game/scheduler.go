package game

import "time"

// pendingTurn is an enemy counter-attack waiting for its due time.
type pendingTurn struct {
	action Action
	due    time.Time
}

// Scheduler paces enemy counter-attacks. It holds at most one pending
// turn, keyed by battle ID and turn number, and is drained by the game
// loop. It is not safe for concurrent use; only the loop touches it.
type Scheduler struct {
	delay   time.Duration
	pending *pendingTurn
}

// NewScheduler creates a scheduler that delays each enemy turn by delay.
func NewScheduler(delay time.Duration) *Scheduler {
	if delay < 0 {
		delay = 0
	}
	return &Scheduler{delay: delay}
}

// Delay returns the pause between a player action and the enemy reply.
func (s *Scheduler) Delay() time.Duration {
	return s.delay
}

// Schedule queues the enemy turn for the given battle turn, replacing any
// pending one.
func (s *Scheduler) Schedule(battleID string, turn int, now time.Time) {
	s.pending = &pendingTurn{
		action: EnemyTurn(battleID, turn),
		due:    now.Add(s.delay),
	}
}

// Cancel drops the pending turn, if any.
func (s *Scheduler) Cancel() {
	s.pending = nil
}

// Pending reports whether a turn is queued.
func (s *Scheduler) Pending() bool {
	return s.pending != nil
}

// Next returns the due time of the pending turn.
func (s *Scheduler) Next() (time.Time, bool) {
	if s.pending == nil {
		return time.Time{}, false
	}
	return s.pending.due, true
}

// Due returns the pending action and clears it once now has reached its due time.
func (s *Scheduler) Due(now time.Time) (Action, bool) {
	if s.pending == nil || now.Before(s.pending.due) {
		return Action{}, false
	}
	a := s.pending.action
	s.pending = nil
	return a, true
}

// Sync brings the queue in line with the state: it schedules the enemy's
// reply when one is owed and not yet queued, and cancels anything queued
// for a battle turn that no longer awaits the enemy.
func (s *Scheduler) Sync(st State, now time.Time) {
	id, turn, ok := st.AwaitingEnemy()
	if !ok {
		s.Cancel()
		return
	}
	if s.pending != nil && s.pending.action.BattleID == id && s.pending.action.Turn == turn {
		return
	}
	s.Schedule(id, turn, now)
}
