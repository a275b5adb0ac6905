package game

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/samdwyer/gridquest/internal/command"
	"github.com/samdwyer/gridquest/internal/gamedata"
)

// Session plays the engine from typed commands without a terminal UI.
// Enemy replies are resolved immediately after the player's action.
type Session struct {
	engine   *Engine
	commands *command.Registry
	state    State
	out      io.Writer
}

// NewSession starts a fresh game that prints to out.
func NewSession(engine *Engine, out io.Writer) *Session {
	return &Session{
		engine:   engine,
		commands: command.Default(),
		state:    engine.NewState(),
		out:      out,
	}
}

// State returns the current game state.
func (s *Session) State() State {
	return s.state
}

// Run reads commands line by line until input ends, "quit" is read or ctx is done.
func (s *Session) Run(ctx context.Context, in io.Reader) error {
	s.println(s.state.Message)

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !s.Exec(ctx, line) {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read commands: %w", err)
	}
	return nil
}

// Exec runs one command line and reports whether the session continues.
func (s *Session) Exec(ctx context.Context, line string) bool {
	m, ok := s.commands.Resolve(line)
	if !ok {
		s.println(fmt.Sprintf("Unknown command %q.", line))
		return true
	}

	switch m.Canonical {
	case command.Quit:
		return false
	case command.Status:
		s.println(s.statusLine())
		return true
	}

	a, ok := commandAction(m.Canonical)
	if !ok {
		return true
	}

	s.state = s.engine.Apply(ctx, s.state, a)
	s.println(s.state.Message)

	if id, turn, ok := s.state.AwaitingEnemy(); ok {
		s.state = s.engine.Apply(ctx, s.state, EnemyTurn(id, turn))
		s.println(s.state.Message)
	}
	return true
}

// commandAction translates a canonical command into an engine action.
func commandAction(canonical string) (Action, bool) {
	switch canonical {
	case command.North:
		return Move(0, -1), true
	case command.South:
		return Move(0, 1), true
	case command.East:
		return Move(1, 0), true
	case command.West:
		return Move(-1, 0), true
	case command.Attack:
		return Do(ActAttack), true
	case command.Heal:
		return Do(ActHeal), true
	case command.Run:
		return Do(ActFlee), true
	case command.Shop:
		return Do(ActToggleShop), true
	case command.Buy:
		return Do(ActBuyPotion), true
	case command.Potion:
		return Do(ActUsePotion), true
	case command.Restart:
		return Do(ActRestart), true
	}
	return Action{}, false
}

func (s *Session) statusLine() string {
	p := s.state.Player
	line := fmt.Sprintf("[%s] pos (%d,%d) HP %d/%d LV %d EXP %d/%d ATK %d Gold %d Potions %d",
		s.state.Mode, p.X, p.Y, p.HP, p.MaxHP, p.Level, p.Exp, Threshold(p.Level),
		p.TotalAttack(), p.Gold, p.Count(gamedata.ItemPotion))
	if s.state.InBattle() {
		e := s.state.Battle.Enemy
		line += fmt.Sprintf(" | %s HP %d/%d", e.Name, e.HP, e.MaxHP)
	}
	return line
}

func (s *Session) println(msg string) {
	fmt.Fprintln(s.out, msg)
}
