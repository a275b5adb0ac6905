package game

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/gridquest/internal/entity"
	"github.com/samdwyer/gridquest/internal/gamedata"
)

// Threshold returns the experience needed to advance from the given level.
func Threshold(level int) int {
	return 15 + level*10
}

// LevelUp spends experience on as many levels as it covers.
// Each level adds the variant's gains and fully heals the player.
// It returns the updated player and the number of levels gained.
func LevelUp(p entity.Player, gains gamedata.LevelUpDef) (entity.Player, int) {
	gained := 0
	for need := Threshold(p.Level); p.Exp >= need; need = Threshold(p.Level) {
		p.Level++
		p.Exp -= need
		p.MaxHP += gains.HP
		p.Attack += gains.Attack
		p.HP = p.MaxHP
		gained++
	}
	return p, gained
}

// levelUp runs the level-up check after an experience gain.
func (e *Engine) levelUp(ctx context.Context, s *State) {
	from := s.Player.Level

	var gained int
	s.Player, gained = LevelUp(s.Player, e.variant.LevelUp)
	if gained == 0 {
		return
	}

	for lvl := from + 1; lvl <= s.Player.Level; lvl++ {
		s.Message += fmt.Sprintf("\n*** You leveled up! Now level %d ***", lvl)
	}

	_, span := e.tracer.Start(ctx, "player.level_up")
	span.SetAttributes(
		attribute.Int("level.from", from),
		attribute.Int("level.to", s.Player.Level),
		attribute.Int("player.max_hp", s.Player.MaxHP),
		attribute.Int("player.attack", s.Player.Attack),
	)
	span.End()
}
