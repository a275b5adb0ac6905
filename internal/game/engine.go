package game

import (
	"context"
	"io"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/gridquest/internal/combat"
	"github.com/samdwyer/gridquest/internal/entity"
	"github.com/samdwyer/gridquest/internal/gamedata"
	"github.com/samdwyer/gridquest/internal/telemetry"
	"github.com/samdwyer/gridquest/internal/world"
)

// Engine applies actions to game states under one variant's rules.
// It holds no game state of its own. Rolls come from rng and IDs from
// the ID source, if one is set.
type Engine struct {
	variant  *gamedata.VariantDef
	enemies  *gamedata.EnemyRegistry
	grid     *world.Grid
	rng      combat.Rand
	resolver *combat.Resolver
	tracer   trace.Tracer
	ids      io.Reader // nil draws IDs from crypto/rand
}

// EngineOption customises an Engine.
type EngineOption func(*Engine)

// WithTracer replaces the default "game" tracer.
func WithTracer(t trace.Tracer) EngineOption {
	return func(e *Engine) { e.tracer = t }
}

// WithIDSource draws battle and enemy IDs from r, so a seeded source
// makes them repeat across runs.
func WithIDSource(r io.Reader) EngineOption {
	return func(e *Engine) { e.ids = r }
}

// NewEngine creates an engine for the variant, drawing enemies from the registry.
func NewEngine(variant *gamedata.VariantDef, enemies *gamedata.EnemyRegistry, rng combat.Rand, opts ...EngineOption) *Engine {
	e := &Engine{
		variant:  variant,
		enemies:  enemies,
		grid:     world.NewGrid(variant.GridSize, variant.ShopEnabled),
		rng:      rng,
		resolver: combat.NewResolver(rng),
		tracer:   telemetry.Tracer("game"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Variant returns the rules the engine runs.
func (e *Engine) Variant() *gamedata.VariantDef {
	return e.variant
}

// Grid returns the map.
func (e *Engine) Grid() *world.Grid {
	return e.grid
}

// newID returns a fresh battle or enemy ID.
func (e *Engine) newID() string {
	if e.ids == nil {
		return uuid.NewString()
	}
	id, err := uuid.NewRandomFromReader(e.ids)
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// NewState returns the starting state: a fresh player in the top-left corner.
func (e *Engine) NewState() State {
	var b strings.Builder
	b.WriteString("Use arrow keys or WASD to move.")
	if e.variant.ShopEnabled {
		b.WriteString("\nFind the shop in the far corner ($) and press I to open it.")
	}
	return State{
		Mode:    ModeExplore,
		Player:  entity.NewPlayer(e.variant.Start),
		Message: b.String(),
	}
}

// Apply returns the state that results from performing a on s.
// Invalid actions return an equal state, at most with a new message.
func (e *Engine) Apply(ctx context.Context, s State, a Action) State {
	ctx, span := e.tracer.Start(ctx, "game.action")
	span.SetAttributes(
		attribute.String("action", a.Kind.String()),
		attribute.String("mode", s.Mode.String()),
	)
	defer span.End()

	next := s.Clone()

	switch a.Kind {
	case ActMove:
		e.tryMove(ctx, &next, a.DX, a.DY)
	case ActAttack:
		e.attack(ctx, &next)
	case ActHeal:
		e.heal(ctx, &next)
	case ActFlee:
		e.flee(ctx, &next)
	case ActUsePotion:
		e.usePotion(ctx, &next)
	case ActToggleShop:
		e.toggleShop(&next)
	case ActBuyPotion:
		e.buyPotion(ctx, &next)
	case ActEnemyTurn:
		e.enemyTurn(ctx, &next, a.BattleID, a.Turn)
	case ActRestart:
		if next.Mode == ModeDefeat {
			next = e.NewState()
		}
	}

	span.SetAttributes(
		attribute.String("mode.after", next.Mode.String()),
		attribute.Int("player.hp", next.Player.HP),
	)
	return next
}

// BattleHelp lists the battle keys available in this variant.
func (e *Engine) BattleHelp() string {
	help := "A: attack | H: heal"
	if e.variant.CanFlee {
		help += " | R: run"
	}
	return help
}
