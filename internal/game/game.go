package game

import (
	"context"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/gridquest/internal/telemetry"
	"github.com/samdwyer/gridquest/internal/ui"
)

// Game runs the engine against a terminal screen.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	engine   *Engine
	sched    *Scheduler
	state    State
	running  bool
	buttons  tcell.ButtonMask // Mouse buttons held at the last mouse event
}

// New creates a new game instance.
func New(cfg Config) (*Game, error) {
	engine, sched, err := Build(cfg)
	if err != nil {
		return nil, err
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		engine:   engine,
		sched:    sched,
		state:    engine.NewState(),
		running:  true,
	}, nil
}

// Run executes the main game loop until the player quits or ctx is done.
// All state changes happen on this goroutine; a helper goroutine only
// forwards terminal events.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	ctx, initSpan := tracer.Start(ctx, "game.init")
	v := g.engine.Variant()
	initSpan.SetAttributes(
		attribute.String("variant", v.ID),
		attribute.Int("grid.size", v.GridSize),
		attribute.Int64("enemy_delay_ms", g.sched.Delay().Milliseconds()),
	)
	initSpan.End()

	done := make(chan struct{})
	defer close(done)
	events := g.pollEvents(done)

	for g.running {
		g.renderer.Render(g.view())

		var timer <-chan time.Time
		if due, ok := g.sched.Next(); ok {
			timer = time.After(time.Until(due))
		}

		select {
		case <-ctx.Done():
			g.running = false
		case ev, ok := <-events:
			if !ok {
				g.running = false
				break
			}
			g.handleEvent(ctx, ev)
		case now := <-timer:
			if a, ok := g.sched.Due(now); ok {
				g.dispatch(ctx, a)
			}
		}
	}

	g.screen.Close()
	return nil
}

// pollEvents forwards terminal events until the screen closes or done is closed.
func (g *Game) pollEvents(done <-chan struct{}) <-chan tcell.Event {
	events := make(chan tcell.Event)
	go func() {
		defer close(events)
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()
	return events
}

// handleEvent processes a single input event.
func (g *Game) handleEvent(ctx context.Context, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		a, ok := KeyAction(g.state, g.engine.Variant(), ev.Key(), ev.Rune())
		if ok {
			g.dispatch(ctx, a)
		}
	case *tcell.EventMouse:
		// Drags repeat Button1; only the press itself clicks.
		held := g.buttons
		g.buttons = ev.Buttons()
		if ev.Buttons()&tcell.Button1 == 0 || held&tcell.Button1 != 0 {
			return
		}
		x, y := ev.Position()
		if b, ok := g.renderer.HitTest(x, y); ok {
			if a, ok := ButtonAction(b); ok {
				g.dispatch(ctx, a)
			}
		}
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// dispatch applies an action and lets the scheduler react to the new state.
func (g *Game) dispatch(ctx context.Context, a Action) {
	if a.Kind == ActQuit {
		g.running = false
		return
	}

	before := g.state.Mode
	g.state = g.engine.Apply(ctx, g.state, a)
	g.sched.Sync(g.state, time.Now())

	if g.state.Mode != before {
		log.Printf("mode %s -> %s after %s", before, g.state.Mode, a.Kind)
	}
}

// view assembles what the renderer draws for the current state.
func (g *Game) view() ui.View {
	return BuildView(g.engine, g.state)
}

// BuildView assembles the renderer input for a state.
func BuildView(e *Engine, s State) ui.View {
	v := e.Variant()
	view := ui.View{
		Title:        "GridQuest (" + v.Name + ")",
		Grid:         e.Grid(),
		Player:       s.Player,
		ShopOpen:     s.ShopOpen,
		PotionCost:   v.PotionCost,
		NextLevelExp: Threshold(s.Player.Level),
		Message:      s.Message,
		Steps:        s.Steps,
		Victories:    s.Victories,
		Defeated:     s.Mode == ModeDefeat,
	}

	if s.Last != nil {
		view.LastBattle = s.Last.Summary()
	}

	switch s.Mode {
	case ModeBattle:
		enemy := s.Battle.Enemy
		view.Enemy = &enemy
		view.Help = e.BattleHelp() + " | Q: quit"
	case ModeDefeat:
		view.Help = "N: new game | Q: quit"
	default:
		view.Help = "Arrows/WASD: move | P: potion | Q: quit"
		if v.ShopEnabled {
			view.Help = "Arrows/WASD: move | P: potion | I: shop | B: buy | Q: quit"
		}
	}
	return view
}
