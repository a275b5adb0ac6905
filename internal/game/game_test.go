package game

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/gridquest/internal/gamedata"
	"github.com/samdwyer/gridquest/internal/ui"
)

type blankCanvas struct{}

func (blankCanvas) Clear()                                 {}
func (blankCanvas) Show()                                  {}
func (blankCanvas) SetContent(int, int, rune, tcell.Style) {}

// newTestGame builds a loop without a terminal and draws one frame so
// buttons have positions.
func newTestGame(e *Engine, s State) *Game {
	g := &Game{
		renderer: ui.NewRenderer(blankCanvas{}),
		engine:   e,
		sched:    NewScheduler(0),
		state:    s,
		running:  true,
	}
	g.renderer.Render(g.view())
	return g
}

func TestMouseDragClicksOnce(t *testing.T) {
	e := newTestEngine(t, "classic", &fakeRand{})
	s := atShop(e)
	s.Player.Gold = 30
	g := newTestGame(e, s)

	rect, ok := g.renderer.ButtonRect(ui.ButtonBuyPotion)
	if !ok {
		t.Fatal("buy button not drawn")
	}

	press := tcell.NewEventMouse(rect.X, rect.Y, tcell.Button1, tcell.ModNone)
	drag := tcell.NewEventMouse(rect.X+1, rect.Y, tcell.Button1, tcell.ModNone)
	release := tcell.NewEventMouse(rect.X+1, rect.Y, tcell.ButtonNone, tcell.ModNone)

	for _, ev := range []*tcell.EventMouse{press, drag, drag, release} {
		g.handleEvent(ctx, ev)
		g.renderer.Render(g.view())
	}

	if g.state.Player.Gold != 20 || g.state.Player.Count(gamedata.ItemPotion) != 3 {
		t.Fatalf("after one click: gold %d potions %d, want 20 and 3",
			g.state.Player.Gold, g.state.Player.Count(gamedata.ItemPotion))
	}

	// A new press after releasing is a second click.
	g.handleEvent(ctx, press)
	if g.state.Player.Gold != 10 {
		t.Errorf("after second click: gold %d, want 10", g.state.Player.Gold)
	}
}

func TestMousePressOutsideButtons(t *testing.T) {
	e := newTestEngine(t, "classic", &fakeRand{})
	s := atShop(e)
	g := newTestGame(e, s)

	rect, _ := g.renderer.ButtonRect(ui.ButtonBuyPotion)

	// Pressing elsewhere and dragging onto the button is not a click.
	g.handleEvent(ctx, tcell.NewEventMouse(0, 0, tcell.Button1, tcell.ModNone))
	g.handleEvent(ctx, tcell.NewEventMouse(rect.X, rect.Y, tcell.Button1, tcell.ModNone))

	if g.state.Player.Gold != s.Player.Gold {
		t.Errorf("gold = %d, want %d", g.state.Player.Gold, s.Player.Gold)
	}
}
