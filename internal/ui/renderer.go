package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/gridquest/internal/entity"
	"github.com/samdwyer/gridquest/internal/gamedata"
	"github.com/samdwyer/gridquest/internal/world"
)

// Layout constants, in terminal cells.
const (
	cellWidth = 3 // Columns per grid tile
	gridLeft  = 1
	gridTop   = 2
	panelGap  = 4
	barWidth  = 10
)

// Button identifies a clickable control.
type Button int

const (
	ButtonNone Button = iota
	ButtonBuyPotion
	ButtonUsePotion
)

// Rect is a screen region.
type Rect struct {
	X, Y, W, H int
}

// Contains returns true if the given point is inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// View is everything the renderer needs for one frame.
type View struct {
	Title        string
	Grid         *world.Grid
	Player       entity.Player
	Enemy        *entity.Enemy // Nil outside battle
	ShopOpen     bool
	PotionCost   int
	NextLevelExp int
	Message      string
	Steps        int
	Victories    int
	LastBattle   string // Summary of the previous fight, if any
	Defeated     bool
	Help         string
}

var (
	hpColor   = gamedata.MustParseHexColor("#CC3333")
	goldColor = gamedata.MustParseHexColor("#E6C229")

	styleText   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleDim    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleTitle  = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	styleHP     = tcell.StyleDefault.Foreground(hpColor)
	styleGold   = tcell.StyleDefault.Foreground(goldColor)
	stylePlayer = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleButton = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver)
)

// Renderer handles drawing the game to a canvas.
type Renderer struct {
	canvas  Canvas
	buttons map[Button]Rect
}

// NewRenderer creates a new renderer for the given canvas.
func NewRenderer(canvas Canvas) *Renderer {
	return &Renderer{canvas: canvas, buttons: map[Button]Rect{}}
}

// Render draws one frame: the grid, the side panels and the message log.
func (r *Renderer) Render(v View) {
	r.canvas.Clear()
	r.buttons = map[Button]Rect{}

	r.drawText(gridLeft, 0, v.Title, styleTitle)
	r.drawGrid(v)

	panelX := gridLeft + v.Grid.Size*cellWidth + panelGap
	y := r.drawStats(panelX, gridTop, v)
	y = r.drawInventory(panelX, y+1, v)
	if v.Enemy != nil {
		y = r.drawEnemy(panelX, y+1, *v.Enemy)
	}
	if v.ShopOpen {
		r.drawShop(panelX, y+1, v)
	}

	msgY := gridTop + v.Grid.Size + 3
	for i, line := range strings.Split(v.Message, "\n") {
		r.drawText(gridLeft, msgY+i, line, styleText)
	}
	if v.Help != "" {
		r.drawText(gridLeft, msgY+strings.Count(v.Message, "\n")+2, v.Help, styleDim)
	}

	r.canvas.Show()
}

// HitTest returns the button under the given screen position.
func (r *Renderer) HitTest(x, y int) (Button, bool) {
	for b, rect := range r.buttons {
		if rect.Contains(x, y) {
			return b, true
		}
	}
	return ButtonNone, false
}

// ButtonRect returns where a button was last drawn.
func (r *Renderer) ButtonRect(b Button) (Rect, bool) {
	rect, ok := r.buttons[b]
	return rect, ok
}

// drawGrid draws the bordered map with the player and, in battle, the enemy beside them.
func (r *Renderer) drawGrid(v View) {
	g := v.Grid
	width := g.Size * cellWidth

	border := styleDim
	r.canvas.SetContent(gridLeft-1, gridTop-1, '+', border)
	r.canvas.SetContent(gridLeft+width, gridTop-1, '+', border)
	r.canvas.SetContent(gridLeft-1, gridTop+g.Size, '+', border)
	r.canvas.SetContent(gridLeft+width, gridTop+g.Size, '+', border)
	for x := 0; x < width; x++ {
		r.canvas.SetContent(gridLeft+x, gridTop-1, '-', border)
		r.canvas.SetContent(gridLeft+x, gridTop+g.Size, '-', border)
	}
	for y := 0; y < g.Size; y++ {
		r.canvas.SetContent(gridLeft-1, gridTop+y, '|', border)
		r.canvas.SetContent(gridLeft+width, gridTop+y, '|', border)
	}

	for y := 0; y < g.Size; y++ {
		for x := 0; x < g.Size; x++ {
			tile := g.GetTile(x, y)
			style := styleDim
			if tile == world.TileShop {
				style = styleGold
			}
			r.canvas.SetContent(gridLeft+x*cellWidth+1, gridTop+y, tile.Rune(), style)
		}
	}

	px, py := v.Player.Position()
	r.canvas.SetContent(gridLeft+px*cellWidth+1, gridTop+py, v.Player.Symbol, stylePlayer)
	if v.Enemy != nil {
		enemyStyle := tcell.StyleDefault.Foreground(v.Enemy.Color()).Bold(true)
		r.canvas.SetContent(gridLeft+px*cellWidth+2, gridTop+py, v.Enemy.Symbol, enemyStyle)
	}
}

func (r *Renderer) drawStats(x, y int, v View) int {
	p := v.Player
	r.drawText(x, y, "HP ", styleText)
	r.drawText(x+3, y, HealthBar(p.HP, p.MaxHP, barWidth), styleHP)
	r.drawText(x+4+barWidth+2, y, fmt.Sprintf("%d/%d", p.HP, p.MaxHP), styleText)
	y++

	r.drawText(x, y, fmt.Sprintf("Level %d   EXP %d/%d", p.Level, p.Exp, v.NextLevelExp), styleText)
	y++

	attack := fmt.Sprintf("Attack %d", p.TotalAttack())
	if p.Weapon != nil {
		attack += fmt.Sprintf(" (%s)", p.Weapon.Name)
	}
	r.drawText(x, y, attack, styleText)
	y++

	r.drawText(x, y, fmt.Sprintf("Gold %d", p.Gold), styleGold)
	y++

	r.drawText(x, y, fmt.Sprintf("Steps %d   Wins %d", v.Steps, v.Victories), styleDim)
	y++

	if v.LastBattle != "" {
		r.drawText(x, y, "Last: "+v.LastBattle, styleDim)
		y++
	}

	if v.Defeated {
		r.drawText(x, y, "DEFEATED", styleHP.Bold(true))
		y++
	}
	return y
}

func (r *Renderer) drawInventory(x, y int, v View) int {
	r.drawText(x, y, "Inventory", styleTitle)
	y++

	end := r.drawText(x, y, fmt.Sprintf("- Potion x%d ", v.Player.Count(gamedata.ItemPotion)), styleText)
	r.drawButton(ButtonUsePotion, end, y, "[Use]")
	y++

	if w := v.Player.Weapon; w != nil {
		r.drawText(x, y, fmt.Sprintf("- Weapon: %s (+%d ATK)", w.Name, w.Attack), styleText)
		y++
	}
	return y
}

func (r *Renderer) drawEnemy(x, y int, e entity.Enemy) int {
	r.drawText(x, y, e.Name, tcell.StyleDefault.Foreground(e.Color()).Bold(true))
	y++
	r.drawText(x, y, HealthBar(e.HP, e.MaxHP, barWidth), styleHP)
	r.drawText(x+barWidth+3, y, fmt.Sprintf("%d/%d", e.HP, e.MaxHP), styleText)
	return y + 1
}

func (r *Renderer) drawShop(x, y int, v View) int {
	r.drawText(x, y, "Shop", styleTitle)
	y++
	r.drawButton(ButtonBuyPotion, x, y, fmt.Sprintf("[ Buy Potion (%dg) ]", v.PotionCost))
	return y + 1
}

// drawButton draws a labelled control and remembers its rectangle for HitTest.
func (r *Renderer) drawButton(b Button, x, y int, label string) {
	end := r.drawText(x, y, label, styleButton)
	r.buttons[b] = Rect{X: x, Y: y, W: end - x, H: 1}
}

// drawText writes s starting at (x, y) and returns the column after the last rune.
func (r *Renderer) drawText(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		r.canvas.SetContent(x, y, ch, style)
		x++
	}
	return x
}

// HealthBar renders current/max as a bracketed bar of the given inner width.
func HealthBar(current, max, width int) string {
	filled := 0
	if max > 0 {
		filled = current * width / max
	}
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	if current > 0 && filled == 0 {
		filled = 1
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}
