//go:build ebiten

package app

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"data-desert/internal/core"
	"data-desert/internal/render"
	"data-desert/internal/ui"
	"data-desert/pkg/sims/life"
)

// HUDWidth is the width of the parameter panel beside the grid.
const HUDWidth = 220

// keyBindings maps ebiten keys onto the shared key names.
var keyBindings = []struct {
	key  ebiten.Key
	name string
}{
	{ebiten.KeyR, "r"},
	{ebiten.KeyP, "p"},
	{ebiten.KeyN, "n"},
	{ebiten.KeyQ, "q"},
	{ebiten.KeyW, "w"},
	{ebiten.KeyA, "a"},
	{ebiten.KeyS, "s"},
	{ebiten.KeyE, "e"},
	{ebiten.KeyD, "d"},
	{ebiten.KeyC, "c"},
	{ebiten.KeyEqual, "+"},
	{ebiten.KeyNumpadAdd, "+"},
	{ebiten.KeyMinus, "-"},
	{ebiten.KeyNumpadSubtract, "-"},
	{ebiten.KeyEscape, "esc"},
}

// Game adapts a Loop to the ebiten.Game interface.
type Game struct {
	loop    *Loop
	theme   life.Theme
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay

	canvasW int
	canvasH int
}

// New constructs a Game drawing loop's simulation with theme.
func New(loop *Loop, theme life.Theme) *Game {
	size := loop.Sim().Size()
	w, h := theme.CanvasSize(size.W, size.H)
	return &Game{
		loop:    loop,
		theme:   theme,
		painter: render.NewGridPainter(w, h),
		hud:     ui.NewHUD(loop.Sim(), loop, HUDWidth),
		overlay: ui.NewOverlay(loop.Sim(), theme),
		canvasW: w,
		canvasH: h,
	}
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.key) && g.loop.Dispatch(core.CommandForKey(b.name)) {
			return ebiten.Termination
		}
	}
	g.overlay.Update()
	g.hud.Update(g.canvasW)
	g.handlePointer()
	g.loop.Advance()
	return nil
}

func (g *Game) handlePointer() {
	var mode core.PaintMode
	switch {
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		mode = core.PaintActivate
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		mode = core.PaintDeactivate
	default:
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < 0 || my < 0 || mx >= g.canvasW || my >= g.canvasH {
		return
	}
	x, y := g.theme.CellAt(mx, my)
	g.loop.Paint(x, y, mode)
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	cells := life.RenderCells(g.loop.Sim().Grid(), g.theme)
	g.painter.Paint(screen, cells, g.theme.Background)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.canvasH)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.canvasW + g.hud.Width(), g.canvasH
}

// Run opens the window and blocks until the user quits.
func Run(loop *Loop, theme life.Theme, title string) error {
	game := New(loop, theme)
	w, h := game.Layout(0, 0)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(w, h)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
