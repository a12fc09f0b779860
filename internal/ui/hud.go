//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"data-desert/internal/core"
)

// HUD renders the parameter panel to the right of the simulation view.
type HUD struct {
	sim      core.Sim
	run      RunState
	controls *Controls
	width    int
	offsetX  int
	title    string
	buttons  []hudButtons
}

type hudButtons struct {
	top   int
	minus image.Rectangle
	plus  image.Rectangle
}

var (
	panelColor    = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	headerColor   = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor    = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	mutedColor    = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	buttonColor   = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	buttonOff     = color.RGBA{R: 32, G: 34, B: 40, A: 255}
	buttonLabel   = color.RGBA{R: 230, G: 230, B: 240, A: 255}
	buttonLabelNo = color.RGBA{R: 120, G: 120, B: 130, A: 255}
)

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, run RunState, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{
		sim:      sim,
		run:      run,
		controls: NewControls(sim),
		width:    width,
		title:    buildTitle(sim),
	}
	h.layout()
	return h
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes control values and handles +/- clicks. The panel is
// drawn starting at offsetX.
func (h *HUD) Update(offsetX int) {
	if h == nil || h.width == 0 {
		return
	}
	h.offsetX = offsetX
	h.controls.Refresh()
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < offsetX {
		return
	}
	px := mx - offsetX
	for i, b := range h.buttons {
		switch {
		case image.Pt(px, my).In(b.minus):
			h.controls.Adjust(i, -1)
			return
		case image.Pt(px, my).In(b.plus):
			h.controls.Adjust(i, 1)
			return
		}
	}
}

// Draw paints the panel at the offset given to Update.
func (h *HUD) Draw(screen *ebiten.Image, height int) {
	if h == nil || h.width == 0 || height <= 0 {
		return
	}
	x0 := float32(h.offsetX)
	vector.FillRect(screen, x0, 0, float32(h.width), float32(height), panelColor, false)

	face := basicfont.Face7x13
	text.Draw(screen, h.title, face, h.offsetX+panelPadding, panelPadding+headerBaseline, headerColor)
	if h.controls.Len() == 0 {
		text.Draw(screen, "No adjustable parameters", face, h.offsetX+panelPadding, controlsTop+labelBaseline, mutedColor)
	}
	for i, b := range h.buttons {
		row := h.controls.Row(i)
		y := b.top + labelBaseline
		text.Draw(screen, row.Label, face, h.offsetX+panelPadding, y, labelColor)
		valueWidth := text.BoundString(face, row.Value).Dx()
		text.Draw(screen, row.Value, face, h.offsetX+b.minus.Min.X-buttonGap-valueWidth, y, labelColor)
		h.drawButton(screen, b.minus, "-", row.CanDecrease)
		h.drawButton(screen, b.plus, "+", row.CanIncrease)
	}

	y := controlsTop + len(h.buttons)*lineHeight + infoSpacing
	for _, line := range StatusLines(h.sim, h.run) {
		text.Draw(screen, line, face, h.offsetX+panelPadding, y, mutedColor)
		y += statusSpacing
	}
	y += statusSpacing
	for _, line := range keyHelp {
		text.Draw(screen, line, face, h.offsetX+panelPadding, y, mutedColor)
		y += statusSpacing
	}
}

func (h *HUD) drawButton(screen *ebiten.Image, rect image.Rectangle, label string, enabled bool) {
	bg, fg := buttonColor, buttonLabel
	if !enabled {
		bg, fg = buttonOff, buttonLabelNo
	}
	r := rect.Add(image.Pt(h.offsetX, 0))
	vector.FillRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), bg, false)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := r.Min.X + (r.Dx()-bounds.Dx())/2
	y := r.Min.Y + (r.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(screen, label, face, x, y, fg)
}

func (h *HUD) layout() {
	h.buttons = make([]hudButtons, h.controls.Len())
	for i := range h.buttons {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plus := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minus := image.Rect(plus.Min.X-buttonGap-buttonSize, buttonY, plus.Min.X-buttonGap, buttonY+buttonSize)
		h.buttons[i] = hudButtons{top: top, minus: minus, plus: plus}
	}
}

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Controls"
	}
	name := sim.Name()
	return fmt.Sprintf("%s%s controls", strings.ToUpper(name[:1]), name[1:])
}

var keyHelp = []string{
	"r reset  p pause  n step",
	"q/w growth  a/s decay",
	"e/d seed  c rule  +/- tps",
	"1 decay  2 age  esc quit",
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	infoSpacing    = 12
	statusSpacing  = 16
	controlsTop    = panelPadding + headerBaseline + 14
)
