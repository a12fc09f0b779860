//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"data-desert/internal/core"
	"data-desert/internal/render"
	"data-desert/pkg/sims/life"
)

type maskProvider interface {
	DecayMask() []float32
	AgeMask() []float32
}

var (
	decayTint = color.RGBA{R: 64, G: 164, B: 223}
	ageTint   = color.RGBA{R: 255, G: 120, B: 40}
)

// Overlay draws optional per-cell masks on top of the tiles. Digit 1
// toggles decay depth, digit 2 toggles live cell age.
type Overlay struct {
	sim       core.Sim
	theme     life.Theme
	showDecay bool
	showAge   bool
	maskImg   *ebiten.Image
	maskBuf   []byte
}

// NewOverlay constructs an overlay for sim drawn with theme's geometry.
func NewOverlay(sim core.Sim, theme life.Theme) *Overlay {
	return &Overlay{sim: sim, theme: theme}
}

// Update toggles masks from the keyboard.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showDecay = !o.showDecay
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showAge = !o.showAge
	}
}

// Draw renders the enabled masks onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	provider, ok := o.sim.(maskProvider)
	if !ok || (!o.showDecay && !o.showAge) {
		return
	}
	size := o.sim.Size()
	total := size.W * size.H
	if total == 0 {
		return
	}
	if o.maskImg == nil || o.maskImg.Bounds().Dx() != size.W || o.maskImg.Bounds().Dy() != size.H {
		o.maskImg = ebiten.NewImage(size.W, size.H)
		o.maskBuf = make([]byte, 4*total)
	}
	if o.showDecay {
		o.drawMask(screen, provider.DecayMask(), decayTint)
	}
	if o.showAge {
		o.drawMask(screen, provider.AgeMask(), ageTint)
	}
}

func (o *Overlay) drawMask(screen *ebiten.Image, mask []float32, tint color.RGBA) {
	if len(mask)*4 != len(o.maskBuf) {
		return
	}
	render.FillMask(o.maskBuf, mask, tint)
	o.maskImg.WritePixels(o.maskBuf)

	pitch := float64(o.theme.Pitch())
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(pitch, pitch)
	op.GeoM.Translate(float64(o.theme.Margin)/2, float64(o.theme.Margin)/2)
	screen.DrawImage(o.maskImg, op)
}
