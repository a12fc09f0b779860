//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"data-desert/pkg/sims/life"
)

// GridPainter keeps one canvas-sized image and re-uploads it every frame.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a w x h pixel canvas.
func NewGridPainter(w, h int) *GridPainter {
	return &GridPainter{w: w, h: h, img: ebiten.NewImage(w, h), buf: make([]byte, 4*w*h)}
}

// Paint rasterises the tiles and draws them onto dst at the origin.
func (gp *GridPainter) Paint(dst *ebiten.Image, cells []life.RenderCell, bg color.RGBA) {
	Rasterize(gp.buf, gp.w, gp.h, cells, bg)
	gp.img.WritePixels(gp.buf)
	dst.DrawImage(gp.img, nil)
}

// Size returns the canvas dimensions.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
