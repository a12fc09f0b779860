package render

import (
	"image/color"
	"math"

	"data-desert/pkg/sims/life"
)

// Rasterize fills an RGBA buffer of width*height pixels with bg and then
// draws each tile, clipping anything that falls outside the buffer.
func Rasterize(buf []byte, width, height int, cells []life.RenderCell, bg color.RGBA) {
	if width <= 0 || height <= 0 || len(buf) < 4*width*height {
		return
	}
	for i := 0; i < width*height; i++ {
		putRGBA(buf, i*4, bg)
	}
	for _, c := range cells {
		x0, y0 := maxInt(c.X, 0), maxInt(c.Y, 0)
		x1, y1 := minInt(c.X+c.W, width), minInt(c.Y+c.H, height)
		for y := y0; y < y1; y++ {
			row := y * width
			for x := x0; x < x1; x++ {
				putRGBA(buf, (row+x)*4, c.Color)
			}
		}
	}
}

// FillMask converts per-cell intensities in [0, 1] into premultiplied RGBA
// pixels tinted with tint. Zero cells stay transparent.
func FillMask(buf []byte, mask []float32, tint color.RGBA) {
	const (
		maxAlpha      = 140.0
		glowBase      = 0.35
		glowRange     = 0.65
		intensityBias = 0.75
	)
	if len(buf) < 4*len(mask) {
		return
	}
	for i, v := range mask {
		base := i * 4
		intensity := math.Min(math.Max(float64(v), 0), 1)
		if intensity == 0 {
			putRGBA(buf, base, color.RGBA{})
			continue
		}
		alpha := math.Round(maxAlpha * math.Pow(intensity, intensityBias))
		glow := (glowBase + glowRange*math.Sqrt(intensity)) * alpha / 255
		putRGBA(buf, base, color.RGBA{
			R: scaleComponent(tint.R, glow),
			G: scaleComponent(tint.G, glow),
			B: scaleComponent(tint.B, glow),
			A: uint8(alpha),
		})
	}
}

func putRGBA(buf []byte, base int, c color.RGBA) {
	buf[base+0] = c.R
	buf[base+1] = c.G
	buf[base+2] = c.B
	buf[base+3] = c.A
}

func scaleComponent(v uint8, f float64) uint8 {
	s := math.Round(float64(v) * f)
	if s > 255 {
		return 255
	}
	if s < 0 {
		return 0
	}
	return uint8(s)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
