// Package field implements the procedural field renderer shared by the
// surface demos: a scalar function of position and time is sampled over a
// downsampled grid every frame, mapped to color through a palette, and
// composited into an RGBA pixel buffer with optional trails.
package field

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/san-kum/artcade/internal/palette"
)

// Func is a scalar field sampled at logical pixel coordinates. Values are
// normalized to [0,1] before palette mapping; NaN and Inf clamp to 0.
type Func func(x, y, t float64) float64

// ColorFunc produces a color directly, for demos whose mapping is not a
// single normalized scalar.
type ColorFunc func(x, y, t float64) color.RGBA

// Renderer rasterizes a field into a w x h RGBA buffer at a configurable
// cell size. cell > 1 trades resolution for per-frame cost, matching the
// chunky pixel look of the originals.
type Renderer struct {
	w, h   int
	cell   int
	gw, gh int
	pix    []byte
	img    *ebiten.Image
	trail  float64
}

// New creates a renderer for a w x h surface sampled every cell pixels.
func New(w, h, cell int) *Renderer {
	if cell < 1 {
		cell = 1
	}
	return &Renderer{
		w:    w,
		h:    h,
		cell: cell,
		gw:   (w + cell - 1) / cell,
		gh:   (h + cell - 1) / cell,
		pix:  make([]byte, w*h*4),
	}
}

// SetTrail enables trail compositing: previous frame channels decay by the
// given factor per frame and new samples blend over where brighter. A decay
// of 0 disables trails.
func (r *Renderer) SetTrail(decay float64) {
	if decay < 0 {
		decay = 0
	}
	if decay >= 1 {
		decay = 0.99
	}
	r.trail = decay
}

// GridSize returns the sampled grid dimensions.
func (r *Renderer) GridSize() (int, int) { return r.gw, r.gh }

// Pix exposes the backing RGBA buffer, length 4*w*h.
func (r *Renderer) Pix() []byte { return r.pix }

// Clear zeroes the buffer to opaque black.
func (r *Renderer) Clear() {
	for i := 0; i < len(r.pix); i += 4 {
		r.pix[i], r.pix[i+1], r.pix[i+2], r.pix[i+3] = 0, 0, 0, 255
	}
}

// Render samples f at every cell center and fills the buffer through the
// palette mode. phase drives hue cycling.
func (r *Renderer) Render(t float64, f Func, mode palette.Mode, phase float64) {
	r.RenderColor(t, func(x, y, tt float64) color.RGBA {
		return mode.Map(normalize(f(x, y, tt)), phase)
	})
}

// RenderColor samples cf at every cell center and fills cell blocks with
// the returned color, honoring trail compositing.
func (r *Renderer) RenderColor(t float64, cf ColorFunc) {
	half := float64(r.cell) / 2
	// row bands touch disjoint pixel ranges, so they parallelize cleanly
	parallelRows(r.gh, 16, func(gy0, gy1 int) {
		for gy := gy0; gy < gy1; gy++ {
			for gx := 0; gx < r.gw; gx++ {
				c := cf(float64(gx*r.cell)+half, float64(gy*r.cell)+half, t)
				r.fillCell(gx, gy, c)
			}
		}
	})
}

func (r *Renderer) fillCell(gx, gy int, c color.RGBA) {
	x0 := gx * r.cell
	y0 := gy * r.cell
	x1 := x0 + r.cell
	y1 := y0 + r.cell
	if x1 > r.w {
		x1 = r.w
	}
	if y1 > r.h {
		y1 = r.h
	}
	for y := y0; y < y1; y++ {
		row := y * r.w * 4
		for x := x0; x < x1; x++ {
			i := row + x*4
			if r.trail > 0 {
				r.pix[i] = maxByte(c.R, decayByte(r.pix[i], r.trail))
				r.pix[i+1] = maxByte(c.G, decayByte(r.pix[i+1], r.trail))
				r.pix[i+2] = maxByte(c.B, decayByte(r.pix[i+2], r.trail))
			} else {
				r.pix[i] = c.R
				r.pix[i+1] = c.G
				r.pix[i+2] = c.B
			}
			r.pix[i+3] = 255
		}
	}
}

// Fade applies one step of trail decay across the whole buffer without
// sampling, for demos that draw sparse primitives over a fading surface.
func (r *Renderer) Fade(decay float64) {
	for i := 0; i < len(r.pix); i += 4 {
		r.pix[i] = decayByte(r.pix[i], decay)
		r.pix[i+1] = decayByte(r.pix[i+1], decay)
		r.pix[i+2] = decayByte(r.pix[i+2], decay)
		r.pix[i+3] = 255
	}
}

// SetPixel writes one logical pixel if it is in bounds.
func (r *Renderer) SetPixel(x, y int, c color.RGBA) {
	if x < 0 || y < 0 || x >= r.w || y >= r.h {
		return
	}
	i := (y*r.w + x) * 4
	r.pix[i], r.pix[i+1], r.pix[i+2], r.pix[i+3] = c.R, c.G, c.B, 255
}

// At reads one logical pixel; out of bounds reads return black.
func (r *Renderer) At(x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= r.w || y >= r.h {
		return color.RGBA{A: 255}
	}
	i := (y*r.w + x) * 4
	return color.RGBA{R: r.pix[i], G: r.pix[i+1], B: r.pix[i+2], A: 255}
}

// Draw uploads the buffer and composites it onto dst at the origin.
func (r *Renderer) Draw(dst *ebiten.Image) {
	if r.img == nil {
		r.img = ebiten.NewImage(r.w, r.h)
	}
	r.img.WritePixels(r.pix)
	dst.DrawImage(r.img, nil)
}

func normalize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func decayByte(b byte, decay float64) byte {
	return byte(float64(b) * decay)
}

func maxByte(a, b byte) byte {
	if a > b {
		return a
	}
	return b
}
