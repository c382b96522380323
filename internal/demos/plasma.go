// Package demos holds the launchable scenes. Each one is a flat struct
// implementing engine.Scene; the mathy ones rasterize on the CPU through
// a field.Renderer so they can step headless.
package demos

import (
	"fmt"
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/san-kum/artcade/internal/engine"
	"github.com/san-kum/artcade/internal/field"
	"github.com/san-kum/artcade/internal/palette"
)

// Plasma is the sum-of-sines interference field.
type Plasma struct {
	r     *field.Renderer
	t     float64
	speed float64
	scale float64
	mode  palette.Mode
}

func NewPlasma() *Plasma {
	return &Plasma{
		r:     field.New(engine.Width, engine.Height, 2),
		speed: 1.0,
		scale: 1.0,
		mode:  palette.Cyberpunk,
	}
}

func (p *Plasma) Name() string { return "plasma" }

func (p *Plasma) Reset(seed int64) {
	p.t = 0
	p.r.Clear()
}

func (p *Plasma) Params() map[string]float64 {
	return map[string]float64{"speed": p.speed, "scale": p.scale}
}

func (p *Plasma) SetParam(key string, v float64) {
	switch key {
	case "speed":
		p.speed = clamp(v, 0.1, 5)
	case "scale":
		p.scale = clamp(v, 0.2, 4)
	}
}

func (p *Plasma) HandleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		p.speed = clamp(p.speed+0.2, 0.1, 5)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		p.speed = clamp(p.speed-0.2, 0.1, 5)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		p.scale = clamp(p.scale+0.2, 0.2, 4)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		p.scale = clamp(p.scale-0.2, 0.2, 4)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		p.mode = p.mode.Next()
	}
}

func (p *Plasma) Step(dt float64) {
	p.t += dt * p.speed
	s := 0.035 * p.scale
	cx, cy := float64(engine.Width)/2, float64(engine.Height)/2
	t := p.t
	p.r.Render(t, func(x, y, t float64) float64 {
		v := math.Sin(x*s + t)
		v += math.Sin(y*s*1.3 + t*1.4)
		v += math.Sin((x+y)*s*0.7 + t*0.8)
		dx, dy := x-cx, y-cy
		v += math.Sin(math.Sqrt(dx*dx+dy*dy)*s*1.1 + t*1.7)
		return (v + 4) / 8
	}, p.mode, t*0.05)
}

func (p *Plasma) Draw(screen *ebiten.Image) {
	p.r.Draw(screen)
}

func (p *Plasma) StatusLine() string {
	return fmt.Sprintf("speed %.1f  scale %.1f  palette %s  [P] cycle", p.speed, p.scale, p.mode)
}

func (p *Plasma) Snapshot() *image.RGBA { return p.r.Snapshot() }

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (p *Plasma) SetPaletteName(name string) { p.mode = palette.ByName(name) }
