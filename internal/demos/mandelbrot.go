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

// Seahorse valley, a deep point with structure at every zoom level.
const (
	mandelCenterX = -0.743643887037151
	mandelCenterY = 0.131825904205330
	escapeRadius2 = 4.0
)

// Mandelbrot zooms continuously toward a fixed deep point, with an
// optional Julia view seeded from the zoom target.
type Mandelbrot struct {
	r         *field.Renderer
	zoom      float64
	zoomSpeed float64
	t         float64
	julia     bool
	mode      palette.Mode
}

func NewMandelbrot() *Mandelbrot {
	return &Mandelbrot{
		r:         field.New(engine.Width, engine.Height, 3),
		zoom:      1,
		zoomSpeed: 1.0,
		mode:      palette.Neon,
	}
}

func (m *Mandelbrot) Name() string { return "mandelbrot" }

func (m *Mandelbrot) Reset(seed int64) {
	m.zoom = 1
	m.t = 0
	m.r.Clear()
}

func (m *Mandelbrot) Params() map[string]float64 {
	return map[string]float64{"zoom_speed": m.zoomSpeed}
}

func (m *Mandelbrot) SetParam(key string, v float64) {
	if key == "zoom_speed" {
		m.zoomSpeed = clamp(v, 0.1, 4)
	}
}

func (m *Mandelbrot) HandleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		m.zoomSpeed = clamp(m.zoomSpeed+0.2, 0.1, 4)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		m.zoomSpeed = clamp(m.zoomSpeed-0.2, 0.1, 4)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		m.mode = m.mode.Next()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyJ) {
		m.julia = !m.julia
	}
}

// MaxIter grows with zoom depth so detail keeps resolving.
func (m *Mandelbrot) MaxIter() int {
	return 48 + int(16*math.Log2(m.zoom+1))
}

func (m *Mandelbrot) Step(dt float64) {
	m.t += dt
	m.zoom *= 1 + 0.35*m.zoomSpeed*dt
	if m.zoom > 1e13 {
		// float64 precision exhausted, restart the dive
		m.zoom = 1
	}

	maxIter := m.MaxIter()
	span := 3.0 / m.zoom
	aspect := float64(engine.Height) / float64(engine.Width)
	m.r.Render(m.t, func(x, y, t float64) float64 {
		cr := mandelCenterX + (x/engine.Width-0.5)*span
		ci := mandelCenterY + (y/engine.Height-0.5)*span*aspect
		var v float64
		if m.julia {
			v = escapeValue(cr, ci, mandelCenterX, mandelCenterY, maxIter)
		} else {
			v = escapeValue(0, 0, cr, ci, maxIter)
		}
		return v
	}, m.mode, m.t*0.03)
}

// escapeValue iterates z = z^2 + c and returns a smooth [0,1] coloring
// value; interior points map to 0.
func escapeValue(zr, zi, cr, ci float64, maxIter int) float64 {
	for i := 0; i < maxIter; i++ {
		zr2, zi2 := zr*zr, zi*zi
		if zr2+zi2 > escapeRadius2 {
			// smooth iteration count
			mu := float64(i) + 1 - math.Log2(math.Log(zr2+zi2)/2)
			return math.Mod(mu*0.035, 1)
		}
		zr, zi = zr2-zi2+cr, 2*zr*zi+ci
	}
	return 0
}

func (m *Mandelbrot) Draw(screen *ebiten.Image) {
	m.r.Draw(screen)
}

func (m *Mandelbrot) StatusLine() string {
	set := "mandelbrot"
	if m.julia {
		set = "julia"
	}
	return fmt.Sprintf("zoom %.2e  iter %d  %s  palette %s  [J] set [P] palette",
		m.zoom, m.MaxIter(), set, m.mode)
}

func (m *Mandelbrot) Snapshot() *image.RGBA { return m.r.Snapshot() }

func (m *Mandelbrot) SetPaletteName(name string) { m.mode = palette.ByName(name) }
