package demos

import (
	"fmt"
	"image/color"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/san-kum/artcade/internal/engine"
	"github.com/san-kum/artcade/internal/palette"
)

var rainCharsets = []struct {
	name  string
	chars string
}{
	{"binary", "01"},
	{"hex", "0123456789ABCDEF"},
	{"glyphs", "!@#$%^&*()[]{}<>/\\|+=~"},
	{"ascii", "abcdefghijklmnopqrstuvwxyz0123456789"},
}

type rainPattern int

const (
	rainSteady rainPattern = iota
	rainGusty
	rainPulse
)

var rainPatternNames = [...]string{"steady", "gusty", "pulse"}

const rainColW = 10

type rainDrop struct {
	col    int
	y      float64
	speed  float64
	glyphs []byte
	active bool
}

// MatrixRain streams glyph columns with fading tails.
type MatrixRain struct {
	drops   []rainDrop
	rng     *rand.Rand
	t       float64
	speed   float64
	density float64
	charset int
	pattern rainPattern
	mode    palette.Mode
}

func NewMatrixRain() *MatrixRain {
	return &MatrixRain{
		speed:   1.0,
		density: 0.6,
		mode:    palette.Matrix,
	}
}

func (m *MatrixRain) Name() string { return "matrixrain" }

func (m *MatrixRain) Reset(seed int64) {
	m.rng = rand.New(rand.NewSource(seed))
	m.t = 0
	cols := engine.Width / rainColW
	m.drops = make([]rainDrop, cols)
	for i := range m.drops {
		m.drops[i] = m.newDrop(i)
		m.drops[i].y = -m.rng.Float64() * engine.Height
	}
}

func (m *MatrixRain) newDrop(col int) rainDrop {
	n := 6 + m.rng.Intn(14)
	g := make([]byte, n)
	cs := rainCharsets[m.charset].chars
	for i := range g {
		g[i] = cs[m.rng.Intn(len(cs))]
	}
	return rainDrop{
		col:    col,
		y:      -float64(n * engine.GlyphH),
		speed:  (60 + m.rng.Float64()*140) * m.speed,
		glyphs: g,
		active: m.rng.Float64() < m.density,
	}
}

func (m *MatrixRain) Params() map[string]float64 {
	return map[string]float64{"speed": m.speed, "density": m.density}
}

func (m *MatrixRain) SetParam(key string, v float64) {
	switch key {
	case "speed":
		m.speed = clamp(v, 0.2, 4)
	case "density":
		m.density = clamp(v, 0.1, 1)
	}
}

func (m *MatrixRain) HandleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		m.speed = clamp(m.speed+0.2, 0.2, 4)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		m.speed = clamp(m.speed-0.2, 0.2, 4)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		m.density = clamp(m.density+0.1, 0.1, 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		m.density = clamp(m.density-0.1, 0.1, 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		m.charset = (m.charset + 1) % len(rainCharsets)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		m.mode = m.mode.Next()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		m.pattern = (m.pattern + 1) % 3
	}
}

func (m *MatrixRain) gust() float64 {
	switch m.pattern {
	case rainGusty:
		return 0.5 + m.rng.Float64()
	case rainPulse:
		// whole screen surges together
		phase := int(m.t*2) % 4
		if phase == 0 {
			return 2.2
		}
		return 0.6
	default:
		return 1
	}
}

func (m *MatrixRain) Step(dt float64) {
	m.t += dt
	g := m.gust()
	for i := range m.drops {
		d := &m.drops[i]
		if !d.active {
			if m.rng.Float64() < 0.02*m.density {
				*d = m.newDrop(d.col)
				d.active = true
			}
			continue
		}
		d.y += d.speed * g * dt
		if m.rng.Float64() < 0.04 {
			cs := rainCharsets[m.charset].chars
			d.glyphs[m.rng.Intn(len(d.glyphs))] = cs[m.rng.Intn(len(cs))]
		}
		if d.y-float64(len(d.glyphs)*engine.GlyphH) > engine.Height {
			*d = m.newDrop(d.col)
		}
	}
}

func (m *MatrixRain) Draw(screen *ebiten.Image) {
	for _, d := range m.drops {
		if !d.active {
			continue
		}
		for i, c := range d.glyphs {
			y := int(d.y) - i*engine.GlyphH
			if y < -engine.GlyphH || y > engine.Height {
				continue
			}
			fade := 1 - float64(i)/float64(len(d.glyphs))
			var clr color.RGBA
			if i == 0 {
				clr = color.RGBA{220, 255, 220, 255}
			} else {
				clr = m.mode.Map(fade*0.8, 0)
			}
			engine.Text(screen, string(c), d.col*rainColW, y, 1, clr)
		}
	}
}

func (m *MatrixRain) StatusLine() string {
	return fmt.Sprintf("speed %.1f  density %.1f  set %s  pattern %s  palette %s",
		m.speed, m.density, rainCharsets[m.charset].name, rainPatternNames[m.pattern], m.mode)
}

func (m *MatrixRain) SetPaletteName(name string) { m.mode = palette.ByName(name) }
