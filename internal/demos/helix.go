package demos

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/san-kum/artcade/internal/engine"
	"github.com/san-kum/artcade/internal/field"
	"github.com/san-kum/artcade/internal/palette"
)

var baseColors = map[byte]color.RGBA{
	'A': {80, 250, 123, 255},
	'T': {255, 85, 85, 255},
	'G': {139, 233, 253, 255},
	'C': {255, 184, 108, 255},
}

var basePair = map[byte]byte{'A': 'T', 'T': 'A', 'G': 'C', 'C': 'G'}

const helixRungs = 40

// Helix scrolls a rotating double helix with colored base-pair rungs.
type Helix struct {
	r      *field.Renderer
	rng    *rand.Rand
	t      float64
	scroll float64
	rot    float64 // turns per second
	radius float64
	bases  []byte
	labels bool
	mode   palette.Mode
}

func NewHelix() *Helix {
	return &Helix{
		r:      field.New(engine.Width, engine.Height, 1),
		rot:    0.4,
		radius: 70,
		mode:   palette.Retro,
	}
}

func (h *Helix) Name() string { return "helix" }

func (h *Helix) Reset(seed int64) {
	h.rng = rand.New(rand.NewSource(seed))
	h.t = 0
	h.scroll = 0
	letters := []byte{'A', 'T', 'G', 'C'}
	h.bases = make([]byte, 400)
	for i := range h.bases {
		h.bases[i] = letters[h.rng.Intn(4)]
	}
	h.r.Clear()
}

func (h *Helix) Params() map[string]float64 {
	return map[string]float64{"rotation": h.rot, "radius": h.radius}
}

func (h *Helix) SetParam(key string, v float64) {
	switch key {
	case "rotation":
		h.rot = clamp(v, 0.05, 2)
	case "radius":
		h.radius = clamp(v, 20, 140)
	}
}

func (h *Helix) HandleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		h.rot = clamp(h.rot+0.1, 0.05, 2)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		h.rot = clamp(h.rot-0.1, 0.05, 2)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		h.radius = clamp(h.radius+10, 20, 140)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		h.radius = clamp(h.radius-10, 20, 140)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		h.labels = !h.labels
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		h.mode = h.mode.Next()
	}
}

func (h *Helix) Step(dt float64) {
	h.t += dt
	h.scroll += dt * 20
	h.r.Fade(0.75)

	cx := engine.Width / 2
	spacing := float64(engine.Height+40) / helixRungs

	for i := 0; i < helixRungs; i++ {
		y := float64(i)*spacing - math.Mod(h.scroll, spacing)
		idx := int(h.scroll/spacing) + i
		base := h.bases[((idx%len(h.bases))+len(h.bases))%len(h.bases)]

		angle := float64(idx)*0.55 + h.t*h.rot*2*math.Pi
		sin, cos := math.Sin(angle), math.Cos(angle)
		x1 := cx + int(h.radius*sin)
		x2 := cx - int(h.radius*sin)
		// cos gives depth: front strand bright, back strand dim
		d1 := 0.55 + 0.45*cos
		d2 := 0.55 - 0.45*cos

		c1 := palette.Scale(baseColors[base], d1)
		c2 := palette.Scale(baseColors[basePair[base]], d2)

		// rung between the strands
		rungC := palette.Scale(h.mode.Map(0.5+0.5*sin, 0), math.Min(d1, d2)*0.8)
		h.r.DrawLine(x1, int(y), x2, int(y), 1, rungC)

		h.r.FillCircle(x1, int(y), sizeFor(d1), c1)
		h.r.FillCircle(x2, int(y), sizeFor(d2), c2)
	}
}

func sizeFor(depth float64) int {
	if depth > 0.8 {
		return 3
	}
	if depth > 0.5 {
		return 2
	}
	return 1
}

func (h *Helix) Draw(screen *ebiten.Image) {
	h.r.Draw(screen)
	if h.labels {
		idx := int(h.scroll / (float64(engine.Height+40) / helixRungs))
		base := h.bases[((idx%len(h.bases))+len(h.bases))%len(h.bases)]
		engine.Text(screen, fmt.Sprintf("base %c-%c", base, basePair[base]),
			8, 24, 1, baseColors[base])
	}
}

func (h *Helix) StatusLine() string {
	return fmt.Sprintf("rotation %.1f turns/s  radius %.0f  [L] labels  palette %s",
		h.rot, h.radius, h.mode)
}

func (h *Helix) Snapshot() *image.RGBA { return h.r.Snapshot() }

func (h *Helix) SetPaletteName(name string) { h.mode = palette.ByName(name) }
