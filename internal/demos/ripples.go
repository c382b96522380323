package demos

import (
	"fmt"
	"image"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/san-kum/artcade/internal/engine"
	"github.com/san-kum/artcade/internal/field"
	"github.com/san-kum/artcade/internal/palette"
)

type waveShape int

const (
	waveClassic waveShape = iota
	waveSquare
	waveSawtooth
	waveInterference
)

var waveShapeNames = [...]string{"classic", "square", "sawtooth", "interference"}

const maxRipples = 24

type ripple struct {
	x, y  float64
	birth float64
	amp   float64
}

// Ripples superposes expanding ring waves on a coarse water grid.
// Click spawns a ripple; auto mode drips on its own.
type Ripples struct {
	r       *field.Renderer
	rng     *rand.Rand
	t       float64
	ripples []ripple
	speed   float64 // wave propagation, px/s
	shape   waveShape
	auto    bool
	drip    float64
	mode    palette.Mode
}

func NewRipples() *Ripples {
	return &Ripples{
		r:     field.New(engine.Width, engine.Height, 4),
		speed: 60,
		auto:  true,
		mode:  palette.Cyberpunk,
	}
}

func (w *Ripples) Name() string { return "ripples" }

func (w *Ripples) Reset(seed int64) {
	w.rng = rand.New(rand.NewSource(seed))
	w.t = 0
	w.ripples = w.ripples[:0]
	w.drip = 1
	w.r.Clear()
}

// Spawn adds a ripple at (x, y), evicting the oldest at capacity.
func (w *Ripples) Spawn(x, y float64) {
	if len(w.ripples) >= maxRipples {
		w.ripples = w.ripples[1:]
	}
	w.ripples = append(w.ripples, ripple{x: x, y: y, birth: w.t, amp: 1})
}

func (w *Ripples) Params() map[string]float64 {
	return map[string]float64{"speed": w.speed}
}

func (w *Ripples) SetParam(key string, v float64) {
	if key == "speed" {
		w.speed = clamp(v, 15, 200)
	}
}

func (w *Ripples) HandleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		w.speed = clamp(w.speed+10, 15, 200)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		w.speed = clamp(w.speed-10, 15, 200)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		w.mode = w.mode.Next()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyW) {
		w.shape = (w.shape + 1) % 4
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		w.auto = !w.auto
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		w.Spawn(float64(mx), float64(my))
	}
}

// Height evaluates the superposed wave height in [-1, 1] at a point.
func (w *Ripples) Height(x, y float64) float64 {
	sum := 0.0
	for _, rp := range w.ripples {
		age := w.t - rp.birth
		front := age * w.speed
		dx, dy := x-rp.x, y-rp.y
		dist := math.Sqrt(dx*dx + dy*dy)
		// only a band behind the wavefront carries energy
		lag := front - dist
		if lag < 0 || lag > 90 {
			continue
		}
		decay := math.Exp(-age*0.45) * math.Exp(-lag*0.03)
		phase := lag * 0.22
		sum += w.sampleShape(phase) * rp.amp * decay
	}
	return clamp(sum, -1, 1)
}

func (w *Ripples) sampleShape(phase float64) float64 {
	switch w.shape {
	case waveSquare:
		if math.Sin(phase) >= 0 {
			return 1
		}
		return -1
	case waveSawtooth:
		p := math.Mod(phase/(2*math.Pi), 1)
		return 2*p - 1
	case waveInterference:
		return math.Sin(phase) * math.Cos(phase*1.7)
	default:
		return math.Sin(phase)
	}
}

func (w *Ripples) Step(dt float64) {
	w.t += dt

	if w.auto {
		w.drip -= dt
		if w.drip <= 0 {
			w.Spawn(w.rng.Float64()*engine.Width, w.rng.Float64()*engine.Height)
			w.drip = 0.6 + w.rng.Float64()*1.4
		}
	}

	// drop fully decayed ripples
	alive := w.ripples[:0]
	for _, rp := range w.ripples {
		if w.t-rp.birth < 8 {
			alive = append(alive, rp)
		}
	}
	w.ripples = alive

	w.r.Render(w.t, func(x, y, t float64) float64 {
		h := w.Height(x, y)
		// rest water sits low in the palette
		return 0.18 + 0.5*(h+1)*0.5
	}, w.mode, w.t*0.02)
}

func (w *Ripples) Draw(screen *ebiten.Image) {
	w.r.Draw(screen)
}

func (w *Ripples) StatusLine() string {
	return fmt.Sprintf("speed %.0f  wave %s  auto %v  ripples %d  click to drop",
		w.speed, waveShapeNames[w.shape], w.auto, len(w.ripples))
}

func (w *Ripples) Snapshot() *image.RGBA { return w.r.Snapshot() }

func (w *Ripples) SetPaletteName(name string) { w.mode = palette.ByName(name) }
