package demos

import (
	"fmt"
	"image"
	"image/color"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/san-kum/artcade/internal/engine"
	"github.com/san-kum/artcade/internal/field"
	"github.com/san-kum/artcade/internal/palette"
)

type boltType int

const (
	boltClassic boltType = iota
	boltJagged
	boltSmooth
	boltChaotic
)

var boltTypeNames = [...]string{"classic", "jagged", "smooth", "chaotic"}

type boltPoint struct{ x, y float64 }

// Lightning fires midpoint-displaced bolts with recursive branches.
type Lightning struct {
	r     *field.Renderer
	rng   *rand.Rand
	t     float64
	next  float64 // countdown to next strike
	freq  float64 // strikes per second
	power float64
	btype boltType
	storm bool
	flash float64 // screen flash alpha
	mode  palette.Mode
}

func NewLightning() *Lightning {
	return &Lightning{
		r:     field.New(engine.Width, engine.Height, 1),
		freq:  1.2,
		power: 1.0,
		mode:  palette.Neon,
	}
}

func (l *Lightning) Name() string { return "lightning" }

func (l *Lightning) Reset(seed int64) {
	l.rng = rand.New(rand.NewSource(seed))
	l.t = 0
	l.next = 0.5
	l.flash = 0
	l.r.Clear()
}

func (l *Lightning) Params() map[string]float64 {
	return map[string]float64{"frequency": l.freq, "power": l.power}
}

func (l *Lightning) SetParam(key string, v float64) {
	switch key {
	case "frequency":
		l.freq = clamp(v, 0.2, 6)
	case "power":
		l.power = clamp(v, 0.3, 3)
	}
}

func (l *Lightning) HandleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		l.freq = clamp(l.freq+0.3, 0.2, 6)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		l.freq = clamp(l.freq-0.3, 0.2, 6)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		l.power = clamp(l.power+0.2, 0.3, 3)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		l.power = clamp(l.power-0.2, 0.3, 3)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		l.mode = l.mode.Next()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		l.btype = (l.btype + 1) % 4
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		l.storm = !l.storm
	}
}

// displacement amplitude and branch probability per bolt type
func (l *Lightning) boltShape() (amp, branchP float64) {
	switch l.btype {
	case boltJagged:
		return 1.6, 0.25
	case boltSmooth:
		return 0.5, 0.08
	case boltChaotic:
		return 2.2, 0.45
	default:
		return 1.0, 0.15
	}
}

// bolt builds a midpoint-displaced path from (x0,y0) to (x1,y1).
func (l *Lightning) bolt(x0, y0, x1, y1, amp float64, depth int) []boltPoint {
	if depth == 0 {
		return []boltPoint{{x0, y0}, {x1, y1}}
	}
	mx := (x0+x1)/2 + (l.rng.Float64()-0.5)*amp
	my := (y0+y1)/2 + (l.rng.Float64()-0.5)*amp*0.4
	left := l.bolt(x0, y0, mx, my, amp*0.55, depth-1)
	right := l.bolt(mx, my, x1, y1, amp*0.55, depth-1)
	return append(left, right[1:]...)
}

func (l *Lightning) strike() {
	amp, branchP := l.boltShape()
	x0 := l.rng.Float64() * engine.Width
	x1 := x0 + (l.rng.Float64()-0.5)*120
	path := l.bolt(x0, 0, x1, engine.Height-20, amp*60*l.power, 6)

	thick := 1
	if l.power > 1.6 {
		thick = 2
	}
	core := color.RGBA{255, 255, 255, 255}
	glow := l.mode.Map(0.8, 0)
	for i := 1; i < len(path); i++ {
		a, b := path[i-1], path[i]
		l.r.DrawLine(int(a.x), int(a.y), int(b.x), int(b.y), thick+1, palette.Scale(glow, 0.5))
		l.r.DrawLine(int(a.x), int(a.y), int(b.x), int(b.y), thick, core)

		// secondary branches peel off downward
		if l.rng.Float64() < branchP {
			bx := b.x + (l.rng.Float64()-0.5)*140*l.power
			by := b.y + 30 + l.rng.Float64()*60
			branch := l.bolt(b.x, b.y, bx, by, amp*25*l.power, 4)
			for j := 1; j < len(branch); j++ {
				p, q := branch[j-1], branch[j]
				l.r.DrawLine(int(p.x), int(p.y), int(q.x), int(q.y), 1, palette.Scale(glow, 0.7))
			}
		}
	}
	l.flash = clamp(0.25*l.power, 0, 0.8)
}

func (l *Lightning) Step(dt float64) {
	l.t += dt
	l.r.Fade(0.88)

	freq := l.freq
	if l.storm {
		freq *= 3
	}
	l.next -= dt
	if l.next <= 0 {
		l.strike()
		if l.storm && l.rng.Float64() < 0.4 {
			l.strike()
		}
		l.next = (0.4 + l.rng.Float64()) / freq
	}

	l.flash *= 0.85
}

func (l *Lightning) Draw(screen *ebiten.Image) {
	l.r.Draw(screen)
	if l.flash > 0.02 {
		a := uint8(l.flash * 255)
		vector.DrawFilledRect(screen, 0, 0, engine.Width, engine.Height,
			color.RGBA{a, a, a, a}, false)
	}
}

func (l *Lightning) StatusLine() string {
	storm := ""
	if l.storm {
		storm = "  STORM"
	}
	return fmt.Sprintf("freq %.1f/s  power %.1f  bolt %s  palette %s%s",
		l.freq, l.power, boltTypeNames[l.btype], l.mode, storm)
}

func (l *Lightning) Snapshot() *image.RGBA { return l.r.Snapshot() }

func (l *Lightning) SetPaletteName(name string) { l.mode = palette.ByName(name) }
