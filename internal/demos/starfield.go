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

type warpMode int

const (
	warpCruise warpMode = iota
	warpWarp
	warpHyper
	warpTunnel
)

var warpModeNames = [...]string{"cruise", "warp", "hyper", "tunnel"}

type starColor int

const (
	starsWhite starColor = iota
	starsDepth
	starsSpectral
)

var starColorNames = [...]string{"white", "depth", "spectral"}

const (
	numStars  = 420
	starFar   = 40.0
	starFocal = 120.0
)

type star struct {
	x, y, z float64
	px, py  int // last projected position, for streaks
	tint    float64
}

// Starfield flies through a 3D point cloud with z-advance projection.
type Starfield struct {
	stars   [numStars]star
	rng     *rand.Rand
	r       *field.Renderer
	t       float64
	speed   float64
	driftX  float64
	driftY  float64
	mode    warpMode
	colors  starColor
	twinkle bool
	pal     palette.Mode
}

func NewStarfield() *Starfield {
	r := field.New(engine.Width, engine.Height, 1)
	return &Starfield{
		r:       r,
		speed:   1.0,
		twinkle: true,
		pal:     palette.Cyberpunk,
	}
}

func (s *Starfield) Name() string { return "starfield" }

func (s *Starfield) Reset(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
	s.t = 0
	s.driftX, s.driftY = 0, 0
	for i := range s.stars {
		s.stars[i] = s.spawn(true)
	}
	s.r.Clear()
}

func (s *Starfield) spawn(anyDepth bool) star {
	st := star{
		x:    (s.rng.Float64() - 0.5) * 2,
		y:    (s.rng.Float64() - 0.5) * 2,
		z:    starFar,
		tint: s.rng.Float64(),
		px:   -1,
	}
	if s.mode == warpTunnel {
		// keep a hollow core
		ang := s.rng.Float64() * 2 * math.Pi
		rad := 0.3 + s.rng.Float64()*0.7
		st.x, st.y = math.Cos(ang)*rad, math.Sin(ang)*rad
	}
	if anyDepth {
		st.z = 1 + s.rng.Float64()*(starFar-1)
	}
	return st
}

func (s *Starfield) Params() map[string]float64 {
	return map[string]float64{"speed": s.speed}
}

func (s *Starfield) SetParam(key string, v float64) {
	if key == "speed" {
		s.speed = clamp(v, 0.1, 6)
	}
}

func (s *Starfield) HandleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		s.speed = clamp(s.speed+0.25, 0.1, 6)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		s.speed = clamp(s.speed-0.25, 0.1, 6)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		s.mode = (s.mode + 1) % 4
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		s.colors = (s.colors + 1) % 3
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		s.twinkle = !s.twinkle
	}

	drift := 0.02
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		s.driftX -= drift
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		s.driftX += drift
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		s.driftY -= drift
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		s.driftY += drift
	}
	s.driftX = clamp(s.driftX, -1, 1)
	s.driftY = clamp(s.driftY, -1, 1)
}

func (s *Starfield) warpFactor() (speed, fade float64) {
	switch s.mode {
	case warpWarp:
		return 3, 0.80
	case warpHyper:
		return 7, 0.88
	case warpTunnel:
		return 4, 0.84
	default:
		return 1, 0.55
	}
}

func (s *Starfield) Step(dt float64) {
	s.t += dt
	mul, fade := s.warpFactor()
	s.r.Fade(fade)

	cx := engine.Width/2 - int(s.driftX*80)
	cy := engine.Height/2 - int(s.driftY*60)

	for i := range s.stars {
		st := &s.stars[i]
		st.z -= s.speed * mul * dt * 8
		if st.z <= 0.5 {
			*st = s.spawn(false)
		}
		px := cx + int(st.x*starFocal/st.z*10)
		py := cy + int(st.y*starFocal/st.z*10)
		if px < 0 || px >= engine.Width || py < 0 || py >= engine.Height {
			*st = s.spawn(false)
			continue
		}
		b := 1 - st.z/starFar
		if s.twinkle {
			b *= 0.7 + 0.3*math.Sin(s.t*9+st.tint*40)
		}
		c := s.starColorFor(st, b)
		if st.px >= 0 && mul > 1 {
			s.r.DrawLine(st.px, st.py, px, py, 1, c)
		} else {
			s.r.SetPixel(px, py, c)
			if b > 0.75 {
				s.r.AddPixel(px+1, py, palette.Scale(c, 0.5))
				s.r.AddPixel(px, py+1, palette.Scale(c, 0.5))
			}
		}
		st.px, st.py = px, py
	}
}

func (s *Starfield) starColorFor(st *star, b float64) color.RGBA {
	switch s.colors {
	case starsDepth:
		return s.pal.Map(b, 0)
	case starsSpectral:
		return s.pal.Map(st.tint, 0)
	default:
		v := uint8(clamp(b, 0, 1) * 255)
		return color.RGBA{v, v, v, 255}
	}
}

func (s *Starfield) Draw(screen *ebiten.Image) {
	s.r.Draw(screen)
}

func (s *Starfield) StatusLine() string {
	return fmt.Sprintf("speed %.2f  mode %s  color %s  twinkle %v  WASD drift",
		s.speed, warpModeNames[s.mode], starColorNames[s.colors], s.twinkle)
}

func (s *Starfield) Snapshot() *image.RGBA { return s.r.Snapshot() }
