package demos

import (
	"fmt"
	"image"
	"image/color"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/san-kum/artcade/internal/engine"
	"github.com/san-kum/artcade/internal/field"
	"github.com/san-kum/artcade/internal/palette"
)

type fireType int

const (
	fireCalm fireType = iota
	fireRoaring
	fireInferno
)

var fireTypeNames = [...]string{"calm", "roaring", "inferno"}

type spark struct {
	x, y   float64
	vx, vy float64
	life   float64
}

// Fire runs a heat grid with upward convection plus a small spark pool.
type Fire struct {
	r         *field.Renderer
	heat      []float64
	gw, gh    int
	rng       *rand.Rand
	sparks    []spark
	intensity float64
	wind      float64
	ftype     fireType
	doSparks  bool
	usePal    bool
	mode      palette.Mode
}

func NewFire() *Fire {
	r := field.New(engine.Width, engine.Height, 4)
	gw, gh := r.GridSize()
	return &Fire{
		r:         r,
		heat:      make([]float64, gw*gh),
		gw:        gw,
		gh:        gh,
		intensity: 1.0,
		doSparks:  true,
		mode:      palette.Synthwave,
	}
}

func (f *Fire) Name() string { return "fire" }

func (f *Fire) Reset(seed int64) {
	f.rng = rand.New(rand.NewSource(seed))
	for i := range f.heat {
		f.heat[i] = 0
	}
	f.sparks = f.sparks[:0]
	f.r.Clear()
}

func (f *Fire) Params() map[string]float64 {
	return map[string]float64{"intensity": f.intensity, "wind": f.wind}
}

func (f *Fire) SetParam(key string, v float64) {
	switch key {
	case "intensity":
		f.intensity = clamp(v, 0.1, 3)
	case "wind":
		f.wind = clamp(v, -2, 2)
	}
}

func (f *Fire) HandleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		f.intensity = clamp(f.intensity+0.1, 0.1, 3)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		f.intensity = clamp(f.intensity-0.1, 0.1, 3)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		f.wind = clamp(f.wind+0.25, -2, 2)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		f.wind = clamp(f.wind-0.25, -2, 2)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		f.ftype = (f.ftype + 1) % 3
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		f.doSparks = !f.doSparks
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if f.usePal {
			f.mode = f.mode.Next()
			if f.mode == palette.Cyberpunk {
				f.usePal = false
			}
		} else {
			f.usePal = true
			f.mode = palette.Cyberpunk
		}
	}
}

func (f *Fire) fuel() (feed, cooling float64) {
	switch f.ftype {
	case fireCalm:
		return 0.7, 0.055
	case fireRoaring:
		return 1.0, 0.035
	default:
		return 1.3, 0.02
	}
}

func (f *Fire) Step(dt float64) {
	feed, cooling := f.fuel()
	feed *= f.intensity

	// stoke the bottom two rows
	for y := f.gh - 2; y < f.gh; y++ {
		for x := 0; x < f.gw; x++ {
			if f.rng.Float64() < 0.55*feed {
				f.heat[y*f.gw+x] = 0.7 + f.rng.Float64()*0.3
			}
		}
	}

	// convect upward, wind shears the sampling column
	shear := int(f.wind * 1.5)
	for y := 0; y < f.gh-1; y++ {
		for x := 0; x < f.gw; x++ {
			sx := x + shear
			sum := f.sampleHeat(sx-1, y+1) + f.sampleHeat(sx, y+1) + f.sampleHeat(sx+1, y+1)
			if y+2 < f.gh {
				sum += f.sampleHeat(sx, y+2)
			}
			v := sum/4.04 - cooling*(0.5+f.rng.Float64())
			if v < 0 {
				v = 0
			}
			f.heat[y*f.gw+x] = v
		}
	}

	f.stepSparks(dt)
	f.rasterize()
}

func (f *Fire) sampleHeat(x, y int) float64 {
	if y < 0 || y >= f.gh {
		return 0
	}
	x = (x%f.gw + f.gw) % f.gw
	return f.heat[y*f.gw+x]
}

func (f *Fire) stepSparks(dt float64) {
	if f.doSparks && f.rng.Float64() < 0.3*f.intensity {
		f.sparks = append(f.sparks, spark{
			x:    f.rng.Float64() * engine.Width,
			y:    engine.Height - 8,
			vx:   (f.rng.Float64()-0.5)*30 + f.wind*40,
			vy:   -60 - f.rng.Float64()*80,
			life: 1,
		})
	}
	alive := f.sparks[:0]
	for _, s := range f.sparks {
		s.x += s.vx * dt
		s.y += s.vy * dt
		s.vx += f.wind * 20 * dt
		s.life -= dt * 0.8
		if s.life > 0 && s.y > 0 {
			alive = append(alive, s)
		}
	}
	f.sparks = alive
}

func (f *Fire) heatColor(v float64) color.RGBA {
	if f.usePal {
		return f.mode.Map(v, 0)
	}
	return palette.Heat(v)
}

func (f *Fire) rasterize() {
	f.r.RenderColor(0, func(x, y, t float64) color.RGBA {
		gx := int(x) / 4
		gy := int(y) / 4
		if gx >= f.gw {
			gx = f.gw - 1
		}
		if gy >= f.gh {
			gy = f.gh - 1
		}
		return f.heatColor(f.heat[gy*f.gw+gx])
	})
	for _, s := range f.sparks {
		c := f.heatColor(0.6 + 0.4*s.life)
		f.r.AddPixel(int(s.x), int(s.y), c)
		f.r.AddPixel(int(s.x)+1, int(s.y), c)
	}
}

func (f *Fire) Draw(screen *ebiten.Image) {
	f.r.Draw(screen)
}

func (f *Fire) StatusLine() string {
	pal := "heat"
	if f.usePal {
		pal = f.mode.String()
	}
	return fmt.Sprintf("heat %.1f  wind %+.2f  type %s  sparks %v  color %s",
		f.intensity, f.wind, fireTypeNames[f.ftype], f.doSparks, pal)
}

func (f *Fire) Snapshot() *image.RGBA { return f.r.Snapshot() }

func (f *Fire) SetPaletteName(name string) { f.mode = palette.ByName(name) }
