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

const galaxyStars = 900

type galaxyStar struct {
	radius float64
	theta0 float64 // angular offset within the arm
	arm    int
	jitter float64
	heat   float64 // 0 old red, 1 young blue
}

// Galaxy rotates log-spiral arms with differential rotation and a
// glowing core.
type Galaxy struct {
	stars    [galaxyStars]galaxyStar
	rng      *rand.Rand
	r        *field.Renderer
	t        float64
	rotSpeed float64
	gravity  float64 // arm tightness
	arms     int
	forming  bool // stellar formation, respawn young stars
	mode     palette.Mode
}

func NewGalaxy() *Galaxy {
	return &Galaxy{
		r:        field.New(engine.Width, engine.Height, 1),
		rotSpeed: 1.0,
		gravity:  1.0,
		arms:     2,
		mode:     palette.Cyberpunk,
	}
}

func (g *Galaxy) Name() string { return "galaxy" }

func (g *Galaxy) Reset(seed int64) {
	g.rng = rand.New(rand.NewSource(seed))
	g.t = 0
	for i := range g.stars {
		g.stars[i] = g.spawnStar()
	}
	g.r.Clear()
}

func (g *Galaxy) spawnStar() galaxyStar {
	// density falls off with radius
	r := 8 + 130*math.Sqrt(g.rng.Float64())
	return galaxyStar{
		radius: r,
		theta0: (g.rng.Float64() - 0.5) * 0.5,
		arm:    g.rng.Intn(g.arms),
		jitter: (g.rng.Float64() - 0.5) * 10,
		heat:   g.rng.Float64(),
	}
}

func (g *Galaxy) Params() map[string]float64 {
	return map[string]float64{"rotation": g.rotSpeed, "gravity": g.gravity}
}

func (g *Galaxy) SetParam(key string, v float64) {
	switch key {
	case "rotation":
		g.rotSpeed = clamp(v, 0.1, 4)
	case "gravity":
		g.gravity = clamp(v, 0.3, 3)
	}
}

func (g *Galaxy) HandleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		g.rotSpeed = clamp(g.rotSpeed+0.2, 0.1, 4)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		g.rotSpeed = clamp(g.rotSpeed-0.2, 0.1, 4)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		g.gravity = clamp(g.gravity+0.2, 0.3, 3)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		g.gravity = clamp(g.gravity-0.2, 0.3, 3)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.mode = g.mode.Next()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.arms++
		if g.arms > 4 {
			g.arms = 2
		}
		for i := range g.stars {
			g.stars[i].arm = g.rng.Intn(g.arms)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.forming = !g.forming
	}
}

func (g *Galaxy) Step(dt float64) {
	g.t += dt
	g.r.Fade(0.86)

	cx, cy := engine.Width/2, engine.Height/2

	// core glow
	coreC := g.mode.Map(0.9, g.t*0.05)
	g.r.FillCircle(cx, cy, 6, palette.Scale(coreC, 0.9))
	g.r.StrokeCircle(cx, cy, 9, palette.Scale(coreC, 0.4))

	if g.forming && g.rng.Float64() < 0.4 {
		i := g.rng.Intn(galaxyStars)
		g.stars[i] = g.spawnStar()
		g.stars[i].heat = 1
	}

	for i := range g.stars {
		st := &g.stars[i]
		// differential rotation, inner stars orbit faster
		omega := g.rotSpeed * 3 / math.Sqrt(st.radius)
		armBase := 2 * math.Pi * float64(st.arm) / float64(g.arms)
		// log spiral winding
		wind := math.Log(st.radius/8+1) * 2.2 * g.gravity
		theta := armBase + st.theta0 + wind + g.t*omega

		x := cx + int(st.radius*math.Cos(theta)+st.jitter)
		y := cy + int(st.radius*math.Sin(theta)*0.62+st.jitter*0.6)
		if x < 0 || x >= engine.Width || y < 0 || y >= engine.Height {
			continue
		}

		if g.forming {
			st.heat -= dt * 0.02
			if st.heat < 0 {
				st.heat = 0
			}
		}
		bright := clamp(1.2-st.radius/160, 0.25, 1)
		c := palette.Scale(g.mode.Map(st.heat, 0), bright)
		g.r.AddPixel(x, y, c)
		if bright > 0.8 {
			g.r.AddPixel(x+1, y, palette.Scale(c, 0.4))
		}
	}
}

func (g *Galaxy) Draw(screen *ebiten.Image) {
	g.r.Draw(screen)
}

func (g *Galaxy) StatusLine() string {
	return fmt.Sprintf("rotation %.1f  tightness %.1f  arms %d  formation %v  palette %s",
		g.rotSpeed, g.gravity, g.arms, g.forming, g.mode)
}

func (g *Galaxy) Snapshot() *image.RGBA { return g.r.Snapshot() }

func (g *Galaxy) SetPaletteName(name string) { g.mode = palette.ByName(name) }
