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

// Rule is a birth/survival rule set encoded as neighbor-count bitmasks.
type Rule struct {
	Name    string
	Birth   uint16
	Survive uint16
}

func mask(counts ...int) uint16 {
	var m uint16
	for _, c := range counts {
		m |= 1 << c
	}
	return m
}

var lifeRules = []Rule{
	{"conway", mask(3), mask(2, 3)},
	{"highlife", mask(3, 6), mask(2, 3)},
	{"seeds", mask(2), 0},
	{"daynight", mask(3, 6, 7, 8), mask(3, 4, 6, 7, 8)},
}

type lifeColorMode int

const (
	lifeMono lifeColorMode = iota
	lifeAge
	lifeHeatmap
)

var lifeColorNames = [...]string{"mono", "age", "heatmap"}

const lifeCell = 4

// Life is a toroidal cellular automaton with switchable rule sets.
type Life struct {
	r       *field.Renderer
	gw, gh  int
	cells   []uint8 // generation age, 0 = dead
	next    []uint8
	rng     *rand.Rand
	rule    int
	colors  lifeColorMode
	running bool
	gen     int
	pop     int
	accum   float64
	rate    float64 // generations per second
	mode    palette.Mode
}

func NewLife() *Life {
	r := field.New(engine.Width, engine.Height, lifeCell)
	gw, gh := r.GridSize()
	return &Life{
		r:       r,
		gw:      gw,
		gh:      gh,
		cells:   make([]uint8, gw*gh),
		next:    make([]uint8, gw*gh),
		running: true,
		rate:    12,
		colors:  lifeAge,
		mode:    palette.Neon,
	}
}

func (l *Life) Name() string { return "life" }

func (l *Life) Rule() Rule { return lifeRules[l.rule] }

func (l *Life) Reset(seed int64) {
	l.rng = rand.New(rand.NewSource(seed))
	l.gen = 0
	l.accum = 0
	l.Randomize(0.25)
}

// Randomize fills the grid with live cells at the given density.
func (l *Life) Randomize(density float64) {
	for i := range l.cells {
		if l.rng.Float64() < density {
			l.cells[i] = 1
		} else {
			l.cells[i] = 0
		}
	}
}

func (l *Life) Params() map[string]float64 {
	return map[string]float64{"rate": l.rate}
}

func (l *Life) SetParam(key string, v float64) {
	if key == "rate" {
		l.rate = clamp(v, 1, 60)
	}
}

func (l *Life) HandleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		l.running = !l.running
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) && !l.running {
		l.Generation()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		l.rule = (l.rule + 1) % len(lifeRules)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyV) {
		l.colors = (l.colors + 1) % 3
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		l.Randomize(0.1 + l.rng.Float64()*0.3)
		l.gen = 0
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		for i := range l.cells {
			l.cells[i] = 0
		}
		l.gen = 0
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		l.rate = clamp(l.rate+2, 1, 60)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		l.rate = clamp(l.rate-2, 1, 60)
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		l.paint(mx/lifeCell, my/lifeCell, 1)
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		mx, my := ebiten.CursorPosition()
		l.paint(mx/lifeCell, my/lifeCell, 0)
	}
}

func (l *Life) paint(gx, gy int, v uint8) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			x, y := gx+dx, gy+dy
			if x >= 0 && x < l.gw && y >= 0 && y < l.gh {
				l.cells[y*l.gw+x] = v
			}
		}
	}
}

// Set places a live cell, wrapping toroidally.
func (l *Life) Set(x, y int) {
	x = (x%l.gw + l.gw) % l.gw
	y = (y%l.gh + l.gh) % l.gh
	l.cells[y*l.gw+x] = 1
}

// Alive reports whether the cell at (x, y) is live, wrapping toroidally.
func (l *Life) Alive(x, y int) bool {
	x = (x%l.gw + l.gw) % l.gw
	y = (y%l.gh + l.gh) % l.gh
	return l.cells[y*l.gw+x] > 0
}

func (l *Life) neighbors(x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := (x + dx + l.gw) % l.gw
			ny := (y + dy + l.gh) % l.gh
			if l.cells[ny*l.gw+nx] > 0 {
				n++
			}
		}
	}
	return n
}

// Generation applies the current rule once, double-buffered.
func (l *Life) Generation() {
	rule := lifeRules[l.rule]
	pop := 0
	for y := 0; y < l.gh; y++ {
		for x := 0; x < l.gw; x++ {
			i := y*l.gw + x
			n := l.neighbors(x, y)
			age := l.cells[i]
			var out uint8
			if age > 0 {
				if rule.Survive&(1<<n) != 0 {
					out = age
					if out < 250 {
						out++
					}
				}
			} else if rule.Birth&(1<<n) != 0 {
				out = 1
			}
			l.next[i] = out
			if out > 0 {
				pop++
			}
		}
	}
	l.cells, l.next = l.next, l.cells
	l.gen++
	l.pop = pop
}

func (l *Life) Step(dt float64) {
	if l.running {
		l.accum += dt * l.rate
		for l.accum >= 1 {
			l.Generation()
			l.accum--
		}
	}
	l.rasterize()
}

func (l *Life) cellColor(age uint8) color.RGBA {
	if age == 0 {
		return color.RGBA{4, 6, 10, 255}
	}
	switch l.colors {
	case lifeAge:
		v := clamp(float64(age)/40, 0.1, 1)
		return l.mode.Map(v, 0)
	case lifeHeatmap:
		return palette.Heat(clamp(float64(age)/30, 0.15, 1))
	default:
		return color.RGBA{200, 255, 210, 255}
	}
}

func (l *Life) rasterize() {
	l.r.RenderColor(0, func(x, y, t float64) color.RGBA {
		gx, gy := int(x)/lifeCell, int(y)/lifeCell
		if gx >= l.gw {
			gx = l.gw - 1
		}
		if gy >= l.gh {
			gy = l.gh - 1
		}
		return l.cellColor(l.cells[gy*l.gw+gx])
	})
}

func (l *Life) Draw(screen *ebiten.Image) {
	l.r.Draw(screen)
}

func (l *Life) StatusLine() string {
	state := "running"
	if !l.running {
		state = "paused [N] step"
	}
	return fmt.Sprintf("rule %s  gen %d  pop %d  %.0f gen/s  %s  color %s",
		lifeRules[l.rule].Name, l.gen, l.pop, l.rate, state, lifeColorNames[l.colors])
}

func (l *Life) Snapshot() *image.RGBA { return l.r.Snapshot() }

func (l *Life) SetPaletteName(name string) { l.mode = palette.ByName(name) }
