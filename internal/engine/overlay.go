package engine

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Scanlines darkens every fourth row for the CRT look.
func Scanlines(dst *ebiten.Image) {
	w := float32(dst.Bounds().Dx())
	h := dst.Bounds().Dy()
	for y := 0; y < h; y += 4 {
		vector.DrawFilledRect(dst, 0, float32(y), w, 1, color.RGBA{0, 0, 0, 70}, false)
	}
}

// ScanBeam sweeps a bright horizontal line down the screen.
func ScanBeam(dst *ebiten.Image, t float64, clr color.RGBA) {
	h := dst.Bounds().Dy()
	y := float32(math.Mod(t*40, float64(h+20))) - 10
	w := float32(dst.Bounds().Dx())
	faint := clr
	faint.A = 40
	vector.DrawFilledRect(dst, 0, y-2, w, 5, faint, false)
	vector.DrawFilledRect(dst, 0, y, w, 1, clr, false)
}

type matrixDrop struct {
	x     int
	y     float64
	speed float64
	chars []byte
}

// MatrixBackdrop is the faint falling-glyph background behind the menu.
type MatrixBackdrop struct {
	drops []matrixDrop
	rng   *rand.Rand
}

func NewMatrixBackdrop(seed int64) *MatrixBackdrop {
	rng := rand.New(rand.NewSource(seed))
	b := &MatrixBackdrop{rng: rng}
	for x := 0; x < Width; x += 14 {
		if rng.Float64() < 0.4 {
			b.drops = append(b.drops, b.newDrop(x))
		}
	}
	return b
}

func (b *MatrixBackdrop) newDrop(x int) matrixDrop {
	n := 4 + b.rng.Intn(8)
	chars := make([]byte, n)
	for i := range chars {
		chars[i] = byte('!' + b.rng.Intn(93))
	}
	return matrixDrop{
		x:     x,
		y:     -float64(b.rng.Intn(Height)),
		speed: 30 + b.rng.Float64()*60,
		chars: chars,
	}
}

func (b *MatrixBackdrop) Step(dt float64) {
	for i := range b.drops {
		d := &b.drops[i]
		d.y += d.speed * dt
		if d.y-float64(len(d.chars)*GlyphH) > Height {
			*d = b.newDrop(d.x)
		}
		if b.rng.Float64() < 0.02 {
			j := b.rng.Intn(len(d.chars))
			d.chars[j] = byte('!' + b.rng.Intn(93))
		}
	}
}

func (b *MatrixBackdrop) Draw(dst *ebiten.Image) {
	for _, d := range b.drops {
		for i, c := range d.chars {
			y := int(d.y) - i*GlyphH
			if y < -GlyphH || y > Height {
				continue
			}
			g := uint8(120 - i*12)
			if i == 0 {
				g = 200
			}
			Text(dst, string(c), d.x, y, 1, color.RGBA{0, g, uint8(g / 3), 255})
		}
	}
}

// CircuitDots pulses a sparse dot grid, used as menu chrome.
func CircuitDots(dst *ebiten.Image, t float64) {
	for y := 20; y < Height; y += 48 {
		for x := 12; x < Width; x += 48 {
			p := 0.5 + 0.5*math.Sin(t*2+float64(x)*0.05+float64(y)*0.07)
			a := uint8(20 + 60*p)
			vector.DrawFilledRect(dst, float32(x), float32(y), 2, 2, color.RGBA{0, a, a, a}, false)
		}
	}
}
