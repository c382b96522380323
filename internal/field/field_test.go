package field

import (
	"image/color"
	"math"
	"testing"

	"github.com/san-kum/artcade/internal/palette"
)

func TestGridCoversNonDivisibleResolution(t *testing.T) {
	r := New(480, 320, 7)
	gw, gh := r.GridSize()
	if gw*7 < 480 || gh*7 < 320 {
		t.Fatalf("grid %dx%d at cell 7 does not cover 480x320", gw, gh)
	}
	if len(r.Pix()) != 480*320*4 {
		t.Fatalf("buffer length %d, want %d", len(r.Pix()), 480*320*4)
	}

	// Rendering a constant field must touch every pixel without panicking
	// on the partial edge cells.
	r.Render(0, func(x, y, tt float64) float64 { return 1 }, palette.Matrix, 0)
	pix := r.Pix()
	for i := 3; i < len(pix); i += 4 {
		if pix[i] != 255 {
			t.Fatalf("pixel %d alpha %d, want 255", i/4, pix[i])
		}
	}
}

func TestRenderClampsBadSamples(t *testing.T) {
	r := New(8, 8, 2)
	r.Render(0, func(x, y, tt float64) float64 {
		return math.NaN()
	}, palette.Neon, 0)
	c := r.At(0, 0)
	want := palette.Neon.Map(0, 0)
	if c != want {
		t.Errorf("NaN sample mapped to %v, want %v", c, want)
	}

	r.Render(0, func(x, y, tt float64) float64 {
		return math.Inf(1)
	}, palette.Neon, 0)
	c = r.At(0, 0)
	if c != want {
		t.Errorf("Inf sample mapped to %v, want clamp %v", c, want)
	}
}

func TestTrailKeepsBrighterHistory(t *testing.T) {
	r := New(4, 4, 1)
	r.SetTrail(0.9)

	bright := func(x, y, tt float64) float64 { return 1 }
	dark := func(x, y, tt float64) float64 { return 0 }

	r.Render(0, bright, palette.Matrix, 0)
	first := r.At(1, 1)

	r.Render(0, dark, palette.Matrix, 0)
	second := r.At(1, 1)

	if second.G >= first.G {
		t.Errorf("trail green did not decay: %d -> %d", first.G, second.G)
	}
	floor := palette.Matrix.Map(0, 0)
	if second.G <= floor.G {
		t.Errorf("trail vanished in one frame: got %d, floor %d", second.G, floor.G)
	}
}

func TestFadeDecaysAllChannels(t *testing.T) {
	r := New(2, 2, 1)
	r.SetPixel(0, 0, color.RGBA{R: 200, G: 100, B: 50, A: 255})
	r.Fade(0.5)
	c := r.At(0, 0)
	if c.R != 100 || c.G != 50 || c.B != 25 {
		t.Errorf("fade 0.5 gave %v, want {100 50 25}", c)
	}
}

func TestSetPixelBounds(t *testing.T) {
	r := New(2, 2, 1)
	// Must not panic.
	r.SetPixel(-1, 0, color.RGBA{})
	r.SetPixel(0, -1, color.RGBA{})
	r.SetPixel(2, 0, color.RGBA{})
	r.SetPixel(0, 2, color.RGBA{})
	if got := r.At(-5, 10); got.R != 0 || got.G != 0 || got.B != 0 {
		t.Errorf("out of bounds read %v, want black", got)
	}
}

func TestParallelRowsCoversRangeOnce(t *testing.T) {
	for _, n := range []int{0, 1, 15, 16, 17, 160} {
		hits := make([]int, n)
		parallelRows(n, 4, func(start, end int) {
			for i := start; i < end; i++ {
				hits[i]++
			}
		})
		for i, h := range hits {
			if h != 1 {
				t.Fatalf("n=%d: row %d visited %d times", n, i, h)
			}
		}
	}
}
