package palette

import (
	"math"
	"testing"
)

func TestMapClampsInput(t *testing.T) {
	for m := Mode(0); m < modeCount; m++ {
		for _, v := range []float64{-1, 0, 0.5, 1, 2, math.NaN(), math.Inf(1)} {
			c := m.Map(v, 0)
			if c.A != 255 {
				t.Errorf("mode %s value %v: alpha %d, want 255", m, v, c.A)
			}
		}
	}
}

func TestMatrixIsGreenDominant(t *testing.T) {
	for _, v := range []float64{0.2, 0.5, 0.9} {
		c := Matrix.Map(v, 0)
		if c.G <= c.R || c.G <= c.B {
			t.Errorf("matrix at %v: got r=%d g=%d b=%d, want green dominant", v, c.R, c.G, c.B)
		}
	}
}

func TestHeatRampMonotonicBrightness(t *testing.T) {
	prev := -1.0
	for v := 0.0; v <= 1.0; v += 0.05 {
		c := Heat(v)
		lum := 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
		if lum < prev-1e-9 {
			t.Fatalf("heat ramp brightness dipped at v=%.2f: %.1f < %.1f", v, lum, prev)
		}
		prev = lum
	}
}

func TestNextCyclesAllModes(t *testing.T) {
	seen := map[Mode]bool{}
	m := Cyberpunk
	for i := 0; i < Count(); i++ {
		seen[m] = true
		m = m.Next()
	}
	if len(seen) != Count() {
		t.Errorf("cycled %d distinct modes, want %d", len(seen), Count())
	}
	if m != Cyberpunk {
		t.Errorf("cycle did not return to start: %s", m)
	}
}

func TestByName(t *testing.T) {
	tests := []struct {
		name string
		want Mode
	}{
		{"neon", Neon},
		{"matrix", Matrix},
		{"synthwave", Synthwave},
		{"retro", Retro},
		{"cyberpunk", Cyberpunk},
		{"bogus", Cyberpunk},
	}
	for _, tt := range tests {
		if got := ByName(tt.name); got != tt.want {
			t.Errorf("ByName(%q) = %s, want %s", tt.name, got, tt.want)
		}
	}
}
