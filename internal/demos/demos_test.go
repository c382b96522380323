package demos

import (
	"io"
	"math"
	"testing"
)

func TestLifeBlinkerOscillates(t *testing.T) {
	l := NewLife()
	l.Reset(1)
	for i := range l.cells {
		l.cells[i] = 0
	}
	l.Set(10, 10)
	l.Set(11, 10)
	l.Set(12, 10)

	l.Generation()
	for _, p := range []struct{ x, y int }{{11, 9}, {11, 10}, {11, 11}} {
		if !l.Alive(p.x, p.y) {
			t.Errorf("expected live cell at (%d,%d) after one generation", p.x, p.y)
		}
	}
	if l.Alive(10, 10) || l.Alive(12, 10) {
		t.Error("horizontal arms should have died")
	}

	l.Generation()
	for _, p := range []struct{ x, y int }{{10, 10}, {11, 10}, {12, 10}} {
		if !l.Alive(p.x, p.y) {
			t.Errorf("blinker did not return to horizontal at (%d,%d)", p.x, p.y)
		}
	}
}

func TestLifeSeedsEveryCellDies(t *testing.T) {
	l := NewLife()
	l.Reset(1)
	l.rule = 2 // seeds
	for i := range l.cells {
		l.cells[i] = 0
	}
	l.Set(5, 5)
	l.Set(6, 5)
	l.Generation()
	if l.Alive(5, 5) || l.Alive(6, 5) {
		t.Error("seeds has no survival rule, parents must die")
	}
	// each parent had exactly one neighbor; births need two
	if !l.Alive(5, 4) || !l.Alive(5, 6) {
		t.Error("cells adjacent to both parents should be born")
	}
}

func TestLifeToroidalWrap(t *testing.T) {
	l := NewLife()
	l.Reset(1)
	for i := range l.cells {
		l.cells[i] = 0
	}
	l.Set(-1, 0)
	if !l.Alive(l.gw-1, 0) {
		t.Error("negative x should wrap to the right edge")
	}
	if l.neighbors(0, 0) != 1 {
		t.Errorf("edge cell should see wrapped neighbor, got %d", l.neighbors(0, 0))
	}
}

func TestEscapeValueInteriorAndExterior(t *testing.T) {
	cases := []struct {
		name     string
		cr, ci   float64
		interior bool
	}{
		{"origin", 0, 0, true},
		{"main cardioid", -0.1, 0.1, true},
		{"far exterior", 2, 2, false},
		{"near boundary exterior", 0.5, 0.5, false},
	}
	for _, tc := range cases {
		v := escapeValue(0, 0, tc.cr, tc.ci, 200)
		if tc.interior && v != 0 {
			t.Errorf("%s: interior point got %v, want 0", tc.name, v)
		}
		if !tc.interior && (v <= 0 || v > 1) {
			t.Errorf("%s: exterior value %v outside (0,1]", tc.name, v)
		}
	}
}

func TestMandelbrotIterationBudgetGrowsWithZoom(t *testing.T) {
	m := NewMandelbrot()
	m.Reset(1)
	shallow := m.MaxIter()
	m.zoom = 1e6
	if m.MaxIter() <= shallow {
		t.Errorf("iteration budget did not grow: %d -> %d", shallow, m.MaxIter())
	}
}

func TestPlasmaStepDeterministic(t *testing.T) {
	a := NewPlasma()
	b := NewPlasma()
	a.Reset(7)
	b.Reset(7)
	for i := 0; i < 5; i++ {
		a.Step(1.0 / 60)
		b.Step(1.0 / 60)
	}
	pa, pb := a.r.Pix(), b.r.Pix()
	for i := range pa {
		if pa[i] != pb[i] {
			t.Fatalf("pixel buffers diverge at byte %d", i)
		}
	}
}

func TestRipplesHeightBoundedAndDecays(t *testing.T) {
	w := NewRipples()
	w.Reset(3)
	w.Spawn(100, 100)
	w.t = 0.5
	h := w.Height(100+20, 100)
	if math.Abs(h) > 1 {
		t.Errorf("height %v out of [-1,1]", h)
	}
	if h == 0 {
		t.Fatal("point behind the wavefront should carry energy")
	}
	w.t = 7.5
	late := w.Height(100+20, 100)
	if math.Abs(late) > math.Abs(h)+1e-9 && math.Abs(h) > 0 {
		t.Errorf("ripple should decay: |%v| then |%v|", h, late)
	}
}

func TestRipplesEvictsOldestAtCapacity(t *testing.T) {
	w := NewRipples()
	w.Reset(3)
	for i := 0; i < maxRipples+5; i++ {
		w.Spawn(float64(i), 0)
	}
	if len(w.ripples) != maxRipples {
		t.Fatalf("got %d ripples, want %d", len(w.ripples), maxRipples)
	}
	if w.ripples[0].x != 5 {
		t.Errorf("oldest ripples should be evicted first, head at x=%v", w.ripples[0].x)
	}
}

func TestFireHeatStaysNonNegative(t *testing.T) {
	f := NewFire()
	f.Reset(11)
	for i := 0; i < 30; i++ {
		f.Step(1.0 / 60)
	}
	for i, h := range f.heat {
		if h < 0 || math.IsNaN(h) {
			t.Fatalf("heat[%d] = %v", i, h)
		}
	}
}

func TestLightningBoltEndpointsFixed(t *testing.T) {
	l := NewLightning()
	l.Reset(9)
	path := l.bolt(10, 0, 90, 300, 40, 6)
	if len(path) < 2 {
		t.Fatal("bolt produced no segments")
	}
	first, last := path[0], path[len(path)-1]
	if first.x != 10 || first.y != 0 {
		t.Errorf("start moved to (%v,%v)", first.x, first.y)
	}
	if last.x != 90 || last.y != 300 {
		t.Errorf("end moved to (%v,%v)", last.x, last.y)
	}
	if len(path) != (1<<6)+1 {
		t.Errorf("depth 6 should give %d points, got %d", (1<<6)+1, len(path))
	}
}

func TestStarfieldRespawnsBehindCamera(t *testing.T) {
	s := NewStarfield()
	s.Reset(5)
	for i := 0; i < 600; i++ {
		s.Step(1.0 / 60)
	}
	for i, st := range s.stars {
		if st.z <= 0 {
			t.Fatalf("star %d passed the camera without respawning, z=%v", i, st.z)
		}
	}
}

func TestGalaxyParamsClamp(t *testing.T) {
	g := NewGalaxy()
	g.SetParam("rotation", 99)
	if g.rotSpeed != 4 {
		t.Errorf("rotation not clamped, got %v", g.rotSpeed)
	}
	g.SetParam("gravity", -1)
	if g.gravity != 0.3 {
		t.Errorf("gravity not clamped, got %v", g.gravity)
	}
}

func TestHelixBasePairing(t *testing.T) {
	for b, p := range basePair {
		if basePair[p] != b {
			t.Errorf("pairing not symmetric for %c", b)
		}
	}
	h := NewHelix()
	h.Reset(2)
	for _, b := range h.bases {
		if _, ok := basePair[b]; !ok {
			t.Fatalf("unknown base %c", b)
		}
	}
}

func TestWaveformCloseIsSafeWithoutAudioStart(t *testing.T) {
	w := NewWaveform()
	w.Reset(1)
	var c io.Closer = w
	if err := c.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}
