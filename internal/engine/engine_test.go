package engine

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// closableScene records whether the launcher released it.
type closableScene struct {
	closed bool
}

func (c *closableScene) Name() string           { return "stub" }
func (c *closableScene) Reset(seed int64)       {}
func (c *closableScene) HandleInput()           {}
func (c *closableScene) Step(dt float64)        {}
func (c *closableScene) Draw(dst *ebiten.Image) {}
func (c *closableScene) Close() error           { c.closed = true; return nil }

func stubEntries(s *closableScene) []Entry {
	return []Entry{{
		Name:  "stub",
		Title: "STUB",
		New:   func() Scene { return s },
	}}
}

func TestDropSceneClosesResources(t *testing.T) {
	s := &closableScene{}
	a, err := NewApp(stubEntries(s), t.TempDir(), "stub", 1)
	if err != nil {
		t.Fatal(err)
	}
	a.dropScene()
	if !s.closed {
		t.Fatal("dropped scene was not closed")
	}
	if a.scene != nil {
		t.Fatal("scene still referenced after drop")
	}
}

func TestLoadSceneClosesPrevious(t *testing.T) {
	s := &closableScene{}
	entries := stubEntries(s)
	a, err := NewApp(entries, t.TempDir(), "stub", 1)
	if err != nil {
		t.Fatal(err)
	}
	a.loadScene(entries[0])
	if !s.closed {
		t.Fatal("replaced scene was not closed")
	}
}

func TestBootScreenFinishesAfterHold(t *testing.T) {
	b := &bootScreen{}
	limit := (b.total()+90)/bootCharsPerTick + 2
	for i := 0; i < limit; i++ {
		if b.done {
			break
		}
		b.Update()
	}
	if !b.done {
		t.Fatalf("boot not done after %d ticks", limit)
	}
}

func TestBootScreenSkip(t *testing.T) {
	b := &bootScreen{}
	b.skip()
	if !b.done {
		t.Fatal("skip did not finish the boot screen")
	}
}

func TestBootTotalCountsSeparators(t *testing.T) {
	b := &bootScreen{}
	want := 0
	for _, l := range bootLines {
		want += len(l) + 1
	}
	if got := b.total(); got != want {
		t.Fatalf("total = %d, want %d", got, want)
	}
}

func TestTextWidthScales(t *testing.T) {
	cases := []struct {
		s     string
		scale float64
		want  int
	}{
		{"", 1, 0},
		{"A", 1, GlyphW},
		{"HELLO", 1, 5 * GlyphW},
		{"HELLO", 2, 10 * GlyphW},
		{"AB", 0.5, GlyphW},
	}
	for _, tc := range cases {
		if got := TextWidth(tc.s, tc.scale); got != tc.want {
			t.Errorf("TextWidth(%q, %v) = %d, want %d", tc.s, tc.scale, got, tc.want)
		}
	}
}

func TestCanvasConstantsAgree(t *testing.T) {
	if Width%WindowScale != 0 || Height%WindowScale != 0 {
		t.Fatal("window scale does not divide the canvas")
	}
	if Dt*TPS != 1.0 {
		t.Fatalf("Dt*TPS = %v, want 1", Dt*TPS)
	}
}
