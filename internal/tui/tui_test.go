package tui

import (
	"image"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestCanvasSetMapsSubPixelsToDots(t *testing.T) {
	c := NewCanvas(4, 2)

	// dot 1 of the top-left cell
	c.Set(0, 0)
	if c.Grid[0][0] != 0x2801 {
		t.Fatalf("got %#x, want 0x2801", c.Grid[0][0])
	}

	// dot 8 (bottom-right) of the same cell
	c.Set(1, 3)
	if c.Grid[0][0] != 0x2801|0x80 {
		t.Fatalf("got %#x, want %#x", c.Grid[0][0], rune(0x2801|0x80))
	}

	// lands in cell (1,1)
	c.Set(3, 5)
	if c.Grid[1][1] == 0x2800 {
		t.Fatal("cell (1,1) still empty")
	}
}

func TestCanvasUnsetNeverDropsBelowBase(t *testing.T) {
	c := NewCanvas(2, 2)
	c.Set(0, 0)
	c.Unset(0, 0)
	if c.Grid[0][0] != 0x2800 {
		t.Fatalf("got %#x, want empty braille", c.Grid[0][0])
	}
	c.Unset(0, 0) // already clear
	if c.Grid[0][0] != 0x2800 {
		t.Fatalf("got %#x after double unset", c.Grid[0][0])
	}
}

func TestCanvasIgnoresOutOfBounds(t *testing.T) {
	c := NewCanvas(2, 2)
	c.Set(-1, 0)
	c.Set(0, -3)
	c.Set(4, 0)
	c.Set(0, 8)
	for _, row := range c.Grid {
		for _, r := range row {
			if r != 0x2800 {
				t.Fatalf("out-of-bounds set lit a dot: %#x", r)
			}
		}
	}
}

func TestCanvasDrawLineHitsEndpoints(t *testing.T) {
	c := NewCanvas(8, 4)
	c.DrawLine(0, 0, 15, 15)
	if c.Grid[0][0] == 0x2800 {
		t.Fatal("line start not set")
	}
	if c.Grid[3][7] == 0x2800 {
		t.Fatal("line end not set")
	}
}

func TestCanvasBlitThreshold(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	// bright left half, dark right half
	for y := 0; y < 8; y++ {
		for x := 0; x < 4; x++ {
			o := y*img.Stride + x*4
			img.Pix[o], img.Pix[o+1], img.Pix[o+2], img.Pix[o+3] = 255, 255, 255, 255
		}
	}

	c := NewCanvas(2, 1) // 4x4 sub-pixels
	c.Blit(img, 128)

	if c.Grid[0][0] == 0x2800 {
		t.Fatal("bright half produced no dots")
	}
	if c.Grid[0][1] != 0x2800 {
		t.Fatalf("dark half lit dots: %#x", c.Grid[0][1])
	}
}

func TestCanvasBlitNilImage(t *testing.T) {
	c := NewCanvas(2, 2)
	c.Set(0, 0)
	c.Blit(nil, 128)
	if c.Grid[0][0] != 0x2800 {
		t.Fatal("blit of nil image should clear the canvas")
	}
}

func key(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestBrowserMenuNavigation(t *testing.T) {
	m := NewBrowser(t.TempDir(), 1)
	if len(m.entries) == 0 {
		t.Fatal("no catalog entries")
	}

	next, _ := m.Update(key("down"))
	b := next.(*model)
	if b.cursor != 1 {
		t.Fatalf("cursor = %d, want 1", b.cursor)
	}
	next, _ = b.Update(key("up"))
	b = next.(*model)
	next, _ = b.Update(key("up")) // clamped at top
	b = next.(*model)
	if b.cursor != 0 {
		t.Fatalf("cursor = %d, want 0", b.cursor)
	}
}

func TestBrowserPresetScreen(t *testing.T) {
	m := NewBrowser(t.TempDir(), 1)
	// cursor 0 is plasma, which ships presets
	next, _ := m.Update(key("p"))
	b := next.(*model)
	if b.state != statePresets {
		t.Fatalf("state = %d, want presets", b.state)
	}
	if len(b.presets) == 0 {
		t.Fatal("plasma has no presets listed")
	}
	next, _ = b.Update(key("esc"))
	b = next.(*model)
	if b.state != stateScenes {
		t.Fatalf("state = %d, want scenes after esc", b.state)
	}
}

func TestBrowserPreviewStepsScene(t *testing.T) {
	m := NewBrowser(t.TempDir(), 7)
	next, _ := m.Update(key("enter"))
	b := next.(*model)
	if b.state != statePreview || b.scene == nil {
		t.Fatal("enter did not start a preview")
	}

	next, _ = b.Update(tickMsg{})
	b = next.(*model)
	if b.elapsed == 0 {
		t.Fatal("tick did not advance the scene clock")
	}
	if !strings.Contains(b.View(), "running") {
		t.Fatal("preview header missing")
	}
}

func TestBrowserSavesEmptyDir(t *testing.T) {
	m := NewBrowser(t.TempDir(), 1)
	next, _ := m.Update(key("s"))
	b := next.(*model)
	if b.state != stateSaves {
		t.Fatalf("state = %d, want saves", b.state)
	}
	if len(b.slots) != 0 {
		t.Fatalf("empty dir reported %d slots", len(b.slots))
	}
	if !strings.Contains(b.View(), "no saves yet") {
		t.Fatal("empty save list not indicated")
	}
}
