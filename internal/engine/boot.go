package engine

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var bootLines = []string{
	"ARTCADE BIOS v2.1",
	"PROBING DISPLAY............ 480x320 OK",
	"LOADING PALETTE ROM........ OK",
	"CALIBRATING FIELD UNIT..... OK",
	"MOUNTING SCENE REGISTRY.... OK",
	"AUDIO SYNTH................ READY",
	"",
	"SYSTEM READY.",
}

type bootScreen struct {
	ticks int
	done  bool
}

// chars revealed per tick across all lines
const bootCharsPerTick = 2

func (b *bootScreen) total() int {
	n := 0
	for _, l := range bootLines {
		n += len(l) + 1
	}
	return n
}

func (b *bootScreen) Update() {
	b.ticks++
	// hold a beat after the last character
	if b.ticks*bootCharsPerTick > b.total()+90 {
		b.done = true
	}
}

func (b *bootScreen) skip() { b.done = true }

func (b *bootScreen) Draw(dst *ebiten.Image) {
	budget := b.ticks * bootCharsPerTick
	y := 24
	for _, l := range bootLines {
		if budget <= 0 {
			break
		}
		n := len(l)
		if n > budget {
			n = budget
		}
		Text(dst, l[:n], 20, y, 1, color.RGBA{0, 220, 80, 255})
		budget -= len(l) + 1
		y += GlyphH + 2
	}
	// cursor block
	if (b.ticks/15)%2 == 0 {
		vector.DrawFilledRect(dst, 20, float32(y), 6, 12, color.RGBA{0, 220, 80, 255}, false)
	}
	frac := float32(b.ticks*bootCharsPerTick) / float32(b.total()+90)
	if frac > 1 {
		frac = 1
	}
	vector.StrokeRect(dst, 20, Height-40, Width-40, 10, 1, color.RGBA{0, 120, 60, 255}, false)
	vector.DrawFilledRect(dst, 22, Height-38, (Width-44)*frac, 6, color.RGBA{0, 220, 80, 255}, false)
}
