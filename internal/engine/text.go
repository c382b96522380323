package engine

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Debug-font glyph cell used for rough layout math.
const (
	GlyphW = 6
	GlyphH = 16
)

var textScratch *ebiten.Image

// Text draws s with the debug bitmap font, tinted and optionally scaled.
// Scale 1 with white color falls through to plain DebugPrintAt.
func Text(dst *ebiten.Image, s string, x, y int, scale float64, clr color.Color) {
	if scale == 1 {
		if r, g, b, _ := clr.RGBA(); r>>8 == 255 && g>>8 == 255 && b>>8 == 255 {
			ebitenutil.DebugPrintAt(dst, s, x, y)
			return
		}
	}
	w := GlyphW*len(s) + 4
	h := GlyphH + 4
	if textScratch == nil || textScratch.Bounds().Dx() < w || textScratch.Bounds().Dy() < h {
		textScratch = ebiten.NewImage(maxInt(w, 512), maxInt(h, GlyphH+4))
	}
	textScratch.Clear()
	ebitenutil.DebugPrint(textScratch, s)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(clr)
	dst.DrawImage(textScratch, op)
}

// TextWidth estimates the rendered width of s at the given scale.
func TextWidth(s string, scale float64) int {
	return int(float64(GlyphW*len(s)) * scale)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
