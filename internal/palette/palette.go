package palette

import (
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Mode selects how a normalized field value maps to RGB.
type Mode int

const (
	Cyberpunk Mode = iota
	Neon
	Matrix
	Synthwave
	Retro
	modeCount
)

var modeNames = map[Mode]string{
	Cyberpunk: "cyberpunk",
	Neon:      "neon",
	Matrix:    "matrix",
	Synthwave: "synthwave",
	Retro:     "retro",
}

var modeTitles = map[Mode]string{
	Cyberpunk: "CYBERPUNK.CORE",
	Neon:      "NEON.DREAMS",
	Matrix:    "MATRIX.CODE",
	Synthwave: "SYNTHWAVE.80s",
	Retro:     "RETRO.FUTURE",
}

func (m Mode) String() string { return modeNames[m] }

// Title returns the on-screen label for the mode.
func (m Mode) Title() string { return modeTitles[m] }

// Next cycles to the following mode.
func (m Mode) Next() Mode { return (m + 1) % modeCount }

// Count returns the number of palette modes.
func Count() int { return int(modeCount) }

// ByName resolves a mode from its lowercase name. Unknown names fall back
// to Cyberpunk.
func ByName(name string) Mode {
	for m, n := range modeNames {
		if n == name {
			return m
		}
	}
	return Cyberpunk
}

// cyberpunk gradient stops: deep blue through cyan into hot pink.
var cyberStops = []colorful.Color{
	{R: 0.04, G: 0.04, B: 0.10},
	{R: 0.00, G: 0.39, B: 0.78},
	{R: 0.00, G: 1.00, B: 1.00},
	{R: 1.00, G: 0.08, B: 0.58},
	{R: 1.00, G: 1.00, B: 1.00},
}

// synthwave gradient stops: purple dusk into orange sun.
var synthStops = []colorful.Color{
	{R: 0.08, G: 0.00, B: 0.16},
	{R: 0.46, G: 0.00, B: 0.64},
	{R: 1.00, G: 0.08, B: 0.58},
	{R: 1.00, G: 0.65, B: 0.00},
	{R: 1.00, G: 1.00, B: 0.60},
}

func gradient(stops []colorful.Color, v float64) colorful.Color {
	pos := v * float64(len(stops)-1)
	i := int(pos)
	if i >= len(stops)-1 {
		return stops[len(stops)-1]
	}
	return stops[i].BlendRgb(stops[i+1], pos-float64(i))
}

// Map converts a normalized value v in [0,1] to a color. phase shifts the
// hue over time for the cycling modes; static modes ignore it.
func (m Mode) Map(v, phase float64) color.RGBA {
	v = clamp01(v)
	switch m {
	case Neon:
		hue := math.Mod(v*360+phase*57.2958, 360)
		if hue < 0 {
			hue += 360
		}
		c := colorful.Hsv(hue, 0.95, 0.25+0.75*v)
		return rgba(c)
	case Matrix:
		g := 0.15 + 0.85*v
		return color.RGBA{
			R: u8(50 * math.Max(0, v-0.5) * 2),
			G: u8(255 * g),
			B: u8(50 * math.Max(0, v-0.7)),
			A: 255,
		}
	case Synthwave:
		return rgba(gradient(synthStops, v))
	case Retro:
		// Quantized 16-step CGA-ish ramp.
		q := math.Floor(v*15) / 15
		c := colorful.Hsv(math.Mod(q*300+60, 360), 0.85, 0.2+0.8*q)
		return rgba(c)
	default: // Cyberpunk
		shift := math.Mod(v+0.06*math.Sin(phase), 1)
		if shift < 0 {
			shift += 1
		}
		return rgba(gradient(cyberStops, shift))
	}
}

// Heat maps v through a fire ramp: black, red, orange, yellow, near white.
// Shared by the fire and lightning demos regardless of mode.
func Heat(v float64) color.RGBA {
	v = clamp01(v)
	switch {
	case v < 0.25:
		return color.RGBA{u8(255 * v * 4 * 0.4), 0, 0, 255}
	case v < 0.5:
		t := (v - 0.25) * 4
		return color.RGBA{u8(102 + 153*t), u8(60 * t), 0, 255}
	case v < 0.75:
		t := (v - 0.5) * 4
		return color.RGBA{255, u8(60 + 180*t), u8(30 * t), 255}
	default:
		t := (v - 0.75) * 4
		return color.RGBA{255, u8(240 + 15*t), u8(30 + 200*t), 255}
	}
}

// Scale multiplies the RGB channels of c by k, clamped.
func Scale(c color.RGBA, k float64) color.RGBA {
	return color.RGBA{
		R: u8(float64(c.R) * k),
		G: u8(float64(c.G) * k),
		B: u8(float64(c.B) * k),
		A: c.A,
	}
}

func rgba(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func u8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
