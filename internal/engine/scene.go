// Package engine hosts the launcher shell and the frame loop contract all
// demos implement: poll input, advance state, rasterize, present.
package engine

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	// Width and Height are the logical canvas dimensions, kept at the
	// original 3.5" panel resolution.
	Width  = 480
	Height = 320
	// WindowScale is the default integer upscale of the window.
	WindowScale = 2
	// TPS is the fixed tick rate of the frame loop.
	TPS = 60
	// Dt is the fixed timestep in seconds.
	Dt = 1.0 / TPS
)

// Scene is one runnable screen: a demo or the RPG.
//
// HandleInput polls scene-specific controls. Step advances simulation and
// rasterization by dt seconds and must not touch the GPU, so headless
// benchmarking can drive it. Draw presents the current frame.
type Scene interface {
	Name() string
	Reset(seed int64)
	HandleInput()
	Step(dt float64)
	Draw(screen *ebiten.Image)
}

// Configurable exposes tunable parameters for the pre-run config screen.
type Configurable interface {
	Params() map[string]float64
	SetParam(name string, v float64)
}

// PaletteNamed lets launch config pick the starting palette by name.
type PaletteNamed interface {
	SetPaletteName(name string)
}

// StatusLiner contributes a one-line status readout to the HUD.
type StatusLiner interface {
	StatusLine() string
}

// Snapshotter exposes the current frame for PNG screenshots.
type Snapshotter interface {
	Snapshot() *image.RGBA
}
