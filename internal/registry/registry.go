// Package registry maps scene names to constructors and menu metadata.
package registry

import (
	"fmt"
	"sort"

	"github.com/san-kum/artcade/internal/demos"
	"github.com/san-kum/artcade/internal/engine"
	"github.com/san-kum/artcade/internal/rpg"
	"github.com/san-kum/artcade/internal/store"
)

// Entries returns every launchable scene in menu order. dataDir is
// where the RPG keeps its save slots.
func Entries(dataDir string) []engine.Entry {
	return []engine.Entry{
		{
			Name:  "plasma",
			Title: "PLASMA.FIELD",
			Desc:  "sum-of-sines interference glow",
			Controls: []string{
				"UP/DOWN speed",
				"LEFT/RIGHT scale",
				"[P] palette",
			},
			New: func() engine.Scene { return demos.NewPlasma() },
		},
		{
			Name:  "fire",
			Title: "PARTICLE.FIRE",
			Desc:  "convecting heat grid with sparks",
			Controls: []string{
				"UP/DOWN intensity",
				"LEFT/RIGHT wind",
				"[F] fire type",
				"[C] color mode",
				"[S] sparks",
			},
			New: func() engine.Scene { return demos.NewFire() },
		},
		{
			Name:  "matrixrain",
			Title: "MATRIX.RAIN",
			Desc:  "falling glyph streams",
			Controls: []string{
				"UP/DOWN speed",
				"LEFT/RIGHT density",
				"[S] charset",
				"[C] color mode",
				"[M] rain pattern",
			},
			New: func() engine.Scene { return demos.NewMatrixRain() },
		},
		{
			Name:  "mandelbrot",
			Title: "MANDELBROT.DIVE",
			Desc:  "endless zoom into the set",
			Controls: []string{
				"UP/DOWN zoom speed",
				"[P] palette",
				"[J] julia set",
			},
			New: func() engine.Scene { return demos.NewMandelbrot() },
		},
		{
			Name:  "starfield",
			Title: "STARFIELD.WARP",
			Desc:  "3D star flight with warp modes",
			Controls: []string{
				"UP/DOWN warp speed",
				"WASD drift",
				"[M] warp mode",
				"[C] star color",
				"[T] twinkle",
			},
			New: func() engine.Scene { return demos.NewStarfield() },
		},
		{
			Name:  "life",
			Title: "CELLULAR.LAB",
			Desc:  "four automaton rule sets",
			Controls: []string{
				"SPACE run/pause  [N] step",
				"MOUSE draw cells",
				"[L] rule set",
				"[V] color mode",
				"[P] reseed  [C] clear",
			},
			New: func() engine.Scene { return demos.NewLife() },
		},
		{
			Name:  "waveform",
			Title: "WAVEFORM.SYNTH",
			Desc:  "layered oscillators + spectrum",
			Controls: []string{
				"UP/DOWN frequency",
				"LEFT/RIGHT layers",
				"[W] wave shape",
				"[A] audio on/off",
				"[G] glow  [C] palette",
			},
			New: func() engine.Scene { return demos.NewWaveform() },
		},
		{
			Name:  "galaxy",
			Title: "SPIRAL.GALAXY",
			Desc:  "rotating log-spiral star arms",
			Controls: []string{
				"UP/DOWN rotation",
				"LEFT/RIGHT arm tightness",
				"[G] arm count",
				"[C] palette",
				"[S] stellar formation",
			},
			New: func() engine.Scene { return demos.NewGalaxy() },
		},
		{
			Name:  "lightning",
			Title: "LIGHTNING.STORM",
			Desc:  "branching midpoint bolts",
			Controls: []string{
				"UP/DOWN strike freq",
				"LEFT/RIGHT bolt power",
				"[B] bolt type",
				"[C] palette",
				"[S] storm mode",
			},
			New: func() engine.Scene { return demos.NewLightning() },
		},
		{
			Name:  "ripples",
			Title: "WATER.RIPPLES",
			Desc:  "superposed ring waves",
			Controls: []string{
				"CLICK drop ripple",
				"UP/DOWN wave speed",
				"[W] wave type",
				"[C] palette",
				"[P] auto drip",
			},
			New: func() engine.Scene { return demos.NewRipples() },
		},
		{
			Name:  "helix",
			Title: "DNA.HELIX",
			Desc:  "rotating double helix",
			Controls: []string{
				"UP/DOWN rotation",
				"LEFT/RIGHT radius",
				"[L] base labels",
				"[C] palette",
			},
			New: func() engine.Scene { return demos.NewHelix() },
		},
		{
			Name:  "rpg",
			Title: "DARK.AGES.RPG",
			Desc:  "turn-based kingdom adventure",
			Controls: []string{
				"ARROWS navigate  ENTER confirm",
				"[I] inventory  [C] sheet",
				"[Q] quests  [F5] save",
				"[X] back",
			},
			New: func() engine.Scene { return rpg.NewScene(store.New(dataDir), 0) },
		},
	}
}

// Lookup finds an entry by name.
func Lookup(dataDir, name string) (engine.Entry, error) {
	for _, e := range Entries(dataDir) {
		if e.Name == name {
			return e, nil
		}
	}
	return engine.Entry{}, fmt.Errorf("unknown scene %q (available: %v)", name, Names())
}

// Names returns all scene names sorted.
func Names() []string {
	entries := Entries("")
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	sort.Strings(names)
	return names
}
