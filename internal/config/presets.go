package config

var Presets = map[string]map[string]*Config{
	"plasma": {
		"calm": {
			Scene: "plasma", Palette: "cyberpunk",
			Params: map[string]float64{"speed": 0.5, "scale": 0.8},
		},
		"storm": {
			Scene: "plasma", Palette: "neon",
			Params: map[string]float64{"speed": 3.0, "scale": 2.2},
		},
		"lava": {
			Scene: "plasma", Palette: "synthwave",
			Params: map[string]float64{"speed": 0.8, "scale": 0.4},
		},
	},
	"fire": {
		"campfire": {
			Scene: "fire",
			Params: map[string]float64{"intensity": 0.6, "wind": 0},
		},
		"inferno": {
			Scene: "fire",
			Params: map[string]float64{"intensity": 2.4, "wind": 0},
		},
		"windswept": {
			Scene: "fire",
			Params: map[string]float64{"intensity": 1.2, "wind": 1.5},
		},
	},
	"matrixrain": {
		"drizzle": {
			Scene: "matrixrain", Palette: "matrix",
			Params: map[string]float64{"speed": 0.6, "density": 0.3},
		},
		"downpour": {
			Scene: "matrixrain", Palette: "matrix",
			Params: map[string]float64{"speed": 2.5, "density": 1.0},
		},
	},
	"mandelbrot": {
		"slow_dive": {
			Scene: "mandelbrot", Palette: "neon",
			Params: map[string]float64{"zoom_speed": 0.4},
		},
		"plunge": {
			Scene: "mandelbrot", Palette: "retro",
			Params: map[string]float64{"zoom_speed": 3.0},
		},
	},
	"starfield": {
		"cruise": {
			Scene: "starfield",
			Params: map[string]float64{"speed": 0.8},
		},
		"ludicrous": {
			Scene: "starfield",
			Params: map[string]float64{"speed": 5.0},
		},
	},
	"life": {
		"meditative": {
			Scene: "life",
			Params: map[string]float64{"rate": 4},
		},
		"frantic": {
			Scene: "life",
			Params: map[string]float64{"rate": 40},
		},
	},
	"waveform": {
		"drone": {
			Scene: "waveform", Palette: "synthwave",
			Params: map[string]float64{"freq": 110, "layers": 2},
		},
		"choir": {
			Scene: "waveform", Palette: "neon",
			Params: map[string]float64{"freq": 440, "layers": 5},
		},
	},
	"galaxy": {
		"lazy": {
			Scene: "galaxy",
			Params: map[string]float64{"rotation": 0.4, "gravity": 1.0},
		},
		"whirlpool": {
			Scene: "galaxy",
			Params: map[string]float64{"rotation": 3.0, "gravity": 2.2},
		},
	},
	"lightning": {
		"distant": {
			Scene: "lightning",
			Params: map[string]float64{"frequency": 0.4, "power": 0.8},
		},
		"overhead": {
			Scene: "lightning",
			Params: map[string]float64{"frequency": 4.0, "power": 2.5},
		},
	},
	"ripples": {
		"pond": {
			Scene: "ripples",
			Params: map[string]float64{"speed": 40},
		},
		"rapids": {
			Scene: "ripples",
			Params: map[string]float64{"speed": 160},
		},
	},
	"helix": {
		"textbook": {
			Scene: "helix",
			Params: map[string]float64{"rotation": 0.3, "radius": 70},
		},
		"tight": {
			Scene: "helix",
			Params: map[string]float64{"rotation": 1.2, "radius": 35},
		},
	},
}

func GetPreset(scene, preset string) *Config {
	scenePresets, ok := Presets[scene]
	if !ok {
		return nil
	}
	cfg, ok := scenePresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(scene string) []string {
	scenePresets, ok := Presets[scene]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(scenePresets))
	for name := range scenePresets {
		names = append(names, name)
	}
	return names
}
