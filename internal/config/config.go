package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultScene       = "plasma"
	DefaultPalette     = "cyberpunk"
	DefaultWindowScale = 2
)

type Config struct {
	Scene       string             `yaml:"scene"`
	Palette     string             `yaml:"palette"`
	Seed        int64              `yaml:"seed"`
	Scanlines   bool               `yaml:"scanlines"`
	WindowScale int                `yaml:"window_scale"`
	Params      map[string]float64 `yaml:"params"`
}

func DefaultConfig() *Config {
	return &Config{
		Scene:       DefaultScene,
		Palette:     DefaultPalette,
		Scanlines:   true,
		WindowScale: DefaultWindowScale,
		Params:      map[string]float64{},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	// an empty or null params key unmarshals to a nil map
	if cfg.Params == nil {
		cfg.Params = map[string]float64{}
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
