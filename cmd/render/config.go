package main

import (
	"github.com/BurntSushi/toml"
)

// renderConfig mirrors the handful of knobs the demo exposes: scene
// selection, resolution, camera placement and antialiasing sample
// count. Loaded from an optional TOML file; command-line flags take
// priority over whatever the file sets.
type renderConfig struct {
	Scene   string     `toml:"scene"`
	Width   int        `toml:"width"`
	Height  int        `toml:"height"`
	FOV     float64    `toml:"fov"`
	Samples int        `toml:"samples"`
	From    [3]float64 `toml:"from"`
	To      [3]float64 `toml:"to"`
	Up      [3]float64 `toml:"up"`
}

func defaultRenderConfig() renderConfig {
	return renderConfig{
		Scene:   "default",
		Width:   400,
		Height:  300,
		FOV:     1.0471975511965976, // pi/3
		Samples: 1,
		From:    [3]float64{0, 1.5, -5},
		To:      [3]float64{0, 1, 0},
		Up:      [3]float64{0, 1, 0},
	}
}

func loadRenderConfig(path string) (renderConfig, error) {
	cfg := defaultRenderConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
