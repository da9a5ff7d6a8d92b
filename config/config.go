// Copyright (c) 2026, Facet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads the viewer's startup settings from a TOML
// file, falling back to defaults when no file is present.
package config

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/facet3d/facet/base/errors"
)

// Window configures the initial window.
type Window struct {
	// Width and Height are the initial window size in pixels.
	// Both must be positive.
	Width  int `toml:"width"`
	Height int `toml:"height"`

	// Title is the window title.
	Title string `toml:"title"`
}

// Config is the viewer configuration.
type Config struct {
	Window Window `toml:"window"`

	// Asset is the path of the glTF file to load.
	Asset string `toml:"asset"`

	// ClearColor is the initial clear color, RGBA in [0, 1].
	ClearColor [4]float32 `toml:"clear_color"`

	// Vsync selects a vsynced present mode when the surface
	// supports one.
	Vsync bool `toml:"vsync"`

	// Debug enables verbose GPU logging.
	Debug bool `toml:"debug"`
}

// Defaults returns the configuration used when no file is present.
func Defaults() *Config {
	return &Config{
		Window:     Window{Width: 1024, Height: 768, Title: "facet"},
		ClearColor: [4]float32{0.1, 0.2, 0.3, 1},
		Vsync:      true,
	}
}

// Open reads the configuration from the given TOML file, applying it
// over [Defaults]. A missing file is not an error: the defaults are
// returned unchanged. The result is validated either way.
func Open(filename string) (*Config, error) {
	cfg := Defaults()
	b, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, cfg.Validate()
		}
		return nil, err
	}
	if err := toml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("config: %s: %w", filename, err)
	}
	return cfg, cfg.Validate()
}

// Validate rejects configurations the GPU layer cannot honor.
func (cfg *Config) Validate() error {
	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		return fmt.Errorf("config: window size %dx%d is not positive", cfg.Window.Width, cfg.Window.Height)
	}
	return nil
}
