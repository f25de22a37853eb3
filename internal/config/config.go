// Package config holds configurable paths and render settings for the
// command-line tools.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
)

// Config holds all configurable paths and render settings.
type Config struct {
	ScenePath string `json:"scene"`  // scene file, or a directory of scenes
	OutputDir string `json:"output"` // destination directory
	Format    string `json:"format"` // webp, png, tga or bmp
	Scale     int    `json:"scale"`  // supersampling factor
	Workers   int    `json:"workers"`
	Flip      bool   `json:"flip"` // mirror output left-to-right
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Scene   string
	Output  string
	Format  string
	Scale   int
	Workers int
	Flip    bool
}

// Load reads a JSON config file. Fields not set in the file keep their zero
// values until Resolve fills in defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Resolve applies CLI overrides, then fills any remaining empty fields with
// defaults. CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	if flags.Scene != "" {
		c.ScenePath = flags.Scene
	}
	if flags.Output != "" {
		c.OutputDir = flags.Output
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Scale > 0 {
		c.Scale = flags.Scale
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Flip {
		c.Flip = true
	}

	if c.OutputDir == "" {
		c.OutputDir = "renders"
	}
	if c.Format == "" {
		c.Format = "webp"
	}
	if c.Scale <= 0 {
		c.Scale = 1
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}
