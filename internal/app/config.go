package app

import (
	"encoding/json"
	"flag"
	"os"

	"github.com/pkg/errors"

	"lifeplane/internal/core"
)

// Config represents the startup parameters for the application.
type Config struct {
	FPS     int     `json:"fps"`
	Scale   int     `json:"scale"`
	Pattern string  `json:"pattern"`
	Density float64 `json:"density"`
	Seed    int64   `json:"seed"`
	Width   int     `json:"width"`
	Height  int     `json:"height"`
	Workers int     `json:"workers"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		FPS:     10,
		Scale:   16,
		Pattern: "glider",
		Density: 0.15,
		Seed:    42,
		Width:   960,
		Height:  640,
		Workers: 1,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.FPS, "fps", c.FPS, "generations per second")
	fs.IntVar(&c.Scale, "scale", c.Scale, "cell size in pixels")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "seed pattern placed at the origin")
	fs.Float64Var(&c.Density, "density", c.Density, "live-cell density for random seeding")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random fills")
	fs.IntVar(&c.Width, "width", c.Width, "field width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "field height in pixels")
	fs.IntVar(&c.Workers, "workers", c.Workers, "parallel evaluation workers")
}

// LoadFile overlays values from a JSON file onto the config.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "read config %s", path)
	}
	if err := json.Unmarshal(data, c); err != nil {
		return errors.Wrapf(err, "parse config %s", path)
	}
	return nil
}

// Clamp bounds every parameter before it can reach the engine. Invalid
// values are corrected, never reported: the core is total over its inputs.
func (c *Config) Clamp() {
	c.FPS = core.ClampFPS(c.FPS)
	c.Scale = core.ClampScale(c.Scale)
	if c.Density < 0 {
		c.Density = 0
	}
	if c.Density > 1 {
		c.Density = 1
	}
	if c.Width < 320 {
		c.Width = 320
	}
	if c.Height < 240 {
		c.Height = 240
	}
	if c.Workers < 1 {
		c.Workers = 1
	}
}
