package app

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/phanxgames/spritebatch"
)

// Config describes the window and frame loop of an application.
type Config struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	// FPS is the target update rate. Zero ties updates to the display rate.
	FPS       int  `toml:"fps"`
	VSync     bool `toml:"vsync"`
	Resizable bool `toml:"resizable"`
	// MaxBatchSize is the renderer queue capacity; zero picks the default.
	MaxBatchSize int  `toml:"max_batch_size"`
	Debug        bool `toml:"debug"`
}

// DefaultConfig returns an 800×600 vsynced window updated 60 times a second.
func DefaultConfig() Config {
	return Config{
		Title:  "spritebatch",
		Width:  800,
		Height: 600,
		FPS:    60,
		VSync:  true,
	}
}

// LoadConfig reads a TOML config file. Keys missing from the file keep their
// DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("app: read config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("app: %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes TOML config data on top of DefaultConfig. Unknown keys
// are rejected.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the config for values the frame loop cannot use.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("app: invalid window size %dx%d", c.Width, c.Height)
	}
	if c.FPS < 0 {
		return fmt.Errorf("app: negative fps %d", c.FPS)
	}
	if c.MaxBatchSize < 0 {
		return fmt.Errorf("app: negative max_batch_size %d", c.MaxBatchSize)
	}
	return nil
}

// RendererConfig returns a renderer config drawing in window pixel
// coordinates.
func (c Config) RendererConfig() spritebatch.RendererConfig {
	return spritebatch.RendererConfig{
		MaxBatchSize: c.MaxBatchSize,
		Projection:   spritebatch.ScreenProjection(c.Width, c.Height),
		Debug:        c.Debug,
	}
}
