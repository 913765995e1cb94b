// Package config loads the YAML document that describes one branch: window,
// renderer, camera, floor, lighting, materials and an optional layout
// overlay. Every section starts from the built-in defaults, so a file only
// needs to name what it changes.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"bank-interior/core"
	"bank-interior/environment"
	"bank-interior/layout"
	"bank-interior/materials"
	"bank-interior/renderer"
	"bank-interior/scene"
	"bank-interior/viewer"
)

// Fog is the YAML form of scene.Fog. An empty colour follows the background.
type Fog struct {
	Enabled bool    `yaml:"enabled"`
	Color   string  `yaml:"color"`
	Near    float32 `yaml:"near"`
	Far     float32 `yaml:"far"`
}

type Window struct {
	core.WindowConfig `yaml:",inline"`
	// PixelRatio overrides the framebuffer/window ratio when positive.
	PixelRatio float32 `yaml:"pixel_ratio"`
}

type Config struct {
	Window     Window                  `yaml:"window"`
	Renderer   renderer.Options        `yaml:"renderer"`
	Camera     viewer.CameraConfig     `yaml:"camera"`
	Controls   viewer.ControlsConfig   `yaml:"controls"`
	Floor      environment.FloorBounds `yaml:"floor"`
	Shell      environment.Shell       `yaml:"shell"`
	Lighting   environment.RigConfig   `yaml:"lighting"`
	Background string                  `yaml:"background"`
	Fog        Fog                     `yaml:"fog"`
	// Materials recolours palette entries by name.
	Materials map[string]string `yaml:"materials"`

	// Layout is derived from Floor and then overlaid with the document's
	// layout section.
	Layout layout.Plan `yaml:"-"`
}

// Default reproduces the built-in branch.
func Default() *Config {
	env := environment.DefaultConfig()
	return &Config{
		Window:     Window{WindowConfig: core.DefaultWindowConfig()},
		Renderer:   renderer.DefaultOptions(),
		Camera:     viewer.DefaultCameraConfig(),
		Controls:   viewer.DefaultControlsConfig(),
		Floor:      env.Bounds,
		Shell:      env.Shell,
		Lighting:   env.Lighting,
		Background: FormatHex(env.Background),
		Fog: Fog{
			Enabled: true,
			Near:    env.Fog.Near,
			Far:     env.Fog.Far,
		},
		Layout: layout.DefaultPlan(env.Bounds),
	}
}

// Load reads path over Default and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a YAML document over Default and validates the result.
// The layout section is applied after the floor is known, so wall-bound
// placements follow a resized floor unless the document moves them.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	var raw struct {
		Layout yaml.Node `yaml:"layout"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	cfg.Layout = layout.DefaultPlan(cfg.Floor)
	if !raw.Layout.IsZero() {
		if err := raw.Layout.Decode(&cfg.Layout); err != nil {
			return nil, fmt.Errorf("layout: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window: size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.PixelRatio < 0 {
		return fmt.Errorf("window: pixel ratio %v", c.Window.PixelRatio)
	}
	if err := c.Renderer.Validate(); err != nil {
		return err
	}
	if err := c.Camera.Validate(); err != nil {
		return err
	}
	if err := c.Controls.Validate(); err != nil {
		return err
	}
	env, err := c.Environment()
	if err != nil {
		return err
	}
	if err := env.Validate(); err != nil {
		return err
	}
	if err := environment.CheckShadowCoverage(c.Lighting.Key.ShadowCamera(), c.Floor); err != nil {
		return err
	}
	if _, err := c.Palette(); err != nil {
		return err
	}
	return c.Layout.Validate()
}

// Environment assembles the shell and lighting section.
func (c *Config) Environment() (environment.Config, error) {
	bg, err := ParseHex(c.Background)
	if err != nil {
		return environment.Config{}, fmt.Errorf("background: %w", err)
	}
	env := environment.Config{
		Bounds:     c.Floor,
		Shell:      c.Shell,
		Lighting:   c.Lighting,
		Background: bg,
	}
	if c.Fog.Enabled {
		fc := bg
		if c.Fog.Color != "" {
			if fc, err = ParseHex(c.Fog.Color); err != nil {
				return environment.Config{}, fmt.Errorf("fog: %w", err)
			}
		}
		env.Fog = &scene.Fog{Color: fc, Near: c.Fog.Near, Far: c.Fog.Far}
	}
	return env, nil
}

// Palette returns the default palette with the materials section applied.
func (c *Config) Palette() (*materials.Palette, error) {
	pal := materials.Default()
	for name, hex := range c.Materials {
		col, err := ParseHex(hex)
		if err != nil {
			return nil, fmt.Errorf("materials: %s: %w", name, err)
		}
		if err := pal.Override(name, col); err != nil {
			return nil, err
		}
	}
	return pal, nil
}

// Build constructs the scene the document describes.
func (c *Config) Build() (*scene.Scene, error) {
	env, err := c.Environment()
	if err != nil {
		return nil, err
	}
	pal, err := c.Palette()
	if err != nil {
		return nil, err
	}
	return layout.Build(c.Layout, env, pal)
}

// ParseHex accepts "#rrggbb", "rrggbb" or "0xrrggbb".
func ParseHex(s string) (core.Color, error) {
	t := strings.TrimPrefix(strings.TrimSpace(s), "#")
	t = strings.TrimPrefix(strings.TrimPrefix(t, "0x"), "0X")
	if len(t) != 6 {
		return core.Color{}, fmt.Errorf("colour %q: want 6 hex digits", s)
	}
	v, err := strconv.ParseUint(t, 16, 32)
	if err != nil {
		return core.Color{}, fmt.Errorf("colour %q: %w", s, err)
	}
	return core.ColorHex(uint32(v)), nil
}

func FormatHex(c core.Color) string {
	return fmt.Sprintf("#%06x", c.Hex())
}
