// Package environment builds the room shell and lighting that every floor
// plan is placed into.
package environment

import (
	"fmt"

	"bank-interior/core"
	"bank-interior/materials"
	"bank-interior/scene"
)

type Config struct {
	Bounds     FloorBounds
	Shell      Shell
	Lighting   RigConfig
	Background core.Color
	Fog        *scene.Fog
}

func DefaultConfig() Config {
	haze := core.ColorHex(0xF5F5F5)
	return Config{
		Bounds:     DefaultFloorBounds(),
		Shell:      DefaultShell(),
		Lighting:   DefaultRigConfig(),
		Background: haze,
		Fog:        &scene.Fog{Color: haze, Near: 50, Far: 100},
	}
}

func (c Config) Validate() error {
	if err := c.Bounds.Validate(); err != nil {
		return err
	}
	if err := c.Shell.Validate(); err != nil {
		return err
	}
	if err := c.Lighting.Validate(); err != nil {
		return err
	}
	if c.Fog != nil && (c.Fog.Near < 0 || c.Fog.Far <= c.Fog.Near) {
		return fmt.Errorf("fog: near %v / far %v out of order", c.Fog.Near, c.Fog.Far)
	}
	return nil
}

// Setup adds the shell and lights to s and sets its background and fog.
// It must run before anything is placed on the floor.
func Setup(s *scene.Scene, cfg Config, pal *materials.Palette) (*Rig, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("environment: %w", err)
	}
	rig, err := BuildRig(cfg.Lighting, cfg.Bounds)
	if err != nil {
		return nil, fmt.Errorf("environment: %w", err)
	}

	s.Background = cfg.Background
	if cfg.Fog != nil {
		fog := *cfg.Fog
		s.Fog = &fog
	}
	for _, n := range BuildShell(cfg.Bounds, cfg.Shell, pal) {
		s.AddNode(n)
	}
	for _, l := range rig.Lights() {
		s.AddLight(l)
	}
	return rig, nil
}
