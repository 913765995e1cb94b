package environment

import (
	"errors"
	"fmt"

	"bank-interior/core"
	"bank-interior/math"
	"bank-interior/scene"
)

var ErrShadowFrustum = errors.New("shadow frustum does not cover floor")

// KeyLight configures the shadow-casting directional light.
type KeyLight struct {
	Intensity  float32   `yaml:"intensity"`
	Position   math.Vec3 `yaml:"position"`
	MapSize    int       `yaml:"map_size"`
	Extent     float32   `yaml:"extent"`
	Near       float32   `yaml:"near"`
	Far        float32   `yaml:"far"`
	Bias       float32   `yaml:"bias"`
	NormalBias float32   `yaml:"normal_bias"`
}

// PointGrid configures the ceiling grid of point lights.
type PointGrid struct {
	Grid       Grid    `yaml:"grid"`
	Height     float32 `yaml:"height"`
	Intensity  float32 `yaml:"intensity"`
	Distance   float32 `yaml:"distance"`
	CastShadow bool    `yaml:"cast_shadow"`
	MapSize    int     `yaml:"map_size"`
}

type RigConfig struct {
	Ambient       float32   `yaml:"ambient"`
	Key           KeyLight  `yaml:"key"`
	FillIntensity float32   `yaml:"fill_intensity"`
	FillPosition  math.Vec3 `yaml:"fill_position"`
	Points        PointGrid `yaml:"points"`
}

func DefaultRigConfig() RigConfig {
	return RigConfig{
		Ambient: 0.5,
		Key: KeyLight{
			Intensity:  1,
			Position:   math.NewVec3(15, 25, 10),
			MapSize:    4096,
			Extent:     40,
			Near:       0.5,
			Far:        150,
			Bias:       -0.0001,
			NormalBias: 0.02,
		},
		FillIntensity: 0.4,
		FillPosition:  math.NewVec3(-10, 15, -10),
		Points: PointGrid{
			Grid:       Grid{XFrom: -15, XTo: 15, XStep: 5, ZFrom: -10, ZTo: 10, ZStep: 5},
			Height:     6.5,
			Intensity:  0.8,
			Distance:   20,
			CastShadow: true,
			MapSize:    512,
		},
	}
}

func (c RigConfig) Validate() error {
	if c.Key.MapSize <= 0 {
		return fmt.Errorf("key light map_size: must be positive, got %d", c.Key.MapSize)
	}
	if c.Key.Near <= 0 || c.Key.Far <= c.Key.Near {
		return fmt.Errorf("key light: near %v / far %v out of order", c.Key.Near, c.Key.Far)
	}
	if err := c.Points.Grid.Validate(); err != nil {
		return fmt.Errorf("point lights: %w", err)
	}
	return nil
}

// Rig is the full lighting setup of the room.
type Rig struct {
	Ambient *scene.Light
	Key     *scene.Light
	Fill    *scene.Light
	Points  []*scene.Light
}

// Lights returns every light of the rig, ambient first.
func (r *Rig) Lights() []*scene.Light {
	out := []*scene.Light{r.Ambient, r.Key, r.Fill}
	return append(out, r.Points...)
}

// ShadowCamera is the square orthographic frustum the key light renders
// its shadow map with.
func (k KeyLight) ShadowCamera() scene.ShadowCamera {
	return scene.ShadowCamera{
		Left:   -k.Extent,
		Right:  k.Extent,
		Top:    k.Extent,
		Bottom: -k.Extent,
		Near:   k.Near,
		Far:    k.Far,
	}
}

// CheckShadowCoverage fails when the shadow camera is narrower than the
// floor in either direction.
func CheckShadowCoverage(cam scene.ShadowCamera, b FloorBounds) error {
	hw, hd := b.HalfWidth(), b.HalfDepth()
	if cam.Left > -hw || cam.Right < hw || cam.Top < hd || cam.Bottom > -hd {
		return fmt.Errorf("%w: left/right/top/bottom %v/%v/%v/%v, floor half extents %v x %v",
			ErrShadowFrustum, cam.Left, cam.Right, cam.Top, cam.Bottom, hw, hd)
	}
	return nil
}

// BuildRig creates the ambient, key, fill and point lights.
func BuildRig(cfg RigConfig, b FloorBounds) (*Rig, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	key := scene.NewDirectionalLight("key", core.ColorWhite, cfg.Key.Intensity, cfg.Key.Position)
	key.CastShadow = true
	key.Shadow = scene.Shadow{
		MapSize:    cfg.Key.MapSize,
		Bias:       cfg.Key.Bias,
		NormalBias: cfg.Key.NormalBias,
		Camera:     cfg.Key.ShadowCamera(),
	}
	if err := CheckShadowCoverage(key.Shadow.Camera, b); err != nil {
		return nil, err
	}

	rig := &Rig{
		Ambient: scene.NewAmbientLight(core.ColorWhite, cfg.Ambient),
		Key:     key,
		Fill:    scene.NewDirectionalLight("fill", core.ColorWhite, cfg.FillIntensity, cfg.FillPosition),
	}

	pg := cfg.Points
	for i, xz := range pg.Grid.Points() {
		l := scene.NewPointLight(fmt.Sprintf("ceiling_%02d", i), core.ColorWhite, pg.Intensity, pg.Distance,
			math.NewVec3(xz[0], pg.Height, xz[1]))
		l.CastShadow = pg.CastShadow
		l.Shadow.MapSize = pg.MapSize
		rig.Points = append(rig.Points, l)
	}
	return rig, nil
}
